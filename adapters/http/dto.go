package http

import (
	"time"

	"github.com/foliocraft/backend/internal/domain/account"
	"github.com/foliocraft/backend/internal/domain/portfolio"
)

// Account DTOs

type AccountDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func ToAccountDTO(a *account.Account) AccountDTO {
	return AccountDTO{
		ID:        a.ID.String(),
		Email:     a.Email,
		Username:  a.Username,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
	}
}

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Username string `json:"username" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Portfolio DTOs

type SocialLinksDTO struct {
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Website  string `json:"website,omitempty"`
}

type ProjectDTO struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Link        string   `json:"link,omitempty"`
	Tags        []string `json:"tags"`
}

type PortfolioDTO struct {
	OwnerID     string         `json:"owner_id"`
	DisplayName string         `json:"display_name"`
	Title       string         `json:"title"`
	Bio         string         `json:"bio"`
	Skills      []string       `json:"skills"`
	Projects    []ProjectDTO   `json:"projects"`
	Theme       string         `json:"theme"`
	SocialLinks SocialLinksDTO `json:"social_links"`
	IsPublished bool           `json:"is_published"`
	PublishedAt *time.Time     `json:"published_at,omitempty"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func ToPortfolioDTO(p *portfolio.Portfolio) PortfolioDTO {
	dto := PortfolioDTO{
		OwnerID:     p.OwnerID.String(),
		DisplayName: p.DisplayName,
		Title:       p.Title,
		Bio:         p.Bio,
		Skills:      p.Skills,
		Theme:       string(p.Theme),
		SocialLinks: SocialLinksDTO(p.SocialLinks),
		IsPublished: p.IsPublished,
		PublishedAt: p.PublishedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	dto.Projects = make([]ProjectDTO, len(p.Projects))
	for i, proj := range p.Projects {
		dto.Projects[i] = ProjectDTO{
			ID:          proj.ID,
			Title:       proj.Title,
			Description: proj.Description,
			ImageURL:    proj.ImageURL,
			Link:        proj.Link,
			Tags:        proj.Tags,
		}
	}
	return dto
}

// SavePortfolioRequest is a partial document: nil fields are not touched,
// present fields overwrite, social_links and projects wholesale.
type SavePortfolioRequest struct {
	DisplayName *string         `json:"display_name"`
	Title       *string         `json:"title"`
	Bio         *string         `json:"bio"`
	Skills      *[]string       `json:"skills"`
	Projects    *[]ProjectDTO   `json:"projects"`
	Theme       *string         `json:"theme" binding:"omitempty,oneof=minimal modern creative"`
	SocialLinks *SocialLinksDTO `json:"social_links"`
	IsPublished *bool           `json:"is_published"`
}

func (req *SavePortfolioRequest) ToDomainPatch() portfolio.Patch {
	patch := portfolio.Patch{
		DisplayName: req.DisplayName,
		Title:       req.Title,
		Bio:         req.Bio,
		Skills:      req.Skills,
		IsPublished: req.IsPublished,
	}
	if req.Theme != nil {
		theme := portfolio.Theme(*req.Theme)
		patch.Theme = &theme
	}
	if req.SocialLinks != nil {
		links := portfolio.SocialLinks(*req.SocialLinks)
		patch.SocialLinks = &links
	}
	if req.Projects != nil {
		projects := make([]portfolio.Project, len(*req.Projects))
		for i, proj := range *req.Projects {
			projects[i] = portfolio.Project{
				ID:          proj.ID,
				Title:       proj.Title,
				Description: proj.Description,
				ImageURL:    proj.ImageURL,
				Link:        proj.Link,
				Tags:        proj.Tags,
			}
		}
		patch.Projects = &projects
	}
	return patch
}

// Assist DTOs

type DraftBioRequest struct {
	Name   string   `json:"name" binding:"required"`
	Skills []string `json:"skills"`
	Tone   string   `json:"tone"`
}

type PolishTextRequest struct {
	Text string `json:"text" binding:"required"`
}

type AssistResponse struct {
	Text string `json:"text"`
}
