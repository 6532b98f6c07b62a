package portfolio

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Theme string

const (
	ThemeMinimal  Theme = "minimal"
	ThemeModern   Theme = "modern"
	ThemeCreative Theme = "creative"
)

func (t Theme) Valid() bool {
	switch t {
	case ThemeMinimal, ThemeModern, ThemeCreative:
		return true
	}
	return false
}

// SocialLinks holds the fixed provider set. Empty strings mean "not set".
type SocialLinks struct {
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Project is owned exclusively by its parent portfolio; the list is always
// replaced wholesale on save, never patched per element.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Link        string   `json:"link,omitempty"`
	Tags        []string `json:"tags"`
}

// Portfolio is the editable content record, exactly one per account.
type Portfolio struct {
	OwnerID     uuid.UUID   `json:"owner_id"`
	DisplayName string      `json:"display_name"`
	Title       string      `json:"title"`
	Bio         string      `json:"bio"`
	Skills      []string    `json:"skills"`
	Projects    []Project   `json:"projects"`
	Theme       Theme       `json:"theme"`
	SocialLinks SocialLinks `json:"social_links"`
	IsPublished bool        `json:"is_published"`
	PublishedAt *time.Time  `json:"published_at,omitempty"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

var (
	ErrPortfolioNotFound = errors.New("portfolio not found")
	ErrInvalidTheme      = errors.New("theme must be one of minimal, modern, creative")
)

// NewDefault is the portfolio every fresh account starts with.
func NewDefault(ownerID uuid.UUID, displayName string, now time.Time) *Portfolio {
	return &Portfolio{
		OwnerID:     ownerID,
		DisplayName: displayName,
		Title:       "Software Developer",
		Bio:         "I build things for the web.",
		Skills:      []string{"JavaScript", "React"},
		Projects:    []Project{},
		Theme:       ThemeModern,
		SocialLinks: SocialLinks{},
		IsPublished: false,
		UpdatedAt:   now,
	}
}

// Patch is a partial portfolio. Nil fields are left untouched by Apply;
// present fields overwrite. SocialLinks and Projects are replaced wholesale
// when present (shallow merge).
type Patch struct {
	DisplayName *string      `json:"display_name"`
	Title       *string      `json:"title"`
	Bio         *string      `json:"bio"`
	Skills      *[]string    `json:"skills"`
	Projects    *[]Project   `json:"projects"`
	Theme       *Theme       `json:"theme"`
	SocialLinks *SocialLinks `json:"social_links"`
	IsPublished *bool        `json:"is_published"`
}

func (patch Patch) Validate() error {
	if patch.Theme != nil && !patch.Theme.Valid() {
		return ErrInvalidTheme
	}
	return nil
}

// Apply merges the patch into p. PublishedAt is stamped on the
// unpublished-to-published transition and cleared on unpublish; re-saving an
// already published portfolio keeps the original timestamp.
func (p *Portfolio) Apply(patch Patch, now time.Time) {
	if patch.DisplayName != nil {
		p.DisplayName = *patch.DisplayName
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Bio != nil {
		p.Bio = *patch.Bio
	}
	if patch.Skills != nil {
		p.Skills = *patch.Skills
	}
	if patch.Projects != nil {
		p.Projects = *patch.Projects
	}
	if patch.Theme != nil {
		p.Theme = *patch.Theme
	}
	if patch.SocialLinks != nil {
		p.SocialLinks = *patch.SocialLinks
	}
	if patch.IsPublished != nil {
		switch {
		case *patch.IsPublished && !p.IsPublished:
			ts := now
			p.PublishedAt = &ts
		case !*patch.IsPublished:
			p.PublishedAt = nil
		}
		p.IsPublished = *patch.IsPublished
	}
	p.UpdatedAt = now
}

type Repository interface {
	Create(ctx context.Context, p *Portfolio) error
	// GetByOwner returns ErrPortfolioNotFound when no record exists for the
	// owner; the collections are stored independently, so callers must
	// tolerate the miss.
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*Portfolio, error)
	// ApplyPatch runs the read-merge-write cycle under the collection lock
	// so concurrent saves to the same owner cannot lose updates. It never
	// creates a record.
	ApplyPatch(ctx context.Context, ownerID uuid.UUID, patch Patch, now time.Time) (*Portfolio, error)
	Delete(ctx context.Context, ownerID uuid.UUID) error
}
