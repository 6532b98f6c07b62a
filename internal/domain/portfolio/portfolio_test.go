package portfolio

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefault(t *testing.T) {
	ownerID := uuid.New()
	now := time.Now().UTC()

	p := NewDefault(ownerID, "Alice", now)

	assert.Equal(t, ownerID, p.OwnerID)
	assert.Equal(t, "Alice", p.DisplayName)
	assert.Equal(t, "Software Developer", p.Title)
	assert.Equal(t, ThemeModern, p.Theme)
	assert.Equal(t, []string{"JavaScript", "React"}, p.Skills)
	assert.Empty(t, p.Projects)
	assert.False(t, p.IsPublished)
	assert.Nil(t, p.PublishedAt)
}

func TestApply_PartialMerge(t *testing.T) {
	now := time.Now().UTC()
	p := NewDefault(uuid.New(), "Alice", now)

	bio := "X"
	p.Apply(Patch{Bio: &bio}, now.Add(time.Minute))

	assert.Equal(t, "X", p.Bio)
	// everything else untouched
	assert.Equal(t, "Alice", p.DisplayName)
	assert.Equal(t, "Software Developer", p.Title)
	assert.Equal(t, []string{"JavaScript", "React"}, p.Skills)
	assert.Equal(t, ThemeModern, p.Theme)
	assert.False(t, p.IsPublished)
}

func TestApply_SocialLinksReplacedWholesale(t *testing.T) {
	now := time.Now().UTC()
	p := NewDefault(uuid.New(), "Alice", now)
	p.SocialLinks = SocialLinks{GitHub: "https://github.com/alice", Twitter: "https://twitter.com/alice"}

	links := SocialLinks{Website: "https://alice.dev"}
	p.Apply(Patch{SocialLinks: &links}, now)

	// shallow merge: the nested object is not merged key-by-key
	assert.Equal(t, "", p.SocialLinks.GitHub)
	assert.Equal(t, "", p.SocialLinks.Twitter)
	assert.Equal(t, "https://alice.dev", p.SocialLinks.Website)
}

func TestApply_ProjectsReplacedWholesale(t *testing.T) {
	now := time.Now().UTC()
	p := NewDefault(uuid.New(), "Alice", now)
	p.Projects = []Project{{ID: "p1", Title: "Old"}}

	projects := []Project{{ID: "p2", Title: "New", Tags: []string{"go"}}}
	p.Apply(Patch{Projects: &projects}, now)

	require.Len(t, p.Projects, 1)
	assert.Equal(t, "p2", p.Projects[0].ID)
}

func TestApply_PublishTransitionStampsTimestamp(t *testing.T) {
	start := time.Now().UTC()
	p := NewDefault(uuid.New(), "Alice", start)

	published := true
	publishTime := start.Add(time.Hour)
	p.Apply(Patch{IsPublished: &published}, publishTime)

	require.NotNil(t, p.PublishedAt)
	assert.Equal(t, publishTime, *p.PublishedAt)

	// re-saving an already published portfolio keeps the original stamp
	later := publishTime.Add(time.Hour)
	p.Apply(Patch{IsPublished: &published}, later)
	assert.Equal(t, publishTime, *p.PublishedAt)

	// unpublishing clears it
	unpublished := false
	p.Apply(Patch{IsPublished: &unpublished}, later)
	assert.False(t, p.IsPublished)
	assert.Nil(t, p.PublishedAt)
}

func TestPatchValidate(t *testing.T) {
	valid := ThemeCreative
	assert.NoError(t, Patch{Theme: &valid}.Validate())

	invalid := Theme("vaporwave")
	assert.ErrorIs(t, Patch{Theme: &invalid}.Validate(), ErrInvalidTheme)

	assert.NoError(t, Patch{}.Validate())
}

func TestThemeValid(t *testing.T) {
	assert.True(t, ThemeMinimal.Valid())
	assert.True(t, ThemeModern.Valid())
	assert.True(t, ThemeCreative.Valid())
	assert.False(t, Theme("").Valid())
	assert.False(t, Theme("dark").Valid())
}
