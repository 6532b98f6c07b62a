package service

import "context"

// CopyService drafts portfolio copy with a text-generation backend. The
// store has no dependency on it; only the HTTP layer consumes it, and every
// failure is absorbed there into a fallback string.
type CopyService interface {
	// DraftBio writes a short professional bio for the given name and
	// skill list. Tone defaults to "professional" when empty.
	DraftBio(ctx context.Context, name string, skills []string, tone string) (string, error)
	// PolishText rewrites a project description to be more concise and
	// compelling.
	PolishText(ctx context.Context, text string) (string, error)
}
