package generation

import "context"

// Generator defines the interface for generating social content from text.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
type Generator interface {
	// GenerateComments creates a batch of short comments reacting to the
	// provided context text. The number of comments is chosen by the
	// implementation per call; callers must not assume a fixed length.
	//
	// Returns the ordered comment list or an error classifying the failure
	// (see errors.go for the specific kinds).
	GenerateComments(ctx context.Context, commentContext string) ([]string, error)

	// GeneratePostContent creates a single piece of post text for the
	// provided theme.
	//
	// Returns the trimmed post text or an error classifying the failure.
	GeneratePostContent(ctx context.Context, theme string) (string, error)
}
