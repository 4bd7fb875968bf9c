package llm

import (
	"context"

	"macrofit-backend/internal/shared"
)

// ContentResponse contains the generated text and metadata like token usage.
type ContentResponse struct {
	Content string
	Usage   shared.TokenUsage
}

// TextGenerator is an interface for generating text from a system instruction
// and a user prompt. Implementations are stateless aside from configuration,
// so one client can serve concurrent requests.
type TextGenerator interface {
	GenerateContent(ctx context.Context, system, prompt string) (ContentResponse, error)
}

// Closer is an interface for closing resources.
type Closer interface {
	Close() error
}
