package openai

import "context"

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/ivangarzab/kluvs-bot/internal/services/openai Service

// Service provides AI-generated responses for book-related prompts
type Service interface {
	// Ask answers a free-form question, optionally scoped to a book
	Ask(ctx context.Context, input *AskInput) (*AskOutput, error)

	// SummarizeBook produces a short summary of a book
	SummarizeBook(ctx context.Context, input *SummarizeBookInput) (*SummarizeBookOutput, error)
}
