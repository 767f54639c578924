package openai

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

const systemPrompt = "You are a friendly book club assistant. " +
	"Keep answers concise and avoid spoiling major plot twists unless asked."

var (
	ErrNilConfig     = errors.New("config cannot be nil")
	ErrMissingAPIKey = errors.New("API key is required")
	ErrEmptyResponse = errors.New("model returned no choices")
)

// chatCompleter is the slice of the OpenAI client the service uses
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Config holds configuration for the AI service
type Config struct {
	// APIKey is the OpenAI API key
	APIKey string

	// Model overrides the default chat model
	Model string

	// Logger is optional; the standard logger is used when nil
	Logger *logrus.Logger

	client chatCompleter
}

// service implements the Service interface
type service struct {
	client chatCompleter
	model  string
	log    *logrus.Logger
}

// New creates a new AI service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	client := cfg.client
	if client == nil {
		if cfg.APIKey == "" {
			return nil, ErrMissingAPIKey
		}
		client = openai.NewClient(cfg.APIKey)
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4o
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &service{
		client: client,
		model:  model,
		log:    log,
	}, nil
}

// Ask answers a free-form question, optionally scoped to a book
func (s *service) Ask(ctx context.Context, input *AskInput) (*AskOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Question == "" {
		return nil, errors.New("question is required")
	}

	prompt := input.Question
	if input.BookTitle != "" {
		book := input.BookTitle
		if input.BookAuthor != "" {
			book = fmt.Sprintf("%s by %s", book, input.BookAuthor)
		}
		prompt = fmt.Sprintf("The book club is currently reading %s. %s", book, input.Question)
	}

	answer, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return &AskOutput{Answer: answer}, nil
}

// SummarizeBook produces a short summary of a book
func (s *service) SummarizeBook(ctx context.Context, input *SummarizeBookInput) (*SummarizeBookOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Title == "" {
		return nil, errors.New("title is required")
	}

	book := input.Title
	if input.Author != "" {
		book = fmt.Sprintf("%s by %s", book, input.Author)
	}

	summary, err := s.complete(ctx, fmt.Sprintf("What is %s about?", book))
	if err != nil {
		return nil, err
	}

	return &SummarizeBookOutput{Summary: summary}, nil
}

func (s *service) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		s.log.WithError(err).Error("chat completion failed")
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}
