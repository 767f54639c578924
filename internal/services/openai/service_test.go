package openai

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/suite"
)

type fakeCompleter struct {
	lastRequest openai.ChatCompletionRequest
	response    string
	err         error
}

func (f *fakeCompleter) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.lastRequest = req
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.response}},
		},
	}, nil
}

type OpenAIServiceTestSuite struct {
	suite.Suite
	completer *fakeCompleter
	svc       Service
	ctx       context.Context
}

func (s *OpenAIServiceTestSuite) SetupTest() {
	s.completer = &fakeCompleter{response: "a thoughtful answer"}

	svc, err := New(&Config{client: s.completer})
	s.Require().NoError(err)
	s.svc = svc

	s.ctx = context.Background()
}

func TestOpenAIServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OpenAIServiceTestSuite))
}

func (s *OpenAIServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrMissingAPIKey)
}

func (s *OpenAIServiceTestSuite) TestAsk() {
	output, err := s.svc.Ask(s.ctx, &AskInput{
		Question:   "Who is the narrator?",
		BookTitle:  "The Great Gatsby",
		BookAuthor: "F. Scott Fitzgerald",
	})
	s.Require().NoError(err)
	s.Equal("a thoughtful answer", output.Answer)

	s.Require().Len(s.completer.lastRequest.Messages, 2)
	s.Equal(openai.ChatMessageRoleSystem, s.completer.lastRequest.Messages[0].Role)
	s.Contains(s.completer.lastRequest.Messages[1].Content, "The Great Gatsby by F. Scott Fitzgerald")
	s.Contains(s.completer.lastRequest.Messages[1].Content, "Who is the narrator?")
}

func (s *OpenAIServiceTestSuite) TestAsk_NoBookScope() {
	_, err := s.svc.Ask(s.ctx, &AskInput{Question: "What should we read next?"})
	s.Require().NoError(err)
	s.Equal("What should we read next?", s.completer.lastRequest.Messages[1].Content)
}

func (s *OpenAIServiceTestSuite) TestAsk_EmptyQuestion() {
	_, err := s.svc.Ask(s.ctx, &AskInput{})
	s.Error(err)
}

func (s *OpenAIServiceTestSuite) TestSummarizeBook() {
	output, err := s.svc.SummarizeBook(s.ctx, &SummarizeBookInput{
		Title:  "Dune",
		Author: "Frank Herbert",
	})
	s.Require().NoError(err)
	s.Equal("a thoughtful answer", output.Summary)
	s.Equal("What is Dune by Frank Herbert about?", s.completer.lastRequest.Messages[1].Content)
}

func (s *OpenAIServiceTestSuite) TestCompletionError() {
	s.completer.err = errors.New("quota exceeded")

	_, err := s.svc.SummarizeBook(s.ctx, &SummarizeBookInput{Title: "Dune"})
	s.Error(err)
	s.Contains(err.Error(), "quota exceeded")
}

func (s *OpenAIServiceTestSuite) TestEmptyChoices() {
	svc, err := New(&Config{client: emptyCompleter{}})
	s.Require().NoError(err)

	_, err = svc.SummarizeBook(s.ctx, &SummarizeBookInput{Title: "Dune"})
	s.ErrorIs(err, ErrEmptyResponse)
}

type emptyCompleter struct{}

func (emptyCompleter) CreateChatCompletion(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return openai.ChatCompletionResponse{}, nil
}
