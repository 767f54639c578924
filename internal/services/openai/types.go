package openai

// AskInput contains parameters for a free-form question
type AskInput struct {
	// Question is the user's question
	Question string

	// BookTitle scopes the question to a book when non-empty
	BookTitle string

	// BookAuthor further identifies the book when known
	BookAuthor string
}

// AskOutput contains the generated answer
type AskOutput struct {
	Answer string
}

// SummarizeBookInput contains parameters for a book summary
type SummarizeBookInput struct {
	Title  string
	Author string
}

// SummarizeBookOutput contains the generated summary
type SummarizeBookOutput struct {
	Summary string
}
