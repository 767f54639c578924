package models

// Session represents an active reading period for a club
type Session struct {
	// ID is the unique identifier for this session
	ID string `json:"id"`

	// ClubID is the club this session belongs to
	ClubID string `json:"club_id"`

	// Book is the book being read this session
	Book *Book `json:"book"`

	// DueDate is when the book should be finished, formatted YYYY-MM-DD
	DueDate string `json:"due_date,omitempty"`

	// Discussions are the scheduled discussion meetings
	Discussions []*Discussion `json:"discussions,omitempty"`
}

// Book holds the metadata for a book referenced by a session
type Book struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Edition string `json:"edition,omitempty"`
	Year    int    `json:"year,omitempty"`
	ISBN    string `json:"isbn,omitempty"`
}

// Discussion is a scheduled discussion meeting within a session
type Discussion struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Location string `json:"location,omitempty"`
}
