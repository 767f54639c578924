package models

// Member represents a user profile tracked by the backend
type Member struct {
	// ID is the backend's numeric member ID
	ID int64 `json:"id"`

	// Name is the member's display name
	Name string `json:"name"`

	// Points accumulated through participation
	Points int `json:"points"`

	// BooksRead is the number of books completed with a club
	BooksRead int `json:"books_read"`

	// Clubs holds the IDs of the clubs this member belongs to
	Clubs []string `json:"clubs,omitempty"`
}
