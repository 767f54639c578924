package models

// Server represents a Discord guild registered with the book club backend
type Server struct {
	// ID is the Discord guild ID
	ID string `json:"id"`

	// Name is the display name of the Discord server
	Name string `json:"name"`

	// Clubs are the book clubs hosted in this server
	Clubs []*Club `json:"clubs,omitempty"`
}
