package club

// ClubError is a custom error type for club service errors
type ClubError string

// Error implements the error interface
func (e ClubError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrClubNotFound    ClubError = "no book club found in this channel"
	ErrNoActiveSession ClubError = "no active reading session"
	ErrNilConfig       ClubError = "config cannot be nil"
	ErrNilAPIClient    ClubError = "api client cannot be nil"
)
