package club

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/ivangarzab/kluvs-bot/internal/services/club Service

// Service defines the domain operations command handlers rely on. It sits
// between the Discord layer and the backend API client so handlers never
// build backend requests themselves.
type Service interface {
	// FindClub resolves the club bound to a Discord channel, if any
	FindClub(ctx context.Context, input *FindClubInput) (*FindClubOutput, error)

	// GetActiveSession resolves the club for a channel and returns its
	// active reading session
	GetActiveSession(ctx context.Context, input *GetActiveSessionInput) (*GetActiveSessionOutput, error)

	// RegisterServer registers a guild with the backend
	RegisterServer(ctx context.Context, input *RegisterServerInput) (*RegisterServerOutput, error)

	// WelcomeMember creates a member profile for a user who joined the guild
	WelcomeMember(ctx context.Context, input *WelcomeMemberInput) (*WelcomeMemberOutput, error)

	// AddToShameList records members who missed the club's due date
	AddToShameList(ctx context.Context, input *AddToShameListInput) (*AddToShameListOutput, error)
}
