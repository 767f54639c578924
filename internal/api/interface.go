package api

import (
	"context"

	"github.com/ivangarzab/kluvs-bot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/ivangarzab/kluvs-bot/internal/api Client

// Client defines the typed operations against the book club backend.
// Every call is a single logical round trip with a bounded retry loop;
// no state is carried between calls.
type Client interface {
	// RegisterServer registers a Discord guild with the backend
	RegisterServer(ctx context.Context, input *RegisterServerInput) (*models.Server, error)

	// GetServer retrieves a server and its clubs
	GetServer(ctx context.Context, input *GetServerInput) (*models.Server, error)

	// ListServers retrieves all registered servers
	ListServers(ctx context.Context) ([]*models.Server, error)

	// UpdateServer updates server information
	UpdateServer(ctx context.Context, input *UpdateServerInput) (*models.Server, error)

	// DeleteServer deletes a server and all associated data
	DeleteServer(ctx context.Context, input *DeleteServerInput) error

	// GetClub retrieves a club by ID within a guild
	GetClub(ctx context.Context, input *GetClubInput) (*models.Club, error)

	// GetClubByChannel retrieves the club bound to a Discord channel
	GetClubByChannel(ctx context.Context, input *GetClubByChannelInput) (*models.Club, error)

	// FindClubInChannel is like GetClubByChannel but returns (nil, nil)
	// when no club is bound to the channel
	FindClubInChannel(ctx context.Context, input *GetClubByChannelInput) (*models.Club, error)

	// CreateClub creates a new club with its associated data
	CreateClub(ctx context.Context, input *CreateClubInput) (*models.Club, error)

	// UpdateClub updates club fields
	UpdateClub(ctx context.Context, input *UpdateClubInput) (*models.Club, error)

	// DeleteClub deletes a club and all associated data
	DeleteClub(ctx context.Context, input *DeleteClubInput) error

	// GetMember retrieves a member profile
	GetMember(ctx context.Context, input *GetMemberInput) (*models.Member, error)

	// CreateMember creates a new member profile
	CreateMember(ctx context.Context, input *CreateMemberInput) (*models.Member, error)

	// UpdateMember updates member fields
	UpdateMember(ctx context.Context, input *UpdateMemberInput) (*models.Member, error)

	// DeleteMember deletes a member profile
	DeleteMember(ctx context.Context, input *DeleteMemberInput) error

	// GetSession retrieves a reading session
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// CreateSession creates a new reading session for a club
	CreateSession(ctx context.Context, input *CreateSessionInput) (*models.Session, error)

	// UpdateSession updates session fields
	UpdateSession(ctx context.Context, input *UpdateSessionInput) (*models.Session, error)

	// DeleteSession deletes a reading session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error
}
