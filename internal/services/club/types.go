package club

import "github.com/ivangarzab/kluvs-bot/internal/models"

// FindClubInput contains parameters for resolving a channel's club
type FindClubInput struct {
	ChannelID string
	GuildID   string
}

// FindClubOutput contains the resolved club, nil when none exists
type FindClubOutput struct {
	Club *models.Club
}

// GetActiveSessionInput contains parameters for fetching the active session
type GetActiveSessionInput struct {
	ChannelID string
	GuildID   string
}

// GetActiveSessionOutput contains the club and its active session
type GetActiveSessionOutput struct {
	Club    *models.Club
	Session *models.Session
}

// RegisterServerInput contains parameters for registering a guild
type RegisterServerInput struct {
	GuildID string
	Name    string
}

// RegisterServerOutput contains the registered server
type RegisterServerOutput struct {
	Server *models.Server
}

// WelcomeMemberInput contains parameters for creating a member profile
type WelcomeMemberInput struct {
	// UserID is the Discord snowflake of the joining user
	UserID string
	Name   string
}

// WelcomeMemberOutput contains the created member profile
type WelcomeMemberOutput struct {
	Member *models.Member
}

// AddToShameListInput contains parameters for shaming members
type AddToShameListInput struct {
	ClubID    string
	GuildID   string
	MemberIDs []int64
}

// AddToShameListOutput contains the updated club
type AddToShameListOutput struct {
	Club *models.Club
}
