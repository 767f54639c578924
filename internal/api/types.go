package api

import "github.com/ivangarzab/kluvs-bot/internal/models"

// RegisterServerInput contains parameters for registering a server
type RegisterServerInput struct {
	GuildID string
	Name    string
}

// GetServerInput contains parameters for retrieving a server
type GetServerInput struct {
	GuildID string
}

// UpdateServerInput contains parameters for updating a server
type UpdateServerInput struct {
	GuildID string
	Name    string
}

// DeleteServerInput contains parameters for deleting a server
type DeleteServerInput struct {
	GuildID string
}

// GetClubInput contains parameters for retrieving a club by ID
type GetClubInput struct {
	ClubID  string
	GuildID string
}

// GetClubByChannelInput contains parameters for retrieving a club by channel
type GetClubByChannelInput struct {
	ChannelID string
	GuildID   string
}

// CreateClubInput contains parameters for creating a club
type CreateClubInput struct {
	GuildID string
	Club    *models.Club
}

// ClubUpdate holds the club fields that can change on update.
// Zero-valued fields are omitted from the request payload.
type ClubUpdate struct {
	Name           string  `json:"name,omitempty"`
	DiscordChannel string  `json:"discord_channel,omitempty"`
	ShameList      []int64 `json:"shame_list,omitempty"`
}

// UpdateClubInput contains parameters for updating a club
type UpdateClubInput struct {
	ClubID  string
	GuildID string
	Update  ClubUpdate
}

// DeleteClubInput contains parameters for deleting a club
type DeleteClubInput struct {
	ClubID  string
	GuildID string
}

// GetMemberInput contains parameters for retrieving a member
type GetMemberInput struct {
	MemberID int64
}

// CreateMemberInput contains parameters for creating a member
type CreateMemberInput struct {
	Member *models.Member
}

// MemberUpdate holds the member fields that can change on update.
// Numeric fields are pointers so zero values can be sent explicitly.
type MemberUpdate struct {
	Name      string   `json:"name,omitempty"`
	Points    *int     `json:"points,omitempty"`
	BooksRead *int     `json:"books_read,omitempty"`
	Clubs     []string `json:"clubs,omitempty"`
}

// UpdateMemberInput contains parameters for updating a member
type UpdateMemberInput struct {
	MemberID int64
	Update   MemberUpdate
}

// DeleteMemberInput contains parameters for deleting a member
type DeleteMemberInput struct {
	MemberID int64
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	SessionID string
}

// CreateSessionInput contains parameters for creating a session
type CreateSessionInput struct {
	Session *models.Session
}

// SessionUpdate holds the session fields that can change on update.
// Discussions replace the full set; entries without an ID are created.
type SessionUpdate struct {
	Book                  *models.Book         `json:"book,omitempty"`
	DueDate               string               `json:"due_date,omitempty"`
	Discussions           []*models.Discussion `json:"discussions,omitempty"`
	DiscussionIDsToDelete []string             `json:"discussion_ids_to_delete,omitempty"`
}

// UpdateSessionInput contains parameters for updating a session
type UpdateSessionInput struct {
	SessionID string
	Update    SessionUpdate
}

// DeleteSessionInput contains parameters for deleting a session
type DeleteSessionInput struct {
	SessionID string
}

// mutationEnvelope is the backend's response wrapper for mutating calls
type mutationEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Server  *models.Server  `json:"server,omitempty"`
	Club    *models.Club    `json:"club,omitempty"`
	Member  *models.Member  `json:"member,omitempty"`
	Session *models.Session `json:"session,omitempty"`
}

// listServersEnvelope is the backend's response wrapper for listing servers
type listServersEnvelope struct {
	Servers []*models.Server `json:"servers"`
}
