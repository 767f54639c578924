package models

// Club represents a book club within a Discord server
type Club struct {
	// ID is the unique identifier for this club
	ID string `json:"id"`

	// Name is the display name of the club
	Name string `json:"name"`

	// ServerID is the Discord guild this club belongs to
	ServerID string `json:"server_id"`

	// DiscordChannel is the channel the club lives in
	DiscordChannel string `json:"discord_channel,omitempty"`

	// Members are the member profiles enrolled in this club
	Members []*Member `json:"members,omitempty"`

	// ActiveSession is the current reading session, if any
	ActiveSession *Session `json:"active_session,omitempty"`

	// ShameList holds the IDs of members who missed the last due date
	ShameList []int64 `json:"shame_list,omitempty"`
}
