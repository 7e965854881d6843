package model

import "time"

// MessageFilter narrows a buffer query. All set fields are combined with AND;
// GuildID is always required.
type MessageFilter struct {
	GuildID        string
	ChannelID      string
	AuthorID       string
	From           *time.Time
	To             *time.Time
	HasAttachments *bool
	Limit          int
}
