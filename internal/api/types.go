// Package api holds the request and response shapes of the buffer query
// facade.
package api

import "time"

type GetMessagesRequest struct {
	GuildID        string
	ChannelID      string
	AuthorID       string
	From           *time.Time
	To             *time.Time
	HasAttachments *bool
	Limit          int
}

type Message struct {
	MessageID      string       `json:"message_id"`
	GuildID        string       `json:"guild_id"`
	ChannelID      string       `json:"channel_id"`
	AuthorID       string       `json:"author_id"`
	AuthorName     string       `json:"author_name"`
	Content        *string      `json:"content,omitempty"`
	CreatedAt      string       `json:"created_at"`
	EditedAt       *string      `json:"edited_at,omitempty"`
	IsPinned       bool         `json:"is_pinned"`
	HasAttachments bool         `json:"has_attachments"`
	HasEmbeds      bool         `json:"has_embeds"`
	ReactionCount  int64        `json:"reaction_count"`
	Attachments    []Attachment `json:"attachments,omitempty"`
	Reactions      []Reaction   `json:"reactions,omitempty"`
}

type Attachment struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

type Reaction struct {
	Emoji    string `json:"emoji"`
	Count    int64  `json:"count"`
	IsCustom bool   `json:"is_custom"`
}

type GetMessagesResponse struct {
	Total    int       `json:"total"`
	Messages []Message `json:"messages"`
}

type MessageExistsResponse struct {
	MessageID string `json:"message_id"`
	Exists    bool   `json:"exists"`
}

type Error struct {
	Error string `json:"error"`
}
