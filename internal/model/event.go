package model

import (
	"encoding/json"
	"fmt"
	"time"
)

type EventKind string

const (
	EventMessageCreated      EventKind = "message_created"
	EventMessageUpdated      EventKind = "message_updated"
	EventMessageDeleted      EventKind = "message_deleted"
	EventMessagesBulkDeleted EventKind = "messages_bulk_deleted"
	EventReactionsChanged    EventKind = "reactions_changed"
)

// MessageEvent is the envelope published to the message events topic by the
// gateway side. The payload shape depends on Kind.
type MessageEvent struct {
	Kind    EventKind       `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

// MessageSnapshot is the remote message state carried by create/update events
// and returned by remote history fetches. It is a point-in-time copy, never a
// delta.
type MessageSnapshot struct {
	MessageID   string          `json:"message_id"`
	GuildID     string          `json:"guild_id"`
	ChannelID   string          `json:"channel_id"`
	AuthorID    string          `json:"author_id"`
	AuthorName  string          `json:"author_name"`
	AuthorIsBot bool            `json:"author_is_bot"`
	Content     *string         `json:"content,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	EditedAt    *time.Time      `json:"edited_at,omitempty"`
	IsPinned    bool            `json:"is_pinned"`
	Attachments AttachmentList  `json:"attachments,omitempty"`
	Embeds      EmbedList       `json:"embeds,omitempty"`
	Raw         json.RawMessage `json:"raw,omitempty"`
}

func (s *MessageSnapshot) Validate() error {
	if s.MessageID == "" {
		return fmt.Errorf("message_id is required")
	}
	if s.GuildID == "" {
		return fmt.Errorf("guild_id is required")
	}
	if s.ChannelID == "" {
		return fmt.Errorf("channel_id is required")
	}
	if s.AuthorID == "" {
		return fmt.Errorf("author_id is required")
	}
	if s.CreatedAt.IsZero() {
		return fmt.Errorf("created_at is required")
	}

	return nil
}

// ToMessage converts the snapshot into its stored form. Reaction state is
// owned by the reactions path and starts empty.
func (s *MessageSnapshot) ToMessage() *Message {
	return &Message{
		MessageID:       s.MessageID,
		GuildID:         s.GuildID,
		ChannelID:       s.ChannelID,
		AuthorID:        s.AuthorID,
		AuthorName:      s.AuthorName,
		Content:         s.Content,
		CreatedAt:       s.CreatedAt,
		EditedAt:        s.EditedAt,
		IsPinned:        s.IsPinned,
		HasAttachments:  len(s.Attachments) > 0,
		HasEmbeds:       len(s.Embeds) > 0,
		ReactionCount:   0,
		AttachmentsData: s.Attachments,
		EmbedsData:      s.Embeds,
		ReactionsData:   ReactionList{},
		RawData:         RawJSON(s.Raw),
	}
}

type MessageDeletedPayload struct {
	MessageID string `json:"message_id"`
	GuildID   string `json:"guild_id"`
	ChannelID string `json:"channel_id"`
}

func (p *MessageDeletedPayload) Validate() error {
	if p.MessageID == "" {
		return fmt.Errorf("message_id is required")
	}

	return nil
}

type MessagesBulkDeletedPayload struct {
	GuildID    string   `json:"guild_id"`
	ChannelID  string   `json:"channel_id"`
	MessageIDs []string `json:"message_ids"`
}

func (p *MessagesBulkDeletedPayload) Validate() error {
	if p.ChannelID == "" {
		return fmt.Errorf("channel_id is required")
	}

	return nil
}

// ReactionsChangedPayload carries the full current reaction list of the
// message, not the single reaction that changed.
type ReactionsChangedPayload struct {
	MessageID string       `json:"message_id"`
	GuildID   string       `json:"guild_id"`
	ChannelID string       `json:"channel_id"`
	Reactions ReactionList `json:"reactions"`
}

func (p *ReactionsChangedPayload) Validate() error {
	if p.MessageID == "" {
		return fmt.Errorf("message_id is required")
	}
	for _, r := range p.Reactions {
		if r.Emoji == "" {
			return fmt.Errorf("reaction emoji is required")
		}
		if r.Count < 0 {
			return fmt.Errorf("reaction count cannot be negative")
		}
	}

	return nil
}

// RemoteChannel is a guild text channel as seen by the remote adapter.
type RemoteChannel struct {
	ID   string
	Name string
}
