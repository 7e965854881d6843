package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type MessageList []Message

// Message is a buffered copy of a single remote message. message_id is the
// remote-assigned snowflake and the sole idempotency key; the scope fields
// (guild, channel, author) never change after creation.
type Message struct {
	MessageID       string         `db:"message_id" json:"message_id"`
	GuildID         string         `db:"guild_id" json:"guild_id"`
	ChannelID       string         `db:"channel_id" json:"channel_id"`
	AuthorID        string         `db:"author_id" json:"author_id"`
	AuthorName      string         `db:"author_name" json:"author_name"`
	Content         *string        `db:"content" json:"content,omitempty"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	EditedAt        *time.Time     `db:"edited_at" json:"edited_at,omitempty"`
	IsPinned        bool           `db:"is_pinned" json:"is_pinned"`
	HasAttachments  bool           `db:"has_attachments" json:"has_attachments"`
	HasEmbeds       bool           `db:"has_embeds" json:"has_embeds"`
	ReactionCount   int64          `db:"reaction_count" json:"reaction_count"`
	AttachmentsData AttachmentList `db:"attachments_data" json:"attachments_data"`
	EmbedsData      EmbedList      `db:"embeds_data" json:"embeds_data"`
	ReactionsData   ReactionList   `db:"reactions_data" json:"reactions_data"`
	RawData         RawJSON        `db:"raw_data" json:"-"`
}

type Attachment struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

type Embed struct {
	Type  string `json:"type"`
	Title string `json:"title,omitempty"`
	URL   string `json:"url,omitempty"`
}

type Reaction struct {
	Emoji    string `json:"emoji"`
	Count    int64  `json:"count"`
	IsCustom bool   `json:"is_custom"`
}

type AttachmentList []Attachment

func (l AttachmentList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return jsonbValue(l)
}

func (l *AttachmentList) Scan(src interface{}) error {
	return jsonbScan(src, l)
}

type EmbedList []Embed

func (l EmbedList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return jsonbValue(l)
}

func (l *EmbedList) Scan(src interface{}) error {
	return jsonbScan(src, l)
}

type ReactionList []Reaction

func (l ReactionList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return jsonbValue(l)
}

func (l *ReactionList) Scan(src interface{}) error {
	return jsonbScan(src, l)
}

// TotalCount keeps the reaction counter consistent with the snapshot it came
// from: the stored counter always equals the sum over the latest applied list.
func (l ReactionList) TotalCount() int64 {
	var total int64
	for _, r := range l {
		total += r.Count
	}
	return total
}

// RawJSON carries the full remote message snapshot, write-once at creation.
type RawJSON json.RawMessage

func (r RawJSON) Value() (driver.Value, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return []byte(r), nil
}

func (r *RawJSON) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*r = nil
		return nil
	case []byte:
		*r = append((*r)[:0], v...)
		return nil
	case string:
		*r = RawJSON(v)
		return nil
	default:
		return fmt.Errorf("failed to scan raw json from %T", src)
	}
}

func jsonbValue(v interface{}) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal jsonb value: %w", err)
	}
	return data, nil
}

func jsonbScan(src interface{}, dst interface{}) error {
	if src == nil {
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to scan jsonb from %T", src)
	}

	return json.Unmarshal(data, dst)
}
