package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/s21platform/buffer-service/internal/config"
	"github.com/s21platform/buffer-service/internal/model"
)

// ErrNotFound is returned when an operation targets a message_id absent from
// the buffer.
var ErrNotFound = errors.New("message not found")

const defaultQueryLimit = 50

var messageColumns = []string{
	"message_id",
	"guild_id",
	"channel_id",
	"author_id",
	"author_name",
	"content",
	"created_at",
	"edited_at",
	"is_pinned",
	"has_attachments",
	"has_embeds",
	"reaction_count",
	"attachments_data",
	"embeds_data",
	"reactions_data",
	"raw_data",
}

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

// SaveMessage inserts the message iff no row with its message_id exists and
// reports whether a row was created. A concurrent insert of the same id is
// absorbed by the conflict clause, so a race between a live create event and a
// reconciliation add converges to one row without surfacing a duplicate-key
// error.
func (r *Repository) SaveMessage(ctx context.Context, msg *model.Message) (bool, error) {
	query, args, err := sq.Insert("messages").
		Columns(messageColumns...).
		Values(
			msg.MessageID,
			msg.GuildID,
			msg.ChannelID,
			msg.AuthorID,
			msg.AuthorName,
			msg.Content,
			msg.CreatedAt,
			msg.EditedAt,
			msg.IsPinned,
			msg.HasAttachments,
			msg.HasEmbeds,
			msg.ReactionCount,
			msg.AttachmentsData,
			msg.EmbedsData,
			msg.ReactionsData,
			msg.RawData,
		).
		Suffix("ON CONFLICT (message_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	result, err := r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to save message: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %v", err)
	}

	return affected > 0, nil
}

// UpsertMessage saves the message if absent, otherwise overwrites the mutable
// content fields. Reaction state and the immutable scope fields are never
// touched here.
func (r *Repository) UpsertMessage(ctx context.Context, msg *model.Message) error {
	query, args, err := sq.Insert("messages").
		Columns(messageColumns...).
		Values(
			msg.MessageID,
			msg.GuildID,
			msg.ChannelID,
			msg.AuthorID,
			msg.AuthorName,
			msg.Content,
			msg.CreatedAt,
			msg.EditedAt,
			msg.IsPinned,
			msg.HasAttachments,
			msg.HasEmbeds,
			msg.ReactionCount,
			msg.AttachmentsData,
			msg.EmbedsData,
			msg.ReactionsData,
			msg.RawData,
		).
		Suffix(`ON CONFLICT (message_id) DO UPDATE SET
			content = EXCLUDED.content,
			edited_at = EXCLUDED.edited_at,
			is_pinned = EXCLUDED.is_pinned,
			has_attachments = EXCLUDED.has_attachments,
			has_embeds = EXCLUDED.has_embeds,
			attachments_data = EXCLUDED.attachments_data,
			embeds_data = EXCLUDED.embeds_data`).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to upsert message: %v", err)
	}

	return nil
}

// UpdateReactions replaces the stored reaction snapshot and counter in one
// statement. It is a snapshot replace, never a merge with prior state.
func (r *Repository) UpdateReactions(ctx context.Context, messageID string, reactions model.ReactionList, totalCount int64) error {
	query, args, err := sq.Update("messages").
		Set("reactions_data", reactions).
		Set("reaction_count", totalCount).
		Where(sq.Eq{"message_id": messageID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	result, err := r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update reactions: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %v", err)
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteMessage hard-deletes the row and reports whether it existed. Deleting
// an absent message is not an error.
func (r *Repository) DeleteMessage(ctx context.Context, messageID string) (bool, error) {
	query, args, err := sq.Delete("messages").
		Where(sq.Eq{"message_id": messageID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	result, err := r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to delete message: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %v", err)
	}

	return affected > 0, nil
}

// BulkDeleteMessages deletes all matching rows in one statement and returns
// the count actually deleted, which may be less than len(messageIDs).
func (r *Repository) BulkDeleteMessages(ctx context.Context, messageIDs []string) (int64, error) {
	if len(messageIDs) == 0 {
		return 0, nil
	}

	query, args, err := sq.Delete("messages").
		Where(sq.Eq{"message_id": messageIDs}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	result, err := r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk delete messages: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %v", err)
	}

	return affected, nil
}

func (r *Repository) MessageExists(ctx context.Context, messageID string) (bool, error) {
	query, args, err := sq.
		Select("COUNT(*) > 0").
		From("messages").
		Where(sq.Eq{"message_id": messageID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	var exists bool
	err = r.connection.GetContext(ctx, &exists, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to check message existence: %v", err)
	}

	return exists, nil
}

// GetChannelMessageIDs returns the most recent limit message ids of the
// channel, newest first. This is the local bounded window handed to
// reconciliation, not the full channel history.
func (r *Repository) GetChannelMessageIDs(ctx context.Context, channelID string, limit int) ([]string, error) {
	query, args, err := sq.Select("message_id").
		From("messages").
		Where(sq.Eq{"channel_id": channelID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var ids []string
	err = r.connection.SelectContext(ctx, &ids, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get channel message ids: %v", err)
	}

	return ids, nil
}

// GetMessages runs the facade query: all set filters are conjunctive, results
// are newest first and truncated to the filter limit.
func (r *Repository) GetMessages(ctx context.Context, filter *model.MessageFilter) (*model.MessageList, error) {
	queryBuilder := sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"guild_id": filter.GuildID}).
		OrderBy("created_at DESC")

	if filter.ChannelID != "" {
		queryBuilder = queryBuilder.Where(sq.Eq{"channel_id": filter.ChannelID})
	}

	if filter.AuthorID != "" {
		queryBuilder = queryBuilder.Where(sq.Eq{"author_id": filter.AuthorID})
	}

	if filter.From != nil {
		queryBuilder = queryBuilder.Where(sq.GtOrEq{"created_at": *filter.From})
	}

	if filter.To != nil {
		queryBuilder = queryBuilder.Where(sq.LtOrEq{"created_at": *filter.To})
	}

	if filter.HasAttachments != nil {
		queryBuilder = queryBuilder.Where(sq.Eq{"has_attachments": *filter.HasAttachments})
	}

	if filter.Limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(filter.Limit))
	} else {
		queryBuilder = queryBuilder.Limit(defaultQueryLimit)
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	err = r.connection.SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %v", err)
	}

	return &messages, nil
}
