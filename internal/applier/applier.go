package applier

import (
	"context"
	"errors"
	"fmt"

	"github.com/s21platform/buffer-service/internal/model"
	"github.com/s21platform/buffer-service/internal/repository/postgres"
)

// Applier translates inbound remote events into buffer store operations. It is
// stateless; every write goes through the repository and relies on message_id
// idempotency for safety against concurrent reconciliation.
type Applier struct {
	repository DBRepo
	botUserID  string
}

func New(repository DBRepo, botUserID string) *Applier {
	return &Applier{
		repository: repository,
		botUserID:  botUserID,
	}
}

// ApplyCreate buffers a newly observed message. Messages authored by the bot
// account itself are not buffered.
func (a *Applier) ApplyCreate(ctx context.Context, snapshot *model.MessageSnapshot) error {
	if snapshot.AuthorID == a.botUserID {
		return nil
	}

	_, err := a.repository.SaveMessage(ctx, snapshot.ToMessage())
	if err != nil {
		return fmt.Errorf("failed to apply message create: %v", err)
	}

	return nil
}

// ApplyEdit overwrites the mutable content fields from the edited snapshot,
// creating the row if the original create event was missed.
func (a *Applier) ApplyEdit(ctx context.Context, snapshot *model.MessageSnapshot) error {
	if snapshot.AuthorIsBot {
		return nil
	}

	err := a.repository.UpsertMessage(ctx, snapshot.ToMessage())
	if err != nil {
		return fmt.Errorf("failed to apply message edit: %v", err)
	}

	return nil
}

func (a *Applier) ApplyDelete(ctx context.Context, messageID string) error {
	_, err := a.repository.DeleteMessage(ctx, messageID)
	if err != nil {
		return fmt.Errorf("failed to apply message delete: %v", err)
	}

	return nil
}

// ApplyBulkDelete removes every id carried with a guild scope in one
// statement and returns the count actually deleted. Deletes without a guild
// scope (direct messages) are outside the buffer and skipped.
func (a *Applier) ApplyBulkDelete(ctx context.Context, guildID string, messageIDs []string) (int64, error) {
	if guildID == "" {
		return 0, nil
	}

	deleted, err := a.repository.BulkDeleteMessages(ctx, messageIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to apply bulk delete: %v", err)
	}

	return deleted, nil
}

// ApplyReactions replaces the stored reaction snapshot with the full current
// list carried by the event. Messages the buffer has never seen, e.g.
// pre-buffer history, are left alone.
func (a *Applier) ApplyReactions(ctx context.Context, messageID string, reactions model.ReactionList) error {
	exists, err := a.repository.MessageExists(ctx, messageID)
	if err != nil {
		return fmt.Errorf("failed to check message existence: %v", err)
	}

	if !exists {
		return nil
	}

	err = a.repository.UpdateReactions(ctx, messageID, reactions, reactions.TotalCount())
	if err != nil {
		// Deleted between the existence probe and the update.
		if errors.Is(err, postgres.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to apply reactions update: %v", err)
	}

	return nil
}
