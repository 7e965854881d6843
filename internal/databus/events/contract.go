//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package events

import (
	"context"

	"github.com/s21platform/buffer-service/internal/model"
)

type Applier interface {
	ApplyCreate(ctx context.Context, snapshot *model.MessageSnapshot) error
	ApplyEdit(ctx context.Context, snapshot *model.MessageSnapshot) error
	ApplyDelete(ctx context.Context, messageID string) error
	ApplyBulkDelete(ctx context.Context, guildID string, messageIDs []string) (int64, error)
	ApplyReactions(ctx context.Context, messageID string, reactions model.ReactionList) error
}
