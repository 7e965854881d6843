//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package applier

import (
	"context"

	"github.com/s21platform/buffer-service/internal/model"
)

type DBRepo interface {
	SaveMessage(ctx context.Context, msg *model.Message) (bool, error)
	UpsertMessage(ctx context.Context, msg *model.Message) error
	UpdateReactions(ctx context.Context, messageID string, reactions model.ReactionList, totalCount int64) error
	DeleteMessage(ctx context.Context, messageID string) (bool, error)
	BulkDeleteMessages(ctx context.Context, messageIDs []string) (int64, error)
	MessageExists(ctx context.Context, messageID string) (bool, error)
}
