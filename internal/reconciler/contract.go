//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package reconciler

import (
	"context"

	"github.com/s21platform/buffer-service/internal/model"
)

type DBRepo interface {
	GetChannelMessageIDs(ctx context.Context, channelID string, limit int) ([]string, error)
	SaveMessage(ctx context.Context, msg *model.Message) (bool, error)
	BulkDeleteMessages(ctx context.Context, messageIDs []string) (int64, error)
}

type RemoteClient interface {
	GuildIDs(ctx context.Context) ([]string, error)
	TextChannels(ctx context.Context, guildID string) ([]model.RemoteChannel, error)
	CanReadHistory(ctx context.Context, channelID string) (bool, error)
	ChannelHistory(ctx context.Context, guildID, channelID string, limit int) ([]model.MessageSnapshot, error)
}
