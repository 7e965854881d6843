//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/s21platform/buffer-service/internal/api"
	"github.com/s21platform/buffer-service/internal/model"
)

type DBRepo interface {
	GetMessages(ctx context.Context, filter *model.MessageFilter) (*model.MessageList, error)
	MessageExists(ctx context.Context, messageID string) (bool, error)
}

type Validator interface {
	ValidateGetMessages(req *api.GetMessagesRequest) error
}
