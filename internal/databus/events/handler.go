package events

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/buffer-service/internal/config"
	"github.com/s21platform/buffer-service/internal/model"
)

// Handler is the single dispatch loop for the message events topic. Every
// failure is logged and swallowed so a bad event never stalls the consumer.
type Handler struct {
	applier Applier
}

func New(applier Applier) *Handler {
	return &Handler{
		applier: applier,
	}
}

func (h *Handler) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("Handler")

	var event model.MessageEvent
	if err := json.Unmarshal(in, &event); err != nil {
		logger.Error(fmt.Sprintf("failed to decode event envelope: %v", err))
		return
	}

	switch event.Kind {
	case model.EventMessageCreated:
		h.handleCreated(ctx, logger, event.Payload)
	case model.EventMessageUpdated:
		h.handleUpdated(ctx, logger, event.Payload)
	case model.EventMessageDeleted:
		h.handleDeleted(ctx, logger, event.Payload)
	case model.EventMessagesBulkDeleted:
		h.handleBulkDeleted(ctx, logger, event.Payload)
	case model.EventReactionsChanged:
		h.handleReactionsChanged(ctx, logger, event.Payload)
	default:
		logger.Warn(fmt.Sprintf("unknown event kind: %s", event.Kind))
	}
}

func (h *Handler) handleCreated(ctx context.Context, logger logger_lib.LoggerInterface, payload json.RawMessage) {
	var snapshot model.MessageSnapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		logger.Error(fmt.Sprintf("failed to decode message snapshot: %v", err))
		return
	}

	if err := snapshot.Validate(); err != nil {
		logger.Error(fmt.Sprintf("invalid message snapshot: %v", err))
		return
	}

	if err := h.applier.ApplyCreate(ctx, &snapshot); err != nil {
		logger.Error(fmt.Sprintf("failed to apply create for message %s: %v", snapshot.MessageID, err))
	}
}

func (h *Handler) handleUpdated(ctx context.Context, logger logger_lib.LoggerInterface, payload json.RawMessage) {
	var snapshot model.MessageSnapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		logger.Error(fmt.Sprintf("failed to decode message snapshot: %v", err))
		return
	}

	if err := snapshot.Validate(); err != nil {
		logger.Error(fmt.Sprintf("invalid message snapshot: %v", err))
		return
	}

	if err := h.applier.ApplyEdit(ctx, &snapshot); err != nil {
		logger.Error(fmt.Sprintf("failed to apply edit for message %s: %v", snapshot.MessageID, err))
	}
}

func (h *Handler) handleDeleted(ctx context.Context, logger logger_lib.LoggerInterface, payload json.RawMessage) {
	var deleted model.MessageDeletedPayload
	if err := json.Unmarshal(payload, &deleted); err != nil {
		logger.Error(fmt.Sprintf("failed to decode delete payload: %v", err))
		return
	}

	if err := deleted.Validate(); err != nil {
		logger.Error(fmt.Sprintf("invalid delete payload: %v", err))
		return
	}

	if err := h.applier.ApplyDelete(ctx, deleted.MessageID); err != nil {
		logger.Error(fmt.Sprintf("failed to apply delete for message %s: %v", deleted.MessageID, err))
	}
}

func (h *Handler) handleBulkDeleted(ctx context.Context, logger logger_lib.LoggerInterface, payload json.RawMessage) {
	var bulk model.MessagesBulkDeletedPayload
	if err := json.Unmarshal(payload, &bulk); err != nil {
		logger.Error(fmt.Sprintf("failed to decode bulk delete payload: %v", err))
		return
	}

	if err := bulk.Validate(); err != nil {
		logger.Error(fmt.Sprintf("invalid bulk delete payload: %v", err))
		return
	}

	deleted, err := h.applier.ApplyBulkDelete(ctx, bulk.GuildID, bulk.MessageIDs)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to apply bulk delete in channel %s: %v", bulk.ChannelID, err))
		return
	}

	logger.Info(fmt.Sprintf("bulk delete removed %d of %d messages in channel %s", deleted, len(bulk.MessageIDs), bulk.ChannelID))
}

func (h *Handler) handleReactionsChanged(ctx context.Context, logger logger_lib.LoggerInterface, payload json.RawMessage) {
	var changed model.ReactionsChangedPayload
	if err := json.Unmarshal(payload, &changed); err != nil {
		logger.Error(fmt.Sprintf("failed to decode reactions payload: %v", err))
		return
	}

	if err := changed.Validate(); err != nil {
		logger.Error(fmt.Sprintf("invalid reactions payload: %v", err))
		return
	}

	if err := h.applier.ApplyReactions(ctx, changed.MessageID, changed.Reactions); err != nil {
		logger.Error(fmt.Sprintf("failed to apply reactions for message %s: %v", changed.MessageID, err))
	}
}
