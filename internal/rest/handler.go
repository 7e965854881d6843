package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/buffer-service/internal/api"
	"github.com/s21platform/buffer-service/internal/config"
	"github.com/s21platform/buffer-service/internal/model"
)

type Handler struct {
	repository DBRepo
	validator  Validator
}

func New(repository DBRepo, validator Validator) *Handler {
	return &Handler{
		repository: repository,
		validator:  validator,
	}
}

func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetMessages")

	req, err := parseGetMessagesRequest(r)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to parse request: %v", err))
		h.writeError(w, fmt.Sprintf("invalid request: %v", err), http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateGetMessages(req); err != nil {
		logger.Error(fmt.Sprintf("query validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("query validation failed: %v", err), http.StatusBadRequest)
		return
	}

	filter := &model.MessageFilter{
		GuildID:        req.GuildID,
		ChannelID:      req.ChannelID,
		AuthorID:       req.AuthorID,
		From:           req.From,
		To:             req.To,
		HasAttachments: req.HasAttachments,
		Limit:          req.Limit,
	}

	messages, err := h.repository.GetMessages(r.Context(), filter)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch messages: %v", err))
		h.writeError(w, "failed to fetch messages", http.StatusInternalServerError)
		return
	}

	apiMessages := make([]api.Message, len(*messages))
	for i, msg := range *messages {
		apiMessages[i] = toAPIMessage(msg)
	}

	response := api.GetMessagesResponse{
		Total:    len(apiMessages),
		Messages: apiMessages,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) MessageExists(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("MessageExists")

	messageID := chi.URLParam(r, "messageID")
	if messageID == "" {
		h.writeError(w, "message id is required", http.StatusBadRequest)
		return
	}

	exists, err := h.repository.MessageExists(r.Context(), messageID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to check message existence: %v", err))
		h.writeError(w, "failed to check message existence", http.StatusInternalServerError)
		return
	}

	response := api.MessageExistsResponse{
		MessageID: messageID,
		Exists:    exists,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func parseGetMessagesRequest(r *http.Request) (*api.GetMessagesRequest, error) {
	params := r.URL.Query()

	req := &api.GetMessagesRequest{
		GuildID:   params.Get("guild_id"),
		ChannelID: params.Get("channel_id"),
		AuthorID:  params.Get("author_id"),
	}

	if raw := params.Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid from date: %v", err)
		}
		req.From = &from
	}

	if raw := params.Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid to date: %v", err)
		}
		req.To = &to
	}

	if raw := params.Get("has_attachments"); raw != "" {
		hasAttachments, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid has_attachments flag: %v", err)
		}
		req.HasAttachments = &hasAttachments
	}

	if raw := params.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid limit: %v", err)
		}
		req.Limit = limit
	}

	return req, nil
}

func toAPIMessage(msg model.Message) api.Message {
	var editedAt *string
	if msg.EditedAt != nil {
		timestamp := msg.EditedAt.Format(time.RFC3339)
		editedAt = &timestamp
	}

	attachments := make([]api.Attachment, len(msg.AttachmentsData))
	for i, attachment := range msg.AttachmentsData {
		attachments[i] = api.Attachment{
			ID:       attachment.ID,
			Filename: attachment.Filename,
			URL:      attachment.URL,
		}
	}

	reactions := make([]api.Reaction, len(msg.ReactionsData))
	for i, reaction := range msg.ReactionsData {
		reactions[i] = api.Reaction{
			Emoji:    reaction.Emoji,
			Count:    reaction.Count,
			IsCustom: reaction.IsCustom,
		}
	}

	return api.Message{
		MessageID:      msg.MessageID,
		GuildID:        msg.GuildID,
		ChannelID:      msg.ChannelID,
		AuthorID:       msg.AuthorID,
		AuthorName:     msg.AuthorName,
		Content:        msg.Content,
		CreatedAt:      msg.CreatedAt.Format(time.RFC3339),
		EditedAt:       editedAt,
		IsPinned:       msg.IsPinned,
		HasAttachments: msg.HasAttachments,
		HasEmbeds:      msg.HasEmbeds,
		ReactionCount:  msg.ReactionCount,
		Attachments:    attachments,
		Reactions:      reactions,
	}
}

// ----------------------------- helpers -----------------------------

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
