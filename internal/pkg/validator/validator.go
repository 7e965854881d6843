package validator

import (
	"fmt"
	"strings"

	"github.com/s21platform/buffer-service/internal/api"
)

const maxQueryLimit = 200

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateGetMessages(req *api.GetMessagesRequest) error {
	if strings.TrimSpace(req.GuildID) == "" {
		return fmt.Errorf("guild_id is required")
	}

	if req.Limit < 0 {
		return fmt.Errorf("limit cannot be negative")
	}

	if req.Limit > maxQueryLimit {
		return fmt.Errorf("limit exceeds maximum of %d", maxQueryLimit)
	}

	if req.From != nil && req.To != nil && req.From.After(*req.To) {
		return fmt.Errorf("from date must not be after to date")
	}

	return nil
}
