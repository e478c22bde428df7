package validator

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	api "github.com/forkline/chat-service/internal/generated"
)

const maxContentLen = 4000

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateSendMessage(req *api.SendMessageRequest) error {
	if strings.TrimSpace(req.Content) == "" {
		return fmt.Errorf("content cannot be empty")
	}

	if len([]rune(req.Content)) > maxContentLen {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxContentLen)
	}

	if strings.TrimSpace(req.BranchId) == "" {
		return fmt.Errorf("branch_id is required")
	}

	if _, err := uuid.Parse(req.BranchId); err != nil {
		return fmt.Errorf("branch_id is not a valid uuid")
	}

	return nil
}

func (v *Validator) ValidateEditMessage(req *api.EditMessageRequest) error {
	if strings.TrimSpace(req.Content) == "" {
		return fmt.Errorf("content cannot be empty")
	}

	if len([]rune(req.Content)) > maxContentLen {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxContentLen)
	}

	return nil
}
