package validator

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/eventlink/chat-service/internal/api"
)

const maxContentLength = 500

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateSendPrivateMessage(req *api.SendPrivateMessageRequest, senderID string) error {
	if strings.TrimSpace(req.ReceiverId) == "" {
		return fmt.Errorf("receiver_id is required")
	}

	if _, err := uuid.Parse(req.ReceiverId); err != nil {
		return fmt.Errorf("receiver_id must be a valid uuid")
	}

	if req.ReceiverId == senderID {
		return fmt.Errorf("cannot send a private message to yourself")
	}

	return v.validateContent(req.Content)
}

func (v *Validator) ValidateSendEventMessage(req *api.SendEventMessageRequest) error {
	return v.validateContent(req.Content)
}

func (v *Validator) validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content cannot be empty")
	}

	if len([]rune(content)) > maxContentLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxContentLength)
	}

	return nil
}
