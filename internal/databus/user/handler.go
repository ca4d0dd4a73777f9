// Package user keeps the local user directory in sync with the platform
// user topic. The directory backs notification rendering, so a stale
// nickname or push token only degrades notifications, never message flow.
package user

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/eventlink/chat-service/internal/config"
	"github.com/eventlink/chat-service/internal/model"
)

type Handler struct {
	repository DBRepo
}

func New(repo DBRepo) *Handler {
	return &Handler{repository: repo}
}

func (h *Handler) Handler(ctx context.Context, in []byte) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("UserUpdateHandler")

	// malformed payloads are skipped, not redelivered
	var update model.UserUpdate
	if err := json.Unmarshal(in, &update); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal user update: %v", err))
		return nil
	}

	if update.UserID == "" {
		logger.Error("user update without user_uuid, skipping")
		return nil
	}

	chatUser := model.ChatUser{
		UserID:   update.UserID,
		Nickname: update.Nickname,
	}
	if update.PushToken != nil {
		chatUser.PushToken = *update.PushToken
	}

	if err := h.repository.SaveUser(ctx, &chatUser); err != nil {
		logger.Error(fmt.Sprintf("failed to save user %s: %v", update.UserID, err))
		return fmt.Errorf("failed to save user: %w", err)
	}

	if update.Nickname != "" {
		if err := h.repository.UpdateUserNickname(ctx, update.UserID, update.Nickname); err != nil {
			logger.Error(fmt.Sprintf("failed to update nickname for %s: %v", update.UserID, err))
			return fmt.Errorf("failed to update nickname: %w", err)
		}
	}

	if update.PushToken != nil {
		if err := h.repository.UpdateUserPushToken(ctx, update.UserID, *update.PushToken); err != nil {
			logger.Error(fmt.Sprintf("failed to update push token for %s: %v", update.UserID, err))
			return fmt.Errorf("failed to update push token: %w", err)
		}
	}

	return nil
}
