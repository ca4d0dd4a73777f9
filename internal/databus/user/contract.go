package user

import (
	"context"

	"github.com/eventlink/chat-service/internal/model"
)

//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go

type DBRepo interface {
	SaveUser(ctx context.Context, user *model.ChatUser) error
	UpdateUserNickname(ctx context.Context, userID, nickname string) error
	UpdateUserPushToken(ctx context.Context, userID, pushToken string) error
}
