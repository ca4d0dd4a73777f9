//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package notify

import (
	"context"

	"github.com/eventlink/chat-service/internal/model"
)

type UserStore interface {
	GetUser(ctx context.Context, userID string) (*model.ChatUser, error)
	SaveUser(ctx context.Context, user *model.ChatUser) error
}

type UserDirectory interface {
	GetUser(ctx context.Context, userID string) (*model.ChatUser, error)
}

type PushTransport interface {
	Send(ctx context.Context, token, title, body string, metadata map[string]string) error
}
