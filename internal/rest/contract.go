//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/eventlink/chat-service/internal/api"
	"github.com/eventlink/chat-service/internal/model"
)

type DBRepo interface {
	SaveMessage(ctx context.Context, message *model.Message) error
	GetRoomMessages(ctx context.Context, roomID string) (*model.MessageList, error)
	MarkPrivateRead(ctx context.Context, roomID, readerID string) error
	MarkRoomRead(ctx context.Context, roomID, readerID string) error

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type AccessAuthorizer interface {
	AuthorizeEvent(ctx context.Context, callerID, eventID string) (*model.EventInfo, error)
	AuthorizePrivate(callerID, roomID string) error
}

type Notifier interface {
	NotifyPrivate(ctx context.Context, message *model.Message) error
	NotifyEvent(ctx context.Context, message *model.Message, eventInfo *model.EventInfo) error
}

type Validator interface {
	ValidateSendPrivateMessage(req *api.SendPrivateMessageRequest, senderID string) error
	ValidateSendEventMessage(req *api.SendEventMessageRequest) error
}
