//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package access

import (
	"context"

	"github.com/eventlink/chat-service/internal/model"
)

type EventProvider interface {
	GetEvent(ctx context.Context, eventID string) (*model.EventInfo, error)
}
