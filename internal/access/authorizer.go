// Package access decides whether a caller may read or write a room.
package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/eventlink/chat-service/internal/model"
	"github.com/eventlink/chat-service/internal/pkg/room"
)

type Authorizer struct {
	events EventProvider
}

func New(events EventProvider) *Authorizer {
	return &Authorizer{
		events: events,
	}
}

// AuthorizeEvent fetches the event and checks the caller against its current
// participant list and creator. The check runs on every operation: a prior
// decision is never reused because membership can change between calls.
func (a *Authorizer) AuthorizeEvent(ctx context.Context, callerID, eventID string) (*model.EventInfo, error) {
	eventInfo, err := a.events.GetEvent(ctx, eventID)
	if err != nil {
		if errors.Is(err, model.ErrEventNotFound) {
			return nil, model.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}

	caller, err := uuid.Parse(callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse caller id: %w", err)
	}

	if !eventInfo.HasMember(caller) {
		return nil, model.ErrNotAMember
	}

	return eventInfo, nil
}

// AuthorizePrivate allows the caller iff it is one of the two identities
// encoded in the room id.
func (a *Authorizer) AuthorizePrivate(callerID, roomID string) error {
	first, second := room.PrivateParticipants(roomID)
	if callerID != first && callerID != second {
		return model.ErrNotAMember
	}
	return nil
}
