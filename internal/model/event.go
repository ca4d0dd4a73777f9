package model

import "github.com/google/uuid"

// EventInfo is the event directory's authority record for one event.
// Membership is fetched live on every operation; it is never snapshotted.
type EventInfo struct {
	ID           uuid.UUID
	Participants []uuid.UUID
	Creator      uuid.UUID
}

func (e *EventInfo) HasMember(userID uuid.UUID) bool {
	if e.Creator == userID {
		return true
	}
	for _, p := range e.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// Recipients returns the deduplicated participant/creator set minus the sender.
func (e *EventInfo) Recipients(senderID uuid.UUID) []uuid.UUID {
	seen := map[uuid.UUID]struct{}{senderID: {}}

	var recipients []uuid.UUID
	add := func(id uuid.UUID) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		recipients = append(recipients, id)
	}

	for _, p := range e.Participants {
		add(p)
	}
	add(e.Creator)

	return recipients
}
