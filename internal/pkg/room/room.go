// Package room derives canonical room identifiers.
//
// Private rooms sort the two participant ids so either side derives the same
// id. Event rooms prefix the event id with "event_"; user and event ids are
// UUID strings, which can never contain 'v', so the namespaces are disjoint.
package room

import "strings"

const (
	eventPrefix   = "event_"
	pairSeparator = "_"
)

func Private(userA, userB string) string {
	if userB < userA {
		userA, userB = userB, userA
	}
	return userA + pairSeparator + userB
}

func Event(eventID string) string {
	return eventPrefix + eventID
}

// PrivateParticipants decodes the two identities encoded in a private room id.
func PrivateParticipants(roomID string) (string, string) {
	parts := strings.SplitN(roomID, pairSeparator, 2)
	if len(parts) != 2 {
		return "", ""
	}
	return parts[0], parts[1]
}
