package model

import "errors"

var (
	// ErrEventNotFound means the referenced event no longer exists or never existed.
	ErrEventNotFound = errors.New("event not found")

	// ErrNotAMember means the event exists but the caller is absent from its
	// participant list and is not the creator.
	ErrNotAMember = errors.New("user is not a participant of the event")
)
