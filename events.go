package ksoft

import (
	"github.com/ksoft-si/ksoftgo/models"
)

// EventType represents the type of an event.
type EventType int64

// Event types.
const (
	// Event dispatched when a user is added to the global ban list.
	OnBan EventType = 1 << iota
	// Event dispatched when a user is removed from the global ban list.
	OnUnban
)

// String returns a string of said EventType.
func (e EventType) String() string {
	switch e {
	case OnBan:
		return "OnBan"
	case OnUnban:
		return "OnUnban"
	default:
		return "UnknownEvent"
	}
}

// Event represents a single update of the ban feed.
//
// An event is constructed once per update record, delivered to every
// registered hook in order, and then discarded. Hooks must not retain
// and mutate it.
type Event struct {
	Type EventType         // The type of the event.
	Ban  *models.BanUpdate // The update record the event was built from.
}

// Hook is a callback registered by the host application to receive ban feed events.
type Hook func(*Event)

// NewBanEvent builds an event from an update record.
// The record's Active flag selects between OnBan and OnUnban.
func NewBanEvent(update *models.BanUpdate) *Event {
	eventType := OnUnban
	if update.Active {
		eventType = OnBan
	}

	return &Event{
		Type: eventType,
		Ban:  update,
	}
}
