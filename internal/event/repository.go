package event

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

// Repository is the authoritative store for the calendar. Not-found is a
// normal outcome, signalled by sentinel returns (nil event, false), never by
// an error. Each mutation is a read-modify-write cycle against the backing
// store; two concurrent writers to the same date key race and the last
// writer wins.
type Repository interface {
	// ReadEvents returns the full mapping, empty (not nil) when no data
	// exists yet.
	ReadEvents(ctx context.Context) (EventsData, error)

	// AddEvent assigns an id, appends the event to the date key's list
	// (creating it if absent) and returns the stored event.
	AddEvent(ctx context.Context, dateKey string, e Event) (Event, error)

	// UpdateEvent replaces every field except the id. Returns nil when the
	// date key or event id does not exist.
	UpdateEvent(ctx context.Context, dateKey, eventID string, e Event) (*Event, error)

	// DeleteEvent removes the event and prunes the date key once its list
	// is empty. Returns false when nothing matched.
	DeleteEvent(ctx context.Context, dateKey, eventID string) (bool, error)
}

// newEventID builds a collision-resistant id from the current millisecond
// timestamp plus a random component, rendered as a string. Uniqueness is
// only promised within one date key's list; callers re-roll on the
// (unlikely) collision.
func newEventID() string {
	return fmt.Sprintf("%d.%04d", time.Now().UnixMilli(), rand.IntN(10000))
}

// assignID gives e a fresh id not present in the day's list.
func assignID(list []Event, e Event) Event {
	for {
		id := newEventID()
		if !containsID(list, id) {
			e.ID = id
			return e
		}
	}
}

func containsID(list []Event, id string) bool {
	for _, ev := range list {
		if ev.ID == id {
			return true
		}
	}
	return false
}

// indexOfID finds an event by id, compared as strings. -1 when absent.
func indexOfID(list []Event, id string) int {
	for i, ev := range list {
		if ev.ID == id {
			return i
		}
	}
	return -1
}

// replaceAt swaps in e at index i, preserving the existing id.
func replaceAt(list []Event, i int, e Event) Event {
	e.ID = list[i].ID
	list[i] = e
	return e
}

// removeAt splices out index i.
func removeAt(list []Event, i int) []Event {
	return append(list[:i], list[i+1:]...)
}
