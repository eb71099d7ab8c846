package event

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zohaibkhan/booking-calendar-backend/utils"
)

// ErrInvalidEvent marks validation failures so the handler can answer 400
// instead of 500. Match with errors.Is.
var ErrInvalidEvent = errors.New("invalid event")

// Service wraps business logic for calendar bookings: payload validation
// and coercion at the boundary, then the four repository operations, plus
// the optional change feed.
type Service struct {
	Repo Repository
}

func NewService(r Repository) *Service {
	return &Service{Repo: r}
}

// ===========================
// List all events
func (s *Service) ListEvents(ctx context.Context) (EventsData, error) {
	return s.Repo.ReadEvents(ctx)
}

// ===========================
// Create a booking under a date key
func (s *Service) CreateEvent(ctx context.Context, dateKey string, e Event) (Event, error) {
	if err := normalizeEvent(&e); err != nil {
		return Event{}, err
	}

	// Ids come from the store; whatever the client guessed is discarded.
	e.ID = ""

	stored, err := s.Repo.AddEvent(ctx, dateKey, e)
	if err != nil {
		return Event{}, err
	}

	utils.PublishBookingChange(ctx, utils.BookingChange{
		Action:  "created",
		DateKey: dateKey,
		Event:   stored,
	})

	return stored, nil
}

// ===========================
// Update a booking in place; nil means not found
func (s *Service) UpdateEvent(ctx context.Context, dateKey, eventID string, e Event) (*Event, error) {
	if err := normalizeEvent(&e); err != nil {
		return nil, err
	}

	updated, err := s.Repo.UpdateEvent(ctx, dateKey, eventID, e)
	if err != nil || updated == nil {
		return updated, err
	}

	utils.PublishBookingChange(ctx, utils.BookingChange{
		Action:  "updated",
		DateKey: dateKey,
		Event:   *updated,
	})

	return updated, nil
}

// ===========================
// Delete a booking; false means not found
func (s *Service) DeleteEvent(ctx context.Context, dateKey, eventID string) (bool, error) {
	deleted, err := s.Repo.DeleteEvent(ctx, dateKey, eventID)
	if err != nil || !deleted {
		return deleted, err
	}

	utils.PublishBookingChange(ctx, utils.BookingChange{
		Action:  "deleted",
		DateKey: dateKey,
		EventID: eventID,
	})

	return true, nil
}

// ===========================
// normalizeEvent validates and coerces a payload before it reaches the
// store: defaults the type, gates the meal fields on withFood, derives the
// meal period from the start hour, and rejects an end before its start.
func normalizeEvent(e *Event) error {
	switch e.Type {
	case "":
		e.Type = TypeBooking
	case TypeBooking, TypeReservation:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidEvent, e.Type)
	}

	if e.Pax < 0 {
		return fmt.Errorf("%w: pax must be a positive integer", ErrInvalidEvent)
	}

	if !e.WithFood {
		e.Meal = ""
		e.MealTitle = ""
		e.MealItems = nil
	}

	switch e.Meal {
	case "", MealChickenQorma, MealMuttonQorma:
	default:
		return fmt.Errorf("%w: unknown meal %q", ErrInvalidEvent, e.Meal)
	}

	start, startOK := parseTimestamp(e.Start)
	if end, endOK := parseTimestamp(e.End); startOK && endOK && end.Before(start) {
		return fmt.Errorf("%w: end precedes start", ErrInvalidEvent)
	}

	switch e.MealType {
	case "":
		if startOK {
			e.MealType = mealTypeFromStart(start)
		}
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner:
	default:
		return fmt.Errorf("%w: unknown mealType %q", ErrInvalidEvent, e.MealType)
	}

	return nil
}

// parseTimestamp accepts the ISO shapes browsers send: full RFC 3339 and
// the zone-less datetime-local variants. Unparseable values are carried
// through untouched; the calendar is locale-naive by design.
func parseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// 06:00 to 11:59 breakfast, 12:00 to 17:59 lunch, everything else dinner.
func mealTypeFromStart(start time.Time) string {
	hour := start.Hour()
	switch {
	case hour >= 6 && hour < 12:
		return MealTypeBreakfast
	case hour >= 12 && hour < 18:
		return MealTypeLunch
	default:
		return MealTypeDinner
	}
}
