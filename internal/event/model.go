package event

import (
	"gorm.io/datatypes"
)

// ============================
// Event types
const (
	TypeBooking     = "booking"
	TypeReservation = "reservation"
)

// Meal periods, derived from the start hour when the client omits them
const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
)

// Menu identifiers the kitchen recognizes
const (
	MealChickenQorma = "chicken-qorma"
	MealMuttonQorma  = "mutton-qorma"
)

// ============================
// Event is one bookable occurrence. The ID is assigned by the repository on
// creation and never changes afterwards; it is string-typed so large numeric
// ids survive JSON round trips without precision loss.
type Event struct {
	ID        string   `json:"id"`
	Title     string   `json:"title,omitempty"`
	Notes     string   `json:"notes,omitempty"`
	Start     string   `json:"start,omitempty"` // ISO 8601
	End       string   `json:"end,omitempty"`   // ISO 8601, never before Start
	GuestName string   `json:"guestName,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	Pax       int      `json:"pax,omitempty"`
	Venue     string   `json:"venue,omitempty"`
	WithFood  bool     `json:"withFood"`
	Meal      string   `json:"meal,omitempty"`
	MealTitle string   `json:"mealTitle,omitempty"`
	MealItems []string `json:"mealItems,omitempty"`
	Type      string   `json:"type,omitempty"`     // booking | reservation
	MealType  string   `json:"mealType,omitempty"` // breakfast | lunch | dinner
}

// EventsData maps a date key ("YYYY-M-D", locale-naive) to the events of
// that day in insertion order. A key present in the store always holds a
// non-empty list.
type EventsData map[string][]Event

// ============================
// Create Event Request - POST /api/events body
type CreateEventRequest struct {
	DateKey string `json:"dateKey"`
	Event   *Event `json:"event"`
}

// ============================
// EventDay is the Postgres row backing one date key; the day's events are
// stored as a JSONB array.
type EventDay struct {
	DateKey string         `gorm:"primaryKey;type:varchar(16);column:date_key" json:"dateKey"`
	Events  datatypes.JSON `gorm:"type:jsonb;not null" json:"events"`
}

func (EventDay) TableName() string {
	return "event_days"
}
