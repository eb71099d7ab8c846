package reports

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/zohaibkhan/booking-calendar-backend/internal/event"
)

// Service flattens the date-keyed store into report rows.
type Service struct {
	Events *event.Service
}

func NewService(events *event.Service) *Service {
	return &Service{Events: events}
}

// MonthBookings returns the rows of every booking in the given month
// ("YYYY-M", zero padding optional), ordered by day then start time.
func (s *Service) MonthBookings(ctx context.Context, month string) ([]BookingRow, error) {
	year, mon, err := parseMonth(month)
	if err != nil {
		return nil, err
	}

	data, err := s.Events.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	var rows []BookingRow
	for dateKey, list := range data {
		y, m, _, ok := splitDateKey(dateKey)
		if !ok || y != year || m != mon {
			continue
		}
		for _, e := range list {
			rows = append(rows, toRow(dateKey, e))
		}
	}

	sortRows(rows)
	return rows, nil
}

// DayBookings returns the rows for a single date key in stored order.
func (s *Service) DayBookings(ctx context.Context, dateKey string) ([]BookingRow, error) {
	if _, _, _, ok := splitDateKey(dateKey); !ok {
		return nil, fmt.Errorf("invalid date key %q", dateKey)
	}

	data, err := s.Events.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	var rows []BookingRow
	for _, e := range data[dateKey] {
		rows = append(rows, toRow(dateKey, e))
	}
	return rows, nil
}

func toRow(dateKey string, e event.Event) BookingRow {
	return BookingRow{
		DateKey:   dateKey,
		Title:     e.Title,
		Type:      e.Type,
		GuestName: e.GuestName,
		Phone:     e.Phone,
		Pax:       e.Pax,
		Venue:     e.Venue,
		WithFood:  e.WithFood,
		Meal:      e.Meal,
		MealTitle: e.MealTitle,
		MealItems: e.MealItems,
		MealType:  e.MealType,
		Start:     e.Start,
		End:       e.End,
	}
}

func sortRows(rows []BookingRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		yi, mi, di, _ := splitDateKey(rows[i].DateKey)
		yj, mj, dj, _ := splitDateKey(rows[j].DateKey)
		if yi != yj {
			return yi < yj
		}
		if mi != mj {
			return mi < mj
		}
		if di != dj {
			return di < dj
		}
		return rows[i].Start < rows[j].Start
	})
}

// parseMonth accepts "YYYY-M" with or without zero padding.
func parseMonth(month string) (int, int, error) {
	parts := strings.Split(month, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid month %q, expected YYYY-M", month)
	}
	year, err1 := strconv.Atoi(parts[0])
	mon, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || mon < 1 || mon > 12 {
		return 0, 0, fmt.Errorf("invalid month %q, expected YYYY-M", month)
	}
	return year, mon, nil
}

// splitDateKey parses the locale-naive "YYYY-M-D" key; padding is not
// enforced, so "2024-6-1" and "2024-06-01" name the same day.
func splitDateKey(dateKey string) (year, month, day int, ok bool) {
	parts := strings.Split(dateKey, "-")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	y, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	d, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	return y, m, d, true
}
