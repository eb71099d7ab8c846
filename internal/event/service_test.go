package event

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewFileRepository(filepath.Join(t.TempDir(), "events.json")))
}

func TestCreateEventDefaultsType(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.CreateEvent(context.Background(), "2024-6-1", Event{Title: "Walima"})
	require.NoError(t, err)
	assert.Equal(t, TypeBooking, created.Type)
}

func TestCreateEventRejectsUnknownType(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateEvent(context.Background(), "2024-6-1", Event{Type: "banquet"})
	require.ErrorIs(t, err, ErrInvalidEvent)
}

func TestCreateEventDiscardsClientID(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.CreateEvent(context.Background(), "2024-6-1", Event{ID: "temp_abc", Title: "Nikkah"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "temp_abc", created.ID)
}

func TestCreateEventRejectsNegativePax(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateEvent(context.Background(), "2024-6-1", Event{Pax: -3})
	require.ErrorIs(t, err, ErrInvalidEvent)
}

func TestCreateEventRejectsEndBeforeStart(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateEvent(context.Background(), "2024-6-1", Event{
		Start: "2024-06-01T20:00",
		End:   "2024-06-01T18:00",
	})
	require.ErrorIs(t, err, ErrInvalidEvent)
}

func TestCreateEventMealGatedOnWithFood(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.CreateEvent(context.Background(), "2024-6-1", Event{
		WithFood:  false,
		Meal:      MealChickenQorma,
		MealTitle: "Standard menu",
		MealItems: []string{"Chicken Qorma", "Naan"},
	})
	require.NoError(t, err)
	assert.Empty(t, created.Meal)
	assert.Empty(t, created.MealTitle)
	assert.Empty(t, created.MealItems)
}

func TestCreateEventRejectsUnknownMeal(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateEvent(context.Background(), "2024-6-1", Event{
		WithFood: true,
		Meal:     "beef-karahi",
	})
	require.ErrorIs(t, err, ErrInvalidEvent)
}

func TestCreateEventKeepsKnownMeal(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.CreateEvent(context.Background(), "2024-6-1", Event{
		WithFood:  true,
		Meal:      MealMuttonQorma,
		MealItems: []string{"Mutton Qorma", "Vegetable pulao"},
	})
	require.NoError(t, err)
	assert.Equal(t, MealMuttonQorma, created.Meal)
	assert.Len(t, created.MealItems, 2)
}

func TestMealTypeDerivedFromStartHour(t *testing.T) {
	tests := []struct {
		start string
		want  string
	}{
		{"2024-06-01T06:00", MealTypeBreakfast},
		{"2024-06-01T11:59", MealTypeBreakfast},
		{"2024-06-01T12:00", MealTypeLunch},
		{"2024-06-01T17:30", MealTypeLunch},
		{"2024-06-01T18:00", MealTypeDinner},
		{"2024-06-01T23:00", MealTypeDinner},
		{"2024-06-01T03:00", MealTypeDinner},
	}

	for _, tt := range tests {
		t.Run(tt.start, func(t *testing.T) {
			svc := newTestService(t)
			created, err := svc.CreateEvent(context.Background(), "2024-6-1", Event{Start: tt.start})
			require.NoError(t, err)
			assert.Equal(t, tt.want, created.MealType)
		})
	}
}

func TestMealTypeExplicitWins(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.CreateEvent(context.Background(), "2024-6-1", Event{
		Start:    "2024-06-01T08:00",
		MealType: MealTypeDinner,
	})
	require.NoError(t, err)
	assert.Equal(t, MealTypeDinner, created.MealType)
}

func TestMealTypeUnsetWhenStartUnparseable(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.CreateEvent(context.Background(), "2024-6-1", Event{Start: "tomorrow evening"})
	require.NoError(t, err)
	assert.Empty(t, created.MealType)
}

func TestUpdateEventNormalizesPayload(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateEvent(ctx, "2024-6-1", Event{Title: "Draft"})
	require.NoError(t, err)

	updated, err := svc.UpdateEvent(ctx, "2024-6-1", created.ID, Event{Title: "Final", Start: "2024-06-01T13:00"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, TypeBooking, updated.Type)
	assert.Equal(t, MealTypeLunch, updated.MealType)
}

func TestUpdateEventValidationBeforeStore(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateEvent(ctx, "2024-6-1", Event{Title: "Draft"})
	require.NoError(t, err)

	_, err = svc.UpdateEvent(ctx, "2024-6-1", created.ID, Event{Type: "gala"})
	require.ErrorIs(t, err, ErrInvalidEvent)

	data, err := svc.ListEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Draft", data["2024-6-1"][0].Title)
}

func TestDeleteEventThroughService(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateEvent(ctx, "2024-6-1", Event{Title: "Short lived"})
	require.NoError(t, err)

	deleted, err := svc.DeleteEvent(ctx, "2024-6-1", created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.DeleteEvent(ctx, "2024-6-1", created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
