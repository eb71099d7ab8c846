package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zohaibkhan/booking-calendar-backend/internal/event"
)

// calendarServer wraps a real events API so controller behavior is tested
// end to end. failMethod forces a 500 on one verb; unauthorized forces a
// 401 on everything.
type calendarServer struct {
	router       *gin.Engine
	svc          *event.Service
	failMethod   string
	unauthorized bool
	lastAuth     string
}

func newCalendarServer(t *testing.T) (*calendarServer, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := event.NewService(event.NewFileRepository(filepath.Join(t.TempDir(), "events.json")))
	h := event.NewHandler(svc)

	r := gin.New()
	r.GET("/api/events", h.ListEvents)
	r.POST("/api/events", h.CreateEvent)
	r.PUT("/api/events/:dateKey/:eventId", h.UpdateEvent)
	r.DELETE("/api/events/:dateKey/:eventId", h.DeleteEvent)

	cs := &calendarServer{router: r, svc: svc}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		cs.lastAuth = req.Header.Get("Authorization")
		if cs.unauthorized {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if cs.failMethod != "" && req.Method == cs.failMethod {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"success":false,"error":"store unavailable"}`))
			return
		}
		cs.router.ServeHTTP(w, req)
	}))
	t.Cleanup(srv.Close)
	return cs, srv
}

func (cs *calendarServer) seed(t *testing.T, dateKey string, e event.Event) event.Event {
	t.Helper()
	created, err := cs.svc.CreateEvent(context.Background(), dateKey, e)
	require.NoError(t, err)
	return created
}

func TestLoadEventsMirrorsServer(t *testing.T) {
	cs, srv := newCalendarServer(t)
	seeded := cs.seed(t, "2024-6-1", event.Event{Title: "Walima"})

	renders := 0
	ctrl := NewController(NewAPIClient(srv.URL), WithRenderHook(func() { renders++ }))

	require.NoError(t, ctrl.LoadEvents(context.Background()))
	data := ctrl.Events()
	require.Len(t, data["2024-6-1"], 1)
	assert.Equal(t, seeded.ID, data["2024-6-1"][0].ID)
	assert.Equal(t, 1, renders)
}

func TestLoadEventsFailureEmptiesMirror(t *testing.T) {
	cs, srv := newCalendarServer(t)
	cs.seed(t, "2024-6-1", event.Event{Title: "Walima"})

	ctrl := NewController(NewAPIClient(srv.URL))
	require.NoError(t, ctrl.LoadEvents(context.Background()))
	require.NotEmpty(t, ctrl.Events())

	cs.failMethod = http.MethodGet
	err := ctrl.LoadEvents(context.Background())
	require.Error(t, err)
	assert.Empty(t, ctrl.Events())
}

func TestCreateEventSwapsProvisionalID(t *testing.T) {
	_, srv := newCalendarServer(t)

	renders := 0
	ctrl := NewController(NewAPIClient(srv.URL), WithRenderHook(func() { renders++ }))

	created, err := ctrl.CreateEvent(context.Background(), "2024-6-1", event.Event{Title: "Nikkah"})
	require.NoError(t, err)
	assert.False(t, strings.HasPrefix(created.ID, "temp_"))

	data := ctrl.Events()
	require.Len(t, data["2024-6-1"], 1)
	assert.Equal(t, created.ID, data["2024-6-1"][0].ID)
	// Once for the optimistic append, once for the reconcile
	assert.Equal(t, 2, renders)
}

func TestCreateEventRollbackReloads(t *testing.T) {
	cs, srv := newCalendarServer(t)
	seeded := cs.seed(t, "2024-6-1", event.Event{Title: "Existing"})

	ctrl := NewController(NewAPIClient(srv.URL))
	require.NoError(t, ctrl.LoadEvents(context.Background()))

	cs.failMethod = http.MethodPost
	_, err := ctrl.CreateEvent(context.Background(), "2024-6-1", event.Event{Title: "Doomed"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store unavailable")

	// Mirror re-fetched: the provisional entry is gone
	data := ctrl.Events()
	require.Len(t, data["2024-6-1"], 1)
	assert.Equal(t, seeded.ID, data["2024-6-1"][0].ID)
}

func TestUpdateEventReconcilesWithServerCopy(t *testing.T) {
	cs, srv := newCalendarServer(t)
	seeded := cs.seed(t, "2024-6-1", event.Event{Title: "Draft"})

	ctrl := NewController(NewAPIClient(srv.URL))
	require.NoError(t, ctrl.LoadEvents(context.Background()))

	updated, err := ctrl.UpdateEvent(context.Background(), "2024-6-1", seeded.ID, event.Event{
		Title: "Final",
		Start: "2024-06-01T13:00",
	})
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, updated.ID)
	// Server-side normalization flows back into the mirror
	assert.Equal(t, event.MealTypeLunch, updated.MealType)

	data := ctrl.Events()
	require.Len(t, data["2024-6-1"], 1)
	assert.Equal(t, "Final", data["2024-6-1"][0].Title)
	assert.Equal(t, event.MealTypeLunch, data["2024-6-1"][0].MealType)
}

func TestUpdateEventProvisionalIDNotSynced(t *testing.T) {
	cs, srv := newCalendarServer(t)
	cs.seed(t, "2024-6-1", event.Event{Title: "Synced"})

	ctrl := NewController(NewAPIClient(srv.URL))

	_, err := ctrl.UpdateEvent(context.Background(), "2024-6-1", "temp_abc", event.Event{Title: "x"})
	require.ErrorIs(t, err, ErrNotSynced)

	// The provisional edge reconciles the mirror before reporting
	data := ctrl.Events()
	require.Len(t, data["2024-6-1"], 1)
}

func TestDeleteEventProvisionalIDNotSynced(t *testing.T) {
	_, srv := newCalendarServer(t)
	ctrl := NewController(NewAPIClient(srv.URL))

	err := ctrl.DeleteEvent(context.Background(), "2024-6-1", "temp_abc")
	require.ErrorIs(t, err, ErrNotSynced)
}

func TestDeleteEventRemovesFromMirror(t *testing.T) {
	cs, srv := newCalendarServer(t)
	seeded := cs.seed(t, "2024-6-1", event.Event{Title: "Short lived"})

	ctrl := NewController(NewAPIClient(srv.URL))
	require.NoError(t, ctrl.LoadEvents(context.Background()))

	require.NoError(t, ctrl.DeleteEvent(context.Background(), "2024-6-1", seeded.ID))
	assert.Empty(t, ctrl.Events()["2024-6-1"])
}

func TestDeleteEventRollbackReinsertsAtOriginalIndex(t *testing.T) {
	cs, srv := newCalendarServer(t)
	first := cs.seed(t, "2024-6-1", event.Event{Title: "First"})
	second := cs.seed(t, "2024-6-1", event.Event{Title: "Second"})
	third := cs.seed(t, "2024-6-1", event.Event{Title: "Third"})

	ctrl := NewController(NewAPIClient(srv.URL))
	require.NoError(t, ctrl.LoadEvents(context.Background()))

	cs.failMethod = http.MethodDelete
	err := ctrl.DeleteEvent(context.Background(), "2024-6-1", second.ID)
	require.Error(t, err)

	data := ctrl.Events()
	require.Len(t, data["2024-6-1"], 3)
	assert.Equal(t, first.ID, data["2024-6-1"][0].ID)
	assert.Equal(t, second.ID, data["2024-6-1"][1].ID)
	assert.Equal(t, third.ID, data["2024-6-1"][2].ID)
}

func TestUnauthorizedClearsTokenAndFiresHook(t *testing.T) {
	cs, srv := newCalendarServer(t)

	hookFired := false
	api := NewAPIClient(srv.URL)
	api.SetToken("stale-token")
	ctrl := NewController(api, WithUnauthorizedHook(func() { hookFired = true }))

	cs.unauthorized = true
	err := ctrl.LoadEvents(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, hookFired)
	assert.Empty(t, ctrl.Events())

	// Token was cleared: the next request carries no credential
	cs.unauthorized = false
	require.NoError(t, ctrl.LoadEvents(context.Background()))
	assert.Empty(t, cs.lastAuth)
}

func TestEventsReturnsSnapshotCopy(t *testing.T) {
	cs, srv := newCalendarServer(t)
	cs.seed(t, "2024-6-1", event.Event{Title: "Original"})

	ctrl := NewController(NewAPIClient(srv.URL))
	require.NoError(t, ctrl.LoadEvents(context.Background()))

	snapshot := ctrl.Events()
	snapshot["2024-6-1"][0].Title = "Mutated"

	assert.Equal(t, "Original", ctrl.Events()["2024-6-1"][0].Title)
}
