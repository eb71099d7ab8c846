package client

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/zohaibkhan/booking-calendar-backend/internal/event"
)

// ErrNotSynced is returned when an edit or delete targets an entry that
// still carries a provisional id; the mirror is re-fetched instead of
// spliced, and the caller retries against reconciled state.
var ErrNotSynced = errors.New("event not yet synchronized with server")

const tempIDPrefix = "temp_"

// Controller owns the client-side mirror of the calendar. Mutations apply
// locally first so the UI updates before the round trip completes, then
// reconcile with the server response or roll back. The API is the sole
// source of truth: a failed reload empties the mirror rather than keeping
// stale data.
//
// A Controller is created at session start, replaced wholesale by
// LoadEvents, and torn down on logout. It is meant to be driven from the
// UI's single event loop and is not safe for concurrent use.
type Controller struct {
	api    *APIClient
	events event.EventsData

	onRender       func()
	onUnauthorized func()
}

type Option func(*Controller)

// WithRenderHook registers the re-render callback fired after every mirror
// change.
func WithRenderHook(fn func()) Option {
	return func(c *Controller) { c.onRender = fn }
}

// WithUnauthorizedHook registers the callback fired when the server
// rejects the credential; the token is already cleared when it runs.
func WithUnauthorizedHook(fn func()) Option {
	return func(c *Controller) { c.onUnauthorized = fn }
}

func NewController(api *APIClient, opts ...Option) *Controller {
	c := &Controller{
		api:    api,
		events: event.EventsData{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Events returns a snapshot copy of the mirror.
func (c *Controller) Events() event.EventsData {
	snapshot := event.EventsData{}
	for dateKey, list := range c.events {
		snapshot[dateKey] = append([]event.Event(nil), list...)
	}
	return snapshot
}

// LoadEvents replaces the entire mirror with the server's current state.
// Used at startup and as the rollback path for failed creates/updates.
func (c *Controller) LoadEvents(ctx context.Context) error {
	data, err := c.api.FetchEvents(ctx)
	if err != nil {
		c.events = event.EventsData{}
		c.render()
		return c.checkUnauthorized(err)
	}

	c.events = data
	c.render()
	return nil
}

// CreateEvent appends a provisional entry with a temporary id, then swaps
// in the server copy once it arrives. On failure the mirror is re-fetched
// and the error propagated.
func (c *Controller) CreateEvent(ctx context.Context, dateKey string, e event.Event) (event.Event, error) {
	m := NewMutation()

	tempID := tempIDPrefix + uuid.NewString()
	optimistic := e
	optimistic.ID = tempID
	c.events[dateKey] = append(c.events[dateKey], optimistic)
	c.render()

	created, err := c.api.CreateEvent(ctx, dateKey, e)
	if err != nil {
		m.Rollback()
		return event.Event{}, c.rollbackByReload(ctx, err)
	}

	if i := indexOf(c.events[dateKey], tempID); i != -1 {
		c.events[dateKey][i] = created
		c.render()
	}
	m.Confirm()
	return created, nil
}

// UpdateEvent overwrites the entry in place, then reconciles with the
// server copy. Rollback is a full reload: the optimistic guess is
// discarded rather than undone field by field.
func (c *Controller) UpdateEvent(ctx context.Context, dateKey, eventID string, e event.Event) (event.Event, error) {
	if !isServerID(eventID) {
		return event.Event{}, c.reloadAndReport(ctx)
	}

	m := NewMutation()

	i := indexOf(c.events[dateKey], eventID)
	if i != -1 {
		optimistic := e
		optimistic.ID = eventID
		c.events[dateKey][i] = optimistic
		c.render()
	}

	updated, err := c.api.UpdateEvent(ctx, dateKey, eventID, e)
	if err != nil {
		m.Rollback()
		return event.Event{}, c.rollbackByReload(ctx, err)
	}

	if i != -1 {
		c.events[dateKey][i] = updated
		c.render()
	}
	m.Confirm()
	return updated, nil
}

// DeleteEvent splices the entry out immediately. On failure the removed
// entry is re-inserted at its original position.
func (c *Controller) DeleteEvent(ctx context.Context, dateKey, eventID string) error {
	if !isServerID(eventID) {
		return c.reloadAndReport(ctx)
	}

	m := NewMutation()

	i := indexOf(c.events[dateKey], eventID)
	var removed event.Event
	if i != -1 {
		removed = c.events[dateKey][i]
		c.events[dateKey] = append(c.events[dateKey][:i], c.events[dateKey][i+1:]...)
		c.render()
	}

	if err := c.api.DeleteEvent(ctx, dateKey, eventID); err != nil {
		m.Rollback()
		if i != -1 {
			list := c.events[dateKey]
			list = append(list, event.Event{})
			copy(list[i+1:], list[i:])
			list[i] = removed
			c.events[dateKey] = list
			c.render()
		}
		return c.checkUnauthorized(err)
	}

	m.Confirm()
	return nil
}

// rollbackByReload restores the mirror from the server after a failed
// create/update, then propagates the original failure.
func (c *Controller) rollbackByReload(ctx context.Context, cause error) error {
	if errors.Is(cause, ErrUnauthorized) {
		return c.checkUnauthorized(cause)
	}
	_ = c.LoadEvents(ctx)
	return cause
}

// reloadAndReport handles the provisional-id edge: reconcile with the
// server and report that the optimistic path was unavailable.
func (c *Controller) reloadAndReport(ctx context.Context) error {
	if err := c.LoadEvents(ctx); err != nil {
		return err
	}
	return ErrNotSynced
}

func (c *Controller) checkUnauthorized(err error) error {
	if errors.Is(err, ErrUnauthorized) {
		c.api.ClearToken()
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	}
	return err
}

func (c *Controller) render() {
	if c.onRender != nil {
		c.onRender()
	}
}

func isServerID(id string) bool {
	return id != "" && !strings.HasPrefix(id, tempIDPrefix)
}

func indexOf(list []event.Event, id string) int {
	for i, e := range list {
		if e.ID == id {
			return i
		}
	}
	return -1
}
