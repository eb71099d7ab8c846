// Package client is the synchronization layer a calendar UI drives: a thin
// HTTP client for the events API plus a Controller owning an in-memory
// mirror of the calendar with optimistic mutations.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/zohaibkhan/booking-calendar-backend/internal/event"
)

// ErrUnauthorized is returned when the server rejects the bearer
// credential. The controller clears its token and defers the login
// redirect to the embedding UI.
var ErrUnauthorized = errors.New("unauthorized")

// APIClient calls the events API and unwraps its response envelope.
type APIClient struct {
	baseURL string
	token   string
	httpc   *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		httpc:   http.DefaultClient,
	}
}

// SetToken sets the bearer credential attached to every request.
func (c *APIClient) SetToken(token string) {
	c.token = token
}

// ClearToken drops the cached credential.
func (c *APIClient) ClearToken() {
	c.token = ""
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// FetchEvents retrieves the full authoritative mapping.
func (c *APIClient) FetchEvents(ctx context.Context) (event.EventsData, error) {
	var data event.EventsData
	if err := c.do(ctx, http.MethodGet, "/api/events", nil, &data); err != nil {
		return nil, err
	}
	if data == nil {
		data = event.EventsData{}
	}
	return data, nil
}

// CreateEvent stores a new event and returns the server copy with its id.
func (c *APIClient) CreateEvent(ctx context.Context, dateKey string, e event.Event) (event.Event, error) {
	body := event.CreateEventRequest{DateKey: dateKey, Event: &e}
	var created event.Event
	if err := c.do(ctx, http.MethodPost, "/api/events", body, &created); err != nil {
		return event.Event{}, err
	}
	return created, nil
}

// UpdateEvent replaces an event's fields and returns the server copy.
func (c *APIClient) UpdateEvent(ctx context.Context, dateKey, eventID string, e event.Event) (event.Event, error) {
	var updated event.Event
	if err := c.do(ctx, http.MethodPut, eventPath(dateKey, eventID), e, &updated); err != nil {
		return event.Event{}, err
	}
	return updated, nil
}

// DeleteEvent removes an event.
func (c *APIClient) DeleteEvent(ctx context.Context, dateKey, eventID string) error {
	return c.do(ctx, http.MethodDelete, eventPath(dateKey, eventID), nil, nil)
}

func eventPath(dateKey, eventID string) string {
	return fmt.Sprintf("/api/events/%s/%s", url.PathEscape(dateKey), url.PathEscape(eventID))
}

func (c *APIClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	if !env.Success {
		if env.Error != "" {
			return errors.New(env.Error)
		}
		return errors.New("API call failed")
	}

	if out != nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}
