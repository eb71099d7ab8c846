package event

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileRepository persists the whole mapping as a single JSON document on
// disk, matching the original deployment layout. The mutex only serializes
// this process's read-modify-write cycles so file writes cannot interleave;
// it gives no cross-process guarantee.
type FileRepository struct {
	path string
	mu   sync.Mutex
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) ReadEvents(ctx context.Context) (EventsData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readAll()
}

func (r *FileRepository) AddEvent(ctx context.Context, dateKey string, e Event) (Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.readAll()
	if err != nil {
		return Event{}, err
	}

	stored := assignID(data[dateKey], e)
	data[dateKey] = append(data[dateKey], stored)

	if err := r.writeAll(data); err != nil {
		return Event{}, err
	}
	return stored, nil
}

func (r *FileRepository) UpdateEvent(ctx context.Context, dateKey, eventID string, e Event) (*Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.readAll()
	if err != nil {
		return nil, err
	}

	list, ok := data[dateKey]
	if !ok {
		return nil, nil
	}
	i := indexOfID(list, eventID)
	if i == -1 {
		return nil, nil
	}

	updated := replaceAt(list, i, e)
	if err := r.writeAll(data); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *FileRepository) DeleteEvent(ctx context.Context, dateKey, eventID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.readAll()
	if err != nil {
		return false, err
	}

	list, ok := data[dateKey]
	if !ok {
		return false, nil
	}
	i := indexOfID(list, eventID)
	if i == -1 {
		return false, nil
	}

	list = removeAt(list, i)
	if len(list) == 0 {
		delete(data, dateKey)
	} else {
		data[dateKey] = list
	}

	if err := r.writeAll(data); err != nil {
		return false, err
	}
	return true, nil
}

func (r *FileRepository) readAll() (EventsData, error) {
	raw, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return EventsData{}, nil
	}
	if err != nil {
		return nil, err
	}

	data := EventsData{}
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return data, nil
}

func (r *FileRepository) writeAll(data EventsData) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, raw, 0o644)
}
