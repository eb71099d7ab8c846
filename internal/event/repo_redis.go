package event

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

const redisEventsKey = "calendar:events"

// RedisRepository keeps the mapping in a single hash, one field per date
// key holding the day's events as a JSON array.
type RedisRepository struct {
	rdb *redis.Client
}

func NewRedisRepository(rdb *redis.Client) *RedisRepository {
	return &RedisRepository{rdb: rdb}
}

func (r *RedisRepository) ReadEvents(ctx context.Context) (EventsData, error) {
	fields, err := r.rdb.HGetAll(ctx, redisEventsKey).Result()
	if err != nil {
		return nil, err
	}

	data := EventsData{}
	for dateKey, raw := range fields {
		var list []Event
		if err := json.Unmarshal([]byte(raw), &list); err != nil {
			return nil, err
		}
		if len(list) > 0 {
			data[dateKey] = list
		}
	}
	return data, nil
}

func (r *RedisRepository) AddEvent(ctx context.Context, dateKey string, e Event) (Event, error) {
	list, _, err := r.readDay(ctx, dateKey)
	if err != nil {
		return Event{}, err
	}

	stored := assignID(list, e)
	if err := r.writeDay(ctx, dateKey, append(list, stored)); err != nil {
		return Event{}, err
	}
	return stored, nil
}

func (r *RedisRepository) UpdateEvent(ctx context.Context, dateKey, eventID string, e Event) (*Event, error) {
	list, found, err := r.readDay(ctx, dateKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	i := indexOfID(list, eventID)
	if i == -1 {
		return nil, nil
	}

	updated := replaceAt(list, i, e)
	if err := r.writeDay(ctx, dateKey, list); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *RedisRepository) DeleteEvent(ctx context.Context, dateKey, eventID string) (bool, error) {
	list, found, err := r.readDay(ctx, dateKey)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	i := indexOfID(list, eventID)
	if i == -1 {
		return false, nil
	}

	list = removeAt(list, i)
	if len(list) == 0 {
		err = r.rdb.HDel(ctx, redisEventsKey, dateKey).Err()
	} else {
		err = r.writeDay(ctx, dateKey, list)
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *RedisRepository) readDay(ctx context.Context, dateKey string) ([]Event, bool, error) {
	raw, err := r.rdb.HGet(ctx, redisEventsKey, dateKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var list []Event
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, false, err
	}
	return list, true, nil
}

func (r *RedisRepository) writeDay(ctx context.Context, dateKey string, list []Event) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return r.rdb.HSet(ctx, redisEventsKey, dateKey, string(raw)).Err()
}
