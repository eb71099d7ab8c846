package event

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgresRepository keeps one row per date key with the day's events as a
// JSONB array. Each mutation re-reads only the affected row.
type PostgresRepository struct {
	DB *gorm.DB
}

func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) ReadEvents(ctx context.Context) (EventsData, error) {
	var days []EventDay
	if err := r.DB.WithContext(ctx).Find(&days).Error; err != nil {
		return nil, err
	}

	data := EventsData{}
	for _, day := range days {
		var list []Event
		if err := json.Unmarshal(day.Events, &list); err != nil {
			return nil, err
		}
		if len(list) > 0 {
			data[day.DateKey] = list
		}
	}
	return data, nil
}

func (r *PostgresRepository) AddEvent(ctx context.Context, dateKey string, e Event) (Event, error) {
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

func (r *PostgresRepository) UpdateEvent(ctx context.Context, dateKey, eventID string, e Event) (*Event, error) {
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

func (r *PostgresRepository) DeleteEvent(ctx context.Context, dateKey, eventID string) (bool, error) {
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
		err = r.DB.WithContext(ctx).
			Where("date_key = ?", dateKey).
			Delete(&EventDay{}).Error
	} else {
		err = r.writeDay(ctx, dateKey, list)
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *PostgresRepository) readDay(ctx context.Context, dateKey string) ([]Event, bool, error) {
	var day EventDay
	err := r.DB.WithContext(ctx).
		Where("date_key = ?", dateKey).
		First(&day).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var list []Event
	if err := json.Unmarshal(day.Events, &list); err != nil {
		return nil, false, err
	}
	return list, true, nil
}

func (r *PostgresRepository) writeDay(ctx context.Context, dateKey string, list []Event) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}

	day := EventDay{DateKey: dateKey, Events: raw}
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"events"}),
		}).
		Create(&day).Error
}
