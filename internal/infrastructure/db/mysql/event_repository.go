package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pocketbase/dbx"

	"github.com/ieee-kiit/events-api/internal/core/domain"
	"github.com/ieee-kiit/events-api/internal/core/ports"
)

// EventRepository persists events in the events table. Every status
// comparison is a raw timestamp predicate against the caller's now snapshot,
// equivalent to domain.DeriveStatus; the tri-state logic is never restated as
// an independent literal here.
type EventRepository struct {
	db *dbx.DB
}

func NewEventRepository(db *dbx.DB) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = "id, title, image_url, description, start_time, end_time, created_at, updated_at"

// statusPredicate returns the WHERE fragment selecting events currently in
// status, written against the {:now} named parameter. The three fragments
// mirror domain.DeriveStatus: both window boundaries belong to LIVE.
func statusPredicate(status domain.EventStatus) string {
	switch status {
	case domain.StatusUpcoming:
		return "{:now} < start_time"
	case domain.StatusLive:
		return "start_time <= {:now} AND {:now} <= end_time"
	default: // domain.StatusPast
		return "{:now} > end_time"
	}
}

// List returns a page of events ordered by status tier (LIVE, UPCOMING, PAST)
// and then start_time ascending. The CASE ranks mirror domain.EventStatus.Rank.
func (r *EventRepository) List(ctx context.Context, filter ports.ListEventsFilter) ([]domain.Event, error) {
	query := "SELECT " + eventColumns + " FROM events"
	if filter.Status != nil {
		query += " WHERE " + statusPredicate(*filter.Status)
	}
	query += `
		ORDER BY
			CASE
				WHEN start_time <= {:now} AND {:now} <= end_time THEN 0
				WHEN {:now} < start_time THEN 1
				ELSE 2
			END,
			start_time ASC
		LIMIT {:limit} OFFSET {:offset}`

	events := []domain.Event{}
	err := r.db.NewQuery(query).
		Bind(dbx.Params{
			"now":    filter.Now,
			"limit":  filter.Limit,
			"offset": filter.Offset,
		}).
		WithContext(ctx).
		All(&events)
	if err != nil {
		return nil, fmt.Errorf("select events: %w", err)
	}
	return events, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	var event domain.Event
	err := r.db.NewQuery("SELECT "+eventColumns+" FROM events WHERE id = {:id}").
		Bind(dbx.Params{"id": id}).
		WithContext(ctx).
		One(&event)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("select event: %w", err)
	}
	return &event, nil
}

func (r *EventRepository) Create(ctx context.Context, in ports.CreateEventInput) (int64, error) {
	res, err := r.db.Insert("events", dbx.Params{
		"title":       in.Title,
		"image_url":   in.ImageURL,
		"description": in.Description,
		"start_time":  in.StartTime,
		"end_time":    in.EndTime,
	}).WithContext(ctx).Execute()
	if err != nil {
		return 0, fmt.Errorf("insert event: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert event id: %w", err)
	}
	return id, nil
}

// Update writes the non-nil patch fields in one parameterized statement.
// id and created_at are never part of the SET clause.
func (r *EventRepository) Update(ctx context.Context, id int64, in ports.UpdateEventInput) error {
	cols := dbx.Params{}
	if in.Title != nil {
		cols["title"] = *in.Title
	}
	if in.ImageURL != nil {
		cols["image_url"] = *in.ImageURL
	}
	if in.Description != nil {
		cols["description"] = *in.Description
	}
	if in.StartTime != nil {
		cols["start_time"] = *in.StartTime
	}
	if in.EndTime != nil {
		cols["end_time"] = *in.EndTime
	}
	if len(cols) == 0 {
		return domain.ErrNoFields
	}

	res, err := r.db.Update("events", cols, dbx.HashExp{"id": id}).WithContext(ctx).Execute()
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return requireAffected(res, domain.ErrEventNotFound)
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Delete("events", dbx.HashExp{"id": id}).WithContext(ctx).Execute()
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return requireAffected(res, domain.ErrEventNotFound)
}

// Stats counts events per status in a single statement so all four numbers
// come from the same rows and the same now snapshot.
func (r *EventRepository) Stats(ctx context.Context, now time.Time) (*domain.EventStats, error) {
	var stats domain.EventStats
	err := r.db.NewQuery(`
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN {:now} < start_time THEN 1 ELSE 0 END), 0) AS upcoming,
			COALESCE(SUM(CASE WHEN start_time <= {:now} AND {:now} <= end_time THEN 1 ELSE 0 END), 0) AS live,
			COALESCE(SUM(CASE WHEN {:now} > end_time THEN 1 ELSE 0 END), 0) AS past
		FROM events`).
		Bind(dbx.Params{"now": now}).
		WithContext(ctx).
		One(&stats)
	if err != nil {
		return nil, fmt.Errorf("event stats: %w", err)
	}
	return &stats, nil
}

// requireAffected translates a zero-row result into notFound.
func requireAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
