package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ieee-kiit/events-api/internal/core/domain"
	"github.com/ieee-kiit/events-api/internal/core/ports"
)

type eventService struct {
	repo ports.EventRepository
	log  zerolog.Logger
}

// NewEventService returns an EventService implementation.
func NewEventService(repo ports.EventRepository, log zerolog.Logger) ports.EventService {
	return &eventService{repo: repo, log: log}
}

// List fetches a page of events and attaches derived statuses. The same now
// snapshot drives both the SQL status filter and the per-row derivation, so a
// list filtered to a status contains exactly the events displaying it.
func (s *eventService) List(ctx context.Context, status *domain.EventStatus, limit, offset int) ([]domain.Event, error) {
	now := time.Now().UTC()

	events, err := s.repo.List(ctx, ports.ListEventsFilter{
		Status: status,
		Now:    now,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	for i := range events {
		events[i].Status = domain.DeriveStatus(now, events[i].StartTime, events[i].EndTime)
	}
	return events, nil
}

func (s *eventService) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	event.Status = domain.DeriveStatus(time.Now().UTC(), event.StartTime, event.EndTime)
	return event, nil
}

func (s *eventService) Create(ctx context.Context, in ports.CreateEventInput) (int64, error) {
	// Strict inequality: a zero-length window is rejected.
	if !in.EndTime.After(in.StartTime) {
		return 0, domain.ErrEndBeforeStart
	}

	id, err := s.repo.Create(ctx, in)
	if err != nil {
		s.log.Error().Err(err).Str("title", in.Title).Msg("failed to create event")
		return 0, err
	}

	s.log.Info().Int64("event_id", id).Str("title", in.Title).Msg("event created")
	return id, nil
}

// Update applies a partial patch. When either timestamp changes, the
// end > start invariant is re-checked against the new effective values:
// a supplied side combined with the stored value of the missing side.
// A patch that touches neither timestamp never re-validates the window.
func (s *eventService) Update(ctx context.Context, id int64, in ports.UpdateEventInput) error {
	if in.Empty() {
		return domain.ErrNoFields
	}

	if in.StartTime != nil || in.EndTime != nil {
		start, end := in.StartTime, in.EndTime
		if start == nil || end == nil {
			existing, err := s.repo.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if start == nil {
				start = &existing.StartTime
			}
			if end == nil {
				end = &existing.EndTime
			}
		}
		if !end.After(*start) {
			return domain.ErrEndBeforeStart
		}
	}

	if err := s.repo.Update(ctx, id, in); err != nil {
		return err
	}

	s.log.Info().Int64("event_id", id).Msg("event updated")
	return nil
}

func (s *eventService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("event_id", id).Msg("event deleted")
	return nil
}

// Stats returns per-status counts computed against a single now snapshot, so
// the four numbers are mutually consistent and sum to total.
func (s *eventService) Stats(ctx context.Context) (*domain.EventStats, error) {
	stats, err := s.repo.Stats(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("event stats: %w", err)
	}
	return stats, nil
}
