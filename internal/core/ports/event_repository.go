package ports

import (
	"context"
	"time"

	"github.com/ieee-kiit/events-api/internal/core/domain"
)

// ListEventsFilter carries the query parameters for listing events.
// Now is the single time snapshot the repository must use for every
// status comparison in the query; it is owned by the service so the
// filter predicate and the derived display status always agree.
type ListEventsFilter struct {
	Status *domain.EventStatus // optional: only events currently in this status
	Now    time.Time
	Limit  int // bounds checked at the API boundary, [1, 1000]
	Offset int
}

// CreateEventInput holds the client-settable fields of a new event.
type CreateEventInput struct {
	Title       string
	ImageURL    *string
	Description *string
	StartTime   time.Time
	EndTime     time.Time
}

// UpdateEventInput is a patch object: nil means "leave unchanged".
// ID and created_at are never updatable.
type UpdateEventInput struct {
	Title       *string
	ImageURL    *string
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
}

// Empty reports whether the patch carries no fields at all.
func (in UpdateEventInput) Empty() bool {
	return in.Title == nil && in.ImageURL == nil && in.Description == nil &&
		in.StartTime == nil && in.EndTime == nil
}

// EventRepository defines persistence operations for events. Implementations
// must filter and order using raw timestamp comparisons equivalent to
// domain.DeriveStatus against the provided now snapshot, never a second copy
// of the tri-state logic.
type EventRepository interface {
	// List returns events ordered LIVE, UPCOMING, PAST, then start_time
	// ascending within each tier.
	List(ctx context.Context, filter ListEventsFilter) ([]domain.Event, error)
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	// Create inserts a new event and returns its store-assigned id.
	Create(ctx context.Context, in CreateEventInput) (int64, error)
	// Update applies the non-nil fields of in. Returns domain.ErrEventNotFound
	// when no row matched.
	Update(ctx context.Context, id int64, in UpdateEventInput) error
	Delete(ctx context.Context, id int64) error
	// Stats counts events per derived status against the now snapshot.
	Stats(ctx context.Context, now time.Time) (*domain.EventStats, error)
}
