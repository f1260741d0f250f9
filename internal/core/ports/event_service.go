package ports

import (
	"context"

	"github.com/ieee-kiit/events-api/internal/core/domain"
)

// EventService exposes the event read/write contract to the transport layer.
// Returned events carry their derived status.
type EventService interface {
	List(ctx context.Context, status *domain.EventStatus, limit, offset int) ([]domain.Event, error)
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	Create(ctx context.Context, in CreateEventInput) (int64, error)
	Update(ctx context.Context, id int64, in UpdateEventInput) error
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*domain.EventStats, error)
}
