package ports

import (
	"context"

	"github.com/ieee-kiit/events-api/internal/core/domain"
)

// SocietyService exposes the society read/write contract to the transport layer.
type SocietyService interface {
	// List returns a page of societies and the total count.
	List(ctx context.Context, limit, offset int) ([]domain.Society, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Society, error)
	Create(ctx context.Context, in CreateSocietyInput) (*domain.Society, error)
	Update(ctx context.Context, id int64, in UpdateSocietyInput) error
	Delete(ctx context.Context, id int64) error
}
