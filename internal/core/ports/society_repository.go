package ports

import (
	"context"

	"github.com/ieee-kiit/events-api/internal/core/domain"
)

// CreateSocietyInput holds the client-settable fields of a new society.
// FacultyName nil means "use the stored default".
type CreateSocietyInput struct {
	Name        string
	LogoURL     *string
	ChairName   string
	Description string
	FacultyName *string
}

// UpdateSocietyInput is a patch object: nil means "leave unchanged".
type UpdateSocietyInput struct {
	Name        *string
	LogoURL     *string
	ChairName   *string
	Description *string
	FacultyName *string
}

// Empty reports whether the patch carries no fields at all.
func (in UpdateSocietyInput) Empty() bool {
	return in.Name == nil && in.LogoURL == nil && in.ChairName == nil &&
		in.Description == nil && in.FacultyName == nil
}

// SocietyRepository defines persistence operations for societies.
type SocietyRepository interface {
	List(ctx context.Context, limit, offset int) ([]domain.Society, error)
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id int64) (*domain.Society, error)
	// Create inserts the society and returns it with its assigned id.
	Create(ctx context.Context, s *domain.Society) (*domain.Society, error)
	// Update applies the non-nil fields of in. Returns domain.ErrSocietyNotFound
	// when no row matched.
	Update(ctx context.Context, id int64, in UpdateSocietyInput) error
	Delete(ctx context.Context, id int64) error
}
