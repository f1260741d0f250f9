package ports

import (
	"context"

	"github.com/ieee-kiit/events-api/internal/core/domain"
)

// AuthRepository defines the interface for admin credential persistence.
type AuthRepository interface {
	// FindByEmail returns domain.ErrAdminNotFound when no record matches.
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
}
