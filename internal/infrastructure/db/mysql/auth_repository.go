package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pocketbase/dbx"

	"github.com/ieee-kiit/events-api/internal/core/domain"
)

// AuthRepository reads the admin credential record.
type AuthRepository struct {
	db *dbx.DB
}

func NewAuthRepository(db *dbx.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) FindByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	var admin domain.Admin
	err := r.db.Select("id", "name", "email", "password_hash").
		From("admins").
		Where(dbx.HashExp{"email": email}).
		WithContext(ctx).
		One(&admin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("select admin: %w", err)
	}
	return &admin, nil
}
