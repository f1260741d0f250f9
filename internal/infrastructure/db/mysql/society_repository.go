package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pocketbase/dbx"

	"github.com/ieee-kiit/events-api/internal/core/domain"
	"github.com/ieee-kiit/events-api/internal/core/ports"
)

// SocietyRepository persists societies. No derived state here.
type SocietyRepository struct {
	db *dbx.DB
}

func NewSocietyRepository(db *dbx.DB) *SocietyRepository {
	return &SocietyRepository{db: db}
}

func (r *SocietyRepository) List(ctx context.Context, limit, offset int) ([]domain.Society, error) {
	societies := []domain.Society{}
	err := r.db.Select("id", "name", "logo_url", "chair_name", "description", "faculty_name").
		From("societies").
		OrderBy("id ASC").
		Limit(int64(limit)).
		Offset(int64(offset)).
		WithContext(ctx).
		All(&societies)
	if err != nil {
		return nil, fmt.Errorf("select societies: %w", err)
	}
	return societies, nil
}

func (r *SocietyRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.NewQuery("SELECT COUNT(*) FROM societies").WithContext(ctx).Row(&count)
	if err != nil {
		return 0, fmt.Errorf("count societies: %w", err)
	}
	return count, nil
}

func (r *SocietyRepository) GetByID(ctx context.Context, id int64) (*domain.Society, error) {
	var society domain.Society
	err := r.db.Select("id", "name", "logo_url", "chair_name", "description", "faculty_name").
		From("societies").
		Where(dbx.HashExp{"id": id}).
		WithContext(ctx).
		One(&society)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSocietyNotFound
		}
		return nil, fmt.Errorf("select society: %w", err)
	}
	return &society, nil
}

func (r *SocietyRepository) Create(ctx context.Context, s *domain.Society) (*domain.Society, error) {
	res, err := r.db.Insert("societies", dbx.Params{
		"name":         s.Name,
		"logo_url":     s.LogoURL,
		"chair_name":   s.ChairName,
		"description":  s.Description,
		"faculty_name": s.FacultyName,
	}).WithContext(ctx).Execute()
	if err != nil {
		return nil, fmt.Errorf("insert society: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert society id: %w", err)
	}

	created := *s
	created.ID = id
	return &created, nil
}

func (r *SocietyRepository) Update(ctx context.Context, id int64, in ports.UpdateSocietyInput) error {
	cols := dbx.Params{}
	if in.Name != nil {
		cols["name"] = *in.Name
	}
	if in.LogoURL != nil {
		cols["logo_url"] = *in.LogoURL
	}
	if in.ChairName != nil {
		cols["chair_name"] = *in.ChairName
	}
	if in.Description != nil {
		cols["description"] = *in.Description
	}
	if in.FacultyName != nil {
		cols["faculty_name"] = *in.FacultyName
	}
	if len(cols) == 0 {
		return domain.ErrNoFields
	}

	res, err := r.db.Update("societies", cols, dbx.HashExp{"id": id}).WithContext(ctx).Execute()
	if err != nil {
		return fmt.Errorf("update society: %w", err)
	}
	return requireAffected(res, domain.ErrSocietyNotFound)
}

func (r *SocietyRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Delete("societies", dbx.HashExp{"id": id}).WithContext(ctx).Execute()
	if err != nil {
		return fmt.Errorf("delete society: %w", err)
	}
	return requireAffected(res, domain.ErrSocietyNotFound)
}
