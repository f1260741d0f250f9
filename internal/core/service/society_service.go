package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ieee-kiit/events-api/internal/core/domain"
	"github.com/ieee-kiit/events-api/internal/core/ports"
)

type societyService struct {
	repo ports.SocietyRepository
	log  zerolog.Logger
}

// NewSocietyService returns a SocietyService implementation.
func NewSocietyService(repo ports.SocietyRepository, log zerolog.Logger) ports.SocietyService {
	return &societyService{repo: repo, log: log}
}

func (s *societyService) List(ctx context.Context, limit, offset int) ([]domain.Society, int, error) {
	societies, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list societies: %w", err)
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count societies: %w", err)
	}
	return societies, total, nil
}

func (s *societyService) GetByID(ctx context.Context, id int64) (*domain.Society, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *societyService) Create(ctx context.Context, in ports.CreateSocietyInput) (*domain.Society, error) {
	// Legacy placeholder default, kept for compatibility with existing rows.
	facultyName := domain.DefaultFacultyName
	if in.FacultyName != nil && *in.FacultyName != "" {
		facultyName = *in.FacultyName
	}

	created, err := s.repo.Create(ctx, &domain.Society{
		Name:        in.Name,
		LogoURL:     in.LogoURL,
		ChairName:   in.ChairName,
		Description: in.Description,
		FacultyName: facultyName,
	})
	if err != nil {
		s.log.Error().Err(err).Str("name", in.Name).Msg("failed to create society")
		return nil, err
	}

	s.log.Info().Int64("society_id", created.ID).Str("name", created.Name).Msg("society created")
	return created, nil
}

// Update applies a partial patch. An empty patch is a no-op reported as
// domain.ErrNoFields rather than a silent success.
func (s *societyService) Update(ctx context.Context, id int64, in ports.UpdateSocietyInput) error {
	if in.Empty() {
		return domain.ErrNoFields
	}

	if err := s.repo.Update(ctx, id, in); err != nil {
		return err
	}

	s.log.Info().Int64("society_id", id).Msg("society updated")
	return nil
}

func (s *societyService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("society_id", id).Msg("society deleted")
	return nil
}
