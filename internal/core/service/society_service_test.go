package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ieee-kiit/events-api/internal/core/domain"
	"github.com/ieee-kiit/events-api/internal/core/ports"
)

type stubSocietyRepo struct {
	societies map[int64]domain.Society
	nextID    int64

	updateCalls int
}

func newStubSocietyRepo() *stubSocietyRepo {
	return &stubSocietyRepo{societies: make(map[int64]domain.Society), nextID: 1}
}

func (r *stubSocietyRepo) List(_ context.Context, limit, offset int) ([]domain.Society, error) {
	out := []domain.Society{}
	for _, s := range r.societies {
		out = append(out, s)
	}
	return out, nil
}

func (r *stubSocietyRepo) Count(_ context.Context) (int, error) {
	return len(r.societies), nil
}

func (r *stubSocietyRepo) GetByID(_ context.Context, id int64) (*domain.Society, error) {
	s, ok := r.societies[id]
	if !ok {
		return nil, domain.ErrSocietyNotFound
	}
	copy := s
	return &copy, nil
}

func (r *stubSocietyRepo) Create(_ context.Context, s *domain.Society) (*domain.Society, error) {
	created := *s
	created.ID = r.nextID
	r.nextID++
	r.societies[created.ID] = created
	return &created, nil
}

func (r *stubSocietyRepo) Update(_ context.Context, id int64, in ports.UpdateSocietyInput) error {
	r.updateCalls++
	s, ok := r.societies[id]
	if !ok {
		return domain.ErrSocietyNotFound
	}
	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.LogoURL != nil {
		s.LogoURL = in.LogoURL
	}
	if in.ChairName != nil {
		s.ChairName = *in.ChairName
	}
	if in.Description != nil {
		s.Description = *in.Description
	}
	if in.FacultyName != nil {
		s.FacultyName = *in.FacultyName
	}
	r.societies[id] = s
	return nil
}

func (r *stubSocietyRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.societies[id]; !ok {
		return domain.ErrSocietyNotFound
	}
	delete(r.societies, id)
	return nil
}

func newSocietyService(repo ports.SocietyRepository) ports.SocietyService {
	return NewSocietyService(repo, zerolog.Nop())
}

func TestSocietyService_Create_DefaultsFacultyName(t *testing.T) {
	repo := newStubSocietyRepo()
	svc := newSocietyService(repo)

	created, err := svc.Create(context.Background(), ports.CreateSocietyInput{
		Name:      "Robotics Society",
		ChairName: "A. Chair",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.FacultyName != domain.DefaultFacultyName {
		t.Fatalf("expected faculty_name %q, got %q", domain.DefaultFacultyName, created.FacultyName)
	}

	stored, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.FacultyName != "random" {
		t.Fatalf("stored faculty_name = %q, want the literal placeholder", stored.FacultyName)
	}
}

func TestSocietyService_Create_ExplicitFacultyName(t *testing.T) {
	repo := newStubSocietyRepo()
	svc := newSocietyService(repo)
	faculty := "School of Electronics"

	created, err := svc.Create(context.Background(), ports.CreateSocietyInput{
		Name:        "Signal Processing Society",
		ChairName:   "B. Chair",
		FacultyName: &faculty,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.FacultyName != faculty {
		t.Fatalf("expected faculty_name %q, got %q", faculty, created.FacultyName)
	}
}

func TestSocietyService_Update_EmptyPatchIsNoOp(t *testing.T) {
	repo := newStubSocietyRepo()
	svc := newSocietyService(repo)

	created, err := svc.Create(context.Background(), ports.CreateSocietyInput{
		Name: "Unchanged", ChairName: "C. Chair",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Update(context.Background(), created.ID, ports.UpdateSocietyInput{}); !errors.Is(err, domain.ErrNoFields) {
		t.Fatalf("expected ErrNoFields, got %v", err)
	}
	if repo.updateCalls != 0 {
		t.Fatalf("empty patch must not reach the repository")
	}

	stored, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.Name != "Unchanged" {
		t.Fatalf("no-op update mutated the record: %+v", stored)
	}
}

func TestSocietyService_Update_PartialFields(t *testing.T) {
	repo := newStubSocietyRepo()
	svc := newSocietyService(repo)

	created, err := svc.Create(context.Background(), ports.CreateSocietyInput{
		Name: "Old Name", ChairName: "D. Chair", Description: "old",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	name := "New Name"
	if err := svc.Update(context.Background(), created.ID, ports.UpdateSocietyInput{Name: &name}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stored, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.Name != "New Name" || stored.ChairName != "D. Chair" || stored.Description != "old" {
		t.Fatalf("partial update touched unrelated fields: %+v", stored)
	}
}

func TestSocietyService_Delete_NotFound(t *testing.T) {
	repo := newStubSocietyRepo()
	svc := newSocietyService(repo)

	if err := svc.Delete(context.Background(), 42); !errors.Is(err, domain.ErrSocietyNotFound) {
		t.Fatalf("expected ErrSocietyNotFound, got %v", err)
	}
}

func TestSocietyService_List_ReturnsTotal(t *testing.T) {
	repo := newStubSocietyRepo()
	svc := newSocietyService(repo)

	for _, name := range []string{"a", "b", "c"} {
		if _, err := svc.Create(context.Background(), ports.CreateSocietyInput{Name: name, ChairName: "x"}); err != nil {
			t.Fatalf("seed create failed: %v", err)
		}
	}

	societies, total, err := svc.List(context.Background(), 100, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(societies) != 3 || total != 3 {
		t.Fatalf("expected 3 societies with total 3, got %d/%d", len(societies), total)
	}
}
