package catalog

import (
	"context"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateTest(ctx context.Context, t *Test) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.ResultFields == nil {
		t.ResultFields = []ResultField{}
	}
	return s.repo.Create(ctx, t)
}

func (s *Service) GetTest(ctx context.Context, id uuid.UUID) (*Test, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListTests(ctx context.Context, limit, offset int) ([]*Test, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) UpdateTest(ctx context.Context, t *Test) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.ResultFields == nil {
		t.ResultFields = []ResultField{}
	}
	return s.repo.Update(ctx, t)
}

// DeleteTest removes a test from the catalog. A test that samples still
// reference cannot be deleted; registered work must keep its pricing and
// result-field definitions.
func (s *Service) DeleteTest(ctx context.Context, id uuid.UUID) error {
	n, err := s.repo.SampleCount(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrTestInUse
	}
	return s.repo.Delete(ctx, id)
}
