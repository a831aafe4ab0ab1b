package sample

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository is the persistence boundary for samples. Complete and Cancel
// enforce the status transition at the storage layer so concurrent writers
// cannot both move the same sample out of a state.
type Repository interface {
	Create(ctx context.Context, s *Sample) error
	GetByID(ctx context.Context, id uuid.UUID) (*Sample, error)
	Complete(ctx context.Context, id uuid.UUID, resultData map[string]string, completedBy *uuid.UUID) error
	Cancel(ctx context.Context, id uuid.UUID) error
	ListPending(ctx context.Context) ([]*PendingSample, error)
	Search(ctx context.Context, f SearchFilter, limit, offset int) ([]*Sample, int, error)
	CountByDate(ctx context.Context, date *time.Time) (int, error)
	CountPending(ctx context.Context) (int, error)
}
