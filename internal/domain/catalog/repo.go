package catalog

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence boundary for the test catalog.
type Repository interface {
	Create(ctx context.Context, t *Test) error
	GetByID(ctx context.Context, id uuid.UUID) (*Test, error)
	List(ctx context.Context, limit, offset int) ([]*Test, int, error)
	Update(ctx context.Context, t *Test) error
	Delete(ctx context.Context, id uuid.UUID) error
	SampleCount(ctx context.Context, testID uuid.UUID) (int, error)
}
