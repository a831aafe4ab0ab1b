package sample

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lims/lims/internal/domain/catalog"
	"github.com/lims/lims/internal/domain/notification"
)

// TestCatalog resolves test types during registration. Satisfied by
// catalog.Service.
type TestCatalog interface {
	GetTest(ctx context.Context, id uuid.UUID) (*catalog.Test, error)
}

// Notifier delivers in-app notifications. Satisfied by notification.Service.
// Delivery failures never fail the lifecycle operation that triggered them.
type Notifier interface {
	Emit(ctx context.Context, userID *uuid.UUID, typ, title, message string)
}

type Service struct {
	repo     Repository
	catalog  TestCatalog
	notifier Notifier
}

func NewService(repo Repository, cat TestCatalog, notifier Notifier) *Service {
	return &Service{repo: repo, catalog: cat, notifier: notifier}
}

// actorRef returns a nullable reference to the acting user. Dev auth supplies
// uuid.Nil when no real user row exists; storing NULL keeps the users foreign
// key satisfied, and a nil notification target broadcasts instead.
func actorRef(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}

// RegisterInput carries the fields needed to register a new sample.
type RegisterInput struct {
	PatientName    string
	NationalID     *string
	TestTypeID     uuid.UUID
	CollectionDate time.Time
	RegisteredBy   uuid.UUID
}

// Register creates a sample in the registered state after verifying the
// test type exists in the catalog.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*Sample, error) {
	if in.PatientName == "" {
		return nil, ErrPatientNameRequired
	}
	if in.CollectionDate.IsZero() {
		return nil, ErrCollectionDateRequired
	}
	if in.TestTypeID == uuid.Nil {
		return nil, ErrTestTypeRequired
	}

	test, err := s.catalog.GetTest(ctx, in.TestTypeID)
	if errors.Is(err, catalog.ErrNotFound) {
		return nil, ErrUnknownTestType
	}
	if err != nil {
		return nil, err
	}

	registrant := actorRef(in.RegisteredBy)
	sm := &Sample{
		PatientName:    in.PatientName,
		NationalID:     in.NationalID,
		TestTypeID:     in.TestTypeID,
		TestName:       test.NameEn,
		CollectionDate: in.CollectionDate,
		RegisteredBy:   registrant,
	}
	if err := s.repo.Create(ctx, sm); err != nil {
		return nil, err
	}

	s.notifier.Emit(ctx, registrant, notification.TypeInfo,
		"Sample registered",
		fmt.Sprintf("Sample %s registered for patient %s (%s)", sm.ID, sm.PatientName, test.NameEn))
	return sm, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Sample, error) {
	return s.repo.GetByID(ctx, id)
}

// EnterResult records result values for a registered sample and completes
// it. The status transition happens atomically in storage; a sample that is
// missing, already completed, or cancelled yields ErrInvalidState.
func (s *Service) EnterResult(ctx context.Context, id uuid.UUID, resultData map[string]string, completedBy uuid.UUID) error {
	if len(resultData) == 0 {
		return ErrResultDataRequired
	}
	technician := actorRef(completedBy)
	if err := s.repo.Complete(ctx, id, resultData, technician); err != nil {
		return err
	}

	s.notifier.Emit(ctx, technician, notification.TypeSuccess,
		"Result recorded",
		fmt.Sprintf("Result for sample %s recorded", id))
	return nil
}

// Cancel voids a registered sample. Completed samples cannot be cancelled;
// their results are already part of the reporting record.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID, cancelledBy uuid.UUID) error {
	if err := s.repo.Cancel(ctx, id); err != nil {
		return err
	}

	s.notifier.Emit(ctx, actorRef(cancelledBy), notification.TypeWarning,
		"Sample cancelled",
		fmt.Sprintf("Sample %s was cancelled", id))
	return nil
}

// ListPending returns samples awaiting result entry, newest collection first.
func (s *Service) ListPending(ctx context.Context) ([]*PendingSample, error) {
	return s.repo.ListPending(ctx)
}

// Search requires at least one filter; an unbounded scan of the sample table
// is never served.
func (s *Service) Search(ctx context.Context, f SearchFilter, limit, offset int) ([]*Sample, int, error) {
	if f.Empty() {
		return nil, 0, ErrEmptySearch
	}
	return s.repo.Search(ctx, f, limit, offset)
}

// CountByDate counts samples registered on the given day, or all samples
// when date is nil.
func (s *Service) CountByDate(ctx context.Context, date *time.Time) (int, error) {
	return s.repo.CountByDate(ctx, date)
}

func (s *Service) CountPending(ctx context.Context) (int, error) {
	return s.repo.CountPending(ctx)
}
