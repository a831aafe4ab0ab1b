package sample

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lims/lims/internal/domain/catalog"
	"github.com/lims/lims/internal/domain/notification"
)

// mockRepo is an in-memory Repository that mirrors the conditional-update
// semantics of the Postgres implementation, including its atomicity under
// concurrent callers.
type mockRepo struct {
	mu      sync.Mutex
	samples map[uuid.UUID]*Sample
}

func newMockRepo() *mockRepo {
	return &mockRepo{samples: make(map[uuid.UUID]*Sample)}
}

func (m *mockRepo) Create(ctx context.Context, s *Sample) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = uuid.New()
	s.Status = StatusRegistered
	s.CreatedAt = time.Now()
	m.samples[s.ID] = s
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, id uuid.UUID) (*Sample, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.samples[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (m *mockRepo) Complete(ctx context.Context, id uuid.UUID, resultData map[string]string, completedBy *uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.samples[id]
	if !ok || s.Status != StatusRegistered {
		return ErrInvalidState
	}
	now := time.Now()
	s.Status = StatusCompleted
	s.ResultData = resultData
	s.ResultDate = &now
	s.CompletedBy = completedBy
	return nil
}

func (m *mockRepo) Cancel(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.samples[id]
	if !ok || s.Status != StatusRegistered {
		return ErrInvalidState
	}
	s.Status = StatusCancelled
	return nil
}

func (m *mockRepo) ListPending(ctx context.Context) ([]*PendingSample, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*PendingSample
	for _, s := range m.samples {
		if s.Status == StatusRegistered {
			out = append(out, &PendingSample{
				ID: s.ID, PatientName: s.PatientName,
				CollectionDate: s.CollectionDate, TestTypeID: s.TestTypeID,
			})
		}
	}
	return out, nil
}

func (m *mockRepo) Search(ctx context.Context, f SearchFilter, limit, offset int) ([]*Sample, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Sample
	for _, s := range m.samples {
		if f.PatientName != "" && !strings.Contains(strings.ToLower(s.PatientName), strings.ToLower(f.PatientName)) {
			continue
		}
		if f.SampleID != nil && s.ID != *f.SampleID {
			continue
		}
		out = append(out, s)
	}
	return out, len(out), nil
}

func (m *mockRepo) CountByDate(ctx context.Context, date *time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if date == nil {
		return len(m.samples), nil
	}
	n := 0
	for _, s := range m.samples {
		if s.CreatedAt.Format("2006-01-02") == date.Format("2006-01-02") {
			n++
		}
	}
	return n, nil
}

func (m *mockRepo) CountPending(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, s := range m.samples {
		if s.Status == StatusRegistered {
			n++
		}
	}
	return n, nil
}

// mockCatalog knows a fixed set of test ids.
type mockCatalog struct {
	tests map[uuid.UUID]*catalog.Test
}

func (m *mockCatalog) GetTest(ctx context.Context, id uuid.UUID) (*catalog.Test, error) {
	t, ok := m.tests[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return t, nil
}

// mockNotifier records emitted notifications.
type emitted struct {
	userID  *uuid.UUID
	typ     string
	title   string
	message string
}

type mockNotifier struct {
	mu      sync.Mutex
	emitted []emitted
}

func (m *mockNotifier) Emit(ctx context.Context, userID *uuid.UUID, typ, title, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emitted = append(m.emitted, emitted{userID, typ, title, message})
}

func setup(t *testing.T) (*Service, *mockRepo, *mockNotifier, uuid.UUID) {
	t.Helper()
	repo := newMockRepo()
	testID := uuid.New()
	cat := &mockCatalog{tests: map[uuid.UUID]*catalog.Test{
		testID: {ID: testID, NameAr: "تحليل دم شامل", NameEn: "Complete Blood Count", Price: 25},
	}}
	notifier := &mockNotifier{}
	return NewService(repo, cat, notifier), repo, notifier, testID
}

func validInput(testID uuid.UUID) RegisterInput {
	return RegisterInput{
		PatientName:    "Sara Ahmed",
		TestTypeID:     testID,
		CollectionDate: time.Now(),
		RegisteredBy:   uuid.New(),
	}
}

func TestRegister(t *testing.T) {
	svc, _, notifier, testID := setup(t)

	sm, err := svc.Register(context.Background(), validInput(testID))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if sm.Status != StatusRegistered {
		t.Errorf("status = %q, want registered", sm.Status)
	}
	if sm.ID == uuid.Nil {
		t.Error("expected assigned id")
	}

	if len(notifier.emitted) != 1 {
		t.Fatalf("emitted %d notifications, want 1", len(notifier.emitted))
	}
	n := notifier.emitted[0]
	if n.typ != notification.TypeInfo {
		t.Errorf("notification type = %q, want info", n.typ)
	}
	if !strings.Contains(n.message, "Sara Ahmed") {
		t.Errorf("notification message %q should name the patient", n.message)
	}
}

// A zero actor id (dev auth runs without a user row) stores NULL instead of
// uuid.Nil, which would violate the users foreign key, and broadcasts the
// notification instead of targeting a user.
func TestRegisterWithoutActor(t *testing.T) {
	svc, repo, notifier, testID := setup(t)
	ctx := context.Background()

	in := validInput(testID)
	in.RegisteredBy = uuid.Nil
	sm, err := svc.Register(ctx, in)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if sm.RegisteredBy != nil {
		t.Errorf("registered_by = %v, want nil", sm.RegisteredBy)
	}
	if n := notifier.emitted[0]; n.userID != nil {
		t.Errorf("notification target = %v, want broadcast", n.userID)
	}

	if err := svc.EnterResult(ctx, sm.ID, map[string]string{"x": "1"}, uuid.Nil); err != nil {
		t.Fatalf("EnterResult: %v", err)
	}
	if got := repo.samples[sm.ID].CompletedBy; got != nil {
		t.Errorf("completed_by = %v, want nil", got)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _, testID := setup(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*RegisterInput)
		wantErr error
	}{
		{"missing patient name", func(in *RegisterInput) { in.PatientName = "" }, ErrPatientNameRequired},
		{"missing collection date", func(in *RegisterInput) { in.CollectionDate = time.Time{} }, ErrCollectionDateRequired},
		{"missing test type", func(in *RegisterInput) { in.TestTypeID = uuid.Nil }, ErrTestTypeRequired},
		{"unknown test type", func(in *RegisterInput) { in.TestTypeID = uuid.New() }, ErrUnknownTestType},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput(testID)
			tc.mutate(&in)
			if _, err := svc.Register(ctx, in); !errors.Is(err, tc.wantErr) {
				t.Errorf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestEnterResult(t *testing.T) {
	svc, repo, notifier, testID := setup(t)
	ctx := context.Background()

	sm, err := svc.Register(ctx, validInput(testID))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	tech := uuid.New()
	result := map[string]string{"WBC": "7.2", "RBC": "4.9", NotesField: "fasting sample"}
	if err := svc.EnterResult(ctx, sm.ID, result, tech); err != nil {
		t.Fatalf("EnterResult: %v", err)
	}

	stored := repo.samples[sm.ID]
	if stored.Status != StatusCompleted {
		t.Errorf("status = %q, want completed", stored.Status)
	}
	if stored.ResultDate == nil {
		t.Error("result date not set")
	}
	if stored.CompletedBy == nil || *stored.CompletedBy != tech {
		t.Error("completed_by not recorded")
	}
	if stored.ResultData[NotesField] != "fasting sample" {
		t.Error("notes lost from result payload")
	}

	last := notifier.emitted[len(notifier.emitted)-1]
	if last.typ != notification.TypeSuccess {
		t.Errorf("notification type = %q, want success", last.typ)
	}
}

func TestEnterResultTwice(t *testing.T) {
	svc, _, _, testID := setup(t)
	ctx := context.Background()

	sm, _ := svc.Register(ctx, validInput(testID))
	tech := uuid.New()
	result := map[string]string{"Glucose": "98"}

	if err := svc.EnterResult(ctx, sm.ID, result, tech); err != nil {
		t.Fatalf("first EnterResult: %v", err)
	}
	if err := svc.EnterResult(ctx, sm.ID, result, tech); !errors.Is(err, ErrInvalidState) {
		t.Errorf("second EnterResult: got %v, want ErrInvalidState", err)
	}
}

// An unknown sample id reports the same ErrInvalidState as a completed or
// cancelled one, so result entry never reveals whether an id exists.
func TestEnterResultUnknownSample(t *testing.T) {
	svc, _, _, _ := setup(t)
	err := svc.EnterResult(context.Background(), uuid.New(), map[string]string{"x": "1"}, uuid.New())
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("got %v, want ErrInvalidState", err)
	}
}

func TestCancelUnknownSample(t *testing.T) {
	svc, _, _, _ := setup(t)
	if err := svc.Cancel(context.Background(), uuid.New(), uuid.New()); !errors.Is(err, ErrInvalidState) {
		t.Errorf("got %v, want ErrInvalidState", err)
	}
}

// Concurrent result entry for the same sample: exactly one writer wins,
// everyone else sees ErrInvalidState.
func TestEnterResultConcurrent(t *testing.T) {
	svc, repo, _, testID := setup(t)
	ctx := context.Background()

	sm, err := svc.Register(ctx, validInput(testID))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	const writers = 16
	errs := make(chan error, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- svc.EnterResult(ctx, sm.ID, map[string]string{"Glucose": "98"}, uuid.New())
		}()
	}
	wg.Wait()
	close(errs)

	var won, lost int
	for err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, ErrInvalidState):
			lost++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if won != 1 || lost != writers-1 {
		t.Errorf("won=%d lost=%d, want 1 and %d", won, lost, writers-1)
	}
	if repo.samples[sm.ID].Status != StatusCompleted {
		t.Error("sample not completed")
	}
}

func TestEnterResultEmptyPayload(t *testing.T) {
	svc, _, _, testID := setup(t)
	ctx := context.Background()
	sm, _ := svc.Register(ctx, validInput(testID))

	if err := svc.EnterResult(ctx, sm.ID, nil, uuid.New()); !errors.Is(err, ErrResultDataRequired) {
		t.Errorf("got %v, want ErrResultDataRequired", err)
	}
}

func TestCancel(t *testing.T) {
	svc, repo, notifier, testID := setup(t)
	ctx := context.Background()
	sm, _ := svc.Register(ctx, validInput(testID))

	if err := svc.Cancel(ctx, sm.ID, uuid.New()); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if repo.samples[sm.ID].Status != StatusCancelled {
		t.Error("sample not cancelled")
	}

	last := notifier.emitted[len(notifier.emitted)-1]
	if last.typ != notification.TypeWarning {
		t.Errorf("notification type = %q, want warning", last.typ)
	}
}

func TestCancelCompletedSample(t *testing.T) {
	svc, _, _, testID := setup(t)
	ctx := context.Background()
	sm, _ := svc.Register(ctx, validInput(testID))

	if err := svc.EnterResult(ctx, sm.ID, map[string]string{"x": "1"}, uuid.New()); err != nil {
		t.Fatalf("EnterResult: %v", err)
	}
	if err := svc.Cancel(ctx, sm.ID, uuid.New()); !errors.Is(err, ErrInvalidState) {
		t.Errorf("got %v, want ErrInvalidState", err)
	}
}

func TestCancelledSampleRejectsResult(t *testing.T) {
	svc, _, _, testID := setup(t)
	ctx := context.Background()
	sm, _ := svc.Register(ctx, validInput(testID))

	if err := svc.Cancel(ctx, sm.ID, uuid.New()); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if err := svc.EnterResult(ctx, sm.ID, map[string]string{"x": "1"}, uuid.New()); !errors.Is(err, ErrInvalidState) {
		t.Errorf("got %v, want ErrInvalidState", err)
	}
}

func TestSearchRequiresFilter(t *testing.T) {
	svc, _, _, _ := setup(t)
	if _, _, err := svc.Search(context.Background(), SearchFilter{}, 20, 0); !errors.Is(err, ErrEmptySearch) {
		t.Errorf("got %v, want ErrEmptySearch", err)
	}
}

func TestSearchByPatientName(t *testing.T) {
	svc, _, _, testID := setup(t)
	ctx := context.Background()

	in := validInput(testID)
	in.PatientName = "Omar Khalil"
	if _, err := svc.Register(ctx, in); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register(ctx, validInput(testID)); err != nil {
		t.Fatalf("Register: %v", err)
	}

	items, total, err := svc.Search(ctx, SearchFilter{PatientName: "omar"}, 20, 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("got %d results, want 1", total)
	}
	if items[0].PatientName != "Omar Khalil" {
		t.Errorf("unexpected result: %+v", items[0])
	}
}

func TestPendingCounts(t *testing.T) {
	svc, _, _, testID := setup(t)
	ctx := context.Background()

	first, _ := svc.Register(ctx, validInput(testID))
	if _, err := svc.Register(ctx, validInput(testID)); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if n, _ := svc.CountPending(ctx); n != 2 {
		t.Errorf("pending = %d, want 2", n)
	}

	if err := svc.EnterResult(ctx, first.ID, map[string]string{"x": "1"}, uuid.New()); err != nil {
		t.Fatalf("EnterResult: %v", err)
	}
	if n, _ := svc.CountPending(ctx); n != 1 {
		t.Errorf("pending after completion = %d, want 1", n)
	}

	pending, err := svc.ListPending(ctx)
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(pending) != 1 {
		t.Errorf("pending list has %d entries, want 1", len(pending))
	}
}
