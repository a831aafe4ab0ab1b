package sample

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const sampleCols = `s.id, s.patient_name, s.national_id, s.test_type_id, t.name_en,
	s.collection_date, s.status, s.registered_by, s.completed_by,
	s.result_data, s.result_date, s.created_at, s.updated_at`

func scanSample(row pgx.Row) (*Sample, error) {
	var s Sample
	err := row.Scan(&s.ID, &s.PatientName, &s.NationalID, &s.TestTypeID, &s.TestName,
		&s.CollectionDate, &s.Status, &s.RegisteredBy, &s.CompletedBy,
		&s.ResultData, &s.ResultDate, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repoPG) Create(ctx context.Context, s *Sample) error {
	s.ID = uuid.New()
	s.Status = StatusRegistered
	_, err := r.pool.Exec(ctx, `
		INSERT INTO samples (id, patient_name, national_id, test_type_id, collection_date, status, registered_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		s.ID, s.PatientName, s.NationalID, s.TestTypeID, s.CollectionDate, s.Status, s.RegisteredBy)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Sample, error) {
	return scanSample(r.pool.QueryRow(ctx, `
		SELECT `+sampleCols+` FROM samples s
		JOIN tests t ON s.test_type_id = t.id
		WHERE s.id = $1`, id))
}

// Complete moves a registered sample to completed in a single conditional
// update. Zero rows affected means the sample is missing or has already left
// the registered state; both collapse to ErrInvalidState so callers cannot
// tell whether the id exists.
func (r *repoPG) Complete(ctx context.Context, id uuid.UUID, resultData map[string]string, completedBy *uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE samples
		SET result_data = $2, result_date = NOW(), status = $3, completed_by = $4, updated_at = NOW()
		WHERE id = $1 AND status = $5`,
		id, resultData, StatusCompleted, completedBy, StatusRegistered)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrInvalidState
	}
	return nil
}

// Cancel mirrors Complete: missing and non-registered ids both report
// ErrInvalidState.
func (r *repoPG) Cancel(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE samples SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3`,
		id, StatusCancelled, StatusRegistered)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrInvalidState
	}
	return nil
}

func (r *repoPG) ListPending(ctx context.Context) ([]*PendingSample, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT s.id, s.patient_name, s.collection_date, s.test_type_id, t.name_en
		FROM samples s
		JOIN tests t ON s.test_type_id = t.id
		WHERE s.status = $1
		ORDER BY s.collection_date DESC`, StatusRegistered)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*PendingSample
	for rows.Next() {
		var p PendingSample
		if err := rows.Scan(&p.ID, &p.PatientName, &p.CollectionDate, &p.TestTypeID, &p.TestName); err != nil {
			return nil, err
		}
		items = append(items, &p)
	}
	return items, rows.Err()
}

func (r *repoPG) Search(ctx context.Context, f SearchFilter, limit, offset int) ([]*Sample, int, error) {
	where := ` FROM samples s JOIN tests t ON s.test_type_id = t.id WHERE 1=1`
	var args []interface{}
	idx := 1

	if f.PatientName != "" {
		where += fmt.Sprintf(` AND s.patient_name ILIKE $%d`, idx)
		args = append(args, "%"+f.PatientName+"%")
		idx++
	}
	if f.NationalID != "" {
		where += fmt.Sprintf(` AND s.national_id ILIKE $%d`, idx)
		args = append(args, "%"+f.NationalID+"%")
		idx++
	}
	if f.SampleID != nil {
		where += fmt.Sprintf(` AND s.id = $%d`, idx)
		args = append(args, *f.SampleID)
		idx++
	}
	if f.StartDate != nil {
		where += fmt.Sprintf(` AND s.collection_date::date >= $%d`, idx)
		args = append(args, *f.StartDate)
		idx++
	}
	if f.EndDate != nil {
		where += fmt.Sprintf(` AND s.collection_date::date <= $%d`, idx)
		args = append(args, *f.EndDate)
		idx++
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*)`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + sampleCols + where +
		fmt.Sprintf(` ORDER BY s.created_at DESC LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Sample
	for rows.Next() {
		s, err := scanSample(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, s)
	}
	return items, total, rows.Err()
}

func (r *repoPG) CountByDate(ctx context.Context, date *time.Time) (int, error) {
	var n int
	if date == nil {
		err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM samples`).Scan(&n)
		return n, err
	}
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM samples WHERE created_at::date = $1::date`, *date).Scan(&n)
	return n, err
}

func (r *repoPG) CountPending(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM samples WHERE status = $1`, StatusRegistered).Scan(&n)
	return n, err
}
