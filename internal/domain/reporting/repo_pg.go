package reporting

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

// FinancialLines aggregates completed samples by test over the result date.
// Revenue is COUNT * current price, so the report reflects today's catalog.
func (r *repoPG) FinancialLines(ctx context.Context, dr DateRange) ([]FinancialLine, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT t.name_en, COUNT(s.id), SUM(t.price)
		FROM samples s
		JOIN tests t ON s.test_type_id = t.id
		WHERE s.status = 'completed'
		  AND s.result_date::date BETWEEN $1::date AND $2::date
		GROUP BY t.id, t.name_en
		ORDER BY SUM(t.price) DESC`, dr.Start, dr.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var lines []FinancialLine
	for rows.Next() {
		var l FinancialLine
		if err := rows.Scan(&l.TestName, &l.Count, &l.TotalRevenue); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// Summary covers all samples registered in the window. Turnaround is only
// measurable on completed samples; the AVG ignores NULL result dates.
func (r *repoPG) Summary(ctx context.Context, dr DateRange) (OperationalSummary, error) {
	var s OperationalSummary
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*),
		       COALESCE(AVG(EXTRACT(EPOCH FROM (s.result_date - s.collection_date)) / 3600), 0),
		       COALESCE(SUM(CASE WHEN s.status = 'completed' THEN 1 ELSE 0 END)::float * 100 / NULLIF(COUNT(*), 0), 0)
		FROM samples s
		WHERE s.created_at::date BETWEEN $1::date AND $2::date`,
		dr.Start, dr.End).Scan(&s.TotalSamples, &s.AvgTurnaroundHours, &s.CompletionRate)
	return s, err
}

func (r *repoPG) Technicians(ctx context.Context, dr DateRange) ([]TechnicianPerformance, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT u.full_name,
		       COUNT(s.id),
		       COALESCE(AVG(EXTRACT(EPOCH FROM (s.result_date - s.collection_date)) / 3600), 0)
		FROM samples s
		JOIN users u ON s.completed_by = u.id
		WHERE s.status = 'completed'
		  AND s.result_date::date BETWEEN $1::date AND $2::date
		GROUP BY u.id, u.full_name
		ORDER BY COUNT(s.id) DESC`, dr.Start, dr.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var techs []TechnicianPerformance
	for rows.Next() {
		var t TechnicianPerformance
		if err := rows.Scan(&t.FullName, &t.SamplesCompleted, &t.AvgTurnaroundHours); err != nil {
			return nil, err
		}
		techs = append(techs, t)
	}
	return techs, rows.Err()
}

func (r *repoPG) PopularTests(ctx context.Context, dr DateRange, limit int) ([]PopularTest, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT t.name_en, COUNT(s.id)
		FROM samples s
		JOIN tests t ON s.test_type_id = t.id
		WHERE s.created_at::date BETWEEN $1::date AND $2::date
		GROUP BY t.id, t.name_en
		ORDER BY COUNT(s.id) DESC
		LIMIT $3`, dr.Start, dr.End, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var tests []PopularTest
	for rows.Next() {
		var p PopularTest
		if err := rows.Scan(&p.TestName, &p.Count); err != nil {
			return nil, err
		}
		tests = append(tests, p)
	}
	return tests, rows.Err()
}
