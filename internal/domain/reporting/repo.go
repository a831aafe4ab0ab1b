package reporting

import "context"

// Repository runs the aggregation queries backing reports.
type Repository interface {
	FinancialLines(ctx context.Context, r DateRange) ([]FinancialLine, error)
	Summary(ctx context.Context, r DateRange) (OperationalSummary, error)
	Technicians(ctx context.Context, r DateRange) ([]TechnicianPerformance, error)
	PopularTests(ctx context.Context, r DateRange, limit int) ([]PopularTest, error)
}
