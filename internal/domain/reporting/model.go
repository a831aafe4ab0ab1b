package reporting

import "time"

// DateRange bounds a report. Both ends are inclusive calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return ErrRangeRequired
	}
	if r.End.Before(r.Start) {
		return ErrInvalidRange
	}
	return nil
}

// FinancialLine is revenue for one catalog test over the report window.
// Revenue uses the test's current price, so past reports shift when prices
// change.
type FinancialLine struct {
	TestName     string  `json:"test_name"`
	Count        int     `json:"count"`
	TotalRevenue float64 `json:"total_revenue"`
}

// FinancialReport aggregates completed samples by test, attributed to the
// day the result was recorded.
type FinancialReport struct {
	Start        string          `json:"start"`
	End          string          `json:"end"`
	Lines        []FinancialLine `json:"lines"`
	TotalRevenue float64         `json:"total_revenue"`
	TotalSamples int             `json:"total_samples"`
}

// OperationalSummary covers all samples registered in the window, whatever
// their current status.
type OperationalSummary struct {
	TotalSamples       int     `json:"total_samples"`
	AvgTurnaroundHours float64 `json:"avg_turnaround_hours"`
	CompletionRate     float64 `json:"completion_rate"`
}

// TechnicianPerformance is per-technician throughput over completed samples.
type TechnicianPerformance struct {
	FullName           string  `json:"full_name"`
	SamplesCompleted   int     `json:"samples_completed"`
	AvgTurnaroundHours float64 `json:"avg_turnaround_hours"`
}

type PopularTest struct {
	TestName string `json:"test_name"`
	Count    int    `json:"count"`
}

type OperationalReport struct {
	Start        string                  `json:"start"`
	End          string                  `json:"end"`
	Summary      OperationalSummary      `json:"summary"`
	Technicians  []TechnicianPerformance `json:"technicians"`
	PopularTests []PopularTest           `json:"popular_tests"`
}
