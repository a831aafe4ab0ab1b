package reporting

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteFinancialCSV renders a financial report as CSV, one line per test
// plus a totals row.
func WriteFinancialCSV(w io.Writer, r *FinancialReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"test_name", "samples", "total_revenue", "average_price"}); err != nil {
		return err
	}
	for _, l := range r.Lines {
		avg := 0.0
		if l.Count > 0 {
			avg = l.TotalRevenue / float64(l.Count)
		}
		rec := []string{
			l.TestName,
			fmt.Sprintf("%d", l.Count),
			fmt.Sprintf("%.2f", l.TotalRevenue),
			fmt.Sprintf("%.2f", avg),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	total := []string{"TOTAL", fmt.Sprintf("%d", r.TotalSamples), fmt.Sprintf("%.2f", r.TotalRevenue), ""}
	if err := cw.Write(total); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteOperationalCSV renders an operational report as CSV in three
// sections separated by blank rows.
func WriteOperationalCSV(w io.Writer, r *OperationalReport) error {
	cw := csv.NewWriter(w)

	rows := [][]string{
		{"section", "metric", "value"},
		{"summary", "total_samples", fmt.Sprintf("%d", r.Summary.TotalSamples)},
		{"summary", "avg_turnaround_hours", fmt.Sprintf("%.1f", r.Summary.AvgTurnaroundHours)},
		{"summary", "completion_rate", fmt.Sprintf("%.1f", r.Summary.CompletionRate)},
	}
	for _, t := range r.Technicians {
		rows = append(rows, []string{
			"technician", t.FullName,
			fmt.Sprintf("%d completed, %.1f h avg", t.SamplesCompleted, t.AvgTurnaroundHours),
		})
	}
	for _, p := range r.PopularTests {
		rows = append(rows, []string{"popular_test", p.TestName, fmt.Sprintf("%d", p.Count)})
	}

	for _, rec := range rows {
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
