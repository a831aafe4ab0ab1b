package reporting

import (
	"context"
)

// PopularTestLimit caps the "most requested" section of the operational
// report.
const PopularTestLimit = 10

const dateLayout = "2006-01-02"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Financial(ctx context.Context, r DateRange) (*FinancialReport, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	lines, err := s.repo.FinancialLines(ctx, r)
	if err != nil {
		return nil, err
	}
	report := &FinancialReport{
		Start: r.Start.Format(dateLayout),
		End:   r.End.Format(dateLayout),
		Lines: lines,
	}
	if report.Lines == nil {
		report.Lines = []FinancialLine{}
	}
	for _, l := range lines {
		report.TotalRevenue += l.TotalRevenue
		report.TotalSamples += l.Count
	}
	return report, nil
}

func (s *Service) Operational(ctx context.Context, r DateRange) (*OperationalReport, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	summary, err := s.repo.Summary(ctx, r)
	if err != nil {
		return nil, err
	}
	techs, err := s.repo.Technicians(ctx, r)
	if err != nil {
		return nil, err
	}
	popular, err := s.repo.PopularTests(ctx, r, PopularTestLimit)
	if err != nil {
		return nil, err
	}
	report := &OperationalReport{
		Start:        r.Start.Format(dateLayout),
		End:          r.End.Format(dateLayout),
		Summary:      summary,
		Technicians:  techs,
		PopularTests: popular,
	}
	if report.Technicians == nil {
		report.Technicians = []TechnicianPerformance{}
	}
	if report.PopularTests == nil {
		report.PopularTests = []PopularTest{}
	}
	return report, nil
}
