package stats

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/fasthr/hr-backend-go/internal/domain/stats"
	"github.com/fasthr/hr-backend-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

const (
	minYear           = 2000
	maxYear           = 2100
	topDepartmentsMax = 5
)

type StatsServiceImpl struct {
	stats.StatsRepository
	now func() time.Time
}

func NewStatsService(repo stats.StatsRepository) stats.StatsService {
	return &StatsServiceImpl{
		StatsRepository: repo,
		now:             time.Now,
	}
}

// parseYear parses the `year` query value, defaulting to the current year
func (s *StatsServiceImpl) parseYear(year string) (int, error) {
	year = strings.TrimSpace(year)
	if year == "" {
		return s.now().Year(), nil
	}

	parsed, err := strconv.Atoi(year)
	if err != nil || parsed < minYear || parsed > maxYear {
		return 0, validator.Field("year", "Year must be an integer between 2000 and 2100")
	}
	return parsed, nil
}

func (s *StatsServiceImpl) GetDepartmentStats(ctx context.Context) (*stats.DepartmentStatsResponse, error) {
	total, err := s.CountDepartments(ctx)
	if err != nil {
		return nil, err
	}
	return &stats.DepartmentStatsResponse{TotalDepartments: total}, nil
}

func (s *StatsServiceImpl) GetPositionStats(ctx context.Context) (*stats.PositionStatsResponse, error) {
	total, err := s.CountPositions(ctx)
	if err != nil {
		return nil, err
	}

	byDepartment, err := s.PositionsByDepartment(ctx)
	if err != nil {
		return nil, err
	}

	return &stats.PositionStatsResponse{
		TotalPositions: total,
		ByDepartment:   byDepartment,
	}, nil
}

func (s *StatsServiceImpl) GetUserStats(ctx context.Context) (*stats.UserStatsResponse, error) {
	agg, err := s.UserAggregate(ctx)
	if err != nil {
		return nil, err
	}

	return &stats.UserStatsResponse{
		TotalUsers:  agg.Total,
		ActiveUsers: agg.Active,
		UsersByRole: agg.ByRole,
	}, nil
}

func (s *StatsServiceImpl) GetPayrollStats(ctx context.Context, year string) (*stats.PayrollStatsResponse, error) {
	y, err := s.parseYear(year)
	if err != nil {
		return nil, err
	}

	agg, err := s.PayrollAggregate(ctx, y)
	if err != nil {
		return nil, err
	}

	return &stats.PayrollStatsResponse{
		Year:            y,
		RecordsCount:    agg.Count,
		SumBaseSalary:   agg.SumBaseSalary,
		SumNetAmount:    agg.SumNetAmount,
		RecordsByStatus: agg.ByStatus,
	}, nil
}

func (s *StatsServiceImpl) GetReviewStats(ctx context.Context) (*stats.ReviewStatsResponse, error) {
	agg, err := s.ReviewAggregate(ctx)
	if err != nil {
		return nil, err
	}

	return &stats.ReviewStatsResponse{
		TotalReviews:            agg.Total,
		AverageOverallScore:     agg.AverageScore.Round(2),
		ReviewsWithSalaryImpact: agg.WithSalaryImpact,
	}, nil
}

// GetOverview returns the cross-entity metrics; each aggregate runs in its own goroutine
func (s *StatsServiceImpl) GetOverview(ctx context.Context, year string) (*stats.OverviewResponse, error) {
	y, err := s.parseYear(year)
	if err != nil {
		return nil, err
	}

	var (
		departments int64
		positions   int64
		users       stats.UserAggregate
		payroll     stats.PayrollAggregate
		reviews     stats.ReviewAggregate
		top         []stats.TopDepartment
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		departments, err = s.CountDepartments(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		positions, err = s.CountPositions(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = s.UserAggregate(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		payroll, err = s.PayrollAggregate(gCtx, y)
		return err
	})
	g.Go(func() error {
		var err error
		reviews, err = s.ReviewAggregate(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		top, err = s.TopDepartmentsByPositions(gCtx, topDepartmentsMax)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &stats.OverviewResponse{
		Year: y,
		Counts: stats.OverviewCounts{
			Departments:          departments,
			Positions:            positions,
			Users:                users.Total,
			PayrollRecordsInYear: payroll.Count,
			PerformanceReviews:   reviews.Total,
		},
		Users: stats.OverviewUsers{
			ActiveUsers: users.Active,
			ByRole:      users.ByRole,
		},
		Payroll: stats.OverviewPayroll{
			SumBaseSalary: payroll.SumBaseSalary,
			SumNetAmount:  payroll.SumNetAmount,
			ByStatus:      payroll.ByStatus,
		},
		Performance: stats.OverviewPerformance{
			AvgScore:            reviews.AverageScore.Round(2),
			SalaryImpactReviews: reviews.WithSalaryImpact,
		},
		Departments: stats.OverviewDepartments{
			TopByPositions: top,
		},
	}, nil
}
