package stats

import "context"

// StatsService defines the interface for per-entity stats and the cross-entity overview
type StatsService interface {
	GetDepartmentStats(ctx context.Context) (*DepartmentStatsResponse, error)
	GetPositionStats(ctx context.Context) (*PositionStatsResponse, error)
	GetUserStats(ctx context.Context) (*UserStatsResponse, error)

	// GetPayrollStats aggregates one period year; an empty year means the current year
	GetPayrollStats(ctx context.Context, year string) (*PayrollStatsResponse, error)

	GetReviewStats(ctx context.Context) (*ReviewStatsResponse, error)

	// GetOverview runs the independent aggregates in parallel goroutines
	GetOverview(ctx context.Context, year string) (*OverviewResponse, error)
}
