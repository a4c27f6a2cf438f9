package stats

import (
	"context"

	"github.com/shopspring/decimal"
)

// UserAggregate is the result of a single pass over users.
type UserAggregate struct {
	Total  int64
	Active int64
	ByRole []RoleCount
}

// PayrollAggregate covers payroll records of one period year.
type PayrollAggregate struct {
	Count         int64
	SumBaseSalary decimal.Decimal
	SumNetAmount  decimal.Decimal
	ByStatus      []StatusCount
}

// ReviewAggregate covers all performance reviews.
type ReviewAggregate struct {
	Total            int64
	AverageScore     decimal.Decimal
	WithSalaryImpact int64
}

type StatsRepository interface {
	CountDepartments(ctx context.Context) (int64, error)
	CountPositions(ctx context.Context) (int64, error)
	PositionsByDepartment(ctx context.Context) ([]DepartmentCount, error)
	TopDepartmentsByPositions(ctx context.Context, limit int) ([]TopDepartment, error)
	UserAggregate(ctx context.Context) (UserAggregate, error)
	PayrollAggregate(ctx context.Context, year int) (PayrollAggregate, error)
	ReviewAggregate(ctx context.Context) (ReviewAggregate, error)
}
