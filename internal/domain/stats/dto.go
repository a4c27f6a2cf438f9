package stats

import "github.com/shopspring/decimal"

type DepartmentStatsResponse struct {
	TotalDepartments int64 `json:"total_departments"`
}

type DepartmentCount struct {
	DepartmentID int64 `json:"department_id"`
	Count        int64 `json:"count"`
}

type PositionStatsResponse struct {
	TotalPositions int64             `json:"total_positions"`
	ByDepartment   []DepartmentCount `json:"by_department"`
}

type RoleCount struct {
	Role  string `json:"role"`
	Count int64  `json:"count"`
}

type UserStatsResponse struct {
	TotalUsers  int64       `json:"total_users"`
	ActiveUsers int64       `json:"active_users"`
	UsersByRole []RoleCount `json:"users_by_role"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type PayrollStatsResponse struct {
	Year            int             `json:"year"`
	RecordsCount    int64           `json:"records_count"`
	SumBaseSalary   decimal.Decimal `json:"sum_base_salary"`
	SumNetAmount    decimal.Decimal `json:"sum_net_amount"`
	RecordsByStatus []StatusCount   `json:"records_by_status"`
}

type ReviewStatsResponse struct {
	TotalReviews            int64           `json:"total_reviews"`
	AverageOverallScore     decimal.Decimal `json:"average_overall_score"`
	ReviewsWithSalaryImpact int64           `json:"reviews_with_salary_impact"`
}

type TopDepartment struct {
	DepartmentID   int64  `json:"department_id"`
	DepartmentName string `json:"department_name"`
	PositionsCount int64  `json:"positions_count"`
}

type OverviewCounts struct {
	Departments          int64 `json:"departments"`
	Positions            int64 `json:"positions"`
	Users                int64 `json:"users"`
	PayrollRecordsInYear int64 `json:"payroll_records_in_year"`
	PerformanceReviews   int64 `json:"performance_reviews"`
}

type OverviewUsers struct {
	ActiveUsers int64       `json:"active_users"`
	ByRole      []RoleCount `json:"by_role"`
}

type OverviewPayroll struct {
	SumBaseSalary decimal.Decimal `json:"sum_base_salary"`
	SumNetAmount  decimal.Decimal `json:"sum_net_amount"`
	ByStatus      []StatusCount   `json:"by_status"`
}

type OverviewPerformance struct {
	AvgScore            decimal.Decimal `json:"avg_score"`
	SalaryImpactReviews int64           `json:"salary_impact_reviews"`
}

type OverviewDepartments struct {
	TopByPositions []TopDepartment `json:"top_by_positions"`
}

type OverviewResponse struct {
	Year        int                 `json:"year"`
	Counts      OverviewCounts      `json:"counts"`
	Users       OverviewUsers       `json:"users"`
	Payroll     OverviewPayroll     `json:"payroll"`
	Performance OverviewPerformance `json:"performance"`
	Departments OverviewDepartments `json:"departments"`
}
