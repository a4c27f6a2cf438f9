package position

import (
	"encoding/json"
	"time"

	"github.com/fasthr/hr-backend-go/internal/domain/master/department"
	"github.com/shopspring/decimal"
)

type Position struct {
	ID              int64
	DepartmentID    int64
	Name            string
	SeniorityLevel  string
	MinSalary       decimal.Decimal
	MaxSalary       decimal.Decimal
	DefaultBenefits json.RawMessage // JSON array or object, nil when unset
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Join
	Department *department.Summary
}

// Summary is the compact position projection nested in user payloads.
type Summary struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	DepartmentID int64  `json:"department_id"`
}

type Filter struct {
	DepartmentID *int64
}
