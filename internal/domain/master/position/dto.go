package position

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/fasthr/hr-backend-go/internal/domain/master/department"
	"github.com/fasthr/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePositionRequest struct {
	DepartmentID    *int64           `json:"department_id" validate:"required,gt=0"`
	Name            string           `json:"name" validate:"required,max=255"`
	SeniorityLevel  string           `json:"seniority_level" validate:"required,max=50"`
	MinSalary       *decimal.Decimal `json:"min_salary" validate:"required,gte=0,lte=9999999999.99"`
	MaxSalary       *decimal.Decimal `json:"max_salary" validate:"required,gte=0,lte=9999999999.99"`
	DefaultBenefits json.RawMessage  `json:"default_benefits"`
}

func (r *CreatePositionRequest) Validate() error {
	errs := validator.Struct(r)
	if !errs.Has("name") && validator.IsEmpty(r.Name) {
		errs.Add("name", "Name is required")
	}
	if !isBenefitsShape(r.DefaultBenefits) {
		errs.Add("default_benefits", "Default Benefits must be a list or an object")
	}
	return errs.OrNil()
}

func (r *CreatePositionRequest) ToEntity() Position {
	return Position{
		DepartmentID:    *r.DepartmentID,
		Name:            r.Name,
		SeniorityLevel:  r.SeniorityLevel,
		MinSalary:       *r.MinSalary,
		MaxSalary:       *r.MaxSalary,
		DefaultBenefits: normalizeBenefits(r.DefaultBenefits),
	}
}

// UpdatePositionRequest carries a partial update. A JSON null for default_benefits clears it.
type UpdatePositionRequest struct {
	ID              int64            `json:"-"`
	DepartmentID    *int64           `json:"department_id" validate:"omitempty,gt=0"`
	Name            *string          `json:"name" validate:"omitempty,min=1,max=255"`
	SeniorityLevel  *string          `json:"seniority_level" validate:"omitempty,min=1,max=50"`
	MinSalary       *decimal.Decimal `json:"min_salary" validate:"omitempty,gte=0,lte=9999999999.99"`
	MaxSalary       *decimal.Decimal `json:"max_salary" validate:"omitempty,gte=0,lte=9999999999.99"`
	DefaultBenefits json.RawMessage  `json:"default_benefits"`
}

func (r *UpdatePositionRequest) Validate() error {
	errs := validator.Struct(r)
	if r.Name != nil && !errs.Has("name") && validator.IsEmpty(*r.Name) {
		errs.Add("name", "Name must not be empty")
	}
	if !isBenefitsShape(r.DefaultBenefits) {
		errs.Add("default_benefits", "Default Benefits must be a list or an object")
	}
	return errs.OrNil()
}

// Apply merges the supplied fields into p.
func (r *UpdatePositionRequest) Apply(p Position) Position {
	if r.DepartmentID != nil {
		if *r.DepartmentID != p.DepartmentID {
			p.Department = nil
		}
		p.DepartmentID = *r.DepartmentID
	}
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.SeniorityLevel != nil {
		p.SeniorityLevel = *r.SeniorityLevel
	}
	if r.MinSalary != nil {
		p.MinSalary = *r.MinSalary
	}
	if r.MaxSalary != nil {
		p.MaxSalary = *r.MaxSalary
	}
	if r.DefaultBenefits != nil {
		p.DefaultBenefits = normalizeBenefits(r.DefaultBenefits)
	}
	return p
}

type ListPositionsRequest struct {
	DepartmentID *int64 `json:"department_id" validate:"omitempty,gt=0"`
}

func (r *ListPositionsRequest) Validate() error {
	return validator.Struct(r).OrNil()
}

type PositionResponse struct {
	ID              int64               `json:"id"`
	DepartmentID    int64               `json:"department_id"`
	Name            string              `json:"name"`
	SeniorityLevel  string              `json:"seniority_level"`
	MinSalary       decimal.Decimal     `json:"min_salary"`
	MaxSalary       decimal.Decimal     `json:"max_salary"`
	DefaultBenefits json.RawMessage     `json:"default_benefits"`
	Department      *department.Summary `json:"department,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

func ToResponse(p Position) PositionResponse {
	return PositionResponse{
		ID:              p.ID,
		DepartmentID:    p.DepartmentID,
		Name:            p.Name,
		SeniorityLevel:  p.SeniorityLevel,
		MinSalary:       p.MinSalary,
		MaxSalary:       p.MaxSalary,
		DefaultBenefits: p.DefaultBenefits,
		Department:      p.Department,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// isBenefitsShape accepts an absent value, null, a JSON array or a JSON object.
func isBenefitsShape(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return true
	}
	return trimmed[0] == '[' || trimmed[0] == '{'
}

func normalizeBenefits(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	return trimmed
}
