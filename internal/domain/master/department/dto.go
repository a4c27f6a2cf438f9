package department

import (
	"time"

	"github.com/fasthr/hr-backend-go/internal/pkg/validator"
)

type CreateDepartmentRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description"`
}

func (r *CreateDepartmentRequest) Validate() error {
	errs := validator.Struct(r)
	if !errs.Has("name") && validator.IsEmpty(r.Name) {
		errs.Add("name", "Name is required")
	}
	return errs.OrNil()
}

type UpdateDepartmentRequest struct {
	ID          int64   `json:"-"`
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	errs := validator.Struct(r)
	if r.Name != nil && !errs.Has("name") && validator.IsEmpty(*r.Name) {
		errs.Add("name", "Name must not be empty")
	}
	return errs.OrNil()
}

// Apply merges the supplied fields into d.
func (r *UpdateDepartmentRequest) Apply(d Department) Department {
	if r.Name != nil {
		d.Name = *r.Name
	}
	if r.Description != nil {
		d.Description = r.Description
	}
	return d
}

type DepartmentResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
