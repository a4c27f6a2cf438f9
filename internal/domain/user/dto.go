package user

import (
	"time"

	"github.com/fasthr/hr-backend-go/internal/domain/master/position"
	"github.com/fasthr/hr-backend-go/internal/pkg/validator"
)

const msgPositionRequired = "Position is required for employee."

// UserResponse represents user data in API responses
type UserResponse struct {
	ID         int64             `json:"id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Role       Role              `json:"role"`
	Status     bool              `json:"status"`
	ImageURL   *string           `json:"image_url"`
	PositionID *int64            `json:"position_id"`
	Position   *position.Summary `json:"position,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Status:     u.Status,
		ImageURL:   u.ImageURL,
		PositionID: u.PositionID,
		Position:   u.Position,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func ToSummary(u User) *Summary {
	return &Summary{ID: u.ID, Name: u.Name, Email: u.Email}
}

// CreateUserRequest is shared by POST /users and POST /auth/register.
type CreateUserRequest struct {
	Name       string  `json:"name" validate:"required,min=2,max=100"`
	Email      string  `json:"email" validate:"required,email,max=150"`
	Password   string  `json:"password" validate:"required,min=6,max=255"`
	Role       Role    `json:"role" validate:"required,oneof=employee hr_worker admin"`
	Status     *bool   `json:"status"`
	ImageURL   *string `json:"image_url" validate:"omitempty,max=255"`
	PositionID *int64  `json:"position_id" validate:"omitempty,gt=0"`
}

func (r *CreateUserRequest) Validate() error {
	errs := validator.Struct(r)

	if r.Role == RoleEmployee && r.PositionID == nil && !errs.Has("position_id") {
		errs.Add("position_id", msgPositionRequired)
	}

	return errs.OrNil()
}

// UpdateUserRequest carries a partial update; nil fields are left unchanged.
// A JSON null for position_id or image_url is treated as absent.
type UpdateUserRequest struct {
	ID         int64   `json:"-"`
	Name       *string `json:"name" validate:"omitempty,min=2,max=100"`
	Email      *string `json:"email" validate:"omitempty,email,max=150"`
	Password   *string `json:"password" validate:"omitempty,min=6,max=255"`
	Role       *Role   `json:"role" validate:"omitempty,oneof=employee hr_worker admin"`
	Status     *bool   `json:"status"`
	ImageURL   *string `json:"image_url" validate:"omitempty,max=255"`
	PositionID *int64  `json:"position_id" validate:"omitempty,gt=0"`
}

func (r *UpdateUserRequest) Validate() error {
	return validator.Struct(r).OrNil()
}

// TouchesProtectedFields reports whether the request changes fields that only staff may change.
func (r *UpdateUserRequest) TouchesProtectedFields() bool {
	return r.Role != nil || r.Status != nil || r.PositionID != nil
}

// Apply merges the request into the persisted user u, enforcing the employee/position invariant.
// Password is not applied here; it has to be hashed by the caller.
func (r *UpdateUserRequest) Apply(u User) (User, error) {
	if r.Name != nil {
		u.Name = *r.Name
	}
	if r.Email != nil {
		u.Email = *r.Email
	}
	if r.Status != nil {
		u.Status = *r.Status
	}
	if r.ImageURL != nil {
		if *r.ImageURL == "" {
			u.ImageURL = nil
		} else {
			u.ImageURL = r.ImageURL
		}
	}
	if r.Role != nil {
		u.Role = *r.Role
	}
	if r.PositionID != nil {
		u.PositionID = r.PositionID
	}

	if u.Role == RoleEmployee {
		if u.PositionID == nil {
			return User{}, validator.Field("position_id", msgPositionRequired)
		}
	} else {
		u.PositionID = nil
	}
	if u.PositionID == nil || (r.PositionID != nil && (u.Position == nil || u.Position.ID != *r.PositionID)) {
		u.Position = nil
	}

	return u, nil
}

// ListUsersRequest holds the optional query filters of GET /users.
type ListUsersRequest struct {
	Role   *string `json:"role" validate:"omitempty,oneof=employee hr_worker admin"`
	Status *bool   `json:"status"`
}

func (r *ListUsersRequest) Validate() error {
	return validator.Struct(r).OrNil()
}

func (r ListUsersRequest) Filter() Filter {
	var f Filter
	if r.Role != nil {
		role := Role(*r.Role)
		f.Role = &role
	}
	f.Status = r.Status
	return f
}
