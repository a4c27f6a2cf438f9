package user

import (
	"time"

	"github.com/fasthr/hr-backend-go/internal/domain/master/position"
)

type Role string

const (
	RoleEmployee Role = "employee"  // Must belong to a position
	RoleHRWorker Role = "hr_worker" // Manages payroll and reviews
	RoleAdmin    Role = "admin"     // Manages people and org structure
)

func (r Role) IsValid() bool {
	switch r {
	case RoleEmployee, RoleHRWorker, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Status       bool
	ImageURL     *string
	PositionID   *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join
	Position *position.Summary
}

// IsEmployee reports whether the user holds the employee role.
func (u *User) IsEmployee() bool {
	return u.Role == RoleEmployee
}

// IsActive reports whether the account may log in.
func (u *User) IsActive() bool {
	return u.Status
}

// Summary is the compact user projection nested in payroll and review payloads.
type Summary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Filter struct {
	Role   *Role
	Status *bool
}
