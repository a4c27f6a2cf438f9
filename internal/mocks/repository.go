// Package mocks holds testify mocks of the repository and service interfaces.
package mocks

import (
	"context"

	"github.com/fasthr/hr-backend-go/internal/domain/auth"
	"github.com/fasthr/hr-backend-go/internal/domain/master/department"
	"github.com/fasthr/hr-backend-go/internal/domain/master/position"
	"github.com/fasthr/hr-backend-go/internal/domain/payroll"
	"github.com/fasthr/hr-backend-go/internal/domain/review"
	"github.com/fasthr/hr-backend-go/internal/domain/stats"
	"github.com/fasthr/hr-backend-go/internal/domain/user"
	"github.com/stretchr/testify/mock"
)

// Transactor runs fn directly with the incoming context.
type Transactor struct{}

func (Transactor) WithinTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

type UserRepository struct{ mock.Mock }

func (m *UserRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	args := m.Called(ctx, newUser)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *UserRepository) GetByID(ctx context.Context, id int64) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *UserRepository) List(ctx context.Context, filter user.Filter) ([]user.User, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]user.User), args.Error(1)
}

func (m *UserRepository) Update(ctx context.Context, u user.User) (user.User, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *UserRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	return m.Called(ctx, userID, passwordHash).Error(0)
}

func (m *UserRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) EmailTaken(ctx context.Context, email string, exceptID int64) (bool, error) {
	args := m.Called(ctx, email, exceptID)
	return args.Bool(0), args.Error(1)
}

type DepartmentRepository struct{ mock.Mock }

func (m *DepartmentRepository) Create(ctx context.Context, d department.Department) (department.Department, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(department.Department), args.Error(1)
}

func (m *DepartmentRepository) GetByID(ctx context.Context, id int64) (department.Department, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(department.Department), args.Error(1)
}

func (m *DepartmentRepository) List(ctx context.Context) ([]department.Department, error) {
	args := m.Called(ctx)
	return args.Get(0).([]department.Department), args.Error(1)
}

func (m *DepartmentRepository) Update(ctx context.Context, d department.Department) (department.Department, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(department.Department), args.Error(1)
}

func (m *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *DepartmentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *DepartmentRepository) NameTaken(ctx context.Context, name string, exceptID int64) (bool, error) {
	args := m.Called(ctx, name, exceptID)
	return args.Bool(0), args.Error(1)
}

type PositionRepository struct{ mock.Mock }

func (m *PositionRepository) Create(ctx context.Context, p position.Position) (position.Position, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(position.Position), args.Error(1)
}

func (m *PositionRepository) GetByID(ctx context.Context, id int64) (position.Position, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(position.Position), args.Error(1)
}

func (m *PositionRepository) List(ctx context.Context, filter position.Filter) ([]position.Position, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]position.Position), args.Error(1)
}

func (m *PositionRepository) Update(ctx context.Context, p position.Position) (position.Position, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(position.Position), args.Error(1)
}

func (m *PositionRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *PositionRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *PositionRepository) NameTaken(ctx context.Context, departmentID int64, name string, exceptID int64) (bool, error) {
	args := m.Called(ctx, departmentID, name, exceptID)
	return args.Bool(0), args.Error(1)
}

type PayrollRepository struct{ mock.Mock }

func (m *PayrollRepository) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(payroll.PayrollRecord), args.Error(1)
}

func (m *PayrollRepository) GetByID(ctx context.Context, id int64) (payroll.PayrollRecord, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(payroll.PayrollRecord), args.Error(1)
}

func (m *PayrollRepository) List(ctx context.Context, filter payroll.Filter) ([]payroll.PayrollRecord, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]payroll.PayrollRecord), args.Error(1)
}

func (m *PayrollRepository) Update(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(payroll.PayrollRecord), args.Error(1)
}

func (m *PayrollRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *PayrollRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *PayrollRepository) PeriodTaken(ctx context.Context, employeeID int64, year, month int, exceptID int64) (bool, error) {
	args := m.Called(ctx, employeeID, year, month, exceptID)
	return args.Bool(0), args.Error(1)
}

type ReviewRepository struct{ mock.Mock }

func (m *ReviewRepository) Create(ctx context.Context, rv review.PerformanceReview) (review.PerformanceReview, error) {
	args := m.Called(ctx, rv)
	return args.Get(0).(review.PerformanceReview), args.Error(1)
}

func (m *ReviewRepository) GetByID(ctx context.Context, id int64) (review.PerformanceReview, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(review.PerformanceReview), args.Error(1)
}

func (m *ReviewRepository) List(ctx context.Context, filter review.Filter) ([]review.PerformanceReview, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]review.PerformanceReview), args.Error(1)
}

func (m *ReviewRepository) Update(ctx context.Context, rv review.PerformanceReview) (review.PerformanceReview, error) {
	args := m.Called(ctx, rv)
	return args.Get(0).(review.PerformanceReview), args.Error(1)
}

func (m *ReviewRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type SessionRepository struct{ mock.Mock }

func (m *SessionRepository) Create(ctx context.Context, session auth.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *SessionRepository) GetByTokenID(ctx context.Context, tokenID string) (auth.Session, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(auth.Session), args.Error(1)
}

func (m *SessionRepository) Touch(ctx context.Context, tokenID string) error {
	return m.Called(ctx, tokenID).Error(0)
}

func (m *SessionRepository) Revoke(ctx context.Context, tokenID string) error {
	return m.Called(ctx, tokenID).Error(0)
}

type StatsRepository struct{ mock.Mock }

func (m *StatsRepository) CountDepartments(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *StatsRepository) CountPositions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *StatsRepository) PositionsByDepartment(ctx context.Context) ([]stats.DepartmentCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]stats.DepartmentCount), args.Error(1)
}

func (m *StatsRepository) TopDepartmentsByPositions(ctx context.Context, limit int) ([]stats.TopDepartment, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]stats.TopDepartment), args.Error(1)
}

func (m *StatsRepository) UserAggregate(ctx context.Context) (stats.UserAggregate, error) {
	args := m.Called(ctx)
	return args.Get(0).(stats.UserAggregate), args.Error(1)
}

func (m *StatsRepository) PayrollAggregate(ctx context.Context, year int) (stats.PayrollAggregate, error) {
	args := m.Called(ctx, year)
	return args.Get(0).(stats.PayrollAggregate), args.Error(1)
}

func (m *StatsRepository) ReviewAggregate(ctx context.Context) (stats.ReviewAggregate, error) {
	args := m.Called(ctx)
	return args.Get(0).(stats.ReviewAggregate), args.Error(1)
}
