package http

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

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Register(ctx context.Context, req auth.RegisterRequest, sessionReq auth.SessionTrackingRequest) (auth.AuthResponse, error) {
	args := m.Called(ctx, req, sessionReq)
	return args.Get(0).(auth.AuthResponse), args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, req auth.LoginRequest, sessionReq auth.SessionTrackingRequest) (auth.AuthResponse, error) {
	args := m.Called(ctx, req, sessionReq)
	return args.Get(0).(auth.AuthResponse), args.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context, principal auth.Principal) error {
	return m.Called(ctx, principal).Error(0)
}

func (m *mockAuthService) Me(ctx context.Context, principal auth.Principal) (user.UserResponse, error) {
	args := m.Called(ctx, principal)
	return args.Get(0).(user.UserResponse), args.Error(1)
}

func (m *mockAuthService) Authenticate(ctx context.Context, userID int64, tokenID string) (auth.Principal, error) {
	args := m.Called(ctx, userID, tokenID)
	return args.Get(0).(auth.Principal), args.Error(1)
}

type mockMasterService struct{ mock.Mock }

func (m *mockMasterService) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(department.DepartmentResponse), args.Error(1)
}

func (m *mockMasterService) GetDepartment(ctx context.Context, id int64) (department.DepartmentResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(department.DepartmentResponse), args.Error(1)
}

func (m *mockMasterService) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]department.DepartmentResponse), args.Error(1)
}

func (m *mockMasterService) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(department.DepartmentResponse), args.Error(1)
}

func (m *mockMasterService) DeleteDepartment(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockMasterService) CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(position.PositionResponse), args.Error(1)
}

func (m *mockMasterService) GetPosition(ctx context.Context, id int64) (position.PositionResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(position.PositionResponse), args.Error(1)
}

func (m *mockMasterService) ListPositions(ctx context.Context, req position.ListPositionsRequest) ([]position.PositionResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).([]position.PositionResponse), args.Error(1)
}

func (m *mockMasterService) UpdatePosition(ctx context.Context, req position.UpdatePositionRequest) (position.PositionResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(position.PositionResponse), args.Error(1)
}

func (m *mockMasterService) DeletePosition(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockUserService struct{ mock.Mock }

func (m *mockUserService) List(ctx context.Context, req user.ListUsersRequest) ([]user.UserResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).([]user.UserResponse), args.Error(1)
}

func (m *mockUserService) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(user.UserResponse), args.Error(1)
}

func (m *mockUserService) Get(ctx context.Context, principal auth.Principal, id int64) (user.UserResponse, error) {
	args := m.Called(ctx, principal, id)
	return args.Get(0).(user.UserResponse), args.Error(1)
}

func (m *mockUserService) Update(ctx context.Context, principal auth.Principal, req user.UpdateUserRequest) (user.UserResponse, error) {
	args := m.Called(ctx, principal, req)
	return args.Get(0).(user.UserResponse), args.Error(1)
}

func (m *mockUserService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockPayrollService struct{ mock.Mock }

func (m *mockPayrollService) List(ctx context.Context, principal auth.Principal, req payroll.ListPayrollRecordsRequest) ([]payroll.PayrollRecordResponse, error) {
	args := m.Called(ctx, principal, req)
	return args.Get(0).([]payroll.PayrollRecordResponse), args.Error(1)
}

func (m *mockPayrollService) Create(ctx context.Context, req payroll.CreatePayrollRecordRequest) (payroll.PayrollRecordResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(payroll.PayrollRecordResponse), args.Error(1)
}

func (m *mockPayrollService) Get(ctx context.Context, principal auth.Principal, id int64) (payroll.PayrollRecordResponse, error) {
	args := m.Called(ctx, principal, id)
	return args.Get(0).(payroll.PayrollRecordResponse), args.Error(1)
}

func (m *mockPayrollService) Update(ctx context.Context, req payroll.UpdatePayrollRecordRequest) (payroll.PayrollRecordResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(payroll.PayrollRecordResponse), args.Error(1)
}

func (m *mockPayrollService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockReviewService struct{ mock.Mock }

func (m *mockReviewService) List(ctx context.Context, principal auth.Principal, req review.ListReviewsRequest) ([]review.ReviewResponse, error) {
	args := m.Called(ctx, principal, req)
	return args.Get(0).([]review.ReviewResponse), args.Error(1)
}

func (m *mockReviewService) Create(ctx context.Context, req review.CreateReviewRequest) (review.ReviewResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(review.ReviewResponse), args.Error(1)
}

func (m *mockReviewService) Get(ctx context.Context, principal auth.Principal, id int64) (review.ReviewResponse, error) {
	args := m.Called(ctx, principal, id)
	return args.Get(0).(review.ReviewResponse), args.Error(1)
}

func (m *mockReviewService) Update(ctx context.Context, req review.UpdateReviewRequest) (review.ReviewResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(review.ReviewResponse), args.Error(1)
}

func (m *mockReviewService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockStatsService struct{ mock.Mock }

func (m *mockStatsService) GetDepartmentStats(ctx context.Context) (*stats.DepartmentStatsResponse, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*stats.DepartmentStatsResponse)
	return result, args.Error(1)
}

func (m *mockStatsService) GetPositionStats(ctx context.Context) (*stats.PositionStatsResponse, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*stats.PositionStatsResponse)
	return result, args.Error(1)
}

func (m *mockStatsService) GetUserStats(ctx context.Context) (*stats.UserStatsResponse, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*stats.UserStatsResponse)
	return result, args.Error(1)
}

func (m *mockStatsService) GetPayrollStats(ctx context.Context, year string) (*stats.PayrollStatsResponse, error) {
	args := m.Called(ctx, year)
	result, _ := args.Get(0).(*stats.PayrollStatsResponse)
	return result, args.Error(1)
}

func (m *mockStatsService) GetReviewStats(ctx context.Context) (*stats.ReviewStatsResponse, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*stats.ReviewStatsResponse)
	return result, args.Error(1)
}

func (m *mockStatsService) GetOverview(ctx context.Context, year string) (*stats.OverviewResponse, error) {
	args := m.Called(ctx, year)
	result, _ := args.Get(0).(*stats.OverviewResponse)
	return result, args.Error(1)
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(ctx context.Context) error { return s.err }
