package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fasthr/hr-backend-go/internal/domain/auth"
	"github.com/fasthr/hr-backend-go/internal/domain/master/department"
	"github.com/fasthr/hr-backend-go/internal/domain/master/position"
	"github.com/fasthr/hr-backend-go/internal/domain/payroll"
	"github.com/fasthr/hr-backend-go/internal/domain/review"
	"github.com/fasthr/hr-backend-go/internal/domain/stats"
	"github.com/fasthr/hr-backend-go/internal/domain/user"
	"github.com/fasthr/hr-backend-go/internal/pkg/jwt"
	"github.com/fasthr/hr-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const handlerTestSecret = "test-secret-key-for-jwt"

type testEnv struct {
	router  *chi.Mux
	jwt     jwt.Service
	auth    *mockAuthService
	master  *mockMasterService
	users   *mockUserService
	payroll *mockPayrollService
	reviews *mockReviewService
	stats   *mockStatsService
}

type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

func newTestEnv(t *testing.T, loginRate int, pinger Pinger) *testEnv {
	t.Helper()

	jwtService, err := jwt.NewJWTService(handlerTestSecret, "1h")
	require.NoError(t, err)

	env := &testEnv{
		jwt:     jwtService,
		auth:    new(mockAuthService),
		master:  new(mockMasterService),
		users:   new(mockUserService),
		payroll: new(mockPayrollService),
		reviews: new(mockReviewService),
		stats:   new(mockStatsService),
	}
	env.router = NewRouter(
		RouterConfig{AllowedOrigins: []string{"http://localhost:3000"}, LoginRatePerMinute: loginRate},
		jwtService,
		env.auth,
		NewAuthHandler(env.auth),
		NewMasterHandler(env.master),
		NewUserHandler(env.users),
		NewPayrollHandler(env.payroll),
		NewReviewHandler(env.reviews),
		NewStatsHandler(env.stats),
		NewHealthHandler(pinger),
	)
	return env
}

// login issues a signed token and makes the mocked auth service accept its session.
func (e *testEnv) login(t *testing.T, userID int64, role user.Role) (string, auth.Principal) {
	t.Helper()

	token, tokenID, _, err := e.jwt.GenerateAccessToken(userID, string(role))
	require.NoError(t, err)

	principal := auth.Principal{UserID: userID, Role: role, TokenID: tokenID}
	e.auth.On("Authenticate", mock.Anything, userID, tokenID).Return(principal, nil)
	return token, principal
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			encoded, err := json.Marshal(body)
			require.NoError(t, err)
			raw = string(encoded)
		}
		reader = bytes.NewReader([]byte(raw))
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var env envelope
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, 10, stubPinger{})
	rec, _ := env.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = env.do(t, http.MethodGet, "/readyz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	down := newTestEnv(t, 10, stubPinger{err: errors.New("connection refused")})
	rec, _ = down.do(t, http.MethodGet, "/readyz", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success returns user and token", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		env.auth.On("Login", mock.Anything, auth.LoginRequest{Email: "ana@example.com", Password: "secret1"}, mock.Anything).
			Return(auth.AuthResponse{User: user.UserResponse{ID: 1, Email: "ana@example.com"}, Token: "signed"}, nil)

		rec, body := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "ana@example.com",
			"password": "secret1",
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, body.Success)
		assert.Equal(t, "Login successful.", body.Message)

		var data auth.AuthResponse
		require.NoError(t, json.Unmarshal(body.Data, &data))
		assert.Equal(t, "signed", data.Token)
		assert.Equal(t, int64(1), data.User.ID)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		env.auth.On("Login", mock.Anything, mock.Anything, mock.Anything).Return(auth.AuthResponse{}, auth.ErrInvalidCredentials)

		rec, body := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "ana@example.com",
			"password": "wrong-password",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, body.Success)
		assert.Equal(t, "Invalid credentials.", body.Message)
		assert.Equal(t, []string{"Email or password is incorrect."}, body.Errors["auth"])
		assert.Equal(t, "null", string(body.Data))
	})

	t.Run("inactive account", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		env.auth.On("Login", mock.Anything, mock.Anything, mock.Anything).Return(auth.AuthResponse{}, auth.ErrAccountInactive)

		rec, body := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "ana@example.com",
			"password": "secret1",
		})

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, []string{"Contact the administrator."}, body.Errors["auth"])
	})

	t.Run("malformed json", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})

		rec, body := env.do(t, http.MethodPost, "/api/auth/login", "", `{"email":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, body.Success)
		env.auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("throttled per client address", func(t *testing.T) {
		env := newTestEnv(t, 1, stubPinger{})
		env.auth.On("Login", mock.Anything, mock.Anything, mock.Anything).Return(auth.AuthResponse{}, auth.ErrInvalidCredentials)

		creds := map[string]string{"email": "ana@example.com", "password": "wrong-password"}
		rec, _ := env.do(t, http.MethodPost, "/api/auth/login", "", creds)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec, _ = env.do(t, http.MethodPost, "/api/auth/login", "", creds)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		env.auth.AssertNumberOfCalls(t, "Login", 1)
	})
}

func TestAuthHandler_Register(t *testing.T) {
	env := newTestEnv(t, 10, stubPinger{})
	env.auth.On("Register", mock.Anything, mock.MatchedBy(func(req auth.RegisterRequest) bool {
		return req.Email == "new@example.com" && req.Role == user.RoleHRWorker
	}), mock.Anything).Return(auth.AuthResponse{User: user.UserResponse{ID: 5}, Token: "signed"}, nil)

	rec, body := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"name":     "New Worker",
		"email":    "new@example.com",
		"password": "secret1",
		"role":     "hr_worker",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Registration successful.", body.Message)
}

func TestAuthHandler_LogoutAndMe(t *testing.T) {
	env := newTestEnv(t, 10, stubPinger{})
	token, principal := env.login(t, 3, user.RoleEmployee)

	env.auth.On("Logout", mock.Anything, principal).Return(nil)
	env.auth.On("Me", mock.Anything, principal).Return(user.UserResponse{ID: 3, Name: "Ana"}, nil)

	rec, body := env.do(t, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3", extractRaw(t, body.Data, "user", "id"))

	rec, body = env.do(t, http.MethodPost, "/api/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Logout successful.", body.Message)
	env.auth.AssertCalled(t, "Logout", mock.Anything, principal)
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		rec, body := env.do(t, http.MethodGet, "/api/departments", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Unauthenticated.", body.Message)
	})

	t.Run("tampered token", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, _, _, err := env.jwt.GenerateAccessToken(1, "admin")
		require.NoError(t, err)

		rec, _ := env.do(t, http.MethodGet, "/api/departments", token+"x", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("revoked session", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, _, _, err := env.jwt.GenerateAccessToken(1, "admin")
		require.NoError(t, err)
		env.auth.On("Authenticate", mock.Anything, int64(1), mock.Anything).Return(auth.Principal{}, auth.ErrSessionRevoked)

		rec, _ := env.do(t, http.MethodGet, "/api/departments", token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		other, err := jwt.NewJWTService("another-secret", "1h")
		require.NoError(t, err)
		token, _, _, err := other.GenerateAccessToken(1, "admin")
		require.NoError(t, err)

		rec, _ := env.do(t, http.MethodGet, "/api/departments", token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		env.auth.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMasterHandler_Departments(t *testing.T) {
	t.Run("employee cannot create", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, _ := env.login(t, 3, user.RoleEmployee)

		rec, body := env.do(t, http.MethodPost, "/api/departments", token, map[string]string{"name": "Finance"})

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.False(t, body.Success)
		env.master.AssertNotCalled(t, "CreateDepartment", mock.Anything, mock.Anything)
	})

	t.Run("admin creates", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, _ := env.login(t, 1, user.RoleAdmin)
		env.master.On("CreateDepartment", mock.Anything, department.CreateDepartmentRequest{Name: "Finance"}).
			Return(department.DepartmentResponse{ID: 4, Name: "Finance"}, nil)

		rec, body := env.do(t, http.MethodPost, "/api/departments", token, map[string]string{"name": "Finance"})

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Department created.", body.Message)
		assert.Equal(t, `"Finance"`, extractRaw(t, body.Data, "department", "name"))
	})

	t.Run("list is wrapped in items", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, _ := env.login(t, 3, user.RoleEmployee)
		env.master.On("ListDepartments", mock.Anything).Return([]department.DepartmentResponse(nil), nil)

		rec, body := env.do(t, http.MethodGet, "/api/departments", token, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"items":[]}`, string(body.Data))
	})

	t.Run("duplicate name is a field error", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, _ := env.login(t, 2, user.RoleHRWorker)
		env.master.On("UpdateDepartment", mock.Anything, mock.MatchedBy(func(req department.UpdateDepartmentRequest) bool {
			return req.ID == 9 && req.Name != nil && *req.Name == "Finance"
		})).Return(department.DepartmentResponse{}, department.ErrDepartmentNameExists)

		rec, body := env.do(t, http.MethodPatch, "/api/departments/9", token, map[string]string{"name": "Finance"})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, []string{"The name has already been taken."}, body.Errors["name"])
	})

	t.Run("delete with positions conflicts", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, _ := env.login(t, 1, user.RoleAdmin)
		env.master.On("DeleteDepartment", mock.Anything, int64(9)).Return(department.ErrDepartmentInUse)

		rec, _ := env.do(t, http.MethodDelete, "/api/departments/9", token, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, _ := env.login(t, 1, user.RoleAdmin)

		rec, _ := env.do(t, http.MethodGet, "/api/departments/abc", token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMasterHandler_Positions(t *testing.T) {
	t.Run("public list with department filter", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		departmentID := int64(3)
		env.master.On("ListPositions", mock.Anything, position.ListPositionsRequest{DepartmentID: &departmentID}).
			Return([]position.PositionResponse{{ID: 1, DepartmentID: 3, Name: "Accountant"}}, nil)

		rec, body := env.do(t, http.MethodGet, "/api/positions?department_id=3", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Positions list.", body.Message)
	})

	t.Run("non numeric filter", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})

		rec, body := env.do(t, http.MethodGet, "/api/positions?department_id=abc", "", nil)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, body.Errors, "department_id")
	})

	t.Run("public show", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		env.master.On("GetPosition", mock.Anything, int64(1)).Return(position.PositionResponse{}, position.ErrPositionNotFound)

		rec, body := env.do(t, http.MethodGet, "/api/positions/1", "", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Position not found.", body.Message)
	})

	t.Run("writes need a token", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})

		rec, _ := env.do(t, http.MethodDelete, "/api/positions/1", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("hr worker deletes", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, _ := env.login(t, 2, user.RoleHRWorker)
		env.master.On("DeletePosition", mock.Anything, int64(1)).Return(nil)

		rec, body := env.do(t, http.MethodDelete, "/api/positions/1", token, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "null", string(body.Data))
	})
}

func TestUserHandler(t *testing.T) {
	t.Run("employee cannot list", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, _ := env.login(t, 3, user.RoleEmployee)

		rec, _ := env.do(t, http.MethodGet, "/api/users", token, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("list filters", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, _ := env.login(t, 1, user.RoleAdmin)
		role, status := "employee", false
		env.users.On("List", mock.Anything, user.ListUsersRequest{Role: &role, Status: &status}).Return([]user.UserResponse{}, nil)

		rec, _ := env.do(t, http.MethodGet, "/api/users?role=employee&status=0", token, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("employee reads self", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, principal := env.login(t, 3, user.RoleEmployee)
		env.users.On("Get", mock.Anything, principal, int64(3)).Return(user.UserResponse{ID: 3}, nil)

		rec, body := env.do(t, http.MethodGet, "/api/users/3", token, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "User details.", body.Message)
	})

	t.Run("employee cannot read others", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, _ := env.login(t, 3, user.RoleEmployee)

		rec, _ := env.do(t, http.MethodGet, "/api/users/4", token, nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		env.users.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("self update of protected fields", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, principal := env.login(t, 3, user.RoleEmployee)
		env.users.On("Update", mock.Anything, principal, mock.MatchedBy(func(req user.UpdateUserRequest) bool {
			return req.ID == 3 && req.Role != nil
		})).Return(user.UserResponse{}, user.ErrProtectedFieldsOnSelf)

		rec, _ := env.do(t, http.MethodPut, "/api/users/3", token, map[string]string{"role": "admin"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("taken email", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, _ := env.login(t, 1, user.RoleAdmin)
		env.users.On("Create", mock.Anything, mock.Anything).Return(user.UserResponse{}, user.ErrUserEmailExists)

		rec, body := env.do(t, http.MethodPost, "/api/users", token, map[string]string{"email": "ana@example.com"})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, []string{"The email has already been taken."}, body.Errors["email"])
	})

	t.Run("non boolean status", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, _ := env.login(t, 1, user.RoleAdmin)

		rec, body := env.do(t, http.MethodPost, "/api/users", token,
			`{"name":"Ana","email":"ana@example.com","password":"secret12","role":"employee","status":"yes"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, []string{"Status must be true or false"}, body.Errors["status"])
		env.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("validation errors pass through", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, _ := env.login(t, 1, user.RoleAdmin)
		env.users.On("Create", mock.Anything, mock.Anything).
			Return(user.UserResponse{}, validator.Field("position_id", "Position is required for employee."))

		rec, body := env.do(t, http.MethodPost, "/api/users", token, map[string]string{"role": "employee"})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, []string{"Position is required for employee."}, body.Errors["position_id"])
	})
}

func TestPayrollHandler(t *testing.T) {
	t.Run("employee list is passed the caller", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, principal := env.login(t, 3, user.RoleEmployee)
		year := 2024
		status := payroll.StatusPaid
		env.payroll.On("List", mock.Anything, principal, payroll.ListPayrollRecordsRequest{PeriodYear: &year, Status: &status}).
			Return([]payroll.PayrollRecordResponse{{ID: 1, EmployeeID: 3}}, nil)

		rec, body := env.do(t, http.MethodGet, "/api/payroll-records?period_year=2024&status=paid", token, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Payroll records list.", body.Message)
	})

	t.Run("employee cannot create", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, _ := env.login(t, 3, user.RoleEmployee)

		rec, _ := env.do(t, http.MethodPost, "/api/payroll-records", token, map[string]int{"employee_id": 3})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("foreign record", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, principal := env.login(t, 3, user.RoleEmployee)
		env.payroll.On("Get", mock.Anything, principal, int64(8)).Return(payroll.PayrollRecordResponse{}, payroll.ErrPayrollRecordAccessDenied)

		rec, _ := env.do(t, http.MethodGet, "/api/payroll-records/8", token, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("duplicate period", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, _ := env.login(t, 2, user.RoleHRWorker)
		env.payroll.On("Create", mock.Anything, mock.Anything).Return(payroll.PayrollRecordResponse{}, payroll.ErrPayrollRecordAlreadyExists)

		rec, body := env.do(t, http.MethodPost, "/api/payroll-records", token, map[string]int{"employee_id": 3})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, body.Errors, "period_month")
	})

	t.Run("wrong typed field is a field error", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, _ := env.login(t, 2, user.RoleHRWorker)

		rec, body := env.do(t, http.MethodPost, "/api/payroll-records", token,
			`{"employee_id":3,"hr_worker_id":2,"period_year":"twenty","period_month":1,"base_salary":"1000","status":"draft"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.False(t, body.Success)
		assert.Equal(t, []string{"Period Year must be an integer"}, body.Errors["period_year"])
		env.payroll.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("broken JSON stays a bad request", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, _ := env.login(t, 2, user.RoleHRWorker)

		rec, body := env.do(t, http.MethodPost, "/api/payroll-records", token, `{"period_year":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request format.", body.Message)
	})

	t.Run("delete referenced record", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, _ := env.login(t, 2, user.RoleHRWorker)
		env.payroll.On("Delete", mock.Anything, int64(8)).Return(payroll.ErrPayrollRecordInUse)

		rec, _ := env.do(t, http.MethodDelete, "/api/payroll-records/8", token, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("stats alias", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, _ := env.login(t, 3, user.RoleEmployee)
		env.stats.On("GetPayrollStats", mock.Anything, "2024").Return(&stats.PayrollStatsResponse{Year: 2024}, nil)

		rec, body := env.do(t, http.MethodGet, "/api/payroll-records/stats?year=2024", token, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Payroll stats.", body.Message)
	})
}

func TestReviewHandler(t *testing.T) {
	t.Run("list filters", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, principal := env.login(t, 2, user.RoleHRWorker)
		impact := true
		payrollID := int64(5)
		env.reviews.On("List", mock.Anything, principal, review.ListReviewsRequest{PayrollRecordID: &payrollID, HasSalaryImpact: &impact}).
			Return([]review.ReviewResponse{}, nil)

		rec, _ := env.do(t, http.MethodGet, "/api/performance-reviews?payroll_record_id=5&hasSalaryImpact=true", token, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid bool filter", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, _ := env.login(t, 2, user.RoleHRWorker)

		rec, body := env.do(t, http.MethodGet, "/api/performance-reviews?hasSalaryImpact=maybe", token, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, body.Errors, "hasSalaryImpact")
	})

	t.Run("update carries path id", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, _ := env.login(t, 2, user.RoleHRWorker)
		env.reviews.On("Update", mock.Anything, mock.MatchedBy(func(req review.UpdateReviewRequest) bool {
			return req.ID == 12
		})).Return(review.ReviewResponse{ID: 12}, nil)

		rec, body := env.do(t, http.MethodPatch, "/api/performance-reviews/12", token, map[string]string{"comments": "Solid quarter"})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "12", extractRaw(t, body.Data, "performance_review", "id"))
	})

	t.Run("missing review", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, principal := env.login(t, 2, user.RoleHRWorker)
		env.reviews.On("Get", mock.Anything, principal, int64(99)).Return(review.ReviewResponse{}, review.ErrReviewNotFound)

		rec, _ := env.do(t, http.MethodGet, "/api/performance-reviews/99", token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestStatsHandler(t *testing.T) {
	t.Run("overview", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, _ := env.login(t, 3, user.RoleEmployee)
		env.stats.On("GetOverview", mock.Anything, "").Return(&stats.OverviewResponse{Year: time.Now().Year()}, nil)

		rec, body := env.do(t, http.MethodGet, "/api/metrics/overview", token, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "App overview metrics.", body.Message)
	})

	t.Run("invalid year", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, _ := env.login(t, 3, user.RoleEmployee)
		env.stats.On("GetPayrollStats", mock.Anything, "abc").
			Return(nil, validator.Field("year", "Year must be an integer between 2000 and 2100"))

		rec, body := env.do(t, http.MethodGet, "/api/stats/payroll?year=abc", token, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, body.Errors, "year")
	})

	t.Run("departments", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, _ := env.login(t, 1, user.RoleAdmin)
		env.stats.On("GetDepartmentStats", mock.Anything).Return(&stats.DepartmentStatsResponse{TotalDepartments: 4}, nil)

		rec, body := env.do(t, http.MethodGet, "/api/stats/departments", token, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"total_departments":4}`, string(body.Data))
	})

	t.Run("unexpected error", func(t *testing.T) {
		env := newTestEnv(t, 10, stubPinger{})
		token, _ := env.login(t, 1, user.RoleAdmin)
		env.stats.On("GetUserStats", mock.Anything).Return(nil, errors.New("connection reset"))

		rec, body := env.do(t, http.MethodGet, "/api/stats/users", token, nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "An unexpected error occurred.", body.Message)
	})
}

func TestUnknownRoute(t *testing.T) {
	env := newTestEnv(t, 10, stubPinger{})

	rec, body := env.do(t, http.MethodGet, "/api/nope", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, body.Success)
}

// extractRaw returns the raw JSON found at path inside data.
func extractRaw(t *testing.T, data json.RawMessage, path ...string) string {
	t.Helper()
	current := data
	for _, key := range path {
		var obj map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(current, &obj))
		next, ok := obj[key]
		require.True(t, ok, "missing key %q", key)
		current = next
	}
	return string(current)
}
