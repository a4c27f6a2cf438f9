package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/fasthr/hr-backend-go/internal/domain/auth"
	"github.com/fasthr/hr-backend-go/internal/domain/user"
	"github.com/fasthr/hr-backend-go/internal/handler/http/middleware"
	"github.com/fasthr/hr-backend-go/internal/handler/http/response"
	"github.com/fasthr/hr-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/time/rate"
)

type RouterConfig struct {
	Logger             *slog.Logger
	LogLevel           slog.Level
	AllowedOrigins     []string
	LoginRatePerMinute int
}

func NewRouter(
	cfg RouterConfig,
	JWTService jwt.Service,
	authService auth.AuthService,
	authHandler AuthHandler,
	masterHandler MasterHandler,
	userHandler UserHandler,
	payrollHandler PayrollHandler,
	reviewHandler ReviewHandler,
	statsHandler StatsHandler,
	healthHandler HealthHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)

	if cfg.Logger != nil {
		r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
			Level:  cfg.LogLevel,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found.")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.Fail(w, http.StatusMethodNotAllowed, "Method not allowed.", nil)
	})

	r.Get("/healthz", healthHandler.Live)
	r.Get("/readyz", healthHandler.Ready)

	loginLimiter := middleware.NewIPRateLimiter(
		rate.Every(time.Minute/time.Duration(cfg.LoginRatePerMinute)),
		cfg.LoginRatePerMinute,
	)

	r.Route("/api", func(r chi.Router) {
		r.Use(chiMiddleware.AllowContentType("application/json"))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.With(middleware.RateLimitByIP(loginLimiter)).Post("/login", authHandler.Login)
		})

		// Public reads
		r.Get("/positions", masterHandler.ListPositions)
		r.Get("/positions/{id}", masterHandler.GetPosition)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService, authService))

			r.Post("/auth/logout", authHandler.Logout)
			r.Get("/auth/me", authHandler.Me)

			r.Route("/departments", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionDepartmentView)).Get("/", masterHandler.ListDepartments)
				r.With(middleware.RequirePermission(user.PermissionDepartmentView)).Get("/{id}", masterHandler.GetDepartment)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionDepartmentManage))
					r.Post("/", masterHandler.CreateDepartment)
					r.Put("/{id}", masterHandler.UpdateDepartment)
					r.Patch("/{id}", masterHandler.UpdateDepartment)
					r.Delete("/{id}", masterHandler.DeleteDepartment)
				})
			})

			// Position reads are public and registered above
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionPositionManage))
				r.Post("/positions", masterHandler.CreatePosition)
				r.Put("/positions/{id}", masterHandler.UpdatePosition)
				r.Patch("/positions/{id}", masterHandler.UpdatePosition)
				r.Delete("/positions/{id}", masterHandler.DeletePosition)
			})

			r.Route("/users", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionUserViewAll)).Get("/", userHandler.List)
				r.With(middleware.RequirePermission(user.PermissionUserManage)).Post("/", userHandler.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.With(middleware.RequireSelfOrPermission(user.PermissionUserViewAll)).Get("/", userHandler.Get)
					r.With(middleware.RequireSelfOrPermission(user.PermissionUserManage)).Put("/", userHandler.Update)
					r.With(middleware.RequireSelfOrPermission(user.PermissionUserManage)).Patch("/", userHandler.Update)
					r.With(middleware.RequirePermission(user.PermissionUserManage)).Delete("/", userHandler.Delete)
				})
			})

			r.Route("/payroll-records", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionStatsView)).Get("/stats", statsHandler.GetPayrollStats)

				// Employees only see their own records
				r.With(middleware.RequirePermission(user.PermissionPayrollViewOwn)).Get("/", payrollHandler.ListPayrollRecords)
				r.With(middleware.RequirePermission(user.PermissionPayrollViewOwn)).Get("/{id}", payrollHandler.GetPayrollRecord)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionPayrollManage))
					r.Post("/", payrollHandler.CreatePayrollRecord)
					r.Put("/{id}", payrollHandler.UpdatePayrollRecord)
					r.Patch("/{id}", payrollHandler.UpdatePayrollRecord)
					r.Delete("/{id}", payrollHandler.DeletePayrollRecord)
				})
			})

			r.Route("/performance-reviews", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionStatsView)).Get("/stats", statsHandler.GetReviewStats)

				// Employees only see their own reviews
				r.With(middleware.RequirePermission(user.PermissionReviewViewOwn)).Get("/", reviewHandler.List)
				r.With(middleware.RequirePermission(user.PermissionReviewViewOwn)).Get("/{id}", reviewHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionReviewManage))
					r.Post("/", reviewHandler.Create)
					r.Put("/{id}", reviewHandler.Update)
					r.Patch("/{id}", reviewHandler.Update)
					r.Delete("/{id}", reviewHandler.Delete)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionStatsView))

				r.Route("/stats", func(r chi.Router) {
					r.Get("/departments", statsHandler.GetDepartmentStats)
					r.Get("/positions", statsHandler.GetPositionStats)
					r.Get("/users", statsHandler.GetUserStats)
					r.Get("/payroll", statsHandler.GetPayrollStats)
					r.Get("/performance-reviews", statsHandler.GetReviewStats)
				})

				r.Get("/metrics/overview", statsHandler.GetOverview)
			})
		})
	})

	return r
}
