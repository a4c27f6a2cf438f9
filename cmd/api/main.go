package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fasthr/hr-backend-go/internal/config"
	appHTTP "github.com/fasthr/hr-backend-go/internal/handler/http"
	"github.com/fasthr/hr-backend-go/internal/pkg/database"
	"github.com/fasthr/hr-backend-go/internal/pkg/jwt"
	"github.com/fasthr/hr-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/fasthr/hr-backend-go/internal/service/auth"
	"github.com/fasthr/hr-backend-go/internal/service/master"
	payrollService "github.com/fasthr/hr-backend-go/internal/service/payroll"
	reviewService "github.com/fasthr/hr-backend-go/internal/service/review"
	statsService "github.com/fasthr/hr-backend-go/internal/service/stats"
	userService "github.com/fasthr/hr-backend-go/internal/service/user"
	"github.com/go-chi/httplog/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logFormat := httplog.SchemaECS.Concise(!cfg.IsProduction())
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "fast-hr"),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	if err := run(cfg, logger, logLevel); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, logLevel slog.Level) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if cfg.Database.RunMigrations {
		if err := db.Migrate(ctx); err != nil {
			return fmt.Errorf("migrations failed: %w", err)
		}
	}
	if cfg.Seed.Enabled {
		if err := db.Seed(ctx, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword); err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
	}

	tx := postgresql.NewTransactor(db)
	userRepo := postgresql.NewUserRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	positionRepo := postgresql.NewPositionRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	reviewRepo := postgresql.NewReviewRepository(db)
	sessionRepo := postgresql.NewSessionRepository(db)
	statsRepo := postgresql.NewStatsRepository(db)

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		return err
	}

	userSvc := userService.NewUserService(tx, userRepo, positionRepo)
	authService := serviceAuth.NewAuthService(tx, userRepo, sessionRepo, userSvc, JWTService)
	masterService := master.NewMasterService(departmentRepo, positionRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, userRepo)
	reviewSvc := reviewService.NewReviewService(reviewRepo, userRepo, payrollRepo)
	statsSvc := statsService.NewStatsService(statsRepo)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Logger:             logger,
			LogLevel:           logLevel,
			AllowedOrigins:     cfg.CORS.AllowedOrigins,
			LoginRatePerMinute: cfg.App.LoginRatePerMinute,
		},
		JWTService,
		authService,
		appHTTP.NewAuthHandler(authService),
		appHTTP.NewMasterHandler(masterService),
		appHTTP.NewUserHandler(userSvc),
		appHTTP.NewPayrollHandler(payrollSvc),
		appHTTP.NewReviewHandler(reviewSvc),
		appHTTP.NewStatsHandler(statsSvc),
		appHTTP.NewHealthHandler(db),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.App.ReadTimeout,
		WriteTimeout: cfg.App.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownGracePeriod)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
