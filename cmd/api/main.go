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
	"time"

	"github.com/mannerishivardhan/workforce-backend-go/internal/config"
	appHTTP "github.com/mannerishivardhan/workforce-backend-go/internal/handler/http"
	"github.com/mannerishivardhan/workforce-backend-go/internal/pkg/database"
	"github.com/mannerishivardhan/workforce-backend-go/internal/pkg/jwt"
	"github.com/mannerishivardhan/workforce-backend-go/internal/pkg/report"
	"github.com/mannerishivardhan/workforce-backend-go/internal/repository/postgresql"
	attendanceService "github.com/mannerishivardhan/workforce-backend-go/internal/service/attendance"
	salaryService "github.com/mannerishivardhan/workforce-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := appHTTP.NewLogger(os.Stdout, cfg.SlogLevel(), cfg.App.Name, cfg.App.Version, cfg.App.Env)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), cfg.Database.MaxConns)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := postgresql.Migrate(ctx, db); err != nil {
		return err
	}

	departmentRepo := postgresql.NewDepartmentRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	transactor := postgresql.NewTransactor(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	renderer := report.NewRenderer(cfg.Salary.ReportCurrency)

	salarySvc := salaryService.NewSalaryService(
		employeeRepo,
		shiftRepo,
		attendanceRepo,
		departmentRepo,
		renderer,
		cfg.Salary.Workers,
		logger,
	)
	attendanceSvc := attendanceService.NewAttendanceService(
		transactor,
		attendanceRepo,
		employeeRepo,
		logger,
	)

	salaryHandler := appHTTP.NewSalaryHandler(salarySvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(
		JWTService,
		logger,
		cfg.App.CORSAllowedOrigins,
		salaryHandler,
		attendanceHandler,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.String("addr", server.Addr))
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

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
