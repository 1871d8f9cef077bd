package http

import (
	"io"
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/user"
	"github.com/mannerishivardhan/workforce-backend-go/internal/handler/http/middleware"
	"github.com/mannerishivardhan/workforce-backend-go/internal/pkg/jwt"
)

// NewLogger builds the JSON logger shared by the request log and the services.
func NewLogger(out io.Writer, level slog.Leveler, app, version, env string) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(false)
	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", app),
		slog.String("version", version),
		slog.String("env", env),
	)
}

func NewRouter(
	JWTService jwt.Service,
	logger *slog.Logger,
	allowedOrigins []string,
	salaryHandler SalaryHandler,
	attendanceHandler AttendanceHandler,
) *chi.Mux {
	r := chi.NewRouter()
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/salary", func(r chi.Router) {
				r.Route("/employees/{employeeId}", func(r chi.Router) {
					r.Use(middleware.RequireAnyPermission(
						user.PermissionSalaryViewAll,
						user.PermissionSalaryViewDepartment,
						user.PermissionSalaryViewOwn,
					))
					r.Get("/", salaryHandler.GetEmployeeSalary)
					r.Get("/payslip", salaryHandler.GetPayslip)
				})

				r.With(middleware.RequireAnyPermission(
					user.PermissionSalaryViewAll,
					user.PermissionSalaryViewDepartment,
				)).Get("/departments/{departmentId}", salaryHandler.GetDepartmentReport)

				r.Route("/system", func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionSalaryViewAll))
					r.Get("/", salaryHandler.GetSystemReport)
					r.With(middleware.RequirePermission(user.PermissionSalaryExport)).Get("/export", salaryHandler.ExportSystemReport)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.With(middleware.RequireAnyPermission(
					user.PermissionAttendanceViewAll,
					user.PermissionAttendanceViewDepartment,
					user.PermissionAttendanceViewOwn,
				)).Get("/employees/{employeeId}", attendanceHandler.ListMonth)

				r.With(middleware.RequirePermission(user.PermissionAttendanceMark)).Post("/", attendanceHandler.Mark)
				r.With(middleware.RequirePermission(user.PermissionAttendanceCorrect)).Patch("/{id}/correction", attendanceHandler.Correct)
			})
		})
	})
	return r
}
