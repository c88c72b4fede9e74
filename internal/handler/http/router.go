package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stafflane/hrms-backend-go/internal/handler/http/middleware"
	"github.com/stafflane/hrms-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth        AuthHandler
	Employee    EmployeeHandler
	Attendance  AttendanceHandler
	Leave       LeaveHandler
	Payroll     PayrollHandler
	Performance PerformanceHandler
	Dashboard   DashboardHandler
}

func NewRouter(jwtService jwt.Service, h Handlers, frontendURL string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.Auth.Signup)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Get("/login/oauth/google", h.Auth.LoginWithGoogle)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)

				// hr only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Deactivate)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/record", h.Attendance.Record)
				r.Get("/", h.Attendance.List)
				r.Get("/summary", h.Attendance.Summary)
				r.Get("/summary/{employeeID}", h.Attendance.Summary)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Post("/", h.Leave.Create)
				r.Get("/", h.Leave.List)

				// hr or manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManagerOrHR)
					r.Put("/{id}/status", h.Leave.UpdateStatus)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", h.Payroll.List)
				r.Get("/{id}/payslip", h.Payroll.Payslip)

				// hr only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/generate", h.Payroll.GenerateBatch)
					r.Post("/mark-paid", h.Payroll.MarkPaid)
				})
			})

			r.Route("/performance", func(r chi.Router) {
				r.Get("/", h.Performance.List)
				r.Get("/{id}", h.Performance.Get)

				// hr or manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManagerOrHR)
					r.Post("/", h.Performance.Create)
					r.Put("/{id}", h.Performance.Update)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/activities", h.Dashboard.Activities)
				r.Get("/employee-stats", h.Dashboard.EmployeeStats)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/manager-stats", h.Dashboard.ManagerStats)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Get("/hr-stats", h.Dashboard.HRStats)
				})
			})
		})
	})
	return r
}
