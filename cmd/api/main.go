package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/stafflane/hrms-backend-go/internal/config"
	"github.com/stafflane/hrms-backend-go/internal/domain/payroll"
	appHTTP "github.com/stafflane/hrms-backend-go/internal/handler/http"
	"github.com/stafflane/hrms-backend-go/internal/pkg/database"
	"github.com/stafflane/hrms-backend-go/internal/pkg/jwt"
	"github.com/stafflane/hrms-backend-go/internal/pkg/oauth"
	"github.com/stafflane/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/stafflane/hrms-backend-go/internal/service/attendance"
	authService "github.com/stafflane/hrms-backend-go/internal/service/auth"
	dashboardService "github.com/stafflane/hrms-backend-go/internal/service/dashboard"
	employeeService "github.com/stafflane/hrms-backend-go/internal/service/employee"
	leaveService "github.com/stafflane/hrms-backend-go/internal/service/leave"
	payrollService "github.com/stafflane/hrms-backend-go/internal/service/payroll"
	performanceService "github.com/stafflane/hrms-backend-go/internal/service/performance"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	performanceRepo := postgresql.NewPerformanceRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var googleService oauth.GoogleService
	if cfg.OAuthEnabled() {
		googleService = oauth.NewGoogleService(
			cfg.OAuth2Google.ClientID,
			cfg.OAuth2Google.ClientSecret,
			cfg.OAuth2Google.RedirectURL,
			cfg.OAuth2Google.Scopes,
		)
	}

	authSvc := authService.NewAuthService(db, userRepo, employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo, payroll.DefaultTaxPolicy())
	performanceSvc := performanceService.NewPerformanceService(performanceRepo, employeeRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	handlers := appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL),
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:       appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:     appHTTP.NewPayrollHandler(payrollSvc),
		Performance: appHTTP.NewPerformanceHandler(performanceSvc),
		Dashboard:   appHTTP.NewDashboardHandler(dashboardSvc),
	}

	router := appHTTP.NewRouter(jwtService, handlers, cfg.App.FrontendURL)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
