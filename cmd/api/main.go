package main

import (
	"fmt"
	"net/http"

	"github.com/ydm-hr/hr-backend-go/internal/config"
	appHTTP "github.com/ydm-hr/hr-backend-go/internal/handler/http"
	"github.com/ydm-hr/hr-backend-go/internal/pkg/jwt"
	"github.com/ydm-hr/hr-backend-go/internal/repository/sheetdb"
	attendanceService "github.com/ydm-hr/hr-backend-go/internal/service/attendance"
	authService "github.com/ydm-hr/hr-backend-go/internal/service/auth"
	dashboardService "github.com/ydm-hr/hr-backend-go/internal/service/dashboard"
	employeeService "github.com/ydm-hr/hr-backend-go/internal/service/employee"
	"github.com/ydm-hr/hr-backend-go/internal/service/export"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	storeClient := sheetdb.NewClient(cfg.Webhook.URL, cfg.Webhook.Secret, cfg.Webhook.Timeout)

	employeeRepo := sheetdb.NewEmployeeRepository(storeClient)
	attendanceRepo := sheetdb.NewAttendanceRepository(storeClient)
	userRepo := sheetdb.NewUserRepository(storeClient)

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiration,
		cfg.JWT.RefreshExpiration,
		cfg.JWT.RememberMeExpiration,
	)

	exportSvc := export.NewExportService()
	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	dashboardSvc := dashboardService.NewDashboardService(attendanceRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, exportSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, exportSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
