package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/cmlabs-hris/hrms-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/hrms-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/hrms-backend-go/internal/repository/mongodb"
	attendanceService "github.com/cmlabs-hris/hrms-backend-go/internal/service/attendance"
	employeeService "github.com/cmlabs-hris/hrms-backend-go/internal/service/employee"
	reportService "github.com/cmlabs-hris/hrms-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewMongoDB(cfg.Database.URI, cfg.Database.Name, cfg.Database.Timeout)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			log.Println("Error disconnecting from database:", err)
		}
	}()

	if err := mongodb.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatal("Failed to create indexes: ", err)
	}

	employeeRepo := mongodb.NewEmployeeRepository(db)
	attendanceRepo := mongodb.NewAttendanceRepository(db)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo, attendanceRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo, nil)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	healthHandler := appHTTP.NewHealthHandler(db)

	router := appHTTP.NewRouter(
		cfg,
		employeeHandler,
		attendanceHandler,
		reportHandler,
		healthHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
