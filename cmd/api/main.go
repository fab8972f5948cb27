package main

import (
	"fmt"
	"net/http"

	"github.com/ametis-rh/paie-backend-go/internal/config"
	appHTTP "github.com/ametis-rh/paie-backend-go/internal/handler/http"
	"github.com/ametis-rh/paie-backend-go/internal/pkg/database"
	"github.com/ametis-rh/paie-backend-go/internal/repository/postgresql"
	compensationService "github.com/ametis-rh/paie-backend-go/internal/service/compensation"
	payslipService "github.com/ametis-rh/paie-backend-go/internal/service/payslip"
	reportService "github.com/ametis-rh/paie-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	compensationRepo := postgresql.NewCompensationRepository(db)
	organizationRepo := postgresql.NewOrganizationRepository(db)
	txManager := postgresql.NewTxManager(db)

	compensationSvc := compensationService.NewCompensationService(txManager, compensationRepo, employeeRepo)
	payslipSvc := payslipService.NewPayslipService(employeeRepo, compensationRepo, organizationRepo)
	reportSvc := reportService.NewReportService(employeeRepo, compensationRepo, organizationRepo, cfg.Report.WorkerLimit)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeRepo)
	compensationHandler := appHTTP.NewCompensationHandler(compensationSvc)
	payslipHandler := appHTTP.NewPayslipHandler(payslipSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	organizationHandler := appHTTP.NewOrganizationHandler(organizationRepo)

	router := appHTTP.NewRouter(
		cfg,
		employeeHandler,
		compensationHandler,
		payslipHandler,
		reportHandler,
		organizationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
