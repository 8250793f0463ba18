package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/medibridge/enroll-backend-go/internal/config"
	appHTTP "github.com/medibridge/enroll-backend-go/internal/handler/http"
	"github.com/medibridge/enroll-backend-go/internal/pkg/database"
	"github.com/medibridge/enroll-backend-go/internal/pkg/email"
	"github.com/medibridge/enroll-backend-go/internal/pkg/jwt"
	"github.com/medibridge/enroll-backend-go/internal/pkg/oauth"
	"github.com/medibridge/enroll-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/medibridge/enroll-backend-go/internal/service/auth"
	batchService "github.com/medibridge/enroll-backend-go/internal/service/batch"
	employeeService "github.com/medibridge/enroll-backend-go/internal/service/employee"
	enrollmentService "github.com/medibridge/enroll-backend-go/internal/service/enrollment"
	reportService "github.com/medibridge/enroll-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	familyMemberRepo := postgresql.NewFamilyMemberRepository(db)
	parentRepo := postgresql.NewParentRepository(db)
	enrollmentRepo := postgresql.NewEnrollmentRepository(db)
	batchRepo := postgresql.NewBatchRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	authService := serviceAuth.NewAuthService(db, employeeRepo, JWTService, JWTRepository)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	enrollmentSvc := enrollmentService.NewEnrollmentService(
		db,
		employeeRepo,
		familyMemberRepo,
		parentRepo,
		enrollmentRepo,
		emailService,
		cfg.App.FrontendURL,
	)
	batchSvc := batchService.NewBatchService(db, batchRepo, employeeRepo)
	reportSvc := reportService.NewReportService(db, reportRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authService, GoogleService, cfg.App.FrontendURL)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	enrollmentHandler := appHTTP.NewEnrollmentHandler(enrollmentSvc)
	batchHandler := appHTTP.NewBatchHandler(batchSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		JWTService,
		[]string{cfg.App.FrontendURL},
		authHandler,
		employeeHandler,
		enrollmentHandler,
		batchHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
