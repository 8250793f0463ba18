package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/medibridge/enroll-backend-go/internal/handler/http/middleware"
	"github.com/medibridge/enroll-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	allowedOrigins []string,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	enrollmentHandler EnrollmentHandler,
	batchHandler BatchHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "enroll-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/login-admin", authHandler.LoginAdmin)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
				r.Get("/callback/google", authHandler.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/me", employeeHandler.GetMe)

			r.Route("/enrollment", func(r chi.Router) {
				r.Get("/", enrollmentHandler.Get)
				r.Get("/premium", enrollmentHandler.GetPremium)
				r.Put("/parental-coverage", enrollmentHandler.SetCoverage)
				r.Post("/family-members", enrollmentHandler.AddFamilyMember)
				r.Delete("/family-members/{id}", enrollmentHandler.RemoveFamilyMember)
				r.Post("/parents", enrollmentHandler.AddParent)
				r.Delete("/parents/{id}", enrollmentHandler.RemoveParent)
				r.Post("/submit", enrollmentHandler.Submit)
			})

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Get("/{id}", employeeHandler.GetByID)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})

				r.Route("/batches", func(r chi.Router) {
					r.Get("/", batchHandler.List)
					r.Post("/", batchHandler.Import)
				})

				r.Get("/dashboard", reportHandler.Dashboard)

				r.Route("/reports", func(r chi.Router) {
					r.Get("/enrollment", reportHandler.EnrollmentReport)
					r.Get("/enrollment/export", reportHandler.ExportEnrollmentReport)
					r.Get("/employees/export", reportHandler.ExportEmployees)
				})
			})
		})
	})
	return r
}
