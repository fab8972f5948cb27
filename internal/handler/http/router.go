package http

import (
	"log/slog"
	"os"

	"github.com/ametis-rh/paie-backend-go/internal/config"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	cfg *config.Config,
	employeeHandler EmployeeHandler,
	compensationHandler CompensationHandler,
	payslipHandler PayslipHandler,
	reportHandler ReportHandler,
	organizationHandler OrganizationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "paie-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel(cfg.App.LogLevel),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)

			r.Route("/{employeeId}", func(r chi.Router) {
				r.Get("/", employeeHandler.GetByID)

				r.Get("/payslip", payslipHandler.GetPayslip)
				r.Post("/payslip/simulate-net", payslipHandler.SimulateNet)

				r.Get("/compensation-baseline", compensationHandler.GetBaseline)
				r.Route("/compensation-events", func(r chi.Router) {
					r.Get("/", compensationHandler.ListEvents)
					r.Post("/", compensationHandler.RecordEvent)
					r.Delete("/{id}", compensationHandler.DeleteEvent)
				})
			})
		})

		r.Put("/compensation-events/{id}", compensationHandler.UpdateEvent)

		r.Route("/reports", func(r chi.Router) {
			r.Get("/annual-declaration", reportHandler.AnnualDeclaration)
			r.Get("/nominative/{employeeId}", reportHandler.NominativeReport)
		})

		r.Get("/organization", organizationHandler.Get)
	})

	return r
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
