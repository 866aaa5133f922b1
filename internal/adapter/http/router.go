package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/ledgerkeep/ledgerkeep/internal/adapter/http/handler"
	"github.com/ledgerkeep/ledgerkeep/internal/adapter/http/middleware"
	"github.com/ledgerkeep/ledgerkeep/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	RecordHandler    *handler.RecordHandler
	BookHandler      *handler.BookHandler
	CategoryHandler  *handler.CategoryHandler
	AccountHandler   *handler.AccountHandler
	DebtHandler      *handler.DebtHandler
	GoalHandler      *handler.GoalHandler
	RuleHandler      *handler.RuleHandler
	TemplateHandler  *handler.TemplateHandler
	SettingsHandler  *handler.SettingsHandler
	ArchiveHandler   *handler.ArchiveHandler
	InsightHandler   *handler.InsightHandler
	SnapshotHandler  *handler.SnapshotHandler
	ImportHandler    *handler.ImportHandler
	HealthHandler    *handler.HealthHandler
	Logging          *middleware.LoggingMiddleware
	RateLimiter      *middleware.RateLimiter
	IdempotencyStore usecase.IdempotencyStore
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if cfg.Logging != nil {
		r.Use(cfg.Logging.Wrap)
	}
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		r.Route("/records", func(r chi.Router) {
			r.Post("/", cfg.RecordHandler.Create)
			r.Get("/", cfg.RecordHandler.List)
			r.Get("/{id}", cfg.RecordHandler.Get)
			r.Delete("/{id}", cfg.RecordHandler.Delete)
			r.Post("/{id}/reimburse", cfg.RecordHandler.Reimburse)
			r.Post("/import", cfg.ImportHandler.Import)
		})

		r.Route("/books", func(r chi.Router) {
			r.Post("/", cfg.BookHandler.Create)
			r.Get("/", cfg.BookHandler.List)
			r.Get("/{id}", cfg.BookHandler.Get)
			r.Put("/{id}", cfg.BookHandler.Update)
			r.Delete("/{id}", cfg.BookHandler.Delete)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Post("/", cfg.CategoryHandler.Create)
			r.Get("/", cfg.CategoryHandler.List)
			r.Put("/{id}", cfg.CategoryHandler.Update)
			r.Delete("/{id}", cfg.CategoryHandler.Delete)
		})

		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/summary", cfg.AccountHandler.Summary)
			r.Get("/{id}", cfg.AccountHandler.Get)
			r.Put("/{id}", cfg.AccountHandler.Update)
			r.Get("/{id}/entries", cfg.AccountHandler.ListEntries)
		})

		r.Route("/debts", func(r chi.Router) {
			r.Post("/", cfg.DebtHandler.Create)
			r.Get("/", cfg.DebtHandler.List)
			r.Get("/{id}", cfg.DebtHandler.Get)
			r.Delete("/{id}", cfg.DebtHandler.Delete)
			r.Post("/{id}/repayments", cfg.DebtHandler.AddRepayment)
			r.Get("/{id}/repayments", cfg.DebtHandler.ListRepayments)
		})

		r.Route("/goals", func(r chi.Router) {
			r.Post("/", cfg.GoalHandler.Create)
			r.Get("/", cfg.GoalHandler.List)
			r.Get("/{id}", cfg.GoalHandler.Get)
			r.Put("/{id}", cfg.GoalHandler.Update)
			r.Delete("/{id}", cfg.GoalHandler.Delete)
			r.Post("/{id}/progress", cfg.GoalHandler.AdjustProgress)
		})

		r.Route("/recurring-rules", func(r chi.Router) {
			r.Post("/", cfg.RuleHandler.Create)
			r.Get("/", cfg.RuleHandler.List)
			r.Get("/{id}", cfg.RuleHandler.Get)
			r.Put("/{id}", cfg.RuleHandler.Update)
			r.Delete("/{id}", cfg.RuleHandler.Delete)
			r.Post("/trigger", cfg.RuleHandler.Trigger)
		})

		r.Route("/templates", func(r chi.Router) {
			r.Post("/", cfg.TemplateHandler.Create)
			r.Get("/", cfg.TemplateHandler.List)
			r.Delete("/{id}", cfg.TemplateHandler.Delete)
			r.Post("/{id}/apply", cfg.TemplateHandler.Apply)
		})

		r.Get("/settings", cfg.SettingsHandler.Get)
		r.Put("/settings", cfg.SettingsHandler.Update)

		r.Post("/archive", cfg.ArchiveHandler.Archive)
		r.Get("/insight", cfg.InsightHandler.Get)

		r.Route("/snapshot", func(r chi.Router) {
			r.Get("/export", cfg.SnapshotHandler.Export)
			r.Post("/import", cfg.SnapshotHandler.Import)
			r.Get("/backup/check", cfg.SnapshotHandler.BackupCheck)
			r.Post("/backup", cfg.SnapshotHandler.Backup)
			r.Post("/restore", cfg.SnapshotHandler.Restore)
		})
	})

	return r
}
