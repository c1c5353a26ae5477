package router

import (
	"database/sql"
	"net/http"
	"time"

	_ "med-reconciliation/docs"
	mem "med-reconciliation/internal/adapters/storage/memory"
	pg "med-reconciliation/internal/adapters/storage/postgres"
	rds "med-reconciliation/internal/adapters/storage/redis"
	"med-reconciliation/internal/domain/catalog"
	"med-reconciliation/internal/domain/history"
	"med-reconciliation/internal/domain/interactions"
	"med-reconciliation/internal/domain/reconcile"
	"med-reconciliation/internal/domain/review"
	"med-reconciliation/internal/domain/translation"
	"med-reconciliation/internal/middleware"
	"med-reconciliation/internal/platform/logger"
	"med-reconciliation/internal/ports/events"
	"med-reconciliation/internal/ports/extraction"
	porttr "med-reconciliation/internal/ports/translation"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	goredis "github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, historial (y sesiones si no hay Redis) en Postgres.
	DB *sql.DB

	// Opcional: sesiones de trabajo en Redis.
	Redis      *goredis.Client
	SessionTTL time.Duration

	Extractor  extraction.Extractor
	Translator porttr.Translator // nil => reportes sin traducir
	Publisher  events.Publisher  // nil => no se publican eventos

	Catalog        *catalog.Catalog // nil => catálogo por defecto
	Logger         logger.Logger
	ExtractTimeout time.Duration
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.ReviewerContext())
	r.Use(middleware.RequestLog(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		historyRepo history.Repository
		sessionRepo review.Repository
	)

	switch {
	case opts.DB != nil:
		historyRepo = pg.NewHistoryRepo(opts.DB)
	default:
		historyRepo = mem.NewHistoryRepo()
	}

	switch {
	case opts.Redis != nil:
		sessionRepo = rds.NewSessionRepo(opts.Redis, opts.SessionTTL)
	case opts.DB != nil:
		sessionRepo = pg.NewSessionRepo(opts.DB)
	default:
		sessionRepo = mem.NewSessionRepo()
	}

	// Services por módulo
	trSvc := translation.NewService(opts.Translator, log)
	historySvc := history.NewService(historyRepo)
	reviewSvc := review.NewService(sessionRepo, historySvc, review.Options{
		Extractor:      opts.Extractor,
		Engine:         reconcile.NewEngine(cat, log),
		Analyzer:       interactions.NewAnalyzer(cat),
		Translation:    trSvc,
		Publisher:      opts.Publisher,
		Logger:         log,
		ExtractTimeout: opts.ExtractTimeout,
	})

	// Rutas por módulo
	review.RegisterRoutes(r, reviewSvc)
	history.RegisterRoutes(r, historySvc, trSvc)

	return r
}
