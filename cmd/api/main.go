package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"salespage/internal/auth"
	"salespage/internal/cache"
	"salespage/internal/config"
	"salespage/internal/database"
	"salespage/internal/database/migration"
	handlers "salespage/internal/http/handler"
	"salespage/internal/http/middleware"
	"salespage/internal/logger"
	"salespage/internal/metrics"
	"salespage/internal/otel"
	"salespage/internal/render"
	"salespage/internal/repository/postgres"
	"salespage/internal/service"
	"salespage/internal/slug"
	"salespage/internal/storage"
)

// @title Landing Page Builder API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server_failed", zap.Error(err))
	}
}

func run(cfg *config.AppConfig, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracing_shutdown_failed", zap.Error(err))
		}
	}()

	// PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	// S3-compatible object storage for page images (MinIO-supported)
	objStore, err := storage.NewMinIO(ctx, cfg.MinIO, cfg.PublicBaseURL)
	if err != nil {
		return fmt.Errorf("initialize object storage: %w", err)
	}

	pageCache, redisClient := newPageCache(ctx, cfg.Redis, log)
	if redisClient != nil {
		defer redisClient.Close()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return fmt.Errorf("register http metrics: %w", err)
	}
	domainMetrics, err := metrics.New(reg)
	if err != nil {
		return fmt.Errorf("register domain metrics: %w", err)
	}

	verifier, err := auth.NewVerifier(cfg.Auth, log)
	if err != nil {
		return fmt.Errorf("initialize auth: %w", err)
	}

	renderer, err := render.New()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	// Repositories and services
	pageRepo := postgres.NewLandingPagePostgres(db)
	profileRepo := postgres.NewProfilePostgres(db)
	roleRepo := postgres.NewRolePostgres(db)
	statsRepo := postgres.NewStatsPostgres(db)

	pageSvc := service.NewPageService(service.PageDeps{
		Pages:    pageRepo,
		Profiles: profileRepo,
		Slugs:    slug.NewAllocator(pageRepo, slug.WithLogger(log)),
		Renderer: renderer,
		Cache:    pageCache,
		Metrics:  domainMetrics,
		Logger:   log,
	})
	imageSvc := service.NewImageService(objStore, cfg.MinIO.MaxUploadBytes, domainMetrics, log)
	adminSvc := service.NewAdminService(pageRepo, profileRepo, roleRepo, statsRepo, pageCache, log)
	statsSvc := service.NewStatsService(statsRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		BodyLimit:             int(cfg.MinIO.MaxUploadBytes) + 1<<20,
		DisableStartupMessage: cfg.IsProduction(),
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
	})

	// Register global middleware
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics" || c.Path() == "/healthz"
	})))
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:          db,
		Pages:       pageSvc,
		Images:      imageSvc,
		Admin:       adminSvc,
		Stats:       statsSvc,
		Verifier:    verifier,
		Gatherer:    reg,
		RateLimiter: middleware.NewRateLimiter(cfg.RateLimit, log),
		Logger:      log,
	})

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		log.Info("server_listening", zap.String("addr", addr), zap.String("env", cfg.Env))
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	log.Info("server_shutting_down")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(sctx)
}

// newPageCache connects the rendered page cache. Redis is optional: an empty
// address or an unreachable server leaves pages uncached.
func newPageCache(ctx context.Context, cfg config.RedisConfig, log *zap.Logger) (cache.PageCache, *redis.Client) {
	if cfg.Addr == "" {
		log.Info("page_cache_disabled")
		return cache.Noop{}, nil
	}
	pc, client, err := cache.NewRedis(ctx, cfg)
	if err != nil {
		log.Warn("page_cache_unavailable", zap.String("addr", cfg.Addr), zap.Error(err))
		return cache.Noop{}, nil
	}
	log.Info("page_cache_enabled", zap.String("addr", cfg.Addr), zap.Duration("ttl", cfg.PageTTL))
	return pc, client
}
