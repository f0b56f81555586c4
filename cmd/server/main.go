package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"taxipark/internal/app"
	"taxipark/internal/config"
	"taxipark/internal/handler"
	"taxipark/internal/logger"
	internalRedis "taxipark/internal/redis"
	"taxipark/internal/repository"
	"taxipark/internal/repository/memory"
	"taxipark/internal/repository/postgres"
	"taxipark/internal/service"
)

func main() {
	// Load configuration.
	cfg := config.Load()
	log := logger.New(os.Stdout, "taxi-park-reports", cfg.Log.Level)
	slog.SetDefault(log)
	gin.SetMode(gin.ReleaseMode)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before database so we can instrument DB).
	var nrApp *newrelic.Application
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		var err error
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Warn("failed to initialize New Relic", "error", err)
		} else {
			log.Info("New Relic enabled", "app", cfg.NewRelic.AppName)
		}
	}

	// Pick the park data source.
	var parkRepo repository.ParkRepository
	switch cfg.Park.Source {
	case config.ParkSourceMemory:
		parkRepo = memory.NewDemoRepository()
		log.Info("using in-memory demo park")
	default:
		db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
		if err != nil {
			log.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		parkRepo = postgres.NewParkRepository(db)
		log.Info("connected to PostgreSQL", "host", cfg.Database.Host, "db", cfg.Database.DBName)
	}

	// Report cache is optional; the service computes reports directly without it.
	var reportCache internalRedis.ReportCacheInterface
	if cfg.Redis.Enabled {
		redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
		if err != nil {
			log.Warn("report cache disabled", "error", err)
		} else {
			defer redisClient.Close()
			reportCache = internalRedis.NewReportCache(redisClient, cfg.Redis.TTL)
			log.Info("connected to Redis", "addr", cfg.Redis.Addr)
		}
	}

	reportService := service.NewReportService(parkRepo, reportCache, log)
	if _, err := reportService.Reload(ctx); err != nil {
		log.Error("failed to load initial snapshot", "error", err)
		os.Exit(1)
	}

	server := wireServer(reportService, log, nrApp, cfg)

	// Start server in goroutine.
	go func() {
		log.Info("starting server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}
	if nrApp != nil {
		nrApp.Shutdown(5 * time.Second)
	}

	log.Info("server exited")
}

// wireServer wires the handlers and returns the HTTP server.
func wireServer(reportService *service.ReportService, log *slog.Logger, nrApp *newrelic.Application, cfg *config.Config) *http.Server {
	reportHandler := handler.NewReportHandler(reportService, cfg.Park.DefaultMinTrips)
	parkHandler := handler.NewParkHandler(reportService)

	router := app.NewRouter(app.RouterDeps{
		ReportHandler: reportHandler,
		ParkHandler:   parkHandler,
		Logger:        log,
		NewRelicApp:   nrApp,
	})

	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
