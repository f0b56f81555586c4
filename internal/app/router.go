package app

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"taxipark/internal/handler"
	"taxipark/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	ReportHandler *handler.ReportHandler
	ParkHandler   *handler.ParkHandler
	Logger        *slog.Logger
	NewRelicApp   *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	if deps.Logger != nil {
		router.Use(middleware.RequestLogger(deps.Logger))
	}
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Prometheus metrics.
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Snapshot routes.
		park := v1.Group("/park")
		{
			park.GET("", deps.ParkHandler.GetPark)
			park.POST("/reload", deps.ParkHandler.Reload)
		}

		// Report routes.
		reports := v1.Group("/reports")
		{
			reports.GET("/fake-drivers", deps.ReportHandler.FakeDrivers)
			reports.GET("/faithful-passengers", deps.ReportHandler.FaithfulPassengers)
			reports.GET("/drivers/:id/frequent-passengers", deps.ReportHandler.FrequentPassengers)
			reports.GET("/smart-passengers", deps.ReportHandler.SmartPassengers)
			reports.GET("/duration-period", deps.ReportHandler.DurationPeriod)
			reports.GET("/pareto", deps.ReportHandler.Pareto)
			reports.GET("/driver-incomes", deps.ReportHandler.DriverIncomes)
			reports.GET("/summary", deps.ReportHandler.Summary)
		}
	}

	return router
}
