package main

import (
	"fmt"
	"os"

	"energy-dashboard/internal/api/handlers"
	"energy-dashboard/internal/api/middleware"
	"energy-dashboard/internal/config"
	"energy-dashboard/internal/data"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfgPath := os.Getenv("DASHBOARD_CONFIG")
	if cfgPath == "" {
		cfgPath = "examples/config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Str("config", cfgPath).Msg("failed to load config")
	}

	// Port override for container deployments.
	if port := os.Getenv("API_PORT"); port != "" {
		cfg.Server.Port = port
	}
	cfg.Projection.FallbackBaseline.Apply()

	ds, err := data.Load(data.Paths{
		Generation:          cfg.Data.GenerationFile,
		GenerationForecast:  cfg.Data.GenerationForecastFile,
		Consumption:         cfg.Data.ConsumptionFile,
		ConsumptionForecast: cfg.Data.ConsumptionForecastFile,
		Capacity:            cfg.Data.CapacityFile,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load historical data")
	}
	log.Info().
		Int("generation_years", len(ds.Generation)).
		Int("consumption_years", len(ds.Consumption)).
		Int("capacity_rows", len(ds.Capacity)).
		Msg("historical data loaded")

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery())

	projectionHandler := handlers.NewProjectionHandler(ds.Generation, log)
	historyHandler := handlers.NewHistoryHandler(ds, cfg.History.StartYear, cfg.History.EndYear)

	router.GET("/health", handlers.Health)

	api := router.Group("/api/v1")
	{
		api.GET("/history/generation", historyHandler.GetGeneration)
		api.GET("/history/consumption", historyHandler.GetConsumption)
		api.GET("/history/capacity", historyHandler.GetCapacity)
		api.GET("/history/summary", historyHandler.GetSummary)
		api.GET("/history/accuracy", historyHandler.GetAccuracy)
		api.GET("/history/capacity-factors", historyHandler.GetCapacityFactors)
		api.GET("/history/load", historyHandler.GetLoad)

		api.GET("/methods", handlers.ListMethods)
		api.GET("/scenarios", handlers.ListScenarios)

		api.POST("/projection", projectionHandler.RunProjection)
		api.POST("/projection/compare/methods", projectionHandler.CompareMethods)
		api.POST("/projection/compare/scenarios", projectionHandler.CompareScenarios)
		api.GET("/projection/export", projectionHandler.ExportCSV)
	}

	// Serve the dashboard SPA when a build is present.
	staticDir := cfg.Server.StaticDir
	if dir := os.Getenv("STATIC_DIR"); dir != "" {
		staticDir = dir
	}
	if _, err := os.Stat(staticDir); err == nil {
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")

		// Serve index.html for all non-API routes (SPA routing).
		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path
			if len(path) >= 4 && path[:4] == "/api" {
				c.JSON(404, gin.H{"error": "Not found"})
			} else {
				c.File(staticDir + "/index.html")
			}
		})
		log.Info().Str("dir", staticDir).Msg("serving static files")
	} else {
		log.Info().Str("dir", staticDir).Msg("static directory not found, skipping static file serving")
	}

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("starting API server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
