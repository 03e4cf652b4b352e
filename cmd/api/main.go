package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"loan-summary/internal/api/handlers"
	"loan-summary/internal/api/middleware"
	"loan-summary/internal/cache"
	"loan-summary/internal/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}
	if port := os.Getenv("API_PORT"); port != "" {
		cfg.Server.Port = port
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.Server.CORSOrigins))
	router.Use(middleware.ErrorHandler())

	// Without redis the cache is per-process; fine for a single instance.
	var reportCache cache.Cache = cache.NewMemoryCache()
	if cfg.Redis.Addr != "" {
		reportCache = cache.NewRedisCache(cfg.Redis.Addr, 24*time.Hour)
		log.Printf("using redis report cache at %s", cfg.Redis.Addr)
	}

	reportHandler := handlers.NewReportHandler(reportCache)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/report", reportHandler.CreateReport)
		api.GET("/report/:id", reportHandler.GetReport)
		api.GET("/grades", handlers.ListGrades)
	}

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
