package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"pptx-report-service/internal/config"
	"pptx-report-service/internal/features/report/application"
	"pptx-report-service/internal/features/report/infrastructure"
	report_http "pptx-report-service/internal/features/report/presentation/http"
	"pptx-report-service/internal/logger"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	zl := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer zl.Sync()

	r := gin.Default()
	r.Use(cors.Default()) // allow all origins

	// Wire the report pipeline
	templates := infrastructure.NewTemplateLoader(cfg)
	converter := infrastructure.NewLibreOfficeConverter(cfg)
	reportService := application.NewReportService(templates, converter, zl)

	handler := report_http.NewReportHandler(reportService, cfg, zl)
	r.GET("/health", handler.HealthHandler)
	r.POST("/generate-pptx", handler.GeneratePPTXHandler)
	r.POST("/generate-pdf", handler.GeneratePDFHandler)

	zl.Info("starting server",
		zap.String("port", cfg.Port),
		zap.Bool("template_url_configured", cfg.RemoteTemplateConfigured()),
	)
	if err := r.Run(":" + cfg.Port); err != nil {
		zl.Fatal("server exited", zap.Error(err))
	}
}
