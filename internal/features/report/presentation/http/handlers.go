package http

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pptx-report-service/internal/config"
	"pptx-report-service/internal/features/report/application"
	"pptx-report-service/internal/features/report/domain"
)

const pptxContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

// ReportHandler holds the report service and application config.
type ReportHandler struct {
	reportService application.ReportService
	cfg           *config.Config
	logger        *zap.Logger
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService application.ReportService, cfg *config.Config, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		cfg:           cfg,
		logger:        logger,
	}
}

// GeneratePPTXHandler fills the template and streams the resulting deck.
func (h *ReportHandler) GeneratePPTXHandler(c *gin.Context) {
	var payload domain.ReportPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deck, err := h.reportService.GeneratePPTX(&payload)
	if err != nil {
		h.logger.Error("generate-pptx failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", contentDisposition(domain.FallbackFilename("pptx"), payload.DownloadFilename("pptx")))
	c.Data(http.StatusOK, pptxContentType, deck)
}

// GeneratePDFHandler fills the template, converts it to PDF and streams it.
func (h *ReportHandler) GeneratePDFHandler(c *gin.Context) {
	var payload domain.ReportPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pdf, err := h.reportService.GeneratePDF(&payload)
	if err != nil {
		h.logger.Error("generate-pdf failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", contentDisposition(domain.FallbackFilename("pdf"), payload.DownloadFilename("pdf")))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// HealthHandler reports process health and whether a remote template is
// configured; it does not validate that the URL is reachable.
func (h *ReportHandler) HealthHandler(c *gin.Context) {
	if h.cfg.RemoteTemplateConfigured() {
		c.JSON(http.StatusOK, gin.H{
			"status":                  "ok",
			"template_url_configured": true,
			"template_url":            h.cfg.TemplateURL,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// contentDisposition builds an attachment header with an ASCII-safe fallback
// filename plus the RFC 5987 percent-encoded UTF-8 one, since filled-in
// names may contain non-ASCII characters.
func contentDisposition(fallback, filename string) string {
	return fmt.Sprintf("attachment; filename=%q; filename*=UTF-8''%s", fallback, url.PathEscape(filename))
}
