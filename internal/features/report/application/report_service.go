package application

import (
	"fmt"

	"go.uber.org/zap"

	"pptx-report-service/internal/features/report/domain"
	"pptx-report-service/internal/features/report/infrastructure"
)

// ReportService fills the slide-deck template with a payload's field values.
type ReportService interface {
	GeneratePPTX(payload *domain.ReportPayload) ([]byte, error)
	GeneratePDF(payload *domain.ReportPayload) ([]byte, error)
}

// reportService is the implementation of ReportService.
type reportService struct {
	templates infrastructure.TemplateLoader
	converter infrastructure.Converter
	logger    *zap.Logger
}

// NewReportService creates a new instance of reportService.
func NewReportService(templates infrastructure.TemplateLoader, converter infrastructure.Converter, logger *zap.Logger) ReportService {
	return &reportService{
		templates: templates,
		converter: converter,
		logger:    logger,
	}
}

// GeneratePPTX returns the filled slide deck.
func (s *reportService) GeneratePPTX(payload *domain.ReportPayload) ([]byte, error) {
	return s.fillTemplate(payload)
}

// GeneratePDF fills the slide deck and converts it via LibreOffice.
func (s *reportService) GeneratePDF(payload *domain.ReportPayload) ([]byte, error) {
	filled, err := s.fillTemplate(payload)
	if err != nil {
		return nil, err
	}

	pdf, err := s.converter.ConvertToPDF(filled)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

// fillTemplate is the shared load -> map -> substitute pipeline used by
// both output formats.
func (s *reportService) fillTemplate(payload *domain.ReportPayload) ([]byte, error) {
	raw, err := s.templates.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}

	deck, err := infrastructure.OpenDeck(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to open template deck: %w", err)
	}

	deck.Fill(payload.Mapping())
	s.logger.Debug("filled report template", zap.String("id_number", payload.IDNumber))

	return deck.Bytes()
}
