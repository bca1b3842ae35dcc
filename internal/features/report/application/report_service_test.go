package application

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pptx-report-service/internal/features/report/domain"
	"pptx-report-service/internal/features/report/infrastructure"
	"pptx-report-service/internal/logger"
)

type stubTemplateLoader struct {
	data []byte
	err  error
}

func (s *stubTemplateLoader) Load() ([]byte, error) {
	return s.data, s.err
}

type stubConverter struct {
	input []byte
	pdf   []byte
	err   error
	calls int
}

func (s *stubConverter) ConvertToPDF(deck []byte) ([]byte, error) {
	s.calls++
	s.input = deck
	return s.pdf, s.err
}

// buildServiceTestDeck assembles a one-slide PPTX with a single templated run.
func buildServiceTestDeck(t *testing.T, runText string) []byte {
	t.Helper()

	slide := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">` +
		`<p:cSld><p:spTree><p:sp><p:txBody><a:p><a:r><a:rPr/><a:t>` + runText + `</a:t></a:r></a:p></p:txBody></p:sp></p:spTree></p:cSld></p:sld>`

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, body := range map[string]string{
		"[Content_Types].xml":   `<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`,
		"ppt/presentation.xml":  `<?xml version="1.0"?><p:presentation xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"/>`,
		"ppt/slides/slide1.xml": slide,
	} {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func createTestPayload() *domain.ReportPayload {
	days := 7
	return &domain.ReportPayload{
		ServiceCode:        "SL-01",
		IDNumber:           "1234567890",
		NameAR:             "محمد",
		NameEN:             "Mohammed",
		DaysCount:          &days,
		EntryDateGregorian: "2024-3-5",
		ExitDateGregorian:  "2024-3-12",
		ReportIssueDate:    "2024-3-12",
		NationalityAR:      "سعودي",
		NationalityEN:      "Saudi",
		DoctorNameAR:       "د. خالد",
		DoctorNameEN:       "Dr. Khalid",
		JobTitleAR:         "استشاري",
		JobTitleEN:         "Consultant",
		HospitalNameAR:     "مستشفى",
		HospitalNameEN:     "Hospital",
		PrintDate:          "2024-3-12",
		PrintTime:          "14:30",
	}
}

func TestGeneratePPTX_FillsPlaceholders(t *testing.T) {
	loader := &stubTemplateLoader{data: buildServiceTestDeck(t, "{{NAME_EN}}")}
	svc := NewReportService(loader, &stubConverter{}, logger.NewTestLogger(t))

	out, err := svc.GeneratePPTX(createTestPayload())
	require.NoError(t, err)

	deck, err := infrastructure.OpenDeck(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"Mohammed"}, deck.RunTexts())
}

func TestGeneratePPTX_PropagatesTemplateError(t *testing.T) {
	loader := &stubTemplateLoader{err: errors.New("template not found: x.pptx")}
	svc := NewReportService(loader, &stubConverter{}, logger.NewTestLogger(t))

	_, err := svc.GeneratePPTX(createTestPayload())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load template")
	assert.Contains(t, err.Error(), "template not found")
}

func TestGeneratePPTX_ErrorsOnMalformedTemplate(t *testing.T) {
	loader := &stubTemplateLoader{data: []byte("not a deck")}
	svc := NewReportService(loader, &stubConverter{}, logger.NewTestLogger(t))

	_, err := svc.GeneratePPTX(createTestPayload())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open template deck")
}

func TestGeneratePDF_ConvertsFilledDeck(t *testing.T) {
	loader := &stubTemplateLoader{data: buildServiceTestDeck(t, "{{ID_NUMBER}}")}
	conv := &stubConverter{pdf: []byte("%PDF-1.7 fake")}
	svc := NewReportService(loader, conv, logger.NewTestLogger(t))

	out, err := svc.GeneratePDF(createTestPayload())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7 fake"), out)
	require.Equal(t, 1, conv.calls)

	// The converter receives the filled deck, not the raw template.
	deck, err := infrastructure.OpenDeck(conv.input)
	require.NoError(t, err)
	assert.Equal(t, []string{"1234567890"}, deck.RunTexts())
}

func TestGeneratePDF_PropagatesConversionError(t *testing.T) {
	loader := &stubTemplateLoader{data: buildServiceTestDeck(t, "{{NAME_EN}}")}
	conv := &stubConverter{err: errors.New("LibreOffice 'soffice' not found in PATH")}
	svc := NewReportService(loader, conv, logger.NewTestLogger(t))

	_, err := svc.GeneratePDF(createTestPayload())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "soffice")
}

func TestGeneratePDF_DoesNotConvertWhenTemplateFails(t *testing.T) {
	loader := &stubTemplateLoader{err: errors.New("template not found")}
	conv := &stubConverter{}
	svc := NewReportService(loader, conv, logger.NewTestLogger(t))

	_, err := svc.GeneratePDF(createTestPayload())
	require.Error(t, err)
	assert.Zero(t, conv.calls)
}
