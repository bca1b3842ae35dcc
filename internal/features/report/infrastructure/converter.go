package infrastructure

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"pptx-report-service/internal/config"
)

// Converter turns a filled slide deck into bytes of another document format.
type Converter interface {
	ConvertToPDF(deck []byte) ([]byte, error)
}

// libreOfficeConverter shells out to a headless soffice process, using
// uniquely named scratch files so concurrent requests cannot collide.
type libreOfficeConverter struct {
	binaryPath string // explicit override; PATH is searched when empty
	scratchDir string // defaults to os.TempDir when empty
	timeout    time.Duration
}

// NewLibreOfficeConverter creates a Converter backed by LibreOffice.
func NewLibreOfficeConverter(cfg *config.Config) Converter {
	return &libreOfficeConverter{
		binaryPath: cfg.LibreOfficePath,
		timeout:    cfg.ConvertTimeout,
	}
}

func (c *libreOfficeConverter) ConvertToPDF(deck []byte) ([]byte, error) {
	dir := c.scratchDir
	if dir == "" {
		dir = os.TempDir()
	}

	inPath := filepath.Join(dir, "report_"+uuid.NewString()+".pptx")
	outPath := strings.TrimSuffix(inPath, ".pptx") + ".pdf"

	if err := os.WriteFile(inPath, deck, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write scratch deck: %w", err)
	}
	defer func() {
		// Best-effort cleanup; removal failures are never surfaced.
		_ = os.Remove(inPath)
		_ = os.Remove(outPath)
	}()

	bin, err := c.resolveBinary()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, bin, "--headless", "--convert-to", "pdf", "--outdir", dir, inPath)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("libreoffice conversion timed out after %s", c.timeout)
		}
		detail := stderr.String()
		if detail == "" {
			detail = stdout.String()
		}
		return nil, fmt.Errorf("libreoffice conversion failed: %w: %s", err, detail)
	}

	pdf, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("converted PDF not found after libreoffice run: %w", err)
	}
	return pdf, nil
}

// resolveBinary returns the soffice executable: the explicit override when
// set, else the first of soffice/soffice.exe found on PATH.
func (c *libreOfficeConverter) resolveBinary() (string, error) {
	if c.binaryPath != "" {
		return c.binaryPath, nil
	}
	if p, err := exec.LookPath("soffice"); err == nil {
		return p, nil
	}
	if p, err := exec.LookPath("soffice.exe"); err == nil {
		return p, nil
	}
	return "", fmt.Errorf("LibreOffice 'soffice' not found in PATH; set LIBREOFFICE_PATH or install LibreOffice")
}
