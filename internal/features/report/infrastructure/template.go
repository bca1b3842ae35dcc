package infrastructure

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"pptx-report-service/internal/config"
)

// TemplateLoader returns the raw bytes of the base slide-deck template.
type TemplateLoader interface {
	Load() ([]byte, error)
}

// NewTemplateLoader picks the remote loader when a template URL is
// configured, falling back to the local filesystem loader otherwise.
func NewTemplateLoader(cfg *config.Config) TemplateLoader {
	if cfg.RemoteTemplateConfigured() {
		return &remoteTemplateLoader{
			url:    cfg.TemplateURL,
			client: &http.Client{Timeout: 20 * time.Second},
		}
	}
	return &localTemplateLoader{
		overridePath: cfg.TemplatePath,
		defaultPath:  cfg.DefaultTemplatePath,
	}
}

// localTemplateLoader reads the template from an override path if present
// and existing, else from the default path.
type localTemplateLoader struct {
	overridePath string
	defaultPath  string
}

func (l *localTemplateLoader) Load() ([]byte, error) {
	if l.overridePath != "" {
		if _, err := os.Stat(l.overridePath); err == nil {
			return os.ReadFile(l.overridePath)
		}
	}
	if _, err := os.Stat(l.defaultPath); err != nil {
		return nil, fmt.Errorf("template not found: %s", l.defaultPath)
	}
	return os.ReadFile(l.defaultPath)
}

// remoteTemplateLoader fetches the template from a configured URL.
type remoteTemplateLoader struct {
	url    string
	client *http.Client
}

func (l *remoteTemplateLoader) Load() ([]byte, error) {
	if l.url == "" {
		return nil, fmt.Errorf("PPTX_TEMPLATE_URL is not set")
	}

	resp, err := l.client.Get(l.url)
	if err != nil {
		return nil, fmt.Errorf("error fetching template: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch template from URL: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading template response: %w", err)
	}
	return body, nil
}
