package config

import (
	"os"
	"time"
)

// Config is the application configuration, resolved once at startup and
// passed into the handlers rather than read from the environment per request.
type Config struct {
	Port string

	// Template source. When TemplateURL is set the template is fetched
	// remotely; otherwise TemplatePath (if set and existing) overrides
	// DefaultTemplatePath on the local filesystem.
	TemplateURL         string
	TemplatePath        string
	DefaultTemplatePath string

	// LibreOfficePath overrides PATH-based resolution of the soffice binary.
	LibreOfficePath string
	ConvertTimeout  time.Duration

	LogLevel  string
	LogFormat string
}

// Load builds the Config from environment variables and applies defaults.
func Load() *Config {
	cfg := &Config{
		Port:                os.Getenv("PORT"),
		TemplateURL:         os.Getenv("PPTX_TEMPLATE_URL"),
		TemplatePath:        os.Getenv("PPTX_TEMPLATE_PATH"),
		DefaultTemplatePath: "public/templates/report_template.pptx",
		LibreOfficePath:     os.Getenv("LIBREOFFICE_PATH"),
		LogLevel:            os.Getenv("LOG_LEVEL"),
		LogFormat:           os.Getenv("LOG_FORMAT"),
	}

	applyDefaults(cfg)
	return cfg
}

// applyDefaults sets default values for optional configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Port == "" {
		cfg.Port = "8000"
	}
	if cfg.ConvertTimeout == 0 {
		cfg.ConvertTimeout = 60 * time.Second
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "json"
	}
}

// RemoteTemplateConfigured reports whether the template is fetched from a URL.
func (c *Config) RemoteTemplateConfigured() bool {
	return c.TemplateURL != ""
}
