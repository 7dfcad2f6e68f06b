package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	domainConfig "github.com/grc-lab/riskreport/pkg/domain/model/config"
	"github.com/grc-lab/riskreport/pkg/domain/types"
)

// AppConfig represents the application configuration
type AppConfig struct {
	configPath string

	Templates  []Template `toml:"template"`
	Categories []Category `toml:"category"`
}

// Template represents a report template configuration
type Template struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Type        string `toml:"type"`
}

// Validate checks if the Template is valid
func (t *Template) Validate() error {
	if t.ID == "" {
		return goerr.Wrap(ErrInvalidConfig, "template ID is required")
	}
	if t.Name == "" {
		return goerr.Wrap(ErrMissingName, "template name is required", goerr.V(TemplateIDKey, t.ID))
	}
	if _, err := types.ParseReportType(t.Type); err != nil {
		return goerr.Wrap(ErrInvalidConfig, "unknown template type", goerr.V(TemplateIDKey, t.ID), goerr.V("type", t.Type))
	}
	return nil
}

// Category represents a risk category configuration
type Category struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

// Validate checks if the Category is valid
func (c *Category) Validate() error {
	if _, err := types.ParseRiskCategory(c.ID); err != nil {
		return goerr.Wrap(ErrInvalidConfig, "unknown category ID", goerr.V(CategoryIDKey, c.ID))
	}
	if c.Name == "" {
		return goerr.Wrap(ErrMissingName, "category name is required", goerr.V(CategoryIDKey, c.ID))
	}
	return nil
}

// Validate checks if the AppConfig is valid
func (a *AppConfig) Validate() error {
	templateIDs := make(map[string]bool)
	for _, tpl := range a.Templates {
		if err := tpl.Validate(); err != nil {
			return goerr.Wrap(err, "invalid template")
		}
		if templateIDs[tpl.ID] {
			return goerr.Wrap(ErrDuplicateTemplateID, "duplicate template", goerr.V(TemplateIDKey, tpl.ID))
		}
		templateIDs[tpl.ID] = true
	}

	categoryIDs := make(map[string]bool)
	for _, cat := range a.Categories {
		if err := cat.Validate(); err != nil {
			return goerr.Wrap(err, "invalid category")
		}
		if categoryIDs[cat.ID] {
			return goerr.Wrap(ErrDuplicateCategoryID, "duplicate category", goerr.V(CategoryIDKey, cat.ID))
		}
		categoryIDs[cat.ID] = true
	}

	return nil
}

// Flags returns CLI flags for application configuration
func (a *AppConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to TOML configuration file (built-in templates are used if omitted)",
			Sources:     cli.EnvVars("RISKREPORT_CONFIG"),
			Destination: &a.configPath,
		},
	}
}

// Configure loads the configuration file if one is given, falling back
// to the built-in registry otherwise, and returns the domain registry.
func (a *AppConfig) Configure() (*domainConfig.AppConfig, error) {
	if a.configPath == "" {
		return domainConfig.DefaultAppConfig(), nil
	}

	loaded, err := LoadAppConfiguration(a.configPath)
	if err != nil {
		return nil, err
	}
	a.Templates = loaded.Templates
	a.Categories = loaded.Categories

	return a.ToDomainAppConfig(), nil
}

// LoadAppConfiguration loads the application configuration from a TOML file
func LoadAppConfiguration(path string) (*AppConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(ErrConfigNotFound, "failed to read config file", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V(ConfigPathKey, path))
	}

	var config AppConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML config", goerr.V(ConfigPathKey, path))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed", goerr.V(ConfigPathKey, path))
	}

	return &config, nil
}

// ToDomainAppConfig converts AppConfig to the domain registry
func (a *AppConfig) ToDomainAppConfig() *domainConfig.AppConfig {
	templates := make([]domainConfig.Template, len(a.Templates))
	for i, tpl := range a.Templates {
		templates[i] = domainConfig.Template{
			ID:          tpl.ID,
			Name:        tpl.Name,
			Description: tpl.Description,
			Type:        types.ReportType(tpl.Type),
		}
	}

	categories := make([]domainConfig.Category, len(a.Categories))
	for i, cat := range a.Categories {
		categories[i] = domainConfig.Category{
			ID:          cat.ID,
			Name:        cat.Name,
			Description: cat.Description,
		}
	}

	return &domainConfig.AppConfig{
		Templates:  templates,
		Categories: categories,
	}
}
