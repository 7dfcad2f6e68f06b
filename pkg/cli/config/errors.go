package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrConfigNotFound      = goerr.New("configuration file not found")
	ErrInvalidConfig       = goerr.New("invalid configuration")
	ErrDuplicateTemplateID = goerr.New("duplicate template ID")
	ErrDuplicateCategoryID = goerr.New("duplicate category ID")
	ErrMissingName         = goerr.New("name is required")
)

// Context keys for error values
const (
	ConfigPathKey = "config_path"
	TemplateIDKey = "template_id"
	CategoryIDKey = "category_id"
)
