package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/grc-lab/riskreport/pkg/cli"
)

func TestRun_ValidateCommand_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")
	content := `
[[template]]
id = "risk-assessment"
name = "Risk Assessment Report"
description = "Comprehensive evaluation of organizational risks"
type = "risk-assessment"

[[template]]
id = "vendor-risk"
name = "Vendor Risk Assessment"
type = "vendor-risk"

[[category]]
id = "cybersecurity"
name = "Cybersecurity"

[[category]]
id = "compliance"
name = "Compliance"
`
	err := os.WriteFile(configPath, []byte(content), 0o600)
	gt.NoError(t, err).Required()

	err = cli.Run(context.Background(), []string{"riskreport", "validate", "--config", configPath}, "test")
	gt.NoError(t, err)
}

func TestRun_ValidateCommand_InvalidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	// Invalid: template with unknown report type
	content := `
[[template]]
id = "custom"
name = "Custom"
type = "not-a-type"
`
	err := os.WriteFile(configPath, []byte(content), 0o600)
	gt.NoError(t, err).Required()

	err = cli.Run(context.Background(), []string{"riskreport", "validate", "--config", configPath}, "test")
	gt.Error(t, err)
}

func TestRun_ValidateCommand_BuiltinDefaults(t *testing.T) {
	err := cli.Run(context.Background(), []string{"riskreport", "validate"}, "test")
	gt.NoError(t, err)
}

func TestRun_ValidateCommand_MissingFile(t *testing.T) {
	err := cli.Run(context.Background(), []string{"riskreport", "validate", "--config", "/no/such/file.toml"}, "test")
	gt.Error(t, err)
}
