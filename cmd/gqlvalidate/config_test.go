package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "gqlvalidate.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigParsesAndValidates(t *testing.T) {
	path := writeConfig(t, "schema_path: schema.json\ndocument_path: doc.json\nlog_level: info\n")
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "schema.json", cfg.SchemaPath)
	assert.Equal(t, "doc.json", cfg.DocumentPath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigRejectsMissingRequiredFields(t *testing.T) {
	path := writeConfig(t, "log_level: info\n")
	_, err := loadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigRejectsUnknownLogLevel(t *testing.T) {
	path := writeConfig(t, "schema_path: schema.json\ndocument_path: doc.json\nlog_level: verbose\n")
	_, err := loadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigRejectsMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfigValidatorIsASingleton(t *testing.T) {
	assert.Same(t, configValidator(), configValidator())
}
