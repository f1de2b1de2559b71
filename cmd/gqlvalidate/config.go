package main

import (
	"fmt"
	"io/ioutil"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

// config is the CLI's YAML-loaded run configuration (SPEC_FULL.md §4).
type config struct {
	SchemaPath   string `yaml:"schema_path" validate:"required"`
	DocumentPath string `yaml:"document_path" validate:"required"`
	LogLevel     string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	MaxSelectionDepth int `yaml:"max_selection_depth" validate:"gte=0"`
}

func loadConfig(path string) (*config, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var c config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := configValidator().Struct(&c); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &c, nil
}

var (
	validatorInstance *validator.Validate
	validatorOnce     sync.Once
)

// configValidator mirrors the teacher's schemabuilder/validator.go
// sync.Once-guarded singleton accessor, applied here to the CLI's own
// config struct rather than a schema-builder's field tags.
func configValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInstance = validator.New()
	})
	return validatorInstance
}
