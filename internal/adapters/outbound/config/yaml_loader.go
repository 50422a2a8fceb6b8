package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdidvp/stockroom/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".stockroom.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .stockroom.yaml and
// then applying environment overrides.
type YAMLLoader struct {
	lookupEnv func(string) (string, bool)
}

var _ domain.ConfigLoader = (*YAMLLoader)(nil)

// New creates a YAMLLoader that reads the process environment.
func New() *YAMLLoader { return &YAMLLoader{lookupEnv: os.LookupEnv} }

// Load reads .stockroom.yaml from dir.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(dir string) (domain.StoreConfig, error) {
	cfg, err := l.loadFile(dir)
	if err != nil {
		return domain.StoreConfig{}, err
	}

	cfg, err = applyEnv(cfg, dir, l.lookupEnv)
	if err != nil {
		return domain.StoreConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return domain.StoreConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (l *YAMLLoader) loadFile(dir string) (domain.StoreConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.StoreConfig{}, err
	}

	var cfg domain.StoreConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.StoreConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	// Validate before merging so typos in the raw file are reported.
	if err := cfg.Validate(); err != nil {
		return domain.StoreConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return mergeConfig(domain.DefaultConfig(), cfg), nil
}

// mergeConfig overlays explicit values on top of the defaults.
// A seed list that is present, even empty, replaces the default seed.
func mergeConfig(base, override domain.StoreConfig) domain.StoreConfig {
	result := base

	if override.LowStockThreshold != 0 {
		result.LowStockThreshold = override.LowStockThreshold
	}
	if override.DeliveryLeadDays != 0 {
		result.DeliveryLeadDays = override.DeliveryLeadDays
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.Seed != nil {
		result.Seed = override.Seed
	}

	return result
}
