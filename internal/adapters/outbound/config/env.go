package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/abdidvp/stockroom/internal/domain"
	"github.com/joho/godotenv"
)

const (
	envFileName = ".env"

	EnvLowStockThreshold = "STOCKROOM_LOW_STOCK_THRESHOLD"
	EnvDeliveryLeadDays  = "STOCKROOM_DELIVERY_LEAD_DAYS"
	EnvLogLevel          = "STOCKROOM_LOG_LEVEL"
)

// applyEnv overrides cfg from dir/.env and then from the process
// environment, which wins.
func applyEnv(cfg domain.StoreConfig, dir string, lookup func(string) (string, bool)) (domain.StoreConfig, error) {
	dotenv, err := godotenv.Read(filepath.Join(dir, envFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return domain.StoreConfig{}, fmt.Errorf("reading %s: %w", envFileName, err)
	}

	get := func(key string) (string, bool) {
		if v, ok := lookup(key); ok && v != "" {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok && v != ""
	}

	if v, ok := get(EnvLowStockThreshold); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return domain.StoreConfig{}, fmt.Errorf("%s: %w", EnvLowStockThreshold, err)
		}
		cfg.LowStockThreshold = n
	}
	if v, ok := get(EnvDeliveryLeadDays); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return domain.StoreConfig{}, fmt.Errorf("%s: %w", EnvDeliveryLeadDays, err)
		}
		cfg.DeliveryLeadDays = n
	}
	if v, ok := get(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	return cfg, nil
}
