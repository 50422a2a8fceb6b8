package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ValidLogLevels enumerates accepted log_level values.
var ValidLogLevels = []string{"trace", "debug", "info", "warn", "warning", "error", "fatal", "panic"}

// StoreConfig holds the settings loaded from .stockroom.yaml.
type StoreConfig struct {
	LowStockThreshold int           `yaml:"low_stock_threshold" json:"low_stock_threshold,omitempty"`
	DeliveryLeadDays  int           `yaml:"delivery_lead_days"  json:"delivery_lead_days,omitempty"`
	LogLevel          string        `yaml:"log_level"           json:"log_level,omitempty"`
	Seed              []SeedProduct `yaml:"seed"                json:"seed,omitempty"`
}

// SeedProduct is a product created when the catalog starts. Price is kept as
// text so that YAML floats never round it.
type SeedProduct struct {
	Name     string `yaml:"name"     json:"name"`
	Quantity int    `yaml:"quantity" json:"quantity"`
	Price    string `yaml:"price"    json:"price"`
	Type     string `yaml:"type"     json:"type"`
}

// DefaultSeed is the catalog every fresh process starts with.
func DefaultSeed() []SeedProduct {
	return []SeedProduct{
		{Name: "Laptop", Quantity: 20, Price: "1500.00", Type: string(ProductTypeGood)},
		{Name: "Container", Quantity: 5, Price: "5000.00", Type: string(ProductTypeCargo)},
		{Name: "Tablet", Quantity: 15, Price: "300.00", Type: string(ProductTypeGood)},
		{Name: "Smartphone", Quantity: 25, Price: "800.00", Type: string(ProductTypeGood)},
	}
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() StoreConfig {
	return StoreConfig{
		LowStockThreshold: DefaultLowStockThreshold,
		DeliveryLeadDays:  DefaultDeliveryLeadDays,
		LogLevel:          "info",
		Seed:              DefaultSeed(),
	}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c StoreConfig) Validate() error {
	if c.LowStockThreshold < 0 {
		return fmt.Errorf("low_stock_threshold must not be negative, got %d", c.LowStockThreshold)
	}
	if c.DeliveryLeadDays < 0 {
		return fmt.Errorf("delivery_lead_days must not be negative, got %d", c.DeliveryLeadDays)
	}
	if c.LogLevel != "" && !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("unknown log_level %q, valid: %s", c.LogLevel, strings.Join(ValidLogLevels, ", "))
	}
	for i, s := range c.Seed {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("seed[%d]: %w", i, err)
		}
	}
	return nil
}

// Validate checks a single seed entry.
func (s SeedProduct) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if s.Quantity < 0 {
		return fmt.Errorf("%s: quantity must not be negative", s.Name)
	}
	if _, err := s.ParsedPrice(); err != nil {
		return fmt.Errorf("%s: %w", s.Name, err)
	}
	if _, ok := ParseProductType(s.Type); !ok {
		return fmt.Errorf("%s: unknown type %q, valid: good, cargo", s.Name, s.Type)
	}
	return nil
}

// ParsedPrice converts Price to a decimal. An empty price is zero.
func (s SeedProduct) ParsedPrice() (decimal.Decimal, error) {
	if strings.TrimSpace(s.Price) == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s.Price))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price %q", s.Price)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("price must not be negative")
	}
	return d, nil
}

func isValidLogLevel(level string) bool {
	for _, l := range ValidLogLevels {
		if strings.EqualFold(l, level) {
			return true
		}
	}
	return false
}
