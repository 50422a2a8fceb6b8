package application

import (
	"fmt"
	"time"

	"github.com/abdidvp/stockroom/internal/domain"
	"github.com/sirupsen/logrus"
)

// Session is one live in-memory catalog together with the services that
// drive it. Presentation adapters hold a Session for their lifetime.
type Session struct {
	Manager *CatalogManager
	Stock   *StockService
}

// SessionOption customizes NewSession.
type SessionOption func(*sessionOptions)

type sessionOptions struct {
	now func() time.Time
}

// WithSessionClock replaces time.Now for delivery dates.
func WithSessionClock(now func() time.Time) SessionOption {
	return func(o *sessionOptions) { o.now = now }
}

// NewSession builds a catalog from cfg and creates the seed products in order.
func NewSession(cfg domain.StoreConfig, log logrus.FieldLogger, opts ...SessionOption) (*Session, error) {
	o := sessionOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	catalog := domain.NewCatalog(
		domain.WithLowStockThreshold(cfg.LowStockThreshold),
		domain.WithDeliveryLeadDays(cfg.DeliveryLeadDays),
		domain.WithClock(o.now),
	)
	mgr := NewCatalogManager(catalog, log)

	for i, s := range cfg.Seed {
		price, err := s.ParsedPrice()
		if err != nil {
			return nil, fmt.Errorf("seed[%d]: %w", i, err)
		}
		t, ok := domain.ParseProductType(s.Type)
		if !ok {
			return nil, fmt.Errorf("seed[%d]: unknown type %q", i, s.Type)
		}
		if _, err := mgr.CreateProduct(s.Name, s.Quantity, price, t); err != nil {
			return nil, fmt.Errorf("seed[%d]: %w", i, err)
		}
	}

	log.WithFields(logrus.Fields{
		"products":    catalog.Len(),
		"total_stock": catalog.TotalStock(),
	}).Debug("catalog seeded")

	return &Session{
		Manager: mgr,
		Stock:   NewStockService(catalog, log),
	}, nil
}
