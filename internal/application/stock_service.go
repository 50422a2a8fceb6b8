package application

import (
	"strings"

	"github.com/abdidvp/stockroom/internal/domain"
	"github.com/sirupsen/logrus"
)

// StockService handles procurement requests coming from a presentation layer.
type StockService struct {
	catalog *domain.Catalog
	log     logrus.FieldLogger
}

func NewStockService(catalog *domain.Catalog, log logrus.FieldLogger) *StockService {
	return &StockService{catalog: catalog, log: log}
}

// Procure parses the raw quantity and deducts it from the product's stock.
func (s *StockService) Procure(id, qtyText, mode string) (domain.Procurement, error) {
	qty, err := ParseQuantity(qtyText)
	if err != nil {
		return domain.Procurement{}, &domain.ValidationError{Field: "quantity", Message: "Please enter a valid quantity."}
	}
	return s.ProcureQuantity(id, qty, mode)
}

// ProcureQuantity is Procure for callers that already hold an integer.
func (s *StockService) ProcureQuantity(id string, qty int, mode string) (domain.Procurement, error) {
	res, err := s.catalog.Procure(id, qty, strings.ToLower(strings.TrimSpace(mode)))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"product_id": id,
			"quantity":   qty,
		}).WithError(err).Warn("procurement rejected")
		return domain.Procurement{}, err
	}

	s.log.WithFields(logrus.Fields{
		"order_id":      res.OrderID,
		"product_id":    res.ProductID,
		"quantity":      res.Quantity,
		"delivery_date": res.DeliveryDate.Format("2006-01-02"),
	}).Info("procurement placed")
	return res, nil
}

func (s *StockService) Products() []domain.Product {
	return s.catalog.All()
}

func (s *StockService) Product(id string) (domain.Product, error) {
	p, ok := s.catalog.Get(id)
	if !ok {
		return domain.Product{}, &domain.NotFoundError{ID: id}
	}
	return p, nil
}

func (s *StockService) Statistics() domain.Statistics {
	return s.catalog.Statistics()
}

func (s *StockService) LowStockThreshold() int {
	return s.catalog.LowStockThreshold()
}

func (s *StockService) LowStockNotifications() []string {
	return s.catalog.LowStockNotifications()
}
