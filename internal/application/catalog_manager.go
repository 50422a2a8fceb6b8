package application

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/abdidvp/stockroom/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const unrecognizedModeWarning = "Warning: Unrecognized shipment mode. Type will not be set."

// ProductUpdate carries the optional fields of an update request.
// Nil pointers and empty strings mean "leave unchanged".
type ProductUpdate struct {
	Name     string
	Price    *decimal.Decimal
	Quantity *int
	Mode     string
}

// UpdateResult describes what UpdateProduct changed.
type UpdateResult struct {
	Product  domain.Product     `json:"product"`
	NewName  string             `json:"new_name,omitempty"`
	NewPrice *decimal.Decimal   `json:"new_price,omitempty"`
	Quantity *int               `json:"quantity,omitempty"`
	NewType  domain.ProductType `json:"new_type,omitempty"`
	Warnings []string           `json:"warnings,omitempty"`
}

// Summary renders the confirmation line shown after an update.
func (r UpdateResult) Summary() string {
	qty := -1
	if r.Quantity != nil {
		qty = *r.Quantity
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Updated Product ID: %s, Quantity: %d", r.Product.ID, qty)
	if r.NewName != "" {
		b.WriteString(", New Name: " + r.NewName)
	}
	if r.NewPrice != nil {
		b.WriteString(", New Price: " + r.NewPrice.StringFixed(2))
	}
	if r.NewType != "" {
		b.WriteString(", New Type: " + string(r.NewType))
	}
	b.WriteString(".")
	return b.String()
}

// CatalogManager runs the create and update workflows on top of a Catalog.
type CatalogManager struct {
	mu      sync.Mutex
	catalog *domain.Catalog
	nextID  int
	log     logrus.FieldLogger
}

func NewCatalogManager(catalog *domain.Catalog, log logrus.FieldLogger) *CatalogManager {
	return &CatalogManager{catalog: catalog, nextID: 1, log: log}
}

// Catalog exposes the managed catalog for queries and procurement.
func (m *CatalogManager) Catalog() *domain.Catalog {
	return m.catalog
}

// CreateProduct adds a new product and returns its id. Names are unique
// ignoring case. The id counter only moves when a product is created.
func (m *CatalogManager) CreateProduct(name string, qty int, price decimal.Decimal, t domain.ProductType) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", &domain.ValidationError{Field: "name", Message: "Enter a product name."}
	}
	if qty < 0 {
		return "", &domain.ValidationError{Field: "quantity", Message: "Quantity must not be negative."}
	}
	if price.IsNegative() {
		return "", &domain.ValidationError{Field: "price", Message: "Price must not be negative."}
	}
	if _, ok := domain.ParseProductType(string(t)); !ok {
		return "", &domain.ValidationError{Field: "type", Message: "Unknown product type: " + string(t)}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.catalog.FindByName(name); exists {
		m.log.WithField("name", name).Warn("duplicate product rejected")
		return "", &domain.DuplicateNameError{Name: name}
	}

	id := strconv.Itoa(m.nextID)
	m.nextID++
	m.catalog.AddProduct(domain.Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Quantity: qty,
		Type:     t,
	})

	m.log.WithFields(logrus.Fields{
		"product_id": id,
		"name":       name,
		"quantity":   qty,
		"type":       t,
	}).Info("product created")
	return id, nil
}

// RestockExisting sets the product's quantity to qty.
func (m *CatalogManager) RestockExisting(id string, qty int) (domain.Product, error) {
	p, err := m.catalog.Apply(id, domain.ProductPatch{Quantity: &qty})
	if err != nil {
		m.log.WithField("product_id", id).WithError(err).Warn("restock rejected")
		return domain.Product{}, err
	}
	m.log.WithFields(logrus.Fields{"product_id": id, "quantity": qty}).Info("product restocked")
	return p, nil
}

// UpdateProduct applies a partial update. An unrecognized mode leaves the
// type alone and is reported as a warning rather than an error.
func (m *CatalogManager) UpdateProduct(id string, u ProductUpdate) (UpdateResult, error) {
	if _, ok := m.catalog.Get(id); !ok {
		return UpdateResult{}, &domain.NotFoundError{ID: id}
	}

	var (
		patch  domain.ProductPatch
		result UpdateResult
	)
	if name := strings.TrimSpace(u.Name); name != "" {
		patch.Name = &name
		result.NewName = name
	}
	if u.Price != nil {
		patch.Price = u.Price
		result.NewPrice = u.Price
	}
	if u.Quantity != nil {
		patch.Quantity = u.Quantity
		result.Quantity = u.Quantity
	}
	if mode := strings.TrimSpace(u.Mode); mode != "" {
		if sm, ok := domain.ParseShipmentMode(mode); ok {
			t := sm.ProductType()
			patch.Type = &t
			result.NewType = t
		} else {
			result.Warnings = append(result.Warnings, unrecognizedModeWarning)
		}
	}

	p, err := m.catalog.Apply(id, patch)
	if err != nil {
		m.log.WithField("product_id", id).WithError(err).Warn("update rejected")
		return UpdateResult{}, err
	}
	result.Product = p

	m.log.WithFields(logrus.Fields{
		"product_id": id,
		"name":       p.Name,
		"quantity":   p.Quantity,
		"type":       p.Type,
		"warnings":   len(result.Warnings),
	}).Info("product updated")
	return result, nil
}
