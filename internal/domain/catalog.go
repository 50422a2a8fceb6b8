package domain

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	DefaultLowStockThreshold = 10
	DefaultDeliveryLeadDays  = 7
)

const deliveryDateLayout = "2006-01-02"

// Procurement is the record of a successful stock deduction.
type Procurement struct {
	OrderID      string    `json:"order_id"`
	ProductID    string    `json:"product_id"`
	ProductName  string    `json:"product_name"`
	Quantity     int       `json:"quantity"`
	Mode         string    `json:"mode,omitempty"`
	DeliveryDate time.Time `json:"delivery_date"`
}

// Message is the confirmation shown to the user.
func (p Procurement) Message() string {
	return fmt.Sprintf("Procured %d of %s\nExpected Delivery Date: %s",
		p.Quantity, p.ProductName, p.DeliveryDate.Format(deliveryDateLayout))
}

// Statistics summarizes the catalog.
type Statistics struct {
	TotalStock int `json:"total_stock"`
	Goods      int `json:"goods"`
	Cargo      int `json:"cargo"`
}

func (s Statistics) String() string {
	return fmt.Sprintf("Total Products: %d\nGoods: %d\nCargo: %d", s.TotalStock, s.Goods, s.Cargo)
}

// LowStockMessage is the notification text recorded for a product name.
func LowStockMessage(name string) string {
	return "Low stock notification for " + name
}

// CatalogOption customizes a Catalog.
type CatalogOption func(*Catalog)

// WithLowStockThreshold sets the quantity below which a product is flagged.
func WithLowStockThreshold(n int) CatalogOption {
	return func(c *Catalog) { c.threshold = n }
}

// WithDeliveryLeadDays sets how many calendar days a procurement takes.
func WithDeliveryLeadDays(days int) CatalogOption {
	return func(c *Catalog) { c.leadDays = days }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) CatalogOption {
	return func(c *Catalog) { c.now = now }
}

// Catalog owns products keyed by id along with the running stock total and
// the low-stock notifications. All methods are safe for concurrent use.
type Catalog struct {
	mu         sync.RWMutex
	products   *orderedmap.OrderedMap[string, *Product]
	lowStock   *orderedmap.OrderedMap[string, struct{}]
	totalStock int

	threshold int
	leadDays  int
	now       func() time.Time
}

func NewCatalog(opts ...CatalogOption) *Catalog {
	c := &Catalog{
		products:  orderedmap.New[string, *Product](),
		lowStock:  orderedmap.New[string, struct{}](),
		threshold: DefaultLowStockThreshold,
		leadDays:  DefaultDeliveryLeadDays,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddProduct inserts p under its id and adds its quantity to the total.
// An existing entry with the same id is replaced.
func (c *Catalog) AddProduct(p Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := p
	if old, ok := c.products.Set(p.ID, &stored); ok {
		c.totalStock -= old.Quantity
	}
	c.totalStock += p.Quantity
}

// Get returns a copy of the product stored under id.
func (c *Catalog) Get(id string) (Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.products.Get(id)
	if !ok {
		return Product{}, false
	}
	return *p, true
}

// FindByName looks a product up by name, ignoring case.
func (c *Catalog) FindByName(name string) (Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for pair := c.products.Oldest(); pair != nil; pair = pair.Next() {
		if strings.EqualFold(pair.Value.Name, name) {
			return *pair.Value, true
		}
	}
	return Product{}, false
}

// All returns copies of every product in insertion order.
func (c *Catalog) All() []Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Product, 0, c.products.Len())
	for pair := c.products.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, *pair.Value)
	}
	return out
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.products.Len()
}

// LowStockThreshold is the quantity below which products get flagged.
func (c *Catalog) LowStockThreshold() int {
	return c.threshold
}

func (c *Catalog) TotalStock() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.totalStock
}

// Procure deducts qty from the product's stock and returns the order record.
// mode is recorded on the result but does not change the outcome. A failed
// procurement leaves the catalog untouched.
func (c *Catalog) Procure(id string, qty int, mode string) (Procurement, error) {
	if id == "" {
		return Procurement{}, &NotFoundError{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.products.Get(id)
	if !ok || p.Name == "" {
		return Procurement{}, &NotFoundError{ID: id}
	}
	if qty < 0 {
		return Procurement{}, &ValidationError{Field: "quantity", Message: "Please enter a valid quantity."}
	}
	if p.Quantity == 0 {
		return Procurement{}, &OutOfStockError{Name: p.Name}
	}
	if qty > p.Quantity {
		return Procurement{}, &InsufficientStockError{Name: p.Name, Requested: qty, Available: p.Quantity}
	}

	p.Quantity -= qty
	c.totalStock -= qty
	c.checkLowStockLocked(*p)

	return Procurement{
		OrderID:      uuid.NewString(),
		ProductID:    p.ID,
		ProductName:  p.Name,
		Quantity:     qty,
		Mode:         mode,
		DeliveryDate: c.deliveryDate(),
	}, nil
}

// Apply updates the product stored under id. Quantity changes move the total
// by the difference and re-evaluate the low-stock flag.
func (c *Catalog) Apply(id string, patch ProductPatch) (Product, error) {
	if err := patch.Validate(); err != nil {
		return Product{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.products.Get(id)
	if !ok {
		return Product{}, &NotFoundError{ID: id}
	}

	if patch.Name != nil && *patch.Name != "" {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.Quantity != nil {
		c.totalStock += *patch.Quantity - p.Quantity
		p.Quantity = *patch.Quantity
		c.checkLowStockLocked(*p)
	}
	return *p, nil
}

// CheckLowStock flags p when its quantity is under the threshold. It reports
// whether a new notification was recorded.
func (c *Catalog) CheckLowStock(p Product) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.checkLowStockLocked(p)
}

func (c *Catalog) checkLowStockLocked(p Product) bool {
	if p.Quantity >= c.threshold {
		return false
	}
	msg := LowStockMessage(p.Name)
	if _, seen := c.lowStock.Get(msg); seen {
		return false
	}
	c.lowStock.Set(msg, struct{}{})
	return true
}

// LowStockNotifications returns the recorded notifications, oldest first.
func (c *Catalog) LowStockNotifications() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, 0, c.lowStock.Len())
	for pair := c.lowStock.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// CountByType counts products carrying the given tag.
func (c *Catalog) CountByType(t ProductType) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.countByTypeLocked(t)
}

func (c *Catalog) countByTypeLocked(t ProductType) int {
	n := 0
	for pair := c.products.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Type == t {
			n++
		}
	}
	return n
}

// Statistics snapshots the total and the per-type counts under one lock.
func (c *Catalog) Statistics() Statistics {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Statistics{
		TotalStock: c.totalStock,
		Goods:      c.countByTypeLocked(ProductTypeGood),
		Cargo:      c.countByTypeLocked(ProductTypeCargo),
	}
}

func (c *Catalog) deliveryDate() time.Time {
	now := c.now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return day.AddDate(0, 0, c.leadDays)
}
