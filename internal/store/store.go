package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemStore holds the catalog and all order data for the lifetime of the
// process. Categories and products are seeded at construction; orders and
// order items accumulate as checkouts happen. Nothing survives a restart.
//
// gin handles requests on separate goroutines, so every collection access
// goes through the one RWMutex.
type MemStore struct {
	mu         sync.RWMutex
	categories map[string]Category
	products   map[string]Product
	orders     map[string]Order
	orderItems map[string]OrderItem
	nowFunc    func() time.Time
}

// New creates a MemStore pre-populated with the static catalog.
func New() *MemStore {
	s := &MemStore{
		categories: map[string]Category{},
		products:   map[string]Product{},
		orders:     map[string]Order{},
		orderItems: map[string]OrderItem{},
		nowFunc:    time.Now,
	}
	s.seed()
	return s
}

// Categories returns all categories, in no particular order.
func (s *MemStore) Categories() []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	return out
}

// Category returns the category with the given id, or nil if unknown.
func (s *MemStore) Category(id string) *Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[id]
	if !ok {
		return nil
	}
	return &c
}

// CreateCategory stores a new category, assigning its id and timestamp.
func (s *MemStore) CreateCategory(c Category) Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = uuid.NewString()
	c.CreatedAt = s.nowFunc()
	s.categories[c.ID] = c
	return c
}

// Products returns the full product collection, in no particular order.
func (s *MemStore) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	return out
}

// Product returns the product with the given id, or nil if unknown.
func (s *MemStore) Product(id string) *Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return nil
	}
	return &p
}

// ProductsByCategory returns products whose category matches categoryID.
func (s *MemStore) ProductsByCategory(categoryID string) []Product {
	return s.filterProducts(func(p Product) bool { return p.CategoryID == categoryID })
}

// FeaturedProducts returns products flagged as featured.
func (s *MemStore) FeaturedProducts() []Product {
	return s.filterProducts(func(p Product) bool { return p.Featured })
}

// ProductsOnSale returns products with a discount applied.
func (s *MemStore) ProductsOnSale() []Product {
	return s.filterProducts(func(p Product) bool { return p.Discount > 0 })
}

func (s *MemStore) filterProducts(keep func(Product) bool) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Product
	for _, p := range s.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// CreateProduct stores a new product, assigning its id and timestamp.
// InStock defaults to true unless the caller marked it out of stock.
func (s *MemStore) CreateProduct(p Product) Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = uuid.NewString()
	p.CreatedAt = s.nowFunc()
	if p.Images == nil {
		p.Images = []string{}
	}
	s.products[p.ID] = p
	return p
}

// Orders returns all placed orders, in no particular order.
func (s *MemStore) Orders() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	return out
}

// Order returns the order with the given id, or nil if unknown.
func (s *MemStore) Order(id string) *Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return nil
	}
	return &o
}

// OrderByNumber returns the order with the given human-readable order
// number, or nil if no order carries it.
func (s *MemStore) OrderByNumber(orderNumber string) *Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.OrderNumber == orderNumber {
			return &o
		}
	}
	return nil
}

// CreateOrderWithItems stores an order and its line items under a single
// lock hold so a checkout is never partially visible. Ids and the creation
// timestamp are assigned here; each item is stamped with the new order id.
func (s *MemStore) CreateOrderWithItems(o Order, items []OrderItem) (Order, []OrderItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o.ID = uuid.NewString()
	o.CreatedAt = s.nowFunc()
	if o.PaymentStatus == "" {
		o.PaymentStatus = PaymentStatusPending
	}
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	s.orders[o.ID] = o

	stored := make([]OrderItem, len(items))
	for i, it := range items {
		it.ID = uuid.NewString()
		it.OrderID = o.ID
		s.orderItems[it.ID] = it
		stored[i] = it
	}
	return o, stored
}

// OrderItems returns the line items belonging to an order.
func (s *MemStore) OrderItems(orderID string) []OrderItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []OrderItem
	for _, it := range s.orderItems {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	return out
}

// UpdateOrderPaymentStatus sets the payment status of an order and, when
// externalRef is non-empty, records the external payment reference. Returns
// nil if the order id is unknown.
func (s *MemStore) UpdateOrderPaymentStatus(id, status, externalRef string) *Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil
	}
	o.PaymentStatus = status
	if externalRef != "" {
		o.StripePaymentIntentID = externalRef
	}
	s.orders[id] = o
	return &o
}
