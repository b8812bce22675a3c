package orders

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/electroshop/go-storefront-api/internal/store"
)

// taxRate is the fixed 10% GST applied to every order subtotal.
var taxRate = decimal.RequireFromString("0.10")

// ShippingInfo carries the validated checkout shipping form.
type ShippingInfo struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	State     string
	Postcode  string
}

// CartLine is one (product, quantity) pair submitted at checkout. Any price
// the client sent alongside is discarded; pricing comes from the catalog.
type CartLine struct {
	ProductID string
	Quantity  int
}

// Notifier receives order-event summaries for the external messaging sink.
// Implementations must not block the caller on network I/O and must swallow
// delivery failures (logging them) rather than return them.
type Notifier interface {
	OrderPlaced(order store.Order, items []store.OrderItem)
	PaymentConfirmed(order store.Order, paymentIntentID string)
}

// Service turns carts into persisted, priced orders.
type Service struct {
	store    *store.MemStore
	notifier Notifier
	nowFunc  func() time.Time
}

// NewService creates a Service backed by the given store and notifier.
func NewService(st *store.MemStore, notifier Notifier) *Service {
	return &Service{
		store:    st,
		notifier: notifier,
		nowFunc:  time.Now,
	}
}

// PlaceOrder prices the cart from stored product prices, persists the order
// with one snapshotted item per cart line, and dispatches a notification.
//
// Every line is resolved and the totals computed before anything is written,
// so an invalid cart never leaves a partial order behind. The notification
// is best-effort and cannot fail the placement.
func (s *Service) PlaceOrder(shipping ShippingInfo, lines []CartLine, paymentMethod string) (store.Order, []store.OrderItem, error) {
	if len(lines) == 0 {
		return store.Order{}, nil, ErrEmptyCart
	}

	type pricedLine struct {
		product store.Product
		qty     int
		total   decimal.Decimal
	}

	subtotal := decimal.Zero
	priced := make([]pricedLine, 0, len(lines))
	for _, line := range lines {
		p := s.store.Product(line.ProductID)
		if p == nil {
			return store.Order{}, nil, &UnknownProductError{ProductID: line.ProductID}
		}
		unitPrice, err := decimal.NewFromString(p.Price)
		if err != nil {
			return store.Order{}, nil, fmt.Errorf("parse price for product %s: %w", p.ID, err)
		}
		lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		subtotal = subtotal.Add(lineTotal)
		priced = append(priced, pricedLine{product: *p, qty: line.Quantity, total: lineTotal})
	}

	tax := subtotal.Mul(taxRate).Round(2)
	total := subtotal.Add(tax)

	if paymentMethod == "" {
		paymentMethod = "card"
	}

	order := store.Order{
		OrderNumber:      s.newOrderNumber(),
		CustomerName:     shipping.FirstName + " " + shipping.LastName,
		CustomerEmail:    shipping.Email,
		CustomerPhone:    shipping.Phone,
		ShippingAddress:  shipping.Address,
		ShippingCity:     shipping.City,
		ShippingState:    shipping.State,
		ShippingPostcode: shipping.Postcode,
		Subtotal:         subtotal.StringFixed(2),
		Tax:              tax.StringFixed(2),
		Total:            total.StringFixed(2),
		PaymentMethod:    paymentMethod,
		PaymentStatus:    store.PaymentStatusPending,
		Status:           store.OrderStatusPending,
	}

	items := make([]store.OrderItem, len(priced))
	for i, pl := range priced {
		items[i] = store.OrderItem{
			ProductID:    pl.product.ID,
			ProductName:  pl.product.Name,
			ProductPrice: pl.product.Price,
			Quantity:     pl.qty,
			Total:        pl.total.StringFixed(2),
		}
	}

	order, items = s.store.CreateOrderWithItems(order, items)

	s.notifier.OrderPlaced(order, items)

	return order, items, nil
}

// UpdatePaymentStatus sets the payment status of an existing order. A
// confirmation notification goes out only when the new status is
// "succeeded".
func (s *Service) UpdatePaymentStatus(orderID, status, paymentIntentID string) (store.Order, error) {
	updated := s.store.UpdateOrderPaymentStatus(orderID, status, paymentIntentID)
	if updated == nil {
		return store.Order{}, ErrOrderNotFound
	}
	if status == store.PaymentStatusSucceeded {
		s.notifier.PaymentConfirmed(*updated, paymentIntentID)
	}
	return *updated, nil
}

// newOrderNumber builds a human-readable order number from the current time
// plus a short random suffix. The timestamp alone can collide for two
// checkouts within the same millisecond.
func (s *Service) newOrderNumber() string {
	suffix := make([]byte, 2)
	rand.Read(suffix)
	return fmt.Sprintf("ES-%d-%x", s.nowFunc().UnixMilli(), suffix)
}
