package store

import (
	"strings"
	"sync"
	"testing"
)

func TestSeedCatalog(t *testing.T) {
	s := New()

	if got := len(s.Categories()); got != 6 {
		t.Fatalf("expected 6 seeded categories, got %d", got)
	}
	if got := len(s.Products()); got != 100 {
		t.Fatalf("expected 100 seeded products, got %d", got)
	}
}

func TestFeaturedProducts(t *testing.T) {
	s := New()

	want := map[string]bool{
		"1": true, "2": true, "3": true, "4": true,
		"11": true, "12": true, "13": true,
		"21": true, "22": true, "23": true,
		"27": true, "28": true,
		"32": true, "36": true, "37": true,
	}

	got := s.FeaturedProducts()
	if len(got) != len(want) {
		t.Fatalf("expected %d featured products, got %d", len(want), len(got))
	}
	for _, p := range got {
		if !want[p.ID] {
			t.Errorf("product %s returned as featured but should not be", p.ID)
		}
		if !p.Featured {
			t.Errorf("product %s returned without featured flag set", p.ID)
		}
	}
}

func TestProductsByCategory(t *testing.T) {
	s := New()

	got := s.ProductsByCategory("3")
	if len(got) != 13 {
		t.Fatalf("expected 13 TV products, got %d", len(got))
	}
	for _, p := range got {
		if p.CategoryID != "3" {
			t.Errorf("product %s has category %q, want \"3\"", p.ID, p.CategoryID)
		}
	}

	if got := s.ProductsByCategory("no-such-category"); len(got) != 0 {
		t.Fatalf("expected no products for unknown category, got %d", len(got))
	}
}

func TestSeedNamesKeepInchMarks(t *testing.T) {
	s := New()

	p := s.Product("11")
	if p == nil {
		t.Fatal("expected product 11 to exist")
	}
	if want := `Apple MacBook Pro 14" M4 Chip 512GB (Space Black)`; p.Name != want {
		t.Errorf("product 11 name = %q, want %q", p.Name, want)
	}
	if want := `Apple MacBook Pro 14" Chip M4 512GB (Negro Espacial)`; p.NameEs != want {
		t.Errorf("product 11 nameEs = %q, want %q", p.NameEs, want)
	}

	for _, p := range s.Products() {
		for field, v := range map[string]string{
			"name": p.Name, "nameEs": p.NameEs,
			"description": p.Description, "descriptionEs": p.DescriptionEs,
		} {
			if strings.ContainsRune(v, '\\') {
				t.Errorf("product %s %s contains a stray backslash: %q", p.ID, field, v)
			}
		}
	}
}

func TestProductsOnSale(t *testing.T) {
	s := New()

	got := s.ProductsOnSale()
	if len(got) == 0 {
		t.Fatal("expected seeded products on sale")
	}
	for _, p := range got {
		if p.Discount <= 0 {
			t.Errorf("product %s returned as on sale with discount %d", p.ID, p.Discount)
		}
	}
}

func TestProductLookup(t *testing.T) {
	s := New()

	p := s.Product("27")
	if p == nil {
		t.Fatal("expected product 27 to exist")
	}
	if p.Price != "349.00" {
		t.Errorf("product 27 price = %q, want \"349.00\"", p.Price)
	}

	if got := s.Product("does-not-exist"); got != nil {
		t.Errorf("expected nil for unknown product id, got %+v", got)
	}
}

func TestCreateProductRoundTrip(t *testing.T) {
	s := New()

	created := s.CreateProduct(Product{
		Name:       "Test Soundbar",
		NameEs:     "Barra de Sonido de Prueba",
		Price:      "199.00",
		CategoryID: "4",
		Brand:      "Acme",
		InStock:    true,
	})

	if created.ID == "" {
		t.Fatal("expected a generated product id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected a creation timestamp")
	}

	got := s.Product(created.ID)
	if got == nil {
		t.Fatal("created product not retrievable")
	}
	if got.Name != "Test Soundbar" || got.Price != "199.00" || got.CategoryID != "4" || got.Brand != "Acme" {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestCreateOrderWithItems(t *testing.T) {
	s := New()

	order, items := s.CreateOrderWithItems(
		Order{
			OrderNumber:   "ES-1-test",
			CustomerName:  "Jane Citizen",
			Subtotal:      "698.00",
			Tax:           "69.80",
			Total:         "767.80",
			PaymentMethod: "card",
		},
		[]OrderItem{
			{ProductID: "27", ProductName: "Sony WH-1000XM5 Wireless Noise Canceling Headphones", ProductPrice: "349.00", Quantity: 2, Total: "698.00"},
		},
	)

	if order.ID == "" || order.CreatedAt.IsZero() {
		t.Fatalf("order missing generated fields: %+v", order)
	}
	if order.PaymentStatus != PaymentStatusPending || order.Status != OrderStatusPending {
		t.Errorf("expected pending statuses, got payment=%q status=%q", order.PaymentStatus, order.Status)
	}

	if got := s.Order(order.ID); got == nil {
		t.Fatal("created order not retrievable by id")
	}
	if got := s.OrderByNumber("ES-1-test"); got == nil || got.ID != order.ID {
		t.Fatal("created order not retrievable by order number")
	}

	stored := s.OrderItems(order.ID)
	if len(stored) != 1 {
		t.Fatalf("expected 1 stored item, got %d", len(stored))
	}
	if stored[0].OrderID != order.ID {
		t.Errorf("item orderId = %q, want %q", stored[0].OrderID, order.ID)
	}
	if items[0].ID == "" {
		t.Error("expected a generated item id")
	}
}

func TestUpdateOrderPaymentStatus(t *testing.T) {
	s := New()

	order, _ := s.CreateOrderWithItems(Order{OrderNumber: "ES-2-test", Total: "10.00"}, nil)

	updated := s.UpdateOrderPaymentStatus(order.ID, PaymentStatusSucceeded, "pi_123")
	if updated == nil {
		t.Fatal("expected update to find the order")
	}
	if updated.PaymentStatus != PaymentStatusSucceeded {
		t.Errorf("paymentStatus = %q, want %q", updated.PaymentStatus, PaymentStatusSucceeded)
	}
	if updated.StripePaymentIntentID != "pi_123" {
		t.Errorf("stripePaymentIntentId = %q, want \"pi_123\"", updated.StripePaymentIntentID)
	}

	// empty external ref keeps the existing one
	updated = s.UpdateOrderPaymentStatus(order.ID, PaymentStatusFailed, "")
	if updated.StripePaymentIntentID != "pi_123" {
		t.Errorf("empty external ref overwrote existing value: %q", updated.StripePaymentIntentID)
	}

	if got := s.UpdateOrderPaymentStatus("unknown-id", PaymentStatusSucceeded, ""); got != nil {
		t.Errorf("expected nil for unknown order id, got %+v", got)
	}
}

func TestConcurrentOrderCreation(t *testing.T) {
	s := New()

	const n = 25
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, _ := s.CreateOrderWithItems(Order{Total: "1.00"}, []OrderItem{{ProductID: "1", Quantity: 1}})
			ids <- order.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[string]bool{}
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate order id generated: %s", id)
		}
		seen[id] = true
	}
	if got := len(s.Orders()); got != n {
		t.Fatalf("expected %d stored orders, got %d", n, got)
	}
}
