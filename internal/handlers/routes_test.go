package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/electroshop/go-storefront-api/internal/store"
)

type fakeNotifier struct {
	mu        sync.Mutex
	placed    int
	confirmed int
}

func (f *fakeNotifier) OrderPlaced(order store.Order, items []store.OrderItem) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.placed++
}

func (f *fakeNotifier) PaymentConfirmed(order store.Order, paymentIntentID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.confirmed++
}

func newTestRouter(t *testing.T) (*gin.Engine, *store.MemStore, *fakeNotifier) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	st := store.New()
	fn := &fakeNotifier{}
	r := gin.New()
	RegisterRoutes(r, HandlerConfig{Store: st, Notifier: fn})
	return r, st, fn
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validOrderBody() map[string]interface{} {
	return map[string]interface{}{
		"shipping": map[string]string{
			"firstName": "Jane",
			"lastName":  "Citizen",
			"email":     "jane@example.com",
			"phone":     "0400000000",
			"address":   "1 George St",
			"city":      "Sydney",
			"state":     "NSW",
			"postcode":  "2000",
		},
		// client-supplied prices and total are deliberately wrong; the
		// server must recompute from the catalog
		"items": []map[string]interface{}{
			{"productId": "27", "quantity": 2, "productName": "bogus", "price": "1.00"},
		},
		"paymentMethod": "card",
		"total":         "2.00",
	}
}

func TestGetCategories(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var categories []store.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	require.Len(t, categories, 6)
}

func TestGetProduct(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/products/27", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var p store.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	require.Equal(t, "349.00", p.Price)

	w = doJSON(t, r, http.MethodGet, "/api/products/999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Product not found")
}

func TestListProductsFeatured(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/products?featured=true", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []store.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))

	want := map[string]bool{
		"1": true, "2": true, "3": true, "4": true,
		"11": true, "12": true, "13": true,
		"21": true, "22": true, "23": true,
		"27": true, "28": true,
		"32": true, "36": true, "37": true,
	}
	require.Len(t, products, len(want))
	for _, p := range products {
		require.True(t, want[p.ID], "unexpected featured product %s", p.ID)
	}
}

func TestListProductsCategoryTakesPrecedence(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/products?category=3&featured=true", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []store.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 13)
	for _, p := range products {
		require.Equal(t, "3", p.CategoryID)
	}
}

func TestListProductsExcludeAndLimit(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/products?featured=true&exclude=1&limit=5", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []store.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 5)
	for _, p := range products {
		require.NotEqual(t, "1", p.ID)
	}
}

func TestListProductsOnSale(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/products?sale=true", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []store.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.NotEmpty(t, products)
	for _, p := range products {
		require.Greater(t, p.Discount, 0)
	}
}

func TestCreateOrder(t *testing.T) {
	r, st, fn := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders", validOrderBody())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var order store.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	require.Equal(t, "698.00", order.Subtotal, "client price must be ignored")
	require.Equal(t, "69.80", order.Tax)
	require.Equal(t, "767.80", order.Total)
	require.Equal(t, "Jane Citizen", order.CustomerName)
	require.Equal(t, store.PaymentStatusPending, order.PaymentStatus)

	items := st.OrderItems(order.ID)
	require.Len(t, items, 1)
	require.Equal(t, "Sony WH-1000XM5 Wireless Noise Canceling Headphones", items[0].ProductName)

	require.Equal(t, 1, fn.placed)
}

func TestCreateOrder_ValidationError(t *testing.T) {
	r, st, fn := newTestRouter(t)

	body := validOrderBody()
	body["shipping"].(map[string]string)["email"] = "not-an-email"

	w := doJSON(t, r, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Validation error", resp.Message)
	require.NotEmpty(t, resp.Errors)

	require.Empty(t, st.Orders())
	require.Equal(t, 0, fn.placed)
}

func TestCreateOrder_EmptyItems(t *testing.T) {
	r, st, _ := newTestRouter(t)

	body := validOrderBody()
	body["items"] = []map[string]interface{}{}

	w := doJSON(t, r, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Order items are required")
	require.Empty(t, st.Orders())
}

func TestCreateOrder_UnknownProduct(t *testing.T) {
	r, st, _ := newTestRouter(t)

	body := validOrderBody()
	body["items"] = []map[string]interface{}{{"productId": "999", "quantity": 1}}

	w := doJSON(t, r, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Product 999 not found")
	require.Empty(t, st.Orders())
}

func TestUpdatePaymentStatus(t *testing.T) {
	r, _, fn := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders", validOrderBody())
	require.Equal(t, http.StatusOK, w.Code)
	var order store.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))

	w = doJSON(t, r, http.MethodPatch, "/api/orders/"+order.ID+"/payment-status", map[string]string{
		"status":                "succeeded",
		"stripePaymentIntentId": "pi_abc",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated store.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, store.PaymentStatusSucceeded, updated.PaymentStatus)
	require.Equal(t, "pi_abc", updated.StripePaymentIntentID)
	require.Equal(t, 1, fn.confirmed)
}

func TestUpdatePaymentStatus_UnknownOrder(t *testing.T) {
	r, _, fn := newTestRouter(t)

	w := doJSON(t, r, http.MethodPatch, "/api/orders/unknown-id/payment-status", map[string]string{
		"status": "succeeded",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Order not found")
	require.Equal(t, 0, fn.confirmed)
}

func TestCreatePaymentIntent(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/create-payment-intent", map[string]interface{}{
		"amount": 767.80,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "aud", resp["currency"])
	require.Equal(t, "pending_integration", resp["status"])
}

func TestCreatePaymentIntent_EmptyBody(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/create-payment-intent", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "aud", resp["currency"])
	require.Equal(t, float64(0), resp["amount"])
	require.Equal(t, "pending_integration", resp["status"])
}
