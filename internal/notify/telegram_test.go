package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/electroshop/go-storefront-api/internal/store"
)

func testOrder() store.Order {
	return store.Order{
		OrderNumber:      "ES-1700000000000-abcd",
		CustomerName:     "Jane Citizen",
		CustomerEmail:    "jane@example.com",
		CustomerPhone:    "0400000000",
		ShippingAddress:  "1 George St",
		ShippingCity:     "Sydney",
		ShippingState:    "NSW",
		ShippingPostcode: "2000",
		Total:            "767.80",
		PaymentMethod:    "card",
	}
}

func TestOrderPlacedDeliversMessage(t *testing.T) {
	received := make(chan map[string]string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bottest-token/sendMessage" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		received <- body
	}))
	defer srv.Close()

	n := NewTelegram("test-token", "chat-1")
	n.baseURL = srv.URL

	n.OrderPlaced(testOrder(), []store.OrderItem{
		{ProductName: "Sony WH-1000XM5 Wireless Noise Canceling Headphones", Quantity: 2},
	})

	select {
	case body := <-received:
		if body["chat_id"] != "chat-1" {
			t.Errorf("chat_id = %q", body["chat_id"])
		}
		if body["parse_mode"] != "HTML" {
			t.Errorf("parse_mode = %q", body["parse_mode"])
		}
		text := body["text"]
		for _, want := range []string{"ES-1700000000000-abcd", "Jane Citizen", "$767.80", "Sony WH-1000XM5 Wireless Noise Canceling Headphones x2"} {
			if !strings.Contains(text, want) {
				t.Errorf("message missing %q:\n%s", want, text)
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification")
	}
}

func TestPaymentConfirmedDeliversMessage(t *testing.T) {
	received := make(chan map[string]string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		received <- body
	}))
	defer srv.Close()

	n := NewTelegram("test-token", "chat-1")
	n.baseURL = srv.URL

	n.PaymentConfirmed(testOrder(), "pi_abc")

	select {
	case body := <-received:
		text := body["text"]
		for _, want := range []string{"Payment Confirmed", "ES-1700000000000-abcd", "$767.80", "pi_abc"} {
			if !strings.Contains(text, want) {
				t.Errorf("message missing %q:\n%s", want, text)
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification")
	}
}

func TestUnconfiguredIsLoggedNoOp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unconfigured notifier must not call the sink")
	}))
	defer srv.Close()

	n := NewTelegram("", "")
	n.baseURL = srv.URL

	n.OrderPlaced(testOrder(), nil)
	n.PaymentConfirmed(testOrder(), "pi_abc")

	// dispatch is synchronous when unconfigured; a short grace period
	// catches a stray goroutine all the same
	time.Sleep(50 * time.Millisecond)
}

func TestSendReportsNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"ok":false}`, http.StatusBadGateway)
	}))
	defer srv.Close()

	n := NewTelegram("test-token", "chat-1")
	n.baseURL = srv.URL

	err := n.send("hello")
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Errorf("error %q does not mention status code", err)
	}
}
