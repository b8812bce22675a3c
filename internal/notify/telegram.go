// Package notify delivers order-event summaries to a Telegram chat.
//
// Delivery is fire-and-forget: the caller never waits on the network and a
// failed send is only logged. With no bot token or chat id configured the
// notifier degrades to logging what it would have sent.
package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/electroshop/go-storefront-api/internal/store"
)

const defaultBaseURL = "https://api.telegram.org"

// Telegram posts messages to the Telegram Bot API sendMessage endpoint.
type Telegram struct {
	botToken string
	chatID   string
	baseURL  string
	client   *http.Client
}

// NewTelegram returns a Telegram notifier. Either credential may be empty,
// in which case sends become logged no-ops.
func NewTelegram(botToken, chatID string) *Telegram {
	return &Telegram{
		botToken: botToken,
		chatID:   chatID,
		baseURL:  defaultBaseURL,
		// short bounded timeout so abandoned sends cannot pile up
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

// OrderPlaced sends the new-order summary.
func (t *Telegram) OrderPlaced(order store.Order, items []store.OrderItem) {
	var lines strings.Builder
	for _, it := range items {
		fmt.Fprintf(&lines, "• %s x%d\n", it.ProductName, it.Quantity)
	}

	msg := fmt.Sprintf(`🛒 <b>New Order: %s</b>

👤 <b>Customer:</b> %s
📧 <b>Email:</b> %s
📱 <b>Phone:</b> %s
🏠 <b>Address:</b> %s, %s, %s %s
💰 <b>Total:</b> $%s
💳 <b>Payment:</b> %s

📦 <b>Items:</b>
%s`,
		order.OrderNumber,
		order.CustomerName,
		order.CustomerEmail,
		order.CustomerPhone,
		order.ShippingAddress, order.ShippingCity, order.ShippingState, order.ShippingPostcode,
		order.Total,
		order.PaymentMethod,
		strings.TrimRight(lines.String(), "\n"))

	t.dispatch(msg)
}

// PaymentConfirmed sends the payment-confirmation summary.
func (t *Telegram) PaymentConfirmed(order store.Order, paymentIntentID string) {
	msg := fmt.Sprintf(`✅ <b>Payment Confirmed</b>

📄 <b>Order:</b> %s
👤 <b>Customer:</b> %s
💰 <b>Amount:</b> $%s
💳 <b>Payment ID:</b> %s`,
		order.OrderNumber,
		order.CustomerName,
		order.Total,
		paymentIntentID)

	t.dispatch(msg)
}

// dispatch hands the message to a goroutine so the request path never waits
// on Telegram. Failures are logged, never surfaced.
func (t *Telegram) dispatch(text string) {
	if t.botToken == "" || t.chatID == "" {
		log.Printf("telegram not configured, would send: %s", text)
		return
	}
	go func() {
		if err := t.send(text); err != nil {
			log.Printf("telegram notification failed: %v", err)
		}
	}()
}

func (t *Telegram) send(text string) error {
	payload, err := json.Marshal(map[string]string{
		"chat_id":    t.chatID,
		"text":       text,
		"parse_mode": "HTML",
	})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.botToken)
	resp, err := t.client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("telegram responded %d: %s", resp.StatusCode, detail)
	}
	return nil
}
