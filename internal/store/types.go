package store

import "time"

// Payment statuses
const (
	PaymentStatusPending   = "pending"
	PaymentStatusSucceeded = "succeeded"
	PaymentStatusFailed    = "failed"
)

// Order statuses
const (
	OrderStatusPending = "pending"
)

// Category is a top-level catalog grouping. Seeded at startup and read-only
// afterwards.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	NameEs    string    `json:"nameEs"`
	Slug      string    `json:"slug"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Product is a catalog entry. Price fields are decimal strings fixed to two
// places; Discount is a whole-dollar amount off the original price.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	NameEs        string    `json:"nameEs"`
	Description   string    `json:"description,omitempty"`
	DescriptionEs string    `json:"descriptionEs,omitempty"`
	Price         string    `json:"price"`
	OriginalPrice string    `json:"originalPrice,omitempty"`
	CategoryID    string    `json:"categoryId,omitempty"`
	Brand         string    `json:"brand,omitempty"`
	ImageURL      string    `json:"imageUrl"`
	Images        []string  `json:"images"`
	InStock       bool      `json:"inStock"`
	Featured      bool      `json:"featured"`
	Discount      int       `json:"discount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Order is a placed order. Subtotal, Tax and Total are decimal strings fixed
// to two places; PaymentStatus is the only field mutated after creation.
type Order struct {
	ID                    string    `json:"id"`
	OrderNumber           string    `json:"orderNumber"`
	CustomerName          string    `json:"customerName"`
	CustomerEmail         string    `json:"customerEmail"`
	CustomerPhone         string    `json:"customerPhone"`
	ShippingAddress       string    `json:"shippingAddress"`
	ShippingCity          string    `json:"shippingCity"`
	ShippingState         string    `json:"shippingState"`
	ShippingPostcode      string    `json:"shippingPostcode"`
	Subtotal              string    `json:"subtotal"`
	Tax                   string    `json:"tax"`
	Total                 string    `json:"total"`
	PaymentMethod         string    `json:"paymentMethod"`
	PaymentStatus         string    `json:"paymentStatus"`
	Status                string    `json:"status"`
	StripePaymentIntentID string    `json:"stripePaymentIntentId,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
}

// OrderItem snapshots one cart line at order time. ProductName and
// ProductPrice are denormalized so later catalog changes never affect a
// placed order.
type OrderItem struct {
	ID           string `json:"id"`
	OrderID      string `json:"orderId"`
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	ProductPrice string `json:"productPrice"`
	Quantity     int    `json:"quantity"`
	Total        string `json:"total"`
}
