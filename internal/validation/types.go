package validation

// ShippingForm is the fixed checkout shipping field set.
type ShippingForm struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	Postcode  string `json:"postcode" validate:"required"`
}

// OrderItemInput is one cart line as submitted by the client. ProductName
// and Price may be echoed by the UI but are never trusted; pricing is
// recomputed from the catalog.
type OrderItemInput struct {
	ProductID   string `json:"productId" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,min=1"`
	ProductName string `json:"productName,omitempty"`
	Price       string `json:"price,omitempty"`
}

// CreateOrderRequest is the payload for POST /api/orders. Items presence is
// checked by the order service so an empty cart yields the business-rule
// message rather than a field-error map. Total is client-claimed and ignored.
type CreateOrderRequest struct {
	Shipping      ShippingForm     `json:"shipping" validate:"required"`
	Items         []OrderItemInput `json:"items" validate:"dive"`
	PaymentMethod string           `json:"paymentMethod"`
	Total         string           `json:"total"`
}

// UpdatePaymentStatusRequest is the payload for the payment-status PATCH.
type UpdatePaymentStatusRequest struct {
	Status                string `json:"status" validate:"required"`
	StripePaymentIntentID string `json:"stripePaymentIntentId"`
}

// PaymentIntentRequest is the payload for the payment placeholder endpoint.
type PaymentIntentRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}
