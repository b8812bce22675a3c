package orders

import (
	"errors"
	"fmt"
)

// ErrEmptyCart is returned when an order is placed with no line items.
var ErrEmptyCart = errors.New("order items are required")

// ErrOrderNotFound is returned when a payment-status update names an
// unknown order id.
var ErrOrderNotFound = errors.New("order not found")

// UnknownProductError reports a cart line whose product id does not exist
// in the catalog.
type UnknownProductError struct {
	ProductID string
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}
