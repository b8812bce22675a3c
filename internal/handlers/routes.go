package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/electroshop/go-storefront-api/internal/orders"
	"github.com/electroshop/go-storefront-api/internal/store"
	"github.com/electroshop/go-storefront-api/internal/validation"
)

// HandlerConfig groups dependencies for the storefront API.
type HandlerConfig struct {
	Store    *store.MemStore
	Notifier orders.Notifier
}

// RegisterRoutes registers the storefront API routes. The paths and response
// shapes are a contract the storefront UI depends on.
func RegisterRoutes(r *gin.Engine, cfg HandlerConfig) {
	v := validation.New()
	svc := orders.NewService(cfg.Store, cfg.Notifier)

	api := r.Group("/api")
	api.GET("/categories", listCategories(cfg.Store))
	api.GET("/products", listProducts(cfg.Store))
	api.GET("/products/:id", getProduct(cfg.Store))
	api.POST("/orders", createOrder(svc, v))
	api.PATCH("/orders/:id/payment-status", updatePaymentStatus(svc, v))
	api.POST("/create-payment-intent", createPaymentIntent)
}

func listCategories(st *store.MemStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, st.Categories())
	}
}

// listProducts applies the UI's query filters. Category takes precedence
// over the featured/sale flags; exclude drops one id after filtering; limit
// truncates the result.
func listProducts(st *store.MemStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []store.Product
		switch {
		case c.Query("category") != "":
			products = st.ProductsByCategory(c.Query("category"))
		case c.Query("featured") == "true":
			products = st.FeaturedProducts()
		case c.Query("sale") == "true":
			products = st.ProductsOnSale()
		default:
			products = st.Products()
		}

		if exclude := c.Query("exclude"); exclude != "" {
			kept := products[:0]
			for _, p := range products {
				if p.ID != exclude {
					kept = append(kept, p)
				}
			}
			products = kept
		}

		if limitStr := c.Query("limit"); limitStr != "" {
			if limit, err := strconv.Atoi(limitStr); err == nil && limit >= 0 && limit < len(products) {
				products = products[:limit]
			}
		}

		if products == nil {
			products = []store.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

func getProduct(st *store.MemStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := st.Product(c.Param("id"))
		if p == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func createOrder(svc *orders.Service, v *validatorv10.Validate) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req validation.CreateOrderRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			// BindAndValidate already wrote a 400
			return
		}

		shipping := orders.ShippingInfo{
			FirstName: req.Shipping.FirstName,
			LastName:  req.Shipping.LastName,
			Email:     req.Shipping.Email,
			Phone:     req.Shipping.Phone,
			Address:   req.Shipping.Address,
			City:      req.Shipping.City,
			State:     req.Shipping.State,
			Postcode:  req.Shipping.Postcode,
		}
		lines := make([]orders.CartLine, len(req.Items))
		for i, it := range req.Items {
			lines[i] = orders.CartLine{ProductID: it.ProductID, Quantity: it.Quantity}
		}

		order, _, err := svc.PlaceOrder(shipping, lines, req.PaymentMethod)
		if err != nil {
			var unknown *orders.UnknownProductError
			switch {
			case errors.Is(err, orders.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"message": "Order items are required"})
			case errors.As(err, &unknown):
				c.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("Product %s not found", unknown.ProductID)})
			default:
				log.Printf("create order failed: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating order"})
			}
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

func updatePaymentStatus(svc *orders.Service, v *validatorv10.Validate) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req validation.UpdatePaymentStatusRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		order, err := svc.UpdatePaymentStatus(c.Param("id"), req.Status, req.StripePaymentIntentID)
		if err != nil {
			if errors.Is(err, orders.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
				return
			}
			log.Printf("update payment status failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating payment status"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// createPaymentIntent is a placeholder for a future payment gateway
// integration. It acknowledges the request without charging anything; an
// empty body is treated as a zero-amount request rather than rejected.
func createPaymentIntent(c *gin.Context) {
	var req validation.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	if req.Currency == "" {
		req.Currency = "aud"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Payment endpoint ready for integration",
		"amount":   req.Amount,
		"currency": req.Currency,
		"status":   "pending_integration",
	})
}
