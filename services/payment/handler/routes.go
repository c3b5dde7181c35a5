package handler

import (
	"github.com/labstack/echo/v4"
	httpHandler "github.com/mraditya/pasarku/services/payment/handler/http"
)

// Handler aggregates the payment service handlers
type Handler struct {
	payment *httpHandler.PaymentHandler
}

// NewHandler creates a new handler aggregate
func NewHandler(payment *httpHandler.PaymentHandler) *Handler {
	return &Handler{
		payment: payment,
	}
}

// RegisterRoutes registers the payment routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/payments")

	g.POST("/checkout", h.payment.Checkout)
	g.POST("/notifications", h.payment.Notification)
	g.GET("/transactions/:invoice", h.payment.GetTransaction)
}
