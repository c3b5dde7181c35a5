package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mraditya/pasarku/internal/pkg/logger"
	"github.com/mraditya/pasarku/internal/pkg/models"
	"github.com/mraditya/pasarku/internal/utils"
	"github.com/mraditya/pasarku/services/payment"
)

// PaymentHandler handles HTTP requests for payment operations
type PaymentHandler struct {
	paymentUC payment.PaymentUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payment.PaymentUC) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
	}
}

// Checkout handles checkout initiation requests
func (h *PaymentHandler) Checkout(c echo.Context) error {
	var req models.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid checkout payload", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	trx, err := h.paymentUC.Checkout(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Checkout failed",
			logger.String("user_id", req.UserID),
			logger.ErrorField(err),
		)
		return utils.BadGatewayResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Checkout created", trx)
}

// Notification handles inbound payment gateway webhooks.
//
// The gateway redelivers until it sees an acknowledgement, so every
// processable notification is answered 200 regardless of whether it
// caused a state change. Only payloads that cannot be interpreted at all
// are answered with a client error.
func (h *PaymentHandler) Notification(c echo.Context) error {
	var notification models.PaymentNotification
	if err := c.Bind(&notification); err != nil {
		logger.Warn("Unparseable payment notification", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "Invalid notification payload")
	}

	err := h.paymentUC.Reconcile(c.Request().Context(), &notification)
	if err != nil {
		if errors.Is(err, payment.ErrMalformedNotification) {
			return utils.BadRequestResponse(c, "Invalid notification payload")
		}
		logger.Error("Failed to reconcile notification",
			logger.String("invoice", notification.OrderID),
			logger.ErrorField(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to process notification")
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetTransaction handles transaction status lookups
func (h *PaymentHandler) GetTransaction(c echo.Context) error {
	invoice := c.Param("invoice")
	if invoice == "" {
		return utils.BadRequestResponse(c, "Invalid invoice number")
	}

	trx, err := h.paymentUC.GetTransactionByInvoice(c.Request().Context(), invoice)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to retrieve transaction")
	}
	if trx == nil {
		return utils.NotFoundResponse(c, "Transaction not found")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction retrieved", trx)
}
