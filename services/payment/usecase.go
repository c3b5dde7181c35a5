package payment

import (
	"context"
	"errors"

	"github.com/mraditya/pasarku/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/mraditya/pasarku/services/payment PaymentUC

// ErrMalformedNotification indicates a webhook payload that could not be
// interpreted at all. The transport layer answers such deliveries with a
// client error so the gateway may retry; every other reconcile outcome,
// including no-ops, is acknowledged.
var ErrMalformedNotification = errors.New("malformed payment notification")

// PaymentUC represents the payment usecase interface
type PaymentUC interface {
	// Checkout builds a payment request, submits it to the gateway and,
	// only after a payment URL is known, persists a pending transaction.
	Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.Transaction, error)

	// Reconcile applies an inbound gateway notification to the stored
	// transaction. Safe under at-least-once delivery: unknown invoices and
	// non-pending transactions are no-ops.
	Reconcile(ctx context.Context, notification *models.PaymentNotification) error

	GetTransactionByInvoice(ctx context.Context, invoice string) (*models.Transaction, error)
}
