package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/mraditya/pasarku/internal/pkg/logger"
	"github.com/mraditya/pasarku/internal/pkg/models"
	"github.com/mraditya/pasarku/services/payment"
)

// Reconcile applies one inbound gateway notification to the stored
// transaction.
//
// Gateways deliver notifications at least once, so duplicates and
// post-resolution arrivals are normal traffic, not errors. The pending
// guard is the sole idempotency mechanism: the conditional update in the
// repository flips the status only while the row is still pending, and
// only the delivery that wins that update dispatches feature activation.
func (uc *PaymentUsecase) Reconcile(ctx context.Context, notification *models.PaymentNotification) error {
	if notification == nil || notification.OrderID == "" || notification.TransactionStatus == "" {
		return payment.ErrMalformedNotification
	}

	trx, err := uc.transactionRepo.GetTransactionByInvoice(ctx, notification.OrderID)
	if err != nil {
		return fmt.Errorf("failed to load transaction: %w", err)
	}
	if trx == nil {
		logger.Info("Notification for unknown invoice, skipping",
			logger.String("invoice", notification.OrderID),
			logger.String("gateway_status", notification.TransactionStatus),
		)
		return nil
	}
	if trx.Status != models.TransactionStatusPending {
		logger.Info("Notification for resolved transaction, skipping",
			logger.String("invoice", trx.InvoiceNumber),
			logger.String("status", trx.Status),
		)
		return nil
	}

	// Map the gateway status vocabulary onto our terminal states. Which
	// statuses count as settled is configuration, not code.
	status := models.TransactionStatusFailed
	var paidAt *time.Time
	if uc.cfg.Gateway.IsSettled(notification.TransactionStatus) {
		status = models.TransactionStatusSuccess
		now := time.Now()
		paidAt = &now
	}

	applied, err := uc.transactionRepo.UpdateTransactionIfPending(ctx, trx.InvoiceNumber, status, paidAt)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	if !applied {
		// A concurrent delivery resolved the transaction first
		logger.Info("Transaction already resolved by concurrent delivery",
			logger.String("invoice", trx.InvoiceNumber),
		)
		return nil
	}

	logger.Info("Transaction reconciled",
		logger.String("invoice", trx.InvoiceNumber),
		logger.String("gateway_status", notification.TransactionStatus),
		logger.String("status", status),
	)

	if status != models.TransactionStatusSuccess {
		return nil
	}

	trx.Status = status
	trx.PaidAt = paidAt

	// Published before activation so the settlement is on the audit trail
	// even when activation fails and the payment is left to be repaired.
	uc.publishSettled(trx)

	if err := uc.activate(ctx, trx); err != nil {
		return fmt.Errorf("failed to activate features for %s: %w", trx.InvoiceNumber, err)
	}
	return nil
}

// publishSettled emits a settlement event for downstream consumers.
// Best effort: a broker outage must not fail an already-settled payment.
func (uc *PaymentUsecase) publishSettled(trx *models.Transaction) {
	if uc.publisher == nil {
		return
	}

	event := models.PaymentEvent{
		InvoiceNumber: trx.InvoiceNumber,
		UserID:        trx.UserID.String(),
		Amount:        trx.Amount,
		Status:        trx.Status,
		Timestamp:     time.Now().UTC(),
	}

	if err := uc.publisher.Publish(uc.cfg.NSQ.SettledTopic, event); err != nil {
		logger.Error("Failed to publish settlement event",
			logger.String("invoice", trx.InvoiceNumber),
			logger.Err(err),
		)
	}
}
