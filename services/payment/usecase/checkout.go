package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mraditya/pasarku/internal/pkg/logger"
	"github.com/mraditya/pasarku/internal/pkg/models"
)

// Checkout resolves the requested packages, submits a payment creation
// request to the gateway and persists a pending transaction. The
// transaction is only written after the gateway call succeeds, so no
// record is ever left without a payment URL.
func (uc *PaymentUsecase) Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.Transaction, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}
	if req.Type != models.TransactionTypePremium && req.Type != models.TransactionTypeAdPackage {
		return nil, fmt.Errorf("invalid transaction type: %q", req.Type)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("at least one item is required")
	}

	var (
		amount     int64
		purchased  []models.PurchasedItem
		orderItems []models.OrderItem
	)
	for _, item := range req.Items {
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}

		pkg, err := uc.packageRepo.GetAdPackage(ctx, item.PackageID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve package %s: %w", item.PackageID, err)
		}

		amount += pkg.Price * int64(quantity)
		purchased = append(purchased, models.PurchasedItem{
			PackageID: item.PackageID,
			ListingID: item.ListingID,
			Price:     pkg.Price,
			Quantity:  quantity,
		})
		orderItems = append(orderItems, models.OrderItem{
			Name:     pkg.Name,
			Price:    pkg.Price,
			Quantity: quantity,
		})
	}

	invoice := newInvoiceNumber()
	paymentReq := &models.PaymentRequest{
		InvoiceNumber: invoice,
		Amount:        amount,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Items:         orderItems,
	}

	result := uc.gw.CreatePayment(ctx, paymentReq)
	if !result.Success {
		logger.Warn("Payment creation rejected",
			logger.String("invoice", invoice),
			logger.String("code", string(result.Code)),
			logger.String("message", result.Message),
		)
		return nil, fmt.Errorf("payment gateway: %s", result.Message)
	}

	payload, err := json.Marshal(purchased)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize purchased items: %w", err)
	}

	now := time.Now()
	trx := &models.Transaction{
		ID:            uuid.New(),
		InvoiceNumber: invoice,
		UserID:        userID,
		Amount:        amount,
		Status:        models.TransactionStatusPending,
		Type:          req.Type,
		ItemsPayload:  string(payload),
		PaymentURL:    result.RedirectURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.transactionRepo.CreateTransaction(ctx, trx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return trx, nil
}

// GetTransactionByInvoice returns a transaction for order status pages
func (uc *PaymentUsecase) GetTransactionByInvoice(ctx context.Context, invoice string) (*models.Transaction, error) {
	return uc.transactionRepo.GetTransactionByInvoice(ctx, invoice)
}

// newInvoiceNumber generates a caller-unique invoice number. The invoice
// correlates the outbound checkout with its eventual webhook notification.
func newInvoiceNumber() string {
	suffix := strings.Split(uuid.New().String(), "-")[0]
	return fmt.Sprintf("INV-%d-%s", time.Now().Unix(), strings.ToUpper(suffix))
}
