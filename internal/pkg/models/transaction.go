package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction statuses. A transaction transitions pending -> success|failed
// at most once; terminal states never transition again.
const (
	TransactionStatusPending = "pending"
	TransactionStatusSuccess = "success"
	TransactionStatusFailed  = "failed"
)

// Transaction types
const (
	TransactionTypePremium   = "premium_subscription"
	TransactionTypeAdPackage = "ad_package_purchase"
)

// Transaction represents a payment transaction record. The invoice number
// correlates the outbound checkout with its eventual inbound notification.
// Rows are never deleted; they are the audit trail.
type Transaction struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	InvoiceNumber string     `json:"invoice_number" db:"invoice_number"`
	UserID        uuid.UUID  `json:"user_id" db:"user_id"`
	Amount        int64      `json:"amount" db:"amount"`
	Status        string     `json:"status" db:"status"`
	Type          string     `json:"type" db:"type"`
	ItemsPayload  string     `json:"items_payload" db:"items_payload"`
	PaymentURL    string     `json:"payment_url" db:"payment_url"`
	PaidAt        *time.Time `json:"paid_at,omitempty" db:"paid_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// PurchasedItem is one entry of a transaction's serialized items payload
type PurchasedItem struct {
	PackageID string `json:"package_id"`
	ListingID string `json:"listing_id"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// PaymentNotification represents an inbound gateway webhook payload.
// Delivery is at-least-once; duplicates and late arrivals are expected.
type PaymentNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	PaymentType       string `json:"payment_type,omitempty"`
	GatewayRef        string `json:"transaction_id,omitempty"`
}

// PaymentEvent is published after a transaction settles
type PaymentEvent struct {
	InvoiceNumber string    `json:"invoice_number"`
	UserID        string    `json:"user_id"`
	Amount        int64     `json:"amount"`
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
}
