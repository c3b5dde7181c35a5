package models

// OrderItem represents a single line item of a payment request
type OrderItem struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// PaymentRequest represents an outbound payment creation request.
// Amount is in the smallest currency unit. Immutable once built.
type PaymentRequest struct {
	InvoiceNumber string      `json:"invoice_number"`
	Amount        int64       `json:"amount"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	Items         []OrderItem `json:"items"`
}

// FailureCode classifies a failed gateway call
type FailureCode string

const (
	FailureConfig         FailureCode = "config"
	FailureTransport      FailureCode = "transport"
	FailureGateway        FailureCode = "gateway"
	FailureResponseFormat FailureCode = "response_format"
)

// PaymentResult represents the outcome of a payment creation call.
// On success RedirectURL carries the gateway's payment page URL; on
// failure Message carries a human-readable reason and Code its class.
type PaymentResult struct {
	Success     bool        `json:"success"`
	RedirectURL string      `json:"redirect_url,omitempty"`
	Message     string      `json:"message,omitempty"`
	Code        FailureCode `json:"code,omitempty"`
}

// CheckoutItem represents one purchased package in a checkout request
type CheckoutItem struct {
	PackageID string `json:"package_id"`
	ListingID string `json:"listing_id"`
	Quantity  int    `json:"quantity"`
}

// CheckoutRequest represents a checkout initiation from the marketplace frontend
type CheckoutRequest struct {
	UserID        string         `json:"user_id"`
	Type          string         `json:"type"`
	CustomerName  string         `json:"customer_name"`
	CustomerEmail string         `json:"customer_email"`
	Items         []CheckoutItem `json:"items"`
}
