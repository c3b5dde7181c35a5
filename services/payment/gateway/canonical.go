package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/mraditya/pasarku/internal/pkg/models"
)

// The gateway signature is computed over the exact bytes of the request
// body, so the body must serialize deterministically: snake_case field
// names, no whitespace between tokens, fields in struct declaration order,
// and absent values omitted rather than rendered as null. encoding/json
// already guarantees stable field order and minified output; the tags on
// these types carry the rest of the contract.

type orderBody struct {
	InvoiceNumber string `json:"invoice_number"`
	Amount        int64  `json:"amount"`
	CallbackURL   string `json:"callback_url,omitempty"`
}

type customerBody struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type itemBody struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

type paymentBody struct {
	Order    orderBody     `json:"order"`
	Customer *customerBody `json:"customer,omitempty"`
	Items    []itemBody    `json:"line_items,omitempty"`
}

// newPaymentBody maps a payment request onto the gateway wire format
func newPaymentBody(req *models.PaymentRequest, callbackURL string) paymentBody {
	body := paymentBody{
		Order: orderBody{
			InvoiceNumber: req.InvoiceNumber,
			Amount:        req.Amount,
			CallbackURL:   callbackURL,
		},
	}

	if req.CustomerName != "" || req.CustomerEmail != "" {
		body.Customer = &customerBody{
			Name:  req.CustomerName,
			Email: req.CustomerEmail,
		}
	}

	for _, item := range req.Items {
		body.Items = append(body.Items, itemBody{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	return body
}

// canonicalJSON serializes v to the byte sequence the digest is computed
// over. A serialization failure aborts the request before any network call.
func canonicalJSON(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize request body: %w", err)
	}
	return data, nil
}
