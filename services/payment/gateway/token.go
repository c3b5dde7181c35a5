package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mraditya/pasarku/internal/pkg/circuitbreaker"
	"github.com/mraditya/pasarku/internal/pkg/models"
)

// TokenGateway is a payment gateway client for the simpler token API:
// a single pre-shared server key sent as a Basic authorization header,
// no per-request signing.
type TokenGateway struct {
	baseURL     string
	paymentPath string
	callbackURL string
	authHeader  string
	urlPaths    []string
	httpClient  *http.Client
	breaker     *circuitbreaker.CircuitBreaker
}

type tokenTransactionDetails struct {
	OrderID     string `json:"order_id"`
	GrossAmount int64  `json:"gross_amount"`
}

type tokenCustomerDetails struct {
	FirstName string `json:"first_name,omitempty"`
	Email     string `json:"email,omitempty"`
}

type tokenCallbacks struct {
	Finish string `json:"finish,omitempty"`
}

type tokenPaymentBody struct {
	TransactionDetails tokenTransactionDetails `json:"transaction_details"`
	ItemDetails        []itemBody              `json:"item_details,omitempty"`
	CustomerDetails    *tokenCustomerDetails   `json:"customer_details,omitempty"`
	Callbacks          *tokenCallbacks         `json:"callbacks,omitempty"`
}

// NewTokenGateway creates a token gateway client from configuration
func NewTokenGateway(cfg *models.GatewayConfig) (*TokenGateway, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("gateway base URL is required")
	}
	if cfg.PaymentPath == "" {
		return nil, fmt.Errorf("gateway payment path is required")
	}
	if cfg.ServerKey == "" {
		return nil, fmt.Errorf("gateway server key is required")
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	urlPaths := cfg.ResponseURLPaths
	if len(urlPaths) == 0 {
		urlPaths = defaultURLPaths
	}

	// The server key is the basic auth username with an empty password
	auth := base64.StdEncoding.EncodeToString([]byte(cfg.ServerKey + ":"))

	return &TokenGateway{
		baseURL:     cfg.BaseURL,
		paymentPath: cfg.PaymentPath,
		callbackURL: cfg.CallbackURL,
		authHeader:  "Basic " + auth,
		urlPaths:    urlPaths,
		httpClient:  &http.Client{Timeout: timeout},
		breaker:     circuitbreaker.New(circuitbreaker.DefaultConfig("payment-gateway-token")),
	}, nil
}

// CreatePayment submits one payment creation request to the token API
func (g *TokenGateway) CreatePayment(ctx context.Context, req *models.PaymentRequest) *models.PaymentResult {
	payload := tokenPaymentBody{
		TransactionDetails: tokenTransactionDetails{
			OrderID:     req.InvoiceNumber,
			GrossAmount: req.Amount,
		},
	}

	for _, item := range req.Items {
		payload.ItemDetails = append(payload.ItemDetails, itemBody{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	if req.CustomerName != "" || req.CustomerEmail != "" {
		payload.CustomerDetails = &tokenCustomerDetails{
			FirstName: req.CustomerName,
			Email:     req.CustomerEmail,
		}
	}

	if g.callbackURL != "" {
		payload.Callbacks = &tokenCallbacks{Finish: g.callbackURL}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return failureResult(models.FailureConfig, fmt.Sprintf("failed to serialize request body: %v", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+g.paymentPath, bytes.NewReader(body))
	if err != nil {
		return failureResult(models.FailureConfig, fmt.Sprintf("failed to build gateway request: %v", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", g.authHeader)

	var resp *http.Response
	err = g.breaker.Execute(ctx, func(context.Context) error {
		var doErr error
		resp, doErr = g.httpClient.Do(httpReq)
		return doErr
	})
	if err != nil {
		return failureResult(models.FailureTransport, fmt.Sprintf("gateway unreachable: %v", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return failureResult(models.FailureTransport, fmt.Sprintf("failed to read gateway response: %v", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := extractGatewayMessage(respBody)
		if message == "" {
			message = fmt.Sprintf("gateway returned status %d", resp.StatusCode)
		}
		return failureResult(models.FailureGateway, message)
	}

	url, ok := extractPaymentURL(respBody, g.urlPaths)
	if !ok {
		return failureResult(models.FailureResponseFormat, "payment URL missing from gateway response")
	}

	return successResult(url)
}
