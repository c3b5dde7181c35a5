package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mraditya/pasarku/internal/pkg/circuitbreaker"
	"github.com/mraditya/pasarku/internal/pkg/logger"
	"github.com/mraditya/pasarku/internal/pkg/models"
)

// SignedGateway is a payment gateway client that authenticates every
// request with a content digest and an HMAC signature over a canonical
// string-to-sign.
type SignedGateway struct {
	baseURL     string
	paymentPath string
	callbackURL string
	signer      *Signer
	urlPaths    []string
	httpClient  *http.Client
	breaker     *circuitbreaker.CircuitBreaker
}

// NewSignedGateway creates a signed gateway client from configuration.
// Missing credentials or endpoints fail here, before any call is made.
func NewSignedGateway(cfg *models.GatewayConfig) (*SignedGateway, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("gateway base URL is required")
	}
	if cfg.PaymentPath == "" {
		return nil, fmt.Errorf("gateway payment path is required")
	}

	signer, err := NewSigner(cfg.ClientID, cfg.SecretKey)
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	urlPaths := cfg.ResponseURLPaths
	if len(urlPaths) == 0 {
		urlPaths = defaultURLPaths
	}

	return &SignedGateway{
		baseURL:     cfg.BaseURL,
		paymentPath: cfg.PaymentPath,
		callbackURL: cfg.CallbackURL,
		signer:      signer,
		urlPaths:    urlPaths,
		httpClient:  &http.Client{Timeout: timeout},
		breaker:     circuitbreaker.New(circuitbreaker.DefaultConfig("payment-gateway-signed")),
	}, nil
}

// CreatePayment submits one signed payment creation request. A fresh
// request id is generated per attempt because the gateway uses it for
// replay detection; callers retrying must go through here again rather
// than replaying headers.
func (g *SignedGateway) CreatePayment(ctx context.Context, req *models.PaymentRequest) *models.PaymentResult {
	body, err := canonicalJSON(newPaymentBody(req, g.callbackURL))
	if err != nil {
		return failureResult(models.FailureConfig, err.Error())
	}

	requestID := uuid.New().String()
	headers := g.signer.Sign(requestID, time.Now(), g.paymentPath, body)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+g.paymentPath, bytes.NewReader(body))
	if err != nil {
		return failureResult(models.FailureConfig, fmt.Sprintf("failed to build gateway request: %v", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	headers.Apply(httpReq)

	// Transport errors trip the breaker; gateway-level rejections do not
	var resp *http.Response
	err = g.breaker.Execute(ctx, func(context.Context) error {
		var doErr error
		resp, doErr = g.httpClient.Do(httpReq)
		return doErr
	})
	if err != nil {
		logger.Warn("Gateway request failed",
			logger.String("invoice", req.InvoiceNumber),
			logger.String("request_id", requestID),
			logger.Err(err),
		)
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
		logger.Warn("Gateway rejected payment request",
			logger.String("invoice", req.InvoiceNumber),
			logger.Int("status", resp.StatusCode),
			logger.String("message", message),
		)
		return failureResult(models.FailureGateway, message)
	}

	url, ok := extractPaymentURL(respBody, g.urlPaths)
	if !ok {
		return failureResult(models.FailureResponseFormat, "payment URL missing from gateway response")
	}

	return successResult(url)
}
