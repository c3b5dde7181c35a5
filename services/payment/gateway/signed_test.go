package gateway

import (
	"context"
	"net/http"
	"testing"

	"github.com/h2non/gock"
	"github.com/mraditya/pasarku/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSignedGateway(t *testing.T) *SignedGateway {
	t.Helper()
	g, err := NewSignedGateway(&models.GatewayConfig{
		BaseURL:     "https://api.gateway.test",
		PaymentPath: "/checkout/v1/payment",
		ClientID:    "MCH-001",
		SecretKey:   "secret-key",
		CallbackURL: "https://pasarku.example/finish",
	})
	require.NoError(t, err)
	gock.InterceptClient(g.httpClient)
	return g
}

func signedTestRequest() *models.PaymentRequest {
	return &models.PaymentRequest{
		InvoiceNumber: "INV-100",
		Amount:        50000,
		CustomerName:  "Budi",
		CustomerEmail: "budi@example.com",
		Items: []models.OrderItem{
			{Name: "Paket Sundul 5", Price: 50000, Quantity: 1},
		},
	}
}

func TestNewSignedGateway_Validation(t *testing.T) {
	_, err := NewSignedGateway(&models.GatewayConfig{PaymentPath: "/p", ClientID: "c", SecretKey: "s"})
	assert.Error(t, err)

	_, err = NewSignedGateway(&models.GatewayConfig{BaseURL: "https://x", ClientID: "c", SecretKey: "s"})
	assert.Error(t, err)

	_, err = NewSignedGateway(&models.GatewayConfig{BaseURL: "https://x", PaymentPath: "/p", SecretKey: "s"})
	assert.Error(t, err)
}

func TestSignedGateway_CreatePayment_Success(t *testing.T) {
	defer gock.Off()
	g := newTestSignedGateway(t)

	gock.New("https://api.gateway.test").
		Post("/checkout/v1/payment").
		MatchHeader("Content-Type", "application/json").
		MatchHeader("Client-Id", "MCH-001").
		MatchHeader("Request-Id", ".+").
		MatchHeader("Request-Timestamp", `\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z`).
		MatchHeader("Digest", "SHA-256=.+").
		MatchHeader("Signature", "HMACSHA256=.+").
		Reply(200).
		JSON(map[string]interface{}{
			"response": map[string]interface{}{
				"payment": map[string]interface{}{
					"url": "https://sandbox.gateway.test/pay/abc",
				},
			},
		})

	result := g.CreatePayment(context.Background(), signedTestRequest())

	require.NotNil(t, result)
	assert.True(t, result.Success)
	assert.Equal(t, "https://sandbox.gateway.test/pay/abc", result.RedirectURL)
	assert.True(t, gock.IsDone())
}

func TestSignedGateway_CreatePayment_ResponseShapes(t *testing.T) {
	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{name: "payment url", body: map[string]interface{}{"payment": map[string]interface{}{"url": "https://pay.test/x"}}},
		{name: "top level url", body: map[string]interface{}{"url": "https://pay.test/x"}},
		{name: "redirect url", body: map[string]interface{}{"redirect_url": "https://pay.test/x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer gock.Off()
			g := newTestSignedGateway(t)

			gock.New("https://api.gateway.test").
				Post("/checkout/v1/payment").
				Reply(200).
				JSON(tt.body)

			result := g.CreatePayment(context.Background(), signedTestRequest())
			require.NotNil(t, result)
			assert.True(t, result.Success)
			assert.Equal(t, "https://pay.test/x", result.RedirectURL)
		})
	}
}

func TestSignedGateway_CreatePayment_GatewayRejection(t *testing.T) {
	defer gock.Off()
	g := newTestSignedGateway(t)

	gock.New("https://api.gateway.test").
		Post("/checkout/v1/payment").
		Reply(401).
		JSON(map[string]interface{}{
			"error": map[string]interface{}{"message": "invalid signature"},
		})

	result := g.CreatePayment(context.Background(), signedTestRequest())

	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Equal(t, models.FailureGateway, result.Code)
	assert.Equal(t, "invalid signature", result.Message)
}

func TestSignedGateway_CreatePayment_RejectionWithoutMessage(t *testing.T) {
	defer gock.Off()
	g := newTestSignedGateway(t)

	gock.New("https://api.gateway.test").
		Post("/checkout/v1/payment").
		Reply(500).
		BodyString("oops")

	result := g.CreatePayment(context.Background(), signedTestRequest())

	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Equal(t, models.FailureGateway, result.Code)
	assert.Contains(t, result.Message, "500")
}

func TestSignedGateway_CreatePayment_TransportFailure(t *testing.T) {
	defer gock.Off()
	g := newTestSignedGateway(t)

	gock.New("https://api.gateway.test").
		Post("/checkout/v1/payment").
		ReplyError(assert.AnError)

	result := g.CreatePayment(context.Background(), signedTestRequest())

	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Equal(t, models.FailureTransport, result.Code)
}

func TestSignedGateway_CreatePayment_MissingURL(t *testing.T) {
	defer gock.Off()
	g := newTestSignedGateway(t)

	gock.New("https://api.gateway.test").
		Post("/checkout/v1/payment").
		Reply(200).
		JSON(map[string]interface{}{"status": "ok"})

	result := g.CreatePayment(context.Background(), signedTestRequest())

	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Equal(t, models.FailureResponseFormat, result.Code)
}

func TestSignedGateway_CreatePayment_FreshRequestIDPerAttempt(t *testing.T) {
	defer gock.Off()
	g := newTestSignedGateway(t)

	var requestIDs []string
	capture := func(req *http.Request, _ *gock.Request) (bool, error) {
		requestIDs = append(requestIDs, req.Header.Get("Request-Id"))
		return true, nil
	}

	for i := 0; i < 2; i++ {
		gock.New("https://api.gateway.test").
			Post("/checkout/v1/payment").
			AddMatcher(capture).
			Reply(200).
			JSON(map[string]interface{}{"url": "https://pay.test/x"})
	}

	first := g.CreatePayment(context.Background(), signedTestRequest())
	second := g.CreatePayment(context.Background(), signedTestRequest())

	require.True(t, first.Success)
	require.True(t, second.Success)
	require.Len(t, requestIDs, 2)
	assert.NotEmpty(t, requestIDs[0])
	assert.NotEqual(t, requestIDs[0], requestIDs[1])
}
