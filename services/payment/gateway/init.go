package gateway

import (
	"fmt"

	"github.com/mraditya/pasarku/internal/pkg/models"
	"github.com/mraditya/pasarku/services/payment"
)

// NewPaymentGW creates the gateway client selected by configuration.
// Call sites never special-case the provider; both strategies satisfy the
// same PaymentGW contract.
func NewPaymentGW(cfg *models.GatewayConfig) (payment.PaymentGW, error) {
	switch cfg.Provider {
	case "signed":
		return NewSignedGateway(cfg)
	case "token":
		return NewTokenGateway(cfg)
	default:
		return nil, fmt.Errorf("unknown gateway provider: %q", cfg.Provider)
	}
}
