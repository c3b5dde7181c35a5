package payment

import (
	"context"

	"github.com/mraditya/pasarku/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/mraditya/pasarku/services/payment PaymentGW

// PaymentGW defines the payment gateway client interface.
//
// CreatePayment never returns a Go error for expected failure modes;
// unreachable endpoints, non-2xx responses and unparseable bodies all come
// back as a failure PaymentResult with a human-readable message. Each call
// issues exactly one outbound request with a freshly generated request id,
// so retries belong to the caller.
type PaymentGW interface {
	CreatePayment(ctx context.Context, req *models.PaymentRequest) *models.PaymentResult
}
