package gateway

import "github.com/mraditya/pasarku/internal/pkg/models"

func successResult(url string) *models.PaymentResult {
	return &models.PaymentResult{
		Success:     true,
		RedirectURL: url,
	}
}

func failureResult(code models.FailureCode, message string) *models.PaymentResult {
	return &models.PaymentResult{
		Success: false,
		Message: message,
		Code:    code,
	}
}
