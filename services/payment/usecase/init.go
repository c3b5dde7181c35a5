package usecase

import (
	"github.com/mraditya/pasarku/internal/pkg/models"
	"github.com/mraditya/pasarku/services/payment"
)

// EventPublisher publishes domain events to a message topic.
// The NSQ producer satisfies this interface.
type EventPublisher interface {
	Publish(topic string, message interface{}) error
}

// PaymentUsecase implements the payment.PaymentUC interface
type PaymentUsecase struct {
	cfg             *models.Config
	gw              payment.PaymentGW
	transactionRepo payment.TransactionRepo
	featureRepo     payment.FeatureRepo
	packageRepo     payment.PackageRepo
	userRepo        payment.UserRepo
	publisher       EventPublisher
}

// NewPaymentUC creates a new payment use case
func NewPaymentUC(
	cfg *models.Config,
	gw payment.PaymentGW,
	transactionRepo payment.TransactionRepo,
	featureRepo payment.FeatureRepo,
	packageRepo payment.PackageRepo,
	userRepo payment.UserRepo,
	publisher EventPublisher,
) payment.PaymentUC {
	return &PaymentUsecase{
		cfg:             cfg,
		gw:              gw,
		transactionRepo: transactionRepo,
		featureRepo:     featureRepo,
		packageRepo:     packageRepo,
		userRepo:        userRepo,
		publisher:       publisher,
	}
}
