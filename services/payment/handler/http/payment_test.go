package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mraditya/pasarku/internal/pkg/models"
	"github.com/mraditya/pasarku/services/payment"
	"github.com/mraditya/pasarku/services/payment/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotificationContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/notifications", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestNotification_Acknowledged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)
	e := echo.New()

	mockUC.EXPECT().
		Reconcile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, n *models.PaymentNotification) error {
			assert.Equal(t, "INV-1", n.OrderID)
			assert.Equal(t, "settlement", n.TransactionStatus)
			return nil
		})

	c, rec := newNotificationContext(e, `{"order_id":"INV-1","transaction_status":"settlement"}`)
	require.NoError(t, handler.Notification(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestNotification_MalformedPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)
	e := echo.New()

	mockUC.EXPECT().
		Reconcile(gomock.Any(), gomock.Any()).
		Return(payment.ErrMalformedNotification)

	c, rec := newNotificationContext(e, `{"transaction_status":"settlement"}`)
	require.NoError(t, handler.Notification(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotification_UnparseableBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)
	e := echo.New()

	c, rec := newNotificationContext(e, `not json at all`)
	require.NoError(t, handler.Notification(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotification_ReconcileFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)
	e := echo.New()

	mockUC.EXPECT().
		Reconcile(gomock.Any(), gomock.Any()).
		Return(errors.New("database down"))

	c, rec := newNotificationContext(e, `{"order_id":"INV-1","transaction_status":"settlement"}`)
	require.NoError(t, handler.Notification(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCheckout_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)
	e := echo.New()

	trx := &models.Transaction{
		ID:            uuid.New(),
		InvoiceNumber: "INV-1700000000-ABCD1234",
		UserID:        uuid.New(),
		Amount:        150000,
		Status:        models.TransactionStatusPending,
		Type:          models.TransactionTypeAdPackage,
		PaymentURL:    "https://pay.test/x",
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	mockUC.EXPECT().
		Checkout(gomock.Any(), gomock.Any()).
		Return(trx, nil)

	body := `{"user_id":"` + trx.UserID.String() + `","type":"ad_package_purchase","items":[{"package_id":"pkg-highlight-7","listing_id":"listing-1"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/checkout", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Checkout(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), trx.InvoiceNumber)
	assert.Contains(t, rec.Body.String(), "https://pay.test/x")
}

func TestCheckout_GatewayFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)
	e := echo.New()

	mockUC.EXPECT().
		Checkout(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("payment gateway: invalid signature"))

	body := `{"user_id":"` + uuid.New().String() + `","type":"ad_package_purchase","items":[{"package_id":"pkg-1"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/checkout", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Checkout(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGetTransaction_Found(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)
	e := echo.New()

	trx := &models.Transaction{
		ID:            uuid.New(),
		InvoiceNumber: "INV-1",
		UserID:        uuid.New(),
		Status:        models.TransactionStatusSuccess,
	}
	mockUC.EXPECT().
		GetTransactionByInvoice(gomock.Any(), "INV-1").
		Return(trx, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/payments/transactions/:invoice")
	c.SetParamNames("invoice")
	c.SetParamValues("INV-1")

	require.NoError(t, handler.GetTransaction(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "INV-1")
}

func TestGetTransaction_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)
	e := echo.New()

	mockUC.EXPECT().
		GetTransactionByInvoice(gomock.Any(), "INV-MISSING").
		Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/payments/transactions/:invoice")
	c.SetParamNames("invoice")
	c.SetParamValues("INV-MISSING")

	require.NoError(t, handler.GetTransaction(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
