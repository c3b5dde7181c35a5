package gateway

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var signerTestBody = []byte(`{"order":{"invoice_number":"INV-1","amount":50000}}`)

func newTestSigner(t *testing.T) *Signer {
	t.Helper()
	signer, err := NewSigner("MCH-001", "secret-key")
	require.NoError(t, err)
	return signer
}

func TestNewSigner_RequiresCredentials(t *testing.T) {
	_, err := NewSigner("", "secret-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "client id")

	_, err = NewSigner("MCH-001", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "secret key")
}

func TestSigner_Sign_KnownVector(t *testing.T) {
	signer := newTestSigner(t)
	ts := time.Date(2025, 3, 10, 7, 30, 0, 0, time.UTC)

	headers := signer.Sign("req-123", ts, "/checkout/v1/payment", signerTestBody)

	assert.Equal(t, "MCH-001", headers.ClientID)
	assert.Equal(t, "req-123", headers.RequestID)
	assert.Equal(t, "2025-03-10T07:30:00.000Z", headers.RequestTimestamp)
	assert.Equal(t, "SHA-256=euCdNMvuLHiFAaUeUkP0vgg9O8EM6vFlEpuuiEB8sow=", headers.Digest)
	assert.Equal(t, "HMACSHA256=tHuLROzv5YWc1Je6WNQ3r6ZHc36GpCM7V8Ew1VYWMSU=", headers.Signature)
}

func TestSigner_Sign_Deterministic(t *testing.T) {
	signer := newTestSigner(t)
	ts := time.Date(2025, 3, 10, 7, 30, 0, 0, time.UTC)

	first := signer.Sign("req-123", ts, "/checkout/v1/payment", signerTestBody)
	second := signer.Sign("req-123", ts, "/checkout/v1/payment", signerTestBody)

	assert.Equal(t, first, second)
}

func TestSigner_Sign_BodySensitivity(t *testing.T) {
	// A single changed byte must change both digest and signature
	signer := newTestSigner(t)
	ts := time.Date(2025, 3, 10, 7, 30, 0, 0, time.UTC)

	original := signer.Sign("req-123", ts, "/checkout/v1/payment", signerTestBody)
	altered := signer.Sign("req-123", ts, "/checkout/v1/payment", []byte(`{"order":{"invoice_number":"INV-1","amount":50001}}`))

	assert.NotEqual(t, original.Digest, altered.Digest)
	assert.NotEqual(t, original.Signature, altered.Signature)
}

func TestSigner_Sign_TimestampIsUTCMilliseconds(t *testing.T) {
	signer := newTestSigner(t)

	// A zoned timestamp must be rendered in UTC
	jakarta := time.FixedZone("WIB", 7*3600)
	ts := time.Date(2025, 3, 10, 14, 30, 0, 500*int(time.Millisecond), jakarta)

	headers := signer.Sign("req-456", ts, "/checkout/v1/payment", signerTestBody)
	assert.Equal(t, "2025-03-10T07:30:00.500Z", headers.RequestTimestamp)
}

func TestDigest_Format(t *testing.T) {
	digest := Digest([]byte("{}"))
	assert.Contains(t, digest, "SHA-256=")
}
