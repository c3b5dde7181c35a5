package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"
)

// timestampLayout renders request timestamps as UTC ISO-8601 with
// millisecond precision, which is what the gateway validates against.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// SignedHeaders carries the transport headers of one signed request
type SignedHeaders struct {
	ClientID         string
	RequestID        string
	RequestTimestamp string
	Digest           string
	Signature        string
}

// Apply sets the signed headers on an outbound HTTP request
func (h SignedHeaders) Apply(req *http.Request) {
	req.Header.Set("Client-Id", h.ClientID)
	req.Header.Set("Request-Id", h.RequestID)
	req.Header.Set("Request-Timestamp", h.RequestTimestamp)
	req.Header.Set("Digest", h.Digest)
	req.Header.Set("Signature", h.Signature)
}

// Signer computes digest and HMAC signature headers for gateway requests.
// It is a pure function of its inputs: identical (body, request id,
// timestamp, target) always produce identical headers.
type Signer struct {
	clientID  string
	secretKey []byte
}

// NewSigner creates a signer. Empty credentials are a configuration error;
// a request must never be signed with blank values.
func NewSigner(clientID, secretKey string) (*Signer, error) {
	if clientID == "" {
		return nil, fmt.Errorf("gateway client id is required")
	}
	if secretKey == "" {
		return nil, fmt.Errorf("gateway secret key is required")
	}
	return &Signer{
		clientID:  clientID,
		secretKey: []byte(secretKey),
	}, nil
}

// Digest returns the content digest header value for a request body
func Digest(body []byte) string {
	sum := sha256.Sum256(body)
	return "SHA-256=" + base64.StdEncoding.EncodeToString(sum[:])
}

// Sign computes the signed headers for one request attempt.
//
// The string-to-sign layout is load-bearing: the gateway reassembles it
// byte for byte from the headers it receives, so the field order and the
// bare "\n" separators must not change.
func (s *Signer) Sign(requestID string, ts time.Time, target string, body []byte) SignedHeaders {
	digest := Digest(body)
	timestamp := ts.UTC().Format(timestampLayout)

	stringToSign := "Client-Id:" + s.clientID +
		"\nRequest-Id:" + requestID +
		"\nRequest-Timestamp:" + timestamp +
		"\nRequest-Target:" + target +
		"\nDigest:" + digest

	mac := hmac.New(sha256.New, s.secretKey)
	mac.Write([]byte(stringToSign))
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return SignedHeaders{
		ClientID:         s.clientID,
		RequestID:        requestID,
		RequestTimestamp: timestamp,
		Digest:           digest,
		Signature:        "HMACSHA256=" + signature,
	}
}
