package gateway

import (
	"encoding/json"
	"strings"
)

// Gateways have moved the payment URL around between API versions, so the
// known locations are kept as an ordered list of dotted JSON paths, tried
// first-match-wins. Adding a new response shape is a one-line config change.

// defaultURLPaths is used when the gateway config does not override the list
var defaultURLPaths = []string{
	"response.payment.url",
	"payment.url",
	"url",
	"redirect_url",
}

// extractPaymentURL tries the candidate paths against a raw JSON response
// body and returns the first non-empty string value found.
func extractPaymentURL(body []byte, paths []string) (string, bool) {
	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", false
	}

	for _, path := range paths {
		if value, ok := lookupPath(raw, path); ok {
			return value, true
		}
	}
	return "", false
}

// lookupPath walks a dotted path through nested JSON objects
func lookupPath(raw map[string]interface{}, path string) (string, bool) {
	segments := strings.Split(path, ".")
	current := raw

	for i, segment := range segments {
		value, ok := current[segment]
		if !ok {
			return "", false
		}

		if i == len(segments)-1 {
			str, ok := value.(string)
			return str, ok && str != ""
		}

		next, ok := value.(map[string]interface{})
		if !ok {
			return "", false
		}
		current = next
	}
	return "", false
}

// extractGatewayMessage pulls a human-readable error message out of a
// non-2xx gateway response, falling back through the shapes seen in the
// wild.
func extractGatewayMessage(body []byte) string {
	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return ""
	}

	for _, path := range []string{"error.message", "status_message", "message"} {
		if value, ok := lookupPath(raw, path); ok {
			return value
		}
	}
	return ""
}
