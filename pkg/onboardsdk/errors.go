package onboardsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError represents a failed OnboardHub API response. The server wraps
// every payload in a {succeeded, message, data} envelope; when succeeded is
// false or the status is non-2xx, the message and status code end up here.
//
// Transport-level failures (DNS, refused connections, timeouts) are NOT
// APIErrors; they surface as wrapped errors from net/http. Callers can
// distinguish the two with errors.As.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Message is the server-provided failure message, if any.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: HTTP %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("api error: HTTP %d: %s", e.StatusCode, e.Message)
}

// IsAuthFailure reports whether the error is the server rejecting the
// caller's credentials or bearer token.
func (e *APIError) IsAuthFailure() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// parseErrorResponse builds a typed *APIError from a non-success response
// body. The server usually returns the standard envelope even on failure;
// fall back to the raw status when it does not.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	return &APIError{StatusCode: resp.StatusCode}
}
