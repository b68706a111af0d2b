package httpclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/aromaluxe/storefront/pkg/errors"
)

// APIErrorResponse mirrors the error body returned by the content API,
// e.g. {"type": "api_error", "message": "Ref not found"}.
type APIErrorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ParseResponseError reads the body of a non-2xx HTTP response and translates
// it into an appropriate AppError. If the body matches the content API error
// format, its message is preserved. Otherwise a generic error is returned with
// the status code and raw body.
//
// The caller should only invoke this when resp.StatusCode indicates an error
// (i.e., not 2xx). The response body is fully consumed and closed.
func ParseResponseError(resp *http.Response, serviceName string) error {
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB limit
	if err != nil {
		return fmt.Errorf("%s returned status %d (failed to read body: %w)", serviceName, resp.StatusCode, err)
	}

	// Try to parse a structured error body.
	var apiErr APIErrorResponse
	if json.Unmarshal(bodyBytes, &apiErr) == nil && apiErr.Message != "" {
		return mapAPIError(resp.StatusCode, apiErr.Message, serviceName)
	}

	// Fallback: unstructured error body.
	return fmt.Errorf("%s returned status %d: %s", serviceName, resp.StatusCode, string(bodyBytes))
}

// mapAPIError translates the content API's HTTP status code into an AppError
// that preserves the error semantics.
func mapAPIError(status int, message, serviceName string) error {
	qualifiedMsg := fmt.Sprintf("%s: %s", serviceName, message)

	switch {
	case status == http.StatusNotFound:
		return apperrors.NotFound(serviceName, message)
	case status == http.StatusBadRequest:
		return apperrors.InvalidInput(qualifiedMsg)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return apperrors.Unauthorized(qualifiedMsg)
	case status >= 500:
		return apperrors.ServiceUnavailable(qualifiedMsg)
	default:
		return &apperrors.AppError{
			Code:    "UPSTREAM_ERROR",
			Message: qualifiedMsg,
			Status:  status,
		}
	}
}

// IsClientError returns true if the HTTP status code is a 4xx client error.
// Client errors should not be retried since the request itself was invalid.
func IsClientError(status int) bool {
	return status >= 400 && status < 500
}
