package amadeus

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrMissingCredentials is returned when the client is constructed without
// both an API key and an API secret. It indicates the whole Amadeus
// integration is unusable, unlike a per-query failure, and is never
// converted to tool output text.
var ErrMissingCredentials = errors.New(
	"amadeus credentials not found: set AMADEUS_API_KEY and AMADEUS_API_SECRET")

// APIError is a failure reported by the Amadeus API itself (bad parameters,
// rate limits, auth rejection). It is recoverable per call: tools absorb it
// and render the provider's own description.
type APIError struct {
	StatusCode int
	Status     string
	Code       int
	Title      string
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("amadeus API error: %s", e.Description())
}

// Description returns the provider's diagnostic text, preferring the most
// specific field available.
func (e *APIError) Description() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Title != "" {
		return e.Title
	}
	return e.Status
}

// apiErrorBody is the error envelope Amadeus wraps failures in.
type apiErrorBody struct {
	Errors []struct {
		Status int    `json:"status"`
		Code   int    `json:"code"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
	ErrorDescription string `json:"error_description"`
}

// decodeAPIError turns a non-2xx response into an *APIError. The body is
// best-effort: if it is not the documented error envelope the HTTP status
// alone becomes the description.
func decodeAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apiErr
	}

	var parsed apiErrorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return apiErr
	}

	if len(parsed.Errors) > 0 {
		first := parsed.Errors[0]
		apiErr.Code = first.Code
		apiErr.Title = first.Title
		apiErr.Detail = first.Detail
	} else if parsed.ErrorDescription != "" {
		// OAuth token endpoint uses a flat error shape.
		apiErr.Detail = parsed.ErrorDescription
	}

	return apiErr
}
