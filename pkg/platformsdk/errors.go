package platformsdk

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIError represents an error response from the platform service. It
// carries the HTTP status code and the server's detail string.
type APIError struct {
	// StatusCode is the HTTP status code of the error response
	StatusCode int

	// Detail is the human-readable description from the response body
	Detail string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("platform api error (%d): %s", e.StatusCode, e.Detail)
}

// errorFromResponse builds an APIError from a non-2xx response body.
func errorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var payload DetailResponse
	if err := json.Unmarshal(body, &payload); err != nil || payload.Detail == "" {
		payload.Detail = http.StatusText(resp.StatusCode)
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Detail:     payload.Detail,
	}
}
