package riot

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMissingParameter = errors.New("missing url parameter")
	ErrUnknownEndpoint  = errors.New("unknown endpoint")
)

// TransportError reports a request that never produced an HTTP response.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("error making request to %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx response. The status code is reported as is; callers
// decide what it means for them.
type APIError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("unexpected status code from %s: %d %s", e.URL, e.StatusCode, e.Description())
}

// Description names the status codes the remote service documents.
func (e *APIError) Description() string {
	if desc, ok := statusDescriptions[e.StatusCode]; ok {
		return desc
	}
	return http.StatusText(e.StatusCode)
}

var statusDescriptions = map[int]string{
	http.StatusBadRequest:           "Bad request",
	http.StatusUnauthorized:         "Unauthorized",
	http.StatusForbidden:            "Forbidden",
	http.StatusNotFound:             "Data not found",
	http.StatusMethodNotAllowed:     "Method not allowed",
	http.StatusUnsupportedMediaType: "Unsupported media type",
	http.StatusTooManyRequests:      "Rate limit exceeded",
	http.StatusInternalServerError:  "Internal server error",
	http.StatusBadGateway:           "Bad gateway",
	http.StatusServiceUnavailable:   "Service unavailable",
	http.StatusGatewayTimeout:       "Gateway timeout",
}

type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("error decoding response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

type MissingParameterError struct {
	Name     string
	Template string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing value for {%s} in %s", e.Name, e.Template)
}

func (e *MissingParameterError) Unwrap() error {
	return ErrMissingParameter
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not an
// *APIError.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
