package client

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

var (
	ErrEmptyPath    = errors.New("request path is empty")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("server unavailable")
)

// maxErrorBody bounds how much of a failed response body is kept.
const maxErrorBody = 4 << 10

// APIError is returned for any response whose status is outside [200, 300).
type APIError struct {
	StatusCode int
	StatusText string
	Body       string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("HTTP %d - %s", e.StatusCode, e.StatusText)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrUnavailable
	default:
		return nil
	}
}

// newAPIError builds an APIError from resp. Reading the body never fails
// the call: on a read error the snippet is simply left empty.
func newAPIError(resp *http.Response) *APIError {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}

	apiErr := &APIError{StatusCode: resp.StatusCode, StatusText: text}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err == nil {
		apiErr.Body = strings.TrimSpace(string(b))
	}
	return apiErr
}
