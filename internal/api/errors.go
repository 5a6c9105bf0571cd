package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// ErrNoBrands is returned by auto-discovery when the account has no brands.
var ErrNoBrands = errors.New("no brands found")

// APIError is a non-2xx response from Metricool.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	text := http.StatusText(e.StatusCode)
	if text == "" {
		text = "unexpected status"
	}

	if body := strings.TrimSpace(e.Body); body != "" {
		return fmt.Sprintf("API error %d (%s): %s", e.StatusCode, text, body)
	}

	return fmt.Sprintf("API error %d (%s)", e.StatusCode, text)
}

// NetworkError is a transport-level failure: DNS, refused or reset connections.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// CredentialsError reports credential fields that no source provided.
type CredentialsError struct {
	Missing []string
}

func (e *CredentialsError) Error() string {
	return "missing Metricool credentials: " + strings.Join(e.Missing, ", ")
}

// ValidationError is a rejected user input.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}

	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}
