package quotes

import "fmt"

// ErrorType categorizes a failed quote fetch.
type ErrorType string

const (
	// ErrorTypeNetwork covers connection-level failures (refused, DNS, reset).
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeServer covers HTTP 5xx responses.
	ErrorTypeServer ErrorType = "server"
	// ErrorTypeClient covers HTTP 4xx responses.
	ErrorTypeClient ErrorType = "client"
	// ErrorTypeValidation indicates a 2xx response whose body was unusable.
	ErrorTypeValidation ErrorType = "validation"
)

// FetchError is a structured failure from the quote service. The retry
// wrapper treats every kind the same way, but the type keeps diagnostics
// useful after retries are exhausted.
type FetchError struct {
	Type       ErrorType
	StatusCode int
	Message    string
	Cause      error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Type, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

func newNetworkError(cause error) *FetchError {
	return &FetchError{
		Type:    ErrorTypeNetwork,
		Message: "quote request failed",
		Cause:   cause,
	}
}

func newValidationError(message string) *FetchError {
	return &FetchError{
		Type:    ErrorTypeValidation,
		Message: message,
	}
}

func newStatusError(statusCode int) *FetchError {
	t := ErrorTypeClient
	if statusCode >= 500 {
		t = ErrorTypeServer
	}
	return &FetchError{
		Type:       t,
		StatusCode: statusCode,
		Message:    "quote service returned an error",
	}
}
