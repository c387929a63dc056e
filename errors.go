package iothubsas

import "errors"

var (
	// ErrNilProperties is returned when New is called with nil
	// connection-string properties.
	ErrNilProperties = errors.New("connection properties missing")
)

// Error codes carried by CredentialError.
const (
	ErrorCodePropertiesNil = "properties_nil"
	ErrorCodeInvalidOption = "invalid_option"
)

// CredentialError wraps construction failures with additional context.
// It provides structured error information that can be used for logging,
// metrics, and returning appropriate error responses.
//
// Signing failures are never wrapped: errors from the configured Signer
// propagate to callers unchanged.
type CredentialError struct {
	// Code is a machine-readable error code (e.g., "properties_nil")
	Code string

	// Message is a human-readable error message
	Message string

	// Details contains the underlying error
	Details error
}

// Error implements the error interface.
func (e *CredentialError) Error() string {
	if e.Details != nil {
		return e.Message + ": " + e.Details.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error for error unwrapping.
func (e *CredentialError) Unwrap() error {
	return e.Details
}

// NewCredentialError creates a new CredentialError with the given code and message.
func NewCredentialError(code, message string, details error) *CredentialError {
	return &CredentialError{
		Code:    code,
		Message: message,
		Details: details,
	}
}
