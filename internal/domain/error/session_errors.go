package error

import "errors"

// Session domain errors.
var (
	// ErrSessionNotFound is returned when a session does not exist or has expired.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionConflict is returned when concurrent updates to a session could not be reconciled.
	ErrSessionConflict = errors.New("session was modified concurrently")

	// ErrRateLimited is returned when too many sessions are started from one client.
	ErrRateLimited = errors.New("too many requests")
)

// SessionErrorCode defines error codes for session errors.
// Format: SES-XXYYYY where XX is category and YYYY is specific error.
type SessionErrorCode string

const (
	ErrCodeInvalidSessionID SessionErrorCode = "SES-010001"
	ErrCodeSessionNotFound  SessionErrorCode = "SES-020001"
	ErrCodeSessionConflict  SessionErrorCode = "SES-030001"
	ErrCodeRateLimited      SessionErrorCode = "SES-040001"
)

// SessionError represents a session error with code and message.
type SessionError struct {
	Code    SessionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SessionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SessionError) Unwrap() error {
	return e.Err
}

// NewSessionError creates a new SessionError with the given code and message.
func NewSessionError(code SessionErrorCode, message string, err error) *SessionError {
	return &SessionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
