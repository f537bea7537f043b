package error

import "errors"

// Savings domain errors.
var (
	// ErrInvalidFundAmount is returned when the emergency fund balance is not a finite decimal.
	ErrInvalidFundAmount = errors.New("invalid emergency fund amount")

	// ErrNegativeFundAmount is returned when the emergency fund balance is below zero.
	ErrNegativeFundAmount = errors.New("emergency fund must not be negative")

	// ErrInvalidGoalAmount is returned when the emergency fund goal is not a finite decimal
	// or is not greater than zero.
	ErrInvalidGoalAmount = errors.New("invalid emergency fund goal")
)

// SavingsErrorCode defines error codes for savings errors.
// Format: SAV-XXYYYY where XX is category and YYYY is specific error.
type SavingsErrorCode string

const (
	ErrCodeInvalidFundAmount  SavingsErrorCode = "SAV-010001"
	ErrCodeNegativeFundAmount SavingsErrorCode = "SAV-010002"
	ErrCodeInvalidGoalAmount  SavingsErrorCode = "SAV-010003"
	ErrCodeMissingSavingsBody SavingsErrorCode = "SAV-010004"
)

// SavingsError represents a savings error with code and message.
type SavingsError struct {
	Code    SavingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SavingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SavingsError) Unwrap() error {
	return e.Err
}

// NewSavingsError creates a new SavingsError with the given code and message.
func NewSavingsError(code SavingsErrorCode, message string, err error) *SavingsError {
	return &SavingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
