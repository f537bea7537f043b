// Package error defines domain-specific errors for the Eternal Wealth Toolkit.
package error

import "errors"

// Entry domain errors shared by every record collection.
var (
	// ErrEntryNotFound is returned when no entry with the given id exists in a collection.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrMissingRequiredField is returned when a required text field is empty after trimming.
	ErrMissingRequiredField = errors.New("required field is empty")

	// ErrInvalidAmount is returned when an amount does not parse as a finite decimal.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNegativeAmount is returned when an amount parses but is below zero.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrInvalidStatus is returned when a status value is outside the collection's enum.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidEntryType is returned when a noise/life type is neither noise nor life.
	ErrInvalidEntryType = errors.New("invalid entry type")

	// ErrFieldTooLong is returned when a text field exceeds its maximum length.
	ErrFieldTooLong = errors.New("field too long")
)

// EntryErrorCode defines error codes for entry errors.
// Format: ENT-XXYYYY where XX is category and YYYY is specific error.
type EntryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingRequiredField EntryErrorCode = "ENT-010001"
	ErrCodeInvalidAmount        EntryErrorCode = "ENT-010002"
	ErrCodeNegativeAmount       EntryErrorCode = "ENT-010003"
	ErrCodeInvalidStatus        EntryErrorCode = "ENT-010004"
	ErrCodeInvalidEntryType     EntryErrorCode = "ENT-010005"
	ErrCodeFieldTooLong         EntryErrorCode = "ENT-010006"
	ErrCodeMalformedEntryBody   EntryErrorCode = "ENT-010007"

	// Lookup errors (02XXXX)
	ErrCodeEntryNotFound  EntryErrorCode = "ENT-020001"
	ErrCodeInvalidEntryID EntryErrorCode = "ENT-020002"
)

// EntryError represents an entry error with code and message.
type EntryError struct {
	Code    EntryErrorCode
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// NewEntryError creates a new EntryError for the given field.
func NewEntryError(code EntryErrorCode, field, message string, err error) *EntryError {
	return &EntryError{
		Code:    code,
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// NewEntryNotFoundError creates the EntryError reported when an id is not part of a collection.
func NewEntryNotFoundError(collection string) *EntryError {
	return NewEntryError(ErrCodeEntryNotFound, "id", collection+" entry not found", ErrEntryNotFound)
}
