package error

import "errors"

// Checklist domain errors.
var (
	// ErrUnknownChecklist is returned when a checklist kind is not one of the fixed catalogs.
	ErrUnknownChecklist = errors.New("unknown checklist")

	// ErrChecklistItemNotFound is returned when a key is not part of the checklist catalog.
	ErrChecklistItemNotFound = errors.New("checklist item not found")
)

// ChecklistErrorCode defines error codes for checklist errors.
// Format: CHK-XXYYYY where XX is category and YYYY is specific error.
type ChecklistErrorCode string

const (
	ErrCodeUnknownChecklist      ChecklistErrorCode = "CHK-010001"
	ErrCodeChecklistItemNotFound ChecklistErrorCode = "CHK-020001"
)

// ChecklistError represents a checklist error with code and message.
type ChecklistError struct {
	Code    ChecklistErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ChecklistError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ChecklistError) Unwrap() error {
	return e.Err
}

// NewChecklistError creates a new ChecklistError with the given code and message.
func NewChecklistError(code ChecklistErrorCode, message string, err error) *ChecklistError {
	return &ChecklistError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
