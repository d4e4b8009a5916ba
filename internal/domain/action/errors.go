package action

import "errors"

// Common errors
var (
	ErrInvalidAmount = errors.New("amount must be positive")
)

// ErrMissingField indicates a required request field was absent
type ErrMissingField struct {
	Field string
}

func (e ErrMissingField) Error() string {
	return "missing required field: " + e.Field
}

// ErrPreviewNotFound indicates the referenced preview does not exist,
// has expired, or belongs to a different action kind
type ErrPreviewNotFound struct {
	ID string
}

func (e ErrPreviewNotFound) Error() string {
	return "action preview not found or expired: " + e.ID
}
