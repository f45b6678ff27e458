package utils

import "fmt"

// ValidationError signals a missing or malformed required field. It is always
// recoverable locally and carries the exact message shown to the guest.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) error {
	return ValidationError{Field: field, Message: message}
}

// StoreUnavailableError signals that the backing document store is not
// configured. Surfaced to guests as a generic retry-later message.
type StoreUnavailableError struct {
	Op string
}

func (e StoreUnavailableError) Error() string {
	return fmt.Sprintf("document store is not configured, cannot %s", e.Op)
}

// ProviderCallError wraps a failure from an external payment provider call.
// The cause is logged in full; only the generic message reaches the guest.
type ProviderCallError struct {
	Provider string
	Cause    error
}

func (e ProviderCallError) Error() string {
	return fmt.Sprintf("provider call to %s failed: %v", e.Provider, e.Cause)
}

func (e ProviderCallError) Unwrap() error {
	return e.Cause
}

// SlotConflictError signals that a candidate reservation window overlaps an
// existing booking for the same provider. Only raised by the optional
// conflict check; the default create path does not perform one.
type SlotConflictError struct {
	ProviderID string
}

func (e SlotConflictError) Error() string {
	return fmt.Sprintf("requested slot overlaps an existing booking for provider %s", e.ProviderID)
}
