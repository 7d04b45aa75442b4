package services

import "errors"

// Expected error conditions surfaced to callers. Messages are the exact
// strings returned in error responses.
var (
	ErrRoomNotFound       = errors.New("Room not found")
	ErrBookingNotFound    = errors.New("Booking not found")
	ErrMenuItemNotFound   = errors.New("Menu item not found")
	ErrUserNotFound       = errors.New("User not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func missingField(field string) *ValidationError {
	return newValidationError(field, "Missing required field "+field)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is one of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRoomNotFound) ||
		errors.Is(err, ErrBookingNotFound) ||
		errors.Is(err, ErrMenuItemNotFound) ||
		errors.Is(err, ErrUserNotFound)
}
