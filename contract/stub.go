package contract

import (
	"errors"
	"fmt"
)

// ImplementThisError marks a function body as an intentional stub whose
// implementation is not yet complete. It is not a contract violation:
// catch-all handling that treats "unimplemented" differently from "contract
// broken" must be able to tell the two apart, so it does not match Violation.
type ImplementThisError struct {
	Message string
}

// Error implements the error interface.
func (e *ImplementThisError) Error() string {
	return e.Message
}

// DontImplementThisError marks code that is intentionally left unimplemented
// and should be skipped by automated implementation tools.
type DontImplementThisError struct {
	Message string
}

// Error implements the error interface.
func (e *DontImplementThisError) Error() string {
	return e.Message
}

// ImplementThis creates a stub marker error for an unimplemented body.
func ImplementThis(format string, args ...any) error {
	return &ImplementThisError{Message: fmt.Sprintf(format, args...)}
}

// DontImplementThis creates a stub marker error for a body that must stay
// unimplemented.
func DontImplementThis(format string, args ...any) error {
	return &DontImplementThisError{Message: fmt.Sprintf(format, args...)}
}

// IsImplementThis checks if an error is an ImplementThis stub marker.
func IsImplementThis(err error) bool {
	var e *ImplementThisError
	return errors.As(err, &e)
}

// IsDontImplementThis checks if an error is a DontImplementThis stub marker.
func IsDontImplementThis(err error) bool {
	var e *DontImplementThisError
	return errors.As(err, &e)
}
