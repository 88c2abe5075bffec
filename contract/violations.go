package contract

import (
	"errors"
	"fmt"
)

// Kind represents the type of contract violation that occurred.
type Kind int

const (
	// KindPrecondition violations are raised when a precondition fails before the call.
	KindPrecondition Kind = iota
	// KindPostcondition violations are raised when a postcondition fails after the call.
	KindPostcondition
	// KindInvariant violations are raised when an invariant fails before or after the call.
	KindInvariant
)

// String returns a human-readable name for the violation kind.
func (k Kind) String() string {
	switch k {
	case KindPrecondition:
		return "Precondition Violation"
	case KindPostcondition:
		return "Postcondition Violation"
	case KindInvariant:
		return "Invariant Violation"
	default:
		return "Contract Violation"
	}
}

// Violation is a structured error describing a broken contract.
// It identifies the offending function and, when a condition predicate
// failed to evaluate, carries the underlying error as Cause.
type Violation struct {
	// Kind is the type of violation (precondition, postcondition, invariant).
	Kind Kind
	// Func is the name of the contracted function.
	Func string
	// Message is a human-readable description of what went wrong.
	Message string
	// Cause is the underlying predicate evaluation error, if any.
	Cause error
}

// Error implements the error interface.
func (v *Violation) Error() string {
	return v.Message
}

// Unwrap returns the underlying evaluation error, if any.
func (v *Violation) Unwrap() error {
	return v.Cause
}

// NewPreconditionViolation creates a violation for a false precondition.
func NewPreconditionViolation(fn string) *Violation {
	return &Violation{
		Kind:    KindPrecondition,
		Func:    fn,
		Message: fmt.Sprintf("precondition violated for function %s", fn),
	}
}

// NewPostconditionViolation creates a violation for a false postcondition.
func NewPostconditionViolation(fn string) *Violation {
	return &Violation{
		Kind:    KindPostcondition,
		Func:    fn,
		Message: fmt.Sprintf("postcondition violated for function %s", fn),
	}
}

// NewInvariantViolation creates a violation for a false invariant.
// The stage distinguishes the check before execution from the one after.
func NewInvariantViolation(fn, stage string) *Violation {
	return &Violation{
		Kind:    KindInvariant,
		Func:    fn,
		Message: fmt.Sprintf("invariant violated %s execution of %s", stage, fn),
	}
}

// wrapEvalError wraps an error raised while evaluating a condition predicate.
// Errors that already are violations propagate unchanged so a custom
// predicate can raise a typed violation directly; the same rule applies to
// all three condition kinds.
func wrapEvalError(kind Kind, fn, condition string, err error) *Violation {
	var v *Violation
	if errors.As(err, &v) {
		return v
	}
	return &Violation{
		Kind:    kind,
		Func:    fn,
		Message: fmt.Sprintf("error evaluating %s for %s: %v", condition, fn, err),
		Cause:   err,
	}
}

// IsViolation checks if an error is a contract Violation of any kind.
func IsViolation(err error) bool {
	var v *Violation
	return errors.As(err, &v)
}

// AsViolation attempts to convert an error to a Violation.
// Returns nil if the error is not a Violation.
func AsViolation(err error) *Violation {
	var v *Violation
	if errors.As(err, &v) {
		return v
	}
	return nil
}
