package enrollment

import (
	"errors"
	"strings"
)

var (
	ErrAlreadySubmitted     = errors.New("enrollment has already been submitted")
	ErrEnrollmentNotFound   = errors.New("enrollment not found")
	ErrDependentNotFound    = errors.New("dependent not found")
	ErrCompositionViolation = errors.New("enrollment composition rules violated")
	ErrCoverageNotSelected  = errors.New("parental coverage has not been selected")
	ErrParentSetMismatch    = errors.New("parent does not belong to the selected parent set")
	ErrParentSetRequired    = errors.New("a parent set must be chosen before adding parents")
)

// CompositionError carries the individual rule violations so handlers can
// return them as a list. It unwraps to ErrCompositionViolation.
type CompositionError struct {
	Violations []string
}

func (e *CompositionError) Error() string {
	return strings.Join(e.Violations, "; ")
}

func (e *CompositionError) Unwrap() error {
	return ErrCompositionViolation
}
