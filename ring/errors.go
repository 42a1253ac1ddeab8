package ring

import (
	"errors"
	"fmt"

	"github.com/c360studio/algebra/category"
)

// CategoryViolationError reports a structure constructed with an unknown
// or inconsistent lattice tag. It is not recoverable: downstream code is
// entitled to trust that every live structure carries a valid, invariant
// tag.
type CategoryViolationError struct {
	// Tag is the offending category value.
	Tag category.Category

	// Structure names the structure being tagged, when known.
	Structure string

	// Reason describes the violation.
	Reason string
}

func (e *CategoryViolationError) Error() string {
	if e.Structure != "" {
		return fmt.Sprintf("category violation on %s: tag %q: %s", e.Structure, e.Tag, e.Reason)
	}
	return fmt.Sprintf("category violation: tag %q: %s", e.Tag, e.Reason)
}

// IsCategoryViolation returns true if the error is a category violation.
func IsCategoryViolation(err error) bool {
	var cv *CategoryViolationError
	return errors.As(err, &cv)
}

// DomainError reports an operation invoked on a structure for which it is
// not mathematically defined, such as the fraction field of a ring with
// zero divisors. Callers may treat it as "undefined here" and continue.
type DomainError struct {
	// Op is the operation that was attempted.
	Op string

	// Structure names the structure the operation was invoked on.
	Structure string

	// Reason describes why the operation is undefined.
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s is undefined for %s: %s", e.Op, e.Structure, e.Reason)
}

// IsDomainError returns true if the error is a domain error.
func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}
