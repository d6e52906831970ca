package inventory

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by searches when no item matches.
// Not-found is a normal outcome, not a fault.
var ErrNotFound = errors.New("item not found")

// GenErrorCode categorizes generation errors.
type GenErrorCode string

const (
	// ErrCodeInvalidCount indicates the requested item count cannot be
	// satisfied (negative, or larger than the ID space).
	ErrCodeInvalidCount GenErrorCode = "INVALID_COUNT"

	// ErrCodeIDSpaceExhausted indicates the generator hit its retry
	// budget before finding enough unique IDs.
	ErrCodeIDSpaceExhausted GenErrorCode = "ID_SPACE_EXHAUSTED"
)

// GenError represents an error detected during inventory generation.
//
// Generation is the only operation in the package with a hard failure
// mode: the ID space holds IDMax-IDMin values, and the generator must
// fail explicitly rather than retry forever when it cannot satisfy a
// request.
type GenError struct {
	// Code identifies the error category.
	Code GenErrorCode

	// Message is a human-readable description.
	Message string

	// Count is the requested item count.
	Count int
}

// Error implements the error interface.
func (e *GenError) Error() string {
	return fmt.Sprintf("%s: %s (count=%d)", e.Code, e.Message, e.Count)
}

// IsInvalidCount reports whether err is a GenError with
// ErrCodeInvalidCount. Uses errors.As to handle wrapped errors.
func IsInvalidCount(err error) bool {
	var ge *GenError
	if errors.As(err, &ge) {
		return ge.Code == ErrCodeInvalidCount
	}
	return false
}

// IsIDSpaceExhausted reports whether err is a GenError with
// ErrCodeIDSpaceExhausted. Uses errors.As to handle wrapped errors.
func IsIDSpaceExhausted(err error) bool {
	var ge *GenError
	if errors.As(err, &ge) {
		return ge.Code == ErrCodeIDSpaceExhausted
	}
	return false
}

func newInvalidCountError(count int, msg string) *GenError {
	return &GenError{Code: ErrCodeInvalidCount, Message: msg, Count: count}
}

func newExhaustedError(count int) *GenError {
	return &GenError{
		Code:    ErrCodeIDSpaceExhausted,
		Message: "retry budget exceeded while drawing unique IDs",
		Count:   count,
	}
}
