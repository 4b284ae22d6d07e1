package booklist

import (
	"errors"
	"fmt"

	"github.com/hupe1980/booklist/store"
)

// InvalidOffsetError indicates an insert offset outside [0, size].
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type InvalidOffsetError struct {
	Offset int
	Size   int
	cause  error
}

func (e *InvalidOffsetError) Error() string {
	return fmt.Sprintf("invalid offset: %d not in [0, %d]", e.Offset, e.Size)
}

func (e *InvalidOffsetError) Unwrap() error { return e.cause }

// CapacityExceededError indicates an insert into a collection whose
// fixed-capacity store is already full.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type CapacityExceededError struct {
	Capacity int
	cause    error
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("capacity exceeded: fixed store capacity %d", e.Capacity)
}

func (e *CapacityExceededError) Unwrap() error { return e.cause }

// InconsistentStateError reports divergence between the four backing stores.
// It is the self-audit failure mode: it never fires under a correct
// implementation and always indicates a coordination bug, not caller error.
type InconsistentStateError struct {
	Op string
}

func (e *InconsistentStateError) Error() string {
	return fmt.Sprintf("inconsistent internal state detected in %s", e.Op)
}

// IsInconsistentState reports whether err is an internal-state error.
func IsInconsistentState(err error) bool {
	var ise *InconsistentStateError
	return errors.As(err, &ise)
}

// translateStoreError lifts store-level errors into package-level ones so
// callers never depend on the store package directly.
func translateStoreError(err error) error {
	if err == nil {
		return nil
	}

	var capErr *store.CapacityError
	if errors.As(err, &capErr) {
		return &CapacityExceededError{Capacity: capErr.Capacity, cause: err}
	}

	var oor *store.OffsetOutOfRangeError
	if errors.As(err, &oor) {
		return &InvalidOffsetError{Offset: oor.Offset, Size: oor.Len, cause: err}
	}

	return err
}
