package pos

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExceeded rejects an item whose category is already at
	// its limit for the current meal size.
	ErrCapacityExceeded = errors.New("category limit reached for this meal size")

	// ErrEmptyOrder rejects submitting an order with no items.
	ErrEmptyOrder = errors.New("add items to the order before submitting")

	// ErrNoMealSize rejects item or submit intents when no size is chosen.
	ErrNoMealSize = errors.New("select a meal size first")

	// ErrMissingEmployeeID rejects finalize without an employee identifier.
	ErrMissingEmployeeID = errors.New("employee id is required")

	// ErrNothingPending rejects finalize when the transaction is empty.
	ErrNothingPending = errors.New("no orders to submit")

	// ErrItemNotFound is returned (or wrapped) by an ItemSource when no
	// food exists for the requested id.
	ErrItemNotFound = errors.New("item not found")
)

// PersistenceError wraps a failed or timed-out finalize call. The
// transaction it was carrying is preserved verbatim for retry.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("transaction could not be saved: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
