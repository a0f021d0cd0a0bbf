package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for the simulator's failure taxonomy. Everything else is
// an internal anomaly handled as a logged no-op.
var (
	// ErrInsufficientFunds is raised by the execution engine when the cash
	// balance cannot cover the required capital plus fee. The trade is
	// rejected before any state is touched.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNotCancellable is returned when cancelling an order that is
	// already terminal.
	ErrNotCancellable = errors.New("order not cancellable")

	// ErrOrderNotFound is returned for an unknown order id.
	ErrOrderNotFound = errors.New("order not found")

	// ErrUnknownSymbol is returned for a symbol outside the instrument
	// universe.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrOverCover is returned when a buy would cover more than the
	// existing short size. Over-covering is rejected, never clamped or
	// flipped into a long.
	ErrOverCover = errors.New("buy quantity exceeds short position")
)

// ValidationError reports a malformed order draft. Drafts failing validation
// are rejected at the boundary and never enter the order book.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid order: %s %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
