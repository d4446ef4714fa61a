package order

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidStatusTransition is the sentinel every InvalidStatusTransitionError
// unwraps to. Callers use it with errors.Is to distinguish a rejected
// transition from storage failures.
var ErrInvalidStatusTransition = errors.New("invalid order status transition")

// InvalidStatusTransitionError reports a status change the state machine does
// not permit. It carries the current status, the requested status, and the
// list of statuses the order may legally move to. An empty Allowed list means
// the order is in a terminal stage.
//
// This is a client-correctable error, never fatal.
type InvalidStatusTransitionError struct {
	From    Status
	To      Status
	Allowed []Status
}

// NewInvalidStatusTransitionError creates the error for a rejected transition
// from one status to another, capturing the legal transitions of the current
// status.
func NewInvalidStatusTransitionError(from, to Status) *InvalidStatusTransitionError {
	return &InvalidStatusTransitionError{
		From:    from,
		To:      to,
		Allowed: from.AllowedTransitions(),
	}
}

func (e *InvalidStatusTransitionError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("order status '%s' is in a terminal stage and cannot be updated anymore", e.From)
	}

	names := make([]string, len(e.Allowed))
	for i, s := range e.Allowed {
		names[i] = s.String()
	}

	return fmt.Sprintf("cannot update order status from '%s' to '%s', allowed transitions are: %s",
		e.From, e.To, strings.Join(names, ", "))
}

func (e *InvalidStatusTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}
