package order

import (
	"fmt"

	"commerce/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> Processing ──┬──> Completed
//	          │                 │
//	          └──> Cancelled <──┘
//
// Completed and Cancelled are terminal: they have no outgoing transitions.
// A transition from any status to itself is always permitted and is treated
// as a no-op by the aggregate.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned to every new order.
	Pending

	// Processing indicates the order has been accepted and is being worked on.
	Processing

	// Completed indicates the order has been fulfilled. Terminal.
	Completed

	// Cancelled indicates the order was called off before completion. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Processing: "processing",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Processing: "processing",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getAllowedTransitions returns the static transition table of the state machine.
// Terminal statuses map to an empty slice.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Processing, Cancelled},
		Processing: {Completed, Cancelled},
		Completed:  {}, // terminal
		Cancelled:  {}, // terminal
	}
}

// Statuses returns all valid statuses in their declaration order.
func Statuses() []Status {
	return []Status{Pending, Processing, Completed, Cancelled}
}

// StatusFromString parses the lowercase status name used for persistence and
// transport ("pending", "processing", "completed", "cancelled").
// Returns an error for anything else.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Processing, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status.
// Returns "unknown" for invalid status values.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// AllowedTransitions returns the statuses this status may legally move to.
// The result is a copy; terminal statuses yield an empty slice.
// The status itself is not listed: self-transition is always permitted but is
// a no-op, not an edge of the graph.
func (s Status) AllowedTransitions() []Status {
	allowed, ok := getAllowedTransitions()[s]
	if !ok {
		return []Status{}
	}

	result := make([]Status, len(allowed))
	copy(result, allowed)
	return result
}

// CanTransitionTo reports whether the state machine permits moving from s to
// newStatus. A status can always "transition" to itself.
func (s Status) CanTransitionTo(newStatus Status) bool {
	if s == newStatus {
		return true
	}

	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status has no outgoing transitions.
// Only Completed and Cancelled are terminal; invalid statuses are not.
func (s Status) IsTerminal() bool {
	allowed, ok := getAllowedTransitions()[s]
	return ok && len(allowed) == 0
}
