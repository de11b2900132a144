package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Processing ──> Shipped ──> Delivered
//	   │            │             │             │
//	   └────────────┴─────────────┴─────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: orders become immutable once
// they reach either state. Status is a value object that validates state
// transitions and provides string representations for persistence and
// display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when checkout creates an order.
	Pending

	// Confirmed indicates the store accepted the order.
	Confirmed

	// Processing indicates the store is preparing the order.
	Processing

	// Shipped indicates the order left the store for delivery.
	Shipped

	// Delivered indicates the order reached the customer.
	// Terminal: no further transitions are allowed.
	Delivered

	// Cancelled indicates the order was abandoned before delivery.
	// Reachable from any non-terminal status. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Confirmed:  "Confirmed",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Confirmed:  "Confirmed",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// getAllowedTargets returns the transition table: for each source status,
// the set of statuses it may legally move to. Terminal statuses map to an
// empty set.
func getAllowedTargets() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Confirmed, Cancelled},
		Confirmed:  {Processing, Cancelled},
		Processing: {Shipped, Cancelled},
		Shipped:    {Delivered, Cancelled},
		Delivered:  {},
		Cancelled:  {},
	}
}

// StatusFromString parses a status from its human-readable name.
// Matching is exact and case-sensitive; unrecognized names are rejected.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", name))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Confirmed, Processing, Shipped, Delivered,
// Cancelled. Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Invalid values render as "Unknown". Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
// Delivered and Cancelled are terminal.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether moving to target is structurally legal
// from this status, independent of who requests it. Invalid source or
// target statuses never allow a transition.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getAllowedTargets()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo moves the status to target if the transition is legal.
//
// Returns:
//   - (target, nil) on a legal transition
//   - (0, error) naming the illegal pair otherwise, including any attempt
//     to leave a terminal status
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s cannot transition to %s", s.String(), target.String()))
	}

	return target, nil
}
