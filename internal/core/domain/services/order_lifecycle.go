package services

import (
	"fmt"
	"time"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/order"
)

// TransitionOutcome classifies the result of a transition request.
type TransitionOutcome int

const (
	// OutcomeUnknown represents an uninitialized result.
	OutcomeUnknown TransitionOutcome = iota

	// TransitionAccepted means the order moved to the requested status.
	TransitionAccepted

	// TransitionInvalid means the requested change is not in the transition
	// table for the order's current status, including any attempt to leave
	// a terminal status.
	TransitionInvalid

	// TransitionUnauthorized means the requesting actor may not manage the
	// order's store.
	TransitionUnauthorized
)

// String returns the human-readable name of the outcome.
func (o TransitionOutcome) String() string {
	switch o {
	case TransitionAccepted:
		return "Accepted"
	case TransitionInvalid:
		return "InvalidTransition"
	case TransitionUnauthorized:
		return "Unauthorized"
	default:
		return "Unknown"
	}
}

// TransitionResult is the value returned by every transition request.
// It names the outcome unambiguously so callers (HTTP handlers, jobs,
// screens) can decide what to render without inspecting errors.
type TransitionResult struct {
	outcome TransitionOutcome
	order   *order.Order
	reason  string
}

// Outcome returns the classification of the request.
func (r TransitionResult) Outcome() TransitionOutcome {
	return r.outcome
}

// Accepted reports whether the transition was applied.
func (r TransitionResult) Accepted() bool {
	return r.outcome == TransitionAccepted
}

// Order returns the updated order on acceptance, nil otherwise.
func (r TransitionResult) Order() *order.Order {
	return r.order
}

// Reason returns a diagnostic message for rejected requests, empty on
// acceptance. Intended for logs and API payloads, not for branching.
func (r TransitionResult) Reason() string {
	return r.reason
}

func acceptedResult(o *order.Order) TransitionResult {
	return TransitionResult{outcome: TransitionAccepted, order: o}
}

func invalidResult(reason string) TransitionResult {
	return TransitionResult{outcome: TransitionInvalid, reason: reason}
}

func unauthorizedResult(reason string) TransitionResult {
	return TransitionResult{outcome: TransitionUnauthorized, reason: reason}
}

// OrderLifecycle is the domain service that gates every order status change.
// It combines two independent rules:
//   - structural legality: the status state machine must allow the move
//   - authorization: the requesting actor must be able to manage the
//     order's store
//
// Structural legality is checked before authorization so a rejected caller
// learns nothing about an order beyond "this transition is not currently
// possible", and so no authority level can bypass the workflow shape.
//
// Example:
//
//	lifecycle := services.NewOrderLifecycle()
//	result := lifecycle.RequestTransition(actor, o, order.Confirmed, time.Now())
//	if !result.Accepted() {
//	    // render result.Outcome() / result.Reason()
//	    return
//	}
//	// persist result.Order() with a conditional update on the prior status
type OrderLifecycle struct{}

// NewOrderLifecycle creates a new OrderLifecycle instance.
func NewOrderLifecycle() OrderLifecycle {
	return OrderLifecycle{}
}

// RequestTransition decides and, when allowed, applies a status change.
//
// Decision order:
//  1. A missing or terminal order yields TransitionInvalid.
//  2. A target outside the allowed set for the current status yields
//     TransitionInvalid, naming the illegal pair.
//  3. An actor that cannot manage the order's store yields
//     TransitionUnauthorized (a nil actor always fails this check).
//  4. Otherwise the order moves to the target and UpdatedAt is refreshed;
//     the result carries the updated aggregate.
//
// The method never returns an error: every path produces a named outcome.
func (l OrderLifecycle) RequestTransition(
	actor *access.Actor,
	o *order.Order,
	target order.Status,
	now time.Time,
) TransitionResult {
	if err := o.Validate(); err != nil {
		return invalidResult("order is not available")
	}

	if o.Status().IsTerminal() {
		return invalidResult(fmt.Sprintf("order is finalized in %s status", o.Status()))
	}

	if !o.Status().CanTransitionTo(target) {
		return invalidResult(fmt.Sprintf("%s cannot transition to %s", o.Status(), target))
	}

	if !actor.CanManageStore(o.StoreID()) {
		return unauthorizedResult("actor cannot manage the order's store")
	}

	if err := o.ChangeStatus(target, now); err != nil {
		// Unreachable after CanTransitionTo, kept as a safety net.
		return invalidResult(err.Error())
	}

	return acceptedResult(o)
}
