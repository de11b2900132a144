// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the storefront system.
// It implements logic that does not naturally belong to a single aggregate
// root.
//
// The package includes:
//   - OrderLifecycle: decides order status transitions, combining the
//     structural legality rules of the status state machine with the
//     authorization engine's store-management check
//   - Reporting helpers over in-memory order sets (counts, revenue,
//     distinct customers)
//
// Domain services coordinate between aggregates following Domain-Driven
// Design principles; they hold no state and perform no I/O.
package services
