// Package kernel contains shared value objects used across the storefront
// domain model. It currently provides the UUID identifier type that backs
// every entity and aggregate identity (actors, stores, orders, products).
//
// Value objects in this package are immutable and validate themselves;
// zero values are invalid and must be replaced through the provided
// constructor functions.
package kernel
