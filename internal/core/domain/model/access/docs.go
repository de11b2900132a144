// Package access provides the authorization model for the storefront system.
// It decides which actions an actor may perform against a store by resolving
// the actor's global permission level against any per-store grants.
//
// The package includes:
//   - Level: a closed, rank-ordered enumeration of permission levels
//   - StoreGrant: an explicit per-store permission override with audit metadata
//   - Actor: the permission profile answering capability questions
//
// Key business rules:
//   - The level order is Master > Manager > Staff > StoreOwner > Customer
//   - A master actor passes every store-scoped check regardless of grants
//   - A store grant overrides the actor's global level for that store only
//   - Unknown or missing data degrades to Customer, so every check fails closed
//
// All operations are pure and total: they never return errors and never
// mutate their inputs, which makes them safe under concurrent invocation.
package access
