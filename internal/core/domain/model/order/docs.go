// Package order provides domain entities and business logic for order
// management in the storefront system. It implements the Order aggregate
// root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root managing order identity, line items, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - LineItem: A value object for purchased products with quantity and price
//
// Key business rules:
//   - Orders must reference a valid store and customer and carry at least one line item
//   - The order total must equal the line item sum when the order is created
//   - Status follows the workflow Pending -> Confirmed -> Processing -> Shipped -> Delivered
//   - Cancelled is reachable from every non-terminal status
//   - Delivered and Cancelled are terminal: no further transitions are legal
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
