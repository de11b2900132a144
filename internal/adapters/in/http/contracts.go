package http

import (
	"time"

	"github.com/shopspring/decimal"
)

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewLineItem describes one priced position of an order being placed.
type NewLineItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Variant   string `json:"variant,omitempty"`
}

// NewOrder is the request body for placing an order. The declared total must
// equal the line item sum; the mismatch is rejected with 400.
type NewOrder struct {
	StoreID         string        `json:"storeId"`
	LineItems       []NewLineItem `json:"lineItems"`
	Total           string        `json:"total"`
	PaymentMethod   string        `json:"paymentMethod,omitempty"`
	ShippingAddress string        `json:"shippingAddress,omitempty"`
	Notes           string        `json:"notes,omitempty"`
}

// OrderCreated is returned after an order is placed.
type OrderCreated struct {
	ID string `json:"id"`
}

// NewTransition is the request body for moving an order to a new status.
// Target carries the status name ("Confirmed", "Shipped", ...); the tracking
// code is optional and only meaningful when shipping.
type NewTransition struct {
	Target       string `json:"target"`
	TrackingCode string `json:"trackingCode,omitempty"`
}

// TransitionRejected is returned when a transition request is turned down.
type TransitionRejected struct {
	Outcome string `json:"outcome"`
	Reason  string `json:"reason"`
}

// OrderStatus is returned after an accepted transition.
type OrderStatus struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// StoreOrder is one row of a store's order listing.
type StoreOrder struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customerId"`
	Status     string          `json:"status"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// StoreStats is a store's aggregated order statistics.
type StoreStats struct {
	TotalOrders     int             `json:"totalOrders"`
	CountByStatus   map[string]int  `json:"countByStatus"`
	Revenue         decimal.Decimal `json:"revenue"`
	UniqueCustomers int             `json:"uniqueCustomers"`
}

// NewGrant is the request body for granting store-scoped access.
// Level carries the level name ("Manager", "Staff", ...).
type NewGrant struct {
	GranteeID string `json:"granteeId"`
	Level     string `json:"level"`
}
