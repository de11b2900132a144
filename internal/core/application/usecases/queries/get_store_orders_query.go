// Package queries contains read-only operations over the storefront data.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return flat read models, bypassing the aggregates.
package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetStoreOrdersQueryIsNotConstructed = errors.New(
	"GetStoreOrdersQuery must be created via NewGetStoreOrdersQuery constructor",
)

// GetStoreOrdersQuery retrieves all orders placed against one store.
//
// Example:
//
//	query, err := NewGetStoreOrdersQuery(storeID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetStoreOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type GetStoreOrdersQuery struct { //nolint:recvcheck //using for validation
	storeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStoreOrdersQuery creates a query for one store's orders.
// Validates that the store identifier is valid.
func NewGetStoreOrdersQuery(storeID kernel.UUID) (GetStoreOrdersQuery, error) {
	if err := storeID.Validate(); err != nil {
		return GetStoreOrdersQuery{}, err
	}

	return GetStoreOrdersQuery{
		storeID: storeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStoreOrdersQueryIsNotConstructed if validation fails.
func (q GetStoreOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreOrdersQueryIsNotConstructed)
}

// StoreID returns the store whose orders are requested.
func (q GetStoreOrdersQuery) StoreID() kernel.UUID {
	return q.storeID
}

// GetStoreOrdersQueryResponse represents one order row in the store's list.
type GetStoreOrdersQueryResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	Status     string
	Total      decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
