package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetStoreStatsQueryIsNotConstructed = errors.New(
	"GetStoreStatsQuery must be created via NewGetStoreStatsQuery constructor",
)

// GetStoreStatsQuery retrieves aggregate order statistics for one store:
// per-status counts, revenue and the number of distinct customers.
//
// Example:
//
//	query, err := NewGetStoreStatsQuery(storeID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetStoreStatsQueryHandler(db)
//	stats, err := handler.Handle(ctx, query)
type GetStoreStatsQuery struct { //nolint:recvcheck //using for validation
	storeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStoreStatsQuery creates a query for one store's statistics.
// Validates that the store identifier is valid.
func NewGetStoreStatsQuery(storeID kernel.UUID) (GetStoreStatsQuery, error) {
	if err := storeID.Validate(); err != nil {
		return GetStoreStatsQuery{}, err
	}

	return GetStoreStatsQuery{
		storeID: storeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStoreStatsQueryIsNotConstructed if validation fails.
func (q GetStoreStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreStatsQueryIsNotConstructed)
}

// StoreID returns the store whose statistics are requested.
func (q GetStoreStatsQuery) StoreID() kernel.UUID {
	return q.storeID
}

// GetStoreStatsQueryResponse represents a store's order statistics.
// Revenue excludes cancelled orders; TotalOrders counts every order.
type GetStoreStatsQueryResponse struct {
	TotalOrders     int
	CountByStatus   map[string]int
	Revenue         decimal.Decimal
	UniqueCustomers int
}
