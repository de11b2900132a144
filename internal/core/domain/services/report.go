package services

import (
	"github.com/shopspring/decimal"

	"storefront/internal/core/domain/model/order"
)

// CountByStatus returns how many orders in the set are in the given status.
// Orders that fail validation are ignored.
func CountByStatus(orders []*order.Order, status order.Status) int {
	count := 0
	for _, o := range orders {
		if o.Validate() != nil {
			continue
		}
		if o.Status() == status {
			count++
		}
	}
	return count
}

// Revenue sums the totals of the given orders. With excludeCancelled set,
// cancelled orders are skipped: they kept their total at cancellation time,
// so counting them would overstate earnings. Passing false yields the gross
// figure, cancelled included.
func Revenue(orders []*order.Order, excludeCancelled bool) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range orders {
		if o.Validate() != nil {
			continue
		}
		if excludeCancelled && o.Status() == order.Cancelled {
			continue
		}
		sum = sum.Add(o.Total())
	}
	return sum
}

// UniqueCustomers returns the number of distinct customers across the orders.
func UniqueCustomers(orders []*order.Order) int {
	seen := make(map[string]struct{})
	for _, o := range orders {
		if o.Validate() != nil {
			continue
		}
		seen[o.CustomerID().String()] = struct{}{}
	}
	return len(seen)
}
