package queries

import (
	"context"

	"storefront/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetStoreStatsQueryHandler computes a store's order statistics in the
// database. A single grouped scan yields per-status counts and totals;
// revenue excludes cancelled orders to match the reporting rules.
//
// Example:
//
//	handler := NewGetStoreStatsQueryHandler(db)
//	query, _ := NewGetStoreStatsQuery(storeID)
//
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders, revenue %s\n", stats.TotalOrders, stats.Revenue)
type GetStoreStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetStoreStatsQueryHandler creates a handler for store statistics queries.
// Requires a GORM database connection for query execution.
func NewGetStoreStatsQueryHandler(db *gorm.DB) GetStoreStatsQueryHandler {
	return GetStoreStatsQueryHandler{db: db}
}

// Handle executes the statistics query.
// Statuses never used by the store are absent from CountByStatus rather
// than reported as zero.
func (h GetStoreStatsQueryHandler) Handle(
	ctx context.Context,
	query GetStoreStatsQuery,
) (GetStoreStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStoreStatsQueryResponse{}, err
	}

	stats := GetStoreStatsQueryResponse{
		CountByStatus: make(map[string]int),
		Revenue:       decimal.Zero,
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*),
			COALESCE(SUM(total), 0)
		FROM orders
		WHERE store_id = ?
		GROUP BY status
	`, query.StoreID().Bytes()).Rows()
	if err != nil {
		return GetStoreStatsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status, count int
		var total decimal.Decimal

		if err = rows.Scan(&status, &count, &total); err != nil {
			return GetStoreStatsQueryResponse{}, err
		}

		stats.CountByStatus[order.Status(status).String()] = count
		stats.TotalOrders += count

		if order.Status(status) != order.Cancelled {
			stats.Revenue = stats.Revenue.Add(total)
		}
	}

	if err = rows.Err(); err != nil {
		return GetStoreStatsQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(DISTINCT customer_id)
		FROM orders
		WHERE store_id = ?
	`, query.StoreID().Bytes()).Row()

	if err = row.Scan(&stats.UniqueCustomers); err != nil {
		return GetStoreStatsQueryResponse{}, err
	}

	return stats, nil
}
