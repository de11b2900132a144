package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStoreOrdersQueryHandler retrieves a store's orders from the database.
// Returns flat read models sorted newest first, bypassing aggregate loading.
//
// Example:
//
//	handler := NewGetStoreOrdersQueryHandler(db)
//	query, _ := NewGetStoreOrdersQuery(storeID)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("failed to list store orders: %v", err)
//	    return err
//	}
type GetStoreOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetStoreOrdersQueryHandler creates a handler for store order listings.
// Requires a GORM database connection for query execution.
func NewGetStoreOrdersQueryHandler(db *gorm.DB) GetStoreOrdersQueryHandler {
	return GetStoreOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve the store's orders.
// Returns orders in every status, newest first. Status codes stored in the
// database are rendered through the domain's status names.
func (h GetStoreOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStoreOrdersQuery,
) ([]GetStoreOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetStoreOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			total,
			created_at,
			updated_at
		FROM orders
		WHERE store_id = ?
		ORDER BY created_at DESC
	`, query.StoreID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetStoreOrdersQueryResponse
		var id, customerID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&customerID,
			&status,
			&orderResp.Total,
			&orderResp.CreatedAt,
			&orderResp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		buyerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.CustomerID = buyerID

		orderResp.Status = order.Status(status).String()
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
