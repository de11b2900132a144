package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// together with their line items and metadata.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status change to an existing order aggregate.
	// The write is conditional: it only applies if the stored row is still
	// in expectedPriorStatus. When another writer moved the order first,
	// no row matches and an errs.ConflictError is returned, so lost updates
	// surface as conflicts instead of silent overwrites.
	Update(ctx context.Context, aggregate *order.Order, expectedPriorStatus order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its line items and current status.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByStore retrieves every order placed against the given store,
	// newest first.
	GetAllByStore(ctx context.Context, storeID kernel.UUID) ([]*order.Order, error)

	// GetAllPendingBefore retrieves orders still in Pending status whose
	// creation time is earlier than the cutoff. Used by the stale order
	// cleanup job.
	GetAllPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
