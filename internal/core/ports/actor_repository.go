// Package ports defines repository interfaces for the storefront domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/kernel"
)

// ActorRepository defines the persistence contract for actor aggregates.
// Provides methods for storing and retrieving actors with their complete
// authority state including store grants.
type ActorRepository interface {
	// Add persists a new actor aggregate to storage.
	// The actor must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *access.Actor) error

	// Update persists changes to an existing actor aggregate,
	// replacing its stored grant set with the aggregate's current one.
	Update(ctx context.Context, aggregate *access.Actor) error

	// Get retrieves an actor aggregate by its unique identifier.
	// Returns the complete actor with all store grants.
	Get(ctx context.Context, id kernel.UUID) (*access.Actor, error)
}
