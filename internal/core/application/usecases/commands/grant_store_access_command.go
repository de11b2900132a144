package commands

import (
	"errors"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGrantStoreAccessCommandIsNotConstructed = errors.New(
	"GrantStoreAccessCommand must be created via NewGrantStoreAccessCommand constructor",
)

// GrantStoreAccessCommand represents a request by one actor to give another
// actor an authority level scoped to a single store.
//
// Example:
//
//	cmd, err := NewGrantStoreAccessCommand(ownerID, staffID, storeID, access.Staff)
//	if err != nil {
//	    return fmt.Errorf("invalid grant request: %w", err)
//	}
//
//	handler := NewGrantStoreAccessCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("grant failed: %w", err)
//	}
type GrantStoreAccessCommand struct { //nolint:recvcheck //using for validation
	grantorID kernel.UUID
	granteeID kernel.UUID
	storeID   kernel.UUID
	level     access.Level

	guard guard.ConstructorGuard
}

// NewGrantStoreAccessCommand creates a command to grant store-scoped access.
// Validates all identifiers and the level. Granting to oneself is allowed;
// whether the grantor may grant at all is decided by the handler.
func NewGrantStoreAccessCommand(
	grantorID kernel.UUID,
	granteeID kernel.UUID,
	storeID kernel.UUID,
	level access.Level,
) (GrantStoreAccessCommand, error) {
	grantCommand := GrantStoreAccessCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		grantCommand.setGrantorID(grantorID),
		grantCommand.setGranteeID(granteeID),
		grantCommand.setStoreID(storeID),
		grantCommand.setLevel(level),
	); err != nil {
		return GrantStoreAccessCommand{}, err
	}

	return grantCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrGrantStoreAccessCommandIsNotConstructed if validation fails.
func (c GrantStoreAccessCommand) Validate() error {
	return c.guard.Validate(ErrGrantStoreAccessCommandIsNotConstructed)
}

// GrantorID returns the identifier of the actor issuing the grant.
func (c GrantStoreAccessCommand) GrantorID() kernel.UUID {
	return c.grantorID
}

// GranteeID returns the identifier of the actor receiving the grant.
func (c GrantStoreAccessCommand) GranteeID() kernel.UUID {
	return c.granteeID
}

// StoreID returns the store the grant is scoped to.
func (c GrantStoreAccessCommand) StoreID() kernel.UUID {
	return c.storeID
}

// Level returns the authority level being granted.
func (c GrantStoreAccessCommand) Level() access.Level {
	return c.level
}

func (c *GrantStoreAccessCommand) setGrantorID(grantorID kernel.UUID) error {
	if err := grantorID.Validate(); err != nil {
		return err
	}

	c.grantorID = grantorID
	return nil
}

func (c *GrantStoreAccessCommand) setGranteeID(granteeID kernel.UUID) error {
	if err := granteeID.Validate(); err != nil {
		return err
	}

	c.granteeID = granteeID
	return nil
}

func (c *GrantStoreAccessCommand) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}

	c.storeID = storeID
	return nil
}

func (c *GrantStoreAccessCommand) setLevel(level access.Level) error {
	if err := level.Validate(); err != nil {
		return err
	}

	c.level = level
	return nil
}
