package access

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	// ErrStoreGrantIsNotConstructed is returned when a StoreGrant was not
	// created through NewStoreGrant, e.g. a zero-value struct.
	ErrStoreGrantIsNotConstructed = errors.New("StoreGrant must be created via NewStoreGrant constructor")
)

// StoreGrant is an explicit per-store permission override assigned to an
// actor, independent of their global level. Grants carry audit metadata
// (who granted the level and when) that is persisted but never consulted
// by authorization decisions.
//
// A grant at Master level is meaningless for store-scoped checks, since
// master authority is only ever asserted globally; StoreLevel normalizes
// such a grant to Manager instead of failing.
type StoreGrant struct { //nolint:recvcheck //using for validation
	storeID   kernel.UUID
	level     Level
	grantedAt time.Time
	grantedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewStoreGrant creates a per-store permission grant.
// The store ID and level must be valid; grantedBy and grantedAt are audit
// metadata and are stored as given.
func NewStoreGrant(storeID kernel.UUID, level Level, grantedBy kernel.UUID, grantedAt time.Time) (StoreGrant, error) {
	grant := StoreGrant{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		grant.setStoreID(storeID),
		grant.setLevel(level),
	); err != nil {
		return StoreGrant{}, err
	}

	grant.grantedBy = grantedBy
	grant.grantedAt = grantedAt
	return grant, nil
}

// Validate ensures the grant was created through the constructor.
func (g StoreGrant) Validate() error {
	return g.guard.Validate(ErrStoreGrantIsNotConstructed)
}

// StoreID returns the store this grant applies to.
func (g StoreGrant) StoreID() kernel.UUID {
	return g.storeID
}

// Level returns the granted level exactly as assigned.
func (g StoreGrant) Level() Level {
	return g.level
}

// StoreLevel returns the level the grant asserts in store-scoped checks.
// Master normalizes to Manager because master authority is global-only.
func (g StoreGrant) StoreLevel() Level {
	if g.level == Master {
		return Manager
	}
	return g.level
}

// GrantedAt returns when the grant was issued. Audit metadata only.
func (g StoreGrant) GrantedAt() time.Time {
	return g.grantedAt
}

// GrantedBy returns the identifier of the granting actor. Audit metadata only.
func (g StoreGrant) GrantedBy() kernel.UUID {
	return g.grantedBy
}

func (g *StoreGrant) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}
	g.storeID = storeID
	return nil
}

func (g *StoreGrant) setLevel(level Level) error {
	if err := level.Validate(); err != nil {
		return err
	}
	g.level = level
	return nil
}
