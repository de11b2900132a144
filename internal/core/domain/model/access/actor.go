package access

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
)

var (
	// ErrActorIsNotConstructed is returned when an Actor instance was not created
	// through the NewActor or RestoreActor factory methods.
	ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor or RestoreActor constructor")
)

// Actor is the permission profile of an authenticated party. It is the
// aggregate the authorization engine operates on: a global level, an
// optional master flag, and an ordered list of per-store grants.
//
// Actor follows these invariants:
//   - Must have a valid unique identifier and a valid global level
//   - isMaster implies a global level of Master (enforced at construction)
//   - At most one grant per store; when persisted data violates this,
//     the first matching grant wins
//
// Every capability method is nil-safe and total: a nil *Actor answers as a
// Customer-equivalent, so authorization fails closed for unknown actors.
type Actor struct {
	// id is the unique identifier for the actor
	id kernel.UUID

	// globalLevel is the store-independent default level
	globalLevel Level

	// isMaster is a fast-path flag; true implies globalLevel == Master
	isMaster bool

	// grants are explicit per-store overrides, first match wins
	grants []StoreGrant

	// isConstructed ensures the actor was created via a constructor
	isConstructed bool
}

// NewActor creates an Actor profile with validation.
//
// The identifier and global level must be valid. When isMaster is set, the
// global level is forced to Master so the flag and the level cannot diverge.
func NewActor(id kernel.UUID, globalLevel Level, isMaster bool) (*Actor, error) {
	actor := &Actor{
		isConstructed: true,
	}

	if err := errors.Join(
		actor.setID(id),
		actor.setGlobalLevel(globalLevel, isMaster),
	); err != nil {
		return nil, err
	}

	return actor, nil
}

// RestoreActor reconstructs an Actor from persistence, including its grants.
// Grants are kept in the order supplied; duplicate store ids are tolerated
// and resolved by first match during lookups.
func RestoreActor(id kernel.UUID, globalLevel Level, isMaster bool, grants []StoreGrant) (*Actor, error) {
	actor, err := NewActor(id, globalLevel, isMaster)
	if err != nil {
		return nil, err
	}

	for _, grant := range grants {
		if grantErr := grant.Validate(); grantErr != nil {
			return nil, grantErr
		}
	}

	actor.grants = append(actor.grants, grants...)
	return actor, nil
}

// Validate ensures the Actor instance was properly constructed.
func (a *Actor) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrActorIsNotConstructed
	}

	return nil
}

// IsEqual compares two actors by their unique identifiers.
func (a *Actor) IsEqual(other *Actor) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the actor's unique identifier.
func (a *Actor) ID() kernel.UUID {
	return a.id
}

// GlobalLevel returns the actor's store-independent level.
func (a *Actor) GlobalLevel() Level {
	return a.globalLevel
}

// IsMaster reports whether the actor holds system-wide master authority.
func (a *Actor) IsMaster() bool {
	return a != nil && (a.isMaster || a.globalLevel == Master)
}

// Grants returns a copy of the actor's per-store grants.
func (a *Actor) Grants() []StoreGrant {
	if a == nil {
		return nil
	}
	grants := make([]StoreGrant, len(a.grants))
	copy(grants, a.grants)
	return grants
}

// EffectiveLevel resolves the level that actually applies to the actor for
// the given store context.
//
// Resolution order:
//  1. A master actor is Master everywhere; the store id is ignored.
//  2. With a store context, the first grant matching the store wins
//     (a Master-level grant asserts Manager, see StoreGrant.StoreLevel).
//  3. Otherwise the actor's global level applies.
//
// The method never fails: a nil actor or an Unknown global level resolves
// to Customer, the least-privileged outcome.
func (a *Actor) EffectiveLevel(storeID *kernel.UUID) Level {
	if a == nil || !a.isConstructed {
		return Customer
	}

	if a.IsMaster() {
		return Master
	}

	if storeID != nil {
		for _, grant := range a.grants {
			if grant.StoreID().IsEqual(*storeID) {
				return grant.StoreLevel()
			}
		}
	}

	if a.globalLevel.Validate() != nil {
		return Customer
	}
	return a.globalLevel
}

// HasPermission reports whether the actor holds at least the required level
// with respect to the given store.
//
// With a store context the effective level is compared by rank: the check
// passes when the actor's authority is at least as high as required.
//
// Without a store context (nil storeID) the actor's global level is compared
// for exact equality instead. Global, store-less checks in the legacy system
// behave this way (e.g. "is this a registered customer"), and callers depend
// on it; replacing it with the rank comparison would change authorization
// outcomes for those callers.
// TODO: confirm with the security owners whether store-less checks should
// move to the rank comparison before reusing this engine elsewhere.
func (a *Actor) HasPermission(storeID *kernel.UUID, required Level) bool {
	if storeID == nil {
		globalLevel := Customer
		if a != nil && a.isConstructed && a.globalLevel.Validate() == nil {
			globalLevel = a.globalLevel
		}
		return globalLevel == required
	}

	return a.EffectiveLevel(storeID).AtLeast(required)
}

// CanManageStore reports whether the actor may manage the given store:
// masters always can, otherwise the store-scoped effective level must be
// Manager. Managing covers order lifecycle transitions and grant issuing.
func (a *Actor) CanManageStore(storeID kernel.UUID) bool {
	if a == nil || !a.isConstructed {
		return false
	}

	if a.IsMaster() {
		return true
	}

	return a.EffectiveLevel(&storeID) == Manager
}

// CanEditStore reports whether the actor may edit the given store's data.
// Currently identical to CanManageStore; kept as a separate capability so
// the vocabulary can diverge without touching call sites.
func (a *Actor) CanEditStore(storeID kernel.UUID) bool {
	return a.CanManageStore(storeID)
}

// CanViewStore reports whether the actor may view the given store's
// back-office context: masters always, holders of any grant on the store,
// and actors whose global level is StoreOwner (owners can view any store
// context presented to them; ownership linkage lives outside this model).
func (a *Actor) CanViewStore(storeID kernel.UUID) bool {
	if a == nil || !a.isConstructed {
		return false
	}

	if a.IsMaster() {
		return true
	}

	for _, grant := range a.grants {
		if grant.StoreID().IsEqual(storeID) {
			return true
		}
	}

	return a.globalLevel == StoreOwner
}

// Grant assigns a level on a store, replacing any existing grant for that
// store so the one-grant-per-store invariant holds for newly written data.
func (a *Actor) Grant(storeID kernel.UUID, level Level, grantedBy kernel.UUID, grantedAt time.Time) error {
	if err := a.Validate(); err != nil {
		return err
	}

	grant, err := NewStoreGrant(storeID, level, grantedBy, grantedAt)
	if err != nil {
		return err
	}

	for i, existing := range a.grants {
		if existing.StoreID().IsEqual(storeID) {
			a.grants[i] = grant
			return nil
		}
	}

	a.grants = append(a.grants, grant)
	return nil
}

func (a *Actor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Actor) setGlobalLevel(level Level, isMaster bool) error {
	if isMaster {
		a.globalLevel = Master
		a.isMaster = true
		return nil
	}

	if err := level.Validate(); err != nil {
		return err
	}
	a.globalLevel = level
	a.isMaster = level == Master
	return nil
}
