package commands

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/pkg/errs"
)

var ErrStoreAccessDenied = errors.New("actor is not allowed to manage access to the store")

// GrantStoreAccessCommandHandler handles store access grants.
// Only actors that can manage the store (masters and store managers) may
// grant authority on it. An unknown grantor fails closed.
//
// Example:
//
//	handler := NewGrantStoreAccessCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrStoreAccessDenied):
//	    log.Println("grantor may not manage this store")
//	case err != nil:
//	    log.Printf("grant failed: %v", err)
//	}
type GrantStoreAccessCommandHandler struct {
	uowFactory ActorUoWFactory
}

// NewGrantStoreAccessCommandHandler creates a handler for access grants.
// Requires an ActorUoWFactory for transactional persistence.
func NewGrantStoreAccessCommandHandler(uowFactory ActorUoWFactory) GrantStoreAccessCommandHandler {
	return GrantStoreAccessCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the grant command.
// Loads the grantor and checks it can manage the target store, then records
// the grant on the grantee, replacing any prior grant for the same store.
// Returns ErrStoreAccessDenied when the grantor is unknown or lacks authority,
// and errs.ErrObjectNotFound when the grantee does not exist.
func (h GrantStoreAccessCommandHandler) Handle(ctx context.Context, cmd GrantStoreAccessCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actorRepo := uow.ActorRepository()

	var grantor *access.Actor
	grantor, err := actorRepo.Get(ctx, cmd.GrantorID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if !grantor.CanManageStore(cmd.StoreID()) {
		return ErrStoreAccessDenied
	}

	grantee, err := actorRepo.Get(ctx, cmd.GranteeID())
	if err != nil {
		return err
	}

	if err = grantee.Grant(cmd.StoreID(), cmd.Level(), cmd.GrantorID(), time.Now()); err != nil {
		return err
	}

	if err = actorRepo.Update(ctx, grantee); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
