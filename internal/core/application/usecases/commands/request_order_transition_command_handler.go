package commands

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"
)

// RequestOrderTransitionCommandHandler orchestrates order status changes.
// Loads the order and the requesting actor, lets the OrderLifecycle domain
// service decide, and persists accepted changes with a conditional update
// keyed on the prior status so concurrent writers surface as conflicts.
//
// Example:
//
//	handler := NewRequestOrderTransitionCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err // infrastructure failure or lost update conflict
//	}
//	if !result.Accepted() {
//	    log.Printf("rejected: %s (%s)", result.Outcome(), result.Reason())
//	}
type RequestOrderTransitionCommandHandler struct {
	uowFactory UoWFactory
}

// NewRequestOrderTransitionCommandHandler creates a handler for order
// transition requests. Requires a UoWFactory spanning both repositories.
func NewRequestOrderTransitionCommandHandler(uowFactory UoWFactory) RequestOrderTransitionCommandHandler {
	return RequestOrderTransitionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition request.
//
// An unknown actor is treated as no actor at all, so the request fails closed
// with an Unauthorized outcome instead of an error. Rejections by the domain
// service are normal results, not errors; the error return is reserved for
// validation failures, infrastructure problems and CAS conflicts
// (errs.ConflictError) on the final update.
func (h RequestOrderTransitionCommandHandler) Handle(
	ctx context.Context,
	cmd RequestOrderTransitionCommand,
) (services.TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.TransitionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.TransitionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	actorRepo := uow.ActorRepository()

	orderAggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return services.TransitionResult{}, err
	}

	var actor *access.Actor
	actor, err = actorRepo.Get(ctx, cmd.ActorID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return services.TransitionResult{}, err
	}

	priorStatus := orderAggregate.Status()

	result := services.NewOrderLifecycle().RequestTransition(actor, orderAggregate, cmd.Target(), time.Now())
	if !result.Accepted() {
		return result, nil
	}

	if cmd.TrackingCode() != "" {
		orderAggregate.SetTrackingCode(cmd.TrackingCode())
	}

	if err = orderRepo.Update(ctx, orderAggregate, priorStatus); err != nil {
		return services.TransitionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.TransitionResult{}, err
	}

	return result, nil
}
