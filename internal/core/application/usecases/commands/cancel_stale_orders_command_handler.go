package commands

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"
)

// CancelStaleOrdersCommandHandler cancels Pending orders that were created
// before a cutoff and never progressed. Runs the same lifecycle gate as user
// requests, acting as a synthetic master so store scoping never blocks the
// cleanup.
//
// Example:
//
//	handler := NewCancelStaleOrdersCommandHandler(uowFactory)
//	cmd, _ := NewCancelStaleOrdersCommand(time.Now().Add(-24 * time.Hour))
//	cancelled, err := handler.Handle(ctx, cmd)
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelStaleOrdersCommandHandler creates a handler for stale order cleanup.
// Requires an OrderUoWFactory for transactional persistence.
func NewCancelStaleOrdersCommandHandler(uowFactory OrderUoWFactory) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cleanup command and returns how many orders it cancelled.
// Each cancellation is a conditional update on the Pending status: orders that
// moved concurrently lose the race and are skipped, not treated as failures.
func (h CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	systemActor, err := access.NewActor(kernel.NewUUID(), access.Master, true)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	staleOrders, err := orderRepo.GetAllPendingBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	lifecycle := services.NewOrderLifecycle()
	now := time.Now()
	cancelled := 0

	for _, staleOrder := range staleOrders {
		priorStatus := staleOrder.Status()

		result := lifecycle.RequestTransition(systemActor, staleOrder, order.Cancelled, now)
		if !result.Accepted() {
			continue
		}

		err = orderRepo.Update(ctx, staleOrder, priorStatus)
		if errors.Is(err, errs.ErrConflict) {
			continue
		}
		if err != nil {
			return 0, err
		}

		cancelled++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return cancelled, nil
}
