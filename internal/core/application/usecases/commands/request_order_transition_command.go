package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrRequestOrderTransitionCommandIsNotConstructed = errors.New(
	"RequestOrderTransitionCommand must be created via NewRequestOrderTransitionCommand constructor",
)

// RequestOrderTransitionCommand represents a request to move an order to a
// new status on behalf of an actor. The tracking code is optional and only
// meaningful when shipping an order.
//
// Example:
//
//	cmd, err := NewRequestOrderTransitionCommand(orderID, actorID, order.Shipped, "TRK-42")
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	handler := NewRequestOrderTransitionCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
type RequestOrderTransitionCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	actorID      kernel.UUID
	target       order.Status
	trackingCode string

	guard guard.ConstructorGuard
}

// NewRequestOrderTransitionCommand creates a command to change an order's status.
// Validates that both identifiers are valid and the target is a known status.
// An empty trackingCode is allowed.
func NewRequestOrderTransitionCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	target order.Status,
	trackingCode string,
) (RequestOrderTransitionCommand, error) {
	transitionCommand := RequestOrderTransitionCommand{
		guard:        guard.NewConstructorGuard(),
		trackingCode: trackingCode,
	}

	if err := errors.Join(
		transitionCommand.setOrderID(orderID),
		transitionCommand.setActorID(actorID),
		transitionCommand.setTarget(target),
	); err != nil {
		return RequestOrderTransitionCommand{}, err
	}

	return transitionCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRequestOrderTransitionCommandIsNotConstructed if validation fails.
func (c RequestOrderTransitionCommand) Validate() error {
	return c.guard.Validate(ErrRequestOrderTransitionCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to move.
func (c RequestOrderTransitionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the requesting actor.
func (c RequestOrderTransitionCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Target returns the requested status.
func (c RequestOrderTransitionCommand) Target() order.Status {
	return c.target
}

// TrackingCode returns the carrier tracking code, empty when not supplied.
func (c RequestOrderTransitionCommand) TrackingCode() string {
	return c.trackingCode
}

func (c *RequestOrderTransitionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestOrderTransitionCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *RequestOrderTransitionCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
