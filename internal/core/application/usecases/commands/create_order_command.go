package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrLineItemsAreRequired = errors.New("at least one line item is required")
	ErrTotalIsNegative      = errors.New("total must not be negative")
)

// CreateOrderCommand represents a request to place a new order against a store.
// Encapsulates the buyer, the store, the priced line items, the declared total
// and free-form checkout metadata.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), storeID, customerID,
//	    items, total, order.Metadata{PaymentMethod: "card"})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	storeID    kernel.UUID
	customerID kernel.UUID
	lineItems  []order.LineItem
	total      decimal.Decimal
	metadata   order.Metadata

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates the identifiers and line items; the declared total only needs to
// be non-negative here, the order aggregate checks it against the line item
// sum on creation.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	storeID kernel.UUID,
	customerID kernel.UUID,
	lineItems []order.LineItem,
	total decimal.Decimal,
	metadata order.Metadata,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard:    guard.NewConstructorGuard(),
		metadata: metadata,
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setStoreID(storeID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setLineItems(lineItems),
		orderCommand.setTotal(total),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StoreID returns the store the order is placed against.
func (c CreateOrderCommand) StoreID() kernel.UUID {
	return c.storeID
}

// CustomerID returns the buyer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// LineItems returns the priced items of the order.
func (c CreateOrderCommand) LineItems() []order.LineItem {
	return c.lineItems
}

// Total returns the declared order total.
func (c CreateOrderCommand) Total() decimal.Decimal {
	return c.total
}

// Metadata returns the checkout metadata.
func (c CreateOrderCommand) Metadata() order.Metadata {
	return c.metadata
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}

	c.storeID = storeID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setLineItems(lineItems []order.LineItem) error {
	if len(lineItems) == 0 {
		return ErrLineItemsAreRequired
	}

	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.lineItems = lineItems
	return nil
}

func (c *CreateOrderCommand) setTotal(total decimal.Decimal) error {
	if total.IsNegative() {
		return ErrTotalIsNegative
	}

	c.total = total
	return nil
}
