package order

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrLineItemsAreRequired is returned when an order carries no line items.
	ErrLineItemsAreRequired = errors.New("order must contain at least one line item")
)

// Metadata carries the opaque order attributes the core stores but never
// interprets: payment method, shipping address, free-form notes, and the
// carrier tracking code.
type Metadata struct {
	PaymentMethod   string
	ShippingAddress string
	Notes           string
	TrackingCode    string
}

// Order represents a customer purchase against a store. It is the aggregate
// root that manages the order lifecycle from checkout through fulfillment
// to delivery or cancellation.
//
// Order follows these invariants:
//   - Must reference a valid order, store, and customer identifier
//   - Must carry at least one valid line item
//   - The total must equal the line item sum at creation time
//   - Status transitions follow the state machine defined by Status
//   - Terminal orders (Delivered, Cancelled) never change again
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// storeID is the store the order was placed against
	storeID kernel.UUID

	// customerID is the purchasing customer
	customerID kernel.UUID

	// lineItems are the purchased products (at least one)
	lineItems []LineItem

	// total is the checkout total, fixed at creation
	total decimal.Decimal

	// status is the current state in the order lifecycle
	status Status

	// metadata carries opaque attributes the core never interprets
	metadata Metadata

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an Order in Pending status with validation. This is the
// entry point for the checkout flow.
//
// The supplied total must equal the sum of quantity times unit price over
// the line items; a mismatch is rejected rather than silently recomputed,
// since the total shown to the customer is the one being committed. The
// total is not re-derived afterwards.
func NewOrder(
	id kernel.UUID,
	storeID kernel.UUID,
	customerID kernel.UUID,
	lineItems []LineItem,
	total decimal.Decimal,
	metadata Metadata,
	now time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		metadata:      metadata,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setStoreID(storeID),
		order.setCustomerID(customerID),
		order.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	if err := order.setTotalChecked(total); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence.
//
// Unlike NewOrder it accepts any valid status and does not re-check the
// total against the line items: the total invariant holds at creation and
// the stored value is authoritative afterwards.
func RestoreOrder(
	id kernel.UUID,
	storeID kernel.UUID,
	customerID kernel.UUID,
	lineItems []LineItem,
	total decimal.Decimal,
	status Status,
	metadata Metadata,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		total:         total,
		metadata:      metadata,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setStoreID(storeID),
		order.setCustomerID(customerID),
		order.setLineItems(lineItems),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// StoreID returns the store the order was placed against.
func (o *Order) StoreID() kernel.UUID {
	return o.storeID
}

// CustomerID returns the purchasing customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// LineItems returns a copy of the order's line items.
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// Total returns the checkout total.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Metadata returns the opaque order attributes.
func (o *Order) Metadata() Metadata {
	return o.metadata
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order last changed.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus moves the order to target if the transition is structurally
// legal, refreshing UpdatedAt. Authorization is not this method's concern;
// the lifecycle service gates callers before invoking it.
//
// Returns an error naming the illegal pair if the transition is not allowed
// from the current status, including any attempt to leave a terminal status.
func (o *Order) ChangeStatus(target Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// SetTrackingCode attaches a carrier tracking code. The code is opaque
// metadata; no validation is applied.
func (o *Order) SetTrackingCode(code string) {
	o.metadata.TrackingCode = code
}

// LineItemSum returns the sum of quantity times unit price over the line
// items. Used at creation to check the total invariant and by reporting.
func (o *Order) LineItemSum() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range o.lineItems {
		sum = sum.Add(item.Subtotal())
	}
	return sum
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}
	o.storeID = storeID
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setLineItems(lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return ErrLineItemsAreRequired
	}

	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.lineItems = make([]LineItem, len(lineItems))
	copy(o.lineItems, lineItems)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setTotalChecked(total decimal.Decimal) error {
	if sum := o.LineItemSum(); !total.Equal(sum) {
		return errs.NewValueIsInvalidErrorWithCause("total is invalid",
			fmt.Errorf("%s does not equal the line item sum %s", total.String(), sum.String()))
	}
	o.total = total
	return nil
}
