package order

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem was not created
	// through NewLineItem, e.g. a zero-value struct.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
)

// LineItem is a value object describing one purchased product within an
// order: the product reference, the quantity, the unit price captured at
// checkout time, and an opaque variant label (size, color).
//
// Invariants: quantity is at least 1 and the unit price is non-negative.
// Prices use decimal arithmetic so totals never accumulate float error.
type LineItem struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	quantity  int
	unitPrice decimal.Decimal
	variant   string

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item with validation.
// The variant is carried as-is and may be empty.
func NewLineItem(productID kernel.UUID, quantity int, unitPrice decimal.Decimal, variant string) (LineItem, error) {
	item := LineItem{
		variant: variant,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the line item was created through the constructor.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the purchased product's identifier.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// Quantity returns the number of units purchased.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the per-unit price captured at checkout.
func (li LineItem) UnitPrice() decimal.Decimal {
	return li.unitPrice
}

// Variant returns the opaque variant label, possibly empty.
func (li LineItem) Variant() string {
	return li.variant
}

// Subtotal returns quantity times unit price.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.unitPrice.Mul(decimal.NewFromInt(int64(li.quantity)))
}

func (li *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	li.productID = productID
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice is invalid",
			fmt.Errorf("%s is negative", unitPrice.String()))
	}
	li.unitPrice = unitPrice
	return nil
}
