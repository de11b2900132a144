// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by store and status.
type OrderDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StoreID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status     int             `gorm:"type:int;not null;index"`
	Total      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Metadata   MetadataDTO     `gorm:"embedded"`
	CreatedAt  time.Time       `gorm:"not null;index"`
	UpdatedAt  time.Time       `gorm:"not null"`
	LineItems  []LineItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// MetadataDTO represents the embedded checkout metadata within the order table.
type MetadataDTO struct {
	PaymentMethod   string `gorm:"type:varchar(64)"`
	ShippingAddress string `gorm:"type:varchar(512)"`
	Notes           string `gorm:"type:text"`
	TrackingCode    string `gorm:"type:varchar(64)"`
}

// LineItemDTO represents the database structure for persisting order line items.
// Links to its order via foreign key. Line items are immutable after checkout,
// so rows are only ever written by Add.
type LineItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  int             `gorm:"type:int;not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Variant   string          `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for line item entities.
// Overrides GORM's default naming convention to use "order_line_items".
func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Line item rows get fresh identifiers; they are only inserted once, on Add.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	lineItems := make([]LineItemDTO, 0, len(aggregate.LineItems()))

	for _, item := range aggregate.LineItems() {
		lineItems = append(lineItems, LineItemDTO{
			ID:        uuid.New(),
			OrderID:   orderID,
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Variant:   item.Variant(),
		})
	}

	metadata := aggregate.Metadata()

	return OrderDTO{
		ID:         orderID,
		StoreID:    aggregate.StoreID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Status:     int(aggregate.Status()),
		Total:      aggregate.Total(),
		Metadata: MetadataDTO{
			PaymentMethod:   metadata.PaymentMethod,
			ShippingAddress: metadata.ShippingAddress,
			Notes:           metadata.Notes,
			TrackingCode:    metadata.TrackingCode,
		},
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
		LineItems: lineItems,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	lineItems := make([]order.LineItem, 0, len(dto.LineItems))
	for _, itemDto := range dto.LineItems {
		item, itemErr := lineItemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		lineItems = append(lineItems, item)
	}

	metadata := order.Metadata{
		PaymentMethod:   dto.Metadata.PaymentMethod,
		ShippingAddress: dto.Metadata.ShippingAddress,
		Notes:           dto.Metadata.Notes,
		TrackingCode:    dto.Metadata.TrackingCode,
	}

	return order.RestoreOrder(id, storeID, customerID, lineItems, dto.Total,
		order.Status(dto.Status), metadata, dto.CreatedAt, dto.UpdatedAt)
}

// lineItemToDomain converts a line item DTO to its domain value object.
func lineItemToDomain(dto LineItemDTO) (order.LineItem, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.LineItem{}, err
	}

	return order.NewLineItem(productID, dto.Quantity, dto.UnitPrice, dto.Variant)
}
