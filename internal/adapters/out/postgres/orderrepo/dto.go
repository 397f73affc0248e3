// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order is stored as one row in orders plus one row per item in order_items.
package orderrepo

import (
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates,
// indexed for the per-customer and per-crew listings.
type OrderDTO struct {
	ID             int64           `gorm:"primaryKey;autoIncrement"`
	UserID         int64           `gorm:"index;not null"`
	DeliveryCrewID *int64          `gorm:"index"`
	Status         int16           `gorm:"type:smallint;index;not null;default:0"`
	Total          decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Date           time.Time       `gorm:"type:date;index;not null"`
	Items          []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one frozen cart line of an order.
type OrderItemDTO struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	OrderID    int64           `gorm:"index;not null"`
	MenuItemID int64           `gorm:"index;not null"`
	Quantity   int16           `gorm:"type:smallint;not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(6,2);not null"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate, items included, to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemDTO{
			ID:         item.ID(),
			OrderID:    o.ID(),
			MenuItemID: item.MenuItemID(),
			Quantity:   int16(item.Quantity().Int()), //nolint:gosec // bounded by kernel.MaxQuantity
			UnitPrice:  item.UnitPrice().Decimal(),
			Price:      item.Price().Decimal(),
		})
	}

	return OrderDTO{
		ID:             o.ID(),
		UserID:         o.UserID(),
		DeliveryCrewID: o.DeliveryCrewID(),
		Status:         int16(o.Status().Int()), //nolint:gosec // 0 or 1
		Total:          o.Total().Decimal(),
		Date:           o.Date(),
		Items:          items,
	}
}

// toDomain reconstructs the aggregate with RestoreOrder. The status is validated on the way.
func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		quantity, err := kernel.NewQuantity(int(itemDTO.Quantity))
		if err != nil {
			return nil, err
		}
		unitPrice, err := kernel.NewMoney(itemDTO.UnitPrice)
		if err != nil {
			return nil, err
		}
		price, err := kernel.NewMoney(itemDTO.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, order.RestoreItem(itemDTO.ID, itemDTO.MenuItemID, quantity, unitPrice, price))
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		dto.UserID,
		dto.DeliveryCrewID,
		order.Status(dto.Status),
		total,
		dto.Date,
		items,
	)
}
