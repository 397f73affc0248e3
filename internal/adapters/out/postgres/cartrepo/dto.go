// Package cartrepo persists cart items.
package cartrepo

import (
	"time"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

type CartItemDTO struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	UserID     int64           `gorm:"index;not null"`
	MenuItemID int64           `gorm:"index;not null"`
	Quantity   int16           `gorm:"type:smallint;not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(6,2);not null"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt  time.Time       `gorm:"index;not null"`
}

func (CartItemDTO) TableName() string {
	return "cart_items"
}

func fromDomain(item *cart.Item) CartItemDTO {
	return CartItemDTO{
		ID:         item.ID(),
		UserID:     item.UserID(),
		MenuItemID: item.MenuItemID(),
		Quantity:   int16(item.Quantity().Int()), //nolint:gosec // bounded by kernel.MaxQuantity
		UnitPrice:  item.UnitPrice().Decimal(),
		Price:      item.Price().Decimal(),
		CreatedAt:  item.CreatedAt(),
	}
}

func toDomain(dto CartItemDTO) (*cart.Item, error) {
	quantity, err := kernel.NewQuantity(int(dto.Quantity))
	if err != nil {
		return nil, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return cart.RestoreItem(dto.ID, dto.UserID, dto.MenuItemID, quantity, unitPrice, price, dto.CreatedAt)
}
