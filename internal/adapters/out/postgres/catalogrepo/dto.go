// Package catalogrepo persists categories and menu items.
package catalogrepo

import (
	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

type CategoryDTO struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Title string `gorm:"size:255;uniqueIndex;not null"`
	Slug  string `gorm:"size:255;index;not null"`
}

func (CategoryDTO) TableName() string {
	return "categories"
}

type MenuItemDTO struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	Title      string          `gorm:"size:255;index;not null"`
	Price      decimal.Decimal `gorm:"type:numeric(6,2);index;not null"`
	Featured   bool            `gorm:"index;not null;default:false"`
	CategoryID int64           `gorm:"index;not null"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func categoryFromDomain(c *catalog.Category) CategoryDTO {
	return CategoryDTO{ID: c.ID(), Title: c.Title(), Slug: c.Slug()}
}

func categoryToDomain(dto CategoryDTO) (*catalog.Category, error) {
	return catalog.RestoreCategory(dto.ID, dto.Title, dto.Slug)
}

func menuItemFromDomain(m *catalog.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:         m.ID(),
		Title:      m.Title(),
		Price:      m.Price().Decimal(),
		Featured:   m.Featured(),
		CategoryID: m.CategoryID(),
	}
}

func menuItemToDomain(dto MenuItemDTO) (*catalog.MenuItem, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return catalog.RestoreMenuItem(dto.ID, dto.Title, price, dto.Featured, dto.CategoryID)
}
