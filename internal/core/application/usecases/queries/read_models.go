// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries skip the aggregates and read joined rows straight into read models.
package queries

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserView is the public part of an account.
type UserView struct {
	ID       int64
	Username string
	Email    string
}

type CategoryView struct {
	ID    int64
	Title string
	Slug  string
}

// MenuItemView is a menu item with its category expanded.
type MenuItemView struct {
	ID       int64
	Title    string
	Price    decimal.Decimal
	Featured bool
	Category CategoryView
}

type CartItemView struct {
	ID        int64
	User      UserView
	MenuItem  MenuItemView
	Quantity  int
	UnitPrice decimal.Decimal
	Price     decimal.Decimal
	CreatedAt time.Time
}

// OrderView is the order header. DeliveryCrew is nil until someone is assigned.
type OrderView struct {
	ID           int64
	User         UserView
	DeliveryCrew *UserView
	Status       int
	Total        decimal.Decimal
	Date         time.Time
}

type OrderItemView struct {
	ID        int64
	OrderID   int64
	MenuItem  MenuItemView
	Quantity  int
	UnitPrice decimal.Decimal
	Price     decimal.Decimal
}

// OrderDetails is an order together with its items.
type OrderDetails struct {
	Order OrderView
	Items []OrderItemView
}

// menuItemRow is the flat shape of a menu item joined with its category.
type menuItemRow struct {
	ID            int64
	Title         string
	Price         decimal.Decimal
	Featured      bool
	CategoryID    int64
	CategoryTitle string
	CategorySlug  string
}

const menuItemColumns = "m.id, m.title, m.price, m.featured, m.category_id, " +
	"c.title AS category_title, c.slug AS category_slug"

func (r menuItemRow) view() MenuItemView {
	return MenuItemView{
		ID:       r.ID,
		Title:    r.Title,
		Price:    r.Price,
		Featured: r.Featured,
		Category: CategoryView{ID: r.CategoryID, Title: r.CategoryTitle, Slug: r.CategorySlug},
	}
}
