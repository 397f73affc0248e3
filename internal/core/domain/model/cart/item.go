package cart

import (
	"errors"
	"time"

	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

var ErrItemIsNotConstructed = errors.New("cart Item must be created via NewItem or RestoreItem")

// Item is one line in a customer's cart.
type Item struct {
	id         int64
	userID     int64
	menuItemID int64
	quantity   kernel.Quantity
	unitPrice  kernel.Money
	price      kernel.Money
	createdAt  time.Time

	isConstructed bool
}

// NewItem puts quantity units of menuItem in the cart of userID at the current price.
func NewItem(userID int64, menuItem *catalog.MenuItem, quantity kernel.Quantity, now time.Time) (*Item, error) {
	if userID <= 0 {
		return nil, errs.NewValueIsInvalidError("user id")
	}
	if err := menuItem.Validate(); err != nil {
		return nil, err
	}
	if quantity.IsZero() {
		return nil, errs.NewValueIsRequiredError("quantity")
	}
	return &Item{
		userID:        userID,
		menuItemID:    menuItem.ID(),
		quantity:      quantity,
		unitPrice:     menuItem.Price(),
		price:         menuItem.Price().Mul(quantity),
		createdAt:     now.UTC(),
		isConstructed: true,
	}, nil
}

// RestoreItem rebuilds a persisted cart item.
func RestoreItem(
	id, userID, menuItemID int64,
	quantity kernel.Quantity,
	unitPrice, price kernel.Money,
	createdAt time.Time,
) (*Item, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("cart item id")
	}
	return &Item{
		id:            id,
		userID:        userID,
		menuItemID:    menuItemID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		price:         price,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// AssignID records the identity handed out by the store. It can be set only once.
func (i *Item) AssignID(id int64) error {
	if i.id != 0 || id <= 0 {
		return errs.NewValueIsInvalidError("cart item id")
	}
	i.id = id
	return nil
}

func (i *Item) ID() int64 {
	return i.id
}

func (i *Item) UserID() int64 {
	return i.userID
}

func (i *Item) MenuItemID() int64 {
	return i.menuItemID
}

func (i *Item) Quantity() kernel.Quantity {
	return i.quantity
}

func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

func (i *Item) Price() kernel.Money {
	return i.price
}

func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}
