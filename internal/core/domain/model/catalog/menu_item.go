package catalog

import (
	"errors"
	"strings"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem or RestoreMenuItem")

// MenuItem is a dish that can be put in a cart.
type MenuItem struct {
	id         int64
	title      string
	price      kernel.Money
	featured   bool
	categoryID int64

	isConstructed bool
}

// MenuItemChanges carries the fields of an update; nil fields are left as they are.
type MenuItemChanges struct {
	Title      *string
	Price      *kernel.Money
	Featured   *bool
	CategoryID *int64
}

// NewMenuItem creates an unsaved menu item.
func NewMenuItem(title string, price kernel.Money, featured bool, categoryID int64) (*MenuItem, error) {
	m := &MenuItem{featured: featured, isConstructed: true}
	if err := errors.Join(
		m.setTitle(title),
		m.setPrice(price),
		m.setCategoryID(categoryID),
	); err != nil {
		return nil, err
	}
	return m, nil
}

// RestoreMenuItem rebuilds a persisted menu item.
func RestoreMenuItem(id int64, title string, price kernel.Money, featured bool, categoryID int64) (*MenuItem, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("menu item id")
	}
	return &MenuItem{
		id:            id,
		title:         title,
		price:         price,
		featured:      featured,
		categoryID:    categoryID,
		isConstructed: true,
	}, nil
}

func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// AssignID records the identity handed out by the store. It can be set only once.
func (m *MenuItem) AssignID(id int64) error {
	if m.id != 0 || id <= 0 {
		return errs.NewValueIsInvalidError("menu item id")
	}
	m.id = id
	return nil
}

func (m *MenuItem) ID() int64 {
	return m.id
}

func (m *MenuItem) Title() string {
	return m.title
}

func (m *MenuItem) Price() kernel.Money {
	return m.price
}

func (m *MenuItem) Featured() bool {
	return m.featured
}

func (m *MenuItem) CategoryID() int64 {
	return m.categoryID
}

// Apply validates every provided field first and only then changes the item.
func (m *MenuItem) Apply(changes MenuItemChanges) error {
	next := *m
	var titleErr, categoryErr error
	if changes.Title != nil {
		titleErr = next.setTitle(*changes.Title)
	}
	if changes.CategoryID != nil {
		categoryErr = next.setCategoryID(*changes.CategoryID)
	}
	if err := errors.Join(titleErr, categoryErr); err != nil {
		return err
	}
	if changes.Price != nil {
		next.price = *changes.Price
	}
	if changes.Featured != nil {
		next.featured = *changes.Featured
	}
	*m = next
	return nil
}

func (m *MenuItem) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if len(title) > maxTitleLength {
		return errs.NewValueIsOutOfRangeError("title length", len(title), 1, maxTitleLength)
	}
	m.title = title
	return nil
}

func (m *MenuItem) setPrice(price kernel.Money) error {
	if _, err := kernel.NewPrice(price.Decimal()); err != nil {
		return err
	}
	m.price = price
	return nil
}

func (m *MenuItem) setCategoryID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("category_id")
	}
	m.categoryID = id
	return nil
}
