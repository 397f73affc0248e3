package order

import (
	"errors"
	"slices"
	"time"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// PlaceOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via PlaceOrder or RestoreOrder")

	// ErrCartIsEmpty is returned when a customer checks out without anything in the cart.
	ErrCartIsEmpty = errors.New("Your cart is empty!")

	// ErrTotalTooLarge is returned when the cart adds up to more than an order can hold.
	ErrTotalTooLarge = errors.New("Order total is too large.")

	// ErrForeignCartItem is returned when a cart item of another customer is passed to PlaceOrder.
	ErrForeignCartItem = errors.New("cart item belongs to another user")
)

// Item is the frozen copy of one cart line inside an order.
type Item struct {
	id         int64
	menuItemID int64
	quantity   kernel.Quantity
	unitPrice  kernel.Money
	price      kernel.Money
}

// RestoreItem rebuilds a persisted order item.
func RestoreItem(id, menuItemID int64, quantity kernel.Quantity, unitPrice, price kernel.Money) Item {
	return Item{id: id, menuItemID: menuItemID, quantity: quantity, unitPrice: unitPrice, price: price}
}

func (i Item) ID() int64 {
	return i.id
}

func (i Item) MenuItemID() int64 {
	return i.menuItemID
}

func (i Item) Quantity() kernel.Quantity {
	return i.quantity
}

func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

func (i Item) Price() kernel.Money {
	return i.price
}

// Order is the aggregate root of a placed order.
//
// Order follows these invariants:
//   - It is placed for exactly one customer and never changes owner
//   - Total equals the sum of its item prices at placement and never exceeds kernel.MaxTotal
//   - Items and total are never modified after placement
//   - Status is always Pending or Delivered
type Order struct {
	id             int64
	userID         int64
	deliveryCrewID *int64
	status         Status
	total          kernel.Money
	date           time.Time
	items          []Item

	isConstructed bool
}

// Changes describes an update of an order. Nil fields are left as they are.
type Changes struct {
	DeliveryCrewID *int64
	Status         *Status
}

// PlaceOrder converts the cart items of userID into a pending order dated now.
//
// Every item must belong to userID. The cart items themselves are not touched;
// deleting them is the caller's job within the same unit of work.
//
// Example:
//
//	o, err := order.PlaceOrder(actor.UserID(), items, time.Now())
//	if errors.Is(err, order.ErrCartIsEmpty) {
//	    // nothing to check out
//	}
func PlaceOrder(userID int64, cartItems []*cart.Item, now time.Time) (*Order, error) {
	if userID <= 0 {
		return nil, errs.NewValueIsInvalidError("user id")
	}
	if len(cartItems) == 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("cart", ErrCartIsEmpty)
	}

	o := &Order{
		userID:        userID,
		status:        Pending,
		total:         kernel.ZeroMoney(),
		date:          now.UTC(),
		items:         make([]Item, 0, len(cartItems)),
		isConstructed: true,
	}
	for _, ci := range cartItems {
		if err := ci.Validate(); err != nil {
			return nil, err
		}
		if ci.UserID() != userID {
			return nil, errs.NewValueIsInvalidErrorWithCause("cart item", ErrForeignCartItem)
		}
		o.items = append(o.items, Item{
			menuItemID: ci.MenuItemID(),
			quantity:   ci.Quantity(),
			unitPrice:  ci.UnitPrice(),
			price:      ci.Price(),
		})
		o.total = o.total.Add(ci.Price())
	}
	if o.total.GreaterThan(kernel.MaxTotal) {
		return nil, errs.NewValueIsOutOfRangeErrorWithCause(
			"total", o.total.String(), kernel.MinPrice.String(), kernel.MaxTotal.String(), ErrTotalTooLarge)
	}
	return o, nil
}

// RestoreOrder rebuilds a persisted order. The status is validated since it
// comes straight from storage.
func RestoreOrder(
	id, userID int64,
	deliveryCrewID *int64,
	status Status,
	total kernel.Money,
	date time.Time,
	items []Item,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("order id")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return &Order{
		id:             id,
		userID:         userID,
		deliveryCrewID: deliveryCrewID,
		status:         status,
		total:          total,
		date:           date,
		items:          slices.Clone(items),
		isConstructed:  true,
	}, nil
}

// Validate ensures the Order was built through PlaceOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AssignIDs records the identities handed out by the store for the order and its
// items, in item order. It can be done only once.
func (o *Order) AssignIDs(orderID int64, itemIDs []int64) error {
	if o.id != 0 || orderID <= 0 {
		return errs.NewValueIsInvalidError("order id")
	}
	if len(itemIDs) != len(o.items) {
		return errs.NewValueIsOutOfRangeError("order item ids", len(itemIDs), len(o.items), len(o.items))
	}
	o.id = orderID
	for i := range o.items {
		o.items[i].id = itemIDs[i]
	}
	return nil
}

func (o *Order) ID() int64 {
	return o.id
}

func (o *Order) UserID() int64 {
	return o.userID
}

// DeliveryCrewID returns the assigned crew member or nil.
func (o *Order) DeliveryCrewID() *int64 {
	if o.deliveryCrewID == nil {
		return nil
	}
	id := *o.deliveryCrewID
	return &id
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) Date() time.Time {
	return o.date
}

func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID int64) bool {
	return o.userID == userID
}

// IsAssignedTo reports whether userID is the delivery crew member of the order.
func (o *Order) IsAssignedTo(userID int64) bool {
	return o.deliveryCrewID != nil && *o.deliveryCrewID == userID
}

// Apply validates every change first and only then updates the order, so a
// rejected update leaves it as it was.
func (o *Order) Apply(changes Changes) error {
	var statusErr, crewErr error
	if changes.Status != nil {
		statusErr = changes.Status.Validate()
	}
	if changes.DeliveryCrewID != nil && *changes.DeliveryCrewID <= 0 {
		crewErr = errs.NewValueIsInvalidError("delivery_crew_id")
	}
	if err := errors.Join(statusErr, crewErr); err != nil {
		return err
	}

	if changes.Status != nil {
		o.status = *changes.Status
	}
	if changes.DeliveryCrewID != nil {
		id := *changes.DeliveryCrewID
		o.deliveryCrewID = &id
	}
	return nil
}
