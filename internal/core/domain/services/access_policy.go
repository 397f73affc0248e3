package services

import (
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/errs"
)

// Operation names an action guarded by the access policy.
type Operation int

const (
	ManageGroupMembers Operation = iota + 1
	ViewCatalog
	CreateCategory
	UpdateCategory
	DeleteCategory
	CreateMenuItem
	UpdateMenuItem
	DeleteMenuItem
	BulkModifyMenuItems
	ManageCart
	PlaceOrder
	ListOrders
	ViewOrder
	ReplaceOrder
	PatchOrder
	DeleteOrder
)

var operationNames = map[Operation]string{
	ManageGroupMembers:  "manage group members",
	ViewCatalog:         "view catalog",
	CreateCategory:      "create category",
	UpdateCategory:      "update category",
	DeleteCategory:      "delete category",
	CreateMenuItem:      "create menu item",
	UpdateMenuItem:      "update menu item",
	DeleteMenuItem:      "delete menu item",
	BulkModifyMenuItems: "modify menu items in bulk",
	ManageCart:          "manage cart",
	PlaceOrder:          "place order",
	ListOrders:          "list orders",
	ViewOrder:           "view order",
	ReplaceOrder:        "replace order",
	PatchOrder:          "update order",
	DeleteOrder:         "delete order",
}

func (op Operation) String() string {
	if name, ok := operationNames[op]; ok {
		return name
	}
	return "unknown operation"
}

// AccessPolicy maps roles to the operations they may perform.
//
// Role matrix:
//
//	                    Manager  Delivery crew  Customer
//	group members       yes      no             no
//	catalog read        yes      yes            yes
//	catalog write       yes      no             no
//	bulk menu writes    no       no             no
//	cart                no       no             yes
//	place order         no       no             yes
//	list orders         all      assigned       own
//	view order          own      own            own
//	replace order       yes      no             no
//	patch order         yes      assigned*      no
//	delete order        yes      no             no
//
// (*) status only.
type AccessPolicy struct{}

func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// Authorize checks an operation that does not depend on a particular order.
func (AccessPolicy) Authorize(actor identity.Actor, op Operation) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	switch op {
	case ViewCatalog, ListOrders, ViewOrder:
		return nil
	case ManageGroupMembers:
		return requireManager(actor, op, "Only managers can manage group members")
	case CreateCategory:
		return requireManager(actor, op, "You are not allowed to create categories!!")
	case UpdateCategory:
		return requireManager(actor, op, "You are not allowed to update categories!!")
	case DeleteCategory:
		return requireManager(actor, op, "You are not allowed to delete categories!!")
	case CreateMenuItem:
		return requireManager(actor, op, "You are not allowed to create menu items!!")
	case UpdateMenuItem:
		return requireManager(actor, op, "You are not allowed to update menu items!!")
	case DeleteMenuItem:
		return requireManager(actor, op, "You are not allowed to delete menu items!!")
	case BulkModifyMenuItems:
		return errs.NewForbiddenError(op.String(), "You are not allowed to update menu items here!!")
	case ManageCart:
		return requireCustomer(actor, op, "Only customers have a cart")
	case PlaceOrder:
		return requireCustomer(actor, op, "You are not allowed to create orders!!")
	case ReplaceOrder:
		if actor.IsDeliveryCrew() {
			return errs.NewForbiddenError(op.String(), "You are not allowed to update complete order!!")
		}
		return requireManager(actor, op, "You are not allowed to update orders!!")
	case PatchOrder:
		if actor.IsCustomer() {
			return errs.NewForbiddenError(op.String(), "You are not allowed to update orders!!")
		}
		return nil
	case DeleteOrder:
		return requireManager(actor, op, "You are not allowed to delete orders!!")
	default:
		return errs.NewForbiddenError(op.String(), "operation is not permitted")
	}
}

// AuthorizeOrder checks an operation against a loaded order. It applies the role
// check of Authorize first.
func (p AccessPolicy) AuthorizeOrder(actor identity.Actor, op Operation, o *order.Order) error {
	if err := p.Authorize(actor, op); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}

	switch op {
	case ViewOrder:
		if !o.IsOwnedBy(actor.UserID()) {
			return errs.NewForbiddenError(op.String(), "You do not have permission to view this order.")
		}
	case PatchOrder:
		if actor.IsDeliveryCrew() && !o.IsAssignedTo(actor.UserID()) {
			return errs.NewForbiddenError(op.String(), "This order is not assigned to you.")
		}
	}
	return nil
}

// OrderScope says which orders a role may list.
type OrderScope int

const (
	// AllOrders is the manager view.
	AllOrders OrderScope = iota
	// AssignedOrders are the orders whose delivery crew is the actor.
	AssignedOrders
	// OwnOrders are the orders placed by the actor.
	OwnOrders
)

// ListScope returns the scope of the orders list for the actor.
func (AccessPolicy) ListScope(actor identity.Actor) OrderScope {
	switch {
	case actor.IsManager():
		return AllOrders
	case actor.IsDeliveryCrew():
		return AssignedOrders
	default:
		return OwnOrders
	}
}

func requireManager(actor identity.Actor, op Operation, reason string) error {
	if !actor.IsManager() {
		return errs.NewForbiddenError(op.String(), reason)
	}
	return nil
}

func requireCustomer(actor identity.Actor, op Operation, reason string) error {
	if !actor.IsCustomer() {
		return errs.NewForbiddenError(op.String(), reason)
	}
	return nil
}
