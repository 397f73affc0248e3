package queries

import (
	"context"
	"errors"
	"time"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// ListOrdersQuery lists orders with their items, scoped by the caller's role:
// managers see every order, delivery crew the orders assigned to them and
// customers their own.
type ListOrdersQuery struct {
	actor identity.Actor

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(actor identity.Actor) (ListOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

type ListOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.actor, services.ListOrders); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	tx := orderHeaders(db)
	switch h.policy.ListScope(query.actor) {
	case services.AssignedOrders:
		tx = tx.Where("o.delivery_crew_id = ?", query.actor.UserID())
	case services.OwnOrders:
		tx = tx.Where("o.user_id = ?", query.actor.UserID())
	case services.AllOrders:
	}

	var rows []orderRow
	if err := tx.Order("o.id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	return withItems(db, rows)
}

// GetOrderQuery fetches one order with its items. Only the customer who placed
// the order may read it.
type GetOrderQuery struct {
	actor   identity.Actor
	orderID int64

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(actor identity.Actor, orderID int64) (GetOrderQuery, error) {
	if err := errors.Join(actor.Validate(), validateID("order id", orderID)); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

type GetOrderQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return OrderDetails{}, err
	}
	if err := h.policy.Authorize(query.actor, services.ViewOrder); err != nil {
		return OrderDetails{}, err
	}

	db := h.db.WithContext(ctx)
	var rows []orderRow
	if err := orderHeaders(db).Where("o.id = ?", query.orderID).Limit(1).Scan(&rows).Error; err != nil {
		return OrderDetails{}, err
	}
	if len(rows) == 0 {
		return OrderDetails{}, errs.NewObjectNotFoundError("order", query.orderID)
	}
	if rows[0].UserID != query.actor.UserID() {
		return OrderDetails{}, errs.NewForbiddenError(
			services.ViewOrder.String(), "You do not have permission to view this order.")
	}

	details, err := withItems(db, rows)
	if err != nil {
		return OrderDetails{}, err
	}
	return details[0], nil
}

type orderRow struct {
	ID             int64
	UserID         int64
	Username       string
	Email          string
	DeliveryCrewID *int64
	CrewUsername   *string
	CrewEmail      *string
	Status         int
	Total          decimal.Decimal
	Date           time.Time
}

func (r orderRow) view() OrderView {
	v := OrderView{
		ID:     r.ID,
		User:   UserView{ID: r.UserID, Username: r.Username, Email: r.Email},
		Status: r.Status,
		Total:  r.Total,
		Date:   r.Date,
	}
	if r.DeliveryCrewID != nil {
		crew := UserView{ID: *r.DeliveryCrewID}
		if r.CrewUsername != nil {
			crew.Username = *r.CrewUsername
		}
		if r.CrewEmail != nil {
			crew.Email = *r.CrewEmail
		}
		v.DeliveryCrew = &crew
	}
	return v
}

type orderItemRow struct {
	MenuItem menuItemRow `gorm:"embedded"`

	OrderItemID int64
	OrderID     int64
	Quantity    int
	UnitPrice   decimal.Decimal
	LinePrice   decimal.Decimal
}

func orderHeaders(db *gorm.DB) *gorm.DB {
	return db.Table("orders AS o").
		Select("o.id, o.user_id, u.username, u.email, o.delivery_crew_id, " +
			"dc.username AS crew_username, dc.email AS crew_email, o.status, o.total, o.date").
		Joins("JOIN auth_user AS u ON u.id = o.user_id").
		Joins("LEFT JOIN auth_user AS dc ON dc.id = o.delivery_crew_id")
}

// withItems loads the items of all orders in one query and attaches them in
// order id order.
func withItems(db *gorm.DB, orders []orderRow) ([]OrderDetails, error) {
	details := make([]OrderDetails, 0, len(orders))
	if len(orders) == 0 {
		return details, nil
	}

	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	var rows []orderItemRow
	err := db.Table("order_items AS oi").
		Select("oi.id AS order_item_id, oi.order_id, oi.quantity, oi.unit_price, oi.price AS line_price, "+
			menuItemColumns).
		Joins("JOIN menu_items AS m ON m.id = oi.menu_item_id").
		Joins("JOIN categories AS c ON c.id = m.category_id").
		Where("oi.order_id IN ?", ids).
		Order("oi.order_id, oi.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byOrder := make(map[int64][]OrderItemView, len(orders))
	for _, r := range rows {
		byOrder[r.OrderID] = append(byOrder[r.OrderID], OrderItemView{
			ID:        r.OrderItemID,
			OrderID:   r.OrderID,
			MenuItem:  r.MenuItem.view(),
			Quantity:  r.Quantity,
			UnitPrice: r.UnitPrice,
			Price:     r.LinePrice,
		})
	}

	for _, o := range orders {
		items := byOrder[o.ID]
		if items == nil {
			items = make([]OrderItemView, 0)
		}
		details = append(details, OrderDetails{Order: o.view(), Items: items})
	}
	return details, nil
}
