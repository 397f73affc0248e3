package queries

import (
	"context"
	"errors"
	"time"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/guard"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery lists the caller's cart lines in the order they were added.
type GetCartQuery struct {
	actor identity.Actor

	guard guard.ConstructorGuard
}

func NewGetCartQuery(actor identity.Actor) (GetCartQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetCartQuery{}, err
	}
	return GetCartQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

type GetCartQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

type cartItemRow struct {
	MenuItem menuItemRow `gorm:"embedded"`

	CartItemID int64
	UserID     int64
	Username   string
	Email      string
	Quantity   int
	UnitPrice  decimal.Decimal
	LinePrice  decimal.Decimal
	CreatedAt  time.Time
}

func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) ([]CartItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.actor, services.ManageCart); err != nil {
		return nil, err
	}

	var rows []cartItemRow
	err := h.db.WithContext(ctx).
		Table("cart_items AS ci").
		Select("ci.id AS cart_item_id, ci.user_id, u.username, u.email, "+
			"ci.quantity, ci.unit_price, ci.price AS line_price, ci.created_at, "+menuItemColumns).
		Joins("JOIN auth_user AS u ON u.id = ci.user_id").
		Joins("JOIN menu_items AS m ON m.id = ci.menu_item_id").
		Joins("JOIN categories AS c ON c.id = m.category_id").
		Where("ci.user_id = ?", query.actor.UserID()).
		Order("ci.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]CartItemView, 0, len(rows))
	for _, r := range rows {
		items = append(items, CartItemView{
			ID:        r.CartItemID,
			User:      UserView{ID: r.UserID, Username: r.Username, Email: r.Email},
			MenuItem:  r.MenuItem.view(),
			Quantity:  r.Quantity,
			UnitPrice: r.UnitPrice,
			Price:     r.LinePrice,
			CreatedAt: r.CreatedAt,
		})
	}
	return items, nil
}
