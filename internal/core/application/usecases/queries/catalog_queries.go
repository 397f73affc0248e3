package queries

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrListCategoriesQueryIsNotConstructed = errors.New(
		"ListCategoriesQuery must be created via NewListCategoriesQuery constructor",
	)
	ErrGetCategoryQueryIsNotConstructed = errors.New(
		"GetCategoryQuery must be created via NewGetCategoryQuery constructor",
	)
	ErrListMenuItemsQueryIsNotConstructed = errors.New(
		"ListMenuItemsQuery must be created via NewListMenuItemsQuery constructor",
	)
	ErrGetMenuItemQueryIsNotConstructed = errors.New(
		"GetMenuItemQuery must be created via NewGetMenuItemQuery constructor",
	)
)

// menuItemOrderings maps the accepted ordering values to ORDER BY clauses.
var menuItemOrderings = map[string]string{
	"title":  "m.title ASC, m.id ASC",
	"-title": "m.title DESC, m.id ASC",
	"price":  "m.price ASC, m.id ASC",
	"-price": "m.price DESC, m.id ASC",
}

type ListCategoriesQuery struct {
	actor identity.Actor

	guard guard.ConstructorGuard
}

func NewListCategoriesQuery(actor identity.Actor) (ListCategoriesQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListCategoriesQuery{}, err
	}
	return ListCategoriesQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrListCategoriesQueryIsNotConstructed)
}

type ListCategoriesQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListCategoriesQueryHandler(db *gorm.DB) ListCategoriesQueryHandler {
	return ListCategoriesQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h ListCategoriesQueryHandler) Handle(ctx context.Context, query ListCategoriesQuery) ([]CategoryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.actor, services.ViewCatalog); err != nil {
		return nil, err
	}

	categories := make([]CategoryView, 0)
	err := h.db.WithContext(ctx).
		Table("categories").
		Select("id, title, slug").
		Order("id").
		Scan(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

type GetCategoryQuery struct {
	actor      identity.Actor
	categoryID int64

	guard guard.ConstructorGuard
}

func NewGetCategoryQuery(actor identity.Actor, categoryID int64) (GetCategoryQuery, error) {
	if err := errors.Join(actor.Validate(), validateID("category id", categoryID)); err != nil {
		return GetCategoryQuery{}, err
	}
	return GetCategoryQuery{actor: actor, categoryID: categoryID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCategoryQuery) Validate() error {
	return q.guard.Validate(ErrGetCategoryQueryIsNotConstructed)
}

type GetCategoryQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetCategoryQueryHandler(db *gorm.DB) GetCategoryQueryHandler {
	return GetCategoryQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h GetCategoryQueryHandler) Handle(ctx context.Context, query GetCategoryQuery) (CategoryView, error) {
	if err := query.Validate(); err != nil {
		return CategoryView{}, err
	}
	if err := h.policy.Authorize(query.actor, services.ViewCatalog); err != nil {
		return CategoryView{}, err
	}

	var categories []CategoryView
	err := h.db.WithContext(ctx).
		Table("categories").
		Select("id, title, slug").
		Where("id = ?", query.categoryID).
		Limit(1).
		Scan(&categories).Error
	if err != nil {
		return CategoryView{}, err
	}
	if len(categories) == 0 {
		return CategoryView{}, errs.NewObjectNotFoundError("category", query.categoryID)
	}
	return categories[0], nil
}

// MenuItemFilter narrows and sorts the menu item list. Zero values mean no filter.
type MenuItemFilter struct {
	// Search matches a case-insensitive substring of the title.
	Search string
	// Ordering is one of title, -title, price, -price.
	Ordering string
	Featured *bool
}

// ListMenuItemsQuery lists the menu, optionally filtered.
//
// Example:
//
//	q, err := NewListMenuItemsQuery(actor, MenuItemFilter{Search: "lemon", Ordering: "-price"})
type ListMenuItemsQuery struct {
	actor  identity.Actor
	filter MenuItemFilter

	guard guard.ConstructorGuard
}

func NewListMenuItemsQuery(actor identity.Actor, filter MenuItemFilter) (ListMenuItemsQuery, error) {
	var orderingErr error
	filter.Search = strings.TrimSpace(filter.Search)
	if _, ok := menuItemOrderings[filter.Ordering]; filter.Ordering != "" && !ok {
		orderingErr = errs.NewValueIsInvalidErrorWithCause(
			"ordering", fmt.Errorf("%q is not one of title, -title, price, -price", filter.Ordering))
	}
	if err := errors.Join(actor.Validate(), orderingErr); err != nil {
		return ListMenuItemsQuery{}, err
	}
	return ListMenuItemsQuery{actor: actor, filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}

type ListMenuItemsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// likeEscaper makes LIKE wildcards in a search term match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func NewListMenuItemsQueryHandler(db *gorm.DB) ListMenuItemsQueryHandler {
	return ListMenuItemsQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h ListMenuItemsQueryHandler) Handle(ctx context.Context, query ListMenuItemsQuery) ([]MenuItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.actor, services.ViewCatalog); err != nil {
		return nil, err
	}

	tx := menuItems(h.db.WithContext(ctx))
	if query.filter.Search != "" {
		tx = tx.Where(`LOWER(m.title) LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(strings.ToLower(query.filter.Search))+"%")
	}
	if query.filter.Featured != nil {
		tx = tx.Where("m.featured = ?", *query.filter.Featured)
	}
	if order, ok := menuItemOrderings[query.filter.Ordering]; ok {
		tx = tx.Order(order)
	} else {
		tx = tx.Order("m.id")
	}

	var rows []menuItemRow
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]MenuItemView, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.view())
	}
	return items, nil
}

type GetMenuItemQuery struct {
	actor      identity.Actor
	menuItemID int64

	guard guard.ConstructorGuard
}

func NewGetMenuItemQuery(actor identity.Actor, menuItemID int64) (GetMenuItemQuery, error) {
	if err := errors.Join(actor.Validate(), validateID("menu item id", menuItemID)); err != nil {
		return GetMenuItemQuery{}, err
	}
	return GetMenuItemQuery{actor: actor, menuItemID: menuItemID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemQueryIsNotConstructed)
}

type GetMenuItemQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetMenuItemQueryHandler(db *gorm.DB) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h GetMenuItemQueryHandler) Handle(ctx context.Context, query GetMenuItemQuery) (MenuItemView, error) {
	if err := query.Validate(); err != nil {
		return MenuItemView{}, err
	}
	if err := h.policy.Authorize(query.actor, services.ViewCatalog); err != nil {
		return MenuItemView{}, err
	}

	var rows []menuItemRow
	err := menuItems(h.db.WithContext(ctx)).
		Where("m.id = ?", query.menuItemID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return MenuItemView{}, err
	}
	if len(rows) == 0 {
		return MenuItemView{}, errs.NewObjectNotFoundError("menu item", query.menuItemID)
	}
	return rows[0].view(), nil
}

func menuItems(db *gorm.DB) *gorm.DB {
	return db.Table("menu_items AS m").
		Select(menuItemColumns).
		Joins("JOIN categories AS c ON c.id = m.category_id")
}

func validateID(name string, id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError(name)
	}
	return nil
}
