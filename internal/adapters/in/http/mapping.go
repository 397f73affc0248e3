package http

import (
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func toUser(v queries.UserView) servers.User {
	return servers.User{Id: v.ID, Username: v.Username, Email: v.Email}
}

func toUsers(vs []queries.UserView) []servers.User {
	out := make([]servers.User, 0, len(vs))
	for _, v := range vs {
		out = append(out, toUser(v))
	}
	return out
}

func toCategory(v queries.CategoryView) servers.Category {
	return servers.Category{Id: v.ID, Title: v.Title, Slug: v.Slug}
}

func toMenuItem(v queries.MenuItemView) servers.MenuItem {
	return servers.MenuItem{
		Id:       v.ID,
		Title:    v.Title,
		Price:    money(v.Price),
		Featured: v.Featured,
		Category: toCategory(v.Category),
	}
}

func toCartItem(v queries.CartItemView) servers.CartItem {
	return servers.CartItem{
		Id:        v.ID,
		User:      toUser(v.User),
		Menuitem:  toMenuItem(v.MenuItem),
		Quantity:  v.Quantity,
		UnitPrice: money(v.UnitPrice),
		Price:     money(v.Price),
	}
}

func toOrderDetails(v queries.OrderDetails) servers.OrderDetails {
	o := servers.Order{
		Id:     v.Order.ID,
		User:   toUser(v.Order.User),
		Status: servers.OrderStatus(v.Order.Status),
		Total:  money(v.Order.Total),
		Date:   openapi_types.Date{Time: v.Order.Date},
	}
	if v.Order.DeliveryCrew != nil {
		crew := toUser(*v.Order.DeliveryCrew)
		o.DeliveryCrew = &crew
	}

	items := make([]servers.OrderItem, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, servers.OrderItem{
			Id:        it.ID,
			Order:     it.OrderID,
			Menuitem:  toMenuItem(it.MenuItem),
			Quantity:  it.Quantity,
			UnitPrice: money(it.UnitPrice),
			Price:     money(it.Price),
		})
	}
	return servers.OrderDetails{Order: o, OrderItems: items}
}
