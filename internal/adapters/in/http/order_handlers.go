package http

import (
	"net/http"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListOrders handles GET /orders - every order the caller's role can see.
func (s *Server) ListOrders(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListOrdersQuery(actor)
	if err != nil {
		return err
	}
	orders, err := s.queries.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.OrderDetails, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderDetails(o))
	}
	return c.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /orders - converts the caller's cart into an order.
func (s *Server) PlaceOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewPlaceOrderCommand(actor)
	if err != nil {
		return err
	}
	placed, err := s.commands.PlaceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(actor, placed.ID())
	if err != nil {
		return err
	}
	details, err := s.queries.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, servers.PlacedOrder{
		Message: "Order created successfully!",
		Order:   toOrderDetails(details),
	})
}

// GetOrder handles GET /orders/{id}. Only the owner may read an order.
func (s *Server) GetOrder(c echo.Context, id servers.ID) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(actor, id)
	if err != nil {
		return err
	}
	details, err := s.queries.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderDetails(details))
}

// ReplaceOrder handles PUT /orders/{id}. Manager only.
func (s *Server) ReplaceOrder(c echo.Context, id servers.ID) error {
	return s.updateOrder(c, id, false)
}

// PatchOrder handles PATCH /orders/{id}. Delivery crew may only change the status
// of orders assigned to them.
func (s *Server) PatchOrder(c echo.Context, id servers.ID) error {
	return s.updateOrder(c, id, true)
}

func (s *Server) updateOrder(c echo.Context, id int64, partial bool) error {
	op := services.ReplaceOrder
	if partial {
		op = services.PatchOrder
	}
	actor, err := s.authorize(c, op)
	if err != nil {
		return err
	}
	var body servers.OrderInput
	if err = bind(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderCommand(actor, id, commands.OrderFields{
		DeliveryCrewID: body.DeliveryCrewId,
		Status:         body.Status,
	}, partial)
	if err != nil {
		return err
	}
	if err = s.commands.UpdateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	if actor.IsDeliveryCrew() {
		return message(c, http.StatusOK, "Order status updated successfully!")
	}
	return message(c, http.StatusOK, "Order updated successfully!")
}

// DeleteOrder handles DELETE /orders/{id}. Manager only.
func (s *Server) DeleteOrder(c echo.Context, id servers.ID) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(actor, id)
	if err != nil {
		return err
	}
	if err = s.commands.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return message(c, http.StatusOK, "Order deleted successfully!")
}
