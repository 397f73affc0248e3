package http

import (
	"net/http"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetCart handles GET /cart/menu-items - the caller's cart lines.
func (s *Server) GetCart(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCartQuery(actor)
	if err != nil {
		return err
	}
	items, err := s.queries.GetCart.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.CartItem, 0, len(items))
	for _, item := range items {
		response = append(response, toCartItem(item))
	}
	return c.JSON(http.StatusOK, response)
}

// AddCartItem handles POST /cart/menu-items.
func (s *Server) AddCartItem(c echo.Context) error {
	actor, err := s.authorize(c, services.ManageCart)
	if err != nil {
		return err
	}
	var body servers.AddCartItemJSONRequestBody
	if err = bind(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewAddCartItemCommand(actor, body.MenuitemId, body.Quantity)
	if err != nil {
		return err
	}
	if _, err = s.commands.AddCartItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return message(c, http.StatusCreated, "Item added to cart!!")
}

// ClearCart handles DELETE /cart/menu-items.
func (s *Server) ClearCart(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewClearCartCommand(actor)
	if err != nil {
		return err
	}
	if err = s.commands.ClearCart.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return message(c, http.StatusOK, "Cart cleared!!")
}
