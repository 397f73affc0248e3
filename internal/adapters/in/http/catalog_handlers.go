package http

import (
	"net/http"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListCategories handles GET /category.
func (s *Server) ListCategories(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListCategoriesQuery(actor)
	if err != nil {
		return err
	}
	categories, err := s.queries.ListCategories.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Category, 0, len(categories))
	for _, category := range categories {
		response = append(response, toCategory(category))
	}
	return c.JSON(http.StatusOK, response)
}

// CreateCategory handles POST /category.
func (s *Server) CreateCategory(c echo.Context) error {
	actor, err := s.authorize(c, services.CreateCategory)
	if err != nil {
		return err
	}
	var body servers.CreateCategoryJSONRequestBody
	if err = bind(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateCategoryCommand(actor, deref(body.Title), deref(body.Slug))
	if err != nil {
		return err
	}
	id, err := s.commands.CreateCategory.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return s.renderCategory(c, actor, id, http.StatusCreated)
}

// GetCategory handles GET /category/{id}.
func (s *Server) GetCategory(c echo.Context, id servers.ID) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	return s.renderCategory(c, actor, id, http.StatusOK)
}

// UpdateCategory handles PATCH /category/{id}.
func (s *Server) UpdateCategory(c echo.Context, id servers.ID) error {
	actor, err := s.authorize(c, services.UpdateCategory)
	if err != nil {
		return err
	}
	var body servers.UpdateCategoryJSONRequestBody
	if err = bind(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateCategoryCommand(actor, id, body.Title, body.Slug)
	if err != nil {
		return err
	}
	if err = s.commands.UpdateCategory.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.renderCategory(c, actor, id, http.StatusOK)
}

// DeleteCategory handles DELETE /category/{id}.
func (s *Server) DeleteCategory(c echo.Context, id servers.ID) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteCategoryCommand(actor, id)
	if err != nil {
		return err
	}
	if err = s.commands.DeleteCategory.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return message(c, http.StatusOK, "Category deleted!!")
}

func (s *Server) renderCategory(c echo.Context, actor identity.Actor, id int64, status int) error {
	query, err := queries.NewGetCategoryQuery(actor, id)
	if err != nil {
		return err
	}
	category, err := s.queries.GetCategory.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(status, toCategory(category))
}

// ListMenuItems handles GET /menu-items with optional search, ordering and
// featured filters.
func (s *Server) ListMenuItems(c echo.Context, params servers.ListMenuItemsParams) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListMenuItemsQuery(actor, queries.MenuItemFilter{
		Search:   deref(params.Search),
		Ordering: deref(params.Ordering),
		Featured: params.Featured,
	})
	if err != nil {
		return err
	}
	items, err := s.queries.ListMenuItems.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.MenuItem, 0, len(items))
	for _, item := range items {
		response = append(response, toMenuItem(item))
	}
	return c.JSON(http.StatusOK, response)
}

// CreateMenuItem handles POST /menu-items.
func (s *Server) CreateMenuItem(c echo.Context) error {
	actor, err := s.authorize(c, services.CreateMenuItem)
	if err != nil {
		return err
	}
	var body servers.CreateMenuItemJSONRequestBody
	if err = bind(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateMenuItemCommand(actor, menuItemFields(body))
	if err != nil {
		return err
	}
	id, err := s.commands.CreateMenuItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return s.renderMenuItem(c, actor, id, http.StatusCreated)
}

// ReplaceMenuItems handles PUT /menu-items. The collection is never writable.
func (s *Server) ReplaceMenuItems(c echo.Context) error {
	return s.rejectBulkWrite(c)
}

// PatchMenuItems handles PATCH /menu-items. The collection is never writable.
func (s *Server) PatchMenuItems(c echo.Context) error {
	return s.rejectBulkWrite(c)
}

// DeleteMenuItems handles DELETE /menu-items. The collection is never writable.
func (s *Server) DeleteMenuItems(c echo.Context) error {
	return s.rejectBulkWrite(c)
}

func (s *Server) rejectBulkWrite(c echo.Context) error {
	_, err := s.authorize(c, services.BulkModifyMenuItems)
	return err
}

// GetMenuItem handles GET /menu-items/{id}.
func (s *Server) GetMenuItem(c echo.Context, id servers.ID) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	return s.renderMenuItem(c, actor, id, http.StatusOK)
}

// ReplaceMenuItem handles PUT /menu-items/{id}. Title, price and category_id are required.
func (s *Server) ReplaceMenuItem(c echo.Context, id servers.ID) error {
	return s.updateMenuItem(c, id, false)
}

// PatchMenuItem handles PATCH /menu-items/{id}.
func (s *Server) PatchMenuItem(c echo.Context, id servers.ID) error {
	return s.updateMenuItem(c, id, true)
}

func (s *Server) updateMenuItem(c echo.Context, id int64, partial bool) error {
	actor, err := s.authorize(c, services.UpdateMenuItem)
	if err != nil {
		return err
	}
	var body servers.MenuItemInput
	if err = bind(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateMenuItemCommand(actor, id, menuItemFields(body), partial)
	if err != nil {
		return err
	}
	if err = s.commands.UpdateMenuItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.renderMenuItem(c, actor, id, http.StatusOK)
}

// DeleteMenuItem handles DELETE /menu-items/{id}.
func (s *Server) DeleteMenuItem(c echo.Context, id servers.ID) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteMenuItemCommand(actor, id)
	if err != nil {
		return err
	}
	if err = s.commands.DeleteMenuItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return message(c, http.StatusOK, "Menu item deleted!!")
}

func (s *Server) renderMenuItem(c echo.Context, actor identity.Actor, id int64, status int) error {
	query, err := queries.NewGetMenuItemQuery(actor, id)
	if err != nil {
		return err
	}
	item, err := s.queries.GetMenuItem.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(status, toMenuItem(item))
}

func menuItemFields(body servers.MenuItemInput) commands.MenuItemFields {
	fields := commands.MenuItemFields{
		Title:      body.Title,
		Featured:   body.Featured,
		CategoryID: body.CategoryId,
	}
	if body.Price != nil {
		price := body.Price.String()
		fields.Price = &price
	}
	return fields
}
