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

var (
	memberAddedMessages = map[identity.Group]string{
		identity.GroupManager:      "Manager added!!",
		identity.GroupDeliveryCrew: "Delivery Crew added!!",
	}
	memberRemovedMessages = map[identity.Group]string{
		identity.GroupManager:      "User removed from manager group!!",
		identity.GroupDeliveryCrew: "User removed from delivery crew group!!",
	}
)

// ListGroupMembers handles GET /groups/{group}/users.
func (s *Server) ListGroupMembers(c echo.Context, group servers.Group) error {
	actor, err := s.authorize(c, services.ManageGroupMembers)
	if err != nil {
		return err
	}
	g, err := identity.ParseGroupSlug(group)
	if err != nil {
		return err
	}

	query, err := queries.NewListGroupMembersQuery(actor, g)
	if err != nil {
		return err
	}
	users, err := s.queries.ListGroupMembers.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUsers(users))
}

// AddGroupMember handles POST /groups/{group}/users.
func (s *Server) AddGroupMember(c echo.Context, group servers.Group) error {
	actor, err := s.authorize(c, services.ManageGroupMembers)
	if err != nil {
		return err
	}
	g, err := identity.ParseGroupSlug(group)
	if err != nil {
		return err
	}
	var body servers.AddGroupMemberJSONRequestBody
	if err = bind(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewAddGroupMemberCommand(actor, g, deref(body.Username))
	if err != nil {
		return err
	}
	if err = s.commands.AddGroupMember.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return message(c, http.StatusOK, memberAddedMessages[g])
}

// GetGroupMember handles GET /groups/{group}/users/{username}.
func (s *Server) GetGroupMember(c echo.Context, group servers.Group, username string) error {
	actor, err := s.authorize(c, services.ManageGroupMembers)
	if err != nil {
		return err
	}
	g, err := identity.ParseGroupSlug(group)
	if err != nil {
		return err
	}

	query, err := queries.NewGetGroupMemberQuery(actor, g, username)
	if err != nil {
		return err
	}
	user, err := s.queries.GetGroupMember.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUser(user))
}

// RemoveGroupMember handles DELETE /groups/{group}/users/{username}.
func (s *Server) RemoveGroupMember(c echo.Context, group servers.Group, username string) error {
	actor, err := s.authorize(c, services.ManageGroupMembers)
	if err != nil {
		return err
	}
	g, err := identity.ParseGroupSlug(group)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveGroupMemberCommand(actor, g, username)
	if err != nil {
		return err
	}
	if err = s.commands.RemoveGroupMember.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return message(c, http.StatusOK, memberRemovedMessages[g])
}
