package http

import (
	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/generated/servers"
)

// CommandHandlers groups the write use cases exposed over HTTP.
type CommandHandlers struct {
	IssueToken        commands.IssueTokenCommandHandler
	AddGroupMember    commands.AddGroupMemberCommandHandler
	RemoveGroupMember commands.RemoveGroupMemberCommandHandler
	CreateCategory    commands.CreateCategoryCommandHandler
	UpdateCategory    commands.UpdateCategoryCommandHandler
	DeleteCategory    commands.DeleteCategoryCommandHandler
	CreateMenuItem    commands.CreateMenuItemCommandHandler
	UpdateMenuItem    commands.UpdateMenuItemCommandHandler
	DeleteMenuItem    commands.DeleteMenuItemCommandHandler
	AddCartItem       commands.AddCartItemCommandHandler
	ClearCart         commands.ClearCartCommandHandler
	PlaceOrder        commands.PlaceOrderCommandHandler
	UpdateOrder       commands.UpdateOrderCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler
}

// QueryHandlers groups the read use cases exposed over HTTP.
type QueryHandlers struct {
	ListGroupMembers queries.ListGroupMembersQueryHandler
	GetGroupMember   queries.GetGroupMemberQueryHandler
	ListCategories   queries.ListCategoriesQueryHandler
	GetCategory      queries.GetCategoryQueryHandler
	ListMenuItems    queries.ListMenuItemsQueryHandler
	GetMenuItem      queries.GetMenuItemQueryHandler
	GetCart          queries.GetCartQueryHandler
	ListOrders       queries.ListOrdersQueryHandler
	GetOrder         queries.GetOrderQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	policy   services.AccessPolicy
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(cmds CommandHandlers, qs QueryHandlers) *Server {
	return &Server{commands: cmds, queries: qs, policy: services.NewAccessPolicy()}
}
