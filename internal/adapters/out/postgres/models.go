package postgres

import (
	"littlelemon/internal/adapters/out/postgres/cartrepo"
	"littlelemon/internal/adapters/out/postgres/catalogrepo"
	"littlelemon/internal/adapters/out/postgres/orderrepo"
	"littlelemon/internal/adapters/out/postgres/userrepo"
)

// Models lists every persisted DTO. Production schemas come from the SQL
// migrations; AutoMigrate over Models is used for throwaway databases in tests.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&userrepo.GroupDTO{},
		&userrepo.UserGroupDTO{},
		&catalogrepo.CategoryDTO{},
		&catalogrepo.MenuItemDTO{},
		&cartrepo.CartItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	}
}
