package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/catalog"
)

// CategoryRepository defines the persistence contract for categories.
// A duplicate title is reported as errs.ValueIsInvalidError.
type CategoryRepository interface {
	Add(ctx context.Context, category *catalog.Category) error
	Get(ctx context.Context, id int64) (*catalog.Category, error)
	Update(ctx context.Context, category *catalog.Category) error

	// Delete removes a category. It fails with errs.ValueIsInvalidError while
	// menu items still reference it.
	Delete(ctx context.Context, id int64) error
}

// MenuItemRepository defines the persistence contract for menu items.
// A reference to a missing category is reported as errs.ValueIsInvalidError.
type MenuItemRepository interface {
	Add(ctx context.Context, item *catalog.MenuItem) error
	Get(ctx context.Context, id int64) (*catalog.MenuItem, error)
	Update(ctx context.Context, item *catalog.MenuItem) error
	Delete(ctx context.Context, id int64) error
}
