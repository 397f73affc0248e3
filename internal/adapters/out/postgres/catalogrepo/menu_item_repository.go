package catalogrepo

import (
	"context"
	"errors"

	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuItemRepository implements MenuItemRepository using GORM.
type GormMenuItemRepository struct {
	db *gorm.DB
}

func NewGormMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

// Add saves a new menu item and assigns the generated id to it.
func (r *GormMenuItemRepository) Add(ctx context.Context, m *catalog.MenuItem) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if err := r.ensureCategoryExists(ctx, m.CategoryID()); err != nil {
		return err
	}

	dto := menuItemFromDomain(m)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateMenuItem(err)
	}
	return m.AssignID(dto.ID)
}

// Get retrieves a menu item by id.
func (r *GormMenuItemRepository) Get(ctx context.Context, id int64) (*catalog.MenuItem, error) {
	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menuitem", id)
		}
		return nil, err
	}
	return menuItemToDomain(dto)
}

// Update saves every field of an existing menu item.
func (r *GormMenuItemRepository) Update(ctx context.Context, m *catalog.MenuItem) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if err := r.ensureCategoryExists(ctx, m.CategoryID()); err != nil {
		return err
	}

	dto := menuItemFromDomain(m)
	result := r.db.WithContext(ctx).Model(&MenuItemDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{
			"title":       dto.Title,
			"price":       dto.Price,
			"featured":    dto.Featured,
			"category_id": dto.CategoryID,
		})
	if result.Error != nil {
		return translateMenuItem(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menuitem", dto.ID)
	}
	return nil
}

// Delete removes a menu item.
func (r *GormMenuItemRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&MenuItemDTO{}, "id = ?", id)
	if result.Error != nil {
		return translateMenuItem(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menuitem", id)
	}
	return nil
}

func (r *GormMenuItemRepository) ensureCategoryExists(ctx context.Context, id int64) error {
	var n int64
	if err := r.db.WithContext(ctx).Model(&CategoryDTO{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return errs.NewValueIsInvalidErrorWithCause("category_id", ErrUnknownCategory)
	}
	return nil
}

func translateMenuItem(err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errs.NewValueIsInvalidErrorWithCause("menuitem", err)
	}
	return err
}
