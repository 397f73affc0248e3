package catalogrepo

import (
	"context"
	"errors"

	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
)

var (
	ErrDuplicateTitle  = errors.New("category with this title already exists.")
	ErrCategoryInUse   = errors.New("category is still referenced by menu items")
	ErrUnknownCategory = errors.New("category does not exist")
)

// GormCategoryRepository implements CategoryRepository using GORM.
type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// Add saves a new category and assigns the generated id to it.
func (r *GormCategoryRepository) Add(ctx context.Context, c *catalog.Category) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := r.ensureTitleIsFree(ctx, c.Title(), 0); err != nil {
		return err
	}

	dto := categoryFromDomain(c)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translate(err)
	}
	return c.AssignID(dto.ID)
}

// Get retrieves a category by id.
func (r *GormCategoryRepository) Get(ctx context.Context, id int64) (*catalog.Category, error) {
	var dto CategoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("category", id)
		}
		return nil, err
	}
	return categoryToDomain(dto)
}

// Update saves title and slug of an existing category.
func (r *GormCategoryRepository) Update(ctx context.Context, c *catalog.Category) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := r.ensureTitleIsFree(ctx, c.Title(), c.ID()); err != nil {
		return err
	}

	dto := categoryFromDomain(c)
	result := r.db.WithContext(ctx).Model(&CategoryDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{"title": dto.Title, "slug": dto.Slug})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("category", dto.ID)
	}
	return nil
}

// Delete removes a category that no menu item refers to.
func (r *GormCategoryRepository) Delete(ctx context.Context, id int64) error {
	var refs int64
	if err := r.db.WithContext(ctx).Model(&MenuItemDTO{}).Where("category_id = ?", id).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return errs.NewValueIsInvalidErrorWithCause("category", ErrCategoryInUse)
	}

	result := r.db.WithContext(ctx).Delete(&CategoryDTO{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("category", id)
	}
	return nil
}

func (r *GormCategoryRepository) ensureTitleIsFree(ctx context.Context, title string, exceptID int64) error {
	var n int64
	if err := r.db.WithContext(ctx).Model(&CategoryDTO{}).
		Where("title = ? AND id <> ?", title, exceptID).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return errs.NewValueIsInvalidErrorWithCause("title", ErrDuplicateTitle)
	}
	return nil
}

// translate maps constraint violations reported by the driver to validation errors.
func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewValueIsInvalidErrorWithCause("title", ErrDuplicateTitle)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errs.NewValueIsInvalidErrorWithCause("category", err)
	default:
		return err
	}
}
