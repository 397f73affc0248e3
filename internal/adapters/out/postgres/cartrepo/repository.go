package cartrepo

import (
	"context"
	"errors"
	"time"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Add saves a new cart line and assigns the generated id to it.
func (r *GormCartRepository) Add(ctx context.Context, item *cart.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return errs.NewObjectNotFoundErrorWithCause("menuitem", item.MenuItemID(), err)
		}
		return err
	}
	return item.AssignID(dto.ID)
}

// ListByUserForUpdate reads the user's cart with SELECT ... FOR UPDATE. Dialects
// without row locks, such as SQLite, drop the locking clause.
func (r *GormCartRepository) ListByUserForUpdate(ctx context.Context, userID int64) ([]*cart.Item, error) {
	var dtos []CartItemDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	items := make([]*cart.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// ClearForUser deletes the user's whole cart.
func (r *GormCartRepository) ClearForUser(ctx context.Context, userID int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&CartItemDTO{})
	return result.RowsAffected, result.Error
}

// DeleteOlderThan deletes cart lines created before cutoff, whoever owns them.
func (r *GormCartRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&CartItemDTO{})
	return result.RowsAffected, result.Error
}
