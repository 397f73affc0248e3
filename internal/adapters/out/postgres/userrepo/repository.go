package userrepo

import (
	"context"
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add saves a new account and assigns the generated id to it.
func (r *GormUserRepository) Add(ctx context.Context, user *identity.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	var taken int64
	if err := r.db.WithContext(ctx).Model(&UserDTO{}).
		Where("username = ?", user.Username()).Count(&taken).Error; err != nil {
		return err
	}
	if taken > 0 {
		return errs.NewValueIsInvalidErrorWithCause("username", errors.New("a user with that username already exists"))
	}

	dto := fromDomain(user)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("username", err)
		}
		return err
	}
	return user.AssignID(dto.ID)
}

// Get retrieves an account with its groups.
func (r *GormUserRepository) Get(ctx context.Context, id int64) (*identity.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id)
		}
		return nil, err
	}
	return r.withGroups(ctx, dto)
}

// GetByUsername retrieves an account with its groups by username.
func (r *GormUserRepository) GetByUsername(ctx context.Context, username string) (*identity.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("username", username)
		}
		return nil, err
	}
	return r.withGroups(ctx, dto)
}

// AddToGroup creates the group on first use and inserts the membership unless it exists.
func (r *GormUserRepository) AddToGroup(ctx context.Context, userID int64, group identity.Group) error {
	if err := group.Validate(); err != nil {
		return err
	}

	g := GroupDTO{Name: string(group)}
	if err := r.db.WithContext(ctx).Where(GroupDTO{Name: g.Name}).FirstOrCreate(&g).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&UserGroupDTO{UserID: userID, GroupID: g.ID}).Error
}

// RemoveFromGroup deletes the membership if there is one.
func (r *GormUserRepository) RemoveFromGroup(ctx context.Context, userID int64, group identity.Group) error {
	if err := group.Validate(); err != nil {
		return err
	}

	var g GroupDTO
	if err := r.db.WithContext(ctx).First(&g, "name = ?", string(group)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	return r.db.WithContext(ctx).
		Where("user_id = ? AND group_id = ?", userID, g.ID).
		Delete(&UserGroupDTO{}).Error
}

func (r *GormUserRepository) withGroups(ctx context.Context, dto UserDTO) (*identity.User, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&GroupDTO{}).
		Joins("JOIN auth_user_groups ON auth_user_groups.group_id = auth_group.id").
		Where("auth_user_groups.user_id = ?", dto.ID).
		Order("auth_group.name").
		Pluck("auth_group.name", &names).Error
	if err != nil {
		return nil, err
	}
	return toDomain(dto, names)
}
