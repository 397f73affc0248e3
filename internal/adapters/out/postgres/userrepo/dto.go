// Package userrepo persists accounts and their group membership. The layout
// follows the classic auth schema: auth_user, auth_group and the auth_user_groups
// join table.
package userrepo

import (
	"littlelemon/internal/core/domain/model/identity"
)

type UserDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"size:150;uniqueIndex;not null"`
	Email        string `gorm:"size:254;not null;default:''"`
	PasswordHash string `gorm:"size:255;not null"`
}

func (UserDTO) TableName() string {
	return "auth_user"
}

type GroupDTO struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"size:150;uniqueIndex;not null"`
}

func (GroupDTO) TableName() string {
	return "auth_group"
}

// UserGroupDTO is one membership row.
type UserGroupDTO struct {
	UserID  int64 `gorm:"primaryKey;autoIncrement:false"`
	GroupID int64 `gorm:"primaryKey;autoIncrement:false;index"`
}

func (UserGroupDTO) TableName() string {
	return "auth_user_groups"
}

func fromDomain(u *identity.User) UserDTO {
	return UserDTO{
		ID:           u.ID(),
		Username:     u.Username(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
	}
}

func toDomain(dto UserDTO, groupNames []string) (*identity.User, error) {
	groups := make([]identity.Group, 0, len(groupNames))
	for _, name := range groupNames {
		groups = append(groups, identity.Group(name))
	}
	return identity.RestoreUser(dto.ID, dto.Username, dto.Email, dto.PasswordHash, groups)
}
