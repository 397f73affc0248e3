package queries

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrListGroupMembersQueryIsNotConstructed = errors.New(
		"ListGroupMembersQuery must be created via NewListGroupMembersQuery constructor",
	)
	ErrGetGroupMemberQueryIsNotConstructed = errors.New(
		"GetGroupMemberQuery must be created via NewGetGroupMemberQuery constructor",
	)
)

// ListGroupMembersQuery lists the members of a role group. Manager only.
type ListGroupMembersQuery struct {
	actor identity.Actor
	group identity.Group

	guard guard.ConstructorGuard
}

func NewListGroupMembersQuery(actor identity.Actor, group identity.Group) (ListGroupMembersQuery, error) {
	if err := errors.Join(actor.Validate(), group.Validate()); err != nil {
		return ListGroupMembersQuery{}, err
	}
	return ListGroupMembersQuery{actor: actor, group: group, guard: guard.NewConstructorGuard()}, nil
}

func (q ListGroupMembersQuery) Validate() error {
	return q.guard.Validate(ErrListGroupMembersQueryIsNotConstructed)
}

// GetGroupMemberQuery fetches one user and checks that they belong to the group.
type GetGroupMemberQuery struct {
	actor    identity.Actor
	group    identity.Group
	username string

	guard guard.ConstructorGuard
}

func NewGetGroupMemberQuery(actor identity.Actor, group identity.Group, username string) (GetGroupMemberQuery, error) {
	if err := errors.Join(actor.Validate(), group.Validate()); err != nil {
		return GetGroupMemberQuery{}, err
	}
	return GetGroupMemberQuery{
		actor:    actor,
		group:    group,
		username: strings.TrimSpace(username),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetGroupMemberQuery) Validate() error {
	return q.guard.Validate(ErrGetGroupMemberQueryIsNotConstructed)
}

// ListGroupMembersQueryHandler returns the members ordered by id.
type ListGroupMembersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListGroupMembersQueryHandler(db *gorm.DB) ListGroupMembersQueryHandler {
	return ListGroupMembersQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h ListGroupMembersQueryHandler) Handle(ctx context.Context, query ListGroupMembersQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.actor, services.ManageGroupMembers); err != nil {
		return nil, err
	}

	users := make([]UserView, 0)
	err := h.db.WithContext(ctx).
		Table("auth_user AS u").
		Select("u.id, u.username, u.email").
		Joins("JOIN auth_user_groups AS ug ON ug.user_id = u.id").
		Joins("JOIN auth_group AS g ON g.id = ug.group_id").
		Where("g.name = ?", string(query.group)).
		Order("u.id").
		Scan(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetGroupMemberQueryHandler fails with errs.ObjectNotFoundError for an unknown
// username and with errs.ValueIsInvalidError when the user is not in the group.
type GetGroupMemberQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetGroupMemberQueryHandler(db *gorm.DB) GetGroupMemberQueryHandler {
	return GetGroupMemberQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h GetGroupMemberQueryHandler) Handle(ctx context.Context, query GetGroupMemberQuery) (UserView, error) {
	if err := query.Validate(); err != nil {
		return UserView{}, err
	}
	if err := h.policy.Authorize(query.actor, services.ManageGroupMembers); err != nil {
		return UserView{}, err
	}

	db := h.db.WithContext(ctx)
	var users []UserView
	err := db.Table("auth_user").
		Select("id, username, email").
		Where("username = ?", query.username).
		Limit(1).
		Scan(&users).Error
	if err != nil {
		return UserView{}, err
	}
	if len(users) == 0 {
		return UserView{}, errs.NewObjectNotFoundError("username", query.username)
	}
	user := users[0]

	var memberships int64
	err = db.Table("auth_user_groups AS ug").
		Joins("JOIN auth_group AS g ON g.id = ug.group_id").
		Where("ug.user_id = ? AND g.name = ?", user.ID, string(query.group)).
		Count(&memberships).Error
	if err != nil {
		return UserView{}, err
	}
	if memberships == 0 {
		return UserView{}, errs.NewValueIsInvalidErrorWithCause(
			"username", fmt.Errorf("User is not a %s!!", query.group.MemberNoun()), //nolint:staticcheck // shown to clients as is
		)
	}

	return user, nil
}
