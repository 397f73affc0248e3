package queries

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/ports"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrAuthenticateQueryIsNotConstructed = errors.New(
	"AuthenticateQuery must be created via NewAuthenticateQuery constructor",
)

// AuthenticateQuery resolves the actor behind a bearer token.
type AuthenticateQuery struct {
	token string

	guard guard.ConstructorGuard
}

func NewAuthenticateQuery(token string) (AuthenticateQuery, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return AuthenticateQuery{}, fmt.Errorf("%w: missing token", errs.ErrUnauthenticated)
	}
	return AuthenticateQuery{token: token, guard: guard.NewConstructorGuard()}, nil
}

func (q AuthenticateQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateQueryIsNotConstructed)
}

// AuthenticateQueryHandler verifies the token, loads the account and its groups
// and resolves the role once per request. A token of a deleted or renamed
// account is rejected.
type AuthenticateQueryHandler struct {
	db     *gorm.DB
	tokens ports.TokenService
}

func NewAuthenticateQueryHandler(db *gorm.DB, tokens ports.TokenService) AuthenticateQueryHandler {
	return AuthenticateQueryHandler{db: db, tokens: tokens}
}

func (h AuthenticateQueryHandler) Handle(ctx context.Context, query AuthenticateQuery) (identity.Actor, error) {
	if err := query.Validate(); err != nil {
		return identity.Actor{}, err
	}

	claims, err := h.tokens.Parse(query.token)
	if err != nil {
		return identity.Actor{}, err
	}

	db := h.db.WithContext(ctx)
	var users []UserView
	err = db.Table("auth_user").
		Select("id, username, email").
		Where("id = ?", claims.UserID).
		Limit(1).
		Scan(&users).Error
	if err != nil {
		return identity.Actor{}, err
	}
	if len(users) == 0 || users[0].Username != claims.Username {
		return identity.Actor{}, fmt.Errorf("%w: unknown user", errs.ErrUnauthenticated)
	}

	var names []string
	err = db.Table("auth_group AS g").
		Joins("JOIN auth_user_groups AS ug ON ug.group_id = g.id").
		Where("ug.user_id = ?", claims.UserID).
		Pluck("g.name", &names).Error
	if err != nil {
		return identity.Actor{}, err
	}

	groups := make([]identity.Group, 0, len(names))
	for _, name := range names {
		groups = append(groups, identity.Group(name))
	}
	return identity.NewActor(users[0].ID, users[0].Username, identity.RoleFromGroups(groups))
}
