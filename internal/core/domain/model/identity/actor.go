package identity

import (
	"errors"
	"strings"

	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor or ActorFromUser")

// Actor is the authenticated caller of one request.
type Actor struct {
	userID   int64
	username string
	role     Role

	guard guard.ConstructorGuard
}

// NewActor builds an actor with an already resolved role.
func NewActor(userID int64, username string, role Role) (Actor, error) {
	if userID <= 0 {
		return Actor{}, errs.NewValueIsInvalidError("user id")
	}
	if strings.TrimSpace(username) == "" {
		return Actor{}, errs.NewValueIsRequiredError("username")
	}
	return Actor{userID: userID, username: username, role: role, guard: guard.NewConstructorGuard()}, nil
}

// ActorFromUser resolves the actor of a persisted user from their groups.
func ActorFromUser(u *User) (Actor, error) {
	if err := u.Validate(); err != nil {
		return Actor{}, err
	}
	return NewActor(u.ID(), u.Username(), RoleFromGroups(u.Groups()))
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

func (a Actor) UserID() int64 {
	return a.userID
}

func (a Actor) Username() string {
	return a.username
}

func (a Actor) Role() Role {
	return a.role
}

func (a Actor) IsManager() bool {
	return a.role == Manager
}

func (a Actor) IsDeliveryCrew() bool {
	return a.role == DeliveryCrew
}

func (a Actor) IsCustomer() bool {
	return a.role == Customer
}
