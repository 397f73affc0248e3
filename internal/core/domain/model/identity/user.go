package identity

import (
	"errors"
	"slices"
	"strings"

	"littlelemon/internal/pkg/errs"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is an account in the identity store.
type User struct {
	id           int64
	username     string
	email        string
	passwordHash string
	groups       []Group

	isConstructed bool
}

// NewUser creates an account that has not been persisted yet.
func NewUser(username, email, passwordHash string) (*User, error) {
	u := &User{isConstructed: true}
	if err := errors.Join(
		u.setUsername(username),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}
	u.email = strings.TrimSpace(email)
	return u, nil
}

// RestoreUser rebuilds a persisted account.
func RestoreUser(id int64, username, email, passwordHash string, groups []Group) (*User, error) {
	u := &User{id: id, email: email, passwordHash: passwordHash, groups: slices.Clone(groups), isConstructed: true}
	if err := u.setUsername(username); err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("user id")
	}
	return u, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// AssignID records the identity handed out by the store. It can be set only once.
func (u *User) AssignID(id int64) error {
	if u.id != 0 {
		return errs.NewValueIsInvalidError("user id is already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("user id")
	}
	u.id = id
	return nil
}

func (u *User) ID() int64 {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Groups() []Group {
	return slices.Clone(u.groups)
}

func (u *User) InGroup(g Group) bool {
	return slices.Contains(u.groups, g)
}

func (u *User) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	if len(username) > 150 {
		return errs.NewValueIsOutOfRangeError("username length", len(username), 1, 150)
	}
	u.username = username
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = hash
	return nil
}
