package user

import (
	"errors"
	"strings"

	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser or RestoreUser factory functions.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is the account aggregate root. The email is the external identity used
// as the JWT subject; the password is stored only as a bcrypt hash computed by
// the security adapter.
type User struct {
	id           kernel.UUID
	email        string
	passwordHash string
	roles        []Role

	isConstructed bool
}

// NewUser creates a validated User with the given role set.
// At least one role is required and the email must look like an address.
func NewUser(id kernel.UUID, email string, passwordHash string, roles []Role) (*User, error) {
	u := &User{
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRoles(roles),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persistence.
func RestoreUser(id kernel.UUID, email string, passwordHash string, roles []Role) (*User, error) {
	return NewUser(id, email, passwordHash, roles)
}

// Validate ensures the User was created through a factory function.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the user's unique email address.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the stored bcrypt hash of the user's password.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Roles returns the roles granted to the user.
func (u *User) Roles() []Role {
	return u.roles
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.roles {
		if r == role {
			return true
		}
	}
	return false
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setRoles(roles []Role) error {
	if len(roles) == 0 {
		return errs.NewValueIsRequiredError("roles")
	}
	for _, role := range roles {
		if err := role.Validate(); err != nil {
			return err
		}
	}
	u.roles = roles
	return nil
}
