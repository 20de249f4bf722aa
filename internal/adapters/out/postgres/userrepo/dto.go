// Package userrepo provides data transfer objects and mapping functions for
// user persistence.
package userrepo

import (
	"strings"

	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
// Roles are stored as a comma-joined list of role names; the set is tiny and
// only ever read back whole.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Roles        string    `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	roles := make([]string, 0, len(aggregate.Roles()))
	for _, role := range aggregate.Roles() {
		roles = append(roles, role.String())
	}

	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Roles:        strings.Join(roles, ","),
	}
}

// toDomain converts a database DTO to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	names := strings.Split(dto.Roles, ",")
	roles := make([]user.Role, 0, len(names))
	for _, name := range names {
		role, roleErr := user.ParseRole(name)
		if roleErr != nil {
			return nil, roleErr
		}
		roles = append(roles, role)
	}

	return user.RestoreUser(id, dto.Email, dto.PasswordHash, roles)
}
