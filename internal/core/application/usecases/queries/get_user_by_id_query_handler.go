package queries

import (
	"context"
	"database/sql"
	"errors"

	"fornello/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetUserByIDQueryHandler reads one user account.
type GetUserByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetUserByIDQueryHandler creates a handler for single-user queries.
func NewGetUserByIDQueryHandler(db *gorm.DB) GetUserByIDQueryHandler {
	return GetUserByIDQueryHandler{db: db}
}

// Handle executes the query.
// Returns an ObjectNotFoundError when the user does not exist.
func (h GetUserByIDQueryHandler) Handle(
	ctx context.Context,
	query GetUserByIDQuery,
) (UserResponse, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, err
	}

	var resp UserResponse
	var roles string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			email,
			roles
		FROM users
		WHERE id = ?
	`, query.UserID().Bytes()).Row()

	err := row.Scan(&resp.Email, &roles)
	if errors.Is(err, sql.ErrNoRows) {
		return UserResponse{}, errs.NewObjectNotFoundError("userId", query.UserID())
	}
	if err != nil {
		return UserResponse{}, err
	}

	resp.ID = query.UserID()
	resp.Roles = splitRoles(roles)

	return resp, nil
}
