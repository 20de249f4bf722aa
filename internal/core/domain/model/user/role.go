package user

import (
	"fmt"
	"strings"

	"fornello/internal/pkg/errs"
)

// Role names a permission level granted to a user.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleAdministrator grants full access to the catalog, users and all orders.
	RoleAdministrator

	// RoleCustomer grants access to the catalog and to the user's own orders.
	RoleCustomer
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:       "UNKNOWN",
		RoleAdministrator: "ADMINISTRATOR",
		RoleCustomer:      "CUSTOMER",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleAdministrator: "ADMINISTRATOR",
		RoleCustomer:      "CUSTOMER",
	}
}

// ParseRole converts a stored or supplied token into a Role, ignoring case.
func ParseRole(token string) (Role, error) {
	normalized := strings.ToUpper(strings.TrimSpace(token))
	for role, name := range getValidRoleStrings() {
		if name == normalized {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a known role", token),
	)
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the persisted name of the role, e.g. "ADMINISTRATOR".
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}
