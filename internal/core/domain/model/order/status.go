package order

import (
	"fmt"
	"strings"

	"fornello/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// There is deliberately no transition graph: staff may overwrite the status
// with any valid value, including moving a delivered order back to pending.
// Status is a value object parsed case-insensitively from API input and
// persisted by its string name.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status assigned to every new order.
	StatusPending

	StatusConfirmed
	StatusInPreparation
	StatusOutForDelivery
	StatusDelivered
	StatusCanceled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "UNKNOWN",
		StatusPending:        "PENDING",
		StatusConfirmed:      "CONFIRMED",
		StatusInPreparation:  "IN_PREPARATION",
		StatusOutForDelivery: "OUT_FOR_DELIVERY",
		StatusDelivered:      "DELIVERED",
		StatusCanceled:       "CANCELED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:        "PENDING",
		StatusConfirmed:      "CONFIRMED",
		StatusInPreparation:  "IN_PREPARATION",
		StatusOutForDelivery: "OUT_FOR_DELIVERY",
		StatusDelivered:      "DELIVERED",
		StatusCanceled:       "CANCELED",
	}
}

// ParseStatus converts an input token into a Status, ignoring case.
// Returns a ValueIsInvalidError if the token names no known status.
func ParseStatus(token string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(token))
	for status, name := range getValidStatusStrings() {
		if name == normalized {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a known status", token),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the persisted name of the status, e.g. "PENDING".
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
