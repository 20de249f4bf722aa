package product

import (
	"fmt"
	"strings"

	"fornello/internal/pkg/errs"
)

// Category classifies a product on the menu.
// It is a value object parsed case-insensitively from API input and persisted
// by its string name.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	// This value (0) helps catch uninitialized Category values.
	CategoryUnknown Category = iota

	CategoryPizza
	CategoryDrink
	CategoryDessert
	CategorySide
)

// getCategoryStrings returns a map of Category values to their string representations.
func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryUnknown: "UNKNOWN",
		CategoryPizza:   "PIZZA",
		CategoryDrink:   "DRINK",
		CategoryDessert: "DESSERT",
		CategorySide:    "SIDE",
	}
}

// getValidCategoryStrings returns a map of only valid Category values.
func getValidCategoryStrings() map[Category]string {
	//nolint:exhaustive // CategoryUnknown is intentionally excluded as it's invalid
	return map[Category]string{
		CategoryPizza:   "PIZZA",
		CategoryDrink:   "DRINK",
		CategoryDessert: "DESSERT",
		CategorySide:    "SIDE",
	}
}

// ParseCategory converts an input token into a Category, ignoring case.
// Returns a ValueIsInvalidError if the token names no known category.
func ParseCategory(token string) (Category, error) {
	normalized := strings.ToUpper(strings.TrimSpace(token))
	for category, name := range getValidCategoryStrings() {
		if name == normalized {
			return category, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"category",
		fmt.Errorf("%q is not a known category", token),
	)
}

// Validate checks if the Category value is valid.
func (c Category) Validate() error {
	if _, ok := getValidCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"category",
			fmt.Errorf("%d is not a valid category", c),
		)
	}
	return nil
}

// String returns the persisted name of the category, e.g. "PIZZA".
// Implements the fmt.Stringer interface and is safe to call on any value.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}
