package order

import (
	"fmt"
	"strings"

	"fornello/internal/pkg/errs"
)

// PaymentMethod identifies how the customer chose to pay for the order.
// It is parsed case-insensitively from API input and persisted by its string name.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined payment method.
	PaymentMethodUnknown PaymentMethod = iota

	PaymentMethodCreditCard
	PaymentMethodDebitCard
	PaymentMethodPix
	PaymentMethodCash
)

// getPaymentMethodStrings returns a map of PaymentMethod values to their string representations.
func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown:    "UNKNOWN",
		PaymentMethodCreditCard: "CREDIT_CARD",
		PaymentMethodDebitCard:  "DEBIT_CARD",
		PaymentMethodPix:        "PIX",
		PaymentMethodCash:       "CASH",
	}
}

// getValidPaymentMethodStrings returns a map of only valid PaymentMethod values.
func getValidPaymentMethodStrings() map[PaymentMethod]string {
	//nolint:exhaustive // PaymentMethodUnknown is intentionally excluded as it's invalid
	return map[PaymentMethod]string{
		PaymentMethodCreditCard: "CREDIT_CARD",
		PaymentMethodDebitCard:  "DEBIT_CARD",
		PaymentMethodPix:        "PIX",
		PaymentMethodCash:       "CASH",
	}
}

// ParsePaymentMethod converts an input token into a PaymentMethod, ignoring case.
// Returns a ValueIsInvalidError if the token names no known payment method.
func ParsePaymentMethod(token string) (PaymentMethod, error) {
	normalized := strings.ToUpper(strings.TrimSpace(token))
	for method, name := range getValidPaymentMethodStrings() {
		if name == normalized {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod",
		fmt.Errorf("%q is not a known payment method", token),
	)
}

// Validate checks if the PaymentMethod value is valid.
func (m PaymentMethod) Validate() error {
	if _, ok := getValidPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod",
			fmt.Errorf("%d is not a valid payment method", m),
		)
	}
	return nil
}

// String returns the persisted name of the payment method, e.g. "CREDIT_CARD".
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}
