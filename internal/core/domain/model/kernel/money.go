package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money must be created via the NewMoney constructor to ensure validity.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney constructor")

// Money is a value object representing a non-negative amount of money in the
// smallest unit of its currency (e.g. cents, rupiah). It is used for package
// snapshot prices and refund amounts.
//
// Money is immutable. Amounts are never re-entered by a user once captured in
// an order snapshot; refund amounts are always copied from the snapshot price.
//
// Example:
//
//	price, err := kernel.NewMoney(1_500_000, "IDR")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(price.String()) // "1500000 IDR"
type Money struct {
	amount   int64
	currency string

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from an amount in minor units and a currency code.
// The amount must be non-negative and the currency code must be non-empty.
func NewMoney(amount int64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}
	if currency == "" {
		return Money{}, errs.NewValueIsRequiredError("currency")
	}

	return Money{
		amount:   amount,
		currency: currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Money value was created through NewMoney.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the amount in minor currency units.
func (m Money) Amount() int64 {
	return m.amount
}

// Currency returns the currency code.
func (m Money) Currency() string {
	return m.currency
}

// IsEqual compares two Money values by amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}

// String returns a human-readable representation, e.g. "1500000 IDR".
func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amount, m.currency)
}
