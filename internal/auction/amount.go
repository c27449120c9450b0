package auction

import "github.com/shopspring/decimal"

// AmountPlaces is the number of decimal places prices are stored with.
const AmountPlaces = 2

// MaxAmount is the largest price the store can hold.
var MaxAmount = decimal.RequireFromString("999999999999.99")

// ValidAmount checks that d is positive, has at most two decimal places and
// fits the price columns. Amounts that would be rounded or overflow on write
// must not reach the resolver.
func ValidAmount(d decimal.Decimal) error {
	if !d.IsPositive() || d.GreaterThan(MaxAmount) {
		return ErrInvalidAmount
	}
	if !d.Equal(d.Truncate(AmountPlaces)) {
		return ErrInvalidAmount
	}
	return nil
}
