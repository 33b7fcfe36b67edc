// Package money fixes the wire representation of monetary values: a bare JSON
// number literal with exactly two fractional digits, backed by exact decimal
// arithmetic. Binary floats never appear on the wire or in sums.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a 2-decimal-place currency value.
type Amount struct {
	decimal.Decimal
}

func New(d decimal.Decimal) Amount {
	return Amount{Round2(d)}
}

func FromString(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return New(d), nil
}

// Round2 rounds half-up to two fractional digits.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.StringFixed(2)), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return errors.New("money: empty amount")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	a.Decimal = Round2(d)
	return nil
}
