package money

import (
	"fmt"

	"github.com/zan-shop/money/decimal"
)

// sameCurr checks that every operand carries the currency of the first and
// collects the decimal values for delegation.
func sameCurr(op string, ms []Money) ([]decimal.Decimal, error) {
	if len(ms) == 0 {
		return nil, fmt.Errorf("%s amounts: %w", op, ErrEmptySequence)
	}
	ds := make([]decimal.Decimal, len(ms))
	for i, m := range ms {
		if !m.SameCurr(ms[0]) {
			return nil, fmt.Errorf("%s [%v] and [%v]: %w", op, ms[0], m, ErrCurrencyMismatch)
		}
		ds[i] = m.Decimal()
	}
	return ds, nil
}

// Sum returns the exact sum of a non-empty sequence of amounts.
// The sum of a single amount equals that amount.
//
// Sum returns an error if:
//   - no operands are given;
//   - any operand's currency differs from the first operand's.
func Sum(ms ...Money) (Money, error) {
	ds, err := sameCurr("summing", ms)
	if err != nil {
		return Money{}, err
	}
	d, err := decimal.Sum(ds...)
	if err != nil {
		return Money{}, err
	}
	return newMoney(ms[0].Curr(), d), nil
}

// Min returns the smallest amount in a non-empty sequence.
// On exact ties the first minimal operand's value is returned.
//
// Min returns an error if:
//   - no operands are given;
//   - any operand's currency differs from the first operand's.
func Min(ms ...Money) (Money, error) {
	ds, err := sameCurr("comparing", ms)
	if err != nil {
		return Money{}, err
	}
	d, err := decimal.Min(ds...)
	if err != nil {
		return Money{}, err
	}
	return newMoney(ms[0].Curr(), d), nil
}

// Max returns the largest amount in a non-empty sequence.
// On exact ties the first maximal operand's value is returned.
//
// Max returns an error if:
//   - no operands are given;
//   - any operand's currency differs from the first operand's.
func Max(ms ...Money) (Money, error) {
	ds, err := sameCurr("comparing", ms)
	if err != nil {
		return Money{}, err
	}
	d, err := decimal.Max(ds...)
	if err != nil {
		return Money{}, err
	}
	return newMoney(ms[0].Curr(), d), nil
}
