package money

import (
	"errors"
	"fmt"
	"math"

	"github.com/zan-shop/money/decimal"
)

var (
	// ErrCurrencyMismatch is returned when a multi-operand operation receives
	// amounts denominated in different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrInvalidCents is returned when a minor-unit value is not an integral,
	// finite number.
	ErrInvalidCents = errors.New("invalid cents")
	// ErrEmptySequence is returned when a variadic aggregation receives zero
	// operands.
	ErrEmptySequence = decimal.ErrEmptySequence
)

// Money type represents an immutable monetary amount: an arbitrary-precision
// decimal value tagged with a currency. Every operation that combines two or
// more amounts requires all of them to carry the identical currency and
// returns a fresh instance; no operation mutates its operands.
// Money is designed to be safe for concurrent use by multiple goroutines.
//
// The zero value has an unknown currency and is not a valid amount;
// construct values with [New], [Parse], or one of the other constructors.
type Money struct {
	curr  Currency        // ISO 4217 currency
	value decimal.Decimal // monetary value
}

// newMoney creates an amount without re-validating the currency.
// Use it only with a currency obtained from ParseCurr.
func newMoney(c Currency, d decimal.Decimal) Money {
	return Money{curr: c, value: d}
}

// New returns an amount with the given currency and value, where value is
// any input shape accepted by the decimal constructor: a Decimal, a string,
// a native float, or a native integer. See [decimal.New] for the accepted
// shapes and their validation.
//
// New returns an error if:
//   - the currency code is not a member of the recognized set;
//   - the decimal constructor rejects the value; the decimal error is
//     propagated as is.
func New(curr string, value any) (Money, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Money{}, err
	}
	d, err := decimal.New(value)
	if err != nil {
		return Money{}, err
	}
	return newMoney(c, d), nil
}

// NewFromDecimal returns an amount with the specified currency and value.
// See also method [Money.Decimal].
//
// NewFromDecimal returns an error if the currency is not a member of the
// recognized set.
func NewFromDecimal(curr Currency, value decimal.Decimal) (Money, error) {
	c, err := ParseCurr(curr.Code())
	if err != nil {
		return Money{}, err
	}
	return newMoney(c, value), nil
}

// NewFromFloat64 converts a float to an amount holding the exact decimal
// expansion of the binary float. See also constructor [decimal.NewFromFloat64]
// and method [Money.Float64].
//
// NewFromFloat64 returns an error if:
//   - the currency code is not a member of the recognized set;
//   - the float is a special value (NaN or Inf).
func NewFromFloat64(curr string, amount float64) (Money, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Money{}, err
	}
	d, err := decimal.NewFromFloat64(amount)
	if err != nil {
		return Money{}, err
	}
	return newMoney(c, d), nil
}

// NewFromCents converts an integral number of minor currency units
// (e.g. cents, pennies, fens) to an amount, dividing by 100 exactly.
// NewFromCents and [Money.Cents] are exact inverses for any value
// NewFromCents accepts. See also method [Money.Cents].
//
// NewFromCents returns an error if:
//   - the currency code is not a member of the recognized set;
//   - cents is not an integral, finite value.
func NewFromCents(curr string, cents float64) (Money, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Money{}, err
	}
	if math.IsNaN(cents) || math.IsInf(cents, 0) || math.Trunc(cents) != cents {
		return Money{}, fmt.Errorf("converting cents %v: %w", cents, ErrInvalidCents)
	}
	d, err := decimal.NewFromFloat64(cents)
	if err != nil {
		return Money{}, err
	}
	return newMoney(c, d.Shift(-2)), nil
}

// Parse converts currency and decimal strings to an amount.
// The amount string may use exponent notation.
// See also constructors [ParseCurr] and [decimal.Parse].
func Parse(curr, amount string) (Money, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Money{}, err
	}
	d, err := decimal.Parse(amount)
	if err != nil {
		return Money{}, err
	}
	return newMoney(c, d), nil
}

// MustParse is like [Parse] but panics if any of the strings cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParse(curr, amount string) Money {
	a, err := Parse(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q, %q) failed: %v", curr, amount, err))
	}
	return a
}

// Curr returns the currency of the amount.
func (a Money) Curr() Currency {
	return a.curr
}

// Decimal returns the decimal value of the amount.
func (a Money) Decimal() decimal.Decimal {
	return a.value
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Money) Sign() int {
	return a.value.Sign()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Money) IsZero() bool {
	return a.value.IsZero()
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Money) IsNeg() bool {
	return a.value.IsNeg()
}

// IsPos returns:
//
//	true  if a > 0
//	false otherwise
func (a Money) IsPos() bool {
	return a.value.IsPos()
}

// Abs returns the absolute value of the amount.
func (a Money) Abs() Money {
	return newMoney(a.curr, a.value.Abs())
}

// Neg returns an amount with the opposite sign.
func (a Money) Neg() Money {
	return newMoney(a.curr, a.value.Neg())
}

// SameCurr returns true if amounts are denominated in the same currency.
// See also method [Money.Curr].
func (a Money) SameCurr(b Money) bool {
	return a.curr == b.curr
}

// Add returns the exact sum of amounts a and b.
//
// Add returns an error if amounts are denominated in different currencies.
func (a Money) Add(b Money) (Money, error) {
	c, err := a.add(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Money) add(b Money) (Money, error) {
	if !a.SameCurr(b) {
		return Money{}, ErrCurrencyMismatch
	}
	return newMoney(a.curr, a.value.Add(b.value)), nil
}

// Sub returns the exact difference between amounts a and b.
//
// Sub returns an error if amounts are denominated in different currencies.
func (a Money) Sub(b Money) (Money, error) {
	c, err := a.sub(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Money) sub(b Money) (Money, error) {
	if !a.SameCurr(b) {
		return Money{}, ErrCurrencyMismatch
	}
	return newMoney(a.curr, a.value.Sub(b.value)), nil
}

// Mul returns the exact product of amount a and factor e.
// The currency of the result is the currency of a.
//
// Mul returns an error if the factor is NaN or infinite.
func (a Money) Mul(e float64) (Money, error) {
	d, err := a.value.Mul(e)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", a, e, err)
	}
	return newMoney(a.curr, d), nil
}

// MulRound returns the product of amount a and factor e, rounded to the
// given scale. If the scale is omitted, the process-wide default scale is
// read at call time. See also method [Money.Round].
//
// MulRound returns an error if the factor is NaN or infinite.
func (a Money) MulRound(e float64, scale ...int) (Money, error) {
	d, err := a.value.MulRound(e, scale...)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", a, e, err)
	}
	return newMoney(a.curr, d), nil
}

// Quo returns the quotient of amount a and divisor e, rounded to the
// process-wide default scale read at call time.
//
// Quo returns an error if:
//   - the divisor is NaN or infinite;
//   - the divisor is (positive or negative) zero.
func (a Money) Quo(e float64) (Money, error) {
	d, err := a.value.Quo(e)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", a, e, err)
	}
	return newMoney(a.curr, d), nil
}

// QuoRound returns the quotient of amount a and divisor e, rounded to the
// given scale. If the scale is omitted, the process-wide default scale is
// read at call time. See also method [Money.Round].
//
// QuoRound returns an error under the same conditions as [Money.Quo].
func (a Money) QuoRound(e float64, scale ...int) (Money, error) {
	d, err := a.value.QuoRound(e, scale...)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", a, e, err)
	}
	return newMoney(a.curr, d), nil
}

// Round returns an amount rounded to the given number of digits after the
// decimal point. If the scale is omitted, the process-wide default scale is
// read at call time. Ties round the last retained digit away from zero, so
// USD 104.45 rounds to USD 104.5 at scale 1. The currency is preserved
// unchanged. See also method [Money.RoundToCurr].
func (a Money) Round(scale ...int) Money {
	return newMoney(a.curr, a.value.Round(scale...))
}

// RoundToCurr returns an amount rounded to the scale of its currency, that
// is, to its minor unit. See also methods [Money.Round], [Currency.Scale].
func (a Money) RoundToCurr() Money {
	return a.Round(a.curr.Scale())
}

// Equal returns true if amounts represent the same mathematical value in the
// same currency, so USD 1.50 equals USD 1.5. Unlike the ordering methods,
// Equal is total: amounts in different currencies are simply unequal,
// never an error.
func (a Money) Equal(b Money) bool {
	return a.SameCurr(b) && a.value.Equal(b.value)
}

// Cmp compares amounts by exact mathematical value and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Cmp returns an error if amounts are denominated in different currencies.
func (a Money) Cmp(b Money) (int, error) {
	if !a.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, ErrCurrencyMismatch)
	}
	return a.value.Cmp(b.value), nil
}

// LessThan returns true if a < b.
//
// LessThan returns an error if amounts are denominated in different currencies.
func (a Money) LessThan(b Money) (bool, error) {
	c, err := a.Cmp(b)
	return c < 0, err
}

// LessThanOrEqual returns true if a <= b.
//
// LessThanOrEqual returns an error if amounts are denominated in different
// currencies.
func (a Money) LessThanOrEqual(b Money) (bool, error) {
	c, err := a.Cmp(b)
	return c <= 0, err
}

// GreaterThan returns true if a > b.
//
// GreaterThan returns an error if amounts are denominated in different
// currencies.
func (a Money) GreaterThan(b Money) (bool, error) {
	c, err := a.Cmp(b)
	return c > 0, err
}

// GreaterThanOrEqual returns true if a >= b.
//
// GreaterThanOrEqual returns an error if amounts are denominated in different
// currencies.
func (a Money) GreaterThanOrEqual(b Money) (bool, error) {
	c, err := a.Cmp(b)
	return c >= 0, err
}

// Min returns the smaller of amounts a and b, as one of the two input
// instances, not a newly constructed value. On exact equality the
// receiver is returned.
//
// Min returns an error if amounts are denominated in different currencies.
func (a Money) Min(b Money) (Money, error) {
	switch c, err := a.Cmp(b); {
	case err != nil:
		return Money{}, err
	case c <= 0: // a <= b
		return a, nil
	default:
		return b, nil
	}
}

// Max returns the larger of amounts a and b, as one of the two input
// instances, not a newly constructed value. On exact equality the
// receiver is returned.
//
// Max returns an error if amounts are denominated in different currencies.
func (a Money) Max(b Money) (Money, error) {
	switch c, err := a.Cmp(b); {
	case err != nil:
		return Money{}, err
	case c >= 0: // a >= b
		return a, nil
	default:
		return b, nil
	}
}

// Cents returns the amount in minor currency units: the decimal value
// multiplied by 100 and rounded to the nearest integer, ties away from zero.
// The computation is performed entirely in exact decimal arithmetic; no
// binary float intermediate is involved. See also constructor [NewFromCents].
//
// If the result cannot be represented as an int64, then false is returned.
func (a Money) Cents() (cents int64, ok bool) {
	return a.value.Shift(2).Round(0).Int64()
}

// Float64 returns the nearest binary floating-point number.
//
// This conversion may lose data, as float64 has a smaller precision than
// the decimal value. See also constructor [NewFromFloat64].
func (a Money) Float64() float64 {
	return a.value.Float64()
}

// Split returns a slice of amounts that sum up exactly to the original
// amount, ensuring the parts are as equal as possible.
// If the original amount cannot be divided equally among the specified
// number of parts, the remainder is distributed among the first parts of
// the slice in units of the amount's last place.
//
// Split returns an error if the number of parts is not a positive integer.
func (a Money) Split(parts int) ([]Money, error) {
	r, err := a.split(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", a, parts, err)
	}
	return r, nil
}

func (a Money) split(parts int) ([]Money, error) {
	if parts < 1 {
		return nil, fmt.Errorf("number of parts must be positive")
	}

	// Quotient
	quo, err := a.value.QuoRound(float64(parts), a.value.Scale())
	if err != nil {
		return nil, err
	}

	// Remainder
	prod, err := quo.Mul(float64(parts))
	if err != nil {
		return nil, err
	}
	rem := a.value.Sub(prod)
	ulp := a.value.ULP()
	if rem.IsNeg() {
		ulp = ulp.Neg()
	}

	res := make([]Money, parts)
	for i := range res {
		res[i] = newMoney(a.curr, quo)
		// Remainder distribution
		if !rem.IsZero() {
			rem = rem.Sub(ulp)
			res[i] = newMoney(a.curr, quo.Add(ulp))
		}
	}
	return res, nil
}

// displayCode returns the currency code used for display.
// The zero value prints as XXX, the ISO 4217 placeholder for an unknown
// currency.
func (a Money) displayCode() string {
	if a.curr == "" {
		return "XXX"
	}
	return a.curr.Code()
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of an amount, such as "USD 5.67".
// The decimal part uses the same canonical algorithm as [decimal.Decimal.String]
// and therefore round-trips exactly through [Parse].
// See also methods [Currency.String], [Money.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Money) String() string {
	return a.displayCode() + " " + a.value.String()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example     | Description                |
//	| ------ | ----------- | -------------------------- |
//	| %s, %v | USD 5.678   | Currency and amount        |
//	| %q     | "USD 5.678" | Quoted currency and amount |
//	| %f     | 5.678       | Amount                     |
//	| %d     | 568         | Amount in minor units      |
//	| %c     | USD         | Currency                   |
//
// The '-' format flag can be used with all verbs.
// Precision is only supported for the %f verb and defaults to the actual
// scale of the amount.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Money) Format(state fmt.State, verb rune) {
	var s string
	switch verb {
	case 's', 'S', 'v', 'V':
		s = a.String()
	case 'q', 'Q':
		s = `"` + a.String() + `"`
	case 'f', 'F':
		if p, ok := state.Precision(); ok {
			s = a.value.StringFixed(p)
		} else {
			s = a.value.StringFixed(a.value.Scale())
		}
	case 'd', 'D':
		// Minor units as an exact decimal integer, not bounded by int64.
		s = a.value.Shift(2).Round(0).String()
	case 'c', 'C':
		s = a.displayCode()
	default:
		fmt.Fprintf(state, "%%!%c(money.Money=%s)", verb, a.String())
		return
	}
	//nolint:errcheck
	state.Write([]byte(pad(state, s)))
}
