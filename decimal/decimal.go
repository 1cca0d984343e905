package decimal

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync/atomic"

	spd "github.com/shopspring/decimal"
)

var (
	// ErrInvalidNumber is returned when a floating-point input is NaN or infinite.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrInvalidFormat is returned when a string input does not parse to a finite decimal.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrInvalidType is returned when a construction input is none of the accepted shapes.
	ErrInvalidType = errors.New("invalid type")
	// ErrDivisionByZero is returned when a divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrEmptySequence is returned when an aggregation receives zero operands.
	ErrEmptySequence = errors.New("empty sequence")
)

// defaultScale is the process-wide scale applied when a rounding or division
// method is called without an explicit scale. It is read at call time.
var defaultScale atomic.Int32

func init() {
	defaultScale.Store(20)
}

// DefaultScale returns the process-wide default scale, the number of digits
// after the decimal point retained when a rounding or division method is
// called without an explicit scale. The initial value is 20.
func DefaultScale() int {
	return int(defaultScale.Load())
}

// SetDefaultScale reconfigures the process-wide default scale.
// The new value is observed by every subsequent call that omits an explicit
// scale, including calls on values constructed before the change.
// SetDefaultScale panics if the scale is negative.
func SetDefaultScale(scale int) {
	if scale < 0 {
		panic(fmt.Sprintf("SetDefaultScale(%v) failed: scale must not be negative", scale))
	}
	defaultScale.Store(int32(scale))
}

// Decimal type represents an immutable arbitrary-precision signed decimal
// number. Its zero value corresponds to 0. A constructed Decimal is always
// finite; no operation produces a not-a-number state.
// Decimal is designed to be safe for concurrent use by multiple goroutines.
type Decimal struct {
	val spd.Decimal
}

// NewFromFloat64 converts a float to a decimal holding the exact value of
// the binary float, not its shortest round-trip form. For example, 0.1
// converts to the 55-digit decimal expansion of the nearest binary64 value.
//
// NewFromFloat64 returns an error if the float is NaN or infinite.
func NewFromFloat64(f float64) (Decimal, error) {
	v, err := exactFromFloat(f)
	if err != nil {
		return Decimal{}, fmt.Errorf("converting float %v: %w", f, err)
	}
	return Decimal{val: v}, nil
}

// exactFromFloat converts a finite float to its exact decimal expansion.
func exactFromFloat(f float64) (spd.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return spd.Decimal{}, ErrInvalidNumber
	}
	// math.MinInt32 requests the full precision of the float.
	return spd.NewFromFloatWithExponent(f, math.MinInt32), nil
}

// Parse converts a string to a decimal. The input must be a sign-optional,
// decimal-point-optional numeric literal; exponent notation is accepted:
//
//	1
//	-1.5
//	+.5
//	1e10
//	1.23E-4
//
// Parse returns an error if the string does not represent a finite decimal
// number. The empty string, embedded whitespace, stray characters, and
// literal tokens such as "NaN" or "Infinity" all fail.
func Parse(s string) (Decimal, error) {
	v, err := spd.NewFromString(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("parsing %q: %w", s, ErrInvalidFormat)
	}
	return Decimal{val: v}, nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// New converts one of the accepted input shapes to a decimal:
//
//   - [Decimal] values and shopspring [decimal.Decimal] values are copied as is;
//   - strings are parsed with [Parse];
//   - float64 and float32 values are converted with [NewFromFloat64];
//   - int, int32, and int64 values are converted exactly.
//
// New returns [ErrInvalidType] for any other input type, and propagates the
// construction error of the matching shape otherwise.
func New(value any) (Decimal, error) {
	switch v := value.(type) {
	case Decimal:
		return v, nil
	case spd.Decimal:
		return Decimal{val: v}, nil
	case string:
		return Parse(v)
	case float64:
		return NewFromFloat64(v)
	case float32:
		return NewFromFloat64(float64(v))
	case int:
		return Decimal{val: spd.NewFromInt(int64(v))}, nil
	case int32:
		return Decimal{val: spd.NewFromInt(int64(v))}, nil
	case int64:
		return Decimal{val: spd.NewFromInt(v)}, nil
	default:
		return Decimal{}, fmt.Errorf("converting %T: %w", value, ErrInvalidType)
	}
}

// Add returns the exact sum of decimals d and e.
func (d Decimal) Add(e Decimal) Decimal {
	return Decimal{val: d.val.Add(e.val)}
}

// Sub returns the exact difference between decimals d and e.
func (d Decimal) Sub(e Decimal) Decimal {
	return Decimal{val: d.val.Sub(e.val)}
}

// Mul returns the exact product of decimal d and factor e.
//
// Mul returns an error if the factor is NaN or infinite.
func (d Decimal) Mul(e float64) (Decimal, error) {
	c, err := d.mul(e)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v * %v]: %w", d, e, err)
	}
	return c, nil
}

func (d Decimal) mul(e float64) (Decimal, error) {
	f, err := exactFromFloat(e)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{val: d.val.Mul(f)}, nil
}

// MulRound returns the product of decimal d and factor e, rounded to the
// given scale. If the scale is omitted, the process-wide default scale is
// read at call time. See also method [Decimal.Round].
//
// MulRound returns an error if the factor is NaN or infinite.
func (d Decimal) MulRound(e float64, scale ...int) (Decimal, error) {
	c, err := d.mul(e)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v * %v]: %w", d, e, err)
	}
	return c.Round(scale...), nil
}

// Quo returns the quotient of decimal d and divisor e, rounded to the
// process-wide default scale read at call time.
//
// Quo returns an error if:
//   - the divisor is NaN or infinite;
//   - the divisor is (positive or negative) zero.
func (d Decimal) Quo(e float64) (Decimal, error) {
	c, err := d.quo(e, nil)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v / %v]: %w", d, e, err)
	}
	return c, nil
}

// QuoRound returns the quotient of decimal d and divisor e, rounded to the
// given scale. If the scale is omitted, the process-wide default scale is
// read at call time. See also method [Decimal.Round].
//
// QuoRound returns an error under the same conditions as [Decimal.Quo].
func (d Decimal) QuoRound(e float64, scale ...int) (Decimal, error) {
	c, err := d.quo(e, scale)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v / %v]: %w", d, e, err)
	}
	return c, nil
}

func (d Decimal) quo(e float64, scale []int) (Decimal, error) {
	f, err := exactFromFloat(e)
	if err != nil {
		return Decimal{}, err
	}
	if f.IsZero() {
		return Decimal{}, ErrDivisionByZero
	}
	return Decimal{val: d.val.DivRound(f, resolveScale(scale))}, nil
}

// Round returns a decimal rounded to the given number of digits after the
// decimal point. If the scale is omitted, the process-wide default scale is
// read at call time. The rounding mode is fixed: ties round the last
// retained digit away from zero, so 104.45 rounds to 104.5 and -104.45
// rounds to -104.5 at scale 1.
func (d Decimal) Round(scale ...int) Decimal {
	return Decimal{val: d.val.Round(resolveScale(scale))}
}

func resolveScale(scale []int) int32 {
	if len(scale) > 0 {
		return int32(scale[0])
	}
	return defaultScale.Load()
}

// Cmp compares decimals by exact mathematical value, independent of the
// number of digits each operand was constructed with, and returns:
//
//	-1 if d < e
//	 0 if d = e
//	+1 if d > e
func (d Decimal) Cmp(e Decimal) int {
	return d.val.Cmp(e.val)
}

// Equal returns true if decimals represent the same mathematical value,
// so 1.50 equals 1.5.
func (d Decimal) Equal(e Decimal) bool {
	return d.val.Equal(e.val)
}

// LessThan returns true if d < e.
func (d Decimal) LessThan(e Decimal) bool {
	return d.val.LessThan(e.val)
}

// LessThanOrEqual returns true if d <= e.
func (d Decimal) LessThanOrEqual(e Decimal) bool {
	return d.val.LessThanOrEqual(e.val)
}

// GreaterThan returns true if d > e.
func (d Decimal) GreaterThan(e Decimal) bool {
	return d.val.GreaterThan(e.val)
}

// GreaterThanOrEqual returns true if d >= e.
func (d Decimal) GreaterThanOrEqual(e Decimal) bool {
	return d.val.GreaterThanOrEqual(e.val)
}

// Sum returns the exact sum of a non-empty sequence of decimals.
//
// Sum returns an error if no operands are given.
func Sum(ds ...Decimal) (Decimal, error) {
	if len(ds) == 0 {
		return Decimal{}, fmt.Errorf("summing decimals: %w", ErrEmptySequence)
	}
	s := ds[0]
	for _, d := range ds[1:] {
		s = s.Add(d)
	}
	return s, nil
}

// Min returns the smallest decimal in a non-empty sequence.
// On exact ties the first minimal operand is returned.
//
// Min returns an error if no operands are given.
func Min(ds ...Decimal) (Decimal, error) {
	if len(ds) == 0 {
		return Decimal{}, fmt.Errorf("comparing decimals: %w", ErrEmptySequence)
	}
	m := ds[0]
	for _, d := range ds[1:] {
		if d.LessThan(m) {
			m = d
		}
	}
	return m, nil
}

// Max returns the largest decimal in a non-empty sequence.
// On exact ties the first maximal operand is returned.
//
// Max returns an error if no operands are given.
func Max(ds ...Decimal) (Decimal, error) {
	if len(ds) == 0 {
		return Decimal{}, fmt.Errorf("comparing decimals: %w", ErrEmptySequence)
	}
	m := ds[0]
	for _, d := range ds[1:] {
		if d.GreaterThan(m) {
			m = d
		}
	}
	return m, nil
}

// Scale returns the number of digits after the decimal point in the
// representation of the value. Note that two decimals may be value-equal
// while having different scales; comparisons ignore scale.
func (d Decimal) Scale() int {
	if e := d.val.Exponent(); e < 0 {
		return int(-e)
	}
	return 0
}

// Shift returns the decimal multiplied by 10^s. The shift is exact in both
// directions, so d.Shift(2).Shift(-2) always equals d.
func (d Decimal) Shift(s int) Decimal {
	return Decimal{val: d.val.Shift(int32(s))}
}

// ULP (Unit in the Last Place) returns the smallest representable positive
// difference between two decimals with the same scale as d. It can be useful
// for implementing rounding and allocation algorithms.
func (d Decimal) ULP() Decimal {
	return Decimal{val: spd.New(1, int32(-d.Scale()))}
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d = 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	return d.val.Sign()
}

// IsZero returns:
//
//	true  if d = 0
//	false otherwise
func (d Decimal) IsZero() bool {
	return d.val.IsZero()
}

// IsNeg returns:
//
//	true  if d < 0
//	false otherwise
func (d Decimal) IsNeg() bool {
	return d.val.IsNegative()
}

// IsPos returns:
//
//	true  if d > 0
//	false otherwise
func (d Decimal) IsPos() bool {
	return d.val.IsPositive()
}

// Neg returns a decimal with the opposite sign.
func (d Decimal) Neg() Decimal {
	return Decimal{val: d.val.Neg()}
}

// Abs returns the absolute value of the decimal.
func (d Decimal) Abs() Decimal {
	return Decimal{val: d.val.Abs()}
}

// Float64 returns the nearest binary floating-point number.
//
// This conversion may lose data, as float64 has a smaller precision than
// the decimal type. It is a documented lossy escape hatch, not an exact
// conversion; use [Decimal.String] to preserve the value.
func (d Decimal) Float64() float64 {
	return d.val.InexactFloat64()
}

// Int64 returns the value as an int64 and reports whether the decimal is an
// integer exactly representable as an int64.
func (d Decimal) Int64() (int64, bool) {
	if !d.val.IsInteger() {
		return 0, false
	}
	b := d.val.BigInt()
	if !b.IsInt64() {
		return 0, false
	}
	return b.Int64(), true
}

// String implements the [fmt.Stringer] interface and returns the canonical
// decimal representation of the value, without an exponent and without
// redundant trailing zeros, so 100.5000 prints as "100.5".
// The result round-trips exactly through [Parse].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	return d.val.String()
}

// StringFixed returns the value rounded to the given scale and rendered
// with exactly that many digits after the decimal point, so 5.678 renders
// as "5.68" at scale 2 and "5.6780" at scale 4. Unlike [Decimal.String],
// the result is a display form and is not guaranteed to be canonical.
func (d Decimal) StringFixed(scale int) string {
	return d.val.StringFixed(int32(scale))
}

const lowerDigits = "0123456789abcdefghijklmnopqrstuvwxyz"

// Text returns the value as a string in the given base, for 2 <= base <= 36.
// Base 10 produces the canonical form returned by [Decimal.String]. In other
// bases the fractional expansion frequently does not terminate; it is cut
// off after the process-wide default scale digits.
// Text panics if the base is out of range.
func (d Decimal) Text(base int) string {
	if base == 10 {
		return d.String()
	}
	if base < 2 || base > 36 {
		panic(fmt.Sprintf("illegal number base %d", base))
	}

	var sb strings.Builder
	v := d.val
	if v.IsNegative() {
		sb.WriteByte('-')
		v = v.Neg()
	}

	// Integer digits
	whole := v.Truncate(0)
	sb.WriteString(whole.BigInt().Text(base))

	// Fractional digits
	frac := v.Sub(whole)
	if frac.IsZero() {
		return sb.String()
	}
	sb.WriteByte('.')
	b := spd.NewFromInt(int64(base))
	for i := 0; i < DefaultScale() && !frac.IsZero(); i++ {
		frac = frac.Mul(b)
		digit := frac.Truncate(0)
		sb.WriteByte(lowerDigits[digit.IntPart()])
		frac = frac.Sub(digit)
	}
	return sb.String()
}
