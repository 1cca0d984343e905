/*
Package decimal implements immutable arbitrary-precision signed decimal
numbers for monetary computation.
It wraps the big.Int-backed [shopspring decimal] type with validated
construction, fixed rounding semantics, and variadic aggregation.

# Representation

A Decimal holds an arbitrary-precision significand and an explicit scale;
the number of integer and fractional digits is bounded only by available
memory. A constructed Decimal is always finite and never a not-a-number
state: construction rejects any input that would produce either.

# Construction

Decimals are constructed from one of three source representations:

  - a native float64, converted to the exact decimal expansion of the
    binary value (NewFromFloat64);
  - a decimal string, optionally signed and optionally in exponent
    notation (Parse);
  - another decimal value, copied as is.

The New constructor accepts any of the above and reports ErrInvalidType
for every other input shape.

# Rounding

The rounding mode is fixed: ties round the last retained digit away from
zero. The scale argument of Round, MulRound, QuoRound, and the implicit
scale of Quo default to a process-wide setting of 20 fractional digits,
read at call time and reconfigurable with SetDefaultScale.

# Errors

Every failure is a typed condition surfaced to the immediate caller:
ErrInvalidNumber, ErrInvalidFormat, ErrInvalidType, ErrDivisionByZero,
and ErrEmptySequence. No condition is silently downgraded to a default
value; dividing by zero never yields zero or infinity.

[shopspring decimal]: https://pkg.go.dev/github.com/shopspring/decimal
*/
package decimal
