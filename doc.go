/*
Package money implements immutable monetary amounts in various currencies.
It combines the arbitrary-precision [decimal] package with a [Currency] type
backed by the ISO 4217 registry and enforces that no operation silently
mixes two currencies.

# Representation

The package consists of two main types: Money and Currency.
A Money represents a monetary amount and consists of a Currency and an
arbitrary-precision decimal.Decimal value. The Currency type holds a
3-letter ISO 4217 code; membership in the recognized set is checked against
the go-money registry at construction time, so a constructed Money always
carries a valid currency.

# Operations

Arithmetic (Add, Sub, Mul, Quo), rounding (Round, MulRound, QuoRound,
RoundToCurr), comparison (Equal, Cmp, LessThan, Min, Max), and variadic
aggregation (Sum, Min, Max) are provided. Every operation that combines
two or more amounts returns ErrCurrencyMismatch when the operands'
currencies differ; Equal is the one total operation and simply reports
false. All values are immutable: every operation returns a fresh instance
and never mutates its operands, which makes amounts safe for concurrent
readers.

# Rounding

The rounding mode is fixed: ties round the last retained digit away from
zero. Methods that take an optional scale fall back to the process-wide
default scale of the decimal package, read at call time.

# Conversions

Amounts convert to and from integer minor units (Cents, NewFromCents)
using exact decimal arithmetic, and to and from the transfer Record, a
plain {amount-string, currency-code} pair whose string form guarantees
round-trip fidelity for any value this package produced.

# Errors

Construction and operations surface typed conditions to the immediate
caller: ErrInvalidCurrency, ErrCurrencyMismatch, ErrInvalidCents,
ErrEmptySequence, and the construction errors of the decimal package.
Nothing is retried, recovered, or downgraded to a default value.
*/
package money
