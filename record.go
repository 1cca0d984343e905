package money

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/zan-shop/money/decimal"
)

// amountPattern is the structural contract for the record amount field:
// a plain decimal literal with an optional leading minus, one or more
// integer digits, and an optional fractional part. Exponent notation,
// while accepted by the general decimal parser, is rejected at this layer
// for strict interop.
var amountPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// Record is the transfer representation of a monetary amount: a plain
// (amount-string, currency-code) pair used to move an amount across a
// process or serialization boundary. The amount is carried as a string
// because a round trip through a binary float would lose precision for
// some values.
type Record struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// Record returns the transfer record of the amount. The amount field uses
// the same canonical string algorithm as [Money.String], so any record
// produced here round-trips exactly through [ParseRecord].
func (a Money) Record() Record {
	return Record{Amount: a.value.String(), Currency: a.curr.Code()}
}

// ParseRecord converts a transfer record to an amount.
//
// ParseRecord returns an error if:
//   - the amount field does not match the pattern ^-?\d+(\.\d+)?$;
//   - the currency code is not a member of the recognized set.
func ParseRecord(r Record) (Money, error) {
	if !amountPattern.MatchString(r.Amount) {
		return Money{}, fmt.Errorf("parsing record amount %q: %w", r.Amount, decimal.ErrInvalidFormat)
	}
	return Parse(r.Currency, r.Amount)
}

// MarshalJSON implements the [json.Marshaler] interface.
// An amount marshals as its transfer record:
//
//	{"amount":"5.67","currency":"USD"}
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (a Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Record())
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseRecord].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (a *Money) UnmarshalJSON(data []byte) error {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Money{}, err)
	}
	m, err := ParseRecord(r)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Money{}, err)
	}
	*a = m
	return nil
}
