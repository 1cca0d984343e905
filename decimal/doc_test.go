package decimal_test

import (
	"fmt"

	"github.com/zan-shop/money/decimal"
)

// This example demonstrates that construction from a float captures the
// exact value of the binary float, not its shortest printed form.
func ExampleNewFromFloat64() {
	d, err := decimal.NewFromFloat64(0.1)
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output:
	// 0.1000000000000000055511151231257827021181583404541015625
}

func ExampleParse() {
	d := decimal.MustParse("-1.230")
	e := decimal.MustParse("1e3")
	fmt.Println(d)
	fmt.Println(e)
	// Output:
	// -1.23
	// 1000
}

func ExampleDecimal_QuoRound() {
	d := decimal.MustParse("10")
	q, err := d.QuoRound(3, 2)
	if err != nil {
		panic(err)
	}
	fmt.Println(q)
	// Output:
	// 3.33
}

func ExampleDecimal_Round() {
	d := decimal.MustParse("104.45")
	e := decimal.MustParse("104.44")
	fmt.Println(d.Round(1))
	fmt.Println(e.Round(1))
	// Output:
	// 104.5
	// 104.4
}

func ExampleSum() {
	d := decimal.MustParse("100.123456789")
	e := decimal.MustParse("50.987654321")
	s, err := decimal.Sum(d, e)
	if err != nil {
		panic(err)
	}
	fmt.Println(s)
	// Output:
	// 151.11111111
}
