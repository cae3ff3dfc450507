// Package currency formats balance amounts the way the header displays them.
package currency

import (
	"math"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Formatter renders amounts with a currency symbol, thousands separators and
// a fixed number of fraction digits. A Formatter is immutable.
type Formatter struct {
	symbol string
	places int32
}

var usd = sync.OnceValue(func() *Formatter {
	return &Formatter{symbol: "$", places: 2}
})

// USD returns the shared en-US dollar formatter.
func USD() *Formatter {
	return usd()
}

// Format renders amount, rounding half away from zero. A negative amount
// keeps its sign even when it rounds to zero, so -0.001 is "-$0.00".
func (f *Formatter) Format(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	abs := amount.Abs().Round(f.places)
	whole := abs.Truncate(0)
	// "0.50" -> ".50"
	fraction := abs.Sub(whole).StringFixed(f.places)[1:]
	out := f.symbol + humanize.BigComma(whole.BigInt()) + fraction
	if negative {
		return "-" + out
	}
	return out
}

// FormatValue formats an untyped amount; anything that is not a finite
// number formats as zero.
func (f *Formatter) FormatValue(v interface{}) string {
	return f.Format(Amount(v))
}

// Amount converts an untyped value to a decimal, yielding zero for values
// that are not finite numbers.
func Amount(v interface{}) decimal.Decimal {
	switch n := v.(type) {
	case decimal.Decimal:
		return n
	case int:
		return decimal.NewFromInt(int64(n))
	case int32:
		return decimal.NewFromInt32(n)
	case int64:
		return decimal.NewFromInt(n)
	case uint:
		return decimal.NewFromInt(int64(n))
	case uint32:
		return decimal.NewFromInt(int64(n))
	case uint64:
		if n > math.MaxInt64 {
			return decimal.NewFromFloat(float64(n))
		}
		return decimal.NewFromInt(int64(n))
	case float32:
		return fromFloat(float64(n))
	case float64:
		return fromFloat(n)
	default:
		return decimal.Zero
	}
}

func fromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}
