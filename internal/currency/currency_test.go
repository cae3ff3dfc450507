package currency

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatValue(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want string
	}{
		{"grouped", 1234.5, "$1,234.50"},
		{"zero", 0, "$0.00"},
		{"missing", nil, "$0.00"},
		{"string", "1234.5", "$0.00"},
		{"bool", true, "$0.00"},
		{"nan", math.NaN(), "$0.00"},
		{"inf", math.Inf(1), "$0.00"},
		{"int", 12, "$12.00"},
		{"millions", 1234567.891, "$1,234,567.89"},
		{"round up", 0.005, "$0.01"},
		{"negative", -1234.5, "-$1,234.50"},
		{"small negative keeps sign", -0.001, "-$0.00"},
		{"negative half rounds away", -0.005, "-$0.01"},
		{"decimal", decimal.RequireFromString("99.999"), "$100.00"},
	}
	for _, tc := range cases {
		if got := USD().FormatValue(tc.in); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestUSDIsShared(t *testing.T) {
	if USD() != USD() {
		t.Fatalf("expected a single shared formatter")
	}
}
