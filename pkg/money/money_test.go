package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/online-shop-nota/pkg/money"
)

func TestRupiah(t *testing.T) {
	cases := map[string]string{
		"0":          "Rp 0",
		"5":          "Rp 5",
		"999":        "Rp 999",
		"1000":       "Rp 1.000",
		"59400":      "Rp 59.400",
		"600000":     "Rp 600.000",
		"1000000":    "Rp 1.000.000",
		"1234.5":     "Rp 1.234,50",
		"0.069930":   "Rp 0,07",
		"59400.0000": "Rp 59.400",
		"-1500":      "Rp -1.500",
		"-0.001":     "Rp 0",
	}
	for in, want := range cases {
		assert.Equal(t, want, money.Rupiah(decimal.RequireFromString(in)), "entrada %s", in)
	}
}
