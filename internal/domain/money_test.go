package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDiscount(t *testing.T) {
	cases := []struct {
		name        string
		priceCents  int64
		discountBps int64
		want        int64
	}{
		{"no discount", 5000, 0, 5000},
		{"30 percent off 80.00", 8000, 3000, 5600},
		{"30 percent off 10.00", 1000, 3000, 700},
		{"rounds half up", 9999, 3000, 6999}, // 69.993 -> 69.99
		{"one cent", 1, 3000, 1},             // 0.007 -> 0.01
		{"negative bps treated as none", 5000, -100, 5000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ApplyDiscount(tc.priceCents, tc.discountBps))
		})
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "100.00", FormatCents(10000))
	assert.Equal(t, "0.07", FormatCents(7))
	assert.Equal(t, "56.00", FormatCents(5600))
	assert.Equal(t, "-3.50", FormatCents(-350))
	assert.Equal(t, "0.00", FormatCents(0))
}
