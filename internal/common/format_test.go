package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{999.5, "$999.50"},
		{1000, "$1,000.00"},
		{24050.75, "$24,050.75"},
		{1200000000, "$1,200,000,000.00"},
		{-9525.3, "-$9,525.30"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMoney(tt.in))
	}
}

func TestFormatSignedMoney(t *testing.T) {
	assert.Equal(t, "+$1,000.00", FormatSignedMoney(1000))
	assert.Equal(t, "-$12.00", FormatSignedMoney(-12))
}

func TestFormatPct(t *testing.T) {
	assert.Equal(t, "12.50%", FormatPct(0.125))
	assert.Equal(t, "+2.30%", FormatSignedPct(2.3))
	assert.Equal(t, "-1.20%", FormatSignedPct(-1.2))
	assert.Equal(t, "+0.00%", FormatSignedPct(-0.001))
}
