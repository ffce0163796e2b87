package utils

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "round to 2 decimals",
			input: "123.456789",
			want:  "123.46",
		},
		{
			name:  "already 2 decimals",
			input: "123.45",
			want:  "123.45",
		},
		{
			name:  "half to even",
			input: "0.125",
			want:  "0.12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Round2(decimal.RequireFromString(tt.input))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "Round2() = %s, want %s", got, tt.want)
		})
	}
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "19332.80", Money(decimal.RequireFromString("19332.8015294279")))
	assert.Equal(t, "100.00", Money(decimal.NewFromInt(100)))
	assert.Equal(t, []string{"1.00", "2.50"}, MoneyList([]decimal.Decimal{decimal.NewFromInt(1), decimal.RequireFromString("2.5")}))
}

func TestRate(t *testing.T) {
	assert.Equal(t, "0.06", Rate(0.06).String())
	assert.Equal(t, "0.0725", Rate(0.0725).String())
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  bool
	}{
		{
			name:  "finite number",
			input: 123.45,
			want:  true,
		},
		{
			name:  "infinity",
			input: math.Inf(1),
			want:  false,
		},
		{
			name:  "negative infinity",
			input: math.Inf(-1),
			want:  false,
		},
		{
			name:  "NaN",
			input: math.NaN(),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsFinite(tt.input)
			if got != tt.want {
				t.Errorf("IsFinite() = %v, want %v", got, tt.want)
			}
		})
	}
}
