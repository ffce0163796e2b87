package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round2 округляет сумму до 2 знаков после запятой (банковское округление)
func Round2(value decimal.Decimal) decimal.Decimal {
	return value.RoundBank(2)
}

// Money форматирует сумму строкой с 2 знаками после запятой
func Money(value decimal.Decimal) string {
	return Round2(value).StringFixedBank(2)
}

// MoneyList форматирует список сумм
func MoneyList(values []decimal.Decimal) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = Money(v)
	}
	return out
}

// Rate переводит ставку из JSON-числа в десятичное значение по кратчайшему
// представлению (0.06 -> "0.06")
func Rate(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value)
}

// IsFinite проверяет, является ли число конечным
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}
