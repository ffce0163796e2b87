package validators

import (
	"fmt"

	"github.com/cloud-ru/mcp-kpr-go/internal/config"
	"github.com/cloud-ru/mcp-kpr-go/pkg/utils"
)

// ValidatePositiveNumber проверяет, что число конечное и в допустимом диапазоне
func ValidatePositiveNumber(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%s: значение не является конечным числом", name)
	}
	if value < minInclusive {
		return fmt.Errorf("%s: значение должно быть ≥ %g", name, minInclusive)
	}
	if value > maxInclusive {
		return fmt.Errorf("%s: значение слишком велико (>%g)", name, maxInclusive)
	}
	return nil
}

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%s: значение должно быть в диапазоне [%d; %d]", name, minInclusive, maxInclusive)
	}
	return nil
}

// CheckPrincipal проверяет сумму кредита
func CheckPrincipal(cfg *config.Config, principal int64) error {
	if principal < 1 || principal > cfg.MaxPrincipal {
		return fmt.Errorf("principal: значение должно быть в диапазоне [1; %d]", cfg.MaxPrincipal)
	}
	return nil
}

// CheckRate проверяет годовую ставку (доля: 0.06 = 6%)
func CheckRate(cfg *config.Config, rate float64) error {
	return ValidatePositiveNumber("annual_interest", rate, 0.0, cfg.MaxRate)
}

// CheckMonths проверяет срок в месяцах
func CheckMonths(cfg *config.Config, months int) error {
	return ValidateIntRange("months", months, 1, cfg.MaxMonths)
}

// CheckMonthsPaid проверяет число уплаченных платежей
func CheckMonthsPaid(monthsPaid, totalMonths int) error {
	return ValidateIntRange("months_paid", monthsPaid, 0, totalMonths)
}

// CheckTiers проверяет ставки и сроки ступенчатого кредита и возвращает общий срок
func CheckTiers(cfg *config.Config, rates []float64, months []int) (int, error) {
	if len(rates) == 0 {
		return 0, fmt.Errorf("annual_interests: нужна хотя бы одна ступень")
	}
	if len(rates) != len(months) {
		return 0, fmt.Errorf("annual_interests и months: разная длина (%d и %d)", len(rates), len(months))
	}
	if len(rates) > cfg.MaxTiers {
		return 0, fmt.Errorf("annual_interests: не больше %d ступеней", cfg.MaxTiers)
	}

	total := 0
	for i := range rates {
		if err := CheckRate(cfg, rates[i]); err != nil {
			return 0, fmt.Errorf("ступень %d: %w", i+1, err)
		}
		if err := CheckMonths(cfg, months[i]); err != nil {
			return 0, fmt.Errorf("ступень %d: %w", i+1, err)
		}
		total += months[i]
	}

	if total > cfg.MaxMonths {
		return 0, fmt.Errorf("months: общий срок %d больше %d", total, cfg.MaxMonths)
	}
	return total, nil
}
