package mortgage

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Tier - ступень ставки: годовая ставка и срок ее действия в месяцах
type Tier struct {
	AnnualRate decimal.Decimal
	Tenure     int
}

// TieredRate описывает кредит со ступенчатой ставкой (bunga berjenjang).
// На каждой ступени кредит переоформляется на оставшийся долг по ставке
// ступени и на весь оставшийся срок; из такого графика берутся только
// платежи самой ступени.
type TieredRate struct {
	tiers []Tier
	loans []FixedRate
	term  int
}

// NewTieredRate раскладывает кредит на ступени. Разложение выполняется один раз.
func NewTieredRate(principal decimal.Decimal, tiers []Tier) (TieredRate, error) {
	if len(tiers) == 0 {
		return TieredRate{}, fmt.Errorf("%w: пустой список ступеней", ErrMalformedTiers)
	}

	total := 0
	for i, t := range tiers {
		if t.Tenure < 1 {
			return TieredRate{}, fmt.Errorf("%w: ступень %d, срок %d", ErrMalformedTiers, i, t.Tenure)
		}
		total += t.Tenure
	}

	loans := make([]FixedRate, 0, len(tiers))
	remaining := principal
	remainingTerm := total

	for i, t := range tiers {
		loan, err := NewFixedRate(remaining, t.AnnualRate, remainingTerm)
		if err != nil {
			return TieredRate{}, fmt.Errorf("ступень %d: %w", i, err)
		}
		loans = append(loans, loan)

		remaining, err = loan.Balance(t.Tenure)
		if err != nil {
			return TieredRate{}, fmt.Errorf("ступень %d: %w", i, err)
		}
		remainingTerm -= t.Tenure
	}

	return TieredRate{
		tiers: append([]Tier(nil), tiers...),
		loans: loans,
		term:  total,
	}, nil
}

// NewTieredRateFromSlices собирает ступени из параллельных списков ставок и сроков
func NewTieredRateFromSlices(principal decimal.Decimal, rates []decimal.Decimal, tenures []int) (TieredRate, error) {
	if len(rates) != len(tenures) {
		return TieredRate{}, fmt.Errorf("%w: %d ставок и %d сроков", ErrMalformedTiers, len(rates), len(tenures))
	}

	tiers := make([]Tier, len(rates))
	for i := range rates {
		tiers[i] = Tier{AnnualRate: rates[i], Tenure: tenures[i]}
	}
	return NewTieredRate(principal, tiers)
}

// Tiers возвращает копию ступеней
func (l TieredRate) Tiers() []Tier { return append([]Tier(nil), l.tiers...) }

// Loans возвращает кредиты ступеней в порядке ступеней
func (l TieredRate) Loans() []FixedRate { return append([]FixedRate(nil), l.loans...) }

// Term возвращает общий срок кредита - сумму сроков всех ступеней
func (l TieredRate) Term() int { return l.term }

// Installments возвращает ежемесячный платеж каждой ступени в порядке ступеней
func (l TieredRate) Installments() []decimal.Decimal {
	out := make([]decimal.Decimal, len(l.loans))
	for i, loan := range l.loans {
		out[i] = loan.Installment()
	}
	return out
}

// InstallmentAt возвращает платеж за месяц period (нумерация с 1)
func (l TieredRate) InstallmentAt(period int) (decimal.Decimal, error) {
	if period < 1 || period > l.term {
		return decimal.Zero, fmt.Errorf("%w: месяц %d из %d", ErrOutOfRange, period, l.term)
	}

	cumulative := 0
	for i, t := range l.tiers {
		cumulative += t.Tenure
		if period <= cumulative {
			return l.loans[i].Installment(), nil
		}
	}
	return decimal.Zero, fmt.Errorf("%w: месяц %d из %d", ErrOutOfRange, period, l.term)
}

// Balance рассчитывает остаток долга после paymentsMade платежей.
// На границе ступеней используется ступень, которая заканчивается.
func (l TieredRate) Balance(paymentsMade int) (decimal.Decimal, error) {
	if paymentsMade < 0 {
		return decimal.Zero, fmt.Errorf("%w: %d из %d", ErrOutOfRange, paymentsMade, l.term)
	}

	cumulative := 0
	for i, t := range l.tiers {
		cumulative += t.Tenure
		if paymentsMade <= cumulative {
			return l.loans[i].Balance(paymentsMade - cumulative + t.Tenure)
		}
	}
	return decimal.Zero, fmt.Errorf("%w: %d из %d", ErrOutOfRange, paymentsMade, l.term)
}

// InterestToDate суммирует проценты по ступеням: полностью пройденные ступени
// дают проценты за весь свой срок, текущая - за свою часть платежей.
//
// Если paymentsMade больше общего срока, обход заканчивается без текущей
// ступени: возвращается накопленная сумма вместе с ErrOutOfRange.
func (l TieredRate) InterestToDate(paymentsMade int) (decimal.Decimal, error) {
	if paymentsMade < 0 {
		return decimal.Zero, fmt.Errorf("%w: %d из %d", ErrOutOfRange, paymentsMade, l.term)
	}

	requested := paymentsMade
	sum := decimal.Zero
	for i, t := range l.tiers {
		if paymentsMade <= t.Tenure {
			interest, err := l.loans[i].InterestToDate(paymentsMade)
			if err != nil {
				return decimal.Zero, err
			}
			return sum.Add(interest), nil
		}

		interest, err := l.loans[i].InterestToDate(t.Tenure)
		if err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(interest)
		paymentsMade -= t.Tenure
	}

	return sum, fmt.Errorf("%w: %d из %d", ErrOutOfRange, requested, l.term)
}
