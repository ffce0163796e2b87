package mortgage

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Precision - число знаков после запятой для делений и степеней
const Precision int32 = 32

// growthPrecision - точность промежуточных произведений в таблице степеней
const growthPrecision = Precision + 8

var (
	one          = decimal.NewFromInt(1)
	monthsInYear = decimal.NewFromInt(12)
)

// FixedRate описывает кредит с фиксированной ставкой (аннуитет).
// Значение неизменяемо после создания.
type FixedRate struct {
	principal    decimal.Decimal
	periodicRate decimal.Decimal
	term         int

	// growth[k] = (1 + r)^k для k = 0..term, пусто при нулевой ставке
	growth      []decimal.Decimal
	installment decimal.Decimal
}

// NewFixedRate создает кредит с фиксированной годовой ставкой annualRate
// (доля, 0.06 = 6%) на term месяцев
func NewFixedRate(principal, annualRate decimal.Decimal, term int) (FixedRate, error) {
	if term < 1 {
		return FixedRate{}, fmt.Errorf("%w: %d", ErrInvalidTerm, term)
	}
	if annualRate.IsNegative() {
		return FixedRate{}, fmt.Errorf("%w: %s", ErrInvalidRate, annualRate)
	}

	l := FixedRate{
		principal:    principal,
		periodicRate: annualRate.DivRound(monthsInYear, Precision),
		term:         term,
	}

	n := decimal.NewFromInt(int64(term))
	if l.periodicRate.IsZero() {
		l.installment = principal.DivRound(n, Precision)
		return l, nil
	}

	l.growth = growthTable(one.Add(l.periodicRate), term)
	gn := l.growth[term]
	l.installment = principal.Mul(l.periodicRate).Mul(gn).DivRound(gn.Sub(one), Precision)
	return l, nil
}

// Principal возвращает сумму кредита
func (l FixedRate) Principal() decimal.Decimal { return l.principal }

// PeriodicRate возвращает месячную ставку
func (l FixedRate) PeriodicRate() decimal.Decimal { return l.periodicRate }

// Term возвращает срок в месяцах
func (l FixedRate) Term() int { return l.term }

// Installment возвращает ежемесячный аннуитетный платеж.
// При нулевой ставке платеж равен principal / term.
func (l FixedRate) Installment() decimal.Decimal { return l.installment }

// InstallmentAt возвращает платеж за месяц period (нумерация с 1)
func (l FixedRate) InstallmentAt(period int) (decimal.Decimal, error) {
	if period < 1 || period > l.term {
		return decimal.Zero, fmt.Errorf("%w: месяц %d из %d", ErrOutOfRange, period, l.term)
	}
	return l.Installment(), nil
}

// Balance рассчитывает остаток основного долга после paymentsMade платежей
func (l FixedRate) Balance(paymentsMade int) (decimal.Decimal, error) {
	if err := l.checkPayments(paymentsMade); err != nil {
		return decimal.Zero, err
	}

	if l.periodicRate.IsZero() {
		remaining := decimal.NewFromInt(int64(l.term - paymentsMade))
		return l.principal.Mul(remaining).DivRound(decimal.NewFromInt(int64(l.term)), Precision), nil
	}

	gn := l.growth[l.term]
	gk := l.growth[paymentsMade]
	return l.principal.Mul(gn.Sub(gk)).DivRound(gn.Sub(one), Precision), nil
}

// InterestToDate рассчитывает сумму процентов, уплаченных за paymentsMade платежей:
// всего выплачено минус погашенный основной долг
func (l FixedRate) InterestToDate(paymentsMade int) (decimal.Decimal, error) {
	balance, err := l.Balance(paymentsMade)
	if err != nil {
		return decimal.Zero, err
	}

	paid := l.Installment().Mul(decimal.NewFromInt(int64(paymentsMade)))
	return paid.Sub(l.principal.Sub(balance)), nil
}

func (l FixedRate) checkPayments(paymentsMade int) error {
	if paymentsMade < 0 || paymentsMade > l.term {
		return fmt.Errorf("%w: %d из %d", ErrOutOfRange, paymentsMade, l.term)
	}
	return nil
}

// growthTable возвращает base^k для k = 0..n. Каждое произведение округляется
// до growthPrecision, иначе число знаков растет линейно с k.
func growthTable(base decimal.Decimal, n int) []decimal.Decimal {
	table := make([]decimal.Decimal, n+1)
	acc := one
	table[0] = one
	for k := 1; k <= n; k++ {
		acc = acc.Mul(base).Round(growthPrecision)
		table[k] = acc.Round(Precision)
	}
	return table
}
