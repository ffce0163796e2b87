package mortgage

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BuildSchedule строит помесячный график платежей.
// Каждая строка выводится из Balance и InterestToDate, поэтому график
// совпадает с ними в любом месяце.
func BuildSchedule(a Amortizer) ([]ScheduleEntry, error) {
	n := a.Term()
	principal, err := a.Balance(0)
	if err != nil {
		return nil, err
	}

	schedule := make([]ScheduleEntry, 0, n)
	prevInterest := decimal.Zero

	for m := 1; m <= n; m++ {
		payment, err := a.InstallmentAt(m)
		if err != nil {
			return nil, fmt.Errorf("месяц %d: %w", m, err)
		}
		balance, err := a.Balance(m)
		if err != nil {
			return nil, fmt.Errorf("месяц %d: %w", m, err)
		}
		cumI, err := a.InterestToDate(m)
		if err != nil {
			return nil, fmt.Errorf("месяц %d: %w", m, err)
		}

		interest := cumI.Sub(prevInterest)
		schedule = append(schedule, ScheduleEntry{
			Month:               m,
			Payment:             payment,
			Interest:            interest,
			PrincipalComponent:  payment.Sub(interest),
			RemainingPrincipal:  balance,
			CumulativeInterest:  cumI,
			CumulativePrincipal: principal.Sub(balance),
		})
		prevInterest = cumI
	}

	return schedule, nil
}

// Summarize считает итоговые выплаты по кредиту
func Summarize(a Amortizer) (LoanSummary, error) {
	principal, err := a.Balance(0)
	if err != nil {
		return LoanSummary{}, err
	}

	totalPaid := decimal.Zero
	for m := 1; m <= a.Term(); m++ {
		payment, err := a.InstallmentAt(m)
		if err != nil {
			return LoanSummary{}, err
		}
		totalPaid = totalPaid.Add(payment)
	}

	totalInterest, err := a.InterestToDate(a.Term())
	if err != nil {
		return LoanSummary{}, err
	}

	return LoanSummary{
		Principal:     principal,
		Months:        a.Term(),
		TotalPaid:     totalPaid,
		TotalInterest: totalInterest,
	}, nil
}
