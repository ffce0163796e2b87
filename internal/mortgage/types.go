package mortgage

import "github.com/shopspring/decimal"

// Amortizer - общий интерфейс кредитов с фиксированной и ступенчатой ставкой
type Amortizer interface {
	Term() int
	InstallmentAt(period int) (decimal.Decimal, error)
	Balance(paymentsMade int) (decimal.Decimal, error)
	InterestToDate(paymentsMade int) (decimal.Decimal, error)
}

// ScheduleEntry представляет одну запись в графике платежей
type ScheduleEntry struct {
	Month               int             `json:"month"`
	Payment             decimal.Decimal `json:"payment"`
	Interest            decimal.Decimal `json:"interest"`
	PrincipalComponent  decimal.Decimal `json:"principal_component"`
	RemainingPrincipal  decimal.Decimal `json:"remaining_principal"`
	CumulativeInterest  decimal.Decimal `json:"cumulative_interest"`
	CumulativePrincipal decimal.Decimal `json:"cumulative_principal"`
}

// LoanSummary представляет сводку по кредиту
type LoanSummary struct {
	Principal     decimal.Decimal `json:"principal"`
	Months        int             `json:"months"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	TotalInterest decimal.Decimal `json:"total_interest"`
}

var (
	_ Amortizer = FixedRate{}
	_ Amortizer = TieredRate{}
)
