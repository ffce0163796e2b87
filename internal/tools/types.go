package tools

import "go.opentelemetry.io/otel/attribute"

const (
	ToolInstallmentFixed  = "monthly_installment_fixed"
	ToolInterestFixed     = "interest_paid_fixed"
	ToolBalanceFixed      = "remaining_balance_fixed"
	ToolInstallmentTiered = "monthly_installment_tiered"
	ToolInterestTiered    = "interest_paid_tiered"
	ToolBalanceTiered     = "remaining_balance_tiered"
	ToolScheduleFixed     = "amortization_schedule_fixed"
	ToolScheduleTiered    = "amortization_schedule_tiered"
)

// FixedLoanParams - параметры кредита с фиксированной ставкой
type FixedLoanParams struct {
	Principal      int64   `json:"principal" jsonschema:"the loan amount"`
	AnnualInterest float64 `json:"annual_interest" jsonschema:"annual interest in decimal. Divide by 100 if using percentage."`
	Months         int     `json:"months" jsonschema:"the loan tenure in months."`
}

// FixedPaymentParams - параметры кредита с фиксированной ставкой и число платежей
type FixedPaymentParams struct {
	Principal      int64   `json:"principal" jsonschema:"the loan amount"`
	AnnualInterest float64 `json:"annual_interest" jsonschema:"annual interest in decimal. Divide by 100 if using percentage."`
	Months         int     `json:"months" jsonschema:"the loan tenure in months."`
	MonthsPaid     int     `json:"months_paid" jsonschema:"number of monthly payments the installment has been paid to."`
}

// TieredLoanParams - параметры кредита со ступенчатой ставкой
type TieredLoanParams struct {
	Principal       int64     `json:"principal" jsonschema:"the loan amount"`
	AnnualInterests []float64 `json:"annual_interests" jsonschema:"list of annual interest in decimal. Divide by 100 if using percentage."`
	Months          []int     `json:"months" jsonschema:"list of loan tenures in months."`
}

// TieredPaymentParams - параметры кредита со ступенчатой ставкой и число платежей
type TieredPaymentParams struct {
	Principal       int64     `json:"principal" jsonschema:"the loan amount"`
	AnnualInterests []float64 `json:"annual_interests" jsonschema:"list of annual interest in decimal. Divide by 100 if using percentage."`
	Months          []int     `json:"months" jsonschema:"list of loan tenures in months."`
	MonthsPaid      int       `json:"months_paid" jsonschema:"number of monthly payments the installment has been paid to."`
}

// InstallmentResult - ежемесячный платеж по кредиту с фиксированной ставкой
type InstallmentResult struct {
	Installment string `json:"installment"`
}

// TieredInstallmentResult - ежемесячные платежи по ступеням в порядке ступеней
type TieredInstallmentResult struct {
	Installments []string `json:"installments"`
}

// BalanceResult - остаток основного долга после months_paid платежей
type BalanceResult struct {
	MonthsPaid int    `json:"months_paid"`
	Balance    string `json:"remaining_balance"`
}

// InterestResult - сумма процентов, уплаченных за months_paid платежей
type InterestResult struct {
	MonthsPaid   int    `json:"months_paid"`
	InterestPaid string `json:"interest_paid"`
}

// ScheduleRow - строка графика платежей, суммы округлены до 2 знаков
type ScheduleRow struct {
	Month               int    `json:"month"`
	Payment             string `json:"payment"`
	Interest            string `json:"interest"`
	PrincipalComponent  string `json:"principal_component"`
	RemainingPrincipal  string `json:"remaining_principal"`
	CumulativeInterest  string `json:"cumulative_interest"`
	CumulativePrincipal string `json:"cumulative_principal"`
}

// ScheduleSummary - итоги по кредиту: общая сумма выплат и процентов
type ScheduleSummary struct {
	Principal     string `json:"principal"`
	Months        int    `json:"months"`
	TotalPaid     string `json:"total_paid"`
	TotalInterest string `json:"total_interest"`
}

// ScheduleResult - итоги и помесячный график платежей
type ScheduleResult struct {
	Summary  ScheduleSummary `json:"summary"`
	Schedule []ScheduleRow   `json:"schedule"`
}

func fixedAttributes(principal int64, rate float64, months int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int64("principal", principal),
		attribute.Float64("annual_interest", rate),
		attribute.Int("months", months),
	}
}

func tieredAttributes(principal int64, rates []float64, months []int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int64("principal", principal),
		attribute.Float64Slice("annual_interests", rates),
		attribute.IntSlice("months", months),
	}
}
