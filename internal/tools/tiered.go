package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"github.com/cloud-ru/mcp-kpr-go/internal/mortgage"
	"github.com/cloud-ru/mcp-kpr-go/internal/validators"
	"github.com/cloud-ru/mcp-kpr-go/pkg/utils"
)

// MonthlyInstallmentTiered рассчитывает платеж каждой ступени
func (ts *Toolset) MonthlyInstallmentTiered(ctx context.Context, _ *mcp.CallToolRequest, in TieredLoanParams) (*mcp.CallToolResult, TieredInstallmentResult, error) {
	out, err := call(ctx, ts, ToolInstallmentTiered, in,
		tieredAttributes(in.Principal, in.AnnualInterests, in.Months),
		func() error {
			_, err := ts.checkTiered(in.Principal, in.AnnualInterests, in.Months)
			return err
		},
		func() (TieredInstallmentResult, error) {
			loan, err := tieredLoan(in.Principal, in.AnnualInterests, in.Months)
			if err != nil {
				return TieredInstallmentResult{}, err
			}
			return TieredInstallmentResult{Installments: utils.MoneyList(loan.Installments())}, nil
		},
	)
	return nil, out, err
}

// RemainingBalanceTiered рассчитывает остаток долга после months_paid платежей
func (ts *Toolset) RemainingBalanceTiered(ctx context.Context, _ *mcp.CallToolRequest, in TieredPaymentParams) (*mcp.CallToolResult, BalanceResult, error) {
	attrs := append(tieredAttributes(in.Principal, in.AnnualInterests, in.Months), attribute.Int("months_paid", in.MonthsPaid))

	out, err := call(ctx, ts, ToolBalanceTiered, in, attrs,
		func() error { return ts.checkTieredPaid(in) },
		func() (BalanceResult, error) {
			loan, err := tieredLoan(in.Principal, in.AnnualInterests, in.Months)
			if err != nil {
				return BalanceResult{}, err
			}
			balance, err := loan.Balance(in.MonthsPaid)
			if err != nil {
				return BalanceResult{}, err
			}
			return BalanceResult{MonthsPaid: in.MonthsPaid, Balance: utils.Money(balance)}, nil
		},
	)
	return nil, out, err
}

// InterestPaidTiered рассчитывает проценты, уплаченные за months_paid платежей
func (ts *Toolset) InterestPaidTiered(ctx context.Context, _ *mcp.CallToolRequest, in TieredPaymentParams) (*mcp.CallToolResult, InterestResult, error) {
	attrs := append(tieredAttributes(in.Principal, in.AnnualInterests, in.Months), attribute.Int("months_paid", in.MonthsPaid))

	out, err := call(ctx, ts, ToolInterestTiered, in, attrs,
		func() error { return ts.checkTieredPaid(in) },
		func() (InterestResult, error) {
			loan, err := tieredLoan(in.Principal, in.AnnualInterests, in.Months)
			if err != nil {
				return InterestResult{}, err
			}
			interest, err := loan.InterestToDate(in.MonthsPaid)
			if err != nil {
				return InterestResult{}, err
			}
			return InterestResult{MonthsPaid: in.MonthsPaid, InterestPaid: utils.Money(interest)}, nil
		},
	)
	return nil, out, err
}

func (ts *Toolset) checkTiered(principal int64, rates []float64, months []int) (int, error) {
	if err := validators.CheckPrincipal(ts.cfg, principal); err != nil {
		return 0, err
	}
	return validators.CheckTiers(ts.cfg, rates, months)
}

func (ts *Toolset) checkTieredPaid(in TieredPaymentParams) error {
	total, err := ts.checkTiered(in.Principal, in.AnnualInterests, in.Months)
	if err != nil {
		return err
	}
	return validators.CheckMonthsPaid(in.MonthsPaid, total)
}

func tieredLoan(principal int64, rates []float64, months []int) (mortgage.TieredRate, error) {
	decRates := make([]decimal.Decimal, len(rates))
	for i, r := range rates {
		decRates[i] = utils.Rate(r)
	}
	return mortgage.NewTieredRateFromSlices(decimal.NewFromInt(principal), decRates, months)
}
