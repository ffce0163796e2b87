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

// MonthlyInstallmentFixed рассчитывает ежемесячный платеж по фиксированной ставке
func (ts *Toolset) MonthlyInstallmentFixed(ctx context.Context, _ *mcp.CallToolRequest, in FixedLoanParams) (*mcp.CallToolResult, InstallmentResult, error) {
	out, err := call(ctx, ts, ToolInstallmentFixed, in,
		fixedAttributes(in.Principal, in.AnnualInterest, in.Months),
		func() error { return ts.checkFixed(in.Principal, in.AnnualInterest, in.Months) },
		func() (InstallmentResult, error) {
			loan, err := fixedLoan(in.Principal, in.AnnualInterest, in.Months)
			if err != nil {
				return InstallmentResult{}, err
			}
			return InstallmentResult{Installment: utils.Money(loan.Installment())}, nil
		},
	)
	return nil, out, err
}

// RemainingBalanceFixed рассчитывает остаток долга после months_paid платежей
func (ts *Toolset) RemainingBalanceFixed(ctx context.Context, _ *mcp.CallToolRequest, in FixedPaymentParams) (*mcp.CallToolResult, BalanceResult, error) {
	attrs := append(fixedAttributes(in.Principal, in.AnnualInterest, in.Months), attribute.Int("months_paid", in.MonthsPaid))

	out, err := call(ctx, ts, ToolBalanceFixed, in, attrs,
		func() error { return ts.checkFixedPaid(in) },
		func() (BalanceResult, error) {
			loan, err := fixedLoan(in.Principal, in.AnnualInterest, in.Months)
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

// InterestPaidFixed рассчитывает проценты, уплаченные за months_paid платежей
func (ts *Toolset) InterestPaidFixed(ctx context.Context, _ *mcp.CallToolRequest, in FixedPaymentParams) (*mcp.CallToolResult, InterestResult, error) {
	attrs := append(fixedAttributes(in.Principal, in.AnnualInterest, in.Months), attribute.Int("months_paid", in.MonthsPaid))

	out, err := call(ctx, ts, ToolInterestFixed, in, attrs,
		func() error { return ts.checkFixedPaid(in) },
		func() (InterestResult, error) {
			loan, err := fixedLoan(in.Principal, in.AnnualInterest, in.Months)
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

func (ts *Toolset) checkFixed(principal int64, rate float64, months int) error {
	if err := validators.CheckPrincipal(ts.cfg, principal); err != nil {
		return err
	}
	if err := validators.CheckRate(ts.cfg, rate); err != nil {
		return err
	}
	return validators.CheckMonths(ts.cfg, months)
}

func (ts *Toolset) checkFixedPaid(in FixedPaymentParams) error {
	if err := ts.checkFixed(in.Principal, in.AnnualInterest, in.Months); err != nil {
		return err
	}
	return validators.CheckMonthsPaid(in.MonthsPaid, in.Months)
}

func fixedLoan(principal int64, rate float64, months int) (mortgage.FixedRate, error) {
	return mortgage.NewFixedRate(decimal.NewFromInt(principal), utils.Rate(rate), months)
}
