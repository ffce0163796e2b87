package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cloud-ru/mcp-kpr-go/internal/mortgage"
	"github.com/cloud-ru/mcp-kpr-go/pkg/utils"
)

// ScheduleFixed строит график платежей кредита с фиксированной ставкой
func (ts *Toolset) ScheduleFixed(ctx context.Context, _ *mcp.CallToolRequest, in FixedLoanParams) (*mcp.CallToolResult, ScheduleResult, error) {
	out, err := call(ctx, ts, ToolScheduleFixed, in,
		fixedAttributes(in.Principal, in.AnnualInterest, in.Months),
		func() error { return ts.checkFixed(in.Principal, in.AnnualInterest, in.Months) },
		func() (ScheduleResult, error) {
			loan, err := fixedLoan(in.Principal, in.AnnualInterest, in.Months)
			if err != nil {
				return ScheduleResult{}, err
			}
			return scheduleResult(loan)
		},
	)
	return nil, out, err
}

// ScheduleTiered строит график платежей кредита со ступенчатой ставкой
func (ts *Toolset) ScheduleTiered(ctx context.Context, _ *mcp.CallToolRequest, in TieredLoanParams) (*mcp.CallToolResult, ScheduleResult, error) {
	out, err := call(ctx, ts, ToolScheduleTiered, in,
		tieredAttributes(in.Principal, in.AnnualInterests, in.Months),
		func() error {
			_, err := ts.checkTiered(in.Principal, in.AnnualInterests, in.Months)
			return err
		},
		func() (ScheduleResult, error) {
			loan, err := tieredLoan(in.Principal, in.AnnualInterests, in.Months)
			if err != nil {
				return ScheduleResult{}, err
			}
			return scheduleResult(loan)
		},
	)
	return nil, out, err
}

func scheduleResult(loan mortgage.Amortizer) (ScheduleResult, error) {
	entries, err := mortgage.BuildSchedule(loan)
	if err != nil {
		return ScheduleResult{}, err
	}
	summary, err := mortgage.Summarize(loan)
	if err != nil {
		return ScheduleResult{}, err
	}

	rows := make([]ScheduleRow, len(entries))
	for i, e := range entries {
		rows[i] = ScheduleRow{
			Month:               e.Month,
			Payment:             utils.Money(e.Payment),
			Interest:            utils.Money(e.Interest),
			PrincipalComponent:  utils.Money(e.PrincipalComponent),
			RemainingPrincipal:  utils.Money(e.RemainingPrincipal),
			CumulativeInterest:  utils.Money(e.CumulativeInterest),
			CumulativePrincipal: utils.Money(e.CumulativePrincipal),
		}
	}

	return ScheduleResult{
		Summary: ScheduleSummary{
			Principal:     utils.Money(summary.Principal),
			Months:        summary.Months,
			TotalPaid:     utils.Money(summary.TotalPaid),
			TotalInterest: utils.Money(summary.TotalInterest),
		},
		Schedule: rows,
	}, nil
}
