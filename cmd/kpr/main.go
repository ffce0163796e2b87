package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli"

	"github.com/cloud-ru/mcp-kpr-go/internal/mortgage"
	"github.com/cloud-ru/mcp-kpr-go/pkg/utils"
)

var (
	principalFlag = cli.StringFlag{Name: "principal", Usage: "loan amount", Required: true}
	paidFlag      = cli.IntFlag{Name: "paid", Usage: "number of monthly payments already made"}
	scheduleFlag  = cli.BoolFlag{Name: "schedule", Usage: "print the month by month amortization schedule"}
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "kpr"
	app.Usage = "mortgage (KPR) installment, balance and interest calculator"
	app.Commands = []cli.Command{
		{
			Name:  "fixed",
			Usage: "fixed rate mortgage",
			Flags: []cli.Flag{
				principalFlag,
				cli.StringFlag{Name: "rate", Usage: "annual interest as a fraction, 0.06 = 6%", Required: true},
				cli.IntFlag{Name: "months", Usage: "loan tenure in months", Required: true},
				paidFlag,
				scheduleFlag,
			},
			Action: fixedAction,
		},
		{
			Name:  "tiered",
			Usage: "tiered rate mortgage, one --rate and --months per tier",
			Flags: []cli.Flag{
				principalFlag,
				cli.StringSliceFlag{Name: "rate", Usage: "annual interest of a tier as a fraction"},
				cli.IntSliceFlag{Name: "months", Usage: "tenure of a tier in months"},
				paidFlag,
				scheduleFlag,
			},
			Action: tieredAction,
		},
	}
	return app
}

func fixedAction(c *cli.Context) error {
	principal, err := decimal.NewFromString(c.String(principalFlag.Name))
	if err != nil {
		return fmt.Errorf("principal: %w", err)
	}
	rate, err := decimal.NewFromString(c.String("rate"))
	if err != nil {
		return fmt.Errorf("rate: %w", err)
	}

	loan, err := mortgage.NewFixedRate(principal, rate, c.Int("months"))
	if err != nil {
		return err
	}

	w := c.App.Writer
	fmt.Fprintf(w, "installment: %s\n", utils.Money(loan.Installment()))
	return report(w, c, loan)
}

func tieredAction(c *cli.Context) error {
	principal, err := decimal.NewFromString(c.String(principalFlag.Name))
	if err != nil {
		return fmt.Errorf("principal: %w", err)
	}

	rawRates := c.StringSlice("rate")
	rates := make([]decimal.Decimal, len(rawRates))
	for i, r := range rawRates {
		if rates[i], err = decimal.NewFromString(r); err != nil {
			return fmt.Errorf("rate %d: %w", i+1, err)
		}
	}

	loan, err := mortgage.NewTieredRateFromSlices(principal, rates, c.IntSlice("months"))
	if err != nil {
		return err
	}

	w := c.App.Writer
	for i, inst := range loan.Installments() {
		fmt.Fprintf(w, "installment tier %d: %s\n", i+1, utils.Money(inst))
	}
	return report(w, c, loan)
}

func report(w io.Writer, c *cli.Context, loan mortgage.Amortizer) error {
	if c.IsSet(paidFlag.Name) {
		paid := c.Int(paidFlag.Name)
		balance, err := loan.Balance(paid)
		if err != nil {
			return err
		}
		interest, err := loan.InterestToDate(paid)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "remaining balance after %d: %s\n", paid, utils.Money(balance))
		fmt.Fprintf(w, "interest paid after %d: %s\n", paid, utils.Money(interest))
	}

	if c.Bool(scheduleFlag.Name) {
		return printSchedule(w, loan)
	}
	return nil
}

func printSchedule(w io.Writer, loan mortgage.Amortizer) error {
	schedule, err := mortgage.BuildSchedule(loan)
	if err != nil {
		return err
	}
	summary, err := mortgage.Summarize(loan)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "month\tpayment\tinterest\tprincipal\tbalance\t")
	for _, e := range schedule {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n",
			e.Month,
			utils.Money(e.Payment),
			utils.Money(e.Interest),
			utils.Money(e.PrincipalComponent),
			utils.Money(e.RemainingPrincipal),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "total paid: %s\ntotal interest: %s\n", utils.Money(summary.TotalPaid), utils.Money(summary.TotalInterest))
	return nil
}
