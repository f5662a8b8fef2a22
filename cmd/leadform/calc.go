package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/spf13/cobra"

	"github.com/mattylll/tradesmanfinance-engine/loan"
)

func newCalcCmd() *cobra.Command {
	var (
		amount     float64
		term       int
		rate       float64
		schedule   bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Work out monthly repayments for a loan",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loan.DefaultConfig()
			if configPath != "" {
				loaded, err := loan.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if amount == 0 {
				amount = cfg.Amount.Default
			}
			if term == 0 {
				term = int(cfg.Term.Default)
			}
			if rate == 0 {
				rate = cfg.Rate.Default
			}
			amount = cfg.ClampAmount(amount)
			term = cfg.ClampTerm(term)
			rate = cfg.ClampRate(rate)

			res := loan.CalculateLoan(amount, term, rate)
			fmt.Printf("Borrowing %s over %d months at %s APR:\n",
				loan.FormatCurrency(amount), term, loan.FormatPercentage(rate))
			fmt.Printf("  Monthly payment: %s\n", loan.FormatCurrency(res.MonthlyPayment))
			fmt.Printf("  Total interest:  %s\n", loan.FormatCurrency(res.TotalInterest))
			fmt.Printf("  Total repayable: %s\n", loan.FormatCurrency(res.TotalAmount))

			if schedule {
				fmt.Println()
				printSchedule(amount, term, rate)
			}
			return nil
		},
	}

	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "loan amount in pounds")
	cmd.Flags().IntVarP(&term, "term", "t", 0, "term in months")
	cmd.Flags().Float64VarP(&rate, "rate", "r", 0, "annual rate percent")
	cmd.Flags().BoolVarP(&schedule, "schedule", "s", false, "print the full amortization schedule")
	cmd.Flags().StringVar(&configPath, "config", "", "calculator bounds YAML")
	return cmd
}

func printSchedule(amount float64, term int, rate float64) {
	table := tablewriter.NewTable(os.Stdout, tablewriter.WithRenderer(renderer.NewMarkdown()))
	table.Header("Month", "Payment", "Principal", "Interest", "Balance")
	for row := range loan.GenerateAmortizationSchedule(amount, term, rate) {
		_ = table.Append(
			fmt.Sprintf("%d", row.Period),
			loan.FormatCurrency(row.Payment),
			loan.FormatCurrency(row.PrincipalPortion),
			loan.FormatCurrency(row.InterestPortion),
			loan.FormatCurrency(row.RemainingBalance),
		)
	}
	_ = table.Render()
}
