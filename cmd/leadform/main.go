package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var verbose bool

func main() {
	// Endpoint and friends may live in a local .env; absence is fine.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "leadform",
		Short: "Tradesman finance lead engine: repayment calculator and application form",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newCalcCmd())
	root.AddCommand(newApplyCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
