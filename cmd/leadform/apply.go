package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/spf13/cobra"

	"github.com/mattylll/tradesmanfinance-engine/catalog"
	"github.com/mattylll/tradesmanfinance-engine/form"
	"github.com/mattylll/tradesmanfinance-engine/gateway"
	"github.com/mattylll/tradesmanfinance-engine/loan"
	"github.com/mattylll/tradesmanfinance-engine/session"
	"github.com/mattylll/tradesmanfinance-engine/step"
)

var (
	backKeywords    = []string{"back", "b"}
	cancelKeywords  = []string{"cancel", "quit", "exit"}
	restartKeywords = []string{"restart", "start over"}
)

func newApplyCmd() *cobra.Command {
	var (
		tradeID  string
		dbPath   string
		endpoint string
		pageURL  string
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Walk through a finance application for a trade",
		RunE: func(cmd *cobra.Command, args []string) error {
			trade, ok := catalog.TradeByID(tradeID)
			if !ok {
				return fmt.Errorf("unknown trade %q (try one of: %s)", tradeID, tradeSlugs())
			}

			if dbPath == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				dbPath = filepath.Join(home, ".leadform", "sessions.db")
			}
			if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
				return err
			}
			db, err := session.OpenSQLite(dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			store := session.NewStore(
				session.NewSQLiteCache[session.Record[form.Snapshot]](db),
				session.FormNamespace, session.DefaultTTL)
			calcStore := session.NewStore(
				session.NewSQLiteCache[session.Record[loan.SavedCalculation]](db),
				session.CalcNamespace, session.DefaultTTL)

			if endpoint == "" {
				endpoint = os.Getenv("LEADFORM_WEBHOOK_URL")
			}
			var gw gateway.Gateway = gateway.Discard
			if endpoint != "" {
				gw = gateway.NewHTTPGateway(endpoint)
			} else {
				fmt.Println("(no LEADFORM_WEBHOOK_URL set — submissions are discarded)")
			}

			ctx := session.WithSessionKey(cmd.Context(), trade.ID)
			cfg := step.BuildFormConfig(trade.ID, trade.Name, trade.FormOverrides())
			engine, err := form.New(ctx, cfg, gw,
				form.WithStore(store),
				form.WithCalculator(calcStore),
				form.WithPage(form.PageContext{URL: pageURL}))
			if err != nil {
				return err
			}
			return runForm(ctx, engine)
		},
	}

	cmd.Flags().StringVar(&tradeID, "trade", "electrician", "trade slug")
	cmd.Flags().StringVar(&dbPath, "db", "", "session database path")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "submission endpoint URL")
	cmd.Flags().StringVar(&pageURL, "page-url", "", "page URL recorded on the lead")
	return cmd
}

func runForm(ctx context.Context, engine *form.Engine) error {
	reader := bufio.NewReader(os.Stdin)
	if engine.State().StepIndex > 0 {
		fmt.Println("Welcome back — picking up where you left off. Type 'restart' to start over.")
	}

	for {
		st := engine.State()
		if st.Complete {
			fmt.Println("\nThanks! Your application is in — we'll be in touch within one working day.")
			return nil
		}

		current := engine.CurrentStep()
		printStep(engine, current)
		if msg := st.Errors[form.SubmitErrorKey]; msg != "" {
			fmt.Printf("! %s\n", msg)
		}

		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nYour progress is saved — run apply again to resume.")
			return nil
		}
		input := strings.TrimSpace(line)

		switch {
		case matchKeyword(input, cancelKeywords):
			fmt.Println("Your progress is saved — run apply again to resume.")
			return nil
		case matchKeyword(input, restartKeywords):
			engine.Reset(ctx)
			continue
		case matchKeyword(input, backKeywords):
			engine.PrevStep()
			continue
		}

		if current.Kind != step.KindWelcome && current.Kind != step.KindSummary && input != "" {
			value, perr := parseAnswer(current, input)
			if perr != nil {
				fmt.Printf("! %v\n", perr)
				continue
			}
			engine.SetValue(current.ID, value)
		}
		engine.NextStep(ctx)

		if msg := engine.State().Errors[current.ID]; msg != "" {
			fmt.Printf("! %s\n", msg)
		}
	}
}

func printStep(engine *form.Engine, current step.Definition) {
	fmt.Printf("\n[%.0f%%] %s\n", engine.Progress(), current.Prompt)
	if current.Subtitle != "" {
		fmt.Println(current.Subtitle)
	}
	switch current.Kind {
	case step.KindWelcome:
		fmt.Println("(press enter to begin; 'quit' saves and exits)")
	case step.KindSummary:
		printSummary(engine)
		fmt.Println("(press enter to submit, 'back' to change an answer)")
	case step.KindRangeSlider:
		if r := current.Range; r != nil {
			val, _ := engine.Value(current.ID)
			amount, _ := val.(float64)
			fmt.Printf("(%s – %s, currently %s)\n",
				loan.FormatCurrency(r.Min), loan.FormatCurrency(r.Max), loan.FormatCurrency(amount))
		}
	case step.KindSingleSelect, step.KindEmojiSelect, step.KindMultiSelect:
		for i, opt := range current.Options {
			label := opt.Label
			if opt.Emoji != "" {
				label = opt.Emoji + " " + label
			}
			fmt.Printf("  %d. %s\n", i+1, label)
		}
		if current.Kind == step.KindMultiSelect {
			fmt.Println("(pick numbers separated by commas, or press enter to skip)")
		}
	default:
		if current.Placeholder != "" {
			fmt.Printf("(%s)\n", current.Placeholder)
		}
	}
	if current.Hint != "" {
		fmt.Println(current.Hint)
	}
}

func printSummary(engine *form.Engine) {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf, tablewriter.WithRenderer(renderer.NewMarkdown()))
	table.Header("Question", "Answer")
	for _, def := range engine.Config().Steps {
		val, ok := engine.Value(def.ID)
		if !ok || def.Kind == step.KindWelcome || def.Kind == step.KindSummary {
			continue
		}
		_ = table.Append(def.Prompt, displayValue(def, val))
	}
	_ = table.Render()
	fmt.Print(buf.String())
}

func displayValue(def step.Definition, val any) string {
	switch v := val.(type) {
	case float64:
		if def.Kind == step.KindRangeSlider {
			return loan.FormatCurrency(v)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []string:
		return strings.Join(v, ", ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v)
	}
}

func parseAnswer(current step.Definition, input string) (any, error) {
	switch current.Kind {
	case step.KindRangeSlider:
		amount, err := loan.ParseCurrency(input)
		if err != nil {
			return nil, fmt.Errorf("enter an amount, e.g. 25000")
		}
		if r := current.Range; r != nil {
			amount = loan.Clamp(amount, r.Min, r.Max)
		}
		return amount, nil

	case step.KindSingleSelect, step.KindEmojiSelect:
		opt, err := pickOption(current, input)
		if err != nil {
			return nil, err
		}
		return opt, nil

	case step.KindMultiSelect:
		var picked []string
		for _, part := range strings.Split(input, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			opt, err := pickOption(current, part)
			if err != nil {
				return nil, err
			}
			picked = append(picked, opt)
		}
		return picked, nil

	default:
		return input, nil
	}
}

func pickOption(current step.Definition, input string) (string, error) {
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(current.Options) {
			return "", fmt.Errorf("pick a number between 1 and %d", len(current.Options))
		}
		return current.Options[n-1].Value, nil
	}
	if current.HasOption(input) {
		return input, nil
	}
	return "", fmt.Errorf("pick a number between 1 and %d", len(current.Options))
}

func matchKeyword(input string, keywords []string) bool {
	normalized := strings.ToLower(input)
	for _, kw := range keywords {
		if normalized == kw {
			return true
		}
	}
	return false
}

func tradeSlugs() string {
	var slugs []string
	for _, t := range catalog.Trades() {
		slugs = append(slugs, t.ID)
	}
	return strings.Join(slugs, ", ")
}
