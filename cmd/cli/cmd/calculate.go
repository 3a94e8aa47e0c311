// Package cmd - calculate command
package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fundraiser/core/engine"
	"fundraiser/core/output"
	"fundraiser/core/prompt"
	"fundraiser/core/ui"
	"fundraiser/internal/config"
	"fundraiser/internal/errors"
	"fundraiser/internal/logging"
)

var (
	outputDir        string
	doneKeyword      string
	skipInstructions bool
	noReport         bool
)

// calculateCmd represents the calculate command
var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Run the interactive price calculator",
	Long: `Ask for product details, expenses and a profit goal, then print the
suggested selling price and save the report as <product>_<yyyy>_<mm>_<dd>.txt.

Examples:
  fundraiser calculate
  fundraiser calculate --output-dir ./reports
  fundraiser calculate --done-keyword done --skip-instructions`,
	Args: cobra.NoArgs,
	RunE: runCalculate,
}

func init() {
	addCalculateFlags(calculateCmd)
}

func addCalculateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory for the report file")
	cmd.Flags().StringVar(&doneKeyword, "done-keyword", "", `item name that ends an expense list (default "xxx")`)
	cmd.Flags().BoolVar(&skipInstructions, "skip-instructions", false, "do not offer the instructions")
	cmd.Flags().BoolVar(&noReport, "no-report", false, "do not write the report file")
}

func runCalculate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := effectiveConfig(cmd)
	if err := cfg.Validate(); err != nil {
		return err
	}

	w := ui.NewWriter(cmd.OutOrStdout(), cfg.Output.NoColor)
	p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())

	w.Header(ui.Statement("Fund Raising Calculator", "💰"))

	report, err := engine.New(p, engine.Config{
		DoneKeyword:      cfg.Calculator.DoneKeyword,
		SkipInstructions: cfg.Calculator.SkipInstructions,
	}).Run(ctx)
	if err != nil {
		if errors.IsType(err, errors.TypeAborted) {
			w.Warning("Calculation cancelled, nothing was saved.")
		}
		return err
	}

	formatter := output.NewTextFormatter()
	w.Println("")
	printReport(w, formatter.Lines(report))

	if !cfg.Report.Enabled {
		w.Info("Report file not written, reports are disabled.")
		return nil
	}
	path, err := output.Save(cfg.Report.Directory, formatter, report)
	if err != nil {
		logging.Error("report not saved", zap.Error(err))
		w.Error("Could not save the report: %v", err)
		return err
	}
	w.Success("Report saved to %s", path)
	return nil
}

// effectiveConfig layers command-line flags over the loaded configuration.
func effectiveConfig(cmd *cobra.Command) *config.Config {
	cfg := *config.Get()
	flags := cmd.Flags()

	if flags.Changed("output-dir") {
		cfg.Report.Directory = outputDir
	}
	if flags.Changed("done-keyword") {
		cfg.Calculator.DoneKeyword = doneKeyword
	}
	if flags.Changed("skip-instructions") {
		cfg.Calculator.SkipInstructions = skipInstructions
	}
	if flags.Changed("no-report") {
		cfg.Report.Enabled = !noReport
	}
	return &cfg
}

// printReport shows the report, emphasising the final price line.
func printReport(w *ui.Writer, lines []string) {
	for i, line := range lines {
		if i == len(lines)-1 {
			w.Emphasis("%s", line)
			continue
		}
		w.Println("%s", line)
	}
}

