// Package cmd provides the CLI commands for fundraiser.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fundraiser/internal/config"
	"fundraiser/internal/logging"
)

// Version is the release version printed by the version command
const Version = "0.1.0"

var (
	cfgFile string
	verbose bool
	noColor bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fundraiser",
	Short: "Work out a selling price for a fundraising product",
	Long: `fundraiser is an interactive calculator for small fundraising sales.

It asks for the cost of each ingredient or component (variable expenses),
any one-off costs (fixed expenses) and how much profit you want to make,
then suggests a price per item and saves the working to a text file.

Examples:
  fundraiser
  fundraiser calculate --output-dir ./reports
  fundraiser --config fundraiser.hcl calculate --skip-instructions`,
	SilenceUsage: true,
	RunE:         runCalculate,
}

// Execute runs the CLI
func Execute() error {
	defer func() {
		if err := logging.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing log: %v\n", err)
		}
	}()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, JSON or HCL (default is $HOME/.fundraiser.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	addCalculateFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
		os.Exit(1)
	}

	path := cfgFile
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home + string(os.PathSeparator) + ".fundraiser.json"
		}
	}
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	config.ApplyEnv(cfg)
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if noColor {
		cfg.Output.NoColor = true
	}

	// Initialize logging
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fundraiser version %s\n", Version)
	},
}
