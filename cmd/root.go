// =============================================================================
// Cart CSV Parser - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI.
//
// COBRA CLI STRUCTURE:
//   rootCmd (cartparser)
//   ├── parseCmd    (cartparser parse)
//   ├── validateCmd (cartparser validate)
//   ├── exportCmd   (cartparser export)
//   └── versionCmd  (cartparser version)
//
// CONFIGURATION:
//   The root command owns the global flags (--config, --verbose), loads the
//   YAML configuration, and sets the global log level before any subcommand
//   runs.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/cart-csv-parser/internal/config"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// logger is the CLI logger. Subcommands log through it; the parse pipeline
// gets its own sink derived from it.
var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "cartparser",
	Short: "Cart CSV Parser - Validate and total shopping cart CSV exports",
	Long: `Cart CSV Parser validates shopping cart CSV files against the fixed cart
schema (Product name, Price, Quantity), parses them into line items, and
computes the order total rounded to 2 decimal places.

A file is either fully valid or rejected: validation reports every header,
row, and cell problem with its exact position before any parsing happens.

Example Usage:
  cartparser parse cart.csv            # Parse a cart file and print the total
  cartparser parse --batch             # Parse every cart file in the input dir
  cartparser validate cart.csv         # Print the detailed validation report
  cartparser export cart.csv           # Write an XLSX receipt for a cart file`,

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (default is config.yaml)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// loadConfig loads the configuration file and applies the log level.
// The --verbose flag overrides the configured level with debug.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}

	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}
	zerolog.SetGlobalLevel(parsed)

	return cfg, nil
}
