// =============================================================================
// Cart CSV Parser - Parse Command
// =============================================================================
//
// This file defines the 'parse' command, the main command for parsing cart
// CSV files. It prints each parsed item and the order total.
//
// COMMAND USAGE:
//   cartparser parse <file>... [flags]
//   cartparser parse --batch
//
// FLAGS:
//   --batch : Parse every *.csv file in the configured input directory;
//             successfully parsed files are moved to the archive directory
//
// PROCESSING PIPELINE (per file):
//   1. Read the file contents
//   2. Validate against the cart schema; on any error, log the full error
//      list and reject the file
//   3. Convert each body row into a cart item with a fresh identifier
//   4. Sum the subtotals and round the total to 2 decimal places
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/cart-csv-parser/internal/cartparser"
	"github.com/ginjaninja78/cart-csv-parser/internal/schema"
	"github.com/ginjaninja78/cart-csv-parser/internal/types"
	"github.com/ginjaninja78/cart-csv-parser/pkg/utils"
)

// batch parses every cart file in the configured input directory.
var batch bool

// =============================================================================
// PARSE COMMAND DEFINITION
// =============================================================================

// parseCmd represents the 'parse' command.
var parseCmd = &cobra.Command{
	Use:   "parse [file...]",
	Short: "Parse cart CSV files and print their items and totals",
	Long: `The parse command validates each cart file against the fixed cart schema
and, if the file is fully valid, prints its line items and the order total.

A file with any validation error is rejected as a whole: the individual
errors are logged, and no partial result is produced. Use 'cartparser
validate' to see the full positional error report for a failing file.

In batch mode (--batch) the input directory is scanned for *.csv files and
each successfully parsed file is moved to the archive directory.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		if !batch && len(args) == 0 {
			return fmt.Errorf("no cart files given (or use --batch)")
		}
		return runParse(args)
	},
}

// init registers the parse command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(
		&batch,
		"batch",
		false,
		"Parse every cart CSV file in the configured input directory",
	)
}

// =============================================================================
// MAIN PARSE FUNCTION
// =============================================================================

// runParse parses the given cart files, or the input directory in batch mode.
func runParse(args []string) error {
	startTime := time.Now()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fm := utils.NewFileManager(cfg.InputDir, cfg.OutputDir, cfg.ArchiveDir)
	fm.ArchiveOnParse = cfg.ArchiveEnabled()

	files := args
	if batch {
		if err := fm.EnsureDirectories(); err != nil {
			return err
		}
		files, err = fm.DiscoverCartFiles("")
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Println("No cart files found in the input directory.")
			return nil
		}
	}

	parser := cartparser.NewWithOptions(schema.Cart(), cartparser.Options{
		Sink: cartparser.LogSink(logger),
	})

	var parsed, failed int
	for _, file := range files {
		result, err := parser.Parse(file)
		if err != nil {
			failed++
			fmt.Printf("  ✗ %s: %v\n", filepath.Base(file), err)
			continue
		}

		parsed++
		printResult(file, result)

		if batch {
			if _, err := fm.ArchiveCartFile(file); err != nil {
				logger.Warn().Str("file", file).Err(err).Msg("failed to archive cart file")
			}
		}
	}

	fmt.Println("\n=== Parsing Complete ===")
	fmt.Printf("Total files:  %d\n", len(files))
	fmt.Printf("Parsed:       %d\n", parsed)
	fmt.Printf("Rejected:     %d\n", failed)
	fmt.Printf("Time elapsed: %s\n", time.Since(startTime))

	if failed > 0 {
		return fmt.Errorf("%d cart file(s) failed validation", failed)
	}

	return nil
}

// printResult prints the items and total of a parsed cart file.
func printResult(file string, result *types.ParseResult) {
	fmt.Printf("  ✓ %s (%d item(s))\n", filepath.Base(file), len(result.Items))
	for _, item := range result.Items {
		fmt.Printf("      %-30s %8.2f x %g\n", item.Name, item.Price, item.Quantity)
	}
	fmt.Printf("      %-30s %8.2f\n", "Total", result.Total)
}
