// =============================================================================
// Cart CSV Parser - Validate Command
// =============================================================================
//
// This file defines the 'validate' command. Unlike 'parse', which rejects an
// invalid file with a single opaque error, 'validate' prints the complete
// positional error report: one line per header, row, or cell problem.
//
// COMMAND USAGE:
//   cartparser validate <file>
//
// EXIT BEHAVIOR:
//   Exits non-zero if the file has any validation errors.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/cart-csv-parser/internal/schema"
	"github.com/ginjaninja78/cart-csv-parser/internal/validation"
)

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a cart CSV file and print the detailed error report",
	Long: `The validate command checks a cart file against the fixed cart schema and
prints every validation error with its kind (HEADER, ROW, CELL), row, and
column. Row 0 is the header row; body rows are numbered from 1. Column -1
marks row-level errors.`,

	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(args[0])
	},
}

// init registers the validate command with the root command.
func init() {
	rootCmd.AddCommand(validateCmd)
}

// runValidate validates a single cart file and prints the report.
func runValidate(path string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read cart file: %w", err)
	}

	validator := validation.New(schema.Cart())
	errs := validator.Validate(string(data))

	fmt.Print(validation.FormatErrors(errs))

	if len(errs) > 0 {
		return fmt.Errorf("%s: %d validation error(s)", path, len(errs))
	}

	return nil
}
