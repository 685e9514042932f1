// =============================================================================
// Cart CSV Parser - Export Command
// =============================================================================
//
// This file defines the 'export' command, which parses a cart file and writes
// the result as an XLSX receipt: one row per item plus a total row, with
// money columns formatted to 2 decimal places.
//
// COMMAND USAGE:
//   cartparser export <file> [flags]
//
// FLAGS:
//   --output : Destination path for the receipt; defaults to a generated
//              name in the configured output directory
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/cart-csv-parser/internal/cartparser"
	"github.com/ginjaninja78/cart-csv-parser/internal/schema"
	"github.com/ginjaninja78/cart-csv-parser/internal/xlsxwriter"
	"github.com/ginjaninja78/cart-csv-parser/pkg/utils"
)

// outputPath is the destination for the generated receipt.
var outputPath string

// exportCmd represents the 'export' command.
var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Parse a cart CSV file and write an XLSX receipt",
	Long: `The export command parses a cart file and writes an XLSX receipt with one
row per item and a total row. The file must pass validation; an invalid cart
is rejected the same way 'parse' rejects it.`,

	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(args[0])
	},
}

// init registers the export command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(
		&outputPath,
		"output",
		"",
		"Destination path for the XLSX receipt (default: generated name in the output directory)",
	)
}

// runExport parses a cart file and writes its XLSX receipt.
func runExport(cartPath string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	parser := cartparser.NewWithOptions(schema.Cart(), cartparser.Options{
		Sink: cartparser.LogSink(logger),
	})

	result, err := parser.Parse(cartPath)
	if err != nil {
		return err
	}

	destination := outputPath
	if destination == "" {
		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		name := utils.GenerateReceiptFileName(cfg.Receipt.NameFormat, cartPath)
		destination = filepath.Join(cfg.OutputDir, name)
	}

	options := xlsxwriter.GenerateOptions{SheetName: cfg.Receipt.SheetName}
	if err := xlsxwriter.WriteWithOptions(result, destination, options); err != nil {
		return err
	}

	fmt.Printf("Receipt written to %s (%d item(s), total %.2f)\n",
		destination, len(result.Items), result.Total)

	return nil
}
