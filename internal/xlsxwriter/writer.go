// =============================================================================
// Cart CSV Parser - XLSX Receipt Writer
// =============================================================================
//
// This module renders a ParseResult as an XLSX receipt workbook. The layout
// is a single sheet:
//
//   | Item ID | Product name | Price | Quantity | Subtotal |
//   | <uuid>  | Mollis ...   |  9.00 |        2 |    18.00 |
//   | ...                                                  |
//   |         |              |       | Total    |   348.32 |
//
// Price, Subtotal, and Total cells carry a 2-decimal number format so the
// receipt displays money the way the parser rounds it.
//
// =============================================================================

package xlsxwriter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/cart-csv-parser/internal/types"
)

// headerLabels are the receipt column headers, in sheet column order.
var headerLabels = []string{"Item ID", "Product name", "Price", "Quantity", "Subtotal"}

// moneyNumFmt is the built-in excelize number format for "#,##0.00".
const moneyNumFmt = 4

// =============================================================================
// GENERATE OPTIONS
// =============================================================================

// GenerateOptions contains options for receipt generation.
type GenerateOptions struct {
	// SheetName is the name of the worksheet the receipt is written to.
	SheetName string
}

// DefaultGenerateOptions returns the default receipt generation options.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{SheetName: "Receipt"}
}

// =============================================================================
// RECEIPT GENERATION
// =============================================================================

// Write renders the parse result as an XLSX receipt at outputPath using the
// default options.
func Write(result *types.ParseResult, outputPath string) error {
	return WriteWithOptions(result, outputPath, DefaultGenerateOptions())
}

// WriteWithOptions renders the parse result as an XLSX receipt at outputPath.
func WriteWithOptions(result *types.ParseResult, outputPath string, options GenerateOptions) error {
	f, err := build(result, options)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save receipt: %w", err)
	}

	return nil
}

// build assembles the receipt workbook in memory.
func build(result *types.ParseResult, options GenerateOptions) (*excelize.File, error) {
	f := excelize.NewFile()

	sheet := options.SheetName
	if sheet == "" {
		sheet = DefaultGenerateOptions().SheetName
	}

	// Rename the default sheet rather than adding a second one.
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name receipt sheet: %w", err)
	}

	// Header row.
	for col, label := range headerLabels {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, label); err != nil {
			return nil, fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	// One row per item, in parse order.
	for i, item := range result.Items {
		row := i + 2
		values := []interface{}{
			item.ID,
			item.Name,
			item.Price,
			item.Quantity,
			item.Price * item.Quantity,
		}

		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, fmt.Errorf("failed to address item cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write item cell: %w", err)
			}
		}
	}

	// Total row under the items.
	totalRow := len(result.Items) + 2
	if err := f.SetCellValue(sheet, fmt.Sprintf("D%d", totalRow), "Total"); err != nil {
		return nil, fmt.Errorf("failed to write total label: %w", err)
	}
	if err := f.SetCellValue(sheet, fmt.Sprintf("E%d", totalRow), result.Total); err != nil {
		return nil, fmt.Errorf("failed to write total value: %w", err)
	}

	if err := applyMoneyFormat(f, sheet, totalRow); err != nil {
		return nil, err
	}

	return f, nil
}

// applyMoneyFormat applies the 2-decimal number format to the Price and
// Subtotal columns and the total cell.
func applyMoneyFormat(f *excelize.File, sheet string, totalRow int) error {
	style, err := f.NewStyle(&excelize.Style{NumFmt: moneyNumFmt})
	if err != nil {
		return fmt.Errorf("failed to create money style: %w", err)
	}

	if err := f.SetCellStyle(sheet, "C2", fmt.Sprintf("C%d", totalRow), style); err != nil {
		return fmt.Errorf("failed to style price column: %w", err)
	}
	if err := f.SetCellStyle(sheet, "E2", fmt.Sprintf("E%d", totalRow), style); err != nil {
		return fmt.Errorf("failed to style subtotal column: %w", err)
	}

	return nil
}
