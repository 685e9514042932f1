// =============================================================================
// Cart CSV Parser - Validation Engine
// =============================================================================
//
// This module validates raw cart file text against the cart schema before any
// parsing happens. It checks, in order:
//   - Header row: each header label must match the schema column at the same
//     position
//   - Row length: each body row must have at least as many cells as the schema
//     has columns
//   - Cells: string columns must be nonempty after trimming; numeric columns
//     must coerce to a number >= 0
//
// ERROR HANDLING:
//   - Errors are collected, not thrown: Validate always returns, and an empty
//     list signals success
//   - Each error carries its position (row, column) and a human-readable
//     message; row 0 is the header row, body rows are numbered from 1
//   - A row that fails the length check is skipped entirely at the cell level,
//     so a short row produces exactly one error
//
// POSITION CONVENTION:
//   Fully empty lines are dropped before validation and are invisible to row
//   numbering. Lines containing only whitespace are kept: they split into a
//   single empty cell and fail the row-length check.
//
// =============================================================================

package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ginjaninja78/cart-csv-parser/internal/schema"
)

// =============================================================================
// VALIDATION ERROR TYPES
// =============================================================================

// ErrorKind classifies where in the file a validation error was found.
type ErrorKind int

const (
	// KindHeader is a wrong column name at a given header position.
	KindHeader ErrorKind = iota

	// KindRow is a wrong cell count in a body row.
	KindRow

	// KindCell is a wrong type or value in a specific cell.
	KindCell
)

// String returns the kind label used in reports and logs.
func (k ErrorKind) String() string {
	switch k {
	case KindHeader:
		return "HEADER"
	case KindRow:
		return "ROW"
	case KindCell:
		return "CELL"
	default:
		return "UNKNOWN"
	}
}

// ValidationError represents a single validation error.
type ValidationError struct {
	// Kind classifies the error as HEADER, ROW, or CELL.
	Kind ErrorKind

	// Row is the row the error was found in. Row 0 is the header row; body
	// rows are numbered 1..N in the order they appear after empty lines are
	// dropped.
	Row int

	// Column is the 0-based column index of the error, or -1 for row-level
	// errors that have no single column.
	Column int

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] row %d, column %d: %s", e.Kind, e.Row, e.Column, e.Message)
}

// =============================================================================
// VALIDATOR
// =============================================================================

// Validator checks raw cart file text against a schema.
type Validator struct {
	schema *schema.Schema
}

// New creates a Validator for the given schema.
func New(s *schema.Schema) *Validator {
	return &Validator{schema: s}
}

// =============================================================================
// MAIN VALIDATION FUNCTION
// =============================================================================

// Validate checks the raw file contents and returns every validation error
// found, in discovery order: header errors first (in column order), then body
// rows in row order with cell errors in column order within a row.
//
// Validate never fails. An empty result means the contents are safe to hand
// to the line parser.
func (v *Validator) Validate(contents string) []ValidationError {
	var errs []ValidationError

	lines := SplitLines(contents)
	if len(lines) == 0 {
		return errs
	}

	// =========================================================================
	// HEADER VALIDATION
	// =========================================================================
	// Each header position is checked independently, so one pass can report
	// several mismatched headers.

	headerCells := splitCells(lines[0])
	for i := 0; i < v.schema.Len(); i++ {
		expected := v.schema.Column(i).Name

		var received string
		if i < len(headerCells) {
			received = headerCells[i]
		}

		if received != expected {
			errs = append(errs, ValidationError{
				Kind:    KindHeader,
				Row:     0,
				Column:  i,
				Message: fmt.Sprintf("Expected header to be named %q but received %s.", expected, received),
			})
		}
	}

	// =========================================================================
	// BODY ROW VALIDATION
	// =========================================================================

	for rowIndex, line := range lines[1:] {
		row := rowIndex + 1
		cells := splitCells(line)

		// Row-length check. A short row is reported once, at column -1, and
		// its cells are not validated.
		if len(cells) < v.schema.Len() {
			errs = append(errs, ValidationError{
				Kind:    KindRow,
				Row:     row,
				Column:  -1,
				Message: fmt.Sprintf("Expected row to have %d cells but received %d.", v.schema.Len(), len(cells)),
			})
			continue
		}

		// Cell checks, in column order.
		for col := 0; col < v.schema.Len(); col++ {
			if msg := v.validateCell(cells[col], v.schema.Column(col).Type); msg != "" {
				errs = append(errs, ValidationError{
					Kind:    KindCell,
					Row:     row,
					Column:  col,
					Message: msg,
				})
			}
		}
	}

	return errs
}

// =============================================================================
// CELL VALIDATORS
// =============================================================================

// validateCell validates a single trimmed cell against a column type.
// It returns an error message, or the empty string if the cell is valid.
func (v *Validator) validateCell(cell string, columnType schema.ColumnType) string {
	switch columnType {
	case schema.TypeString:
		if cell == "" {
			return fmt.Sprintf("Expected cell to be a nonempty string but received %q.", cell)
		}

	case schema.TypePositiveNumber:
		// Standard decimal notation only: "9.00" coerces to 9, anything that
		// does not parse (including an empty cell) is rejected. ParseFloat on
		// its own also accepts hex floats, underscore-grouped digits, and the
		// Inf/NaN spellings, so the cell's syntax is checked first.
		n, err := strconv.ParseFloat(cell, 64)
		if !isDecimalNotation(cell) || err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
			return fmt.Sprintf("Expected cell to be a positive number but received %q.", cell)
		}
	}

	return ""
}

// isDecimalNotation reports whether a cell is restricted to plain decimal
// characters (digits, sign, decimal point, exponent marker). ParseFloat
// still decides whether the characters form a number.
func isDecimalNotation(cell string) bool {
	for _, r := range cell {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' || r == '+' || r == '-' || r == 'e' || r == 'E':
		default:
			return false
		}
	}
	return true
}

// =============================================================================
// LINE AND CELL SPLITTING
// =============================================================================

// SplitLines splits raw file contents on newline and drops fully empty lines.
// An empty line is invisible to row numbering rather than an error; a
// whitespace-only line survives and fails row validation instead. The line
// parser uses the same split so parse and validate stay behaviorally
// consistent.
func SplitLines(contents string) []string {
	var lines []string
	for _, line := range strings.Split(contents, "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// splitCells splits a line on comma and trims each cell. Quoting and escaping
// are not interpreted; cart exports never quote fields.
func splitCells(line string) []string {
	cells := strings.Split(line, ",")
	for i, cell := range cells {
		cells[i] = strings.TrimSpace(cell)
	}
	return cells
}

// =============================================================================
// ERROR FORMATTING
// =============================================================================

// FormatErrors formats validation errors for display or logging.
func FormatErrors(errs []ValidationError) string {
	if len(errs) == 0 {
		return "No validation errors."
	}

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("Validation completed with %d error(s):\n\n", len(errs)))

	for i, err := range errs {
		builder.WriteString(fmt.Sprintf("%d. %s\n", i+1, err.Error()))
	}

	return builder.String()
}
