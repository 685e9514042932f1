// =============================================================================
// Cart CSV Parser - Parse Pipeline
// =============================================================================
//
// This module orchestrates the full parse of a cart file:
//   1. Read the file contents via the injected file reader
//   2. Validate the contents against the cart schema (fail fast on any error)
//   3. Split into non-empty lines and drop the header line
//   4. Convert each remaining line into a CartItem
//   5. Sum the item subtotals and round the total to 2 decimal places
//
// EXTERNAL COLLABORATORS:
//   File reading, identifier generation, and diagnostics are injected
//   capabilities, so the pipeline itself is pure and testable without
//   touching the environment:
//   - FileReader: reads bytes from a path (default os.ReadFile)
//   - IDSource: produces a fresh unique identifier per call (default UUID v4)
//   - DiagnosticSink: receives the validation error list when Parse aborts
//     (default logs through zerolog)
//
// ERROR HANDLING:
//   Parse fails opaquely on invalid input: the detailed error list goes to
//   the diagnostic sink, and the returned error only wraps
//   ErrValidationFailed. Callers that need the structured detail call
//   Validate directly.
//
// =============================================================================

package cartparser

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ginjaninja78/cart-csv-parser/internal/schema"
	"github.com/ginjaninja78/cart-csv-parser/internal/types"
	"github.com/ginjaninja78/cart-csv-parser/internal/validation"
)

// ErrValidationFailed is returned by Parse when the file contents fail
// validation. The individual errors are reported to the diagnostic sink, not
// attached to the returned error.
var ErrValidationFailed = errors.New("validation failed")

// =============================================================================
// INJECTED CAPABILITIES
// =============================================================================

// FileReader reads the raw bytes of a file. Injected so tests can supply
// in-memory contents instead of touching the filesystem.
type FileReader func(path string) ([]byte, error)

// IDSource produces a fresh unique identifier on each call. No format is
// required beyond uniqueness; tests may substitute a fixed value.
type IDSource func() string

// DiagnosticSink receives the full validation error list when Parse aborts.
// It exists for logging and troubleshooting; it is not required for
// correctness of returned data.
type DiagnosticSink func(path string, errs []validation.ValidationError)

// =============================================================================
// PARSER
// =============================================================================

// Parser converts cart CSV files into ParseResults.
type Parser struct {
	schema    *schema.Schema
	validator *validation.Validator

	readFile FileReader
	newID    IDSource
	sink     DiagnosticSink
}

// Options contains the injectable collaborators of a Parser. Zero-value
// fields fall back to the defaults.
type Options struct {
	// ReadFile reads file contents. Default: os.ReadFile.
	ReadFile FileReader

	// NewID generates item identifiers. Default: uuid.NewString.
	NewID IDSource

	// Sink receives validation errors on parse failure. Default: a
	// zerolog-backed sink writing to stderr.
	Sink DiagnosticSink
}

// New creates a Parser over the given schema with default collaborators.
func New(s *schema.Schema) *Parser {
	return NewWithOptions(s, Options{})
}

// NewWithOptions creates a Parser with custom collaborators.
func NewWithOptions(s *schema.Schema, options Options) *Parser {
	if options.ReadFile == nil {
		options.ReadFile = os.ReadFile
	}
	if options.NewID == nil {
		options.NewID = uuid.NewString
	}
	if options.Sink == nil {
		options.Sink = LogSink(zerolog.New(os.Stderr).With().Timestamp().Logger())
	}

	return &Parser{
		schema:    s,
		validator: validation.New(s),
		readFile:  options.ReadFile,
		newID:     options.NewID,
		sink:      options.Sink,
	}
}

// LogSink returns a DiagnosticSink that logs each validation error through
// the given logger, one event per error, with kind, row, and column fields.
func LogSink(logger zerolog.Logger) DiagnosticSink {
	return func(path string, errs []validation.ValidationError) {
		for _, err := range errs {
			logger.Error().
				Str("file", path).
				Str("kind", err.Kind.String()).
				Int("row", err.Row).
				Int("column", err.Column).
				Msg(err.Message)
		}
	}
}

// =============================================================================
// TOP-LEVEL PARSE
// =============================================================================

// Parse reads the cart file at path, validates it, and returns the parsed
// items with their rounded total.
//
// On validation failure the full error list is reported to the diagnostic
// sink and the returned error wraps ErrValidationFailed; no partial result is
// returned. Callers needing the structured error list should call Validate.
func (p *Parser) Parse(path string) (*types.ParseResult, error) {
	data, err := p.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart file: %w", err)
	}
	contents := string(data)

	if errs := p.validator.Validate(contents); len(errs) > 0 {
		p.sink(path, errs)
		return nil, fmt.Errorf("%s: %w", path, ErrValidationFailed)
	}

	lines := validation.SplitLines(contents)

	// First line is the header row; everything after it is a cart item.
	var items []types.CartItem
	if len(lines) > 1 {
		items = make([]types.CartItem, 0, len(lines)-1)
		for _, line := range lines[1:] {
			items = append(items, p.ParseLine(line))
		}
	}

	return &types.ParseResult{
		Items: items,
		Total: roundTotal(CalcTotal(items)),
	}, nil
}

// Validate checks raw cart file contents against the schema and returns the
// structured error list. This is the only way to inspect what is wrong with
// a file; Parse deliberately hides the detail.
func (p *Parser) Validate(contents string) []validation.ValidationError {
	return p.validator.Validate(contents)
}

// =============================================================================
// LINE PARSER
// =============================================================================

// ParseLine converts a single validated CSV line into a CartItem with a fresh
// identifier attached.
//
// The line must already have passed validation: ParseLine does not
// re-validate and produces garbage values for cells that do not satisfy their
// column type. Callers must validate first.
func (p *Parser) ParseLine(csvLine string) types.CartItem {
	cells := strings.Split(csvLine, ",")

	item := types.CartItem{ID: p.newID()}

	// Map cell i to schema column i, dispatching on the column's declared
	// type to pick the typed field.
	for i := 0; i < p.schema.Len() && i < len(cells); i++ {
		col := p.schema.Column(i)
		cell := strings.TrimSpace(cells[i])

		switch col.Type {
		case schema.TypeString:
			setStringField(&item, col.Key, cell)
		case schema.TypePositiveNumber:
			n, _ := strconv.ParseFloat(cell, 64)
			setNumberField(&item, col.Key, n)
		}
	}

	return item
}

// setStringField assigns a string-typed cell to the item field named by the
// schema key.
func setStringField(item *types.CartItem, key, value string) {
	switch key {
	case "name":
		item.Name = value
	}
}

// setNumberField assigns a number-typed cell to the item field named by the
// schema key.
func setNumberField(item *types.CartItem, key string, value float64) {
	switch key {
	case "price":
		item.Price = value
	case "quantity":
		item.Quantity = value
	}
}
