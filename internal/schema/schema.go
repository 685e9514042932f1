// =============================================================================
// Cart CSV Parser - Schema Module
// =============================================================================
//
// This module defines the column schema for cart CSV files. The schema is a
// small ordered configuration table, not a set of compile-time types: the
// validator and the line parser both walk the column list at runtime, so a
// change to column count or order is a change to the table, not to logic.
//
// SCHEMA STRUCTURE (cart files):
//
//   | Header       | Output Key | Type            |
//   |--------------|------------|-----------------|
//   | Product name | name       | string          |
//   | Price        | price      | positive number |
//   | Quantity     | quantity   | positive number |
//
// =============================================================================

package schema

// =============================================================================
// COLUMN TYPES
// =============================================================================

// ColumnType identifies the value rule applied to a column's cells.
type ColumnType int

const (
	// TypeString accepts any nonempty trimmed text.
	TypeString ColumnType = iota

	// TypePositiveNumber accepts decimal notation coercing to a value >= 0.
	TypePositiveNumber
)

// String returns the configuration name of the column type.
func (t ColumnType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypePositiveNumber:
		return "positive_number"
	default:
		return "unknown"
	}
}

// =============================================================================
// COLUMN AND SCHEMA STRUCTURES
// =============================================================================

// Column describes a single expected CSV column.
type Column struct {
	// Name is the exact header label expected in the file's header row.
	Name string

	// Key is the output field name the column maps to on a parsed item.
	Key string

	// Type is the value rule applied to the column's body cells.
	Type ColumnType
}

// Schema is an ordered, immutable sequence of columns. Construct one with
// Cart; there is no mutation API.
type Schema struct {
	columns []Column
}

// Cart returns the fixed three-column schema for shopping cart files.
func Cart() *Schema {
	return &Schema{
		columns: []Column{
			{Name: "Product name", Key: "name", Type: TypeString},
			{Name: "Price", Key: "price", Type: TypePositiveNumber},
			{Name: "Quantity", Key: "quantity", Type: TypePositiveNumber},
		},
	}
}

// =============================================================================
// READ-ONLY ACCESSORS
// =============================================================================

// Len returns the number of columns in the schema.
func (s *Schema) Len() int {
	return len(s.columns)
}

// Column returns the column at index i. Panics if i is out of range, matching
// slice semantics.
func (s *Schema) Column(i int) Column {
	return s.columns[i]
}

// Columns returns a copy of the column list so callers cannot mutate the
// schema through the returned slice.
func (s *Schema) Columns() []Column {
	out := make([]Column, len(s.columns))
	copy(out, s.columns)
	return out
}

// Headers returns the expected header labels in column order.
func (s *Schema) Headers() []string {
	out := make([]string, len(s.columns))
	for i, col := range s.columns {
		out[i] = col.Name
	}
	return out
}
