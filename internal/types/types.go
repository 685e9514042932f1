// =============================================================================
// Cart CSV Parser - Shared Types
// =============================================================================
//
// This package contains the shared data model used across multiple modules to
// avoid import cycles. Types defined here are used by:
//   - cartparser
//   - xlsxwriter
//   - cmd
//
// =============================================================================

package types

// =============================================================================
// CART TYPES
// =============================================================================

// CartItem is a single parsed line of a cart file.
// It is built only from rows that already passed validation, so Price and
// Quantity are always >= 0. Immutable once built.
type CartItem struct {
	// ID is the externally generated unique identifier for the item.
	ID string

	// Name is the trimmed product name cell.
	Name string

	// Price is the per-unit price.
	Price float64

	// Quantity is the number of units.
	Quantity float64
}

// ParseResult is the outcome of a successful parse of a cart file.
type ParseResult struct {
	// Items holds one item per body row, in file row order.
	Items []CartItem

	// Total is the sum of price*quantity over Items, rounded to 2 decimal
	// places.
	Total float64
}
