// =============================================================================
// Cart CSV Parser - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Cart CSV Parser CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   cartparser parse      - Parse cart CSV files and print items and totals
//   cartparser validate   - Print the detailed validation report for a file
//   cartparser export     - Parse a cart file and write an XLSX receipt
//   cartparser version    - Display the application version
//
// ARCHITECTURE:
//   - cmd/        : CLI command definitions (Cobra)
//   - internal/   : Core business logic (not for external import)
//   - pkg/        : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/cart-csv-parser/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}
