// =============================================================================
// Cart CSV Parser - Total Aggregation
// =============================================================================
//
// Money math runs on shopspring/decimal so sums of prices like 28.72 stay
// exact instead of accumulating float error. CalcTotal returns the raw sum;
// rounding to 2 decimal places happens only when the final ParseResult is
// assembled.
//
// =============================================================================

package cartparser

import (
	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/cart-csv-parser/internal/types"
)

// CalcTotal returns the sum over all items of price * quantity, with 0 as the
// additive identity for an empty sequence. The result is not rounded.
func CalcTotal(items []types.CartItem) float64 {
	sum := decimal.Zero

	for _, item := range items {
		price := decimal.NewFromFloat(item.Price)
		quantity := decimal.NewFromFloat(item.Quantity)
		sum = sum.Add(price.Mul(quantity))
	}

	total, _ := sum.Float64()
	return total
}

// roundTotal rounds a total to 2 decimal places, half away from zero.
func roundTotal(total float64) float64 {
	rounded, _ := decimal.NewFromFloat(total).Round(2).Float64()
	return rounded
}
