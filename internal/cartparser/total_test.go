package cartparser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ginjaninja78/cart-csv-parser/internal/cartparser"
	"github.com/ginjaninja78/cart-csv-parser/internal/types"
)

func TestCalcTotal(t *testing.T) {
	items := []types.CartItem{
		{ID: "a", Name: "Mollis consequat", Price: 9.00, Quantity: 2},
		{ID: "b", Name: "Tvoluptatem", Price: 10.32, Quantity: 1},
		{ID: "c", Name: "Scelerisque lacinia", Price: 18.90, Quantity: 1},
		{ID: "d", Name: "Consectetur adipiscing", Price: 28.72, Quantity: 10},
		{ID: "e", Name: "Condimentum aliquet", Price: 13.90, Quantity: 1},
	}

	t.Run("empty sequence sums to zero", func(t *testing.T) {
		assert.Equal(t, 0.0, cartparser.CalcTotal(nil))
		assert.Equal(t, 0.0, cartparser.CalcTotal([]types.CartItem{}))
	})

	t.Run("sums price times quantity", func(t *testing.T) {
		assert.Equal(t, 348.32, cartparser.CalcTotal(items))
	})

	t.Run("order independent", func(t *testing.T) {
		reversed := make([]types.CartItem, len(items))
		for i, item := range items {
			reversed[len(items)-1-i] = item
		}

		assert.Equal(t, cartparser.CalcTotal(items), cartparser.CalcTotal(reversed))
	})

	t.Run("decimal math avoids float drift", func(t *testing.T) {
		// Naive float64 summation of 0.1*3 gives 0.30000000000000004.
		got := cartparser.CalcTotal([]types.CartItem{
			{Price: 0.1, Quantity: 3},
		})
		assert.Equal(t, 0.3, got)
	})

	t.Run("single item with zero quantity", func(t *testing.T) {
		got := cartparser.CalcTotal([]types.CartItem{
			{Price: 9.99, Quantity: 0},
		})
		assert.Equal(t, 0.0, got)
	})
}
