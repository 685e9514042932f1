package xlsxwriter_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/cart-csv-parser/internal/types"
	"github.com/ginjaninja78/cart-csv-parser/internal/xlsxwriter"
)

func TestWrite(t *testing.T) {
	result := &types.ParseResult{
		Items: []types.CartItem{
			{ID: "id-1", Name: "Mollis consequat", Price: 9, Quantity: 2},
			{ID: "id-2", Name: "Tvoluptatem", Price: 10.32, Quantity: 1},
		},
		Total: 28.32,
	}

	path := filepath.Join(t.TempDir(), "receipt.xlsx")
	require.NoError(t, xlsxwriter.Write(result, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	const sheet = "Receipt"
	assert.Equal(t, []string{sheet}, f.GetSheetList())

	cell := func(ref string) string {
		value, err := f.GetCellValue(sheet, ref)
		require.NoError(t, err)
		return value
	}

	// Header row.
	assert.Equal(t, "Item ID", cell("A1"))
	assert.Equal(t, "Product name", cell("B1"))
	assert.Equal(t, "Price", cell("C1"))
	assert.Equal(t, "Quantity", cell("D1"))
	assert.Equal(t, "Subtotal", cell("E1"))

	// Item rows, in parse order.
	assert.Equal(t, "id-1", cell("A2"))
	assert.Equal(t, "Mollis consequat", cell("B2"))
	assert.Equal(t, "2", cell("D2"))
	assert.Equal(t, "id-2", cell("A3"))
	assert.Equal(t, "Tvoluptatem", cell("B3"))

	// Total row sits under the items.
	assert.Equal(t, "Total", cell("D4"))
	assert.Equal(t, "28.32", cell("E4"))
}

func TestWriteWithOptions(t *testing.T) {
	result := &types.ParseResult{Total: 0}

	path := filepath.Join(t.TempDir(), "receipt.xlsx")
	options := xlsxwriter.GenerateOptions{SheetName: "Order 42"}
	require.NoError(t, xlsxwriter.WriteWithOptions(result, path, options))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Order 42"}, f.GetSheetList())

	// No items: the total row directly follows the header.
	value, err := f.GetCellValue("Order 42", "D2")
	require.NoError(t, err)
	assert.Equal(t, "Total", value)
}
