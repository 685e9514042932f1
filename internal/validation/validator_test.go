package validation_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/cart-csv-parser/internal/schema"
	"github.com/ginjaninja78/cart-csv-parser/internal/validation"
)

const validCart = `Product name,Price,Quantity
Mollis consequat,9.00,2
Tvoluptatem,10.32,1
Scelerisque lacinia,18.90,1
Consectetur adipiscing,28.72,10
Condimentum aliquet,13.90,1
`

func TestValidate(t *testing.T) {
	validator := validation.New(schema.Cart())

	tests := []struct {
		name     string
		contents string
		want     []validation.ValidationError
	}{
		{
			name:     "valid cart: no errors",
			contents: validCart,
			want:     nil,
		},
		{
			name:     "empty contents: no errors",
			contents: "",
			want:     nil,
		},
		{
			name:     "header only: no errors",
			contents: "Product name,Price,Quantity\n",
			want:     nil,
		},
		{
			name:     "whitespace around cells is tolerated",
			contents: "  Product name ,  Price , Quantity \n  Mollis consequat , 9.00 , 2 \n",
			want:     nil,
		},
		{
			name:     "blank lines are invisible to row numbering",
			contents: "\nProduct name,Price,Quantity\n\n\nMollis consequat,9.00,2\n\n",
			want:     nil,
		},
		{
			name:     "wrong header name",
			contents: "Name,Price,Quantity\nMollis consequat,9.00,2\n",
			want: []validation.ValidationError{
				{
					Kind:    validation.KindHeader,
					Row:     0,
					Column:  0,
					Message: `Expected header to be named "Product name" but received Name.`,
				},
			},
		},
		{
			name:     "multiple wrong headers reported independently",
			contents: "Title,Cost,Quantity\nMollis consequat,9.00,2\n",
			want: []validation.ValidationError{
				{
					Kind:    validation.KindHeader,
					Row:     0,
					Column:  0,
					Message: `Expected header to be named "Product name" but received Title.`,
				},
				{
					Kind:    validation.KindHeader,
					Row:     0,
					Column:  1,
					Message: `Expected header to be named "Price" but received Cost.`,
				},
			},
		},
		{
			name:     "short row: one ROW error and no cell errors",
			contents: "Product name,Price,Quantity\nMollis consequat,9.00\n",
			want: []validation.ValidationError{
				{
					Kind:    validation.KindRow,
					Row:     1,
					Column:  -1,
					Message: "Expected row to have 3 cells but received 2.",
				},
			},
		},
		{
			name:     "whitespace-only line counts as a short row",
			contents: "Product name,Price,Quantity\n   \nMollis consequat,9.00,2\n",
			want: []validation.ValidationError{
				{
					Kind:    validation.KindRow,
					Row:     1,
					Column:  -1,
					Message: "Expected row to have 3 cells but received 1.",
				},
			},
		},
		{
			name:     "empty product name cell",
			contents: "Product name,Price,Quantity\n ,9.00,2\n",
			want: []validation.ValidationError{
				{
					Kind:    validation.KindCell,
					Row:     1,
					Column:  0,
					Message: `Expected cell to be a nonempty string but received "".`,
				},
			},
		},
		{
			name:     "non-numeric price cell",
			contents: "Product name,Price,Quantity\nMollis consequat,free,2\n",
			want: []validation.ValidationError{
				{
					Kind:    validation.KindCell,
					Row:     1,
					Column:  1,
					Message: `Expected cell to be a positive number but received "free".`,
				},
			},
		},
		{
			name:     "negative quantity cell",
			contents: "Product name,Price,Quantity\nMollis consequat,2,-10\n",
			want: []validation.ValidationError{
				{
					Kind:    validation.KindCell,
					Row:     1,
					Column:  2,
					Message: `Expected cell to be a positive number but received "-10".`,
				},
			},
		},
		{
			name:     "zero is a valid positive-number cell",
			contents: "Product name,Price,Quantity\nMollis consequat,0,0\n",
			want:     nil,
		},
		{
			name:     "empty numeric cell is rejected",
			contents: "Product name,Price,Quantity\nMollis consequat,,2\n",
			want: []validation.ValidationError{
				{
					Kind:    validation.KindCell,
					Row:     1,
					Column:  1,
					Message: `Expected cell to be a positive number but received "".`,
				},
			},
		},
		{
			name:     "extra cells in a row are ignored",
			contents: "Product name,Price,Quantity\nMollis consequat,9.00,2,unused\n",
			want:     nil,
		},
		{
			name:     "header and body errors accumulate in discovery order",
			contents: "Product name,Cost,Quantity\nMollis consequat,9.00\n,abc,2\n",
			want: []validation.ValidationError{
				{
					Kind:    validation.KindHeader,
					Row:     0,
					Column:  1,
					Message: `Expected header to be named "Price" but received Cost.`,
				},
				{
					Kind:    validation.KindRow,
					Row:     1,
					Column:  -1,
					Message: "Expected row to have 3 cells but received 2.",
				},
				{
					Kind:    validation.KindCell,
					Row:     2,
					Column:  0,
					Message: `Expected cell to be a nonempty string but received "".`,
				},
				{
					Kind:    validation.KindCell,
					Row:     2,
					Column:  1,
					Message: `Expected cell to be a positive number but received "abc".`,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validator.Validate(tt.contents)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateNumericNotation(t *testing.T) {
	validator := validation.New(schema.Cart())

	cart := func(price string) string {
		return "Product name,Price,Quantity\nMollis consequat," + price + ",2\n"
	}

	t.Run("accepts plain decimal notation", func(t *testing.T) {
		for _, price := range []string{"0", "2", "9.00", "10.32", ".5", "+3", "1e2", "1E2"} {
			assert.Empty(t, validator.Validate(cart(price)), "price %q", price)
		}
	})

	t.Run("rejects numbers ParseFloat would accept", func(t *testing.T) {
		for _, price := range []string{"NaN", "nan", "Inf", "+Inf", "Infinity", "0x1p-2", "1_000"} {
			errs := validator.Validate(cart(price))

			require.Len(t, errs, 1, "price %q", price)
			assert.Equal(t, validation.ValidationError{
				Kind:    validation.KindCell,
				Row:     1,
				Column:  1,
				Message: `Expected cell to be a positive number but received "` + price + `".`,
			}, errs[0])
		}
	})
}

func TestValidationErrorError(t *testing.T) {
	err := validation.ValidationError{
		Kind:    validation.KindCell,
		Row:     1,
		Column:  2,
		Message: `Expected cell to be a positive number but received "-10".`,
	}

	assert.Equal(t,
		`[CELL] row 1, column 2: Expected cell to be a positive number but received "-10".`,
		err.Error())
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "HEADER", validation.KindHeader.String())
	assert.Equal(t, "ROW", validation.KindRow.String())
	assert.Equal(t, "CELL", validation.KindCell.String())
}

func TestSplitLines(t *testing.T) {
	lines := validation.SplitLines("a\n\nb\n \nc\n")
	require.Equal(t, []string{"a", "b", " ", "c"}, lines)
}

func TestFormatErrors(t *testing.T) {
	t.Run("no errors", func(t *testing.T) {
		assert.Equal(t, "No validation errors.", validation.FormatErrors(nil))
	})

	t.Run("lists every error with its index", func(t *testing.T) {
		errs := []validation.ValidationError{
			{Kind: validation.KindRow, Row: 1, Column: -1, Message: "Expected row to have 3 cells but received 2."},
		}

		report := validation.FormatErrors(errs)
		assert.Contains(t, report, "1 error(s)")
		assert.Contains(t, report, "1. [ROW] row 1, column -1: Expected row to have 3 cells but received 2.")
	})
}
