package validation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type line struct {
	Name     string          `json:"name" validate:"required,max=5"`
	Quantity int             `json:"quantity" validate:"gt=0"`
	Price    decimal.Decimal `json:"price" validate:"money"`
}

type form struct {
	Title    string           `json:"title" validate:"required,min=2"`
	Discount *decimal.Decimal `json:"discount" validate:"omitempty,money"`
	Lines    []line           `json:"lines" validate:"dive"`
}

func TestStruct(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		d := decimal.RequireFromString("10.50")
		err := Struct(form{
			Title:    "ok",
			Discount: &d,
			Lines:    []line{{Name: "a", Quantity: 1, Price: decimal.Zero}},
		})
		assert.NoError(t, err)
	})

	t.Run("Empty lines are valid", func(t *testing.T) {
		assert.NoError(t, Struct(form{Title: "ok"}))
	})

	t.Run("Field errors keyed by json path", func(t *testing.T) {
		err := Struct(form{
			Title: "x",
			Lines: []line{
				{Name: "", Quantity: 0, Price: decimal.NewFromInt(-1)},
			},
		})
		require.Error(t, err)

		details, ok := Details(err)
		require.True(t, ok)
		assert.Equal(t, "must be at least 2 characters", details["title"])
		assert.Equal(t, "is required", details["lines[0].name"])
		assert.Equal(t, "must be greater than 0", details["lines[0].quantity"])
		assert.Contains(t, details["lines[0].price"], "non-negative")
	})

	t.Run("Too many fractional digits", func(t *testing.T) {
		d := decimal.RequireFromString("1.005")
		err := Struct(form{Title: "ok", Discount: &d})

		details, ok := Details(err)
		require.True(t, ok)
		assert.Contains(t, details, "discount")
	})

	t.Run("Trailing zeros are not extra precision", func(t *testing.T) {
		d := decimal.RequireFromString("9000.000")
		assert.NoError(t, Struct(form{Title: "ok", Discount: &d}))
	})
}

func TestDetailsThroughWrapping(t *testing.T) {
	base := &Error{Fields: map[string]string{"phone_number": "is required"}}
	wrapped := fmt.Errorf("invalid order: %w", base)

	details, ok := Details(wrapped)
	require.True(t, ok)
	assert.Equal(t, "is required", details["phone_number"])

	_, ok = Details(errors.New("plain"))
	assert.False(t, ok)
}

func TestErrorMessageIsSorted(t *testing.T) {
	err := &Error{Fields: map[string]string{"b": "is invalid", "a": "is required"}}
	assert.Equal(t, "validation failed: a is required; b is invalid", err.Error())
}
