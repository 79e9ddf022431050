package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStickInput_ToStick(t *testing.T) {
	in := StickInput{
		Name:       "  Sienna ",
		Price:      decimal.NewFromInt(5000),
		Flavors:    []string{" wood", "berry "},
		HasCapsule: true,
		Strength:   StrengthMedium,
		CategoryID: 3,
	}

	s := in.ToStick()

	assert.Equal(t, "Sienna", s.Name)
	assert.Equal(t, []string{"berry", "wood"}, s.Flavors)
	assert.True(t, s.HasCapsule)
	assert.Equal(t, int64(3), s.CategoryID)
	assert.Zero(t, s.ID)
}

func TestDeviceInput_ToDevice(t *testing.T) {
	hit := true
	d := DeviceInput{Name: "Cap", Color: ColorRed, IsHit: &hit, Price: decimal.NewFromInt(10)}.ToDevice()

	assert.Equal(t, ColorRed, d.Color)
	assert.Same(t, &hit, d.IsHit)
	assert.True(t, d.Price.Equal(decimal.NewFromInt(10)))
}
