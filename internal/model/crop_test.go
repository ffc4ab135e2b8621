package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog_PreservesOrder(t *testing.T) {
	c, err := NewCatalog([]CropDefinition{
		{Kind: Potato, GrowthDays: 3, SeedPrice: 5, SellPrice: 15},
		{Kind: Wheat, GrowthDays: 4, SeedPrice: 10, SellPrice: 25},
	})
	require.NoError(t, err)

	assert.Equal(t, []CropKind{Potato, Wheat}, c.Kinds())
	assert.Equal(t, 2, c.Len())

	def, ok := c.Get(Wheat)
	require.True(t, ok)
	assert.Equal(t, 4, def.GrowthDays)

	_, ok = c.Get(Corn)
	assert.False(t, ok)
}

func TestNewCatalog_RejectsBadDefinitions(t *testing.T) {
	cases := []struct {
		name string
		defs []CropDefinition
	}{
		{"empty", nil},
		{"missing kind", []CropDefinition{{GrowthDays: 3}}},
		{"duplicate kind", []CropDefinition{
			{Kind: Wheat, GrowthDays: 4},
			{Kind: Wheat, GrowthDays: 2},
		}},
		{"zero growth days", []CropDefinition{{Kind: Wheat, GrowthDays: 0}}},
		{"negative price", []CropDefinition{{Kind: Wheat, GrowthDays: 4, SeedPrice: -1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCatalog(tc.defs)
			assert.Error(t, err)
		})
	}
}

func TestDefaultCatalog_StockCrops(t *testing.T) {
	c := DefaultCatalog()
	assert.Equal(t, []CropKind{Wheat, Corn, Potato, Carrot}, c.Kinds())

	wheat, ok := c.Get(Wheat)
	require.True(t, ok)
	assert.Equal(t, 4, wheat.GrowthDays)
	assert.Equal(t, 10, wheat.SeedPrice)
	assert.Equal(t, 25, wheat.SellPrice)

	// Every stock crop turns a profit on harvest.
	for _, kind := range c.Kinds() {
		def, _ := c.Get(kind)
		assert.Greater(t, def.SellPrice, def.SeedPrice, "crop %s", kind)
	}
}
