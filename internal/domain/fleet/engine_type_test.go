package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngineType(t *testing.T) {
	t.Run("maps synonyms onto standard types", func(t *testing.T) {
		cases := map[string]EngineType{
			"Gasoline": EngineTypeGasoline(),
			"petrol":   EngineTypeGasoline(),
			"GAS":      EngineTypeGasoline(),
			"Diesel":   EngineTypeDiesel(),
			"Electric": EngineTypeElectric(),
			"EV":       EngineTypeElectric(),
			"bev":      EngineTypeElectric(),
		}
		for input, want := range cases {
			got, err := NewEngineType(input)
			require.NoError(t, err, input)
			assert.True(t, got.Equals(want), input)
		}
	})

	t.Run("normalizes custom types", func(t *testing.T) {
		et, err := NewEngineType("Hydrogen Fuel-Cell")
		require.NoError(t, err)
		assert.Equal(t, "hydrogen_fuel_cell", et.String())
		assert.Equal(t, "Hydrogen Fuel Cell", et.DisplayName())
		assert.True(t, et.IsAlternativeFuel())
		assert.False(t, et.IsStandard())
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := NewEngineType("  ")
		assert.ErrorIs(t, err, ErrEngineTypeEmpty)
	})

	t.Run("classifies fuel families", func(t *testing.T) {
		assert.True(t, EngineTypeGasoline().UsesFossilFuel())
		assert.True(t, EngineTypeDiesel().UsesFossilFuel())
		assert.False(t, EngineTypeElectric().UsesFossilFuel())
		assert.True(t, EngineTypeElectric().IsElectricPowered())
		assert.False(t, EngineTypeDiesel().IsElectricPowered())
	})

	t.Run("display names are capitalized", func(t *testing.T) {
		assert.Equal(t, "Gasoline", EngineTypeGasoline().DisplayName())
		assert.Equal(t, "Diesel", EngineTypeDiesel().DisplayName())
		assert.Equal(t, "Electric", EngineTypeElectric().DisplayName())
	})

	t.Run("standard set has three members", func(t *testing.T) {
		assert.Len(t, StandardEngineTypes(), 3)
	})
}
