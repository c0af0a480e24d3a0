package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVIN(t *testing.T) {
	t.Run("accepts a valid VIN", func(t *testing.T) {
		vin, err := NewVIN("1HGBH41JXMN109186")
		require.NoError(t, err)
		assert.Equal(t, "1HGBH41JXMN109186", vin.String())
	})

	t.Run("normalizes case and whitespace", func(t *testing.T) {
		vin, err := NewVIN("  1hgbh41jxmn109186  ")
		require.NoError(t, err)
		assert.Equal(t, "1HGBH41JXMN109186", vin.String())
	})

	t.Run("round-trips through canonical form", func(t *testing.T) {
		vin, err := NewVIN("1HGBH41JXMN109186")
		require.NoError(t, err)
		again, err := NewVIN(vin.String())
		require.NoError(t, err)
		assert.True(t, vin.Equals(again))
	})

	t.Run("accepts all-ones VIN", func(t *testing.T) {
		// Weighted sum of seventeen 1s is 89, 89 mod 11 is 1.
		_, err := NewVIN("11111111111111111")
		require.NoError(t, err)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := NewVIN("   ")
		assert.ErrorIs(t, err, ErrVINEmpty)
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := NewVIN("1HGBH41JX")
		assert.ErrorIs(t, err, ErrVINLength)
	})

	t.Run("rejects forbidden letters", func(t *testing.T) {
		_, err := NewVIN("1HGBH41JXMN10918O")
		assert.ErrorIs(t, err, ErrVINCharacters)
	})

	t.Run("rejects bad check digit", func(t *testing.T) {
		_, err := NewVIN("1HGBH41JXMN109187")
		assert.ErrorIs(t, err, ErrVINCheckDigit)
	})
}

func TestVINSections(t *testing.T) {
	vin, err := NewVIN("1HGBH41JXMN109186")
	require.NoError(t, err)

	assert.Equal(t, "1HG", vin.WMI())
	assert.Equal(t, "BH41JX", vin.VDS())
	assert.Equal(t, "MN109186", vin.VIS())
	assert.Equal(t, byte('M'), vin.ModelYearCode())
	assert.Equal(t, byte('N'), vin.PlantCode())
}
