package fleet

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustVIN(t *testing.T) VIN {
	t.Helper()
	vin, err := NewVIN("1HGBH41JXMN109186")
	require.NoError(t, err)
	return vin
}

func mustPlate(t *testing.T) LicensePlate {
	t.Helper()
	plate, err := NewLicensePlate("123ABC45")
	require.NoError(t, err)
	return plate
}

func TestNewVehicle(t *testing.T) {
	actor := uuid.New()

	t.Run("registers a valid vehicle", func(t *testing.T) {
		v, err := NewVehicle(actor, "Honda", "Civic", 2021, mustVIN(t), mustPlate(t), EngineTypeGasoline())
		require.NoError(t, err)
		assert.Equal(t, "Honda", v.Make)
		assert.Equal(t, "Civic", v.Model)
		assert.Equal(t, 2021, v.Year)
		assert.Equal(t, "2021 Honda Civic", v.DisplayName())
		require.NotNil(t, v.GetCreatedBy())
		assert.Equal(t, actor, *v.GetCreatedBy())
		assert.Equal(t, 1, v.GetVersion())
	})

	t.Run("trims make and model", func(t *testing.T) {
		v, err := NewVehicle(actor, "  Honda  ", "  Civic  ", 2021, mustVIN(t), mustPlate(t), EngineTypeGasoline())
		require.NoError(t, err)
		assert.Equal(t, "Honda", v.Make)
		assert.Equal(t, "Civic", v.Model)
	})

	t.Run("rejects blank make", func(t *testing.T) {
		_, err := NewVehicle(actor, "  ", "Civic", 2021, mustVIN(t), mustPlate(t), EngineTypeGasoline())
		assert.ErrorIs(t, err, ErrMakeEmpty)
	})

	t.Run("rejects blank model", func(t *testing.T) {
		_, err := NewVehicle(actor, "Honda", "", 2021, mustVIN(t), mustPlate(t), EngineTypeGasoline())
		assert.ErrorIs(t, err, ErrModelEmpty)
	})

	t.Run("rejects years outside range", func(t *testing.T) {
		_, err := NewVehicle(actor, "Honda", "Civic", 1949, mustVIN(t), mustPlate(t), EngineTypeGasoline())
		require.Error(t, err)

		_, err = NewVehicle(actor, "Honda", "Civic", time.Now().Year()+1, mustVIN(t), mustPlate(t), EngineTypeGasoline())
		require.Error(t, err)
	})

	t.Run("rejects zero-valued identity fields", func(t *testing.T) {
		_, err := NewVehicle(actor, "Honda", "Civic", 2021, VIN{}, mustPlate(t), EngineTypeGasoline())
		assert.ErrorIs(t, err, ErrVINEmpty)

		_, err = NewVehicle(actor, "Honda", "Civic", 2021, mustVIN(t), LicensePlate{}, EngineTypeGasoline())
		assert.ErrorIs(t, err, ErrPlateEmpty)

		_, err = NewVehicle(actor, "Honda", "Civic", 2021, mustVIN(t), mustPlate(t), EngineType{})
		assert.ErrorIs(t, err, ErrEngineTypeEmpty)
	})
}

func TestVehicleMutations(t *testing.T) {
	actor := uuid.New()
	updater := uuid.New()

	t.Run("change license plate bumps version and updater", func(t *testing.T) {
		v, err := NewVehicle(actor, "Honda", "Civic", 2021, mustVIN(t), mustPlate(t), EngineTypeGasoline())
		require.NoError(t, err)

		newPlate, err := NewLicensePlate("B456CDE")
		require.NoError(t, err)
		require.NoError(t, v.ChangeLicensePlate(newPlate, updater))

		assert.Equal(t, "B456CDE", v.LicensePlate.String())
		assert.Equal(t, 2, v.GetVersion())
		require.NotNil(t, v.GetUpdatedBy())
		assert.Equal(t, updater, *v.GetUpdatedBy())
	})

	t.Run("change engine type rejects zero value", func(t *testing.T) {
		v, err := NewVehicle(actor, "Honda", "Civic", 2021, mustVIN(t), mustPlate(t), EngineTypeGasoline())
		require.NoError(t, err)
		assert.ErrorIs(t, v.ChangeEngineType(EngineType{}, updater), ErrEngineTypeEmpty)
	})
}

func TestNewVehicleStatus(t *testing.T) {
	vehicleID := uuid.New()
	reporter := uuid.New()

	t.Run("records readings", func(t *testing.T) {
		odo := decimal.NewFromInt(125000)
		hours := decimal.NewFromFloat(3210.5)
		fuel := 65
		status, err := NewVehicleStatus(vehicleID, reporter, &odo, &hours, &fuel, "pre-trip check")
		require.NoError(t, err)
		assert.Equal(t, vehicleID, status.VehicleID)
		assert.Equal(t, reporter, status.ReportedBy)
		assert.True(t, status.Odometer.Equal(odo))
	})

	t.Run("readings are optional", func(t *testing.T) {
		status, err := NewVehicleStatus(vehicleID, reporter, nil, nil, nil, "")
		require.NoError(t, err)
		assert.Nil(t, status.Odometer)
		assert.Nil(t, status.FuelLevel)
	})

	t.Run("rejects negative odometer", func(t *testing.T) {
		odo := decimal.NewFromInt(-1)
		_, err := NewVehicleStatus(vehicleID, reporter, &odo, nil, nil, "")
		assert.ErrorIs(t, err, ErrOdometerNegative)
	})

	t.Run("rejects fuel level outside percent range", func(t *testing.T) {
		fuel := 101
		_, err := NewVehicleStatus(vehicleID, reporter, nil, nil, &fuel, "")
		assert.ErrorIs(t, err, ErrFuelLevelRange)
	})
}

func TestParseVehicleSortField(t *testing.T) {
	t.Run("parses known fields case-insensitively", func(t *testing.T) {
		for _, input := range []string{"make", "MODEL", "Year", "vin", "license_plate", "engine_type", "created_at", "updated_at"} {
			field, err := ParseVehicleSortField(input)
			require.NoError(t, err, input)
			assert.NotEmpty(t, field.ColumnName())
		}
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		_, err := ParseVehicleSortField("color")
		assert.ErrorIs(t, err, ErrUnknownSortField)
	})
}
