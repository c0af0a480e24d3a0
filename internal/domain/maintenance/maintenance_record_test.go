package maintenance

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMaintenanceRecord(t *testing.T) {
	vehicleID := uuid.New()
	ruleID := uuid.New()
	performer := uuid.New()
	performedAt := time.Now().Add(-time.Hour)

	t.Run("logs performed maintenance", func(t *testing.T) {
		statusID := uuid.New()
		record, err := NewMaintenanceRecord(vehicleID, ruleID, performer, &statusID, performedAt, "replaced oil filter")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, record.ID)
		assert.Equal(t, vehicleID, record.VehicleID)
		assert.Equal(t, performer, record.PerformedBy)
		require.NotNil(t, record.VehicleStatusID)
		assert.Equal(t, statusID, *record.VehicleStatusID)
	})

	t.Run("status snapshot is optional", func(t *testing.T) {
		record, err := NewMaintenanceRecord(vehicleID, ruleID, performer, nil, performedAt, "")
		require.NoError(t, err)
		assert.Nil(t, record.VehicleStatusID)
	})

	t.Run("keeps an externally assigned ID", func(t *testing.T) {
		external := uuid.New()
		record, err := NewMaintenanceRecordWithID(external, vehicleID, ruleID, performer, nil, performedAt, "")
		require.NoError(t, err)
		assert.Equal(t, external, record.ID)
	})

	t.Run("rejects nil external ID", func(t *testing.T) {
		_, err := NewMaintenanceRecordWithID(uuid.Nil, vehicleID, ruleID, performer, nil, performedAt, "")
		assert.ErrorIs(t, err, ErrRecordMissingReference)
	})

	t.Run("rejects missing references", func(t *testing.T) {
		_, err := NewMaintenanceRecord(uuid.Nil, ruleID, performer, nil, performedAt, "")
		assert.ErrorIs(t, err, ErrRecordMissingReference)

		_, err = NewMaintenanceRecord(vehicleID, ruleID, uuid.Nil, nil, performedAt, "")
		assert.ErrorIs(t, err, ErrRecordMissingReference)
	})

	t.Run("rejects zero performed-at", func(t *testing.T) {
		_, err := NewMaintenanceRecord(vehicleID, ruleID, performer, nil, time.Time{}, "")
		assert.ErrorIs(t, err, ErrRecordPerformedAtZero)
	})

	t.Run("rejects oversized details", func(t *testing.T) {
		_, err := NewMaintenanceRecord(vehicleID, ruleID, performer, nil, performedAt, strings.Repeat("x", 2001))
		assert.ErrorIs(t, err, ErrRecordDetailsTooLong)
	})
}
