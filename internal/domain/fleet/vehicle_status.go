package fleet

import (
	"github.com/fleetcare/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Vehicle status validation errors
var (
	ErrOdometerNegative    = shared.NewDomainError("INVALID_ODOMETER", "Odometer reading cannot be negative")
	ErrEngineHoursNegative = shared.NewDomainError("INVALID_ENGINE_HOURS", "Engine hour reading cannot be negative")
	ErrFuelLevelRange      = shared.NewDomainError("INVALID_FUEL_LEVEL", "Fuel level must be between 0 and 100 percent")
	ErrStatusNotesTooLong  = shared.NewDomainError("INVALID_NOTES", "Status notes cannot exceed 2000 characters")
)

const maxStatusNotesLength = 2000

// VehicleStatus is an append-only snapshot of a vehicle's meters at a
// point in time. Readings are optional since not every vehicle carries
// every meter.
type VehicleStatus struct {
	shared.BaseEntity
	VehicleID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	ReportedBy  uuid.UUID        `gorm:"type:uuid;not null"`
	Odometer    *decimal.Decimal `gorm:"type:decimal(12,2)"`
	EngineHours *decimal.Decimal `gorm:"type:decimal(12,2)"`
	FuelLevel   *int             `gorm:""`
	Notes       string           `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (VehicleStatus) TableName() string {
	return "vehicle_statuses"
}

// NewVehicleStatus records a status snapshot for a vehicle
func NewVehicleStatus(vehicleID, reportedBy uuid.UUID, odometer, engineHours *decimal.Decimal, fuelLevel *int, notes string) (*VehicleStatus, error) {
	if odometer != nil && odometer.IsNegative() {
		return nil, ErrOdometerNegative
	}
	if engineHours != nil && engineHours.IsNegative() {
		return nil, ErrEngineHoursNegative
	}
	if fuelLevel != nil && (*fuelLevel < 0 || *fuelLevel > 100) {
		return nil, ErrFuelLevelRange
	}
	if len(notes) > maxStatusNotesLength {
		return nil, ErrStatusNotesTooLong
	}

	return &VehicleStatus{
		BaseEntity:  shared.NewBaseEntity(),
		VehicleID:   vehicleID,
		ReportedBy:  reportedBy,
		Odometer:    odometer,
		EngineHours: engineHours,
		FuelLevel:   fuelLevel,
		Notes:       notes,
	}, nil
}
