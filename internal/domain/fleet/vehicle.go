package fleet

import (
	"fmt"
	"strings"
	"time"

	"github.com/fleetcare/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Vehicle validation errors
var (
	ErrMakeEmpty    = shared.NewDomainError("INVALID_MAKE", "Vehicle make cannot be empty")
	ErrMakeTooLong  = shared.NewDomainError("INVALID_MAKE", "Vehicle make cannot exceed 100 characters")
	ErrModelEmpty   = shared.NewDomainError("INVALID_MODEL", "Vehicle model cannot be empty")
	ErrModelTooLong = shared.NewDomainError("INVALID_MODEL", "Vehicle model cannot exceed 100 characters")
)

const (
	maxMakeLength  = 100
	maxModelLength = 100
	minVehicleYear = 1950
)

// Vehicle is the aggregate root for a fleet vehicle. Make, model and
// year are fixed at registration; identity is carried by VIN and
// license plate, both unique across the fleet.
type Vehicle struct {
	shared.AuditedAggregateRoot
	Make         string       `gorm:"type:varchar(100);not null"`
	Model        string       `gorm:"type:varchar(100);not null"`
	Year         int          `gorm:"not null"`
	VIN          VIN          `gorm:"type:varchar(17);not null;uniqueIndex:idx_vehicles_vin"`
	LicensePlate LicensePlate `gorm:"type:varchar(8);not null;uniqueIndex:idx_vehicles_license_plate"`
	EngineType   EngineType   `gorm:"type:varchar(50);not null"`
}

// TableName returns the table name for GORM
func (Vehicle) TableName() string {
	return "vehicles"
}

// NewVehicle registers a new vehicle
func NewVehicle(createdBy uuid.UUID, make, model string, year int, vin VIN, plate LicensePlate, engineType EngineType) (*Vehicle, error) {
	make = strings.TrimSpace(make)
	model = strings.TrimSpace(model)
	if err := validateMake(make); err != nil {
		return nil, err
	}
	if err := validateModel(model); err != nil {
		return nil, err
	}
	if err := validateYear(year); err != nil {
		return nil, err
	}
	if vin.IsZero() {
		return nil, ErrVINEmpty
	}
	if plate.IsZero() {
		return nil, ErrPlateEmpty
	}
	if engineType.IsZero() {
		return nil, ErrEngineTypeEmpty
	}

	return &Vehicle{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(createdBy),
		Make:                 make,
		Model:                model,
		Year:                 year,
		VIN:                  vin,
		LicensePlate:         plate,
		EngineType:           engineType,
	}, nil
}

func validateMake(make string) error {
	if make == "" {
		return ErrMakeEmpty
	}
	if len(make) > maxMakeLength {
		return ErrMakeTooLong
	}
	return nil
}

func validateModel(model string) error {
	if model == "" {
		return ErrModelEmpty
	}
	if len(model) > maxModelLength {
		return ErrModelTooLong
	}
	return nil
}

func validateYear(year int) error {
	maxYear := time.Now().Year()
	if year < minVehicleYear || year > maxYear {
		return shared.NewDomainError("INVALID_YEAR",
			fmt.Sprintf("Vehicle year must be between %d and %d", minVehicleYear, maxYear))
	}
	return nil
}

// ChangeLicensePlate replaces the plate, e.g. after re-registration
func (v *Vehicle) ChangeLicensePlate(plate LicensePlate, updatedBy uuid.UUID) error {
	if plate.IsZero() {
		return ErrPlateEmpty
	}
	v.LicensePlate = plate
	v.SetUpdatedBy(updatedBy)
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
	return nil
}

// ChangeEngineType records an engine swap or reclassification
func (v *Vehicle) ChangeEngineType(engineType EngineType, updatedBy uuid.UUID) error {
	if engineType.IsZero() {
		return ErrEngineTypeEmpty
	}
	v.EngineType = engineType
	v.SetUpdatedBy(updatedBy)
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
	return nil
}

// DisplayName returns "<year> <make> <model>" for listings
func (v *Vehicle) DisplayName() string {
	return fmt.Sprintf("%d %s %s", v.Year, v.Make, v.Model)
}
