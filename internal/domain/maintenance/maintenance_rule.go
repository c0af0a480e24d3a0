package maintenance

import (
	"time"

	"github.com/fleetcare/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Maintenance rule validation errors
var (
	ErrIntervalValueInvalid = shared.NewDomainError("INVALID_INTERVAL_VALUE", "Maintenance interval value must be positive")
	ErrThresholdRange       = shared.NewDomainError("INVALID_THRESHOLD", "Thresholds must be between 0 and 100")
	ErrThresholdOrder       = shared.NewDomainError("INVALID_THRESHOLD", "Yellow threshold cannot exceed red threshold")
)

// MaintenanceRule schedules a maintenance type for a vehicle: do this
// work every N kilometers, engine hours or years. The yellow and red
// thresholds mark, as a percentage of the interval consumed, when the
// vehicle enters warning and overdue states.
type MaintenanceRule struct {
	shared.AuditedAggregateRoot
	VehicleID         uuid.UUID    `gorm:"type:uuid;not null;index"`
	MaintenanceTypeID uuid.UUID    `gorm:"type:uuid;not null;index"`
	IntervalType      IntervalType `gorm:"type:varchar(20);not null"`
	IntervalValue     int          `gorm:"not null"`
	YellowThreshold   int          `gorm:"not null"`
	RedThreshold      int          `gorm:"not null"`
}

// TableName returns the table name for GORM
func (MaintenanceRule) TableName() string {
	return "maintenance_rules"
}

// NewMaintenanceRule creates a new maintenance rule
func NewMaintenanceRule(createdBy, vehicleID, maintenanceTypeID uuid.UUID, intervalType IntervalType, intervalValue, yellowThreshold, redThreshold int) (*MaintenanceRule, error) {
	if !intervalType.IsValid() {
		return nil, ErrUnknownIntervalType
	}
	if intervalValue <= 0 {
		return nil, ErrIntervalValueInvalid
	}
	if err := validateThresholds(yellowThreshold, redThreshold); err != nil {
		return nil, err
	}

	return &MaintenanceRule{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(createdBy),
		VehicleID:            vehicleID,
		MaintenanceTypeID:    maintenanceTypeID,
		IntervalType:         intervalType,
		IntervalValue:        intervalValue,
		YellowThreshold:      yellowThreshold,
		RedThreshold:         redThreshold,
	}, nil
}

func validateThresholds(yellow, red int) error {
	if yellow < 0 || yellow > 100 || red < 0 || red > 100 {
		return ErrThresholdRange
	}
	if yellow > red {
		return ErrThresholdOrder
	}
	return nil
}

// UpdateSchedule replaces the interval and thresholds
func (r *MaintenanceRule) UpdateSchedule(intervalType IntervalType, intervalValue, yellowThreshold, redThreshold int, updatedBy uuid.UUID) error {
	if !intervalType.IsValid() {
		return ErrUnknownIntervalType
	}
	if intervalValue <= 0 {
		return ErrIntervalValueInvalid
	}
	if err := validateThresholds(yellowThreshold, redThreshold); err != nil {
		return err
	}

	r.IntervalType = intervalType
	r.IntervalValue = intervalValue
	r.YellowThreshold = yellowThreshold
	r.RedThreshold = redThreshold
	r.SetUpdatedBy(updatedBy)
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}
