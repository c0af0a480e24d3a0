package maintenance

import (
	"time"

	"github.com/fleetcare/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Maintenance record validation errors
var (
	ErrRecordPerformedAtZero  = shared.NewDomainError("INVALID_PERFORMED_AT", "Performed-at timestamp is required")
	ErrRecordDetailsTooLong   = shared.NewDomainError("INVALID_DETAILS", "Record details cannot exceed 2000 characters")
	ErrRecordMissingReference = shared.NewDomainError("INVALID_REFERENCE", "Record references cannot be empty")
)

const maxRecordDetailsLength = 2000

// MaintenanceRecord is the log of maintenance work actually performed
// on a vehicle. Records can be imported from external systems, so a
// pre-assigned ID is accepted alongside locally generated ones.
type MaintenanceRecord struct {
	shared.BaseEntity
	VehicleID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	MaintenanceRuleID uuid.UUID  `gorm:"type:uuid;not null;index"`
	PerformedBy       uuid.UUID  `gorm:"type:uuid;not null"`
	VehicleStatusID   *uuid.UUID `gorm:"type:uuid"`
	PerformedAt       time.Time  `gorm:"not null"`
	Details           string     `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (MaintenanceRecord) TableName() string {
	return "maintenance_records"
}

// NewMaintenanceRecord logs performed maintenance with a generated ID
func NewMaintenanceRecord(vehicleID, ruleID, performedBy uuid.UUID, statusID *uuid.UUID, performedAt time.Time, details string) (*MaintenanceRecord, error) {
	record := &MaintenanceRecord{
		BaseEntity:        shared.NewBaseEntity(),
		VehicleID:         vehicleID,
		MaintenanceRuleID: ruleID,
		PerformedBy:       performedBy,
		VehicleStatusID:   statusID,
		PerformedAt:       performedAt,
		Details:           details,
	}
	if err := record.validate(); err != nil {
		return nil, err
	}
	return record, nil
}

// NewMaintenanceRecordWithID logs performed maintenance under an ID
// assigned by the originating system.
func NewMaintenanceRecordWithID(id, vehicleID, ruleID, performedBy uuid.UUID, statusID *uuid.UUID, performedAt time.Time, details string) (*MaintenanceRecord, error) {
	if id == uuid.Nil {
		return nil, ErrRecordMissingReference
	}
	record, err := NewMaintenanceRecord(vehicleID, ruleID, performedBy, statusID, performedAt, details)
	if err != nil {
		return nil, err
	}
	record.ID = id
	return record, nil
}

func (r *MaintenanceRecord) validate() error {
	if r.VehicleID == uuid.Nil || r.MaintenanceRuleID == uuid.Nil || r.PerformedBy == uuid.Nil {
		return ErrRecordMissingReference
	}
	if r.PerformedAt.IsZero() {
		return ErrRecordPerformedAtZero
	}
	if len(r.Details) > maxRecordDetailsLength {
		return ErrRecordDetailsTooLong
	}
	return nil
}

// MaintenanceRecordView is the read-side projection of a record,
// joined with the performing user and the rule's maintenance type.
type MaintenanceRecordView struct {
	ID              uuid.UUID  `json:"id"`
	VehicleID       uuid.UUID  `json:"vehicle_id"`
	RuleID          uuid.UUID  `json:"rule_id"`
	TypeName        string     `json:"type_name"`
	PerformedBy     ActorRef   `json:"performed_by"`
	VehicleStatusID *uuid.UUID `json:"vehicle_status_id,omitempty"`
	PerformedAt     time.Time  `json:"performed_at"`
	Details         string     `json:"details"`
	CreatedAt       time.Time  `json:"created_at"`
}
