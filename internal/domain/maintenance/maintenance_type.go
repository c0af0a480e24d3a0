package maintenance

import (
	"strings"
	"time"

	"github.com/fleetcare/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Maintenance type validation errors
var (
	ErrTypeNameEmpty          = shared.NewDomainError("INVALID_NAME", "Maintenance type name cannot be empty")
	ErrTypeNameTooLong        = shared.NewDomainError("INVALID_NAME", "Maintenance type name cannot exceed 100 characters")
	ErrTypeDescriptionTooLong = shared.NewDomainError("INVALID_DESCRIPTION", "Maintenance type description cannot exceed 2000 characters")
	ErrTypeNameExists         = shared.NewDomainError("NAME_ALREADY_EXISTS", "A maintenance type with this name already exists")
	ErrTypeInUse              = shared.NewDomainError("TYPE_IN_USE", "Maintenance type is referenced by rules or records")
)

const (
	maxTypeNameLength        = 100
	maxTypeDescriptionLength = 2000
)

// MaintenanceType is a catalog entry describing a kind of maintenance
// work, e.g. "Oil Change". Names are unique across the catalog.
type MaintenanceType struct {
	shared.AuditedAggregateRoot
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex:idx_maintenance_types_name"`
	Description string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (MaintenanceType) TableName() string {
	return "maintenance_types"
}

// NewMaintenanceType creates a new maintenance type
func NewMaintenanceType(createdBy uuid.UUID, name, description string) (*MaintenanceType, error) {
	name = strings.TrimSpace(name)
	if err := validateTypeName(name); err != nil {
		return nil, err
	}
	if err := validateTypeDescription(description); err != nil {
		return nil, err
	}

	return &MaintenanceType{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(createdBy),
		Name:                 name,
		Description:          description,
	}, nil
}

func validateTypeName(name string) error {
	if name == "" {
		return ErrTypeNameEmpty
	}
	if len(name) > maxTypeNameLength {
		return ErrTypeNameTooLong
	}
	return nil
}

func validateTypeDescription(description string) error {
	if len(description) > maxTypeDescriptionLength {
		return ErrTypeDescriptionTooLong
	}
	return nil
}

// Update replaces name and description
func (m *MaintenanceType) Update(name, description string, updatedBy uuid.UUID) error {
	name = strings.TrimSpace(name)
	if err := validateTypeName(name); err != nil {
		return err
	}
	if err := validateTypeDescription(description); err != nil {
		return err
	}

	m.Name = name
	m.Description = description
	m.SetUpdatedBy(updatedBy)
	m.UpdatedAt = time.Now()
	m.IncrementVersion()
	return nil
}

// ActorRef identifies a user in read-side projections
type ActorRef struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// MaintenanceTypeView is the read-side projection of a maintenance
// type, joined with the creating and last-updating users.
type MaintenanceTypeView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedBy   ActorRef  `json:"created_by"`
	UpdatedBy   ActorRef  `json:"updated_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MatchesTerm reports whether the view's name or description contains
// the term, case-insensitively.
func (v MaintenanceTypeView) MatchesTerm(term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(v.Name), term) ||
		strings.Contains(strings.ToLower(v.Description), term)
}
