package maintenance

import (
	"context"

	"github.com/google/uuid"
)

// MaintenanceTypeRepository defines the interface for maintenance type
// persistence and its read-side views.
type MaintenanceTypeRepository interface {
	// Create persists a new maintenance type
	Create(ctx context.Context, mt *MaintenanceType) error

	// FindByID finds a maintenance type by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*MaintenanceType, error)

	// FindViewByID returns the joined view of a maintenance type
	FindViewByID(ctx context.Context, id uuid.UUID) (*MaintenanceTypeView, error)

	// FindAllViews returns joined views of all maintenance types,
	// ordered by name
	FindAllViews(ctx context.Context) ([]MaintenanceTypeView, error)

	// ExistsByName checks whether a type with the given name exists
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Save updates an existing maintenance type
	Save(ctx context.Context, mt *MaintenanceType) error

	// Delete removes a maintenance type
	Delete(ctx context.Context, id uuid.UUID) error
}

// MaintenanceRuleRepository defines the interface for maintenance rule
// persistence
type MaintenanceRuleRepository interface {
	// Create persists a new rule
	Create(ctx context.Context, rule *MaintenanceRule) error

	// FindByID finds a rule by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*MaintenanceRule, error)

	// FindByVehicle returns all rules scheduled for a vehicle
	FindByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]MaintenanceRule, error)

	// ExistsByType checks whether any rule references the maintenance type
	ExistsByType(ctx context.Context, typeID uuid.UUID) (bool, error)

	// Save updates an existing rule
	Save(ctx context.Context, rule *MaintenanceRule) error

	// Delete removes a rule
	Delete(ctx context.Context, id uuid.UUID) error
}

// MaintenanceRecordRepository defines the interface for maintenance
// record persistence and its read-side views.
type MaintenanceRecordRepository interface {
	// Create persists a new record
	Create(ctx context.Context, record *MaintenanceRecord) error

	// FindByID finds a record by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*MaintenanceRecord, error)

	// FindViewByID returns the joined view of a record
	FindViewByID(ctx context.Context, id uuid.UUID) (*MaintenanceRecordView, error)

	// FindViewsByVehicle returns joined views of a vehicle's records,
	// newest first
	FindViewsByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]MaintenanceRecordView, error)

	// ExistsByRule checks whether any record references the rule
	ExistsByRule(ctx context.Context, ruleID uuid.UUID) (bool, error)

	// ExistsByType checks whether any record references the maintenance
	// type through its rule
	ExistsByType(ctx context.Context, typeID uuid.UUID) (bool, error)

	// Delete removes a record
	Delete(ctx context.Context, id uuid.UUID) error
}
