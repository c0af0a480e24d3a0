package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fleetcare/backend/internal/domain/maintenance"
	"github.com/fleetcare/backend/internal/domain/shared"
)

// GormMaintenanceRecordRepository implements maintenance.MaintenanceRecordRepository using GORM
type GormMaintenanceRecordRepository struct {
	db *gorm.DB
}

// NewGormMaintenanceRecordRepository creates a new GormMaintenanceRecordRepository
func NewGormMaintenanceRecordRepository(db *gorm.DB) *GormMaintenanceRecordRepository {
	return &GormMaintenanceRecordRepository{db: db}
}

// maintenanceRecordRow is the flat scan target for the joined record view
type maintenanceRecordRow struct {
	ID               uuid.UUID  `gorm:"column:id"`
	VehicleID        uuid.UUID  `gorm:"column:vehicle_id"`
	RuleID           uuid.UUID  `gorm:"column:rule_id"`
	TypeName         string     `gorm:"column:type_name"`
	PerformedByID    *uuid.UUID `gorm:"column:performed_by_id"`
	PerformedByEmail *string    `gorm:"column:performed_by_email"`
	VehicleStatusID  *uuid.UUID `gorm:"column:vehicle_status_id"`
	PerformedAt      time.Time  `gorm:"column:performed_at"`
	Details          string     `gorm:"column:details"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
}

func (row maintenanceRecordRow) toView() maintenance.MaintenanceRecordView {
	return maintenance.MaintenanceRecordView{
		ID:              row.ID,
		VehicleID:       row.VehicleID,
		RuleID:          row.RuleID,
		TypeName:        row.TypeName,
		PerformedBy:     toActorRef(row.PerformedByID, row.PerformedByEmail),
		VehicleStatusID: row.VehicleStatusID,
		PerformedAt:     row.PerformedAt,
		Details:         row.Details,
		CreatedAt:       row.CreatedAt,
	}
}

// Create persists a new record. Records may arrive with externally
// assigned IDs, so duplicate keys surface as shared.ErrAlreadyExists.
func (r *GormMaintenanceRecordRepository) Create(ctx context.Context, record *maintenance.MaintenanceRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// FindByID finds a record by its ID
func (r *GormMaintenanceRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*maintenance.MaintenanceRecord, error) {
	var record maintenance.MaintenanceRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// FindViewByID returns the joined view of a record
func (r *GormMaintenanceRecordRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*maintenance.MaintenanceRecordView, error) {
	var row maintenanceRecordRow
	err := r.viewQuery(ctx).
		Where("mr.id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	view := row.toView()
	return &view, nil
}

// FindViewsByVehicle returns joined views of a vehicle's records, newest first
func (r *GormMaintenanceRecordRepository) FindViewsByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]maintenance.MaintenanceRecordView, error) {
	var rows []maintenanceRecordRow
	if err := r.viewQuery(ctx).
		Where("mr.vehicle_id = ?", vehicleID).
		Order("mr.performed_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]maintenance.MaintenanceRecordView, len(rows))
	for i, row := range rows {
		views[i] = row.toView()
	}
	return views, nil
}

// ExistsByRule checks whether any record references the rule
func (r *GormMaintenanceRecordRepository) ExistsByRule(ctx context.Context, ruleID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&maintenance.MaintenanceRecord{}).
		Where("maintenance_rule_id = ?", ruleID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByType checks whether any record references the maintenance type
// through its rule
func (r *GormMaintenanceRecordRepository) ExistsByType(ctx context.Context, typeID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table("maintenance_records AS mr").
		Joins("JOIN maintenance_rules AS rule ON rule.id = mr.maintenance_rule_id").
		Where("rule.maintenance_type_id = ?", typeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes a record
func (r *GormMaintenanceRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&maintenance.MaintenanceRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormMaintenanceRecordRepository) viewQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("maintenance_records AS mr").
		Select("mr.id, mr.vehicle_id, mr.maintenance_rule_id AS rule_id, mt.name AS type_name, " +
			"mr.performed_by AS performed_by_id, performer.email AS performed_by_email, " +
			"mr.vehicle_status_id, mr.performed_at, mr.details, mr.created_at").
		Joins("JOIN maintenance_rules AS rule ON rule.id = mr.maintenance_rule_id").
		Joins("JOIN maintenance_types AS mt ON mt.id = rule.maintenance_type_id").
		Joins("LEFT JOIN users AS performer ON performer.id = mr.performed_by")
}

// Ensure GormMaintenanceRecordRepository implements maintenance.MaintenanceRecordRepository
var _ maintenance.MaintenanceRecordRepository = (*GormMaintenanceRecordRepository)(nil)
