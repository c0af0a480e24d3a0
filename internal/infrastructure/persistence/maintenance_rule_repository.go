package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fleetcare/backend/internal/domain/maintenance"
	"github.com/fleetcare/backend/internal/domain/shared"
)

// GormMaintenanceRuleRepository implements maintenance.MaintenanceRuleRepository using GORM
type GormMaintenanceRuleRepository struct {
	db *gorm.DB
}

// NewGormMaintenanceRuleRepository creates a new GormMaintenanceRuleRepository
func NewGormMaintenanceRuleRepository(db *gorm.DB) *GormMaintenanceRuleRepository {
	return &GormMaintenanceRuleRepository{db: db}
}

// Create persists a new rule
func (r *GormMaintenanceRuleRepository) Create(ctx context.Context, rule *maintenance.MaintenanceRule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

// FindByID finds a rule by its ID
func (r *GormMaintenanceRuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*maintenance.MaintenanceRule, error) {
	var rule maintenance.MaintenanceRule
	if err := r.db.WithContext(ctx).First(&rule, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rule, nil
}

// FindByVehicle returns all rules scheduled for a vehicle
func (r *GormMaintenanceRuleRepository) FindByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]maintenance.MaintenanceRule, error) {
	var rules []maintenance.MaintenanceRule
	if err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("created_at ASC").
		Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

// ExistsByType checks whether any rule references the maintenance type
func (r *GormMaintenanceRuleRepository) ExistsByType(ctx context.Context, typeID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&maintenance.MaintenanceRule{}).
		Where("maintenance_type_id = ?", typeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save updates an existing rule
func (r *GormMaintenanceRuleRepository) Save(ctx context.Context, rule *maintenance.MaintenanceRule) error {
	return r.db.WithContext(ctx).Save(rule).Error
}

// Delete removes a rule
func (r *GormMaintenanceRuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&maintenance.MaintenanceRule{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormMaintenanceRuleRepository implements maintenance.MaintenanceRuleRepository
var _ maintenance.MaintenanceRuleRepository = (*GormMaintenanceRuleRepository)(nil)
