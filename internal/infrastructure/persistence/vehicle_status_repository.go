package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fleetcare/backend/internal/domain/fleet"
	"github.com/fleetcare/backend/internal/domain/shared"
)

// GormVehicleStatusRepository implements fleet.VehicleStatusRepository using GORM
type GormVehicleStatusRepository struct {
	db *gorm.DB
}

// NewGormVehicleStatusRepository creates a new GormVehicleStatusRepository
func NewGormVehicleStatusRepository(db *gorm.DB) *GormVehicleStatusRepository {
	return &GormVehicleStatusRepository{db: db}
}

// Create persists a new status snapshot
func (r *GormVehicleStatusRepository) Create(ctx context.Context, status *fleet.VehicleStatus) error {
	return r.db.WithContext(ctx).Create(status).Error
}

// FindByID finds a status snapshot by its ID
func (r *GormVehicleStatusRepository) FindByID(ctx context.Context, id uuid.UUID) (*fleet.VehicleStatus, error) {
	var status fleet.VehicleStatus
	if err := r.db.WithContext(ctx).First(&status, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &status, nil
}

// FindLatestByVehicle returns the most recent status snapshot for a vehicle
func (r *GormVehicleStatusRepository) FindLatestByVehicle(ctx context.Context, vehicleID uuid.UUID) (*fleet.VehicleStatus, error) {
	var status fleet.VehicleStatus
	if err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("created_at DESC").
		First(&status).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &status, nil
}

// FindByVehicle returns status snapshots for a vehicle, newest first
func (r *GormVehicleStatusRepository) FindByVehicle(ctx context.Context, vehicleID uuid.UUID, limit int) ([]fleet.VehicleStatus, error) {
	var statuses []fleet.VehicleStatus
	query := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

// Ensure GormVehicleStatusRepository implements fleet.VehicleStatusRepository
var _ fleet.VehicleStatusRepository = (*GormVehicleStatusRepository)(nil)
