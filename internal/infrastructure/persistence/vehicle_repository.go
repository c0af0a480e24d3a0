package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fleetcare/backend/internal/domain/fleet"
	"github.com/fleetcare/backend/internal/domain/shared"
)

// GormVehicleRepository implements fleet.VehicleRepository using GORM
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GormVehicleRepository
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// Create persists a new vehicle
func (r *GormVehicleRepository) Create(ctx context.Context, vehicle *fleet.Vehicle) error {
	if err := r.db.WithContext(ctx).Create(vehicle).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// FindByID finds a vehicle by its ID
func (r *GormVehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*fleet.Vehicle, error) {
	var vehicle fleet.Vehicle
	if err := r.db.WithContext(ctx).First(&vehicle, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

// FindByVIN finds a vehicle by its VIN
func (r *GormVehicleRepository) FindByVIN(ctx context.Context, vin fleet.VIN) (*fleet.Vehicle, error) {
	var vehicle fleet.Vehicle
	if err := r.db.WithContext(ctx).First(&vehicle, "vin = ?", vin.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

// FindByFilter finds all vehicles matching the filter
func (r *GormVehicleRepository) FindByFilter(ctx context.Context, filter fleet.VehicleFilter) ([]fleet.Vehicle, error) {
	var vehicles []fleet.Vehicle
	query := r.applyConstraints(r.db.WithContext(ctx).Model(&fleet.Vehicle{}), filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	sortBy := filter.SortBy
	if sortBy == "" {
		sortBy = fleet.SortByCreatedAt
	}
	orderDir := "ASC"
	if strings.ToLower(filter.OrderDir) == "desc" {
		orderDir = "DESC"
	}
	query = query.Order(sortBy.ColumnName() + " " + orderDir)

	if err := query.Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

// CountByFilter counts vehicles matching the filter
func (r *GormVehicleRepository) CountByFilter(ctx context.Context, filter fleet.VehicleFilter) (int64, error) {
	var count int64
	query := r.applyConstraints(r.db.WithContext(ctx).Model(&fleet.Vehicle{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByVINOrPlate checks whether a vehicle with the VIN or plate exists
func (r *GormVehicleRepository) ExistsByVINOrPlate(ctx context.Context, vin fleet.VIN, plate fleet.LicensePlate) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&fleet.Vehicle{}).
		Where("vin = ? OR license_plate = ?", vin.String(), plate.String()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save updates an existing vehicle
func (r *GormVehicleRepository) Save(ctx context.Context, vehicle *fleet.Vehicle) error {
	if err := r.db.WithContext(ctx).Save(vehicle).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Delete deletes a vehicle
func (r *GormVehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&fleet.Vehicle{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyConstraints applies the filter's field constraints without pagination
func (r *GormVehicleRepository) applyConstraints(query *gorm.DB, filter fleet.VehicleFilter) *gorm.DB {
	if filter.Make != "" {
		query = query.Where("make ILIKE ?", filter.Make)
	}
	if filter.Model != "" {
		query = query.Where("model ILIKE ?", filter.Model)
	}
	if filter.Year != 0 {
		query = query.Where("year = ?", filter.Year)
	}
	if !filter.EngineType.IsZero() {
		query = query.Where("engine_type = ?", filter.EngineType.String())
	}
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("make ILIKE ? OR model ILIKE ? OR vin ILIKE ? OR license_plate ILIKE ?",
			searchPattern, searchPattern, searchPattern, searchPattern)
	}
	return query
}

// Ensure GormVehicleRepository implements fleet.VehicleRepository
var _ fleet.VehicleRepository = (*GormVehicleRepository)(nil)
