package fleet

import (
	"context"

	"github.com/google/uuid"
)

// VehicleRepository defines the interface for vehicle persistence
type VehicleRepository interface {
	// Create persists a newly registered vehicle
	Create(ctx context.Context, vehicle *Vehicle) error

	// FindByID finds a vehicle by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Vehicle, error)

	// FindByVIN finds a vehicle by its VIN
	FindByVIN(ctx context.Context, vin VIN) (*Vehicle, error)

	// FindByFilter finds vehicles matching the filter, paginated and sorted
	FindByFilter(ctx context.Context, filter VehicleFilter) ([]Vehicle, error)

	// CountByFilter counts vehicles matching the filter, ignoring pagination
	CountByFilter(ctx context.Context, filter VehicleFilter) (int64, error)

	// ExistsByVINOrPlate checks whether any vehicle already carries the
	// given VIN or license plate
	ExistsByVINOrPlate(ctx context.Context, vin VIN, plate LicensePlate) (bool, error)

	// Save updates an existing vehicle
	Save(ctx context.Context, vehicle *Vehicle) error

	// Delete removes a vehicle
	Delete(ctx context.Context, id uuid.UUID) error
}

// VehicleStatusRepository defines the interface for vehicle status
// snapshot persistence
type VehicleStatusRepository interface {
	// Create appends a status snapshot
	Create(ctx context.Context, status *VehicleStatus) error

	// FindByID finds a snapshot by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*VehicleStatus, error)

	// FindLatestByVehicle returns the most recent snapshot for a vehicle
	FindLatestByVehicle(ctx context.Context, vehicleID uuid.UUID) (*VehicleStatus, error)

	// FindByVehicle returns snapshots for a vehicle, newest first
	FindByVehicle(ctx context.Context, vehicleID uuid.UUID, limit int) ([]VehicleStatus, error)
}
