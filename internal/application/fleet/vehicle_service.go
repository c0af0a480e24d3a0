package fleet

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/fleetcare/backend/internal/domain/fleet"
	"github.com/fleetcare/backend/internal/domain/shared"
)

// VehicleService handles vehicle-related business operations
type VehicleService struct {
	vehicleRepo fleet.VehicleRepository
	statusRepo  fleet.VehicleStatusRepository
}

// NewVehicleService creates a new VehicleService
func NewVehicleService(vehicleRepo fleet.VehicleRepository, statusRepo fleet.VehicleStatusRepository) *VehicleService {
	return &VehicleService{
		vehicleRepo: vehicleRepo,
		statusRepo:  statusRepo,
	}
}

// Register registers a new vehicle
func (s *VehicleService) Register(ctx context.Context, actorID uuid.UUID, req RegisterVehicleRequest) (*VehicleResponse, error) {
	vin, err := fleet.NewVIN(req.VIN)
	if err != nil {
		return nil, err
	}
	plate, err := fleet.NewLicensePlate(req.LicensePlate)
	if err != nil {
		return nil, err
	}
	engineType, err := fleet.NewEngineType(req.EngineType)
	if err != nil {
		return nil, err
	}

	exists, err := s.vehicleRepo.ExistsByVINOrPlate(ctx, vin, plate)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A vehicle with this VIN or license plate already exists")
	}

	vehicle, err := fleet.NewVehicle(actorID, req.Make, req.Model, req.Year, vin, plate, engineType)
	if err != nil {
		return nil, err
	}

	// The uniqueness check above races with concurrent registrations;
	// the database unique indexes are authoritative.
	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "A vehicle with this VIN or license plate already exists")
		}
		return nil, err
	}

	return ToVehicleResponse(vehicle), nil
}

// GetByID returns a single vehicle
func (s *VehicleService) GetByID(ctx context.Context, id uuid.UUID) (*VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToVehicleResponse(vehicle), nil
}

// List returns vehicles matching the filter, paginated
func (s *VehicleService) List(ctx context.Context, req VehicleListFilter) (*shared.Paginated[VehicleResponse], error) {
	filter, err := s.buildFilter(req)
	if err != nil {
		return nil, err
	}

	vehicles, err := s.vehicleRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.vehicleRepo.CountByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]VehicleResponse, len(vehicles))
	for i := range vehicles {
		items[i] = *ToVehicleResponse(&vehicles[i])
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

func (s *VehicleService) buildFilter(req VehicleListFilter) (fleet.VehicleFilter, error) {
	filter := fleet.DefaultVehicleFilter()
	filter.Make = strings.TrimSpace(req.Make)
	filter.Model = strings.TrimSpace(req.Model)
	filter.Year = req.Year

	if req.EngineType != "" {
		engineType, err := fleet.NewEngineType(req.EngineType)
		if err != nil {
			return fleet.VehicleFilter{}, err
		}
		filter.EngineType = engineType
	}

	if req.SortBy != "" {
		sortBy, err := fleet.ParseVehicleSortField(req.SortBy)
		if err != nil {
			return fleet.VehicleFilter{}, err
		}
		filter.SortBy = sortBy
	}
	if req.SortDir != "" {
		filter.OrderDir = strings.ToLower(req.SortDir)
	}
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}
	filter.Normalize()

	return filter, nil
}

// Update changes a vehicle's mutable fields
func (s *VehicleService) Update(ctx context.Context, actorID, id uuid.UUID, req UpdateVehicleRequest) (*VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.LicensePlate != nil {
		plate, err := fleet.NewLicensePlate(*req.LicensePlate)
		if err != nil {
			return nil, err
		}
		if !plate.Equals(vehicle.LicensePlate) {
			if err := vehicle.ChangeLicensePlate(plate, actorID); err != nil {
				return nil, err
			}
		}
	}
	if req.EngineType != nil {
		engineType, err := fleet.NewEngineType(*req.EngineType)
		if err != nil {
			return nil, err
		}
		if err := vehicle.ChangeEngineType(engineType, actorID); err != nil {
			return nil, err
		}
	}

	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "A vehicle with this license plate already exists")
		}
		return nil, err
	}

	return ToVehicleResponse(vehicle), nil
}

// Delete removes a vehicle
func (s *VehicleService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.vehicleRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.vehicleRepo.Delete(ctx, id)
}

// ReportStatus appends a status snapshot for a vehicle
func (s *VehicleService) ReportStatus(ctx context.Context, actorID, vehicleID uuid.UUID, req ReportStatusRequest) (*VehicleStatusResponse, error) {
	if _, err := s.vehicleRepo.FindByID(ctx, vehicleID); err != nil {
		return nil, err
	}

	status, err := fleet.NewVehicleStatus(vehicleID, actorID, req.Odometer, req.EngineHours, req.FuelLevel, req.Notes)
	if err != nil {
		return nil, err
	}

	if err := s.statusRepo.Create(ctx, status); err != nil {
		return nil, err
	}
	return ToVehicleStatusResponse(status), nil
}

// GetLatestStatus returns a vehicle's most recent status snapshot
func (s *VehicleService) GetLatestStatus(ctx context.Context, vehicleID uuid.UUID) (*VehicleStatusResponse, error) {
	if _, err := s.vehicleRepo.FindByID(ctx, vehicleID); err != nil {
		return nil, err
	}
	status, err := s.statusRepo.FindLatestByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	return ToVehicleStatusResponse(status), nil
}
