package maintenance

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/fleetcare/backend/internal/domain/fleet"
	"github.com/fleetcare/backend/internal/domain/maintenance"
	"github.com/fleetcare/backend/internal/domain/shared"
)

// MaintenanceRecordService handles the log of performed maintenance
type MaintenanceRecordService struct {
	recordRepo  maintenance.MaintenanceRecordRepository
	ruleRepo    maintenance.MaintenanceRuleRepository
	vehicleRepo fleet.VehicleRepository
	statusRepo  fleet.VehicleStatusRepository
}

// NewMaintenanceRecordService creates a new MaintenanceRecordService
func NewMaintenanceRecordService(
	recordRepo maintenance.MaintenanceRecordRepository,
	ruleRepo maintenance.MaintenanceRuleRepository,
	vehicleRepo fleet.VehicleRepository,
	statusRepo fleet.VehicleStatusRepository,
) *MaintenanceRecordService {
	return &MaintenanceRecordService{
		recordRepo:  recordRepo,
		ruleRepo:    ruleRepo,
		vehicleRepo: vehicleRepo,
		statusRepo:  statusRepo,
	}
}

// Create logs performed maintenance. The acting user is recorded as
// the performer.
func (s *MaintenanceRecordService) Create(ctx context.Context, actorID uuid.UUID, req CreateMaintenanceRecordRequest) (*MaintenanceRecordResponse, error) {
	if _, err := s.vehicleRepo.FindByID(ctx, req.VehicleID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("VEHICLE_NOT_FOUND", "Vehicle not found")
		}
		return nil, err
	}

	rule, err := s.ruleRepo.FindByID(ctx, req.RuleID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("RULE_NOT_FOUND", "Maintenance rule not found")
		}
		return nil, err
	}
	if rule.VehicleID != req.VehicleID {
		return nil, shared.NewDomainError("RULE_VEHICLE_MISMATCH", "Maintenance rule belongs to a different vehicle")
	}

	if req.VehicleStatusID != nil {
		status, err := s.statusRepo.FindByID(ctx, *req.VehicleStatusID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("STATUS_NOT_FOUND", "Vehicle status snapshot not found")
			}
			return nil, err
		}
		if status.VehicleID != req.VehicleID {
			return nil, shared.NewDomainError("STATUS_VEHICLE_MISMATCH", "Status snapshot belongs to a different vehicle")
		}
	}

	var record *maintenance.MaintenanceRecord
	if req.ID != nil {
		record, err = maintenance.NewMaintenanceRecordWithID(*req.ID, req.VehicleID, req.RuleID, actorID, req.VehicleStatusID, req.PerformedAt, req.Details)
	} else {
		record, err = maintenance.NewMaintenanceRecord(req.VehicleID, req.RuleID, actorID, req.VehicleStatusID, req.PerformedAt, req.Details)
	}
	if err != nil {
		return nil, err
	}

	if err := s.recordRepo.Create(ctx, record); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "A maintenance record with this ID already exists")
		}
		return nil, err
	}

	return s.viewResponse(ctx, record.ID)
}

// GetByID returns a single record view
func (s *MaintenanceRecordService) GetByID(ctx context.Context, id uuid.UUID) (*MaintenanceRecordResponse, error) {
	return s.viewResponse(ctx, id)
}

// ListByVehicle returns a vehicle's record views, newest first
func (s *MaintenanceRecordService) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]MaintenanceRecordResponse, error) {
	if _, err := s.vehicleRepo.FindByID(ctx, vehicleID); err != nil {
		return nil, err
	}

	views, err := s.recordRepo.FindViewsByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	responses := make([]MaintenanceRecordResponse, len(views))
	for i := range views {
		responses[i] = *ToMaintenanceRecordResponse(&views[i])
	}
	return responses, nil
}

// Delete removes a record
func (s *MaintenanceRecordService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.recordRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.recordRepo.Delete(ctx, id)
}

func (s *MaintenanceRecordService) viewResponse(ctx context.Context, id uuid.UUID) (*MaintenanceRecordResponse, error) {
	view, err := s.recordRepo.FindViewByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToMaintenanceRecordResponse(view), nil
}
