package maintenance

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/fleetcare/backend/internal/domain/fleet"
	"github.com/fleetcare/backend/internal/domain/maintenance"
	"github.com/fleetcare/backend/internal/domain/shared"
)

// MaintenanceRuleService handles maintenance scheduling rules
type MaintenanceRuleService struct {
	ruleRepo    maintenance.MaintenanceRuleRepository
	typeRepo    maintenance.MaintenanceTypeRepository
	vehicleRepo fleet.VehicleRepository
	recordRepo  maintenance.MaintenanceRecordRepository
}

// NewMaintenanceRuleService creates a new MaintenanceRuleService
func NewMaintenanceRuleService(
	ruleRepo maintenance.MaintenanceRuleRepository,
	typeRepo maintenance.MaintenanceTypeRepository,
	vehicleRepo fleet.VehicleRepository,
	recordRepo maintenance.MaintenanceRecordRepository,
) *MaintenanceRuleService {
	return &MaintenanceRuleService{
		ruleRepo:    ruleRepo,
		typeRepo:    typeRepo,
		vehicleRepo: vehicleRepo,
		recordRepo:  recordRepo,
	}
}

// Create schedules a maintenance type for a vehicle
func (s *MaintenanceRuleService) Create(ctx context.Context, actorID uuid.UUID, req CreateMaintenanceRuleRequest) (*MaintenanceRuleResponse, error) {
	intervalType, err := maintenance.ParseIntervalType(req.IntervalType)
	if err != nil {
		return nil, err
	}

	if _, err := s.vehicleRepo.FindByID(ctx, req.VehicleID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("VEHICLE_NOT_FOUND", "Vehicle not found")
		}
		return nil, err
	}
	if _, err := s.typeRepo.FindByID(ctx, req.MaintenanceTypeID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("TYPE_NOT_FOUND", "Maintenance type not found")
		}
		return nil, err
	}

	rule, err := maintenance.NewMaintenanceRule(actorID, req.VehicleID, req.MaintenanceTypeID,
		intervalType, req.IntervalValue, req.YellowThreshold, req.RedThreshold)
	if err != nil {
		return nil, err
	}

	if err := s.ruleRepo.Create(ctx, rule); err != nil {
		return nil, err
	}
	return ToMaintenanceRuleResponse(rule), nil
}

// GetByID returns a single rule
func (s *MaintenanceRuleService) GetByID(ctx context.Context, id uuid.UUID) (*MaintenanceRuleResponse, error) {
	rule, err := s.ruleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToMaintenanceRuleResponse(rule), nil
}

// ListByVehicle returns all rules scheduled for a vehicle
func (s *MaintenanceRuleService) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]MaintenanceRuleResponse, error) {
	if _, err := s.vehicleRepo.FindByID(ctx, vehicleID); err != nil {
		return nil, err
	}

	rules, err := s.ruleRepo.FindByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	responses := make([]MaintenanceRuleResponse, len(rules))
	for i := range rules {
		responses[i] = *ToMaintenanceRuleResponse(&rules[i])
	}
	return responses, nil
}

// Update reschedules a rule
func (s *MaintenanceRuleService) Update(ctx context.Context, actorID, id uuid.UUID, req UpdateMaintenanceRuleRequest) (*MaintenanceRuleResponse, error) {
	intervalType, err := maintenance.ParseIntervalType(req.IntervalType)
	if err != nil {
		return nil, err
	}

	rule, err := s.ruleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := rule.UpdateSchedule(intervalType, req.IntervalValue, req.YellowThreshold, req.RedThreshold, actorID); err != nil {
		return nil, err
	}

	if err := s.ruleRepo.Save(ctx, rule); err != nil {
		return nil, err
	}
	return ToMaintenanceRuleResponse(rule), nil
}

// Delete removes a rule. Rules with recorded history are kept and the
// delete is rejected.
func (s *MaintenanceRuleService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.ruleRepo.FindByID(ctx, id); err != nil {
		return err
	}

	inUse, err := s.recordRepo.ExistsByRule(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return shared.NewDomainError("RULE_IN_USE", "Maintenance rule has recorded history")
	}

	return s.ruleRepo.Delete(ctx, id)
}
