package maintenance

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/fleetcare/backend/internal/domain/maintenance"
	"github.com/fleetcare/backend/internal/domain/shared"
)

// MaintenanceTypeService handles the maintenance type catalog
type MaintenanceTypeService struct {
	typeRepo   maintenance.MaintenanceTypeRepository
	ruleRepo   maintenance.MaintenanceRuleRepository
	recordRepo maintenance.MaintenanceRecordRepository
}

// NewMaintenanceTypeService creates a new MaintenanceTypeService
func NewMaintenanceTypeService(
	typeRepo maintenance.MaintenanceTypeRepository,
	ruleRepo maintenance.MaintenanceRuleRepository,
	recordRepo maintenance.MaintenanceRecordRepository,
) *MaintenanceTypeService {
	return &MaintenanceTypeService{
		typeRepo:   typeRepo,
		ruleRepo:   ruleRepo,
		recordRepo: recordRepo,
	}
}

// Create adds a maintenance type to the catalog
func (s *MaintenanceTypeService) Create(ctx context.Context, actorID uuid.UUID, req CreateMaintenanceTypeRequest) (*MaintenanceTypeResponse, error) {
	mt, err := maintenance.NewMaintenanceType(actorID, req.Name, req.Description)
	if err != nil {
		return nil, err
	}

	exists, err := s.typeRepo.ExistsByName(ctx, mt.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, maintenance.ErrTypeNameExists
	}

	// The name check races with concurrent creates; the unique index on
	// maintenance_types(name) is authoritative.
	if err := s.typeRepo.Create(ctx, mt); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, maintenance.ErrTypeNameExists
		}
		return nil, err
	}

	return s.viewResponse(ctx, mt.ID)
}

// GetByID returns a single maintenance type view
func (s *MaintenanceTypeService) GetByID(ctx context.Context, id uuid.UUID) (*MaintenanceTypeResponse, error) {
	return s.viewResponse(ctx, id)
}

// GetAll returns all maintenance type views
func (s *MaintenanceTypeService) GetAll(ctx context.Context) ([]MaintenanceTypeResponse, error) {
	views, err := s.typeRepo.FindAllViews(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]MaintenanceTypeResponse, len(views))
	for i := range views {
		responses[i] = *ToMaintenanceTypeResponse(&views[i])
	}
	return responses, nil
}

// Update renames or re-describes a maintenance type. The name
// uniqueness check only runs when the name actually changes.
func (s *MaintenanceTypeService) Update(ctx context.Context, actorID, id uuid.UUID, req UpdateMaintenanceTypeRequest) (*MaintenanceTypeResponse, error) {
	mt, err := s.typeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newName := strings.TrimSpace(req.Name)
	if newName != mt.Name {
		exists, err := s.typeRepo.ExistsByName(ctx, newName)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, maintenance.ErrTypeNameExists
		}
	}

	if err := mt.Update(req.Name, req.Description, actorID); err != nil {
		return nil, err
	}

	if err := s.typeRepo.Save(ctx, mt); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, maintenance.ErrTypeNameExists
		}
		return nil, err
	}

	return s.viewResponse(ctx, mt.ID)
}

// Delete removes a maintenance type. Types still referenced by rules
// or records are kept and the delete is rejected.
func (s *MaintenanceTypeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.typeRepo.FindByID(ctx, id); err != nil {
		return err
	}

	inUse, err := s.ruleRepo.ExistsByType(ctx, id)
	if err != nil {
		return err
	}
	if !inUse {
		inUse, err = s.recordRepo.ExistsByType(ctx, id)
		if err != nil {
			return err
		}
	}
	if inUse {
		return maintenance.ErrTypeInUse
	}

	return s.typeRepo.Delete(ctx, id)
}

// Search filters the catalog by a case-insensitive substring over name
// and description. TotalFound counts the hits actually returned after
// the limit is applied.
func (s *MaintenanceTypeService) Search(ctx context.Context, req SearchMaintenanceTypesRequest) (*SearchMaintenanceTypesResponse, error) {
	term := strings.TrimSpace(req.Term)
	if term == "" {
		return nil, shared.NewDomainError("INVALID_SEARCH_TERM", "Search term cannot be empty")
	}

	views, err := s.typeRepo.FindAllViews(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]MaintenanceTypeResponse, 0)
	for i := range views {
		if !views[i].MatchesTerm(term) {
			continue
		}
		results = append(results, *ToMaintenanceTypeResponse(&views[i]))
		if req.Limit > 0 && len(results) == req.Limit {
			break
		}
	}

	return &SearchMaintenanceTypesResponse{
		Results:    results,
		TotalFound: len(results),
	}, nil
}

func (s *MaintenanceTypeService) viewResponse(ctx context.Context, id uuid.UUID) (*MaintenanceTypeResponse, error) {
	view, err := s.typeRepo.FindViewByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToMaintenanceTypeResponse(view), nil
}
