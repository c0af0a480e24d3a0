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

// GormMaintenanceTypeRepository implements maintenance.MaintenanceTypeRepository using GORM
type GormMaintenanceTypeRepository struct {
	db *gorm.DB
}

// NewGormMaintenanceTypeRepository creates a new GormMaintenanceTypeRepository
func NewGormMaintenanceTypeRepository(db *gorm.DB) *GormMaintenanceTypeRepository {
	return &GormMaintenanceTypeRepository{db: db}
}

// maintenanceTypeRow is the flat scan target for the joined type view
type maintenanceTypeRow struct {
	ID             uuid.UUID  `gorm:"column:id"`
	Name           string     `gorm:"column:name"`
	Description    string     `gorm:"column:description"`
	CreatedByID    *uuid.UUID `gorm:"column:created_by_id"`
	CreatedByEmail *string    `gorm:"column:created_by_email"`
	UpdatedByID    *uuid.UUID `gorm:"column:updated_by_id"`
	UpdatedByEmail *string    `gorm:"column:updated_by_email"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

func (row maintenanceTypeRow) toView() maintenance.MaintenanceTypeView {
	return maintenance.MaintenanceTypeView{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		CreatedBy:   toActorRef(row.CreatedByID, row.CreatedByEmail),
		UpdatedBy:   toActorRef(row.UpdatedByID, row.UpdatedByEmail),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

// toActorRef builds an ActorRef from nullable join columns. Deleted or
// missing users yield a zero ActorRef.
func toActorRef(id *uuid.UUID, email *string) maintenance.ActorRef {
	var ref maintenance.ActorRef
	if id != nil {
		ref.ID = *id
	}
	if email != nil {
		ref.Email = *email
	}
	return ref
}

// Create persists a new maintenance type
func (r *GormMaintenanceTypeRepository) Create(ctx context.Context, mt *maintenance.MaintenanceType) error {
	if err := r.db.WithContext(ctx).Create(mt).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// FindByID finds a maintenance type by its ID
func (r *GormMaintenanceTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*maintenance.MaintenanceType, error) {
	var mt maintenance.MaintenanceType
	if err := r.db.WithContext(ctx).First(&mt, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &mt, nil
}

// FindViewByID returns the joined view of a maintenance type
func (r *GormMaintenanceTypeRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*maintenance.MaintenanceTypeView, error) {
	var row maintenanceTypeRow
	err := r.viewQuery(ctx).
		Where("mt.id = ?", id).
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

// FindAllViews returns joined views of all maintenance types, ordered by name
func (r *GormMaintenanceTypeRepository) FindAllViews(ctx context.Context) ([]maintenance.MaintenanceTypeView, error) {
	var rows []maintenanceTypeRow
	if err := r.viewQuery(ctx).Order("mt.name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]maintenance.MaintenanceTypeView, len(rows))
	for i, row := range rows {
		views[i] = row.toView()
	}
	return views, nil
}

// ExistsByName checks whether a type with the given name exists
func (r *GormMaintenanceTypeRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&maintenance.MaintenanceType{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save updates an existing maintenance type
func (r *GormMaintenanceTypeRepository) Save(ctx context.Context, mt *maintenance.MaintenanceType) error {
	if err := r.db.WithContext(ctx).Save(mt).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Delete removes a maintenance type
func (r *GormMaintenanceTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&maintenance.MaintenanceType{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormMaintenanceTypeRepository) viewQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("maintenance_types AS mt").
		Select("mt.id, mt.name, mt.description, mt.created_at, mt.updated_at, " +
			"mt.created_by AS created_by_id, creator.email AS created_by_email, " +
			"mt.updated_by AS updated_by_id, updater.email AS updated_by_email").
		Joins("LEFT JOIN users AS creator ON creator.id = mt.created_by").
		Joins("LEFT JOIN users AS updater ON updater.id = mt.updated_by")
}

// Ensure GormMaintenanceTypeRepository implements maintenance.MaintenanceTypeRepository
var _ maintenance.MaintenanceTypeRepository = (*GormMaintenanceTypeRepository)(nil)
