package maintenance

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/fleetcare/backend/internal/domain/fleet"
	"github.com/fleetcare/backend/internal/domain/maintenance"
)

// MockMaintenanceTypeRepository is a mock implementation of MaintenanceTypeRepository
type MockMaintenanceTypeRepository struct {
	mock.Mock
}

func (m *MockMaintenanceTypeRepository) Create(ctx context.Context, mt *maintenance.MaintenanceType) error {
	args := m.Called(ctx, mt)
	return args.Error(0)
}

func (m *MockMaintenanceTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*maintenance.MaintenanceType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*maintenance.MaintenanceType), args.Error(1)
}

func (m *MockMaintenanceTypeRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*maintenance.MaintenanceTypeView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*maintenance.MaintenanceTypeView), args.Error(1)
}

func (m *MockMaintenanceTypeRepository) FindAllViews(ctx context.Context) ([]maintenance.MaintenanceTypeView, error) {
	args := m.Called(ctx)
	return args.Get(0).([]maintenance.MaintenanceTypeView), args.Error(1)
}

func (m *MockMaintenanceTypeRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockMaintenanceTypeRepository) Save(ctx context.Context, mt *maintenance.MaintenanceType) error {
	args := m.Called(ctx, mt)
	return args.Error(0)
}

func (m *MockMaintenanceTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMaintenanceRuleRepository is a mock implementation of MaintenanceRuleRepository
type MockMaintenanceRuleRepository struct {
	mock.Mock
}

func (m *MockMaintenanceRuleRepository) Create(ctx context.Context, rule *maintenance.MaintenanceRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockMaintenanceRuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*maintenance.MaintenanceRule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*maintenance.MaintenanceRule), args.Error(1)
}

func (m *MockMaintenanceRuleRepository) FindByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]maintenance.MaintenanceRule, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]maintenance.MaintenanceRule), args.Error(1)
}

func (m *MockMaintenanceRuleRepository) ExistsByType(ctx context.Context, typeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, typeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMaintenanceRuleRepository) Save(ctx context.Context, rule *maintenance.MaintenanceRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockMaintenanceRuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMaintenanceRecordRepository is a mock implementation of MaintenanceRecordRepository
type MockMaintenanceRecordRepository struct {
	mock.Mock
}

func (m *MockMaintenanceRecordRepository) Create(ctx context.Context, record *maintenance.MaintenanceRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockMaintenanceRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*maintenance.MaintenanceRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*maintenance.MaintenanceRecord), args.Error(1)
}

func (m *MockMaintenanceRecordRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*maintenance.MaintenanceRecordView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*maintenance.MaintenanceRecordView), args.Error(1)
}

func (m *MockMaintenanceRecordRepository) FindViewsByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]maintenance.MaintenanceRecordView, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]maintenance.MaintenanceRecordView), args.Error(1)
}

func (m *MockMaintenanceRecordRepository) ExistsByRule(ctx context.Context, ruleID uuid.UUID) (bool, error) {
	args := m.Called(ctx, ruleID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMaintenanceRecordRepository) ExistsByType(ctx context.Context, typeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, typeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMaintenanceRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVehicleRepository is a mock implementation of fleet.VehicleRepository
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Create(ctx context.Context, vehicle *fleet.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*fleet.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindByVIN(ctx context.Context, vin fleet.VIN) (*fleet.Vehicle, error) {
	args := m.Called(ctx, vin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindByFilter(ctx context.Context, filter fleet.VehicleFilter) ([]fleet.Vehicle, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]fleet.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) CountByFilter(ctx context.Context, filter fleet.VehicleFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVehicleRepository) ExistsByVINOrPlate(ctx context.Context, vin fleet.VIN, plate fleet.LicensePlate) (bool, error) {
	args := m.Called(ctx, vin, plate)
	return args.Bool(0), args.Error(1)
}

func (m *MockVehicleRepository) Save(ctx context.Context, vehicle *fleet.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVehicleStatusRepository is a mock implementation of fleet.VehicleStatusRepository
type MockVehicleStatusRepository struct {
	mock.Mock
}

func (m *MockVehicleStatusRepository) Create(ctx context.Context, status *fleet.VehicleStatus) error {
	args := m.Called(ctx, status)
	return args.Error(0)
}

func (m *MockVehicleStatusRepository) FindByID(ctx context.Context, id uuid.UUID) (*fleet.VehicleStatus, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.VehicleStatus), args.Error(1)
}

func (m *MockVehicleStatusRepository) FindLatestByVehicle(ctx context.Context, vehicleID uuid.UUID) (*fleet.VehicleStatus, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.VehicleStatus), args.Error(1)
}

func (m *MockVehicleStatusRepository) FindByVehicle(ctx context.Context, vehicleID uuid.UUID, limit int) ([]fleet.VehicleStatus, error) {
	args := m.Called(ctx, vehicleID, limit)
	return args.Get(0).([]fleet.VehicleStatus), args.Error(1)
}
