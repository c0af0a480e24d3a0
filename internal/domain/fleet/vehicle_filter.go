package fleet

import (
	"strings"

	"github.com/fleetcare/backend/internal/domain/shared"
)

// Columns a vehicle listing can be sorted by. The set is closed;
// anything else is rejected at parse time.
type VehicleSortField string

const (
	SortByMake         VehicleSortField = "make"
	SortByModel        VehicleSortField = "model"
	SortByYear         VehicleSortField = "year"
	SortByVIN          VehicleSortField = "vin"
	SortByLicensePlate VehicleSortField = "license_plate"
	SortByEngineType   VehicleSortField = "engine_type"
	SortByCreatedAt    VehicleSortField = "created_at"
	SortByUpdatedAt    VehicleSortField = "updated_at"
)

// ErrUnknownSortField is returned for sort keys outside the closed set
var ErrUnknownSortField = shared.NewDomainError("INVALID_SORT_FIELD", "Unknown vehicle sort field")

// ParseVehicleSortField parses a sort key, case-insensitively
func ParseVehicleSortField(value string) (VehicleSortField, error) {
	switch VehicleSortField(strings.ToLower(strings.TrimSpace(value))) {
	case SortByMake:
		return SortByMake, nil
	case SortByModel:
		return SortByModel, nil
	case SortByYear:
		return SortByYear, nil
	case SortByVIN:
		return SortByVIN, nil
	case SortByLicensePlate:
		return SortByLicensePlate, nil
	case SortByEngineType:
		return SortByEngineType, nil
	case SortByCreatedAt:
		return SortByCreatedAt, nil
	case SortByUpdatedAt:
		return SortByUpdatedAt, nil
	default:
		return "", ErrUnknownSortField
	}
}

// ColumnName returns the database column backing the sort field
func (f VehicleSortField) ColumnName() string {
	return string(f)
}

// VehicleFilter narrows a vehicle listing. Zero-valued fields are
// ignored; pagination and sorting ride on the embedded shared.Filter.
type VehicleFilter struct {
	shared.Filter
	Make       string
	Model      string
	Year       int
	EngineType EngineType
	SortBy     VehicleSortField
}

// DefaultVehicleFilter returns an unconstrained filter with default
// pagination, sorted by creation time.
func DefaultVehicleFilter() VehicleFilter {
	return VehicleFilter{
		Filter: shared.DefaultFilter(),
		SortBy: SortByCreatedAt,
	}
}
