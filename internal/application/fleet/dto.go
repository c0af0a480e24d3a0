package fleet

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleetcare/backend/internal/domain/fleet"
)

// RegisterVehicleRequest represents a request to register a new vehicle
type RegisterVehicleRequest struct {
	Make         string `json:"make" binding:"required,min=1,max=100"`
	Model        string `json:"model" binding:"required,min=1,max=100"`
	Year         int    `json:"year" binding:"required"`
	VIN          string `json:"vin" binding:"required,vin"`
	LicensePlate string `json:"license_plate" binding:"required,license_plate"`
	EngineType   string `json:"engine_type" binding:"required"`
}

// UpdateVehicleRequest represents a request to update a vehicle's
// mutable fields. Make, model and year are fixed at registration.
type UpdateVehicleRequest struct {
	LicensePlate *string `json:"license_plate" binding:"omitempty,license_plate"`
	EngineType   *string `json:"engine_type"`
}

// VehicleResponse represents a vehicle in API responses
type VehicleResponse struct {
	ID                uuid.UUID  `json:"id"`
	Make              string     `json:"make"`
	Model             string     `json:"model"`
	Year              int        `json:"year"`
	VIN               string     `json:"vin"`
	LicensePlate      string     `json:"license_plate"`
	EngineType        string     `json:"engine_type"`
	EngineTypeDisplay string     `json:"engine_type_display"`
	DisplayName       string     `json:"display_name"`
	CreatedBy         *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	Version           int        `json:"version"`
}

// VehicleListFilter represents filter options for vehicle listings
type VehicleListFilter struct {
	Make       string `form:"make"`
	Model      string `form:"model"`
	Year       int    `form:"year"`
	EngineType string `form:"engine_type"`
	SortBy     string `form:"sort_by"`
	SortDir    string `form:"sort_dir" binding:"omitempty,oneof=asc desc"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ReportStatusRequest represents a vehicle status snapshot submission
type ReportStatusRequest struct {
	Odometer    *decimal.Decimal `json:"odometer"`
	EngineHours *decimal.Decimal `json:"engine_hours"`
	FuelLevel   *int             `json:"fuel_level"`
	Notes       string           `json:"notes" binding:"max=2000"`
}

// VehicleStatusResponse represents a status snapshot in API responses
type VehicleStatusResponse struct {
	ID          uuid.UUID        `json:"id"`
	VehicleID   uuid.UUID        `json:"vehicle_id"`
	ReportedBy  uuid.UUID        `json:"reported_by"`
	Odometer    *decimal.Decimal `json:"odometer,omitempty"`
	EngineHours *decimal.Decimal `json:"engine_hours,omitempty"`
	FuelLevel   *int             `json:"fuel_level,omitempty"`
	Notes       string           `json:"notes"`
	CreatedAt   time.Time        `json:"created_at"`
}

// ToVehicleResponse converts a vehicle aggregate to a response DTO
func ToVehicleResponse(v *fleet.Vehicle) *VehicleResponse {
	return &VehicleResponse{
		ID:                v.ID,
		Make:              v.Make,
		Model:             v.Model,
		Year:              v.Year,
		VIN:               v.VIN.String(),
		LicensePlate:      v.LicensePlate.String(),
		EngineType:        v.EngineType.String(),
		EngineTypeDisplay: v.EngineType.DisplayName(),
		DisplayName:       v.DisplayName(),
		CreatedBy:         v.GetCreatedBy(),
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
		Version:           v.GetVersion(),
	}
}

// ToVehicleStatusResponse converts a status snapshot to a response DTO
func ToVehicleStatusResponse(s *fleet.VehicleStatus) *VehicleStatusResponse {
	return &VehicleStatusResponse{
		ID:          s.ID,
		VehicleID:   s.VehicleID,
		ReportedBy:  s.ReportedBy,
		Odometer:    s.Odometer,
		EngineHours: s.EngineHours,
		FuelLevel:   s.FuelLevel,
		Notes:       s.Notes,
		CreatedAt:   s.CreatedAt,
	}
}
