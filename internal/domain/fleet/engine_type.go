package fleet

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fleetcare/backend/internal/domain/shared"
)

// ErrEngineTypeEmpty is returned when an engine type is constructed
// from blank input.
var ErrEngineTypeEmpty = shared.NewDomainError("INVALID_ENGINE_TYPE", "Engine type cannot be empty")

// Canonical engine type tokens. Anything else is carried as a custom
// engine type under its normalized name.
const (
	engineGasoline = "gasoline"
	engineDiesel   = "diesel"
	engineElectric = "electric"
)

// EngineType is a value object holding the normalized engine type
// token. Common synonyms collapse onto the standard tokens.
type EngineType struct {
	value string
}

// NewEngineType normalizes and classifies an engine type string
func NewEngineType(value string) (EngineType, error) {
	normalized := normalizeEngineToken(value)
	if normalized == "" {
		return EngineType{}, ErrEngineTypeEmpty
	}
	switch normalized {
	case "petrol", "gas", engineGasoline:
		return EngineType{value: engineGasoline}, nil
	case engineDiesel:
		return EngineType{value: engineDiesel}, nil
	case "ev", "bev", engineElectric:
		return EngineType{value: engineElectric}, nil
	default:
		return EngineType{value: normalized}, nil
	}
}

// normalizeEngineToken lower-cases the input and collapses spaces and
// hyphens to underscores.
func normalizeEngineToken(value string) string {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	return strings.ReplaceAll(normalized, "-", "_")
}

// EngineTypeGasoline returns the standard gasoline engine type
func EngineTypeGasoline() EngineType { return EngineType{value: engineGasoline} }

// EngineTypeDiesel returns the standard diesel engine type
func EngineTypeDiesel() EngineType { return EngineType{value: engineDiesel} }

// EngineTypeElectric returns the standard electric engine type
func EngineTypeElectric() EngineType { return EngineType{value: engineElectric} }

// StandardEngineTypes returns the closed set of well-known engine types
func StandardEngineTypes() []EngineType {
	return []EngineType{EngineTypeGasoline(), EngineTypeDiesel(), EngineTypeElectric()}
}

// String returns the normalized token
func (e EngineType) String() string {
	return e.value
}

// IsZero returns true if the engine type is the zero value
func (e EngineType) IsZero() bool {
	return e.value == ""
}

// IsStandard returns true for the well-known engine types
func (e EngineType) IsStandard() bool {
	switch e.value {
	case engineGasoline, engineDiesel, engineElectric:
		return true
	}
	return false
}

// IsElectricPowered returns true for battery-electric engines
func (e EngineType) IsElectricPowered() bool {
	return e.value == engineElectric
}

// UsesFossilFuel returns true for gasoline and diesel engines
func (e EngineType) UsesFossilFuel() bool {
	return e.value == engineGasoline || e.value == engineDiesel
}

// IsAlternativeFuel returns true for custom engine types outside the
// standard set.
func (e EngineType) IsAlternativeFuel() bool {
	return e.value != "" && !e.IsStandard()
}

// DisplayName returns a human-readable form of the engine type
func (e EngineType) DisplayName() string {
	words := strings.Split(e.value, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Equals compares two engine types by normalized token
func (e EngineType) Equals(other EngineType) bool {
	return e.value == other.value
}

// MarshalJSON implements json.Marshaler
func (e EngineType) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.value)
}

// UnmarshalJSON implements json.Unmarshaler, re-validating the input
func (e *EngineType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	et, err := NewEngineType(s)
	if err != nil {
		return err
	}
	*e = et
	return nil
}

// Value implements driver.Valuer for database storage
func (e EngineType) Value() (driver.Value, error) {
	return e.value, nil
}

// Scan implements sql.Scanner for database retrieval
func (e *EngineType) Scan(value any) error {
	if value == nil {
		e.value = ""
		return nil
	}
	switch s := value.(type) {
	case string:
		e.value = normalizeEngineToken(s)
	case []byte:
		e.value = normalizeEngineToken(string(s))
	default:
		return fmt.Errorf("cannot scan %T into EngineType", value)
	}
	return nil
}
