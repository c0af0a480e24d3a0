package maintenance

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fleetcare/backend/internal/domain/shared"
)

// IntervalType is the unit a maintenance interval is measured in.
type IntervalType string

const (
	IntervalKilometers  IntervalType = "kilometers"
	IntervalEngineHours IntervalType = "engine_hours"
	IntervalYears       IntervalType = "years"
)

// ErrUnknownIntervalType is returned for units outside the closed set
var ErrUnknownIntervalType = shared.NewDomainError("INVALID_INTERVAL_TYPE", "Unknown maintenance interval type")

// ParseIntervalType parses an interval unit from its token or display
// form, case-insensitively.
func ParseIntervalType(value string) (IntervalType, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	switch IntervalType(normalized) {
	case IntervalKilometers:
		return IntervalKilometers, nil
	case IntervalEngineHours:
		return IntervalEngineHours, nil
	case IntervalYears:
		return IntervalYears, nil
	default:
		return "", ErrUnknownIntervalType
	}
}

// IsValid reports whether the value is one of the known units
func (t IntervalType) IsValid() bool {
	switch t {
	case IntervalKilometers, IntervalEngineHours, IntervalYears:
		return true
	}
	return false
}

// DisplayName returns the human-readable unit name
func (t IntervalType) DisplayName() string {
	switch t {
	case IntervalKilometers:
		return "Kilometers"
	case IntervalEngineHours:
		return "Engine Hours"
	case IntervalYears:
		return "Years"
	default:
		return string(t)
	}
}

// String returns the canonical token
func (t IntervalType) String() string {
	return string(t)
}

// MarshalJSON implements json.Marshaler
func (t IntervalType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// UnmarshalJSON implements json.Unmarshaler, re-validating the input
func (t *IntervalType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseIntervalType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer for database storage
func (t IntervalType) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan implements sql.Scanner for database retrieval
func (t *IntervalType) Scan(value any) error {
	if value == nil {
		*t = ""
		return nil
	}
	switch s := value.(type) {
	case string:
		*t = IntervalType(s)
	case []byte:
		*t = IntervalType(s)
	default:
		return fmt.Errorf("cannot scan %T into IntervalType", value)
	}
	return nil
}
