package fleet

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fleetcare/backend/internal/domain/shared"
)

// License plate validation errors
var (
	ErrPlateEmpty   = shared.NewDomainError("INVALID_LICENSE_PLATE", "License plate cannot be empty")
	ErrPlateTooLong = shared.NewDomainError("INVALID_LICENSE_PLATE", "License plate cannot exceed 8 characters")
	ErrPlateFormat  = shared.NewDomainError("INVALID_LICENSE_PLATE", "License plate format is invalid")
)

const maxPlateLength = 8

// LicensePlate is a value object representing a validated license plate
// in its canonical upper-cased form. Two shapes are accepted: eight
// characters as DDDLLLDD or seven characters as LDDDLLL.
type LicensePlate struct {
	value string
}

// NewLicensePlate validates and normalizes a license plate
func NewLicensePlate(value string) (LicensePlate, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	if normalized == "" {
		return LicensePlate{}, ErrPlateEmpty
	}
	if len(normalized) > maxPlateLength {
		return LicensePlate{}, ErrPlateTooLong
	}
	if !matchesPlateShape(normalized) {
		return LicensePlate{}, ErrPlateFormat
	}
	return LicensePlate{value: normalized}, nil
}

func matchesPlateShape(plate string) bool {
	switch len(plate) {
	case 8:
		return plateMatches(plate, "DDDLLLDD")
	case 7:
		return plateMatches(plate, "LDDDLLL")
	default:
		return false
	}
}

func plateMatches(plate, shape string) bool {
	for i := 0; i < len(shape); i++ {
		c := plate[i]
		switch shape[i] {
		case 'D':
			if c < '0' || c > '9' {
				return false
			}
		case 'L':
			if c < 'A' || c > 'Z' {
				return false
			}
		}
	}
	return true
}

// String returns the canonical (upper-cased) form
func (p LicensePlate) String() string {
	return p.value
}

// IsZero returns true if the plate is the zero value
func (p LicensePlate) IsZero() bool {
	return p.value == ""
}

// Equals compares two plates by canonical form
func (p LicensePlate) Equals(other LicensePlate) bool {
	return p.value == other.value
}

// MarshalJSON implements json.Marshaler
func (p LicensePlate) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.value)
}

// UnmarshalJSON implements json.Unmarshaler, re-validating the input
func (p *LicensePlate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	plate, err := NewLicensePlate(s)
	if err != nil {
		return err
	}
	*p = plate
	return nil
}

// Value implements driver.Valuer for database storage
func (p LicensePlate) Value() (driver.Value, error) {
	return p.value, nil
}

// Scan implements sql.Scanner for database retrieval
func (p *LicensePlate) Scan(value any) error {
	if value == nil {
		p.value = ""
		return nil
	}
	switch s := value.(type) {
	case string:
		p.value = strings.ToUpper(s)
	case []byte:
		p.value = strings.ToUpper(string(s))
	default:
		return fmt.Errorf("cannot scan %T into LicensePlate", value)
	}
	return nil
}
