package fleet

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fleetcare/backend/internal/domain/shared"
)

// VIN validation errors
var (
	ErrVINEmpty      = shared.NewDomainError("INVALID_VIN", "VIN cannot be empty")
	ErrVINLength     = shared.NewDomainError("INVALID_VIN", "VIN must be exactly 17 characters")
	ErrVINCharacters = shared.NewDomainError("INVALID_VIN", "VIN contains invalid characters (I, O and Q are not allowed)")
	ErrVINCheckDigit = shared.NewDomainError("INVALID_VIN", "VIN check digit does not match")
)

const vinLength = 17

// ISO 3779 position weights. Position 9 (index 8) holds the check
// digit itself and carries weight zero.
var vinWeights = [vinLength]int{8, 7, 6, 5, 4, 3, 2, 10, 0, 9, 8, 7, 6, 5, 4, 3, 2}

// VIN is a value object representing a validated vehicle identification
// number in its canonical upper-cased form.
type VIN struct {
	value string
}

// NewVIN validates and normalizes a vehicle identification number,
// including the ISO 3779 check digit at position 9.
func NewVIN(value string) (VIN, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	if normalized == "" {
		return VIN{}, ErrVINEmpty
	}
	if len(normalized) != vinLength {
		return VIN{}, ErrVINLength
	}
	for i := 0; i < vinLength; i++ {
		if vinCharValue(normalized[i]) < 0 {
			return VIN{}, ErrVINCharacters
		}
	}
	if computeVINCheckDigit(normalized) != normalized[8] {
		return VIN{}, ErrVINCheckDigit
	}
	return VIN{value: normalized}, nil
}

// vinCharValue returns the transliterated numeric value of a VIN
// character, or -1 for characters outside the VIN alphabet.
func vinCharValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c == 'A' || c == 'J':
		return 1
	case c == 'B' || c == 'K' || c == 'S':
		return 2
	case c == 'C' || c == 'L' || c == 'T':
		return 3
	case c == 'D' || c == 'M' || c == 'U':
		return 4
	case c == 'E' || c == 'N' || c == 'V':
		return 5
	case c == 'F' || c == 'W':
		return 6
	case c == 'G' || c == 'P' || c == 'X':
		return 7
	case c == 'H' || c == 'Y':
		return 8
	case c == 'R' || c == 'Z':
		return 9
	default:
		return -1
	}
}

func computeVINCheckDigit(vin string) byte {
	sum := 0
	for i := 0; i < vinLength; i++ {
		sum += vinCharValue(vin[i]) * vinWeights[i]
	}
	remainder := sum % 11
	if remainder == 10 {
		return 'X'
	}
	return byte('0' + remainder)
}

// String returns the canonical 17-character form
func (v VIN) String() string {
	return v.value
}

// IsZero returns true if the VIN is the zero value
func (v VIN) IsZero() bool {
	return v.value == ""
}

// WMI returns the world manufacturer identifier (positions 1-3)
func (v VIN) WMI() string {
	return v.value[:3]
}

// VDS returns the vehicle descriptor section (positions 4-9)
func (v VIN) VDS() string {
	return v.value[3:9]
}

// VIS returns the vehicle identifier section (positions 10-17)
func (v VIN) VIS() string {
	return v.value[9:]
}

// ModelYearCode returns the model year character (position 10)
func (v VIN) ModelYearCode() byte {
	return v.value[9]
}

// PlantCode returns the assembly plant character (position 11)
func (v VIN) PlantCode() byte {
	return v.value[10]
}

// Equals compares two VINs by canonical form
func (v VIN) Equals(other VIN) bool {
	return v.value == other.value
}

// MarshalJSON implements json.Marshaler
func (v VIN) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.value)
}

// UnmarshalJSON implements json.Unmarshaler, re-validating the input
func (v *VIN) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	vin, err := NewVIN(s)
	if err != nil {
		return err
	}
	*v = vin
	return nil
}

// Value implements driver.Valuer for database storage
func (v VIN) Value() (driver.Value, error) {
	return v.value, nil
}

// Scan implements sql.Scanner for database retrieval
func (v *VIN) Scan(value any) error {
	if value == nil {
		v.value = ""
		return nil
	}
	switch s := value.(type) {
	case string:
		v.value = strings.ToUpper(s)
	case []byte:
		v.value = strings.ToUpper(string(s))
	default:
		return fmt.Errorf("cannot scan %T into VIN", value)
	}
	return nil
}
