package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fleetcare/backend/internal/domain/shared"
)

// Email validation errors
var (
	ErrEmailEmpty   = shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	ErrEmailFormat  = shared.NewDomainError("INVALID_EMAIL", "Email format is invalid")
	ErrEmailTooLong = shared.NewDomainError("INVALID_EMAIL", "Email local or domain part is too long")
)

const (
	maxEmailLocalLen  = 64
	maxEmailDomainLen = 253
)

// Email is a value object representing a validated email address.
// The canonical form is lower-cased; construction via NewEmail is the
// only way to obtain a non-zero Email.
type Email struct {
	value string
}

// NewEmail validates and normalizes the given address
func NewEmail(value string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return Email{}, ErrEmailEmpty
	}
	if strings.Count(normalized, "@") != 1 {
		return Email{}, ErrEmailFormat
	}

	at := strings.IndexByte(normalized, '@')
	local, domain := normalized[:at], normalized[at+1:]

	if local == "" || domain == "" {
		return Email{}, ErrEmailFormat
	}
	if len(local) > maxEmailLocalLen || len(domain) > maxEmailDomainLen {
		return Email{}, ErrEmailTooLong
	}
	if !isValidEmailLocal(local) || !isValidEmailDomain(domain) {
		return Email{}, ErrEmailFormat
	}
	if !strings.Contains(domain, ".") {
		return Email{}, ErrEmailFormat
	}

	return Email{value: normalized}, nil
}

func isValidEmailLocal(s string) bool {
	for _, r := range s {
		if isAlphanumeric(r) || r == '.' || r == '-' || r == '_' || r == '+' {
			continue
		}
		return false
	}
	return true
}

func isValidEmailDomain(s string) bool {
	for _, r := range s {
		if isAlphanumeric(r) || r == '.' || r == '-' {
			continue
		}
		return false
	}
	return true
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// String returns the canonical (lower-cased) address
func (e Email) String() string {
	return e.value
}

// IsZero returns true if the Email is the zero value
func (e Email) IsZero() bool {
	return e.value == ""
}

// Domain returns the part after the '@'
func (e Email) Domain() string {
	at := strings.IndexByte(e.value, '@')
	if at < 0 {
		return ""
	}
	return e.value[at+1:]
}

// Equals compares two emails by canonical form
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

// MarshalJSON implements json.Marshaler
func (e Email) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.value)
}

// UnmarshalJSON implements json.Unmarshaler, re-validating the input
func (e *Email) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	email, err := NewEmail(s)
	if err != nil {
		return err
	}
	*e = email
	return nil
}

// Value implements driver.Valuer for database storage
func (e Email) Value() (driver.Value, error) {
	return e.value, nil
}

// Scan implements sql.Scanner for database retrieval
func (e *Email) Scan(value any) error {
	if value == nil {
		e.value = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		e.value = strings.ToLower(v)
	case []byte:
		e.value = strings.ToLower(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Email", value)
	}
	return nil
}
