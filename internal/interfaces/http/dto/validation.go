package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	vinPattern   = regexp.MustCompile(`(?i)^[A-HJ-NPR-Z0-9]{17}$`)
	platePattern = regexp.MustCompile(`(?i)^[A-Z0-9]{7,8}$`)
)

func init() {
	if err := RegisterCustomValidators(); err != nil {
		panic(err)
	}
}

// validVIN checks the 17-character format and charset. The check digit is
// verified in the domain layer; this only rejects obviously malformed input
// before it reaches a use case.
func validVIN(fl validator.FieldLevel) bool {
	return vinPattern.MatchString(fl.Field().String())
}

func validLicensePlate(fl validator.FieldLevel) bool {
	return platePattern.MatchString(fl.Field().String())
}

// RegisterCustomValidators installs domain-specific validation tags on gin's
// binding engine. Case and whitespace normalization happens in the domain
// constructors, so both validators accept either case.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("vin", validVIN); err != nil {
		return err
	}
	return v.RegisterValidation("license_plate", validLicensePlate)
}
