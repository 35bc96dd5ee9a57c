package validation

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// slugPattern matches lowercase URL slugs like "playera-oversize-negra"
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// mxPostalCodePattern matches the five-digit Mexican postal codes
var mxPostalCodePattern = regexp.MustCompile(`^[0-9]{5}$`)

// Register installs the custom binding validations on gin's validator engine.
// It must run before any handler binds a request using these tags.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("slug", validateSlug); err != nil {
		return err
	}
	return v.RegisterValidation("mx_postal_code", validateMXPostalCode)
}

func validateSlug(fl validator.FieldLevel) bool {
	return slugPattern.MatchString(fl.Field().String())
}

func validateMXPostalCode(fl validator.FieldLevel) bool {
	return mxPostalCodePattern.MatchString(fl.Field().String())
}
