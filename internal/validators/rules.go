package validators

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// TagMaxBytes limits the byte length of a string. The built-in "max" tag
// counts runes, which lets multi-byte passwords past the bcrypt limit.
const TagMaxBytes = "maxbytes"

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("failed to register validation tag %q: %v", tag, err))
		}
	}

	mustRegister(TagMaxBytes, validateMaxBytes)
}

func validateMaxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil || limit < 0 {
		return false
	}
	return len(fl.Field().String()) <= limit
}
