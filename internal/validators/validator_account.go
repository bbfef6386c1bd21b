package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-accounts/models"
	"github.com/go-playground/validator/v10"
)

const (
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldSubscription = "subscription"
)

// AccountValidator checks the account request models against their
// `validate` struct tags.
type AccountValidator struct {
	validate *validator.Validate
}

func NewAccountValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report JSON names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	registerCustomRules(v)

	return &AccountValidator{validate: v}
}

// Validate validates one of the account request models. When fields are
// given, only those JSON fields are checked.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateStruct(&value, fields...)
	case *models.RegisterRequest:
		return v.validateStruct(value, fields...)

	case models.LoginRequest:
		return v.validateStruct(&value, fields...)
	case *models.LoginRequest:
		return v.validateStruct(value, fields...)

	case models.SubscriptionRequest:
		return v.validateStruct(&value, fields...)
	case *models.SubscriptionRequest:
		return v.validateStruct(value, fields...)

	case models.ResendVerificationRequest:
		return v.validateStruct(&value, fields...)
	case *models.ResendVerificationRequest:
		return v.validateStruct(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateStruct(obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.Struct(obj)
	} else {
		goFields, mapErr := goFieldNames(obj, fields)
		if mapErr != nil {
			return mapErr
		}
		err = v.validate.StructPartial(obj, goFields...)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("error validating %T: %w", obj, err)
	}

	result := &ValidationError{Errors: make(map[string]string, len(validationErrors))}
	for _, fe := range validationErrors {
		result.Errors[fe.Field()] = errorMessage(fe)
	}
	return result
}

// goFieldNames maps JSON field names to the Go names StructPartial expects.
func goFieldNames(obj any, jsonFields []string) ([]string, error) {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	names := make([]string, 0, len(jsonFields))
	for _, jsonField := range jsonFields {
		found := false
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if strings.SplitN(f.Tag.Get("json"), ",", 2)[0] == jsonField {
				names = append(names, f.Name)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, jsonField)
		}
	}
	return names, nil
}

func errorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case TagMaxBytes:
		return fmt.Sprintf("must be at most %s bytes long", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("is invalid (failed on '%s' tag)", fe.Tag())
	}
}
