// Package validation holds the struct validator shared by the HTTP binding layer and the
// CLI importer, and turns its failures into field→reason maps.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/SscSPs/fx_deal_system/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// BodyField is the key used when a failure cannot be attributed to a single field.
const BodyField = "body"

// Validator is a wrapper around the validator library.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reads `binding` tags, like gin does.
func New() (*Validator, error) {
	v := validator.New()
	v.SetTagName("binding")
	if err := Configure(v); err != nil {
		return nil, err
	}
	return &Validator{validate: v}, nil
}

// Configure reports fields by their JSON name and registers the custom tags used by the DTOs.
func Configure(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return fmt.Errorf("register notblank validation: %w", err)
	}
	return nil
}

// ValidateStruct validates s and returns apperrors.ValidationErrors on failure.
func (v *Validator) ValidateStruct(s any) error {
	if err := v.validate.Struct(s); err != nil {
		if fields, ok := FieldErrors(err); ok {
			return fields
		}
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// FieldErrors converts validator and JSON decoding failures into a field→reason map.
// It reports false when err carries no field information.
func FieldErrors(err error) (apperrors.ValidationErrors, bool) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(apperrors.ValidationErrors, len(verrs))
		for _, fe := range verrs {
			field := fe.Field()
			if _, seen := out[field]; seen {
				continue
			}
			out[field] = message(fe)
		}
		return out, true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperrors.ValidationErrors{
			typeErr.Field: fmt.Sprintf("%s has an invalid type, expected %s", typeErr.Field, typeErr.Type),
		}, true
	}
	return nil, false
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "len":
		return fmt.Sprintf("%s must be %s letters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return field + " is invalid"
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
