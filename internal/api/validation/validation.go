// Package validation implements the declarative request-validation engine.
// Rule sets are struct tags on the per-endpoint request types; evaluation
// never stops at the first violation, so a response always carries every
// field error at once.
package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rkshop/admin-api/internal/api/shared"
)

// Validator evaluates a rule set against a decoded request and renders the
// violations as field/message pairs.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the application's custom rules registered.
func New() *Validator {
	v := validator.New()

	// Report fields by their JSON names so error entries match the wire
	// format the client sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Identifier fields must be syntactically valid 24-hex ObjectIDs.
	// This is a format check only, never an existence check.
	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		_, err := primitive.ObjectIDFromHex(fl.Field().String())
		return err == nil
	})

	return &Validator{validate: v}
}

// Check evaluates every declared rule on the request and returns the full
// list of violations, or nil when the request is valid.
func (v *Validator) Check(req interface{}) []shared.FieldError {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []shared.FieldError{{Field: "", Message: "invalid request"}}
	}

	fieldErrors := make([]shared.FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		field := fieldPath(fe.Namespace())
		fieldErrors = append(fieldErrors, shared.FieldError{
			Field:   field,
			Message: renderMessage(field, fe),
		})
	}
	return fieldErrors
}

// FieldErrorsFromDecode translates a JSON decode failure into field errors
// when the offending field can be identified, so a type mismatch reads like
// any other validation failure. Returns nil for errors with no usable
// field information.
func FieldErrorsFromDecode(err error) []shared.FieldError {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Field == "" {
		return nil
	}

	typeName := jsonTypeName(typeErr.Type)
	message := typeErr.Field + " must be a " + typeName
	if typeName == "object" {
		message = typeErr.Field + " must be of type object"
	}
	return []shared.FieldError{{Field: typeErr.Field, Message: message}}
}

// fieldPath drops the top-level struct name from a validator namespace,
// leaving the dotted JSON path ("productImage.publicId").
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func jsonTypeName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Struct, reflect.Map:
		return "object"
	default:
		return t.Kind().String()
	}
}
