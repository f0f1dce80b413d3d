package utils

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/artsoul-app/artsoul/internal/shared/errors"
)

var registerOnce sync.Once

// RegisterValidators makes gin report JSON field names and adds the custom tags
// used by request DTOs. Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			_, err := ParseISODate(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("maxbytes", maxBytes)
	})
}

// maxBytes bounds the encoded length of a string rather than its rune count.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
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

// ParseISODate accepts a calendar date or an RFC 3339 timestamp.
func ParseISODate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// BindingError converts a gin binding failure into a validation error that
// names every offending field.
func BindingError(err error) error {
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		messages := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fieldPath(fe))
			messages = append(messages, fieldErrorMessage(fe))
		}
		return errors.NewFieldValidationError("Validation failed", fields, strings.Join(messages, "; "))
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case stderrors.As(err, &syntaxErr):
		return errors.NewValidationError("Malformed JSON body")
	case stderrors.As(err, &typeErr):
		return errors.NewFieldValidationError("Validation failed", []string{typeErr.Field},
			fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type.String()))
	default:
		return errors.NewValidationError("Invalid request body", err.Error())
	}
}

// fieldPath drops the top-level struct name from the namespace: "registerRequest.preferences.favorite_types" -> "preferences.favorite_types".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fieldPath(fe)
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "maxbytes":
		return fmt.Sprintf("%s must be at most %s bytes long", field, param)
	case "eqfield":
		return fmt.Sprintf("%s must match %s", field, strings.ToLower(param[:1])+param[1:])
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "isodate":
		return fmt.Sprintf("%s must be a valid ISO-8601 date", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, fe.Tag())
	}
}
