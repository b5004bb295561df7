package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ValidationDetail describes one rejected input field. Loc is the path to
// the field, e.g. ["body", "title"] or ["path", "note_id"].
type ValidationDetail struct {
	Loc  []interface{} `json:"loc"`
	Msg  string        `json:"msg"`
	Type string        `json:"type"`
}

var initValidatorOnce sync.Once

// InitValidator makes gin's validator report fields by their JSON names.
func InitValidator() {
	initValidatorOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(jsonFieldName)
		}
	})
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// ValidationDetails converts an error returned by gin's JSON binding into
// field-level details.
func ValidationDetails(err error) []ValidationDetail {
	var (
		validationErrs validator.ValidationErrors
		syntaxErr      *json.SyntaxError
		typeErr        *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &validationErrs):
		details := make([]ValidationDetail, 0, len(validationErrs))
		for _, fe := range validationErrs {
			details = append(details, fieldErrorDetail(fe))
		}
		return details
	case errors.As(err, &syntaxErr):
		return []ValidationDetail{{
			Loc:  []interface{}{"body", syntaxErr.Offset},
			Msg:  "JSON decode error",
			Type: "json_invalid",
		}}
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return []ValidationDetail{{
				Loc:  []interface{}{"body"},
				Msg:  "Input should be a valid dictionary or object to extract fields from",
				Type: "model_attributes_type",
			}}
		}
		return []ValidationDetail{{
			Loc:  []interface{}{"body", typeErr.Field},
			Msg:  fmt.Sprintf("Input should be a valid %s", typeErr.Type.Kind()),
			Type: fmt.Sprintf("%s_type", typeErr.Type.Kind()),
		}}
	case errors.Is(err, io.EOF):
		return []ValidationDetail{{
			Loc:  []interface{}{"body"},
			Msg:  "Field required",
			Type: "missing",
		}}
	case errors.Is(err, io.ErrUnexpectedEOF):
		return []ValidationDetail{{
			Loc:  []interface{}{"body"},
			Msg:  "JSON decode error",
			Type: "json_invalid",
		}}
	default:
		return []ValidationDetail{{
			Loc:  []interface{}{"body"},
			Msg:  err.Error(),
			Type: "value_error",
		}}
	}
}

func fieldErrorDetail(fe validator.FieldError) ValidationDetail {
	detail := ValidationDetail{Loc: []interface{}{"body", fe.Field()}}
	switch fe.Tag() {
	case "required":
		detail.Msg = "Field required"
		detail.Type = "missing"
	case "min":
		detail.Msg = fmt.Sprintf("String should have at least %s", characters(fe.Param()))
		detail.Type = "string_too_short"
	case "max":
		detail.Msg = fmt.Sprintf("String should have at most %s", characters(fe.Param()))
		detail.Type = "string_too_long"
	default:
		detail.Msg = fe.Error()
		detail.Type = fe.Tag()
	}
	return detail
}

func characters(n string) string {
	if n == "1" {
		return "1 character"
	}
	return n + " characters"
}
