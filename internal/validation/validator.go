// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/stylist/internal/wardrobe"
)

// ErrorCode is the API error code for failed request validation.
const ErrorCode = "VALIDATION_ERROR"

// singleton validator instance
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is a single failed field.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
	value   any
}

// Value returns the rejected value.
func (e *FieldError) Value() any {
	return e.value
}

// Error returns a human-readable error message.
func (e *FieldError) Error() string {
	return e.Message
}

// RequestValidationError collects every failed field of one request.
type RequestValidationError struct {
	fields []FieldError
}

// Fields returns the failed fields in struct order.
func (ve *RequestValidationError) Fields() []FieldError {
	return ve.fields
}

// Error implements the error interface, returning a combined error message.
func (ve *RequestValidationError) Error() string {
	if len(ve.fields) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(ve.fields))
	for i := range ve.fields {
		messages[i] = ve.fields[i].Message
	}
	return strings.Join(messages, "; ")
}

// APIError is the validation failure in the API error shape. It mirrors
// api.APIError to avoid an import cycle.
type APIError struct {
	Code    string
	Message string
	Details map[string]any
}

// ToAPIError converts the failure into a VALIDATION_ERROR response body.
func (ve *RequestValidationError) ToAPIError() *APIError {
	switch len(ve.fields) {
	case 0:
		return &APIError{Code: ErrorCode, Message: "Validation failed"}
	case 1:
		f := ve.fields[0]
		return &APIError{
			Code:    ErrorCode,
			Message: f.Message,
			Details: map[string]any{
				"field": f.Field,
				"tag":   f.Tag,
				"value": f.value,
			},
		}
	default:
		return &APIError{
			Code:    ErrorCode,
			Message: ve.Error(),
			Details: map[string]any{"fields": ve.fields},
		}
	}
}

// enumValidators are the custom tags backed by the wardrobe parsers.
var enumValidators = map[string]func(string) error{
	"occasion":  func(s string) error { _, err := wardrobe.ParseOccasion(s); return err },
	"weather":   func(s string) error { _, err := wardrobe.ParseWeather(s); return err },
	"undertone": func(s string) error { _, err := wardrobe.ParseUndertone(s); return err },
	"style":     func(s string) error { _, err := wardrobe.ParseStyle(s); return err },
	"colorhex":  func(s string) error { _, err := wardrobe.ParseHex(s); return err },
}

// GetValidator returns the singleton validator instance.
// Field names in errors follow the json tag so they match request bodies
// and query parameters.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})

		for tag, parse := range enumValidators {
			// Registration only fails for empty tags or nil funcs.
			_ = validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
				return parse(fl.Field().String()) == nil
			})
		}
	})

	return validate
}

// ValidateStruct validates a struct using the singleton validator.
// Returns nil if validation passes, or *RequestValidationError if validation fails.
func ValidateStruct(s any) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &RequestValidationError{
			fields: []FieldError{{Field: "unknown", Tag: "unknown", Message: err.Error()}},
		}
	}

	fields := make([]FieldError, len(validationErrs))
	for i, fe := range validationErrs {
		fields[i] = FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Message: translateError(fe),
			value:   fe.Value(),
		}
	}
	return &RequestValidationError{fields: fields}
}

// errorMessageTemplates maps validation tags to message templates.
var errorMessageTemplates = map[string]string{
	"required":  "%s is required",
	"occasion":  "%s must be a known occasion",
	"weather":   "%s must be a known weather condition",
	"undertone": "%s must be warm, cool or neutral",
	"style":     "%s must be a known style",
	"colorhex":  "%s must be a hex color like #C8A27A",
}

// errorMessageWithParam maps validation tags to templates that include param.
var errorMessageWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
}

// translateError converts a validator.FieldError to a human-readable message.
func translateError(fe validator.FieldError) string {
	field, tag, param := fe.Field(), fe.Tag(), fe.Param()

	if template, ok := errorMessageTemplates[tag]; ok {
		return fmt.Sprintf(template, field)
	}
	if template, ok := errorMessageWithParam[tag]; ok {
		return fmt.Sprintf(template, field, param)
	}

	isString := fe.Kind() == reflect.String
	isSlice := fe.Kind() == reflect.Slice
	switch tag {
	case "min":
		switch {
		case isString:
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		case isSlice:
			return fmt.Sprintf("%s must contain at least %s items", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		switch {
		case isString:
			return fmt.Sprintf("%s must be at most %s characters", field, param)
		case isSlice:
			return fmt.Sprintf("%s must contain at most %s items", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}
