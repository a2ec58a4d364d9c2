package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the client.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

// APIError is the plain {error, details} body the dashboard expects.
type APIError struct {
	Message string `json:"error"`
	Details string `json:"details,omitempty"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

// StructuredError carries per-field validation problems.
type StructuredError struct {
	Message string              `json:"error"`
	Fields  map[string][]string `json:"details"`
	Status  int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Fields[field] = append(s.Fields[field], problem)
}

var (
	MalformedBodyError  = NewSimple(http.StatusBadRequest, "Malformed JSON body")
	InternalServerError = NewSimple(http.StatusInternalServerError, "Internal server error")
	NotFoundError       = NewSimple(http.StatusNotFound, "Resource not found")
)

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

// NewValidation is a 400 with a free-form reason.
func NewValidation(msg string, args ...any) *APIError {
	return NewSimple(http.StatusBadRequest, msg, args...)
}

// NewNotFound names the missing entity, e.g. "ship 42 not found".
func NewNotFound(entity string, id int64) *APIError {
	return NewSimple(http.StatusNotFound, "%s %d not found", entity, id)
}

// NewConflict is a 409 invariant violation.
func NewConflict(msg string, args ...any) *APIError {
	return NewSimple(http.StatusConflict, msg, args...)
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", name, dataType)
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Message: "Validation failed",
		Fields:  make(map[string][]string),
		Status:  code,
	}
}

// FromValidationError translates validator.ValidationErrors into the
// structured {error, details: {field: [...]}} body. Returns nil when err is
// not a validation error.
func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}

	resp := NewStructured(http.StatusBadRequest)
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			resp.Add(field, "This field is required")
		case "min", "gte":
			resp.Add(field, "Value is too small, min: "+fe.Param())
		case "max", "lte":
			resp.Add(field, "Value is too large, max: "+fe.Param())
		case "oneof":
			resp.Add(field, "Value must be one of: "+fe.Param())
		case "latitude":
			resp.Add(field, "Value must be a latitude in [-90, 90]")
		case "longitude":
			resp.Add(field, "Value must be a longitude in [-180, 180]")
		case "timestamp":
			resp.Add(field, "Value must be an ISO-8601 timestamp")
		case "clocktime":
			resp.Add(field, "Value must be a 24h clock time (HH:MM)")
		case "shipstatus":
			resp.Add(field, "Value must be one of: docked loading unloading departed")
		case "rank":
			resp.Add(field, "Value must be one of: Captain Engineer Military Researcher")
		case "typecode":
			resp.Add(field, "Value must be '{base}_{slug}' with base one of: cargo military research passenger")
		default:
			resp.Add(field, "Invalid value provided")
		}
	}
	return resp
}
