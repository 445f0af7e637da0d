package service

import (
	"errors"
	"fmt"
	"strings"

	"genshin-trade-center/pkg/validator"
)

// Error taxonomy shared by all services. Handlers map these to HTTP
// statuses; services never retry or log them.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	ErrConflict  = errors.New("conflict")
)

// ValidationError rejects a request whose fields violate their declared
// ranges. Nothing is written when it is returned.
type ValidationError struct {
	Fields []*validator.ErrorResponse
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("field '%s' failed on tag '%s'", f.FailedField, f.Tag)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// validateStruct runs the shared validator and wraps failures in a
// *ValidationError, or returns nil when the request is clean.
func validateStruct(data interface{}) error {
	if errs := validator.ValidateStruct(data); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
