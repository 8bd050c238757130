package shared

import (
	"errors"
	"fmt"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target carries the same code, so that errors built with
// the constructors below still match the package sentinels via errors.Is.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Domain error codes
const (
	CodeNotFound          = "NOT_FOUND"
	CodeReferenceNotFound = "REFERENCE_NOT_FOUND"
	CodeHasDependents     = "HAS_DEPENDENTS"
	CodeAlreadyExists     = "ALREADY_EXISTS"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeUnauthorized      = "UNAUTHORIZED"
)

// Common domain errors
var (
	ErrNotFound          = NewDomainError(CodeNotFound, "Resource not found")
	ErrReferenceNotFound = NewDomainError(CodeReferenceNotFound, "Referenced resource not found")
	ErrHasDependents     = NewDomainError(CodeHasDependents, "Resource has dependent records")
	ErrAlreadyExists     = NewDomainError(CodeAlreadyExists, "Resource already exists")
	ErrInvalidInput      = NewDomainError(CodeInvalidInput, "Invalid input provided")
	ErrUnauthorized      = NewDomainError(CodeUnauthorized, "Not authorized to perform this action")
)

// NewNotFoundError reports that the entity with the given id does not exist.
func NewNotFoundError(entity string, id int) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %d not found", entity, id),
	}
}

// NewReferenceNotFoundError reports that a foreign-key style input does not
// resolve. The offending field and id are carried in Details.
func NewReferenceNotFoundError(field string, id int) *DomainError {
	return &DomainError{
		Code:    CodeReferenceNotFound,
		Message: fmt.Sprintf("%s %d does not reference an existing record", field, id),
		Details: map[string]any{
			"field": field,
			"id":    id,
		},
	}
}

// NewHasDependentsError reports that a delete was refused because other
// records still reference the entity.
func NewHasDependentsError(entity string, id int, dependents ...string) *DomainError {
	details := map[string]any{"id": id}
	if len(dependents) > 0 {
		details["dependents"] = dependents
	}
	return &DomainError{
		Code:    CodeHasDependents,
		Message: fmt.Sprintf("Cannot delete %s %d with associated companies or properties", entity, id),
		Details: details,
	}
}

// ReferenceField returns the field name carried by a REFERENCE_NOT_FOUND
// error, or "" when err is not one.
func ReferenceField(err error) string {
	var de *DomainError
	if !errors.As(err, &de) || de.Code != CodeReferenceNotFound {
		return ""
	}
	field, _ := de.Details["field"].(string)
	return field
}
