package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
// Repositories return it for unique-constraint violations.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidDeal marks a deal that is malformed, semantically invalid, or could not be found on read.
var ErrInvalidDeal = errors.New("invalid deal")

// ErrDuplicateDeal marks an import whose deal unique ID is already stored.
var ErrDuplicateDeal = errors.New("duplicate deal")

// ErrIntegrityViolation marks a storage constraint violation that is not a uniqueness conflict.
var ErrIntegrityViolation = errors.New("data integrity violation")

// AppError carries a client-facing message, the taxonomy kind it belongs to and,
// optionally, the underlying cause.
type AppError struct {
	Kind    error
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

// Is reports whether target is the kind of this error.
func (e *AppError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewInvalidDealError creates an InvalidDeal error with the given message.
func NewInvalidDealError(message string) *AppError {
	return &AppError{Kind: ErrInvalidDeal, Message: message}
}

// NewInvalidDealErrorf creates an InvalidDeal error with a formatted message wrapping cause.
func NewInvalidDealErrorf(cause error, format string, args ...any) *AppError {
	return &AppError{Kind: ErrInvalidDeal, Message: fmt.Sprintf(format, args...), Err: cause}
}

// NewDuplicateDealError creates a DuplicateDeal error for the given deal unique ID.
func NewDuplicateDealError(dealUniqueID string) *AppError {
	return &AppError{Kind: ErrDuplicateDeal, Message: fmt.Sprintf("Deal with ID %s already exists", dealUniqueID)}
}

// NewIntegrityViolationError creates an integrity violation error wrapping the storage cause.
func NewIntegrityViolationError(message string, cause error) *AppError {
	return &AppError{Kind: ErrIntegrityViolation, Message: message, Err: cause}
}

// ValidationErrors maps request field names to the reason they were rejected.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+v[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is lets callers match ValidationErrors with errors.Is(err, ErrValidation).
func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}
