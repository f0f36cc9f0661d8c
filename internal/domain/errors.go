package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest indicates the caller supplied invalid search parameters.
// Validation failures are wrapped with this sentinel so the HTTP layer can
// map them to 400 responses.
var ErrInvalidRequest = errors.New("invalid request")

// DataAccessError reports a failed store interaction: connectivity loss,
// a malformed query, or an execution failure. It is deliberately distinct
// from an empty result; in particular a failed count query must surface as
// this error and never be collapsed to a zero total.
type DataAccessError struct {
	// Op names the failed operation (e.g., "range search count")
	Op string

	// Err is the underlying driver error
	Err error
}

// NewDataAccessError wraps a store error with the operation that failed.
func NewDataAccessError(op string, err error) *DataAccessError {
	return &DataAccessError{Op: op, Err: err}
}

// Error implements the error interface.
func (e *DataAccessError) Error() string {
	return fmt.Sprintf("data access: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/errors.As chains.
func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// MappingError reports a result row that could not be converted into a
// RewardFlight because a required column was unreadable. Defaulting such
// columns (empty departure dates, "now" capture timestamps) fabricates
// provenance data, so the mapper surfaces this error instead.
type MappingError struct {
	// Column is the result column that could not be read
	Column string

	// Err describes why the column was unreadable
	Err error
}

// NewMappingError builds a MappingError for the given column.
func NewMappingError(column string, err error) *MappingError {
	return &MappingError{Column: column, Err: err}
}

// Error implements the error interface.
func (e *MappingError) Error() string {
	return fmt.Sprintf("row mapping: column %q: %v", e.Column, e.Err)
}

// Unwrap returns the underlying error.
func (e *MappingError) Unwrap() error {
	return e.Err
}
