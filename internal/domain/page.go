package domain

import "fmt"

// Page is the pagination envelope returned by both search operations.
// Content order is page-local; TotalElements and TotalPages always describe
// the whole result set, independent of the requested page.
type Page[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"page_number"`
	PageSize      int   `json:"page_size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
}

// PageRequest holds offset-based pagination parameters. Page numbers are
// zero-based.
type PageRequest struct {
	Number int
	Size   int
}

// Validate checks the pagination parameters. A zero page size is an input
// error and must be rejected here, before any paginator math runs.
func (p PageRequest) Validate() error {
	if p.Number < 0 {
		return fmt.Errorf("%w: page number must not be negative, got %d", ErrInvalidRequest, p.Number)
	}
	if p.Size < 1 {
		return fmt.Errorf("%w: page size must be at least 1, got %d", ErrInvalidRequest, p.Size)
	}
	return nil
}

// Offset returns the row offset for this page.
func (p PageRequest) Offset() int {
	return p.Number * p.Size
}

// NewPage wraps mapped content with pagination metadata derived from the
// query's true total count. A page number beyond the last valid page simply
// yields empty content with correct totals; it is never clamped or rejected.
func NewPage[T any](content []T, req PageRequest, totalElements int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	return Page[T]{
		Content:       content,
		PageNumber:    req.Number,
		PageSize:      req.Size,
		TotalElements: totalElements,
		TotalPages:    TotalPages(totalElements, req.Size),
	}
}

// TotalPages returns ceil(totalElements / pageSize). Callers must have
// validated pageSize >= 1.
func TotalPages(totalElements int64, pageSize int) int {
	if totalElements <= 0 {
		return 0
	}
	return int((totalElements + int64(pageSize) - 1) / int64(pageSize))
}
