package indicator

import (
	"errors"
	"fmt"
)

// InsufficientDataError is returned when a series is too short for an analysis
type InsufficientDataError struct {
	Analysis string // analysis that failed, empty for series-level checks
	Required int    // minimum bars required
	Actual   int    // bars available
}

// NewInsufficientDataError creates InsufficientDataError
func NewInsufficientDataError(analysis string, required, actual int) *InsufficientDataError {
	return &InsufficientDataError{Analysis: analysis, Required: required, Actual: actual}
}

func (e *InsufficientDataError) Error() string {
	if e.Analysis == "" {
		return fmt.Sprintf("insufficient data: need at least %d bars, got %d", e.Required, e.Actual)
	}
	return fmt.Sprintf("insufficient data for %s: need at least %d bars, got %d", e.Analysis, e.Required, e.Actual)
}

// IsInsufficientDataError checks if an error is an InsufficientDataError
func IsInsufficientDataError(err error) bool {
	var target *InsufficientDataError
	return errors.As(err, &target)
}

// MalformedSeriesError is returned when a price series violates its invariants
type MalformedSeriesError struct {
	Index  int
	Reason string
}

// NewMalformedSeriesError creates MalformedSeriesError
func NewMalformedSeriesError(index int, format string, args ...any) *MalformedSeriesError {
	return &MalformedSeriesError{Index: index, Reason: fmt.Sprintf(format, args...)}
}

func (e *MalformedSeriesError) Error() string {
	return fmt.Sprintf("malformed series at bar %d: %s", e.Index, e.Reason)
}

// IsMalformedSeriesError checks if an error is a MalformedSeriesError
func IsMalformedSeriesError(err error) bool {
	var target *MalformedSeriesError
	return errors.As(err, &target)
}
