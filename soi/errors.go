package soi

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that the data file is missing. It is a distinct,
// user-visible condition: callers halt dependent computation rather
// than treating it as malformed data.
var ErrNotFound = errors.New("data not found")

// SchemaError reports a cell that failed the declared-type coercion at
// load time. Row is zero-based and excludes the header line.
type SchemaError struct {
	Column string
	Row    int
	Value  string
	Want   Kind
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("column %s row %d: %q is not a valid %s", e.Column, e.Row, e.Value, e.Want)
}

// ResidualError reports a negative bottom-50% residual: the top-50%
// cumulative sum exceeded the dataset total, which means the source
// data is malformed. The residual is never clamped to zero.
type ResidualError struct {
	Measure  string
	Year     int
	Residual float64
}

func (e *ResidualError) Error() string {
	return fmt.Sprintf("negative bottom-50%% residual for %s in %d: %g", e.Measure, e.Year, e.Residual)
}
