package internalerr

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrEmptyInput       = errors.New("empty input")
	ErrXMLParse         = errors.New("malformed xml document")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrInvalidConfig    = errors.New("invalid configuration")
)

// FieldCountError reports a pasted block whose token count does not fit the
// 9-column record schema. Tokens is only populated in single-record mode.
type FieldCountError struct {
	Want   int // fields per record
	Got    int // tokens detected
	Multi  bool
	Tokens []string
}

func (e *FieldCountError) Error() string {
	if e.Multi {
		return fmt.Sprintf("expected a multiple of %d fields per order, found %d", e.Want, e.Got)
	}
	return fmt.Sprintf("expected %d fields, found %d (detected: %v)", e.Want, e.Got, e.Tokens)
}

// MissingColumnError lists source columns absent from a table during
// projection. It is reported as a warning, never as a fatal failure.
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing source columns: %v", e.Columns)
}
