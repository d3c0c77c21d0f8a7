package consolida

import (
	"errors"
	"fmt"
)

var errMissingCutoff = errors.New("missing")

// The processing error taxonomy.
//
// DataFormatError invalidates a single record and is surfaced with its
// source context so the statement can be fixed upstream. ConsistencyError is
// a warning: the affected asset is degraded but the run continues.
// ConfigError aborts the run before any ledger computation.

// DataFormatError reports a malformed or missing required field in a
// statement or correction row.
type DataFormatError struct {
	File  string
	Row   int
	Field string
	Cause error
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("%s row %d: invalid %q: %v", e.File, e.Row, e.Field, e.Cause)
}

func (e *DataFormatError) Unwrap() error { return e.Cause }

// ConsistencyError reports a data inconsistency found while processing a
// ticker, such as an oversell or a split rule targeting an unknown ticker.
type ConsistencyError struct {
	Ticker string
	Date   Date
	Msg    string
}

func (e *ConsistencyError) Error() string {
	if e.Date.IsZero() {
		return fmt.Sprintf("%s: %s", e.Ticker, e.Msg)
	}
	return fmt.Sprintf("%s on %s: %s", e.Ticker, e.Date, e.Msg)
}

// ConfigError reports an invalid or missing run configuration value.
type ConfigError struct {
	Field string
	Cause error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: invalid %q: %v", e.Field, e.Cause)
}

func (e *ConfigError) Unwrap() error { return e.Cause }
