package errors

import "fmt"

// ParseError wraps a specific error with context about where it occurred.
type ParseError struct {
	Source string
	Line   int
	Record []string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("parse error in %s at line %d: %v (record: %v)", e.Source, e.Line, e.Err, e.Record)
	}
	return fmt.Sprintf("parse error at line %d: %v (record: %v)", e.Line, e.Err, e.Record)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConfigError reports a configuration value outside its allowed range.
type ConfigError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration %s=%v: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Define specific error types for better error handling
var (
	ErrInvalidFieldCount   = fmt.Errorf("invalid field count")
	ErrInvalidRank         = fmt.Errorf("invalid rank")
	ErrInvalidLeaderTier   = fmt.Errorf("invalid leader tier")
	ErrInvalidSupplierType = fmt.Errorf("invalid supplier type")
	ErrDuplicateName       = fmt.Errorf("duplicate name")
	ErrEmptyRecord         = fmt.Errorf("empty record")

	ErrInvalidConfig = fmt.Errorf("invalid configuration")
	ErrNoOpenSlots   = fmt.Errorf("calendar has no open slots")
)
