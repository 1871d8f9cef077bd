package salary

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidData   = errors.New("invalid salary input data")
	ErrMissingConfig = errors.New("missing overtime configuration")
)

// DataError reports malformed or out-of-range input. It matches ErrInvalidData.
type DataError struct {
	EmployeeID string
	Reason     string
}

func NewDataError(employeeID, format string, args ...any) *DataError {
	return &DataError{EmployeeID: employeeID, Reason: fmt.Sprintf(format, args...)}
}

func (e *DataError) Error() string {
	if e.EmployeeID == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidData, e.Reason)
	}
	return fmt.Sprintf("%s: employee %s: %s", ErrInvalidData, e.EmployeeID, e.Reason)
}

func (e *DataError) Unwrap() error {
	return ErrInvalidData
}

// ConfigError reports an overtime configuration that cannot be resolved. It matches ErrMissingConfig.
type ConfigError struct {
	EmployeeID string
	Reason     string
}

func NewConfigError(employeeID, format string, args ...any) *ConfigError {
	return &ConfigError{EmployeeID: employeeID, Reason: fmt.Sprintf(format, args...)}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: employee %s: %s", ErrMissingConfig, e.EmployeeID, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrMissingConfig
}
