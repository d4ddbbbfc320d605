package config

import (
	"fmt"

	"github.com/utkarsh5026/gitlet/pkg/common/err"
)

const (
	pkgName = "config"

	CodeNotFoundErr      = err.CodeNotFound
	CodeInvalidFormatErr = err.CodeInvalidFormat
	CodeInvalidValueErr  = err.CodeInvalidInput
	CodeReadOnlyErr      = "READ_ONLY"
	CodeConversionErr    = "CONVERSION_FAILED"
	CodeInvalidLevelErr  = "INVALID_LEVEL"
)

// ConfigError carries the key, file, and level involved in a failure.
type ConfigError struct {
	base  *err.Error
	Path  string
	Key   string
	Level string
}

// NewConfigError creates a ConfigError.
func NewConfigError(op, code, key, path, level string, underlying error) *ConfigError {
	return &ConfigError{
		base:  err.New(pkgName, code, op, "", underlying),
		Path:  path,
		Key:   key,
		Level: level,
	}
}

func (e *ConfigError) Error() string {
	msg := e.base.Error()
	if e.Key != "" {
		msg += fmt.Sprintf(" [key=%s]", e.Key)
	}
	if e.Path != "" {
		msg += fmt.Sprintf(" [path=%s]", e.Path)
	}
	if e.Level != "" {
		msg += fmt.Sprintf(" [level=%s]", e.Level)
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.base
}

// NewInvalidFormatError reports an unreadable config file.
func NewInvalidFormatError(op, path string, cause error) *ConfigError {
	return NewConfigError(op, CodeInvalidFormatErr, "", path, "", cause)
}

// NewInvalidValueError reports a value rejected by the validator.
func NewInvalidValueError(key string, cause error) *ConfigError {
	e := NewConfigError("validate", CodeInvalidValueErr, key, "", "", cause)
	e.base.Message = fmt.Sprintf("Invalid value for %s.", key)
	return e
}

var (
	ErrInvalidFormat = err.New(pkgName, CodeInvalidFormatErr, "", "invalid configuration format", nil)
	ErrInvalidLevel  = err.New(pkgName, CodeInvalidLevelErr, "", "invalid configuration level", nil)
	ErrReadOnly      = err.New(pkgName, CodeReadOnlyErr, "", "configuration level is read-only", nil)
	ErrConversion    = err.New(pkgName, CodeConversionErr, "", "configuration value conversion failed", nil)
)
