package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Validator checks values for the keys gitlet interprets. Unknown keys are
// accepted so users can keep their own settings alongside.
type Validator struct{}

// ValidateKeyValue returns an error when key is malformed or value is not
// acceptable for it.
func (v *Validator) ValidateKeyValue(key, value string) error {
	parts := strings.Split(key, ".")
	if len(parts) < 2 {
		return NewInvalidValueError(key, fmt.Errorf("key must have section.name format"))
	}
	for _, p := range parts {
		if p == "" {
			return NewInvalidValueError(key, fmt.Errorf("key has an empty component"))
		}
	}

	switch key {
	case KeyDefaultBranch:
		return v.validateBranchName(key, value)
	case KeyTransferWorkers:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 1 || n > 64 {
			return NewInvalidValueError(key, fmt.Errorf("must be an integer between 1 and 64"))
		}
	case KeyColorUI:
		switch value {
		case "auto", "always", "never", "true", "false":
		default:
			return NewInvalidValueError(key, fmt.Errorf("must be auto, always, or never"))
		}
	case KeyLogFormat:
		if value != "text" && value != "table" {
			return NewInvalidValueError(key, fmt.Errorf("must be text or table"))
		}
	}
	return nil
}

func (v *Validator) validateBranchName(key, value string) error {
	if value == "" || strings.ContainsAny(value, " \t\n~^:?*[\\") || strings.Contains(value, "..") ||
		strings.HasPrefix(value, "-") || strings.HasSuffix(value, "/") {
		return NewInvalidValueError(key, fmt.Errorf("invalid branch name %q", value))
	}
	return nil
}
