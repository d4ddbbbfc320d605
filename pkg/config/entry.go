package config

import (
	"strconv"
	"strings"
)

// ConfigEntry is one resolved value and where it came from.
type ConfigEntry struct {
	Key    string
	Value  string
	Level  ConfigLevel
	Source string // file path, "command-line", or "builtin"
}

// NewEntry creates an entry.
func NewEntry(key, value string, level ConfigLevel, source string) *ConfigEntry {
	return &ConfigEntry{Key: key, Value: value, Level: level, Source: source}
}

// AsInt converts the value to an integer.
func (e *ConfigEntry) AsInt() (int, error) {
	val, err := strconv.Atoi(strings.TrimSpace(e.Value))
	if err != nil {
		return 0, NewConfigError("convert", CodeConversionErr, e.Key, "", "", err)
	}
	return val, nil
}

// AsBoolean accepts true/yes/1/on and false/no/0/off, case-insensitively.
func (e *ConfigEntry) AsBoolean() (bool, error) {
	switch strings.ToLower(strings.TrimSpace(e.Value)) {
	case "true", "yes", "1", "on":
		return true, nil
	case "false", "no", "0", "off":
		return false, nil
	default:
		return false, NewConfigError("convert", CodeConversionErr, e.Key, "", "", ErrConversion)
	}
}
