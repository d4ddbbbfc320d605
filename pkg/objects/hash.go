package objects

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
)

// ObjectHash is the 40-character lowercase hex SHA-1 of a serialized object.
type ObjectHash string

const (
	// HashLength is the length of a full hash in hex.
	HashLength = 40
	// ShortHashLength is the abbreviation used in merge log lines.
	ShortHashLength = 7
)

// NewObjectHash hashes already-serialized bytes.
func NewObjectHash(data []byte) ObjectHash {
	sum := sha1.Sum(data)
	return ObjectHash(hex.EncodeToString(sum[:]))
}

// ComputeObjectHash hashes content under the header for objType.
func ComputeObjectHash(objType ObjectType, content ObjectContent) ObjectHash {
	return NewObjectHash(NewSerializedObject(objType, content).Bytes())
}

// ParseObjectHash validates a full 40-character hash.
func ParseObjectHash(s string) (ObjectHash, error) {
	h := ObjectHash(strings.ToLower(s))
	if err := h.Validate(); err != nil {
		return "", err
	}
	return h, nil
}

func (h ObjectHash) String() string { return string(h) }

// IsZero reports whether h is unset.
func (h ObjectHash) IsZero() bool { return h == "" }

// Validate checks length and alphabet.
func (h ObjectHash) Validate() error {
	if len(h) != HashLength {
		return fmt.Errorf("hash must be %d characters long, got %d", HashLength, len(h))
	}
	if !IsHex(string(h)) {
		return fmt.Errorf("hash must contain only hex characters: %q", string(h))
	}
	return nil
}

// Short returns the first ShortHashLength characters.
func (h ObjectHash) Short() string {
	if len(h) >= ShortHashLength {
		return string(h[:ShortHashLength])
	}
	return string(h)
}

// HasPrefix reports whether h starts with prefix, ignoring case.
func (h ObjectHash) HasPrefix(prefix string) bool {
	return strings.HasPrefix(string(h), strings.ToLower(prefix))
}

func (h ObjectHash) MarshalText() ([]byte, error) {
	return []byte(h), nil
}

// UnmarshalText accepts an empty string as the zero hash.
func (h *ObjectHash) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*h = ""
		return nil
	}
	parsed, err := ParseObjectHash(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// IsHex reports whether s is non-empty and made only of hex digits.
func IsHex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}
