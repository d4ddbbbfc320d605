package store

import (
	"fmt"

	"github.com/utkarsh5026/gitlet/pkg/common/err"
	"github.com/utkarsh5026/gitlet/pkg/objects"
)

const pkgName = "store"

// NotFoundError is returned when an id is absent from the store.
type NotFoundError struct {
	baseError *err.Error
	Hash      objects.ObjectHash
}

func newNotFoundError(op string, hash objects.ObjectHash) *NotFoundError {
	return &NotFoundError{
		baseError: err.New(pkgName, err.CodeNotFound, op, "", fmt.Errorf("object %s not found", hash)),
		Hash:      hash,
	}
}

func (e *NotFoundError) Error() string { return e.baseError.Error() }
func (e *NotFoundError) Unwrap() error { return e.baseError }

// TypeMismatchError is returned when an id names an object of the wrong kind.
type TypeMismatchError struct {
	baseError *err.Error
	Hash      objects.ObjectHash
	Want      objects.ObjectType
	Got       objects.ObjectType
}

func newTypeMismatchError(hash objects.ObjectHash, want, got objects.ObjectType) *TypeMismatchError {
	return &TypeMismatchError{
		baseError: err.New(pkgName, err.CodeInvalidFormat, "read", "",
			fmt.Errorf("object %s is a %s, not a %s", hash, got, want)),
		Hash: hash,
		Want: want,
		Got:  got,
	}
}

func (e *TypeMismatchError) Error() string { return e.baseError.Error() }
func (e *TypeMismatchError) Unwrap() error { return e.baseError }

func newCorruptError(op string, hash objects.ObjectHash, cause error) error {
	return err.New(pkgName, err.CodeInvalidFormat, op, "", fmt.Errorf("object %s: %w", hash, cause))
}
