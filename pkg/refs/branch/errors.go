package branch

import (
	"fmt"

	"github.com/utkarsh5026/gitlet/pkg/common/err"
)

const (
	// Package name for error reporting
	pkgName = "branch"
)

// User-facing messages
const (
	MsgAlreadyExists  = "A branch with that name already exists."
	MsgNotFound       = "A branch with that name does not exist."
	MsgNoSuchBranch   = "No such branch exists."
	MsgRemoveCurrent  = "Cannot remove the current branch."
	MsgAlreadyCurrent = "No need to checkout the current branch."
	MsgInvalidName    = "Invalid branch name."
)

// NotFoundError indicates a branch doesn't exist
type NotFoundError struct {
	baseError  *err.Error
	BranchName string
}

// NewNotFoundError creates a branch not found error. The message differs
// between commands, so callers pass it in.
func NewNotFoundError(op, name, message string) error {
	return &NotFoundError{
		baseError: err.New(
			pkgName,
			err.CodeNotFound,
			op,
			message,
			fmt.Errorf("branch %q not found", name),
		),
		BranchName: name,
	}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return e.baseError.Error()
}

// Unwrap returns the underlying error
func (e *NotFoundError) Unwrap() error {
	return e.baseError
}

// AlreadyExistsError indicates a branch already exists
type AlreadyExistsError struct {
	baseError  *err.Error
	BranchName string
}

// NewAlreadyExistsError creates a new branch already exists error
func NewAlreadyExistsError(name string) error {
	return &AlreadyExistsError{
		baseError: err.New(
			pkgName,
			err.CodeAlreadyExists,
			"create",
			MsgAlreadyExists,
			fmt.Errorf("branch %q exists", name),
		),
		BranchName: name,
	}
}

func (e *AlreadyExistsError) Error() string { return e.baseError.Error() }
func (e *AlreadyExistsError) Unwrap() error { return e.baseError }

// InvalidNameError indicates a name that cannot be used for a branch
type InvalidNameError struct {
	baseError  *err.Error
	BranchName string
	Reason     string
}

// NewInvalidNameError creates a new invalid branch name error
func NewInvalidNameError(name, reason string) error {
	return &InvalidNameError{
		baseError: err.New(
			pkgName,
			err.CodeInvalidInput,
			"validate",
			MsgInvalidName,
			fmt.Errorf("%q: %s", name, reason),
		),
		BranchName: name,
		Reason:     reason,
	}
}

func (e *InvalidNameError) Error() string { return e.baseError.Error() }
func (e *InvalidNameError) Unwrap() error { return e.baseError }

// IsCurrentError indicates an operation that cannot target the current
// branch: deleting it or checking it out again.
type IsCurrentError struct {
	baseError  *err.Error
	BranchName string
}

// NewIsCurrentError creates a new is current branch error
func NewIsCurrentError(op, name, message string) error {
	return &IsCurrentError{
		baseError: err.New(
			pkgName,
			err.CodePrecondition,
			op,
			message,
			fmt.Errorf("%q is the current branch", name),
		),
		BranchName: name,
	}
}

func (e *IsCurrentError) Error() string { return e.baseError.Error() }
func (e *IsCurrentError) Unwrap() error { return e.baseError }
