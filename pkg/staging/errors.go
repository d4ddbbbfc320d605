package staging

import (
	"errors"
	"fmt"

	"github.com/utkarsh5026/gitlet/pkg/common/err"
)

const pkgName = "staging"

const (
	MsgFileNotFound    = "File does not exist."
	MsgNothingToRemove = "No reason to remove the file."
	MsgNothingToCommit = "No changes added to the commit."
	MsgEmptyMessage    = "Please enter a commit message."
)

var (
	// ErrNothingToCommit is returned by Commit when the staging area is empty.
	ErrNothingToCommit = err.New(pkgName, err.CodePrecondition, "commit", MsgNothingToCommit, nil)

	// ErrEmptyMessage is returned by Commit for a blank message.
	ErrEmptyMessage = err.New(pkgName, err.CodeInvalidInput, "commit", MsgEmptyMessage, nil)
)

// FileNotFoundError reports an add of a file that is not in the working tree.
type FileNotFoundError struct {
	baseError *err.Error
	Path      string
}

func newFileNotFoundError(path string, cause error) *FileNotFoundError {
	if cause == nil {
		cause = errors.New("no such file")
	}
	return &FileNotFoundError{
		baseError: err.New(pkgName, err.CodeNotFound, "add", MsgFileNotFound, fmt.Errorf("%s: %w", path, cause)),
		Path:      path,
	}
}

func (e *FileNotFoundError) Error() string { return e.baseError.Error() }
func (e *FileNotFoundError) Unwrap() error { return e.baseError }

// NothingToRemoveError reports an rm of a file that is neither staged nor
// tracked.
type NothingToRemoveError struct {
	baseError *err.Error
	Path      string
}

func newNothingToRemoveError(path string) *NothingToRemoveError {
	return &NothingToRemoveError{
		baseError: err.New(pkgName, err.CodePrecondition, "rm", MsgNothingToRemove, fmt.Errorf("%s is neither staged nor tracked", path)),
		Path:      path,
	}
}

func (e *NothingToRemoveError) Error() string { return e.baseError.Error() }
func (e *NothingToRemoveError) Unwrap() error { return e.baseError }
