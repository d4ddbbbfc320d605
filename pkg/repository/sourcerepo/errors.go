package sourcerepo

import (
	"github.com/utkarsh5026/gitlet/pkg/common/err"
	"github.com/utkarsh5026/gitlet/pkg/repository/scpath"
)

const pkgName = "sourcerepo"

// Messages shown for repository discovery failures.
const (
	MsgAlreadyExists  = "A Gitlet version-control system already exists in the current directory."
	MsgNotInitialized = "Not in an initialized Gitlet directory."
)

// NotRepositoryError reports that no .gitlet directory was found.
type NotRepositoryError struct {
	baseError *err.Error
	Path      string
}

func newNotRepositoryError(op string, path string) *NotRepositoryError {
	return &NotRepositoryError{
		baseError: err.New(pkgName, err.CodeNotFound, op, MsgNotInitialized, nil),
		Path:      path,
	}
}

func (e *NotRepositoryError) Error() string { return e.baseError.Error() + ": " + e.Path }
func (e *NotRepositoryError) Unwrap() error { return e.baseError }

// AlreadyExistsError reports an init over an existing repository.
type AlreadyExistsError struct {
	baseError *err.Error
	Path      scpath.RepositoryPath
}

func newAlreadyExistsError(path scpath.RepositoryPath) *AlreadyExistsError {
	return &AlreadyExistsError{
		baseError: err.New(pkgName, err.CodePrecondition, "init", MsgAlreadyExists, nil),
		Path:      path,
	}
}

func (e *AlreadyExistsError) Error() string { return e.baseError.Error() }
func (e *AlreadyExistsError) Unwrap() error { return e.baseError }
