package remote

import (
	"fmt"

	"github.com/utkarsh5026/gitlet/pkg/common/err"
)

const pkgName = "remote"

const (
	MsgRemoteExists        = "A remote with that name already exists."
	MsgRemoteNotFound      = "A remote with that name does not exist."
	MsgDirectoryNotFound   = "Remote directory not found."
	MsgPullFirst           = "Please pull down remote changes before pushing."
	MsgRemoteBranchMissing = "That remote does not have that branch."
	MsgInvalidName         = "Invalid remote name."
)

// RemoteError is returned for every user-facing remote failure.
type RemoteError struct {
	baseError *err.Error
	Remote    string
}

func newRemoteError(op, code, remote, message string, cause error) *RemoteError {
	return &RemoteError{
		baseError: err.New(pkgName, code, op, message, cause),
		Remote:    remote,
	}
}

func (e *RemoteError) Error() string { return e.baseError.Error() }
func (e *RemoteError) Unwrap() error { return e.baseError }

func newExistsError(name string) error {
	return newRemoteError("add", err.CodeAlreadyExists, name, MsgRemoteExists, fmt.Errorf("remote %q", name))
}

func newNotFoundError(op, name string) error {
	return newRemoteError(op, err.CodeNotFound, name, MsgRemoteNotFound, fmt.Errorf("remote %q", name))
}

func newDirectoryNotFoundError(op, name, location string, cause error) error {
	return newRemoteError(op, err.CodeNotFound, name, MsgDirectoryNotFound, fmt.Errorf("%s: %w", location, cause))
}

func newDivergedError(name, branch string) error {
	return newRemoteError("push", err.CodePrecondition, name, MsgPullFirst,
		fmt.Errorf("%s/%s is not an ancestor of head", name, branch))
}

func newBranchMissingError(name, branch string) error {
	return newRemoteError("fetch", err.CodeNotFound, name, MsgRemoteBranchMissing,
		fmt.Errorf("remote %q has no branch %q", name, branch))
}

func newInvalidNameError(name string) error {
	return newRemoteError("add", err.CodeInvalidInput, name, MsgInvalidName,
		fmt.Errorf("remote names must be non-empty and contain no '/'"))
}
