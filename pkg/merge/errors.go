package merge

import (
	"fmt"

	"github.com/utkarsh5026/gitlet/pkg/common/err"
)

const pkgName = "merge"

const (
	MsgUncommittedChanges = "You have uncommitted changes."
	MsgMergeWithSelf      = "Cannot merge a branch with itself."
	MsgGivenIsAncestor    = "Given branch is an ancestor of the current branch."
	MsgFastForwarded      = "Current branch fast-forwarded."
	MsgConflict           = "Encountered a merge conflict."
)

// PreconditionError reports a merge refused before anything was changed.
type PreconditionError struct {
	baseError *err.Error
	Branch    string
}

func newPreconditionError(branch, message string, cause error) *PreconditionError {
	return &PreconditionError{
		baseError: err.New(pkgName, err.CodePrecondition, "merge", message, cause),
		Branch:    branch,
	}
}

func (e *PreconditionError) Error() string { return e.baseError.Error() }
func (e *PreconditionError) Unwrap() error { return e.baseError }

func newUncommittedError(branch string, staged int) error {
	return newPreconditionError(branch, MsgUncommittedChanges, fmt.Errorf("%d staged entries", staged))
}

func newSelfMergeError(branch string) error {
	return newPreconditionError(branch, MsgMergeWithSelf, fmt.Errorf("%q is the current branch", branch))
}

func newAncestorError(branch string) error {
	return newPreconditionError(branch, MsgGivenIsAncestor, fmt.Errorf("%q is already merged", branch))
}
