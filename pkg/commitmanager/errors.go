package commitmanager

import (
	"fmt"

	"github.com/utkarsh5026/gitlet/pkg/common/err"
	"github.com/utkarsh5026/gitlet/pkg/objects"
)

const pkgName = "commitmanager"

const (
	MsgNoSuchCommit    = "No commit with that id exists."
	MsgNoCommitMessage = "Found no commit with that message."
	MsgAmbiguousCommit = "Commit id prefix is ambiguous."
	MsgMissingParent   = "Parent commit does not exist."
)

// CommitNotFoundError reports an id or prefix with no matching commit.
type CommitNotFoundError struct {
	baseError *err.Error
	ID        string
}

func NewCommitNotFoundError(op, id string) error {
	return &CommitNotFoundError{
		baseError: err.New(pkgName, err.CodeNotFound, op, MsgNoSuchCommit, fmt.Errorf("commit %q", id)),
		ID:        id,
	}
}

func (e *CommitNotFoundError) Error() string { return e.baseError.Error() }
func (e *CommitNotFoundError) Unwrap() error { return e.baseError }

// AmbiguousPrefixError reports a prefix that matches more than one commit.
type AmbiguousPrefixError struct {
	baseError  *err.Error
	Prefix     string
	Candidates []objects.ObjectHash
}

func newAmbiguousPrefixError(prefix string, candidates []objects.ObjectHash) error {
	return &AmbiguousPrefixError{
		baseError: err.New(pkgName, err.CodeInvalidInput, "resolve", MsgAmbiguousCommit,
			fmt.Errorf("prefix %q matches %d commits", prefix, len(candidates))),
		Prefix:     prefix,
		Candidates: candidates,
	}
}

func (e *AmbiguousPrefixError) Error() string { return e.baseError.Error() }
func (e *AmbiguousPrefixError) Unwrap() error { return e.baseError }

func newNoMessageMatchError(message string) error {
	return err.New(pkgName, err.CodeNotFound, "find", MsgNoCommitMessage, fmt.Errorf("message %q", message))
}

func newMissingParentError(parent objects.ObjectHash) error {
	return err.New(pkgName, err.CodeNotFound, "create", MsgMissingParent, fmt.Errorf("parent %s", parent))
}
