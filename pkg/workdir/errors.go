package workdir

import (
	"fmt"
	"strings"

	"github.com/utkarsh5026/gitlet/pkg/common/err"
)

const pkgName = "workdir"

const (
	MsgUntrackedInTheWay = "There is an untracked file in the way; delete it, or add and commit it first."
	MsgFileNotInCommit   = "File does not exist in that commit."
)

// UntrackedFileError reports working files that a checkout, reset, or merge
// would overwrite although they were never committed or staged.
type UntrackedFileError struct {
	baseError *err.Error
	Paths     []string
}

func newUntrackedFileError(op string, paths []string) *UntrackedFileError {
	return &UntrackedFileError{
		baseError: err.New(pkgName, err.CodeUntracked, op, MsgUntrackedInTheWay,
			fmt.Errorf("untracked: %s", strings.Join(paths, ", "))),
		Paths: paths,
	}
}

func (e *UntrackedFileError) Error() string { return e.baseError.Error() }
func (e *UntrackedFileError) Unwrap() error { return e.baseError }

// FileNotInCommitError reports a single-file checkout of a name the commit
// does not track.
type FileNotInCommitError struct {
	baseError *err.Error
	Path      string
}

func newFileNotInCommitError(path string) *FileNotInCommitError {
	return &FileNotInCommitError{
		baseError: err.New(pkgName, err.CodeNotFound, "checkout", MsgFileNotInCommit, fmt.Errorf("%s not tracked", path)),
		Path:      path,
	}
}

func (e *FileNotInCommitError) Error() string { return e.baseError.Error() }
func (e *FileNotInCommitError) Unwrap() error { return e.baseError }
