package internal

import (
	"github.com/utkarsh5026/gitlet/pkg/objects"
)

// FileMap maps tracked file names to blob ids.
type FileMap = map[string]objects.ObjectHash

// ActionType is the kind of change applied to one working file.
type ActionType int

const (
	// ActionCreate writes a file that was not tracked before
	ActionCreate ActionType = iota
	// ActionModify overwrites a tracked file
	ActionModify
	// ActionDelete removes a tracked file
	ActionDelete
)

func (a ActionType) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionModify:
		return "modify"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Operation is a single change to the working tree.
type Operation struct {
	Path   string
	Action ActionType
	Blob   objects.ObjectHash
}

// Backup holds a file's prior content so a failed run can be undone.
type Backup struct {
	Path    string
	Data    []byte
	Existed bool
}

// Summary counts operations by action.
type Summary struct {
	Created  int
	Modified int
	Deleted  int
}

// Total is the number of operations.
func (s Summary) Total() int {
	return s.Created + s.Modified + s.Deleted
}
