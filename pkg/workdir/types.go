package workdir

// ChangeKind describes how a working file differs from what would be
// committed.
type ChangeKind int

const (
	ChangeModified ChangeKind = iota
	ChangeDeleted
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeModified:
		return "modified"
	case ChangeDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// FileChange is one entry of the "modifications not staged" section.
type FileChange struct {
	Path string
	Kind ChangeKind
}

// Status is a snapshot of the working tree against head and the staging
// area. Every list is sorted by path.
type Status struct {
	Branch    string
	Branches  []string
	Staged    []string
	Removed   []string
	Unstaged  []FileChange
	Untracked []string
}

// Clean reports whether there is nothing staged, changed, or untracked.
func (s *Status) Clean() bool {
	return len(s.Staged) == 0 && len(s.Removed) == 0 && len(s.Unstaged) == 0 && len(s.Untracked) == 0
}

// MaterializeResult summarizes a working tree update.
type MaterializeResult struct {
	Created  int
	Modified int
	Deleted  int
}
