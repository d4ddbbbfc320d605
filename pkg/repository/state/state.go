// Package state holds the persisted repository record: the branch table,
// the head pointer, the staging area, and the registered remotes.
//
// The record is loaded once per command and written back only when the
// command succeeds, which makes every command all-or-nothing with respect
// to branch pointers and staging.
package state

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/utkarsh5026/gitlet/pkg/common/fileops"
	"github.com/utkarsh5026/gitlet/pkg/objects"
	"github.com/utkarsh5026/gitlet/pkg/repository/scpath"
)

// StageEntry is one pending change. Exactly one of Blob and Removed is set.
type StageEntry struct {
	Blob    objects.ObjectHash `json:"blob,omitempty"`
	Removed bool               `json:"removed,omitempty"`
}

// State is the repository record.
type State struct {
	Head          objects.ObjectHash            `json:"head"`
	CurrentBranch string                        `json:"current_branch"`
	Branches      map[string]objects.ObjectHash `json:"branches"`
	Staged        map[string]StageEntry         `json:"staged"`
	Remotes       map[string]string             `json:"remotes"`
}

// New creates a record whose only branch points at head.
func New(branch string, head objects.ObjectHash) *State {
	return &State{
		Head:          head,
		CurrentBranch: branch,
		Branches:      map[string]objects.ObjectHash{branch: head},
		Staged:        make(map[string]StageEntry),
		Remotes:       make(map[string]string),
	}
}

// Load reads and validates the record at path.
func Load(path scpath.AbsolutePath) (*State, error) {
	data, err := fileops.ReadBytesStrict(path)
	if err != nil {
		return nil, err
	}

	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	if s.Branches == nil {
		s.Branches = make(map[string]objects.ObjectHash)
	}
	if s.Staged == nil {
		s.Staged = make(map[string]StageEntry)
	}
	if s.Remotes == nil {
		s.Remotes = make(map[string]string)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save writes the record atomically.
func (s *State) Save(path scpath.AbsolutePath) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	return fileops.AtomicWrite(path, append(data, '\n'), 0644)
}

// Validate checks the structural invariants of the record.
func (s *State) Validate() error {
	tip, ok := s.Branches[s.CurrentBranch]
	if !ok {
		return fmt.Errorf("current branch %q is not in the branch table", s.CurrentBranch)
	}
	if tip != s.Head {
		return fmt.Errorf("head %s does not match branch %q at %s", s.Head, s.CurrentBranch, tip)
	}
	for path, e := range s.Staged {
		if (e.Blob != "") == e.Removed {
			return fmt.Errorf("staged entry for %q must be exactly one of addition or removal", path)
		}
	}
	return nil
}

// Clone returns a deep copy.
func (s *State) Clone() *State {
	out := &State{
		Head:          s.Head,
		CurrentBranch: s.CurrentBranch,
		Branches:      make(map[string]objects.ObjectHash, len(s.Branches)),
		Staged:        make(map[string]StageEntry, len(s.Staged)),
		Remotes:       make(map[string]string, len(s.Remotes)),
	}
	for k, v := range s.Branches {
		out.Branches[k] = v
	}
	for k, v := range s.Staged {
		out.Staged[k] = v
	}
	for k, v := range s.Remotes {
		out.Remotes[k] = v
	}
	return out
}

// StageAddition records path as staged with blob, replacing any prior entry.
func (s *State) StageAddition(path string, blob objects.ObjectHash) {
	s.Staged[path] = StageEntry{Blob: blob}
}

// StageRemoval records path as staged for removal.
func (s *State) StageRemoval(path string) {
	s.Staged[path] = StageEntry{Removed: true}
}

// Unstage drops any entry for path.
func (s *State) Unstage(path string) {
	delete(s.Staged, path)
}

// ClearStaging empties the staging area.
func (s *State) ClearStaging() {
	s.Staged = make(map[string]StageEntry)
}

// StagedAddition returns the blob staged for path, if any.
func (s *State) StagedAddition(path string) (objects.ObjectHash, bool) {
	e, ok := s.Staged[path]
	if !ok || e.Removed {
		return "", false
	}
	return e.Blob, true
}

// IsStagedForRemoval reports whether path is staged for removal.
func (s *State) IsStagedForRemoval(path string) bool {
	return s.Staged[path].Removed
}

// HasStagedChanges reports whether anything is staged.
func (s *State) HasStagedChanges() bool {
	return len(s.Staged) > 0
}

// Additions returns the staged additions keyed by path.
func (s *State) Additions() map[string]objects.ObjectHash {
	out := make(map[string]objects.ObjectHash)
	for p, e := range s.Staged {
		if !e.Removed {
			out[p] = e.Blob
		}
	}
	return out
}

// AdditionPaths returns the paths staged for addition, sorted.
func (s *State) AdditionPaths() []string {
	return s.stagedPaths(false)
}

// RemovalPaths returns the paths staged for removal, sorted.
func (s *State) RemovalPaths() []string {
	return s.stagedPaths(true)
}

func (s *State) stagedPaths(removed bool) []string {
	var out []string
	for p, e := range s.Staged {
		if e.Removed == removed {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

// BranchTip returns the commit a branch points to.
func (s *State) BranchTip(name string) (objects.ObjectHash, bool) {
	h, ok := s.Branches[name]
	return h, ok
}

// SetBranch points name at tip, creating the branch if needed. Moving the
// current branch also moves head.
func (s *State) SetBranch(name string, tip objects.ObjectHash) {
	s.Branches[name] = tip
	if name == s.CurrentBranch {
		s.Head = tip
	}
}

// DeleteBranch removes name from the table.
func (s *State) DeleteBranch(name string) {
	delete(s.Branches, name)
}

// AdvanceHead moves the current branch, and with it head, to tip.
func (s *State) AdvanceHead(tip objects.ObjectHash) {
	s.SetBranch(s.CurrentBranch, tip)
}

// SwitchBranch makes name current and moves head to its tip.
func (s *State) SwitchBranch(name string) error {
	tip, ok := s.Branches[name]
	if !ok {
		return fmt.Errorf("branch %q does not exist", name)
	}
	s.CurrentBranch = name
	s.Head = tip
	return nil
}

// BranchNames returns every branch name, sorted.
func (s *State) BranchNames() []string {
	names := make([]string, 0, len(s.Branches))
	for n := range s.Branches {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// RemoteNames returns every remote name, sorted.
func (s *State) RemoteNames() []string {
	names := make([]string, 0, len(s.Remotes))
	for n := range s.Remotes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
