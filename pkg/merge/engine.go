// Package merge performs three-way merges of a branch into the current
// branch.
package merge

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/utkarsh5026/gitlet/pkg/commitmanager"
	"github.com/utkarsh5026/gitlet/pkg/common/logger"
	"github.com/utkarsh5026/gitlet/pkg/objects"
	"github.com/utkarsh5026/gitlet/pkg/objects/commit"
	"github.com/utkarsh5026/gitlet/pkg/refs/branch"
	"github.com/utkarsh5026/gitlet/pkg/repository/sourcerepo"
	"github.com/utkarsh5026/gitlet/pkg/staging"
	"github.com/utkarsh5026/gitlet/pkg/store"
	"github.com/utkarsh5026/gitlet/pkg/workdir"
)

// Kind is how a merge was carried out.
type Kind int

const (
	// FastForward moved the current branch to the given tip without a
	// new commit.
	FastForward Kind = iota
	// Merged created a merge commit with two parents.
	Merged
)

func (k Kind) String() string {
	if k == FastForward {
		return "fast-forward"
	}
	return "merge"
}

// Result describes a completed merge.
type Result struct {
	Kind       Kind
	Commit     objects.ObjectHash
	SplitPoint objects.ObjectHash
	// Conflicts lists the files written with conflict markers, sorted.
	Conflicts []string
}

// HasConflicts reports whether any file needs manual resolution.
func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// Engine merges branches of one repository.
type Engine struct {
	repo     sourcerepo.Repository
	commits  *commitmanager.Manager
	area     *staging.Area
	workdir  *workdir.Manager
	branches *branch.Manager
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger replaces the component logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine creates a merge engine from the repository's managers.
func NewEngine(
	repo sourcerepo.Repository,
	commits *commitmanager.Manager,
	area *staging.Area,
	wd *workdir.Manager,
	branches *branch.Manager,
	opts ...Option,
) *Engine {
	e := &Engine{
		repo:     repo,
		commits:  commits,
		area:     area,
		workdir:  wd,
		branches: branches,
		logger:   logger.Component(logger.Default, "merge"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Merge merges branch given into the current branch.
//
// Every precondition, including the untracked file guard, is checked before
// the working tree changes. When the current tip is an ancestor of given the
// branch is fast-forwarded. Otherwise each file is resolved against the
// split point and a merge commit is created even if some files conflict;
// the conflicted files are listed in the result.
func (e *Engine) Merge(ctx context.Context, given string) (*Result, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	st := e.repo.State()
	if st.HasStagedChanges() {
		return nil, newUncommittedError(given, len(st.Staged))
	}
	givenTip, ok := st.BranchTip(given)
	if !ok {
		return nil, branch.NewNotFoundError("merge", given, branch.MsgNotFound)
	}
	if given == st.CurrentBranch {
		return nil, newSelfMergeError(given)
	}

	headTip := st.Head
	split, err := e.commits.FindSplitPoint(ctx, headTip, givenTip)
	if err != nil {
		return nil, err
	}

	if split == givenTip {
		return nil, newAncestorError(given)
	}
	if split == headTip {
		if err := e.branches.MoveTo(ctx, givenTip); err != nil {
			return nil, err
		}
		e.logger.Info("fast-forward", "branch", st.CurrentBranch, "to", givenTip.Short())
		return &Result{Kind: FastForward, Commit: givenTip, SplitPoint: split}, nil
	}

	current, err := e.commits.GetCommit(ctx, headTip)
	if err != nil {
		return nil, err
	}
	other, err := e.commits.GetCommit(ctx, givenTip)
	if err != nil {
		return nil, err
	}
	base, err := e.commits.GetCommit(ctx, split)
	if err != nil {
		return nil, err
	}

	if err := e.workdir.CheckUntracked(ctx, other); err != nil {
		return nil, err
	}

	paths, err := e.candidatePaths(current, other)
	if err != nil {
		return nil, err
	}

	var conflicts []string
	for _, path := range paths {
		conflicted, err := e.resolve(ctx, path, base, current, other)
		if err != nil {
			return nil, fmt.Errorf("merge %s: %w", path, err)
		}
		if conflicted {
			conflicts = append(conflicts, path)
		}
	}

	message := fmt.Sprintf("Merged %s into %s.", given, st.CurrentBranch)
	hash, err := e.area.Commit(ctx, message, staging.WithSecondParent(givenTip))
	if err != nil {
		return nil, err
	}

	e.logger.Info("merged", "given", given, "split", split.Short(), "commit", hash.Short(), "conflicts", len(conflicts))
	return &Result{Kind: Merged, Commit: hash, SplitPoint: split, Conflicts: conflicts}, nil
}

// candidatePaths is every file tracked by either tip plus every plain
// file in the working tree, sorted.
func (e *Engine) candidatePaths(current, other *commit.Commit) ([]string, error) {
	set := make(map[string]bool)
	for p := range other.Blobs {
		set[p] = true
	}
	for p := range current.Blobs {
		set[p] = true
	}
	names, err := e.workdir.WorkingFiles()
	if err != nil {
		return nil, err
	}
	for _, n := range names {
		set[n] = true
	}

	out := make([]string, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Strings(out)
	return out, nil
}

// resolve applies the three-way decision for one file and reports whether
// it conflicted. An absent file has the zero id, so two absent sides
// compare equal.
func (e *Engine) resolve(ctx context.Context, path string, base, current, other *commit.Commit) (bool, error) {
	sp := base.Blobs[path]
	cur := current.Blobs[path]
	giv := other.Blobs[path]

	curChanged := cur != sp
	givChanged := giv != sp

	switch {
	case !givChanged:
		return false, nil
	case !curChanged:
		if giv.IsZero() {
			e.logger.Debug("taking deletion", "path", path)
			return false, e.area.Remove(ctx, path)
		}
		e.logger.Debug("taking given version", "path", path)
		if err := e.workdir.CheckoutFile(ctx, other, path); err != nil {
			return false, err
		}
		return false, e.area.Add(ctx, path)
	case cur == giv:
		return false, nil
	}

	curData, err := e.blobData(cur)
	if err != nil {
		return false, err
	}
	givData, err := e.blobData(giv)
	if err != nil {
		return false, err
	}

	e.logger.Warn("conflict", "path", path)
	if err := e.workdir.WriteFile(path, RenderConflict(curData, givData)); err != nil {
		return false, err
	}
	return true, e.area.Add(ctx, path)
}

func (e *Engine) blobData(h objects.ObjectHash) ([]byte, error) {
	if h.IsZero() {
		return nil, nil
	}
	b, err := store.ReadBlob(e.repo.ObjectStore(), h)
	if err != nil {
		return nil, err
	}
	return b.Data(), nil
}
