// Package workdir keeps the files of the working tree in step with commits:
// it writes snapshots out, guards untracked files, and computes status.
package workdir

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/utkarsh5026/gitlet/pkg/commitmanager"
	"github.com/utkarsh5026/gitlet/pkg/common/fileops"
	"github.com/utkarsh5026/gitlet/pkg/common/logger"
	"github.com/utkarsh5026/gitlet/pkg/objects"
	"github.com/utkarsh5026/gitlet/pkg/objects/blob"
	"github.com/utkarsh5026/gitlet/pkg/objects/commit"
	"github.com/utkarsh5026/gitlet/pkg/repository/scpath"
	"github.com/utkarsh5026/gitlet/pkg/repository/sourcerepo"
	"github.com/utkarsh5026/gitlet/pkg/workdir/internal"
)

const defaultHashWorkers = 4

// Manager updates and inspects the working tree of one repository.
type Manager struct {
	repo        sourcerepo.Repository
	commits     *commitmanager.Manager
	transaction *internal.Transaction
	workers     int
	logger      *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger replaces the component logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithHashWorkers bounds how many files are hashed at once.
func WithHashWorkers(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.workers = n
		}
	}
}

// NewManager creates a working tree manager for repo.
func NewManager(repo sourcerepo.Repository, commits *commitmanager.Manager, opts ...Option) *Manager {
	fileOps := internal.NewFileOps(repo.WorkingDirectory(), repo.ObjectStore())
	m := &Manager{
		repo:        repo,
		commits:     commits,
		transaction: internal.NewTransaction(fileOps),
		workers:     defaultHashWorkers,
		logger:      logger.Component(logger.Default, "workdir"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WorkingFiles lists the plain files at the root of the working tree.
func (m *Manager) WorkingFiles() ([]string, error) {
	return fileops.PlainFilenames(scpath.AbsolutePath(m.repo.WorkingDirectory()))
}

// Materialize replaces the files tracked by from with the snapshot in to.
// Files tracked by from but not by to are deleted; every file in to is
// written. Untracked files are left alone, so callers run CheckUntracked
// first. If a write fails the files already touched are restored.
func (m *Manager) Materialize(ctx context.Context, from, to *commit.Commit) (MaterializeResult, error) {
	plan := internal.Analyze(from.Blobs, to.Blobs)

	if _, err := m.transaction.Execute(ctx, plan.Operations); err != nil {
		return MaterializeResult{}, fmt.Errorf("materialize: %w", err)
	}

	m.logger.Debug("materialized snapshot",
		"created", plan.Summary.Created,
		"modified", plan.Summary.Modified,
		"deleted", plan.Summary.Deleted)

	return MaterializeResult{
		Created:  plan.Summary.Created,
		Modified: plan.Summary.Modified,
		Deleted:  plan.Summary.Deleted,
	}, nil
}

// CheckUntracked fails with an *UntrackedFileError when a working file
// that head does not track and that is not staged would be overwritten
// with different content by target.
func (m *Manager) CheckUntracked(ctx context.Context, target *commit.Commit) error {
	st := m.repo.State()
	head, err := m.commits.GetCommit(ctx, st.Head)
	if err != nil {
		return err
	}

	names, err := m.WorkingFiles()
	if err != nil {
		return err
	}

	var candidates []string
	for _, name := range names {
		if head.Tracks(name) || !target.Tracks(name) {
			continue
		}
		if _, staged := st.StagedAddition(name); staged {
			continue
		}
		candidates = append(candidates, name)
	}
	if len(candidates) == 0 {
		return nil
	}

	hashes, err := m.hashFiles(ctx, candidates)
	if err != nil {
		return err
	}

	var blocked []string
	for _, name := range candidates {
		if h, ok := hashes[name]; ok && h != target.Blobs[name] {
			blocked = append(blocked, name)
		}
	}
	if len(blocked) > 0 {
		m.logger.Warn("untracked files in the way", "files", blocked)
		return newUntrackedFileError("check_untracked", blocked)
	}
	return nil
}

// CheckoutFile writes c's version of name into the working tree. The
// staging area is not touched.
func (m *Manager) CheckoutFile(ctx context.Context, c *commit.Commit, name string) error {
	rel, err := scpath.NewRelativePath(name)
	if err != nil {
		return newFileNotInCommitError(name)
	}
	h, ok := c.BlobFor(rel.String())
	if !ok {
		return newFileNotInCommitError(rel.String())
	}

	exists, err := fileops.Exists(m.repo.WorkingDirectory().File(rel))
	if err != nil {
		return err
	}
	action := internal.ActionCreate
	if exists {
		action = internal.ActionModify
	}

	op := internal.Operation{Path: rel.String(), Action: action, Blob: h}
	if _, err := m.transaction.Execute(ctx, []internal.Operation{op}); err != nil {
		return fmt.Errorf("checkout %s: %w", rel, err)
	}
	return nil
}

// WriteFile writes data to name in the working tree.
func (m *Manager) WriteFile(name string, data []byte) error {
	rel, err := scpath.NewRelativePath(name)
	if err != nil {
		return err
	}
	return fileops.AtomicWrite(m.repo.WorkingDirectory().File(rel), data, 0644)
}

// ReadFile returns the content of name, or nil when it is absent.
func (m *Manager) ReadFile(name string) ([]byte, error) {
	rel, err := scpath.NewRelativePath(name)
	if err != nil {
		return nil, err
	}
	return fileops.ReadBytes(m.repo.WorkingDirectory().File(rel))
}

// hashFiles computes blob ids for names concurrently. Files that vanish
// while hashing are left out of the result.
func (m *Manager) hashFiles(ctx context.Context, names []string) (map[string]objects.ObjectHash, error) {
	hashes := make([]objects.ObjectHash, len(names))
	present := make([]bool, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.workers)

	for i, name := range names {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			data, err := os.ReadFile(m.repo.WorkingDirectory().Join(name).String())
			if os.IsNotExist(err) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("hash %s: %w", name, err)
			}
			hashes[i] = blob.HashOf(data)
			present[i] = true
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]objects.ObjectHash, len(names))
	for i, name := range names {
		if present[i] {
			out[name] = hashes[i]
		}
	}
	return out, nil
}

// Status compares the working tree with head and the staging area.
func (m *Manager) Status(ctx context.Context) (*Status, error) {
	st := m.repo.State()
	head, err := m.commits.GetCommit(ctx, st.Head)
	if err != nil {
		return nil, err
	}

	names, err := m.WorkingFiles()
	if err != nil {
		return nil, err
	}
	onDisk, err := m.hashFiles(ctx, names)
	if err != nil {
		return nil, err
	}

	status := &Status{
		Branch:   st.CurrentBranch,
		Branches: st.BranchNames(),
		Staged:   st.AdditionPaths(),
		Removed:  st.RemovalPaths(),
	}

	candidates := make(map[string]bool)
	for _, p := range head.Paths() {
		candidates[p] = true
	}
	for _, p := range status.Staged {
		candidates[p] = true
	}

	for path := range candidates {
		diskHash, present := onDisk[path]

		want, staged := st.StagedAddition(path)
		if !staged {
			if st.IsStagedForRemoval(path) {
				continue
			}
			want = head.Blobs[path]
		}

		switch {
		case !present:
			status.Unstaged = append(status.Unstaged, FileChange{Path: path, Kind: ChangeDeleted})
		case diskHash != want:
			status.Unstaged = append(status.Unstaged, FileChange{Path: path, Kind: ChangeModified})
		}
	}
	sort.Slice(status.Unstaged, func(i, j int) bool {
		return status.Unstaged[i].Path < status.Unstaged[j].Path
	})

	for _, name := range names {
		if _, ok := onDisk[name]; !ok {
			continue
		}
		if _, staged := st.StagedAddition(name); staged {
			continue
		}
		if head.Tracks(name) && !st.IsStagedForRemoval(name) {
			continue
		}
		status.Untracked = append(status.Untracked, name)
	}

	return status, nil
}
