// Package staging records pending additions and removals against the head
// commit and folds them into new commits.
package staging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/utkarsh5026/gitlet/pkg/commitmanager"
	"github.com/utkarsh5026/gitlet/pkg/common/fileops"
	"github.com/utkarsh5026/gitlet/pkg/common/logger"
	"github.com/utkarsh5026/gitlet/pkg/objects"
	"github.com/utkarsh5026/gitlet/pkg/objects/blob"
	"github.com/utkarsh5026/gitlet/pkg/objects/commit"
	"github.com/utkarsh5026/gitlet/pkg/repository/scpath"
	"github.com/utkarsh5026/gitlet/pkg/repository/sourcerepo"
)

// Area operates on the staging entries of a repository's state record.
// Changes are made in memory; the caller persists them with the rest of
// the state once the command succeeds.
type Area struct {
	repo    sourcerepo.Repository
	commits *commitmanager.Manager
	logger  *slog.Logger
}

// Option configures an Area.
type Option func(*Area)

// WithLogger replaces the component logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *Area) { a.logger = l }
}

// NewArea creates a staging area bound to repo.
func NewArea(repo sourcerepo.Repository, commits *commitmanager.Manager, opts ...Option) *Area {
	a := &Area{
		repo:    repo,
		commits: commits,
		logger:  logger.Component(logger.Default, "staging"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Area) headCommit(ctx context.Context) (*commit.Commit, error) {
	return a.commits.GetCommit(ctx, a.repo.State().Head)
}

// Add stages the working copy of name. When the content equals the version
// tracked by head, any pending entry for name is dropped instead, which
// also cancels a staged removal.
func (a *Area) Add(ctx context.Context, name string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	rel, err := scpath.NewRelativePath(name)
	if err != nil {
		return newFileNotFoundError(name, err)
	}
	path := a.repo.WorkingDirectory().File(rel)

	isFile, err := fileops.IsFile(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", rel, err)
	}
	if !isFile {
		return newFileNotFoundError(rel.String(), nil)
	}

	data, err := fileops.ReadBytesStrict(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", rel, err)
	}

	head, err := a.headCommit(ctx)
	if err != nil {
		return err
	}

	st := a.repo.State()
	hash := blob.HashOf(data)
	if tracked, ok := head.BlobFor(rel.String()); ok && tracked == hash {
		st.Unstage(rel.String())
		a.logger.Debug("content matches head, unstaged", "path", rel)
		return nil
	}

	if _, err := a.repo.ObjectStore().WriteObject(blob.NewBlob(data)); err != nil {
		return fmt.Errorf("store blob for %s: %w", rel, err)
	}
	st.StageAddition(rel.String(), hash)
	a.logger.Debug("staged addition", "path", rel, "blob", hash.Short())
	return nil
}

// Remove unstages a pending addition of name and, when head tracks it,
// stages its removal and deletes the working copy.
func (a *Area) Remove(ctx context.Context, name string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	rel, err := scpath.NewRelativePath(name)
	if err != nil {
		return newNothingToRemoveError(name)
	}

	head, err := a.headCommit(ctx)
	if err != nil {
		return err
	}

	st := a.repo.State()
	_, staged := st.StagedAddition(rel.String())
	tracked := head.Tracks(rel.String())
	if !staged && !tracked {
		return newNothingToRemoveError(rel.String())
	}

	if staged {
		st.Unstage(rel.String())
	}
	if tracked {
		st.StageRemoval(rel.String())
		if err := fileops.SafeRemove(a.repo.WorkingDirectory().File(rel)); err != nil {
			return fmt.Errorf("delete %s: %w", rel, err)
		}
	}
	a.logger.Debug("staged removal", "path", rel, "tracked", tracked)
	return nil
}

// CommitOption adjusts a single Commit call.
type CommitOption func(*commitConfig)

type commitConfig struct {
	parent2    objects.ObjectHash
	allowEmpty bool
}

// WithSecondParent records a merge commit. Merge commits are created even
// when nothing is staged.
func WithSecondParent(h objects.ObjectHash) CommitOption {
	return func(c *commitConfig) {
		c.parent2 = h
		c.allowEmpty = true
	}
}

// WithAllowEmpty permits a commit with no staged changes.
func WithAllowEmpty() CommitOption {
	return func(c *commitConfig) { c.allowEmpty = true }
}

// Commit snapshots head's tracked files with every staged entry applied,
// clears the staging area, and advances the current branch to the new
// commit.
func (a *Area) Commit(ctx context.Context, message string, opts ...CommitOption) (objects.ObjectHash, error) {
	cfg := &commitConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	st := a.repo.State()
	if !st.HasStagedChanges() && !cfg.allowEmpty {
		return "", ErrNothingToCommit
	}
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	head, err := a.headCommit(ctx)
	if err != nil {
		return "", err
	}

	blobs := head.Clone().Blobs
	for path, entry := range st.Staged {
		if entry.Removed {
			delete(blobs, path)
		} else {
			blobs[path] = entry.Blob
		}
	}

	_, hash, err := a.commits.CreateCommit(ctx, commitmanager.CommitOptions{
		Message: message,
		Parent:  st.Head,
		Parent2: cfg.parent2,
		Blobs:   blobs,
	})
	if err != nil {
		return "", err
	}

	st.ClearStaging()
	st.AdvanceHead(hash)
	a.logger.Info("committed", "id", hash.Short(), "branch", st.CurrentBranch, "files", len(blobs))
	return hash, nil
}
