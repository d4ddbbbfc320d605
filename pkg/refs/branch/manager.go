// Package branch manages the branch table: creating and deleting branches,
// switching between them, and moving the current branch.
package branch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/utkarsh5026/gitlet/pkg/commitmanager"
	"github.com/utkarsh5026/gitlet/pkg/common/logger"
	"github.com/utkarsh5026/gitlet/pkg/objects"
	"github.com/utkarsh5026/gitlet/pkg/repository/sourcerepo"
	"github.com/utkarsh5026/gitlet/pkg/workdir"
)

// Manager handles branch operations against the repository state.
//
// It coordinates between:
//   - the state record, which holds the branch table and head
//   - commitmanager, for commit lookup and prefix resolution
//   - workdir, for updating files when head moves
//
// Manager is not thread-safe.
type Manager struct {
	repo    sourcerepo.Repository
	commits *commitmanager.Manager
	workdir *workdir.Manager
	logger  *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger replaces the component logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// NewManager creates a branch manager.
func NewManager(repo sourcerepo.Repository, commits *commitmanager.Manager, wd *workdir.Manager, opts ...Option) *Manager {
	m := &Manager{
		repo:    repo,
		commits: commits,
		workdir: wd,
		logger:  logger.Component(logger.Default, "branch"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ValidateName rejects names that cannot be stored or typed as a single
// command-line operand.
func ValidateName(name string) error {
	if name == "" {
		return NewInvalidNameError(name, "empty name")
	}
	for _, r := range name {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return NewInvalidNameError(name, "contains whitespace or control characters")
		}
	}
	if strings.HasPrefix(name, "-") {
		return NewInvalidNameError(name, "starts with '-'")
	}
	return nil
}

// Current returns the name of the checked out branch.
func (m *Manager) Current() string {
	return m.repo.State().CurrentBranch
}

// Exists reports whether name is in the branch table.
func (m *Manager) Exists(name string) bool {
	_, ok := m.repo.State().BranchTip(name)
	return ok
}

// Resolve returns the commit name points to.
func (m *Manager) Resolve(name string) (objects.ObjectHash, error) {
	tip, ok := m.repo.State().BranchTip(name)
	if !ok {
		return "", NewNotFoundError("resolve", name, MsgNotFound)
	}
	return tip, nil
}

// Create adds a branch pointing at head, or at the start point given. The
// new branch is not checked out. With WithForceCreate an existing branch
// other than the current one is repointed.
func (m *Manager) Create(ctx context.Context, name string, opts ...CreateOption) (*BranchInfo, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	cfg := &CreateConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := ValidateName(name); err != nil {
		return nil, err
	}

	st := m.repo.State()
	if _, exists := st.BranchTip(name); exists && (!cfg.Force || name == st.CurrentBranch) {
		return nil, NewAlreadyExistsError(name)
	}

	start := cfg.StartPoint
	if start == "" {
		start = st.Head
	}
	c, err := m.commits.GetCommit(ctx, start)
	if err != nil {
		return nil, err
	}

	st.SetBranch(name, start)
	m.logger.Debug("created branch", "name", name, "at", start.Short())
	return &BranchInfo{
		Name:              name,
		Hash:              start,
		LastCommitMessage: c.Message,
		LastCommitDate:    c.Timestamp,
	}, nil
}

// Delete removes name from the branch table. Commits it pointed to stay in
// the store.
func (m *Manager) Delete(ctx context.Context, name string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	st := m.repo.State()
	if _, ok := st.BranchTip(name); !ok {
		return NewNotFoundError("delete", name, MsgNotFound)
	}
	if name == st.CurrentBranch {
		return NewIsCurrentError("delete", name, MsgRemoveCurrent)
	}
	st.DeleteBranch(name)
	m.logger.Debug("deleted branch", "name", name)
	return nil
}

// List returns every branch sorted by name.
func (m *Manager) List(ctx context.Context) ([]BranchInfo, error) {
	st := m.repo.State()
	names := st.BranchNames()
	out := make([]BranchInfo, 0, len(names))
	for _, name := range names {
		tip := st.Branches[name]
		c, err := m.commits.GetCommit(ctx, tip)
		if err != nil {
			return nil, fmt.Errorf("branch %s: %w", name, err)
		}
		out = append(out, BranchInfo{
			Name:              name,
			Hash:              tip,
			IsCurrentBranch:   name == st.CurrentBranch,
			LastCommitMessage: c.Message,
			LastCommitDate:    c.Timestamp,
		})
	}
	return out, nil
}
