// Package remote registers other repositories by location and copies
// objects and branch pointers between them.
package remote

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/utkarsh5026/gitlet/pkg/commitmanager"
	"github.com/utkarsh5026/gitlet/pkg/common/logger"
	"github.com/utkarsh5026/gitlet/pkg/merge"
	"github.com/utkarsh5026/gitlet/pkg/refs/branch"
	"github.com/utkarsh5026/gitlet/pkg/repository/scpath"
	"github.com/utkarsh5026/gitlet/pkg/repository/sourcerepo"
)

const defaultWorkers = 4

// Repository is an opened remote: a repository whose state can be
// written back after a push.
type Repository interface {
	sourcerepo.Repository
	Save() error
}

// Opener opens the repository whose metadata directory is sourceDir.
type Opener func(ctx context.Context, sourceDir scpath.SourcePath) (Repository, error)

// Info is one registered remote.
type Info struct {
	Name     string
	Location string
}

// Manager runs remote operations for the local repository.
type Manager struct {
	repo     sourcerepo.Repository
	commits  *commitmanager.Manager
	branches *branch.Manager
	merger   *merge.Engine
	open     Opener
	workers  int
	logger   *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithWorkers bounds how many objects are copied at once.
func WithWorkers(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.workers = n
		}
	}
}

// WithOpener replaces how remote repositories are opened.
func WithOpener(open Opener) Option {
	return func(m *Manager) { m.open = open }
}

// WithRepositoryOptions passes options to sourcerepo.OpenSource when the
// default opener is used.
func WithRepositoryOptions(opts ...sourcerepo.Option) Option {
	return func(m *Manager) { m.open = defaultOpener(opts...) }
}

// WithLogger replaces the component logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

func defaultOpener(opts ...sourcerepo.Option) Opener {
	return func(ctx context.Context, sourceDir scpath.SourcePath) (Repository, error) {
		r, err := sourcerepo.OpenSource(ctx, sourceDir, opts...)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
}

// NewManager creates a remote manager. Pull merges through merger.
func NewManager(
	repo sourcerepo.Repository,
	commits *commitmanager.Manager,
	branches *branch.Manager,
	merger *merge.Engine,
	opts ...Option,
) *Manager {
	m := &Manager{
		repo:     repo,
		commits:  commits,
		branches: branches,
		merger:   merger,
		open:     defaultOpener(),
		workers:  defaultWorkers,
		logger:   logger.Component(logger.Default, "remote"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Add registers location under name. The location is the path of the
// remote's .gitlet directory; relative paths are taken from the working
// tree root when used.
func (m *Manager) Add(name, location string) error {
	if name == "" || strings.Contains(name, "/") {
		return newInvalidNameError(name)
	}
	st := m.repo.State()
	if _, ok := st.Remotes[name]; ok {
		return newExistsError(name)
	}
	st.Remotes[name] = location
	m.logger.Debug("added remote", "name", name, "location", location)
	return nil
}

// Remove forgets name. Remote-tracking branches are kept.
func (m *Manager) Remove(name string) error {
	st := m.repo.State()
	if _, ok := st.Remotes[name]; !ok {
		return newNotFoundError("rm-remote", name)
	}
	delete(st.Remotes, name)
	m.logger.Debug("removed remote", "name", name)
	return nil
}

// List returns the registered remotes sorted by name.
func (m *Manager) List() []Info {
	st := m.repo.State()
	names := st.RemoteNames()
	out := make([]Info, 0, len(names))
	for _, n := range names {
		out = append(out, Info{Name: n, Location: st.Remotes[n]})
	}
	return out
}

// connect resolves name and opens the remote repository.
func (m *Manager) connect(ctx context.Context, op, name string) (Repository, error) {
	location, ok := m.repo.State().Remotes[name]
	if !ok {
		return nil, newNotFoundError(op, name)
	}
	sourceDir := scpath.NewSourcePath(location, m.repo.WorkingDirectory())

	remote, err := m.open(ctx, sourceDir)
	if err != nil {
		var notRepo *sourcerepo.NotRepositoryError
		if errors.As(err, &notRepo) {
			return nil, newDirectoryNotFoundError(op, name, sourceDir.String(), err)
		}
		return nil, err
	}
	return remote, nil
}
