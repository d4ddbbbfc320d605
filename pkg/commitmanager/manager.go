package commitmanager

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/utkarsh5026/gitlet/pkg/common"
	"github.com/utkarsh5026/gitlet/pkg/common/logger"
	"github.com/utkarsh5026/gitlet/pkg/objects"
	"github.com/utkarsh5026/gitlet/pkg/objects/commit"
	"github.com/utkarsh5026/gitlet/pkg/store"
)

// Manager creates commits and answers history questions over an object
// store. It holds no mutable state of its own, so one Manager may serve
// several goroutines as long as the store does.
type Manager struct {
	store  store.ObjectStore
	clock  common.Clock
	logger *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock replaces the wall clock used to stamp new commits.
func WithClock(c common.Clock) Option {
	return func(m *Manager) { m.clock = c }
}

// WithLogger replaces the component logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.logger = logger.Component(l, "commitmanager") }
}

// NewManager creates a Manager over s.
func NewManager(s store.ObjectStore, opts ...Option) *Manager {
	m := &Manager{
		store:  s,
		clock:  common.SystemClock{},
		logger: logger.With("component", "commitmanager"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CommitOptions describes a commit to create.
type CommitOptions struct {
	Message string
	Parent  objects.ObjectHash
	Parent2 objects.ObjectHash
	Blobs   map[string]objects.ObjectHash
}

// CreateCommit stamps, stores, and returns a new commit. Every named parent
// must already be stored.
func (m *Manager) CreateCommit(ctx context.Context, opts CommitOptions) (*commit.Commit, objects.ObjectHash, error) {
	select {
	case <-ctx.Done():
		return nil, "", ctx.Err()
	default:
	}

	for _, p := range []objects.ObjectHash{opts.Parent, opts.Parent2} {
		if p == "" {
			continue
		}
		ok, err := m.store.HasObject(p)
		if err != nil {
			return nil, "", err
		}
		if !ok {
			return nil, "", newMissingParentError(p)
		}
	}

	c := commit.New(opts.Message, common.FormatCommitTime(m.clock.Now()), opts.Parent, opts.Parent2)
	for path, blob := range opts.Blobs {
		c.Blobs[path] = blob
	}

	hash, err := m.store.WriteObject(c)
	if err != nil {
		return nil, "", fmt.Errorf("write commit: %w", err)
	}

	m.logger.Debug("created commit", "id", hash, "parent", opts.Parent, "merge", opts.Parent2, "files", len(c.Blobs))
	return c, hash, nil
}

// GetCommit loads a commit by full id.
func (m *Manager) GetCommit(ctx context.Context, hash objects.ObjectHash) (*commit.Commit, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	c, err := store.ReadCommit(m.store, hash)
	if err != nil {
		var nf *store.NotFoundError
		if errors.As(err, &nf) {
			return nil, NewCommitNotFoundError("get", hash.String())
		}
		return nil, err
	}
	return c, nil
}
