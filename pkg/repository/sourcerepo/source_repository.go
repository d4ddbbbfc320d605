package sourcerepo

import (
	"context"
	"fmt"

	"github.com/utkarsh5026/gitlet/pkg/common"
	"github.com/utkarsh5026/gitlet/pkg/common/fileops"
	"github.com/utkarsh5026/gitlet/pkg/config"
	"github.com/utkarsh5026/gitlet/pkg/objects"
	"github.com/utkarsh5026/gitlet/pkg/objects/commit"
	"github.com/utkarsh5026/gitlet/pkg/repository/scpath"
	"github.com/utkarsh5026/gitlet/pkg/repository/state"
	"github.com/utkarsh5026/gitlet/pkg/store"
)

// InitialCommitMessage is the message of every repository's root commit.
const InitialCommitMessage = "initial commit"

// SourceRepository is an opened repository:
//
//	<working-tree>/
//	├─ .gitlet/
//	│  ├─ objects/ab/cdef...   blobs and commits
//	│  ├─ state.json           branches, head, staging, remotes
//	│  └─ config.json          repository configuration
//	├─ file1.txt
//	└─ ...
//
// The state record is loaded when the repository is opened and written only
// by Save, so a command that fails part way leaves nothing behind except
// unreferenced objects.
type SourceRepository struct {
	workingDir  scpath.RepositoryPath
	sourceDir   scpath.SourcePath
	objectStore *store.FileObjectStore
	state       *state.State
	config      *config.Manager
}

// Options adjusts how a repository is opened.
type Options struct {
	// UserConfigPath overrides ~/.config/gitlet/config.json.
	UserConfigPath scpath.AbsolutePath

	// Overrides are command-line configuration values.
	Overrides map[string]string
}

// Option configures Options.
type Option func(*Options)

// WithUserConfig points the user configuration level at path.
func WithUserConfig(path scpath.AbsolutePath) Option {
	return func(o *Options) { o.UserConfigPath = path }
}

// WithOverrides applies command-line configuration values.
func WithOverrides(values map[string]string) Option {
	return func(o *Options) { o.Overrides = values }
}

func buildOptions(opts []Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func loadConfig(ctx context.Context, sourceDir scpath.SourcePath, o *Options) (*config.Manager, error) {
	m := config.NewManager(sourceDir, o.UserConfigPath)
	if err := m.Load(ctx); err != nil {
		return nil, err
	}
	for k, v := range o.Overrides {
		if err := m.SetCommandLine(k, v); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Initialize creates a repository at path: the metadata directory, the
// initial commit, and a single branch pointing at it. The branch name comes
// from init.defaultbranch.
func Initialize(ctx context.Context, path scpath.RepositoryPath, opts ...Option) (*SourceRepository, error) {
	exists, err := RepositoryExists(path)
	if err != nil {
		return nil, fmt.Errorf("failed to check if repository exists: %w", err)
	}
	if exists {
		return nil, newAlreadyExistsError(path)
	}

	o := buildOptions(opts)
	sourceDir := path.SourcePath()

	// the repository level is still empty here, so user and command-line
	// values decide the initial branch name
	cfg, err := loadConfig(ctx, sourceDir, o)
	if err != nil {
		return nil, err
	}

	objectStore := store.NewFileObjectStore()
	if err := objectStore.Initialize(sourceDir); err != nil {
		return nil, err
	}

	initial := commit.New(InitialCommitMessage, common.EpochTimestamp(), "", "")
	head, err := objectStore.WriteObject(initial)
	if err != nil {
		return nil, fmt.Errorf("failed to write initial commit: %w", err)
	}

	repo := &SourceRepository{
		workingDir:  path,
		sourceDir:   sourceDir,
		objectStore: objectStore,
		state:       state.New(config.NewTypedConfig(cfg).DefaultBranch(), head),
		config:      cfg,
	}
	if err := repo.Save(); err != nil {
		return nil, err
	}
	return repo, nil
}

// Open opens the repository whose working tree root is path.
func Open(ctx context.Context, path scpath.RepositoryPath, opts ...Option) (*SourceRepository, error) {
	return OpenSource(ctx, path.SourcePath(), opts...)
}

// OpenSource opens a repository by the location of its metadata directory.
// Remotes are addressed this way.
func OpenSource(ctx context.Context, sourceDir scpath.SourcePath, opts ...Option) (*SourceRepository, error) {
	isDir, err := fileops.IsDirectory(scpath.AbsolutePath(sourceDir))
	if err != nil {
		return nil, err
	}
	if !isDir {
		return nil, newNotRepositoryError("open", sourceDir.String())
	}
	stateExists, err := fileops.Exists(sourceDir.StatePath())
	if err != nil {
		return nil, err
	}
	if !stateExists {
		return nil, newNotRepositoryError("open", sourceDir.String())
	}

	st, err := state.Load(sourceDir.StatePath())
	if err != nil {
		return nil, fmt.Errorf("failed to load repository state: %w", err)
	}

	objectStore := store.NewFileObjectStore()
	if err := objectStore.Initialize(sourceDir); err != nil {
		return nil, err
	}

	cfg, err := loadConfig(ctx, sourceDir, buildOptions(opts))
	if err != nil {
		return nil, err
	}

	return &SourceRepository{
		workingDir:  sourceDir.WorkingTree(),
		sourceDir:   sourceDir,
		objectStore: objectStore,
		state:       st,
		config:      cfg,
	}, nil
}

// Save persists the state record.
func (sr *SourceRepository) Save() error {
	if err := sr.state.Save(sr.sourceDir.StatePath()); err != nil {
		return fmt.Errorf("failed to save repository state: %w", err)
	}
	return nil
}

func (sr *SourceRepository) WorkingDirectory() scpath.RepositoryPath { return sr.workingDir }
func (sr *SourceRepository) SourceDirectory() scpath.SourcePath      { return sr.sourceDir }
func (sr *SourceRepository) ObjectStore() store.ObjectStore          { return sr.objectStore }
func (sr *SourceRepository) State() *state.State                     { return sr.state }

// Config returns the configuration hierarchy for this repository.
func (sr *SourceRepository) Config() *config.Manager { return sr.config }

// Head returns the commit id head points to.
func (sr *SourceRepository) Head() objects.ObjectHash { return sr.state.Head }
