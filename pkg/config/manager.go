package config

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/utkarsh5026/gitlet/pkg/repository/scpath"
)

// Keys understood by gitlet.
const (
	KeyDefaultBranch   = "init.defaultbranch"
	KeyTransferWorkers = "transfer.workers"
	KeyColorUI         = "color.ui"
	KeyLogFormat       = "log.format"
)

// Manager resolves keys across the hierarchy:
// command-line > repository > user > builtin. It is safe for concurrent use.
type Manager struct {
	mu              sync.RWMutex
	stores          map[ConfigLevel]*Store
	commandLine     map[string]string
	builtinDefaults map[string]string
	validator       *Validator
}

// NewManager creates a manager. An empty sourcePath leaves out the
// repository level, which is the case for init and for commands run
// outside a repository. An empty userPath uses ~/.config/gitlet/config.json.
func NewManager(sourcePath scpath.SourcePath, userPath scpath.AbsolutePath) *Manager {
	m := &Manager{
		stores:      make(map[ConfigLevel]*Store),
		commandLine: make(map[string]string),
		builtinDefaults: map[string]string{
			KeyDefaultBranch:   "master",
			KeyTransferWorkers: "4",
			KeyColorUI:         "auto",
			KeyLogFormat:       "text",
		},
		validator: &Validator{},
	}

	if userPath == "" {
		userPath = defaultUserConfigPath()
	}
	m.stores[UserLevel] = NewStore(userPath, UserLevel)

	if sourcePath != "" {
		m.stores[RepositoryLevel] = NewStore(sourcePath.ConfigPath(), RepositoryLevel)
	}
	return m
}

func defaultUserConfigPath() scpath.AbsolutePath {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return scpath.AbsolutePath(filepath.Join(home, ".config", "gitlet", "config.json"))
}

// Load reads every file-backed level concurrently.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	g, _ := errgroup.WithContext(ctx)
	for _, store := range m.stores {
		s := store
		g.Go(s.Load)
	}
	return g.Wait()
}

// Get returns the effective entry for key, or nil.
func (m *Manager) Get(key string) *ConfigEntry {
	key = strings.ToLower(key)

	m.mu.RLock()
	defer m.mu.RUnlock()

	if v, ok := m.commandLine[key]; ok {
		return NewEntry(key, v, CommandLineLevel, CommandLineLevel.String())
	}
	for _, level := range []ConfigLevel{RepositoryLevel, UserLevel} {
		s, ok := m.stores[level]
		if !ok {
			continue
		}
		if v, ok := s.Get(key); ok {
			return NewEntry(key, v, level, s.Path().String())
		}
	}
	if v, ok := m.builtinDefaults[key]; ok {
		return NewEntry(key, v, BuiltinLevel, BuiltinLevel.String())
	}
	return nil
}

// Set validates value and writes it at level.
func (m *Manager) Set(key, value string, level ConfigLevel) error {
	key = strings.ToLower(key)
	if err := m.validator.ValidateKeyValue(key, value); err != nil {
		return err
	}

	s, err := m.writableStore("set", key, level)
	if err != nil {
		return err
	}
	s.Set(key, value)
	return s.Save()
}

// Unset removes key at level.
func (m *Manager) Unset(key string, level ConfigLevel) error {
	key = strings.ToLower(key)
	s, err := m.writableStore("unset", key, level)
	if err != nil {
		return err
	}
	s.Unset(key)
	return s.Save()
}

func (m *Manager) writableStore(op, key string, level ConfigLevel) (*Store, error) {
	if !level.CanWrite() {
		return nil, NewConfigError(op, CodeReadOnlyErr, key, "", level.String(), ErrReadOnly)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.stores[level]
	if !ok {
		return nil, NewConfigError(op, CodeNotFoundErr, key, "", level.String(), ErrInvalidLevel)
	}
	return s, nil
}

// SetCommandLine records a --config override after validating it.
func (m *Manager) SetCommandLine(key, value string) error {
	key = strings.ToLower(key)
	if err := m.validator.ValidateKeyValue(key, value); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commandLine[key] = value
	return nil
}

// List returns the effective entry for every known key, sorted by key.
func (m *Manager) List() []*ConfigEntry {
	m.mu.RLock()
	keys := make(map[string]struct{})
	for k := range m.commandLine {
		keys[k] = struct{}{}
	}
	for _, s := range m.stores {
		for _, k := range s.Keys() {
			keys[k] = struct{}{}
		}
	}
	for k := range m.builtinDefaults {
		keys[k] = struct{}{}
	}
	m.mu.RUnlock()

	entries := make([]*ConfigEntry, 0, len(keys))
	for k := range keys {
		if e := m.Get(k); e != nil {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}
