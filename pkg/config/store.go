package config

import (
	"sync"

	"github.com/utkarsh5026/gitlet/pkg/common/fileops"
	"github.com/utkarsh5026/gitlet/pkg/repository/scpath"
)

// Store is one file-backed configuration level.
type Store struct {
	mu     sync.RWMutex
	path   scpath.AbsolutePath
	level  ConfigLevel
	values map[string]string
	parser *Parser
}

// NewStore creates a store for path. Nothing is read until Load.
func NewStore(path scpath.AbsolutePath, level ConfigLevel) *Store {
	return &Store{
		path:   path,
		level:  level,
		values: make(map[string]string),
		parser: &Parser{},
	}
}

// Load reads the file. A missing file is an empty configuration.
func (s *Store) Load() error {
	content, err := fileops.ReadBytes(s.path)
	if err != nil {
		return NewConfigError("load", CodeNotFoundErr, "", s.path.String(), s.level.String(), err)
	}

	values, err := s.parser.Parse(string(content))
	if err != nil {
		return NewInvalidFormatError("load", s.path.String(), err)
	}

	s.mu.Lock()
	s.values = values
	s.mu.Unlock()
	return nil
}

// Save writes the file atomically.
func (s *Store) Save() error {
	s.mu.RLock()
	content, err := s.parser.Serialize(s.values)
	s.mu.RUnlock()
	if err != nil {
		return NewInvalidFormatError("save", s.path.String(), err)
	}

	if err := fileops.AtomicWrite(s.path, []byte(content), 0644); err != nil {
		return NewInvalidFormatError("save", s.path.String(), err)
	}
	return nil
}

// Get returns the value for key.
func (s *Store) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set replaces the value for key.
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Unset removes key.
func (s *Store) Unset(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// Keys returns every key in the store.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.values))
	for k := range s.values {
		out = append(out, k)
	}
	return out
}

func (s *Store) Path() scpath.AbsolutePath { return s.path }
func (s *Store) Level() ConfigLevel        { return s.level }
