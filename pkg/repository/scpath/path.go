package scpath

import (
	"fmt"
	"path/filepath"
	"strings"
)

// AbsolutePath is an absolute filesystem path.
type AbsolutePath string

// RepositoryPath is the absolute path of a working tree root.
type RepositoryPath string

// SourcePath is the absolute path of a .gitlet directory.
type SourcePath string

// RelativePath names a tracked file relative to the working tree root.
// Tracked files live directly in the root, so a valid RelativePath is a
// single path element.
type RelativePath string

func (p AbsolutePath) String() string { return string(p) }

// Join appends path elements.
func (p AbsolutePath) Join(elem ...string) AbsolutePath {
	return AbsolutePath(filepath.Join(append([]string{string(p)}, elem...)...))
}

// Dir returns the parent directory.
func (p AbsolutePath) Dir() AbsolutePath {
	return AbsolutePath(filepath.Dir(string(p)))
}

func (rp RepositoryPath) String() string { return string(rp) }

// Join joins path elements to the repository root.
func (rp RepositoryPath) Join(elem ...string) AbsolutePath {
	return AbsolutePath(filepath.Join(append([]string{string(rp)}, elem...)...))
}

// File returns the absolute location of a tracked file.
func (rp RepositoryPath) File(name RelativePath) AbsolutePath {
	return rp.Join(string(name))
}

// SourcePath returns the .gitlet directory of this working tree.
func (rp RepositoryPath) SourcePath() SourcePath {
	return SourcePath(filepath.Join(string(rp), SourceDir))
}

// NewRepositoryPath resolves path to an absolute repository root.
func NewRepositoryPath(path string) (RepositoryPath, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return RepositoryPath(abs), nil
}

func (sp SourcePath) String() string { return string(sp) }

// Join joins path elements to the metadata directory.
func (sp SourcePath) Join(elem ...string) AbsolutePath {
	return AbsolutePath(filepath.Join(append([]string{string(sp)}, elem...)...))
}

// ObjectsPath returns the objects directory.
func (sp SourcePath) ObjectsPath() AbsolutePath { return sp.Join(ObjectsDir) }

// StatePath returns the repository state file.
func (sp SourcePath) StatePath() AbsolutePath { return sp.Join(StateFile) }

// ConfigPath returns the repository config file.
func (sp SourcePath) ConfigPath() AbsolutePath { return sp.Join(ConfigFile) }

// WorkingTree returns the root that owns this metadata directory.
func (sp SourcePath) WorkingTree() RepositoryPath {
	return RepositoryPath(filepath.Dir(string(sp)))
}

// ObjectFilePath maps a 40-character hash to objects/ab/cdef...
// It returns "" for any other length.
func (sp SourcePath) ObjectFilePath(hash string) AbsolutePath {
	if len(hash) != 40 {
		return ""
	}
	return sp.Join(ObjectsDir, hash[:2], hash[2:])
}

// NewSourcePath resolves a metadata directory location. A relative location
// is interpreted against base.
func NewSourcePath(location string, base RepositoryPath) SourcePath {
	if filepath.IsAbs(location) {
		return SourcePath(filepath.Clean(location))
	}
	return SourcePath(filepath.Join(string(base), location))
}

func (p RelativePath) String() string { return string(p) }

// NewRelativePath validates a user-supplied file name.
func NewRelativePath(name string) (RelativePath, error) {
	clean := strings.TrimPrefix(filepath.ToSlash(filepath.Clean(name)), "./")
	switch {
	case clean == "" || clean == "." || clean == "..":
		return "", fmt.Errorf("invalid file name %q", name)
	case strings.Contains(clean, "/"):
		return "", fmt.Errorf("file %q is not in the working tree root", name)
	case clean == SourceDir:
		return "", fmt.Errorf("%s is reserved", SourceDir)
	}
	return RelativePath(clean), nil
}
