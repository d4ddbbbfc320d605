package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/utkarsh5026/gitlet/pkg/repository/scpath"
)

// Exists reports whether anything exists at p.
func Exists(p scpath.AbsolutePath) (bool, error) {
	_, err := os.Stat(p.String())
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("check existence: %w", err)
}

// EnsureDir creates p and any missing parents.
func EnsureDir(p scpath.AbsolutePath) error {
	if err := os.MkdirAll(p.String(), 0755); err != nil {
		return fmt.Errorf("ensure directory %s: %w", p, err)
	}
	return nil
}

// EnsureParentDir creates the directory that will contain p.
func EnsureParentDir(p scpath.AbsolutePath) error {
	return EnsureDir(p.Dir())
}

// ReadBytes returns the file content, or nil and no error when the file
// does not exist.
func ReadBytes(p scpath.AbsolutePath) ([]byte, error) {
	data, err := os.ReadFile(p.String())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

// ReadBytesStrict is ReadBytes for files that must exist.
func ReadBytesStrict(p scpath.AbsolutePath) ([]byte, error) {
	data, err := os.ReadFile(p.String())
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

// WriteFile writes a working tree file with 0644 permissions, replacing
// whatever was there.
func WriteFile(p scpath.AbsolutePath, data []byte) error {
	if err := os.WriteFile(p.String(), data, 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// SafeRemove deletes p. A missing file is not an error.
func SafeRemove(p scpath.AbsolutePath) error {
	if err := os.Remove(p.String()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

// IsFile reports whether p exists and is a regular file.
func IsFile(p scpath.AbsolutePath) (bool, error) {
	info, err := os.Stat(p.String())
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat path: %w", err)
	}
	return info.Mode().IsRegular(), nil
}

// IsDirectory reports whether p exists and is a directory.
func IsDirectory(p scpath.AbsolutePath) (bool, error) {
	info, err := os.Stat(p.String())
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat path: %w", err)
	}
	return info.IsDir(), nil
}

// PlainFilenames lists the regular files directly inside dir, sorted.
// Directories, including the metadata directory, are skipped.
func PlainFilenames(dir scpath.AbsolutePath) ([]string, error) {
	entries, err := os.ReadDir(dir.String())
	if err != nil {
		return nil, fmt.Errorf("list directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, filepath.Base(e.Name()))
		}
	}
	sort.Strings(names)
	return names, nil
}
