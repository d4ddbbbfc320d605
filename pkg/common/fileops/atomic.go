package fileops

import (
	"fmt"
	"os"

	"github.com/utkarsh5026/gitlet/pkg/repository/scpath"
)

// AtomicWrite writes data through a temp file in the same directory and
// renames it over target, so readers never observe a partial file. The
// parent directory is created when missing.
func AtomicWrite(target scpath.AbsolutePath, data []byte, mode os.FileMode) error {
	if err := EnsureParentDir(target); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(target.Dir().String(), ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmpName, target.String()); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
