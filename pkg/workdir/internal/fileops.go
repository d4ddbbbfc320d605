package internal

import (
	"fmt"
	"os"

	"github.com/utkarsh5026/gitlet/pkg/common/fileops"
	"github.com/utkarsh5026/gitlet/pkg/repository/scpath"
	"github.com/utkarsh5026/gitlet/pkg/store"
)

// FileOps applies operations to the files under one working tree.
type FileOps struct {
	workDir scpath.RepositoryPath
	store   store.ObjectStore
}

// NewFileOps creates a FileOps reading blobs from s.
func NewFileOps(workDir scpath.RepositoryPath, s store.ObjectStore) *FileOps {
	return &FileOps{workDir: workDir, store: s}
}

// ApplyOperation executes op.
func (f *FileOps) ApplyOperation(op Operation) error {
	switch op.Action {
	case ActionCreate, ActionModify:
		return f.writeBlob(op)
	case ActionDelete:
		if err := fileops.SafeRemove(f.workDir.Join(op.Path)); err != nil {
			return fmt.Errorf("delete %s: %w", op.Path, err)
		}
		return nil
	default:
		return fmt.Errorf("apply %s: %w: unknown action %v", op.Path, ErrInvalidOperation, op.Action)
	}
}

func (f *FileOps) writeBlob(op Operation) error {
	if op.Blob == "" {
		return fmt.Errorf("%s %s: %w: missing blob", op.Action, op.Path, ErrInvalidOperation)
	}
	b, err := store.ReadBlob(f.store, op.Blob)
	if err != nil {
		return fmt.Errorf("%s %s: %w", op.Action, op.Path, err)
	}
	if err := fileops.AtomicWrite(f.workDir.Join(op.Path), b.Data(), 0644); err != nil {
		return fmt.Errorf("%s %s: %w", op.Action, op.Path, err)
	}
	return nil
}

// CreateBackup captures the current content of path.
func (f *FileOps) CreateBackup(path string) (*Backup, error) {
	data, err := os.ReadFile(f.workDir.Join(path).String())
	if os.IsNotExist(err) {
		return &Backup{Path: path}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("backup %s: %w", path, err)
	}
	return &Backup{Path: path, Data: data, Existed: true}, nil
}

// RestoreBackup puts path back the way CreateBackup found it.
func (f *FileOps) RestoreBackup(b *Backup) error {
	if b == nil {
		return fmt.Errorf("nil backup")
	}
	full := f.workDir.Join(b.Path)
	if !b.Existed {
		return fileops.SafeRemove(full)
	}
	if err := fileops.AtomicWrite(full, b.Data, 0644); err != nil {
		return fmt.Errorf("restore %s: %w", b.Path, err)
	}
	return nil
}
