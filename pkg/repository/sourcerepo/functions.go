package sourcerepo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/utkarsh5026/gitlet/pkg/repository/scpath"
)

// FindRepository walks from startPath toward the filesystem root and opens
// the first directory that contains a .gitlet directory.
func FindRepository(ctx context.Context, startPath scpath.RepositoryPath, opts ...Option) (*SourceRepository, error) {
	current := startPath.String()
	for {
		repoPath, err := scpath.NewRepositoryPath(current)
		if err != nil {
			return nil, fmt.Errorf("failed to create repository path: %w", err)
		}

		exists, err := RepositoryExists(repoPath)
		if err != nil {
			return nil, err
		}
		if exists {
			return Open(ctx, repoPath, opts...)
		}

		parent := filepath.Dir(current)
		if parent == current {
			return nil, newNotRepositoryError("find", startPath.String())
		}
		current = parent
	}
}

// RepositoryExists reports whether path has a .gitlet directory.
func RepositoryExists(path scpath.RepositoryPath) (bool, error) {
	info, err := os.Stat(path.SourcePath().String())
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check .gitlet directory: %w", err)
	}
	return info.IsDir(), nil
}
