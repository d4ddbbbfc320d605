package commitmanager

import (
	"context"
	"strings"

	"github.com/utkarsh5026/gitlet/pkg/objects"
	"github.com/utkarsh5026/gitlet/pkg/store"
)

// ResolveCommit expands a full id or unique prefix to a commit id. Blobs
// sharing the prefix are ignored. A prefix matching several commits is an
// invalid operand rather than an arbitrary pick.
func (m *Manager) ResolveCommit(ctx context.Context, prefix string) (objects.ObjectHash, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if !objects.IsHex(prefix) || len(prefix) > objects.HashLength {
		return "", NewCommitNotFoundError("resolve", prefix)
	}

	candidates, err := store.FindByPrefix(m.store, prefix)
	if err != nil {
		return "", err
	}

	var commits []objects.ObjectHash
	for _, h := range candidates {
		if _, err := store.ReadCommit(m.store, h); err == nil {
			commits = append(commits, h)
		}
	}

	switch len(commits) {
	case 0:
		return "", NewCommitNotFoundError("resolve", prefix)
	case 1:
		return commits[0], nil
	default:
		return "", newAmbiguousPrefixError(prefix, commits)
	}
}
