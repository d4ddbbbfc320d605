package remote

import (
	"context"
	"fmt"

	"github.com/utkarsh5026/gitlet/pkg/commitmanager"
	"github.com/utkarsh5026/gitlet/pkg/merge"
	"github.com/utkarsh5026/gitlet/pkg/objects"
	"github.com/utkarsh5026/gitlet/pkg/refs/branch"
)

// PushResult describes a completed push.
type PushResult struct {
	Remote  string
	Branch  string
	From    objects.ObjectHash
	To      objects.ObjectHash
	Objects int
}

// FetchResult describes a completed fetch.
type FetchResult struct {
	Remote string
	// TrackingBranch is the local "<remote>/<branch>" branch.
	TrackingBranch string
	Tip            objects.ObjectHash
	Objects        int
}

// TrackingBranch names the local branch that mirrors branch on remote.
func TrackingBranch(remote, branchName string) string {
	return remote + "/" + branchName
}

// Push copies local history to the remote and points the remote's branch
// at local head. A missing remote branch is treated as pointing at the
// remote's head. The push is refused unless that commit is in local
// history. The remote's working tree is not updated.
func (m *Manager) Push(ctx context.Context, name, branchName string) (*PushResult, error) {
	remote, err := m.connect(ctx, "push", name)
	if err != nil {
		return nil, err
	}

	rst := remote.State()
	remoteTip, ok := rst.BranchTip(branchName)
	if !ok {
		remoteTip = rst.Head
	}

	head := m.repo.State().Head
	history, err := m.commits.Ancestors(ctx, head)
	if err != nil {
		return nil, err
	}
	if !contains(history, remoteTip) {
		return nil, newDivergedError(name, branchName)
	}

	t := &transfer{src: m.repo.ObjectStore(), dst: remote.ObjectStore(), workers: m.workers}
	copied, err := t.copyCommits(ctx, history)
	if err != nil {
		return nil, fmt.Errorf("push to %s: %w", name, err)
	}

	rst.SetBranch(branchName, head)
	if err := remote.Save(); err != nil {
		return nil, fmt.Errorf("push to %s: %w", name, err)
	}

	m.logger.Info("pushed", "remote", name, "branch", branchName, "from", remoteTip.Short(), "to", head.Short(), "objects", copied)
	return &PushResult{Remote: name, Branch: branchName, From: remoteTip, To: head, Objects: copied}, nil
}

// Fetch copies the history of branchName from the remote and points the
// local branch "<remote>/<branch>" at the remote tip.
func (m *Manager) Fetch(ctx context.Context, name, branchName string) (*FetchResult, error) {
	remote, err := m.connect(ctx, "fetch", name)
	if err != nil {
		return nil, err
	}

	tip, ok := remote.State().BranchTip(branchName)
	if !ok {
		return nil, newBranchMissingError(name, branchName)
	}

	history, err := commitmanager.NewManager(remote.ObjectStore()).Ancestors(ctx, tip)
	if err != nil {
		return nil, err
	}

	t := &transfer{src: remote.ObjectStore(), dst: m.repo.ObjectStore(), workers: m.workers}
	copied, err := t.copyCommits(ctx, history)
	if err != nil {
		return nil, fmt.Errorf("fetch from %s: %w", name, err)
	}

	tracking := TrackingBranch(name, branchName)
	if _, err := m.branches.Create(ctx, tracking, branch.WithStartPoint(tip), branch.WithForceCreate()); err != nil {
		return nil, err
	}

	m.logger.Info("fetched", "remote", name, "branch", branchName, "tip", tip.Short(), "objects", copied)
	return &FetchResult{Remote: name, TrackingBranch: tracking, Tip: tip, Objects: copied}, nil
}

// Pull fetches branchName and merges the tracking branch into the current
// branch.
func (m *Manager) Pull(ctx context.Context, name, branchName string) (*FetchResult, *merge.Result, error) {
	fetched, err := m.Fetch(ctx, name, branchName)
	if err != nil {
		return nil, nil, err
	}
	result, err := m.merger.Merge(ctx, fetched.TrackingBranch)
	if err != nil {
		return fetched, nil, err
	}
	return fetched, result, nil
}

func contains(ids []objects.ObjectHash, id objects.ObjectHash) bool {
	for _, h := range ids {
		if h == id {
			return true
		}
	}
	return false
}
