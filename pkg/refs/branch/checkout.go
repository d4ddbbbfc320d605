package branch

import (
	"context"

	"github.com/utkarsh5026/gitlet/pkg/objects"
)

// Checkout switches to branch name: the working tree is replaced with the
// branch tip's snapshot, staging is cleared, and name becomes current.
func (m *Manager) Checkout(ctx context.Context, name string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	st := m.repo.State()
	tip, ok := st.BranchTip(name)
	if !ok {
		return NewNotFoundError("checkout", name, MsgNoSuchBranch)
	}
	if name == st.CurrentBranch {
		return NewIsCurrentError("checkout", name, MsgAlreadyCurrent)
	}

	if err := m.switchTree(ctx, tip); err != nil {
		return err
	}
	if err := st.SwitchBranch(name); err != nil {
		return err
	}
	m.logger.Info("switched branch", "branch", name, "head", tip.Short())
	return nil
}

// Reset moves the current branch to the commit named by id, a full id or
// unique prefix, and checks out its snapshot.
func (m *Manager) Reset(ctx context.Context, id string) (objects.ObjectHash, error) {
	hash, err := m.commits.ResolveCommit(ctx, id)
	if err != nil {
		return "", err
	}
	if err := m.MoveTo(ctx, hash); err != nil {
		return "", err
	}
	return hash, nil
}

// MoveTo checks out target and points the current branch at it. Merge
// uses this to fast-forward.
func (m *Manager) MoveTo(ctx context.Context, target objects.ObjectHash) error {
	if err := m.switchTree(ctx, target); err != nil {
		return err
	}
	m.repo.State().AdvanceHead(target)
	m.logger.Info("moved branch", "branch", m.Current(), "head", target.Short())
	return nil
}

// CheckoutFile restores name from the commit named by id, or from head
// when id is empty. The staging area is not changed.
func (m *Manager) CheckoutFile(ctx context.Context, id, name string) error {
	hash := m.repo.State().Head
	if id != "" {
		resolved, err := m.commits.ResolveCommit(ctx, id)
		if err != nil {
			return err
		}
		hash = resolved
	}

	c, err := m.commits.GetCommit(ctx, hash)
	if err != nil {
		return err
	}
	return m.workdir.CheckoutFile(ctx, c, name)
}

// switchTree replaces head's snapshot in the working tree with target's
// and clears staging. Nothing is written when an untracked file is in the
// way.
func (m *Manager) switchTree(ctx context.Context, target objects.ObjectHash) error {
	st := m.repo.State()

	current, err := m.commits.GetCommit(ctx, st.Head)
	if err != nil {
		return err
	}
	next, err := m.commits.GetCommit(ctx, target)
	if err != nil {
		return err
	}

	if err := m.workdir.CheckUntracked(ctx, next); err != nil {
		return err
	}
	if _, err := m.workdir.Materialize(ctx, current, next); err != nil {
		return err
	}
	st.ClearStaging()
	return nil
}
