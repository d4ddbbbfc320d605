package commitmanager

import (
	"container/list"
	"context"
	"errors"
	"sort"
	"time"

	"github.com/utkarsh5026/gitlet/pkg/common"
	"github.com/utkarsh5026/gitlet/pkg/objects"
	"github.com/utkarsh5026/gitlet/pkg/objects/commit"
	"github.com/utkarsh5026/gitlet/pkg/store"
)

// Entry pairs a commit with its id.
type Entry struct {
	Hash   objects.ObjectHash
	Commit *commit.Commit
}

// Ancestors returns start and every commit reachable from it, in
// breadth-first order. Parents are enqueued first parent first, and each id
// appears once.
func (m *Manager) Ancestors(ctx context.Context, start objects.ObjectHash) ([]objects.ObjectHash, error) {
	var order []objects.ObjectHash
	visited := make(map[objects.ObjectHash]bool)

	queue := list.New()
	queue.PushBack(start)

	for queue.Len() > 0 {
		select {
		case <-ctx.Done():
			return order, ctx.Err()
		default:
		}

		hash := queue.Remove(queue.Front()).(objects.ObjectHash)
		if visited[hash] {
			continue
		}
		visited[hash] = true
		order = append(order, hash)

		c, err := m.GetCommit(ctx, hash)
		if err != nil {
			return nil, err
		}
		for _, p := range c.Parents() {
			if !visited[p] {
				queue.PushBack(p)
			}
		}
	}
	return order, nil
}

// FindSplitPoint returns the first commit in the breadth-first order of
// current's ancestors that is also an ancestor of given. On criss-cross
// histories this picks the candidate nearest to current by BFS depth, not a
// true lowest common ancestor.
func (m *Manager) FindSplitPoint(ctx context.Context, current, given objects.ObjectHash) (objects.ObjectHash, error) {
	givenAncestors, err := m.Ancestors(ctx, given)
	if err != nil {
		return "", err
	}
	inGiven := make(map[objects.ObjectHash]bool, len(givenAncestors))
	for _, h := range givenAncestors {
		inGiven[h] = true
	}

	currentAncestors, err := m.Ancestors(ctx, current)
	if err != nil {
		return "", err
	}
	for _, h := range currentAncestors {
		if inGiven[h] {
			m.logger.Debug("split point", "current", current, "given", given, "split", h)
			return h, nil
		}
	}
	// unreachable while every repository shares the initial commit
	return "", NewCommitNotFoundError("split", current.String()+".."+given.String())
}

// IsAncestor reports whether ancestor is reachable from descendant. A commit
// is its own ancestor.
func (m *Manager) IsAncestor(ctx context.Context, ancestor, descendant objects.ObjectHash) (bool, error) {
	all, err := m.Ancestors(ctx, descendant)
	if err != nil {
		return false, err
	}
	for _, h := range all {
		if h == ancestor {
			return true, nil
		}
	}
	return false, nil
}

// FirstParentHistory follows first parents from start to the initial commit.
func (m *Manager) FirstParentHistory(ctx context.Context, start objects.ObjectHash) ([]Entry, error) {
	var out []Entry
	for hash := start; hash != ""; {
		c, err := m.GetCommit(ctx, hash)
		if err != nil {
			return nil, err
		}
		out = append(out, Entry{Hash: hash, Commit: c})
		hash = c.Parent
	}
	return out, nil
}

// AllCommits returns every commit in the store, newest first. Commits with
// equal timestamps are ordered by id.
func (m *Manager) AllCommits(ctx context.Context) ([]Entry, error) {
	ids, err := m.store.ListObjects()
	if err != nil {
		return nil, err
	}

	var out []Entry
	for _, id := range ids {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		c, err := store.ReadCommit(m.store, id)
		if err != nil {
			var mismatch *store.TypeMismatchError
			if errors.As(err, &mismatch) {
				continue
			}
			return nil, err
		}
		out = append(out, Entry{Hash: id, Commit: c})
	}

	times := make(map[objects.ObjectHash]time.Time, len(out))
	for _, e := range out {
		t, err := common.ParseCommitTime(e.Commit.Timestamp)
		if err == nil {
			times[e.Hash] = t
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := times[out[i].Hash], times[out[j].Hash]
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return out[i].Hash < out[j].Hash
	})
	return out, nil
}

// FindByMessage returns the ids of all commits whose message is exactly
// message, sorted.
func (m *Manager) FindByMessage(ctx context.Context, message string) ([]objects.ObjectHash, error) {
	all, err := m.AllCommits(ctx)
	if err != nil {
		return nil, err
	}

	var out []objects.ObjectHash
	for _, e := range all {
		if e.Commit.Message == message {
			out = append(out, e.Hash)
		}
	}
	if len(out) == 0 {
		return nil, newNoMessageMatchError(message)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}
