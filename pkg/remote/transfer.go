package remote

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/utkarsh5026/gitlet/pkg/objects"
	"github.com/utkarsh5026/gitlet/pkg/store"
)

// transfer copies commits, and the blobs they reference, between two
// object stores.
type transfer struct {
	src     store.ObjectStore
	dst     store.ObjectStore
	workers int
}

// copyCommits copies every commit in ids that dst lacks, together with
// its blobs, and returns how many objects were written. Objects are
// content addressed, so an interrupted copy can simply be repeated.
func (t *transfer) copyCommits(ctx context.Context, ids []objects.ObjectHash) (int, error) {
	var copied atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(t.workers)

	for _, id := range ids {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			has, err := t.dst.HasObject(id)
			if err != nil {
				return err
			}
			if has {
				return nil
			}

			c, err := store.ReadCommit(t.src, id)
			if err != nil {
				return fmt.Errorf("read commit %s: %w", id.Short(), err)
			}
			for _, b := range c.Blobs {
				n, err := t.copyObject(b)
				if err != nil {
					return err
				}
				copied.Add(n)
			}
			// the commit goes last so a present commit implies its blobs are present
			n, err := t.copyObject(id)
			if err != nil {
				return err
			}
			copied.Add(n)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return int(copied.Load()), err
	}
	return int(copied.Load()), nil
}

func (t *transfer) copyObject(id objects.ObjectHash) (int64, error) {
	has, err := t.dst.HasObject(id)
	if err != nil {
		return 0, err
	}
	if has {
		return 0, nil
	}
	raw, err := t.src.ReadRaw(id)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", id.Short(), err)
	}
	if err := t.dst.WriteRaw(id, raw); err != nil {
		return 0, fmt.Errorf("write %s: %w", id.Short(), err)
	}
	return 1, nil
}
