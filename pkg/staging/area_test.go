package staging

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utkarsh5026/gitlet/pkg/commitmanager"
	"github.com/utkarsh5026/gitlet/pkg/common"
	gerr "github.com/utkarsh5026/gitlet/pkg/common/err"
	"github.com/utkarsh5026/gitlet/pkg/objects"
	"github.com/utkarsh5026/gitlet/pkg/objects/blob"
	"github.com/utkarsh5026/gitlet/pkg/repository/scpath"
	"github.com/utkarsh5026/gitlet/pkg/repository/sourcerepo"
	"github.com/utkarsh5026/gitlet/pkg/store"
)

type testRepo struct {
	t       *testing.T
	ctx     context.Context
	repo    *sourcerepo.SourceRepository
	commits *commitmanager.Manager
	area    *Area
}

func newTestRepo(t *testing.T) *testRepo {
	t.Helper()
	ctx := context.Background()

	path, err := scpath.NewRepositoryPath(t.TempDir())
	require.NoError(t, err)
	userCfg := scpath.AbsolutePath(filepath.Join(t.TempDir(), "user.json"))

	repo, err := sourcerepo.Initialize(ctx, path, sourcerepo.WithUserConfig(userCfg))
	require.NoError(t, err)

	clock := &common.FixedClock{T: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	commits := commitmanager.NewManager(repo.ObjectStore(), commitmanager.WithClock(clock))
	return &testRepo{
		t:       t,
		ctx:     ctx,
		repo:    repo,
		commits: commits,
		area:    NewArea(repo, commits),
	}
}

func (r *testRepo) write(name, content string) {
	r.t.Helper()
	require.NoError(r.t, os.WriteFile(filepath.Join(r.repo.WorkingDirectory().String(), name), []byte(content), 0644))
}

func (r *testRepo) exists(name string) bool {
	_, err := os.Stat(filepath.Join(r.repo.WorkingDirectory().String(), name))
	return err == nil
}

func (r *testRepo) commitFile(name, content, message string) objects.ObjectHash {
	r.t.Helper()
	r.write(name, content)
	require.NoError(r.t, r.area.Add(r.ctx, name))
	h, err := r.area.Commit(r.ctx, message)
	require.NoError(r.t, err)
	return h
}

func TestAdd_StagesNewFile(t *testing.T) {
	r := newTestRepo(t)
	r.write("a.txt", "hello")

	require.NoError(t, r.area.Add(r.ctx, "a.txt"))

	staged, ok := r.repo.State().StagedAddition("a.txt")
	require.True(t, ok)
	assert.Equal(t, blob.HashOf([]byte("hello")), staged)

	has, err := r.repo.ObjectStore().HasObject(staged)
	require.NoError(t, err)
	assert.True(t, has, "blob must be stored when staged")
}

func TestAdd_MissingFile(t *testing.T) {
	r := newTestRepo(t)

	for _, name := range []string{"nope.txt", "dir/a.txt", ".gitlet"} {
		err := r.area.Add(r.ctx, name)
		var nf *FileNotFoundError
		require.True(t, errors.As(err, &nf), name)
		assert.Equal(t, MsgFileNotFound, gerr.UserMessage(err))
		assert.True(t, gerr.IsCode(err, gerr.CodeNotFound))
	}
	assert.False(t, r.repo.State().HasStagedChanges())
}

func TestAdd_UnchangedFromHeadUnstages(t *testing.T) {
	r := newTestRepo(t)
	r.commitFile("a.txt", "v1", "add a")

	r.write("a.txt", "v2")
	require.NoError(t, r.area.Add(r.ctx, "a.txt"))
	assert.True(t, r.repo.State().HasStagedChanges())

	r.write("a.txt", "v1")
	require.NoError(t, r.area.Add(r.ctx, "a.txt"))
	assert.False(t, r.repo.State().HasStagedChanges(), "re-adding head content must unstage")
}

func TestAdd_CancelsStagedRemoval(t *testing.T) {
	r := newTestRepo(t)
	r.commitFile("a.txt", "v1", "add a")

	require.NoError(t, r.area.Remove(r.ctx, "a.txt"))
	assert.True(t, r.repo.State().IsStagedForRemoval("a.txt"))

	r.write("a.txt", "v1")
	require.NoError(t, r.area.Add(r.ctx, "a.txt"))
	assert.False(t, r.repo.State().HasStagedChanges())
}

func TestRemove(t *testing.T) {
	t.Run("staged only", func(t *testing.T) {
		r := newTestRepo(t)
		r.write("a.txt", "x")
		require.NoError(t, r.area.Add(r.ctx, "a.txt"))

		require.NoError(t, r.area.Remove(r.ctx, "a.txt"))
		assert.False(t, r.repo.State().HasStagedChanges())
		assert.True(t, r.exists("a.txt"), "untracked file must stay on disk")
	})

	t.Run("tracked", func(t *testing.T) {
		r := newTestRepo(t)
		r.commitFile("a.txt", "x", "add a")

		require.NoError(t, r.area.Remove(r.ctx, "a.txt"))
		assert.True(t, r.repo.State().IsStagedForRemoval("a.txt"))
		assert.False(t, r.exists("a.txt"))
	})

	t.Run("tracked and already deleted", func(t *testing.T) {
		r := newTestRepo(t)
		r.commitFile("a.txt", "x", "add a")
		require.NoError(t, os.Remove(filepath.Join(r.repo.WorkingDirectory().String(), "a.txt")))

		require.NoError(t, r.area.Remove(r.ctx, "a.txt"))
		assert.True(t, r.repo.State().IsStagedForRemoval("a.txt"))
	})

	t.Run("nothing to remove", func(t *testing.T) {
		r := newTestRepo(t)
		r.write("a.txt", "x")

		err := r.area.Remove(r.ctx, "a.txt")
		var nr *NothingToRemoveError
		require.True(t, errors.As(err, &nr))
		assert.Equal(t, MsgNothingToRemove, gerr.UserMessage(err))
		assert.True(t, r.exists("a.txt"))
	})
}

func TestCommit_AppliesStagedEntries(t *testing.T) {
	r := newTestRepo(t)
	r.write("a.txt", "a")
	r.write("b.txt", "b")
	require.NoError(t, r.area.Add(r.ctx, "a.txt"))
	require.NoError(t, r.area.Add(r.ctx, "b.txt"))
	first, err := r.area.Commit(r.ctx, "two files")
	require.NoError(t, err)

	r.write("a.txt", "a2")
	require.NoError(t, r.area.Add(r.ctx, "a.txt"))
	require.NoError(t, r.area.Remove(r.ctx, "b.txt"))
	second, err := r.area.Commit(r.ctx, "edit a, drop b")
	require.NoError(t, err)

	st := r.repo.State()
	assert.Equal(t, second, st.Head)
	assert.Equal(t, second, st.Branches["master"])
	assert.False(t, st.HasStagedChanges())

	c, err := store.ReadCommit(r.repo.ObjectStore(), second)
	require.NoError(t, err)
	assert.Equal(t, first, c.Parent)
	assert.Equal(t, map[string]objects.ObjectHash{"a.txt": blob.HashOf([]byte("a2"))}, c.Blobs)
	assert.Equal(t, "edit a, drop b", c.Message)
}

func TestCommit_Failures(t *testing.T) {
	r := newTestRepo(t)
	head := r.repo.Head()

	_, err := r.area.Commit(r.ctx, "nothing")
	assert.ErrorIs(t, err, ErrNothingToCommit)
	assert.Equal(t, MsgNothingToCommit, gerr.UserMessage(err))

	r.write("a.txt", "x")
	require.NoError(t, r.area.Add(r.ctx, "a.txt"))

	_, err = r.area.Commit(r.ctx, "   ")
	assert.Equal(t, MsgEmptyMessage, gerr.UserMessage(err))
	assert.True(t, gerr.IsCode(err, gerr.CodeInvalidInput))

	assert.Equal(t, head, r.repo.Head())
	assert.True(t, r.repo.State().HasStagedChanges(), "failed commit must keep staging")
}

func TestCommit_EmptyStagingReportedBeforeEmptyMessage(t *testing.T) {
	r := newTestRepo(t)
	_, err := r.area.Commit(r.ctx, "")
	assert.ErrorIs(t, err, ErrNothingToCommit)
}

func TestCommit_SecondParentAllowsEmpty(t *testing.T) {
	r := newTestRepo(t)
	other := r.commitFile("a.txt", "x", "other")

	h, err := r.area.Commit(r.ctx, "Merged other into master.", WithSecondParent(other))
	require.NoError(t, err)

	c, err := store.ReadCommit(r.repo.ObjectStore(), h)
	require.NoError(t, err)
	assert.True(t, c.IsMergeCommit())
	assert.Equal(t, other, c.Parent)
	assert.Equal(t, other, c.Parent2)
}

func TestLinearHistory(t *testing.T) {
	r := newTestRepo(t)
	r.commitFile("a.txt", "1", "c1")
	r.commitFile("a.txt", "2", "c2")

	entries, err := r.commits.FirstParentHistory(r.ctx, r.repo.Head())
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "c2", entries[0].Commit.Message)
	assert.Equal(t, "c1", entries[1].Commit.Message)
	assert.Equal(t, sourcerepo.InitialCommitMessage, entries[2].Commit.Message)
}
