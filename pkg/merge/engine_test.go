package merge

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
	"github.com/utkarsh5026/gitlet/pkg/refs/branch"
	"github.com/utkarsh5026/gitlet/pkg/repository/scpath"
	"github.com/utkarsh5026/gitlet/pkg/repository/sourcerepo"
	"github.com/utkarsh5026/gitlet/pkg/staging"
	"github.com/utkarsh5026/gitlet/pkg/workdir"
)

type testRepo struct {
	t        *testing.T
	ctx      context.Context
	repo     *sourcerepo.SourceRepository
	commits  *commitmanager.Manager
	area     *staging.Area
	branches *branch.Manager
	engine   *Engine
	clock    *common.FixedClock
}

func newTestRepo(t *testing.T) *testRepo {
	t.Helper()
	ctx := context.Background()

	path, err := scpath.NewRepositoryPath(t.TempDir())
	require.NoError(t, err)
	userCfg := scpath.AbsolutePath(filepath.Join(t.TempDir(), "user.json"))
	repo, err := sourcerepo.Initialize(ctx, path, sourcerepo.WithUserConfig(userCfg))
	require.NoError(t, err)

	clock := &common.FixedClock{T: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)}
	commits := commitmanager.NewManager(repo.ObjectStore(), commitmanager.WithClock(clock))
	area := staging.NewArea(repo, commits)
	wd := workdir.NewManager(repo, commits)
	branches := branch.NewManager(repo, commits, wd)
	return &testRepo{
		t:        t,
		ctx:      ctx,
		repo:     repo,
		commits:  commits,
		area:     area,
		branches: branches,
		engine:   NewEngine(repo, commits, area, wd, branches),
		clock:    clock,
	}
}

func (r *testRepo) file(name string) string {
	return filepath.Join(r.repo.WorkingDirectory().String(), name)
}

func (r *testRepo) write(name, content string) {
	r.t.Helper()
	require.NoError(r.t, os.WriteFile(r.file(name), []byte(content), 0644))
}

func (r *testRepo) read(name string) (string, bool) {
	data, err := os.ReadFile(r.file(name))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (r *testRepo) commit(message string, files map[string]string, removed ...string) objects.ObjectHash {
	r.t.Helper()
	for name, content := range files {
		r.write(name, content)
		require.NoError(r.t, r.area.Add(r.ctx, name))
	}
	for _, name := range removed {
		require.NoError(r.t, r.area.Remove(r.ctx, name))
	}
	r.clock.Advance(time.Minute)
	h, err := r.area.Commit(r.ctx, message)
	require.NoError(r.t, err)
	return h
}

func (r *testRepo) branch(name string) {
	r.t.Helper()
	_, err := r.branches.Create(r.ctx, name)
	require.NoError(r.t, err)
}

func (r *testRepo) checkout(name string) {
	r.t.Helper()
	require.NoError(r.t, r.branches.Checkout(r.ctx, name))
}

func TestMerge_NoConflict(t *testing.T) {
	r := newTestRepo(t)
	r.commit("base", map[string]string{"a.txt": "base"})
	r.branch("other")
	masterTip := r.commit("master edit", map[string]string{"a.txt": "m-edit"})

	r.checkout("other")
	otherTip := r.commit("other file", map[string]string{"b.txt": "other-only"})
	r.checkout("master")

	res, err := r.engine.Merge(r.ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, Merged, res.Kind)
	assert.False(t, res.HasConflicts())

	c, err := r.commits.GetCommit(r.ctx, res.Commit)
	require.NoError(t, err)
	assert.Equal(t, masterTip, c.Parent)
	assert.Equal(t, otherTip, c.Parent2)
	assert.Equal(t, "Merged other into master.", c.Message)

	got, _ := r.read("b.txt")
	assert.Equal(t, "other-only", got)
	got, _ = r.read("a.txt")
	assert.Equal(t, "m-edit", got)

	assert.Equal(t, res.Commit, r.repo.Head())
	assert.False(t, r.repo.State().HasStagedChanges())
}

func TestMerge_Conflict(t *testing.T) {
	r := newTestRepo(t)
	r.commit("base", map[string]string{"a.txt": "base\n", "gone.txt": "g\n"})
	r.branch("other")
	r.commit("master edit", map[string]string{"a.txt": "master\n"}, "gone.txt")

	r.checkout("other")
	r.commit("other edit", map[string]string{"a.txt": "other\n", "gone.txt": "changed\n"})
	r.checkout("master")

	res, err := r.engine.Merge(r.ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "gone.txt"}, res.Conflicts)

	got, _ := r.read("a.txt")
	assert.Equal(t, "<<<<<<< HEAD\nmaster\n=======\nother\n>>>>>>>\n", got)
	got, _ = r.read("gone.txt")
	assert.Equal(t, "<<<<<<< HEAD\n=======\nchanged\n>>>>>>>\n", got)

	c, err := r.commits.GetCommit(r.ctx, res.Commit)
	require.NoError(t, err)
	assert.True(t, c.IsMergeCommit(), "a merge commit is created despite conflicts")
	assert.True(t, c.Tracks("a.txt"))
	assert.True(t, c.Tracks("gone.txt"))
}

func TestMerge_DecisionTable(t *testing.T) {
	r := newTestRepo(t)
	r.commit("base", map[string]string{
		"unchanged.txt":   "u",
		"given-mod.txt":   "g",
		"given-del.txt":   "d",
		"current-mod.txt": "c",
		"both-same.txt":   "s",
		"current-del.txt": "x",
	})
	r.branch("other")
	r.commit("master", map[string]string{
		"current-mod.txt": "c2",
		"both-same.txt":   "s2",
	}, "current-del.txt")

	r.checkout("other")
	r.commit("other", map[string]string{
		"given-mod.txt": "g2",
		"both-same.txt": "s2",
		"given-new.txt": "n",
	}, "given-del.txt")
	r.checkout("master")

	res, err := r.engine.Merge(r.ctx, "other")
	require.NoError(t, err)
	assert.Empty(t, res.Conflicts)

	c, err := r.commits.GetCommit(r.ctx, res.Commit)
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"unchanged.txt", "given-mod.txt", "current-mod.txt", "both-same.txt", "given-new.txt"},
		c.Paths())

	for name, want := range map[string]string{
		"unchanged.txt":   "u",
		"given-mod.txt":   "g2",
		"current-mod.txt": "c2",
		"both-same.txt":   "s2",
		"given-new.txt":   "n",
	} {
		got, ok := r.read(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
	_, ok := r.read("given-del.txt")
	assert.False(t, ok)
	_, ok = r.read("current-del.txt")
	assert.False(t, ok)
}

func TestMerge_FastForward(t *testing.T) {
	r := newTestRepo(t)
	r.commit("base", map[string]string{"a.txt": "a"})
	r.branch("other")
	r.checkout("other")
	otherTip := r.commit("ahead", map[string]string{"a.txt": "a2", "b.txt": "b"})
	r.checkout("master")

	res, err := r.engine.Merge(r.ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, FastForward, res.Kind)
	assert.Equal(t, otherTip, res.Commit)
	assert.Equal(t, otherTip, r.repo.Head())
	assert.Equal(t, otherTip, r.repo.State().Branches["master"])
	assert.Equal(t, "master", r.repo.State().CurrentBranch)

	got, _ := r.read("b.txt")
	assert.Equal(t, "b", got)
}

func TestMerge_Preconditions(t *testing.T) {
	r := newTestRepo(t)
	r.commit("base", map[string]string{"a.txt": "a"})
	r.branch("behind")
	r.commit("ahead", map[string]string{"a.txt": "a2"})
	head := r.repo.Head()

	_, err := r.engine.Merge(r.ctx, "behind")
	assert.Equal(t, MsgGivenIsAncestor, gerr.UserMessage(err))
	assert.True(t, gerr.IsCode(err, gerr.CodePrecondition))

	_, err = r.engine.Merge(r.ctx, "master")
	assert.Equal(t, MsgMergeWithSelf, gerr.UserMessage(err))

	_, err = r.engine.Merge(r.ctx, "missing")
	assert.Equal(t, branch.MsgNotFound, gerr.UserMessage(err))

	r.write("new.txt", "n")
	require.NoError(t, r.area.Add(r.ctx, "new.txt"))
	_, err = r.engine.Merge(r.ctx, "behind")
	var pe *PreconditionError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, MsgUncommittedChanges, gerr.UserMessage(err))

	assert.Equal(t, head, r.repo.Head())
}

func TestMerge_UntrackedFileInTheWay(t *testing.T) {
	r := newTestRepo(t)
	r.commit("base", map[string]string{"a.txt": "a"})
	r.branch("other")
	r.commit("master edit", map[string]string{"a.txt": "m"})
	r.checkout("other")
	r.commit("other adds b", map[string]string{"b.txt": "theirs"})
	r.checkout("master")

	r.write("b.txt", "mine")
	head := r.repo.Head()

	_, err := r.engine.Merge(r.ctx, "other")
	assert.True(t, gerr.IsCode(err, gerr.CodeUntracked))
	assert.Equal(t, head, r.repo.Head())
	got, _ := r.read("b.txt")
	assert.Equal(t, "mine", got)
	got, _ = r.read("a.txt")
	assert.Equal(t, "m", got)
}

func TestRenderConflict(t *testing.T) {
	assert.Equal(t, "<<<<<<< HEAD\ncur\n=======\n>>>>>>>\n", string(RenderConflict([]byte("cur\n"), nil)))
	assert.Equal(t, "<<<<<<< HEAD\n=======\n>>>>>>>\n", string(RenderConflict(nil, nil)))
}
