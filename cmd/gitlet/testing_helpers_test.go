package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/utkarsh5026/gitlet/cmd/ui"
	"github.com/utkarsh5026/gitlet/pkg/repository/scpath"
	"github.com/utkarsh5026/gitlet/pkg/repository/sourcerepo"
)

// TestHelper runs gitlet commands inside a temporary directory with an
// isolated user configuration.
type TestHelper struct {
	t   *testing.T
	dir string
}

// NewTestHelper creates a helper and changes into its directory. The
// previous directory is restored when the test ends.
func NewTestHelper(t *testing.T) *TestHelper {
	t.Helper()

	userConfigPath = filepath.Join(t.TempDir(), "config.json")
	t.Cleanup(func() { userConfigPath = "" })
	ui.SetColor(false)

	h := &TestHelper{t: t, dir: t.TempDir()}
	t.Chdir(h.dir)
	return h
}

// Dir returns the working tree root.
func (h *TestHelper) Dir() string { return h.dir }

// Sibling creates another working tree next to the helper's own, for
// remote tests.
func (h *TestHelper) Sibling() string {
	h.t.Helper()
	dir := h.t.TempDir()
	return dir
}

// In changes into dir for the rest of the test.
func (h *TestHelper) In(dir string) {
	h.t.Helper()
	h.t.Chdir(dir)
}

// Run executes gitlet with args and returns what it printed to stdout.
func (h *TestHelper) Run(args ...string) string {
	h.t.Helper()

	var out, errOut bytes.Buffer
	code := execute(context.Background(), newRootCmd(), args, &out, &errOut)
	require.Equal(h.t, 0, code, "gitlet %v: %s", args, errOut.String())
	return out.String()
}

// WriteFile creates or overwrites a file in the current directory.
func (h *TestHelper) WriteFile(name, content string) {
	h.t.Helper()
	require.NoError(h.t, os.WriteFile(name, []byte(content), 0644))
}

// ReadFile reads a file from the current directory.
func (h *TestHelper) ReadFile(name string) string {
	h.t.Helper()
	data, err := os.ReadFile(name)
	require.NoError(h.t, err)
	return string(data)
}

// Exists reports whether name is present in the current directory.
func (h *TestHelper) Exists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}

// Repo opens the repository rooted at the current directory, as a fresh
// command would see it.
func (h *TestHelper) Repo() *sourcerepo.SourceRepository {
	h.t.Helper()
	cwd, err := os.Getwd()
	require.NoError(h.t, err)
	path, err := scpath.NewRepositoryPath(cwd)
	require.NoError(h.t, err)
	repo, err := sourcerepo.Open(context.Background(), path,
		sourcerepo.WithUserConfig(scpath.AbsolutePath(userConfigPath)))
	require.NoError(h.t, err)
	return repo
}

// Commit adds files and commits them.
func (h *TestHelper) Commit(message string, files map[string]string) {
	h.t.Helper()
	for name, content := range files {
		h.WriteFile(name, content)
		require.Empty(h.t, h.Run("add", name))
	}
	require.Empty(h.t, h.Run("commit", message))
}

func removeFile(name string) error {
	return os.Remove(name)
}
