package fileops

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/utkarsh5026/gitlet/pkg/repository/scpath"
)

func TestAtomicWrite_CreatesParentAndMode(t *testing.T) {
	dir := t.TempDir()
	target := scpath.AbsolutePath(filepath.Join(dir, "objects", "ab", "cdef"))

	if err := AtomicWrite(target, []byte("payload"), 0444); err != nil {
		t.Fatalf("AtomicWrite failed: %v", err)
	}

	content, err := os.ReadFile(target.String())
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(content) != "payload" {
		t.Errorf("content = %q, want %q", content, "payload")
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(target.String())
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if info.Mode().Perm() != 0444 {
			t.Errorf("mode = %v, want 0444", info.Mode().Perm())
		}
	}
}

func TestAtomicWrite_Overwrite(t *testing.T) {
	dir := t.TempDir()
	target := scpath.AbsolutePath(filepath.Join(dir, "state.json"))

	if err := os.WriteFile(target.String(), []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := AtomicWrite(target, []byte("new"), 0644); err != nil {
		t.Fatalf("AtomicWrite failed: %v", err)
	}

	content, _ := os.ReadFile(target.String())
	if string(content) != "new" {
		t.Errorf("content = %q, want %q", content, "new")
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected only the target to remain, found %d entries", len(entries))
	}
}
