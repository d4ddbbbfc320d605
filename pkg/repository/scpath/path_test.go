package scpath

import (
	"path/filepath"
	"testing"
)

func TestNewRelativePath(t *testing.T) {
	tests := []struct {
		in      string
		want    RelativePath
		wantErr bool
	}{
		{in: "a.txt", want: "a.txt"},
		{in: "./b.txt", want: "b.txt"},
		{in: "", wantErr: true},
		{in: ".", wantErr: true},
		{in: "..", wantErr: true},
		{in: "dir/c.txt", wantErr: true},
		{in: "../escape.txt", wantErr: true},
		{in: ".gitlet", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NewRelativePath(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewRelativePath(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NewRelativePath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSourcePath_Layout(t *testing.T) {
	root := RepositoryPath(filepath.Join(string(filepath.Separator), "work", "proj"))
	sp := root.SourcePath()

	if got, want := sp.String(), filepath.Join(root.String(), ".gitlet"); got != want {
		t.Errorf("SourcePath = %q, want %q", got, want)
	}
	if sp.WorkingTree() != root {
		t.Errorf("WorkingTree = %q, want %q", sp.WorkingTree(), root)
	}

	hash := "abcdef0123456789abcdef0123456789abcdef01"
	want := filepath.Join(sp.String(), "objects", "ab", hash[2:])
	if got := sp.ObjectFilePath(hash).String(); got != want {
		t.Errorf("ObjectFilePath = %q, want %q", got, want)
	}
	if sp.ObjectFilePath("abc") != "" {
		t.Error("short hash should map to empty path")
	}
}

func TestNewSourcePath(t *testing.T) {
	root := RepositoryPath(filepath.Join(string(filepath.Separator), "work", "proj"))

	rel := NewSourcePath(filepath.Join("..", "other", ".gitlet"), root)
	if want := filepath.Join(string(filepath.Separator), "work", "other", ".gitlet"); rel.String() != want {
		t.Errorf("relative location = %q, want %q", rel, want)
	}

	abs := filepath.Join(string(filepath.Separator), "srv", "r", ".gitlet")
	if got := NewSourcePath(abs, root); got.String() != abs {
		t.Errorf("absolute location = %q, want %q", got, abs)
	}
}
