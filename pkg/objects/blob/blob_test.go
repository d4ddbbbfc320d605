package blob

import (
	"testing"

	"github.com/utkarsh5026/gitlet/pkg/objects"
)

func TestBlob_HashIsContentAddressed(t *testing.T) {
	a := NewBlob([]byte("hello\n"))
	b := NewBlob([]byte("hello\n"))
	c := NewBlob([]byte("world\n"))

	ha, _ := a.Hash()
	hb, _ := b.Hash()
	hc, _ := c.Hash()

	if ha != hb {
		t.Errorf("equal content produced different ids: %s vs %s", ha, hb)
	}
	if ha == hc {
		t.Error("different content produced the same id")
	}
	// git hash-object of "hello\n"
	if ha != "ce013625030ba8dba906f756967f9e9ca394464a" {
		t.Errorf("hash = %s", ha)
	}
	if HashOf([]byte("hello\n")) != ha {
		t.Error("HashOf disagrees with Blob.Hash")
	}
}

func TestParseBlob(t *testing.T) {
	orig := NewBlob([]byte("line one\nline two\n"))
	so, err := objects.Serialize(orig)
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := ParseBlob(so)
	if err != nil {
		t.Fatalf("ParseBlob: %v", err)
	}
	if string(parsed.Data()) != "line one\nline two\n" {
		t.Errorf("Data = %q", parsed.Data())
	}

	want, _ := orig.Hash()
	got, _ := parsed.Hash()
	if got != want {
		t.Errorf("parsed hash = %s, want %s", got, want)
	}
}

func TestParseBlob_RejectsCommit(t *testing.T) {
	so := objects.NewSerializedObject(objects.CommitType, objects.ObjectContent("date x\n\nmsg"))
	if _, err := ParseBlob(so); err == nil {
		t.Error("expected error for commit object")
	}
}
