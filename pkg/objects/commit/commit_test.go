package commit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utkarsh5026/gitlet/pkg/objects"
)

const (
	hashA = objects.ObjectHash("1111111111111111111111111111111111111111")
	hashB = objects.ObjectHash("2222222222222222222222222222222222222222")
	hashC = objects.ObjectHash("3333333333333333333333333333333333333333")
)

func TestContent_Layout(t *testing.T) {
	c := New("Merged dev into master.", "Thu Jan 01 00:00:00 1970 +0000", hashA, hashB)
	c.Blobs["z.txt"] = hashC
	c.Blobs["a b.txt"] = hashA

	content, err := c.Content()
	require.NoError(t, err)

	want := strings.Join([]string{
		"parent " + hashA.String(),
		"merge " + hashB.String(),
		"date Thu Jan 01 00:00:00 1970 +0000",
		"blob " + hashA.String() + " a b.txt",
		"blob " + hashC.String() + " z.txt",
		"",
		"Merged dev into master.",
	}, "\n")
	assert.Equal(t, want, content.String())
}

func TestHash_DeterministicAcrossInsertionOrder(t *testing.T) {
	a := New("msg", "ts", hashA, "")
	a.Blobs["x"] = hashB
	a.Blobs["y"] = hashC

	b := New("msg", "ts", hashA, "")
	b.Blobs["y"] = hashC
	b.Blobs["x"] = hashB

	ha, err := a.Hash()
	require.NoError(t, err)
	hb, err := b.Hash()
	require.NoError(t, err)
	assert.Equal(t, ha, hb)

	b.Message = "other"
	hb2, _ := b.Hash()
	assert.NotEqual(t, ha, hb2, "message must affect identity")
}

func TestParseCommit_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		commit *Commit
	}{
		{name: "initial", commit: New("initial commit", "Thu Jan 01 00:00:00 1970 +0000", "", "")},
		{name: "multiline message", commit: func() *Commit {
			c := New("first line\n\nbody", "Sat Mar 09 14:05:07 2024 -0800", hashA, "")
			c.Blobs["f.txt"] = hashB
			return c
		}()},
		{name: "merge", commit: func() *Commit {
			c := New("Merged a into b.", "Sat Mar 09 14:05:07 2024 -0800", hashA, hashB)
			c.Blobs["g.txt"] = hashC
			return c
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			so, err := objects.Serialize(tt.commit)
			require.NoError(t, err)

			parsed, err := ParseCommit(so)
			require.NoError(t, err)
			assert.Equal(t, tt.commit, parsed)

			h1, _ := tt.commit.Hash()
			h2, _ := parsed.Hash()
			assert.Equal(t, h1, h2)
		})
	}
}

func TestParseCommit_Malformed(t *testing.T) {
	bodies := []string{
		"date x",
		"bogus y\n\nmsg",
		"parent nothex\ndate x\n\nmsg",
		"blob " + hashA.String() + "\ndate x\n\nmsg",
		"parent " + hashA.String() + "\n\nmsg",
	}
	for _, body := range bodies {
		so := objects.NewSerializedObject(objects.CommitType, objects.ObjectContent(body))
		_, err := ParseCommit(so)
		assert.Error(t, err, "body %q", body)
	}
}

func TestContent_SecondParentRequiresFirst(t *testing.T) {
	c := New("m", "ts", "", hashB)
	_, err := c.Content()
	assert.Error(t, err)
}

func TestAccessors(t *testing.T) {
	c := New("m", "ts", hashA, hashB)
	c.Blobs["b"] = hashC
	c.Blobs["a"] = hashC

	assert.True(t, c.IsMergeCommit())
	assert.False(t, c.IsInitial())
	assert.Equal(t, []objects.ObjectHash{hashA, hashB}, c.Parents())
	assert.Equal(t, []string{"a", "b"}, c.Paths())
	assert.True(t, c.Tracks("a"))
	assert.False(t, c.Tracks("c"))

	h, ok := c.BlobFor("b")
	assert.True(t, ok)
	assert.Equal(t, hashC, h)

	clone := c.Clone()
	clone.Blobs["c"] = hashA
	assert.False(t, c.Tracks("c"), "clone must not share the blob map")

	assert.Empty(t, New("m", "ts", "", "").Parents())
}
