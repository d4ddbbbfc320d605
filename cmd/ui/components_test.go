package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plain(t *testing.T) {
	t.Helper()
	prev := ColorEnabled()
	SetColor(false)
	t.Cleanup(func() { SetColor(prev) })
}

func TestFormatLogEntry(t *testing.T) {
	plain(t)

	got := FormatLogEntry(LogEntry{
		Hash:    "a0da1ea5a15ab613bf9961fd86f010cf74c7ee48",
		Date:    "Thu Nov 09 20:00:05 2017 -0800",
		Message: "A commit message.",
	})
	assert.Equal(t, "===\n"+
		"commit a0da1ea5a15ab613bf9961fd86f010cf74c7ee48\n"+
		"Date: Thu Nov 09 20:00:05 2017 -0800\n"+
		"A commit message.\n\n", got)
}

func TestFormatLogEntry_Merge(t *testing.T) {
	plain(t)

	got := FormatLogEntry(LogEntry{
		Hash:    "3e8bf1d794ca2e9ef8a4007275acf3751c7170ff",
		Parent:  "4975af1e2b2a2c2e6b1b1b1b1b1b1b1b1b1b1b1b",
		Parent2: "2c1ead1f00000000000000000000000000000000",
		Date:    "Sat Nov 11 12:30:00 2017 -0800",
		Message: "Merged development into master.",
	})
	assert.Contains(t, got, "\nMerge: 4975af1 2c1ead1\n")
}

func TestFormatStatus(t *testing.T) {
	plain(t)

	got := FormatStatus(StatusView{
		Branches:  []string{"master", "other"},
		Current:   "master",
		Staged:    []string{"wug.txt"},
		Removed:   []string{"goodbye.txt"},
		Unstaged:  []string{"junk.txt (deleted)", "wug3.txt (modified)"},
		Untracked: []string{"random.stuff"},
	})

	want := `=== Branches ===
*master
other

=== Staged Files ===
wug.txt

=== Removed Files ===
goodbye.txt

=== Modifications Not Staged For Commit ===
junk.txt (deleted)
wug3.txt (modified)

=== Untracked Files ===
random.stuff

`
	assert.Equal(t, want, got)
}

func TestTables(t *testing.T) {
	plain(t)

	var buf bytes.Buffer
	require.NoError(t, WriteLogTable(&buf, []LogEntry{{Hash: "0123456789abcdef", Date: "d", Message: "first"}}))
	assert.Contains(t, buf.String(), "0123456")
	assert.Contains(t, buf.String(), "first")

	buf.Reset()
	require.NoError(t, WriteBranchTable(&buf, []BranchRow{
		{Name: "master", Hash: "abcdef0123", Current: true, Message: "tip"},
		{Name: "other", Hash: "fedcba9876"},
	}))
	assert.Contains(t, buf.String(), "*")
	assert.Contains(t, buf.String(), "other")
	assert.Contains(t, buf.String(), "abcdef0")
}
