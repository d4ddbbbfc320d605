package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// FileStatus represents how a path shows up in status output
type FileStatus int

const (
	StatusModified FileStatus = iota
	StatusDeleted
	StatusAdded
	StatusUntracked
)

// FormatFileStatus colors a status line according to its kind.
func FormatFileStatus(status FileStatus, line string) string {
	switch status {
	case StatusModified:
		return render(ModifiedStyle, line)
	case StatusDeleted:
		return render(DeletedStyle, line)
	case StatusAdded:
		return render(AddedStyle, line)
	case StatusUntracked:
		return render(UntrackedStyle, line)
	default:
		return line
	}
}

// LogEntry is one commit as shown by log and global-log.
type LogEntry struct {
	Hash string

	// Parent and Parent2 are only shown for merge commits
	Parent  string
	Parent2 string

	Date    string
	Message string
}

func short(id string) string {
	if len(id) > 7 {
		return id[:7]
	}
	return id
}

// FormatLogEntry renders:
//
//	===
//	commit <id>
//	Merge: <p1> <p2>
//	Date: <timestamp>
//	<message>
//
// followed by a blank line. The Merge line appears only for merge commits.
func FormatLogEntry(e LogEntry) string {
	var b strings.Builder
	b.WriteString(render(SeparatorStyle, "==="))
	b.WriteString("\n")
	fmt.Fprintf(&b, "commit %s\n", render(HashStyle, e.Hash))
	if e.Parent2 != "" {
		fmt.Fprintf(&b, "Merge: %s %s\n", short(e.Parent), short(e.Parent2))
	}
	fmt.Fprintf(&b, "Date: %s\n", render(DateStyle, e.Date))
	b.WriteString(e.Message)
	b.WriteString("\n\n")
	return b.String()
}

// WriteLogTable renders entries as a table.
func WriteLogTable(w io.Writer, entries []LogEntry) error {
	table := tablewriter.NewWriter(w)
	table.Header("Commit", "Date", "Merge", "Message")

	for _, e := range entries {
		merge := ""
		if e.Parent2 != "" {
			merge = short(e.Parent) + " " + short(e.Parent2)
		}
		message := strings.ReplaceAll(e.Message, "\n", " ")
		if len(message) > 50 {
			message = message[:47] + "..."
		}
		if err := table.Append(Yellow(short(e.Hash)), Magenta(e.Date), merge, message); err != nil {
			return err
		}
	}
	return table.Render()
}

// BranchRow is one line of the branch listing.
type BranchRow struct {
	Name    string
	Hash    string
	Current bool
	Message string
}

// WriteBranchTable renders the branch listing. The current branch is
// marked with "*".
func WriteBranchTable(w io.Writer, rows []BranchRow) error {
	table := tablewriter.NewWriter(w)
	table.Header("", "Branch", "Commit", "Message")

	for _, r := range rows {
		marker := ""
		name := r.Name
		if r.Current {
			marker = "*"
			name = Green(name)
		}
		if err := table.Append(marker, name, Yellow(short(r.Hash)), r.Message); err != nil {
			return err
		}
	}
	return table.Render()
}

// StatusView holds the sections printed by status. Every list is expected
// to be sorted.
type StatusView struct {
	Branches []string
	Current  string
	Staged   []string
	Removed  []string
	// Unstaged lines read "<path> (modified)" or "<path> (deleted)"
	Unstaged  []string
	Untracked []string
}

// FormatStatus renders the five status sections, each followed by a blank
// line.
func FormatStatus(v StatusView) string {
	var b strings.Builder

	b.WriteString(Section("=== Branches ===") + "\n")
	for _, name := range v.Branches {
		if name == v.Current {
			b.WriteString(Green("*"+name) + "\n")
		} else {
			b.WriteString(name + "\n")
		}
	}
	b.WriteString("\n")

	writeSection(&b, "=== Staged Files ===", StatusAdded, v.Staged)
	writeSection(&b, "=== Removed Files ===", StatusDeleted, v.Removed)
	writeSection(&b, "=== Modifications Not Staged For Commit ===", StatusModified, v.Unstaged)
	writeSection(&b, "=== Untracked Files ===", StatusUntracked, v.Untracked)
	return b.String()
}

func writeSection(b *strings.Builder, title string, status FileStatus, lines []string) {
	b.WriteString(Section(title) + "\n")
	for _, l := range lines {
		b.WriteString(FormatFileStatus(status, l) + "\n")
	}
	b.WriteString("\n")
}

// SuccessMessage renders an informational message followed by details.
func SuccessMessage(message string, details ...string) string {
	parts := []string{Green(message)}
	for _, d := range details {
		parts = append(parts, Blue(d))
	}
	return strings.Join(parts, " ")
}

// ErrorMessage formats a user-facing failure.
func ErrorMessage(message string) string {
	return Red(message)
}

// WarningMessage formats a warning message in yellow
func WarningMessage(message string) string {
	return Yellow(message)
}
