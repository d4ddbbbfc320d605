package commit

import (
	"bufio"
	"fmt"
	"sort"
	"strings"

	"github.com/utkarsh5026/gitlet/pkg/objects"
)

// Commit is an immutable snapshot of the tracked files plus history links.
//
// Stored content layout, one header per line, blobs sorted by path:
//
//	parent <id>        omitted for the initial commit
//	merge <id>         second parent, merge commits only
//	date <timestamp>
//	blob <id> <path>   zero or more
//
//	<message>
//
// The layout is fully deterministic, so equal field values always hash to
// the same id.
type Commit struct {
	Message   string
	Timestamp string
	Parent    objects.ObjectHash
	Parent2   objects.ObjectHash
	Blobs     map[string]objects.ObjectHash
}

// New creates a commit with an empty blob mapping.
func New(message, timestamp string, parent, parent2 objects.ObjectHash) *Commit {
	return &Commit{
		Message:   message,
		Timestamp: timestamp,
		Parent:    parent,
		Parent2:   parent2,
		Blobs:     make(map[string]objects.ObjectHash),
	}
}

func (c *Commit) Type() objects.ObjectType { return objects.CommitType }

// Content renders the stored body.
func (c *Commit) Content() (objects.ObjectContent, error) {
	var sb strings.Builder

	if c.Parent != "" {
		sb.WriteString("parent " + c.Parent.String() + "\n")
	}
	if c.Parent2 != "" {
		if c.Parent == "" {
			return nil, fmt.Errorf("commit has a second parent but no first parent")
		}
		sb.WriteString("merge " + c.Parent2.String() + "\n")
	}
	if strings.ContainsRune(c.Timestamp, '\n') {
		return nil, fmt.Errorf("timestamp contains a newline")
	}
	sb.WriteString("date " + c.Timestamp + "\n")

	for _, path := range c.Paths() {
		if strings.ContainsRune(path, '\n') {
			return nil, fmt.Errorf("path %q contains a newline", path)
		}
		sb.WriteString("blob " + c.Blobs[path].String() + " " + path + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(c.Message)
	return objects.ObjectContent(sb.String()), nil
}

// Hash derives the commit id from its content. Blobs may change between
// calls while a commit is being assembled, so nothing is cached.
func (c *Commit) Hash() (objects.ObjectHash, error) {
	content, err := c.Content()
	if err != nil {
		return "", err
	}
	return objects.ComputeObjectHash(objects.CommitType, content), nil
}

// ParseCommit decodes a stored commit.
func ParseCommit(data []byte) (*Commit, error) {
	content, err := objects.ParseSerializedObject(data, objects.CommitType)
	if err != nil {
		return nil, err
	}
	return parseContent(string(content))
}

func parseContent(body string) (*Commit, error) {
	headers, message, found := strings.Cut(body, "\n\n")
	if !found {
		return nil, fmt.Errorf("commit missing header terminator")
	}

	c := New(message, "", "", "")
	sawDate := false

	scanner := bufio.NewScanner(strings.NewReader(headers))
	for scanner.Scan() {
		line := scanner.Text()
		key, rest, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("malformed commit header %q", line)
		}

		switch key {
		case "parent":
			h, err := objects.ParseObjectHash(rest)
			if err != nil {
				return nil, fmt.Errorf("parent: %w", err)
			}
			c.Parent = h
		case "merge":
			h, err := objects.ParseObjectHash(rest)
			if err != nil {
				return nil, fmt.Errorf("merge parent: %w", err)
			}
			c.Parent2 = h
		case "date":
			c.Timestamp = rest
			sawDate = true
		case "blob":
			id, path, ok := strings.Cut(rest, " ")
			if !ok || path == "" {
				return nil, fmt.Errorf("malformed blob line %q", line)
			}
			h, err := objects.ParseObjectHash(id)
			if err != nil {
				return nil, fmt.Errorf("blob %s: %w", path, err)
			}
			c.Blobs[path] = h
		default:
			return nil, fmt.Errorf("unknown commit header %q", key)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !sawDate {
		return nil, fmt.Errorf("commit missing date")
	}
	return c, nil
}

// IsMergeCommit reports whether the commit has a second parent.
func (c *Commit) IsMergeCommit() bool { return c.Parent2 != "" }

// IsInitial reports whether the commit has no parent.
func (c *Commit) IsInitial() bool { return c.Parent == "" }

// Parents lists the parent ids, first parent first.
func (c *Commit) Parents() []objects.ObjectHash {
	var out []objects.ObjectHash
	if c.Parent != "" {
		out = append(out, c.Parent)
	}
	if c.Parent2 != "" {
		out = append(out, c.Parent2)
	}
	return out
}

// BlobFor returns the blob tracked at path.
func (c *Commit) BlobFor(path string) (objects.ObjectHash, bool) {
	h, ok := c.Blobs[path]
	return h, ok
}

// Tracks reports whether path is in the snapshot.
func (c *Commit) Tracks(path string) bool {
	_, ok := c.Blobs[path]
	return ok
}

// Paths returns the tracked paths in lexicographic order.
func (c *Commit) Paths() []string {
	paths := make([]string, 0, len(c.Blobs))
	for p := range c.Blobs {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Clone returns a deep copy with the same field values.
func (c *Commit) Clone() *Commit {
	out := New(c.Message, c.Timestamp, c.Parent, c.Parent2)
	for p, h := range c.Blobs {
		out.Blobs[p] = h
	}
	return out
}
