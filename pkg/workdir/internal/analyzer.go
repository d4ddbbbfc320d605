package internal

import (
	"sort"
)

// Plan is the ordered list of operations that turns one snapshot into
// another, deletions first.
type Plan struct {
	Operations []Operation
	Summary    Summary
}

// Analyze compares the snapshot currently checked out with target. Every
// target file is written, including ones whose blob is unchanged, so local
// edits to tracked files are replaced. Files tracked only by current are
// deleted.
func Analyze(current, target FileMap) Plan {
	var plan Plan

	for _, path := range sortedPaths(current) {
		if _, ok := target[path]; !ok {
			plan.Operations = append(plan.Operations, Operation{Path: path, Action: ActionDelete})
			plan.Summary.Deleted++
		}
	}

	for _, path := range sortedPaths(target) {
		action := ActionCreate
		if _, ok := current[path]; ok {
			action = ActionModify
			plan.Summary.Modified++
		} else {
			plan.Summary.Created++
		}
		plan.Operations = append(plan.Operations, Operation{Path: path, Action: action, Blob: target[path]})
	}
	return plan
}

func sortedPaths(m FileMap) []string {
	out := make([]string, 0, len(m))
	for p := range m {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
