package branch

import (
	"github.com/utkarsh5026/gitlet/pkg/objects"
)

// BranchInfo describes one entry of the branch table.
type BranchInfo struct {
	// Name is the branch name, e.g. "master" or "origin/master"
	Name string

	// Hash is the commit the branch points to
	Hash objects.ObjectHash

	// IsCurrentBranch marks the checked out branch
	IsCurrentBranch bool

	// LastCommitMessage is the message of the tip commit
	LastCommitMessage string

	// LastCommitDate is the timestamp of the tip commit, as stored
	LastCommitDate string
}

// CreateConfig holds configuration for branch creation
type CreateConfig struct {
	// StartPoint is the commit the branch points to; head when empty
	StartPoint objects.ObjectHash

	// Force moves an existing branch instead of failing
	Force bool
}

// CreateOption is a functional option for configuring branch creation
type CreateOption func(*CreateConfig)

// WithStartPoint sets the starting commit for the new branch
func WithStartPoint(h objects.ObjectHash) CreateOption {
	return func(c *CreateConfig) {
		c.StartPoint = h
	}
}

// WithForceCreate repoints the branch if it already exists
func WithForceCreate() CreateOption {
	return func(c *CreateConfig) {
		c.Force = true
	}
}
