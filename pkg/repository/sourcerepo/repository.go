package sourcerepo

import (
	"github.com/utkarsh5026/gitlet/pkg/repository/scpath"
	"github.com/utkarsh5026/gitlet/pkg/repository/state"
	"github.com/utkarsh5026/gitlet/pkg/store"
)

// Repository is the context every operation receives: where the working
// tree lives, where objects are kept, and the mutable state record.
type Repository interface {
	// WorkingDirectory is the root holding the tracked files.
	WorkingDirectory() scpath.RepositoryPath

	// SourceDirectory is the .gitlet metadata directory.
	SourceDirectory() scpath.SourcePath

	// ObjectStore is the content-addressed object database.
	ObjectStore() store.ObjectStore

	// State is the in-memory record. Mutations become durable only on Save.
	State() *state.State
}
