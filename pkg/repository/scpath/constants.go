package scpath

const (
	// SourceDir is the metadata directory at the working tree root.
	SourceDir = ".gitlet"

	// ObjectsDir holds content-addressed objects, fanned out by hash prefix.
	ObjectsDir = "objects"

	// StateFile holds the persisted repository record.
	StateFile = "state.json"

	// ConfigFile holds repository-level configuration.
	ConfigFile = "config.json"
)
