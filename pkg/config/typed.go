package config

// TypedConfig exposes the gitlet keys with their defaults applied.
type TypedConfig struct {
	manager *Manager
}

// NewTypedConfig wraps manager.
func NewTypedConfig(manager *Manager) *TypedConfig {
	return &TypedConfig{manager: manager}
}

// DefaultBranch is the branch name init creates.
func (tc *TypedConfig) DefaultBranch() string {
	if e := tc.manager.Get(KeyDefaultBranch); e != nil && e.Value != "" {
		return e.Value
	}
	return "master"
}

// TransferWorkers bounds the number of objects copied concurrently by push
// and fetch.
func (tc *TypedConfig) TransferWorkers() int {
	e := tc.manager.Get(KeyTransferWorkers)
	if e == nil {
		return 4
	}
	n, err := e.AsInt()
	if err != nil || n < 1 {
		return 4
	}
	return n
}

// ColorEnabled reports whether styled output is allowed. "auto" defers to
// the caller's terminal detection, reported as isTerminal.
func (tc *TypedConfig) ColorEnabled(isTerminal bool) bool {
	e := tc.manager.Get(KeyColorUI)
	if e == nil {
		return isTerminal
	}
	switch e.Value {
	case "always":
		return true
	case "never":
		return false
	case "auto":
		return isTerminal
	}
	b, err := e.AsBoolean()
	if err != nil {
		return isTerminal
	}
	return b && isTerminal
}

// LogFormat is "text" or "table".
func (tc *TypedConfig) LogFormat() string {
	if e := tc.manager.Get(KeyLogFormat); e != nil && e.Value == "table" {
		return "table"
	}
	return "text"
}
