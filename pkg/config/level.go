package config

// ConfigLevel is a layer of the configuration hierarchy, ordered from
// highest to lowest precedence.
type ConfigLevel int

const (
	// CommandLineLevel holds --config key=value overrides.
	CommandLineLevel ConfigLevel = iota

	// RepositoryLevel is .gitlet/config.json.
	RepositoryLevel

	// UserLevel is ~/.config/gitlet/config.json.
	UserLevel

	// BuiltinLevel holds compiled-in defaults.
	BuiltinLevel
)

func (l ConfigLevel) String() string {
	switch l {
	case CommandLineLevel:
		return "command-line"
	case RepositoryLevel:
		return "repository"
	case UserLevel:
		return "user"
	case BuiltinLevel:
		return "builtin"
	default:
		return "unknown"
	}
}

// CanWrite reports whether the level is backed by a file.
func (l ConfigLevel) CanWrite() bool {
	return l == RepositoryLevel || l == UserLevel
}

// ParseLevel converts a level name back to a ConfigLevel.
func ParseLevel(s string) (ConfigLevel, error) {
	switch s {
	case "command-line":
		return CommandLineLevel, nil
	case "repository":
		return RepositoryLevel, nil
	case "user":
		return UserLevel, nil
	case "builtin":
		return BuiltinLevel, nil
	default:
		return 0, NewConfigError("parse", CodeInvalidLevelErr, "", "", s, ErrInvalidLevel)
	}
}
