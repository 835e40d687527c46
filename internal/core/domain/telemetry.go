package domain

// LogLevel represents the severity of a stage log line, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Pipeline stage names recorded on the telemetry tape.
const (
	StageCollectBase  = "collect base"
	StageCollectHead  = "collect head"
	StageCheckRecipes = "check recipes"
	StageExport       = "export recipes"
	StageInstall      = "install"
	StageListCache    = "list installed"
	StageCheckLock    = "check lock"
)
