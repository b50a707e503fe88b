package domain

import "go.trai.ch/zerr"

// TargetKind selects what the backend builds the interpreter as.
// The string values are the exact CLI spellings and the exact values
// passed to the backend, so they are matched case-sensitively.
type TargetKind string

const (
	// TargetExecutable builds the interpreter as a standalone executable.
	TargetExecutable TargetKind = "exe"

	// TargetSharedLibrary builds the interpreter as a shared library.
	TargetSharedLibrary TargetKind = "dll"
)

// ParseTargetKind validates a raw CLI argument as a TargetKind.
func ParseTargetKind(raw string) (TargetKind, error) {
	switch TargetKind(raw) {
	case TargetExecutable, TargetSharedLibrary:
		return TargetKind(raw), nil
	default:
		return "", zerr.With(zerr.With(ErrUnknownTargetKind, "value", raw), "accepted", "exe, dll")
	}
}

// Config is a single build configuration understood by the backend.
type Config string

const (
	// ConfigDebug is an unoptimized build with debug information.
	ConfigDebug Config = "Debug"

	// ConfigRelease is an optimized build.
	ConfigRelease Config = "Release"
)

// ParseConfig validates a raw string as a single Config.
// Unlike selectors, "All" is not a configuration.
func ParseConfig(raw string) (Config, error) {
	switch Config(raw) {
	case ConfigDebug, ConfigRelease:
		return Config(raw), nil
	default:
		return "", zerr.With(zerr.With(ErrUnknownConfiguration, "value", raw), "accepted", "Debug, Release")
	}
}

// ConfigSelector is the user-facing configuration argument. It either
// names a single Config or selects all of them.
type ConfigSelector string

const (
	// SelectDebug builds the Debug configuration.
	SelectDebug ConfigSelector = "Debug"

	// SelectRelease builds the Release configuration.
	SelectRelease ConfigSelector = "Release"

	// SelectAll builds every configuration, Debug first.
	SelectAll ConfigSelector = "All"
)

// ParseConfigSelector validates a raw CLI argument as a ConfigSelector.
func ParseConfigSelector(raw string) (ConfigSelector, error) {
	switch ConfigSelector(raw) {
	case SelectDebug, SelectRelease, SelectAll:
		return ConfigSelector(raw), nil
	default:
		return "", zerr.With(zerr.With(ErrUnknownConfiguration, "value", raw), "accepted", "Debug, Release, All")
	}
}

// Expand resolves the selector into the ordered list of configurations
// to build. The order is fixed: All always expands to Debug, Release.
func (s ConfigSelector) Expand() []Config {
	switch s {
	case SelectDebug:
		return []Config{ConfigDebug}
	case SelectRelease:
		return []Config{ConfigRelease}
	case SelectAll:
		return []Config{ConfigDebug, ConfigRelease}
	default:
		return nil
	}
}

// BuildRequest is a validated build invocation. Construct it with
// NewBuildRequest; a zero BuildRequest is not valid.
type BuildRequest struct {
	Kind     TargetKind
	Selector ConfigSelector
	Install  bool
}

// NewBuildRequest validates the raw CLI arguments and returns an
// immutable request. Validation failures carry the offending value and
// the accepted set as error metadata.
func NewBuildRequest(kind, selector string, install bool) (BuildRequest, error) {
	k, err := ParseTargetKind(kind)
	if err != nil {
		return BuildRequest{}, err
	}

	s, err := ParseConfigSelector(selector)
	if err != nil {
		return BuildRequest{}, err
	}

	return BuildRequest{Kind: k, Selector: s, Install: install}, nil
}

// Configurations returns the ordered configurations this request builds.
func (r BuildRequest) Configurations() []Config {
	return r.Selector.Expand()
}
