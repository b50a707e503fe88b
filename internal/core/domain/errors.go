package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownTargetKind is returned when the build target argument is not a known kind.
	ErrUnknownTargetKind = zerr.New("unknown build target kind")

	// ErrUnknownConfiguration is returned when the configuration argument is not recognized.
	ErrUnknownConfiguration = zerr.New("unknown build configuration")

	// ErrPhaseFailed is returned when a backend phase exits nonzero or cannot be started.
	ErrPhaseFailed = zerr.New("backend phase failed")

	// ErrBuildFailed is returned when at least one phase of the build failed.
	ErrBuildFailed = zerr.New("build failed")

	// ErrBuildDirCreateFailed is returned when the build directory cannot be created.
	ErrBuildDirCreateFailed = zerr.New("failed to create build directory")

	// ErrSettingsReadFailed is returned when the settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsParseFailed is returned when the settings file cannot be parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")

	// ErrSettingsInvalid is returned when the settings file does not match the schema.
	ErrSettingsInvalid = zerr.New("settings file is invalid")

	// ErrSettingsNotFound is returned when no settings file exists to validate.
	ErrSettingsNotFound = zerr.New("could not find mason.yaml")

	// ErrArtifactMissing is returned when the interpreter binary has not been built yet.
	ErrArtifactMissing = zerr.New("interpreter binary not found, run 'mason build' first")

	// ErrBenchRunFailed is returned when a benchmark iteration exits nonzero.
	ErrBenchRunFailed = zerr.New("benchmark run failed")

	// ErrReportWriteFailed is returned when the benchmark report cannot be written.
	ErrReportWriteFailed = zerr.New("failed to write benchmark report")

	// ErrExamplesDirMissing is returned when the examples directory does not exist.
	ErrExamplesDirMissing = zerr.New("examples directory not found")

	// ErrExamplesFailed is returned when at least one example program failed.
	ErrExamplesFailed = zerr.New("example programs failed")

	// ErrCleanFailed is returned when build artifacts cannot be removed.
	ErrCleanFailed = zerr.New("failed to remove build directory")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch source tree")
)
