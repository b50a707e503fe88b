package domain

// SettingsFileName is the settings file discovered by upward search
// from the working directory.
const SettingsFileName = "mason.yaml"

// Defaults applied when no mason.yaml is present. They reproduce the
// project's conventional layout: sources at the root, artifacts under
// build/, eight parallel compile jobs.
const (
	DefaultBackend         = "cmake"
	DefaultSource          = "."
	DefaultBuildDir        = "build"
	DefaultJobs            = 8
	DefaultBenchScript     = "examples/for.gr"
	DefaultBenchIterations = 50
	DefaultExamplesDir     = "examples"
)

// Settings are the resolved project settings, either loaded from
// mason.yaml or defaulted. Source and BuildDir stay relative; they are
// passed to the backend verbatim and anchored by running commands in
// Root.
type Settings struct {
	Version   string
	Backend   string
	Source    string
	BuildDir  string
	Jobs      int
	Generator string
	Defines   map[string]string
	Benchmark BenchmarkSettings
	Examples  ExamplesSettings

	// Root is the absolute directory all relative paths and every
	// subprocess are anchored to: the directory containing mason.yaml,
	// or the working directory when no file exists.
	Root string
}

// BenchmarkSettings configure the bench command.
type BenchmarkSettings struct {
	Script     string
	Iterations int
}

// ExamplesSettings configure the examples command.
type ExamplesSettings struct {
	Dir string
}

// DefaultSettings returns the settings used when no mason.yaml exists,
// anchored at root.
func DefaultSettings(root string) *Settings {
	return &Settings{
		Backend:  DefaultBackend,
		Source:   DefaultSource,
		BuildDir: DefaultBuildDir,
		Jobs:     DefaultJobs,
		Benchmark: BenchmarkSettings{
			Script:     DefaultBenchScript,
			Iterations: DefaultBenchIterations,
		},
		Examples: ExamplesSettings{
			Dir: DefaultExamplesDir,
		},
		Root: root,
	}
}
