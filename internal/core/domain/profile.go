package domain

import (
	"fmt"
	"path/filepath"
)

// Family is the platform family the orchestrator adapts its backend
// invocations to. Only two families exist: Windows and everything
// POSIX-like. Behavior never branches on a concrete operating system,
// only on the family profile.
type Family int

const (
	// FamilyPosix covers Linux, the BSDs, macOS and other Unix-likes.
	FamilyPosix Family = iota

	// FamilyWindows covers Windows hosts.
	FamilyWindows
)

// String returns the family name.
func (f Family) String() string {
	if f == FamilyWindows {
		return "windows"
	}
	return "posix"
}

// interpreterName is the binary the backend produces.
const interpreterName = "grace"

// Profile captures everything platform-dependent about driving the
// backend: flag syntax, artifact layout and post-install guidance.
// There is exactly one read-only Profile per family; adding a platform
// means adding a row, not adding branches.
type Profile struct {
	Family Family

	// DefinePrefix, SourceFlag and BuildDirFlag are the generate-time
	// flag spellings.
	DefinePrefix string
	SourceFlag   string
	BuildDirFlag string

	// ConfigFlag re-selects the configuration at build time. Multi-config
	// generators on Windows ignore the generate-time define, so the
	// build-time flag is mandatory there and harmless elsewhere.
	ConfigFlag string

	// ParallelismFlag is the native build tool's jobs flag, passed after
	// the argument separator. Empty means the family relies on the
	// backend's own default parallelism.
	ParallelismFlag string

	// InstallTargetArgs select the install target on the build command.
	InstallTargetArgs []string

	// ExecutableSuffix and NestedConfigDir describe where the backend
	// places the interpreter binary. Multi-config generators nest an
	// extra per-configuration directory.
	ExecutableSuffix string
	NestedConfigDir  bool

	// Conventional install locations and the environment variable the
	// interpreter reads its standard library path from. These are only
	// reported to the user, never set.
	BinInstallDir    string
	StdInstallDir    string
	StdPathEnvVar    string
	PathUpdateNeeded bool
}

// PosixProfile returns the profile for POSIX-like hosts. It is also the
// fallback for unrecognized platforms.
func PosixProfile() Profile {
	return Profile{
		Family:            FamilyPosix,
		DefinePrefix:      "-D",
		SourceFlag:        "-S",
		BuildDirFlag:      "-B",
		ConfigFlag:        "--config",
		ParallelismFlag:   "-j",
		InstallTargetArgs: []string{"--target", "install"},
		ExecutableSuffix:  "",
		NestedConfigDir:   false,
		StdInstallDir:     "/usr/local/share/grace/std",
		StdPathEnvVar:     "GRACE_STD_PATH",
		PathUpdateNeeded:  false,
	}
}

// WindowsProfile returns the profile for Windows hosts.
func WindowsProfile() Profile {
	return Profile{
		Family:            FamilyWindows,
		DefinePrefix:      "-D",
		SourceFlag:        "-S",
		BuildDirFlag:      "-B",
		ConfigFlag:        "--config",
		ParallelismFlag:   "",
		InstallTargetArgs: []string{"--target", "install"},
		ExecutableSuffix:  ".exe",
		NestedConfigDir:   true,
		BinInstallDir:     "C:/Program Files (x86)/grace/bin",
		StdInstallDir:     "C:/Program Files (x86)/grace/std",
		StdPathEnvVar:     "GRACE_STD_PATH",
		PathUpdateNeeded:  true,
	}
}

// SupportsParallelism reports whether build commands carry an explicit
// jobs flag on this family.
func (p Profile) SupportsParallelism() bool {
	return p.ParallelismFlag != ""
}

// InterpreterPath returns the path of the built interpreter binary for
// the given configuration, relative to the project root.
func (p Profile) InterpreterPath(buildDir string, cfg Config) string {
	dir := filepath.Join(buildDir, interpreterName, string(cfg))
	if p.NestedConfigDir {
		dir = filepath.Join(dir, string(cfg))
	}
	return filepath.Join(dir, interpreterName+p.ExecutableSuffix)
}

// InstallNotes returns the guidance lines shown after a successful
// install. The locations are the backend's defaults; the build log is
// authoritative when the install prefix was overridden.
func (p Profile) InstallNotes() []string {
	if p.PathUpdateNeeded {
		return []string{
			fmt.Sprintf("To use grace, add grace's installation directory to your PATH and set the %s environment variable.", p.StdPathEnvVar),
			fmt.Sprintf("This is usually %s and %s, but check the above log to see if it was different.", p.BinInstallDir, p.StdInstallDir),
		}
	}
	return []string{
		fmt.Sprintf("To use grace, set the %s environment variable in your shell config.", p.StdPathEnvVar),
		fmt.Sprintf("This will be %s", p.StdInstallDir),
	}
}
