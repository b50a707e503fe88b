package pipeline

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/gracelang/mason/internal/core/domain"
)

// targetDefine is the backend variable selecting what the interpreter is
// built as (executable or shared library).
const targetDefine = "GRACE_BUILD_TARGET"

// configDefine selects the build configuration at generate time. The
// configuration is re-stated at build time through the profile's config
// flag: multi-config generators ignore the generate-time define, and the
// build-time flag is harmless on single-config ones.
const configDefine = "CMAKE_BUILD_TYPE"

// Commands plans the ordered backend invocations for one configuration.
// Planning is pure: no I/O and no failure path. Exactly one Generate and
// one Build command are produced; an Install command follows iff the
// request asked for installation.
func Commands(req domain.BuildRequest, cfg domain.Config, profile domain.Profile, settings *domain.Settings) []domain.PhaseCommand {
	commands := []domain.PhaseCommand{
		generateCommand(req, cfg, profile, settings),
		buildCommand(cfg, profile, settings),
	}
	if req.Install {
		commands = append(commands, installCommand(cfg, profile, settings))
	}
	return commands
}

// Plan expands the request into the full ordered command sequence,
// configuration by configuration.
func Plan(req domain.BuildRequest, profile domain.Profile, settings *domain.Settings) []domain.PhaseCommand {
	var commands []domain.PhaseCommand
	for _, cfg := range req.Configurations() {
		commands = append(commands, Commands(req, cfg, profile, settings)...)
	}
	return commands
}

func generateCommand(req domain.BuildRequest, cfg domain.Config, profile domain.Profile, settings *domain.Settings) domain.PhaseCommand {
	argv := []string{
		settings.Backend,
		define(profile, targetDefine, string(req.Kind)),
		define(profile, configDefine, string(cfg)),
	}

	if settings.Generator != "" {
		argv = append(argv, "-G", settings.Generator)
	}

	// Extra defines are sorted so the command line is deterministic.
	for _, key := range slices.Sorted(maps.Keys(settings.Defines)) {
		argv = append(argv, define(profile, key, settings.Defines[key]))
	}

	argv = append(argv,
		profile.SourceFlag, settings.Source,
		profile.BuildDirFlag, settings.BuildDir,
	)

	return domain.PhaseCommand{
		Phase:  domain.PhaseGenerate,
		Config: cfg,
		Dir:    settings.Root,
		Argv:   argv,
	}
}

func buildCommand(cfg domain.Config, profile domain.Profile, settings *domain.Settings) domain.PhaseCommand {
	argv := []string{
		settings.Backend,
		"--build", settings.BuildDir,
		profile.ConfigFlag, string(cfg),
	}

	// The jobs flag belongs to the native build tool, so it goes after
	// the argument separator. Families without a parallelism flag rely
	// on the backend's own default.
	if profile.SupportsParallelism() {
		argv = append(argv, "--", profile.ParallelismFlag+strconv.Itoa(settings.Jobs))
	}

	return domain.PhaseCommand{
		Phase:  domain.PhaseBuild,
		Config: cfg,
		Dir:    settings.Root,
		Argv:   argv,
	}
}

func installCommand(cfg domain.Config, profile domain.Profile, settings *domain.Settings) domain.PhaseCommand {
	argv := []string{
		settings.Backend,
		"--build", settings.BuildDir,
		profile.ConfigFlag, string(cfg),
	}
	argv = append(argv, profile.InstallTargetArgs...)

	return domain.PhaseCommand{
		Phase:  domain.PhaseInstall,
		Config: cfg,
		Dir:    settings.Root,
		Argv:   argv,
	}
}

func define(profile domain.Profile, key, value string) string {
	return fmt.Sprintf("%s%s=%s", profile.DefinePrefix, key, value)
}
