package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gracelang/mason/internal/core/domain"
	"github.com/gracelang/mason/internal/engine/pipeline"
)

func testSettings() *domain.Settings {
	return domain.DefaultSettings("/grace")
}

func mustRequest(t *testing.T, kind, selector string, install bool) domain.BuildRequest {
	t.Helper()
	req, err := domain.NewBuildRequest(kind, selector, install)
	require.NoError(t, err)
	return req
}

func TestCommands_GenerateDefaults(t *testing.T) {
	req := mustRequest(t, "exe", "Debug", false)

	commands := pipeline.Commands(req, domain.ConfigDebug, domain.PosixProfile(), testSettings())

	require.Len(t, commands, 2)
	generate := commands[0]
	assert.Equal(t, domain.PhaseGenerate, generate.Phase)
	assert.Equal(t, domain.ConfigDebug, generate.Config)
	assert.Equal(t, "/grace", generate.Dir)
	assert.Equal(t, []string{
		"cmake",
		"-DGRACE_BUILD_TARGET=exe",
		"-DCMAKE_BUILD_TYPE=Debug",
		"-S", ".",
		"-B", "build",
	}, generate.Argv)
}

func TestCommands_GenerateWithGeneratorAndDefines(t *testing.T) {
	settings := testSettings()
	settings.Generator = "Ninja"
	settings.Defines = map[string]string{
		"GRACE_ENABLE_JIT":   "ON",
		"CMAKE_CXX_COMPILER": "clang++",
	}
	req := mustRequest(t, "dll", "Release", false)

	commands := pipeline.Commands(req, domain.ConfigRelease, domain.PosixProfile(), settings)

	// Extra defines come sorted by key so repeated runs plan the same
	// command line.
	assert.Equal(t, []string{
		"cmake",
		"-DGRACE_BUILD_TARGET=dll",
		"-DCMAKE_BUILD_TYPE=Release",
		"-G", "Ninja",
		"-DCMAKE_CXX_COMPILER=clang++",
		"-DGRACE_ENABLE_JIT=ON",
		"-S", ".",
		"-B", "build",
	}, commands[0].Argv)
}

func TestCommands_BuildParallelism(t *testing.T) {
	req := mustRequest(t, "exe", "Debug", false)

	t.Run("posix carries the jobs flag", func(t *testing.T) {
		commands := pipeline.Commands(req, domain.ConfigDebug, domain.PosixProfile(), testSettings())

		build := commands[1]
		assert.Equal(t, domain.PhaseBuild, build.Phase)
		assert.Equal(t, []string{
			"cmake", "--build", "build", "--config", "Debug", "--", "-j8",
		}, build.Argv)
	})

	t.Run("windows relies on backend defaults", func(t *testing.T) {
		commands := pipeline.Commands(req, domain.ConfigDebug, domain.WindowsProfile(), testSettings())

		build := commands[1]
		assert.Equal(t, []string{
			"cmake", "--build", "build", "--config", "Debug",
		}, build.Argv)
		assert.NotContains(t, build.Argv, "--")
	})

	t.Run("jobs setting is honored", func(t *testing.T) {
		settings := testSettings()
		settings.Jobs = 12

		commands := pipeline.Commands(req, domain.ConfigDebug, domain.PosixProfile(), settings)

		assert.Equal(t, "-j12", commands[1].Argv[len(commands[1].Argv)-1])
	})
}

func TestCommands_InstallOnlyWhenRequested(t *testing.T) {
	t.Run("without install", func(t *testing.T) {
		req := mustRequest(t, "exe", "Release", false)

		commands := pipeline.Commands(req, domain.ConfigRelease, domain.PosixProfile(), testSettings())

		require.Len(t, commands, 2)
		for _, cmd := range commands {
			assert.NotContains(t, cmd.Argv, "install")
		}
	})

	t.Run("with install", func(t *testing.T) {
		req := mustRequest(t, "exe", "Release", true)

		commands := pipeline.Commands(req, domain.ConfigRelease, domain.PosixProfile(), testSettings())

		require.Len(t, commands, 3)
		install := commands[2]
		assert.Equal(t, domain.PhaseInstall, install.Phase)
		assert.Equal(t, []string{
			"cmake", "--build", "build", "--config", "Release", "--target", "install",
		}, install.Argv)
	})
}

func TestCommands_CustomBackend(t *testing.T) {
	settings := testSettings()
	settings.Backend = "cmake3"
	req := mustRequest(t, "exe", "Debug", true)

	commands := pipeline.Commands(req, domain.ConfigDebug, domain.PosixProfile(), settings)

	for _, cmd := range commands {
		assert.Equal(t, "cmake3", cmd.Argv[0])
	}
}

func TestPlan_SingleConfiguration(t *testing.T) {
	req := mustRequest(t, "exe", "Release", false)

	plan := pipeline.Plan(req, domain.PosixProfile(), testSettings())

	require.Len(t, plan, 2)
	assert.Equal(t, domain.PhaseGenerate, plan[0].Phase)
	assert.Equal(t, domain.PhaseBuild, plan[1].Phase)
	for _, cmd := range plan {
		assert.Equal(t, domain.ConfigRelease, cmd.Config)
	}
}

func TestPlan_AllConfigurationsOrdered(t *testing.T) {
	req := mustRequest(t, "dll", "All", true)

	plan := pipeline.Plan(req, domain.PosixProfile(), testSettings())

	require.Len(t, plan, 6)

	wantPhases := []domain.Phase{
		domain.PhaseGenerate, domain.PhaseBuild, domain.PhaseInstall,
		domain.PhaseGenerate, domain.PhaseBuild, domain.PhaseInstall,
	}
	wantConfigs := []domain.Config{
		domain.ConfigDebug, domain.ConfigDebug, domain.ConfigDebug,
		domain.ConfigRelease, domain.ConfigRelease, domain.ConfigRelease,
	}
	for i, cmd := range plan {
		assert.Equal(t, wantPhases[i], cmd.Phase, "phase at %d", i)
		assert.Equal(t, wantConfigs[i], cmd.Config, "config at %d", i)
	}
}
