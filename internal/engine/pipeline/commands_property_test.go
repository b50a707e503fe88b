package pipeline_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/gracelang/mason/internal/core/domain"
	"github.com/gracelang/mason/internal/engine/pipeline"
)

func genKind() gopter.Gen {
	return gen.OneConstOf("exe", "dll")
}

func genSelector() gopter.Gen {
	return gen.OneConstOf("Debug", "Release", "All")
}

func genJobs() gopter.Gen {
	return gen.IntRange(1, 64)
}

func planFor(kind, selector string, install bool, jobs int, profile domain.Profile) []domain.PhaseCommand {
	req, err := domain.NewBuildRequest(kind, selector, install)
	if err != nil {
		return nil
	}
	settings := domain.DefaultSettings("/grace")
	settings.Jobs = jobs
	return pipeline.Plan(req, profile, settings)
}

func TestPlan_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("posix build commands always carry the jobs flag", prop.ForAll(
		func(kind, selector string, install bool, jobs int) bool {
			plan := planFor(kind, selector, install, jobs, domain.PosixProfile())
			for _, cmd := range plan {
				if cmd.Phase != domain.PhaseBuild {
					continue
				}
				last := cmd.Argv[len(cmd.Argv)-1]
				if last != "-j"+strconv.Itoa(jobs) {
					return false
				}
				if cmd.Argv[len(cmd.Argv)-2] != "--" {
					return false
				}
			}
			return true
		},
		genKind(), genSelector(), gen.Bool(), genJobs(),
	))

	properties.Property("windows build commands never carry a jobs flag", prop.ForAll(
		func(kind, selector string, install bool, jobs int) bool {
			plan := planFor(kind, selector, install, jobs, domain.WindowsProfile())
			for _, cmd := range plan {
				for _, arg := range cmd.Argv {
					if strings.HasPrefix(arg, "-j") {
						return false
					}
				}
			}
			return true
		},
		genKind(), genSelector(), gen.Bool(), genJobs(),
	))

	properties.Property("each configuration plans one generate, one build, install iff requested", prop.ForAll(
		func(kind, selector string, install bool) bool {
			plan := planFor(kind, selector, install, 8, domain.PosixProfile())

			perConfig := make(map[domain.Config]map[domain.Phase]int)
			for _, cmd := range plan {
				if perConfig[cmd.Config] == nil {
					perConfig[cmd.Config] = make(map[domain.Phase]int)
				}
				perConfig[cmd.Config][cmd.Phase]++
			}

			wantInstall := 0
			if install {
				wantInstall = 1
			}
			for _, phases := range perConfig {
				if phases[domain.PhaseGenerate] != 1 || phases[domain.PhaseBuild] != 1 {
					return false
				}
				if phases[domain.PhaseInstall] != wantInstall {
					return false
				}
			}
			return true
		},
		genKind(), genSelector(), gen.Bool(),
	))

	properties.Property("plan order matches the expansion table", prop.ForAll(
		func(kind, selector string, install bool) bool {
			plan := planFor(kind, selector, install, 8, domain.PosixProfile())

			var ordered []domain.Config
			for _, cmd := range plan {
				if len(ordered) == 0 || ordered[len(ordered)-1] != cmd.Config {
					ordered = append(ordered, cmd.Config)
				}
			}

			want := domain.ConfigSelector(selector).Expand()
			if len(ordered) != len(want) {
				return false
			}
			for i := range want {
				if ordered[i] != want[i] {
					return false
				}
			}
			return true
		},
		genKind(), genSelector(), gen.Bool(),
	))

	properties.Property("no install token appears unless installation was requested", prop.ForAll(
		func(kind, selector string) bool {
			plan := planFor(kind, selector, false, 8, domain.PosixProfile())
			for _, cmd := range plan {
				for _, arg := range cmd.Argv {
					if arg == "install" || arg == "--target" {
						return false
					}
				}
			}
			return true
		},
		genKind(), genSelector(),
	))

	properties.TestingRun(t)
}
