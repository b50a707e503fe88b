// Package app implements the application layer for mason.
package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/renameio/v2"
	"github.com/schollz/progressbar/v3"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/gracelang/mason/internal/adapters/detector"
	"github.com/gracelang/mason/internal/adapters/watcher"
	"github.com/gracelang/mason/internal/core/domain"
	"github.com/gracelang/mason/internal/core/ports"
	"github.com/gracelang/mason/internal/engine/pipeline"
)

// App represents the main application logic.
type App struct {
	settingsLoader ports.SettingsLoader
	executor       ports.Executor
	logger         ports.Logger
	renderer       ports.Renderer
	watcher        ports.Watcher
	profile        domain.Profile
	pipeline       *pipeline.Pipeline

	stdout         io.Writer
	debounceWindow time.Duration
}

// New creates a new App instance.
func New(
	loader ports.SettingsLoader,
	executor ports.Executor,
	log ports.Logger,
	renderer ports.Renderer,
	tracer ports.Tracer,
	fsWatcher ports.Watcher,
	profile domain.Profile,
) *App {
	return &App{
		settingsLoader: loader,
		executor:       executor,
		logger:         log,
		renderer:       renderer,
		watcher:        fsWatcher,
		profile:        profile,
		pipeline:       pipeline.NewPipeline(executor, tracer, renderer, log, profile),
		stdout:         os.Stdout,
		debounceWindow: watcher.DefaultDebounceWindow,
	}
}

// WithOutput redirects example program output.
// This is primarily used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithDebounceWindow overrides the watch-mode debounce window.
// This is primarily used for testing.
func (a *App) WithDebounceWindow(window time.Duration) *App {
	a.debounceWindow = window
	return a
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	Kind     string
	Selector string
	Install  bool
	DryRun   bool
	Jobs     int
}

// Build resolves the request and drives the backend through the
// generate/build/install phases, configuration by configuration.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	req, err := domain.NewBuildRequest(opts.Kind, opts.Selector, opts.Install)
	if err != nil {
		return err
	}

	settings, err := a.loadSettings()
	if err != nil {
		return err
	}
	if opts.Jobs > 0 {
		settings.Jobs = opts.Jobs
	}

	if opts.DryRun {
		a.renderer.Plan(a.pipeline.Plan(settings, req))
		return nil
	}

	return a.pipeline.Run(ctx, settings, req)
}

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	Kind     string
	Selector string
	Jobs     int
}

// Watch builds once, then rebuilds whenever the source tree changes.
// Rebuilds are serialized; changes arriving during a rebuild coalesce
// into at most one pending run. Installation is never performed under
// watch. Returns when the context is cancelled.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	req, err := domain.NewBuildRequest(opts.Kind, opts.Selector, false)
	if err != nil {
		return err
	}

	settings, err := a.loadSettings()
	if err != nil {
		return err
	}
	if opts.Jobs > 0 {
		settings.Jobs = opts.Jobs
	}

	// The initial build may fail without aborting the watch: the point
	// of the mode is to fix sources and rebuild.
	if err := a.pipeline.Run(ctx, settings, req); err != nil {
		if ctx.Err() != nil {
			return err
		}
		a.logger.Warn("initial build failed, waiting for changes")
	}

	if err := a.watcher.Start(ctx, settings.Root, filepath.Base(settings.BuildDir)); err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	// The debouncer hands each settled batch to a buffered channel so
	// the loop below runs one rebuild at a time.
	rebuilds := make(chan int, 1)
	deb := watcher.NewDebouncer(a.debounceWindow, func(paths []string) {
		select {
		case rebuilds <- len(paths):
		default:
		}
	})

	go func() {
		for event := range a.watcher.Events() {
			deb.Add(event.Path)
		}
	}()

	a.logger.Info(fmt.Sprintf("watching %s for changes", settings.Root))

	for {
		select {
		case <-ctx.Done():
			return nil
		case changed := <-rebuilds:
			a.logger.Info(fmt.Sprintf("%d file(s) changed, rebuilding", changed))
			if err := a.pipeline.Run(ctx, settings, req); err != nil && ctx.Err() == nil {
				a.logger.Warn("rebuild failed, waiting for changes")
			}
		}
	}
}

// BenchOptions configuration for the Bench method.
type BenchOptions struct {
	Script        string
	Iterations    int
	Configuration string
	Output        string
}

// Bench times repeated runs of the built interpreter against a script
// and reports aggregate durations. The first failing run aborts the
// benchmark: timing a failing program measures nothing.
func (a *App) Bench(ctx context.Context, opts BenchOptions) error {
	settings, err := a.loadSettings()
	if err != nil {
		return err
	}

	cfg, err := selectConfiguration(opts.Configuration)
	if err != nil {
		return err
	}

	script := settings.Benchmark.Script
	if opts.Script != "" {
		script = opts.Script
	}
	iterations := settings.Benchmark.Iterations
	if opts.Iterations > 0 {
		iterations = opts.Iterations
	}

	interpreter, err := a.interpreterFor(settings, cfg)
	if err != nil {
		return err
	}

	scriptPath := resolvePath(settings.Root, script)
	if _, err := os.Stat(scriptPath); err != nil {
		return zerr.With(zerr.Wrap(err, "benchmark script not found"), "path", scriptPath)
	}

	digest, err := fileDigest(interpreter)
	if err != nil {
		return zerr.Wrap(err, "failed to fingerprint interpreter binary")
	}

	a.logger.Info(fmt.Sprintf("benchmarking %s with %s [%s], %d iterations", script, interpreter, cfg, iterations))

	var bar *progressbar.ProgressBar
	if detector.Interactive() {
		bar = progressbar.NewOptions(iterations,
			progressbar.OptionSetDescription("benchmarking"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprint(os.Stderr, "\n")
			}),
		)
	}

	samples := make([]time.Duration, 0, iterations)
	for i := 0; i < iterations; i++ {
		if err := ctx.Err(); err != nil {
			return zerr.Wrap(err, "benchmark interrupted")
		}

		start := time.Now()
		status, err := a.executor.Run(ctx, []string{interpreter, scriptPath}, settings.Root, io.Discard, io.Discard)
		elapsed := time.Since(start)

		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrBenchRunFailed.Error()), "iteration", i+1)
		}
		if status != 0 {
			return zerr.With(zerr.With(domain.ErrBenchRunFailed,
				"iteration", i+1),
				"exit_status", status)
		}

		samples = append(samples, elapsed)
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	report := domain.NewBenchReport(script, cfg, interpreter, digest, samples)
	a.logger.Info(fmt.Sprintf("total %v, average %v, min %v, max %v",
		report.Total, report.Average, report.Min, report.Max))

	if opts.Output != "" {
		if err := writeReport(opts.Output, report); err != nil {
			return err
		}
		a.logger.Info(fmt.Sprintf("wrote benchmark report to %s", opts.Output))
	}

	return nil
}

// ExamplesOptions configuration for the Examples method.
type ExamplesOptions struct {
	Dir           string
	Jobs          int
	Configuration string
}

// Examples runs every .gr program under the examples directory with the
// built interpreter, prefixing each program's output with its name.
// Failures are counted, not fatal per file; the aggregate drives the
// returned error.
func (a *App) Examples(ctx context.Context, opts ExamplesOptions) error {
	settings, err := a.loadSettings()
	if err != nil {
		return err
	}

	cfg, err := selectConfiguration(opts.Configuration)
	if err != nil {
		return err
	}

	dir := settings.Examples.Dir
	if opts.Dir != "" {
		dir = opts.Dir
	}
	dirPath := resolvePath(settings.Root, dir)
	if info, err := os.Stat(dirPath); err != nil || !info.IsDir() {
		return zerr.With(domain.ErrExamplesDirMissing, "dir", dirPath)
	}

	interpreter, err := a.interpreterFor(settings, cfg)
	if err != nil {
		return err
	}

	programs, err := collectPrograms(dirPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to scan examples directory"), "dir", dirPath)
	}
	if len(programs) == 0 {
		a.logger.Warn(fmt.Sprintf("no example programs found in %s", dirPath))
		return nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = 1
	}

	var mu sync.Mutex
	passed, failed := 0, 0

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for _, program := range programs {
		g.Go(func() error {
			var output bytes.Buffer
			status, err := a.executor.Run(ctx, []string{interpreter, program}, settings.Root, &output, &output)

			name := programName(dirPath, program)
			mu.Lock()
			defer mu.Unlock()

			a.printPrefixed(name, output.String())
			if err != nil || status != 0 {
				failed++
				a.logger.Warn(fmt.Sprintf("%s failed with exit status %d", name, status))
				return nil
			}
			passed++
			return nil
		})
	}
	_ = g.Wait()

	a.logger.Info(fmt.Sprintf("%d passed, %d failed (%d total)", passed, failed, len(programs)))

	if failed > 0 {
		return zerr.With(zerr.With(domain.ErrExamplesFailed,
			"failed", failed),
			"total", len(programs))
	}
	return nil
}

// Clean removes the build output directory.
func (a *App) Clean(_ context.Context) error {
	settings, err := a.loadSettings()
	if err != nil {
		return err
	}

	dir := resolvePath(settings.Root, settings.BuildDir)
	a.logger.Info(fmt.Sprintf("removing %s...", dir))
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCleanFailed.Error()), "dir", dir)
	}
	a.logger.Info("removed build directory")

	return nil
}

// Validate checks mason.yaml against the embedded schema.
func (a *App) Validate(_ context.Context) error {
	cwd, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to determine working directory")
	}

	path, err := a.settingsLoader.Validate(cwd)
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("%s is valid", path))
	return nil
}

func (a *App) loadSettings() (*domain.Settings, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine working directory")
	}
	return a.settingsLoader.Load(cwd)
}

// interpreterFor locates the built interpreter binary for cfg and fails
// with a hint when it has not been built yet.
func (a *App) interpreterFor(settings *domain.Settings, cfg domain.Config) (string, error) {
	path := resolvePath(settings.Root, a.profile.InterpreterPath(settings.BuildDir, cfg))
	if _, err := os.Stat(path); err != nil {
		return "", zerr.With(zerr.With(domain.ErrArtifactMissing,
			"path", path),
			"configuration", string(cfg))
	}
	return path, nil
}

// printPrefixed writes each line of a program's output prefixed with
// the program name, the way the example runner labels interleaved runs.
func (a *App) printPrefixed(name, output string) {
	for line := range strings.Lines(output) {
		fmt.Fprintf(a.stdout, "[%s] %s", name, line)
		if !strings.HasSuffix(line, "\n") {
			fmt.Fprintln(a.stdout)
		}
	}
}

// selectConfiguration parses the --configuration flag, defaulting to
// Release: measurements on unoptimized builds mislead.
func selectConfiguration(raw string) (domain.Config, error) {
	if raw == "" {
		return domain.ConfigRelease, nil
	}
	return domain.ParseConfig(raw)
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// collectPrograms returns the .gr files under dir, sorted by path.
func collectPrograms(dir string) ([]string, error) {
	var programs []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".gr") {
			programs = append(programs, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return programs, nil
}

func programName(dir, program string) string {
	name, err := filepath.Rel(dir, program)
	if err != nil {
		return filepath.Base(program)
	}
	return strings.TrimSuffix(name, ".gr")
}

func fileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}

func writeReport(path string, report domain.BenchReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrReportWriteFailed.Error())
	}
	data = append(data, '\n')
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", path)
	}
	return nil
}
