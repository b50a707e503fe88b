package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/gracelang/mason/internal/app"
	"github.com/gracelang/mason/internal/core/domain"
	"github.com/gracelang/mason/internal/core/ports"
	"github.com/gracelang/mason/internal/core/ports/mocks"
)

type testComponents struct {
	loader   *mocks.MockSettingsLoader
	executor *mocks.MockExecutor
	logger   *mocks.MockLogger
	renderer *mocks.MockRenderer
	tracer   *mocks.MockTracer
	span     *mocks.MockSpan
	watcher  *mocks.MockWatcher

	components *app.Components
}

func newTestComponents(t *testing.T) *testComponents {
	t.Helper()
	ctrl := gomock.NewController(t)

	tc := &testComponents{
		loader:   mocks.NewMockSettingsLoader(ctrl),
		executor: mocks.NewMockExecutor(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		renderer: mocks.NewMockRenderer(ctrl),
		tracer:   mocks.NewMockTracer(ctrl),
		span:     mocks.NewMockSpan(ctrl),
		watcher:  mocks.NewMockWatcher(ctrl),
	}

	tc.tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, tc.span
		}).AnyTimes()
	tc.span.EXPECT().End().AnyTimes()
	tc.span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	tc.span.EXPECT().RecordError(gomock.Any()).AnyTimes()

	application := app.New(
		tc.loader,
		tc.executor,
		tc.logger,
		tc.renderer,
		tc.tracer,
		tc.watcher,
		domain.PosixProfile(),
	)

	tc.components = &app.Components{
		App:    application,
		Logger: tc.logger,
		Tracer: tc.tracer,
	}
	return tc
}

func (tc *testComponents) provider(_ context.Context) (*app.Components, func(), error) {
	return tc.components, func() {}, nil
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	tc := newTestComponents(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, tc.provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	tc := newTestComponents(t)
	tc.loader.EXPECT().Load(gomock.Any()).Return(nil, errors.New("load failed"))
	tc.logger.EXPECT().Error(gomock.Any())

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"build", "exe", "Debug"}, stderr, tc.provider)

	assert.Equal(t, 1, exitCode)
}

// TestRun_BuildFailureExitsSilently verifies that an already-rendered
// build failure sets the exit code without a second error report.
func TestRun_BuildFailureExitsSilently(t *testing.T) {
	tc := newTestComponents(t)
	tc.loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultSettings(t.TempDir()), nil)

	// Both phases fail; the summary renders the damage. No
	// logger.Error expectation: a second report would be redundant.
	tc.executor.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(1, nil).Times(2)
	tc.renderer.EXPECT().Summary(gomock.Any(), gomock.Any())

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"build", "exe", "Debug"}, stderr, tc.provider)

	assert.Equal(t, 1, exitCode)
}

// TestRun_Signal verifies that the context is canceled on signal.
func TestRun_Signal(t *testing.T) {
	tc := newTestComponents(t)

	blockCh := make(chan struct{})
	tc.loader.EXPECT().Load(gomock.Any()).DoAndReturn(func(_ string) (*domain.Settings, error) {
		select {
		case <-blockCh:
			return nil, context.Canceled
		case <-time.After(5 * time.Second):
			return nil, errors.New("timeout in mock")
		}
	})
	tc.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan int)

	go func() {
		errCh <- run(ctx, []string{"build", "exe", "Debug"}, io.Discard, tc.provider)
	}()

	// Wait a bit to ensure run() reaches Load()
	time.Sleep(100 * time.Millisecond)

	cancel()
	close(blockCh)

	select {
	case ret := <-errCh:
		assert.NotEqual(t, 0, ret)
	case <-time.After(2 * time.Second):
		t.Fatal("TestRun_Signal timed out waiting for run() to return")
	}
}
