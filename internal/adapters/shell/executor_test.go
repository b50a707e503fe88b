package shell_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gracelang/mason/internal/adapters/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutor_Run_CapturesOutput(t *testing.T) {
	executor := shell.NewExecutor()
	tmpDir := t.TempDir()

	var stdout bytes.Buffer
	status, err := executor.Run(context.Background(),
		[]string{"sh", "-c", "echo line1; echo line2"},
		tmpDir, &stdout, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 0, status)

	output := stdout.String()
	assert.Contains(t, output, "line1")
	assert.Contains(t, output, "line2")
}

func TestExecutor_Run_SeparatesStreams(t *testing.T) {
	executor := shell.NewExecutor()
	tmpDir := t.TempDir()

	var stdout, stderr bytes.Buffer
	status, err := executor.Run(context.Background(),
		[]string{"sh", "-c", "echo out; echo err >&2"},
		tmpDir, &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, 0, status)
	assert.Contains(t, stdout.String(), "out")
	assert.Contains(t, stderr.String(), "err")
	assert.NotContains(t, stdout.String(), "err")
}

func TestExecutor_Run_WorkingDirectory(t *testing.T) {
	executor := shell.NewExecutor()
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "marker.txt"), []byte("x"), 0o644))

	var stdout bytes.Buffer
	status, err := executor.Run(context.Background(),
		[]string{"ls"}, tmpDir, &stdout, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 0, status)
	assert.Contains(t, stdout.String(), "marker.txt")
}

func TestExecutor_Run_NonzeroExit(t *testing.T) {
	executor := shell.NewExecutor()

	status, err := executor.Run(context.Background(),
		[]string{"sh", "-c", "exit 3"},
		t.TempDir(), io.Discard, io.Discard)

	// A started command that exits nonzero is not an executor error.
	require.NoError(t, err)
	assert.Equal(t, 3, status)
}

func TestExecutor_Run_CommandNotFound(t *testing.T) {
	executor := shell.NewExecutor()

	status, err := executor.Run(context.Background(),
		[]string{"nonexistent-command-xyz123"},
		t.TempDir(), io.Discard, io.Discard)

	require.Error(t, err)
	assert.Equal(t, -1, status)
}

func TestExecutor_Run_EmptyCommand(t *testing.T) {
	executor := shell.NewExecutor()

	status, err := executor.Run(context.Background(),
		nil, t.TempDir(), io.Discard, io.Discard)

	require.Error(t, err)
	assert.Equal(t, -1, status)
}

func TestExecutor_Run_ContextCancellation(t *testing.T) {
	executor := shell.NewExecutor()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	status, err := executor.Run(ctx,
		[]string{"sleep", "10"},
		t.TempDir(), io.Discard, io.Discard)
	elapsed := time.Since(start)

	// The child is killed, which surfaces as a nonzero exit status.
	require.NoError(t, err)
	assert.NotEqual(t, 0, status)
	assert.Less(t, elapsed, 5*time.Second)
}
