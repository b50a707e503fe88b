//go:build e2e

package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var masonBinary string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "mason-e2e-*")
	if err != nil {
		panic(err)
	}

	masonBinary = filepath.Join(tmpDir, "mason")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", masonBinary, "./cmd/mason")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build mason binary: " + err.Error())
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
	})
}

// setupE2E puts mason and a cmake stub on PATH. The stub appends each
// invocation to cmake.log in its working directory and exits with
// CMAKE_EXIT_CODE, so scripts can assert on the exact argv without a
// real backend or toolchain.
func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("CI", "true")

	stubDir := filepath.Join(env.WorkDir, ".stub")
	if err := os.MkdirAll(stubDir, 0o750); err != nil {
		return err
	}
	stub := "#!/bin/sh\necho \"cmake $*\" >> cmake.log\nexit \"${CMAKE_EXIT_CODE:-0}\"\n"
	//nolint:gosec // the stub must be executable
	if err := os.WriteFile(filepath.Join(stubDir, "cmake"), []byte(stub), 0o755); err != nil {
		return err
	}

	binDir := filepath.Dir(masonBinary)
	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", binDir+string(os.PathListSeparator)+stubDir+string(os.PathListSeparator)+currentPath)

	return nil
}
