package domain

import (
	"fmt"
	"strings"
	"time"
)

// Phase identifies one step of the per-configuration build sequence.
type Phase int

const (
	// PhaseGenerate configures the backend project in the build directory.
	PhaseGenerate Phase = iota

	// PhaseBuild compiles the configured project.
	PhaseBuild

	// PhaseInstall installs the built artifacts. It only exists when the
	// user requested installation.
	PhaseInstall
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseGenerate:
		return "generate"
	case PhaseBuild:
		return "build"
	case PhaseInstall:
		return "install"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// PhaseCommand is one planned backend invocation. It is a value: the
// planner produces a fresh slice per configuration and nothing mutates
// commands after planning.
type PhaseCommand struct {
	Phase  Phase
	Config Config
	// Dir is the working directory the command runs in, normally the
	// project root so relative source and build paths resolve.
	Dir  string
	Argv []string
}

// String renders the command line as it would be typed in a shell.
func (c PhaseCommand) String() string {
	return strings.Join(c.Argv, " ")
}

// Title is the short display name used for banners and trace spans,
// e.g. "build [Release]".
func (c PhaseCommand) Title() string {
	return fmt.Sprintf("%s [%s]", c.Phase, c.Config)
}

// PhaseResult is the outcome of running a PhaseCommand.
type PhaseResult struct {
	Command    PhaseCommand
	ExitStatus int
	// Err is set when the command could not be started at all; exit
	// statuses of started commands are reported via ExitStatus.
	Err      error
	Duration time.Duration
}

// Failed reports whether the phase must be treated as failed.
func (r PhaseResult) Failed() bool {
	return r.Err != nil || r.ExitStatus != 0
}
