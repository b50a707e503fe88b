// Package detector provides environment detection for interactive
// affordances such as the bench progress bar.
package detector

import (
	"os"

	"golang.org/x/term"
)

// IsCI reports whether the process runs under a CI system, using the
// conventional CI environment variable.
func IsCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}

// Interactive reports whether stdout is an interactive terminal outside
// CI. Progress affordances are only shown when this is true; plain
// output remains the default everywhere else.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && !IsCI()
}
