// Package platform selects the host's build profile. The profile is
// resolved once at startup; everything downstream branches on profile
// fields, never on the operating system.
package platform

import (
	"fmt"
	"runtime"

	"github.com/gracelang/mason/internal/core/domain"
	"github.com/gracelang/mason/internal/core/ports"
)

// Detect returns the build profile for the current host. Windows gets
// the multi-config profile; every other GOOS is treated as POSIX-like.
func Detect(log ports.Logger) domain.Profile {
	return detect(runtime.GOOS, log)
}

// knownPosix lists the operating systems the POSIX profile has been
// exercised on. Anything else still gets the POSIX profile, with a
// warning.
var knownPosix = map[string]bool{
	"linux":   true,
	"darwin":  true,
	"freebsd": true,
	"openbsd": true,
	"netbsd":  true,
}

func detect(goos string, log ports.Logger) domain.Profile {
	if goos == "windows" {
		return domain.WindowsProfile()
	}
	if !knownPosix[goos] {
		log.Warn(fmt.Sprintf("unrecognized operating system %q, assuming POSIX conventions (behavior may be unverified)", goos))
	}
	return domain.PosixProfile()
}
