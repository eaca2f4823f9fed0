package internal

import (
	"fmt"
	"runtime"
	"strings"
)

var (
	// Version is the git tag that this was built from.
	Version = "unknown"
	// GitCommit is the commit that this was built from.
	GitCommit = "unknown"
	// BuildTime is the time the binary was built, set through ldflags.
	BuildTime = "unknown"
)

// FullVersion returns the multi-line version report printed by --version.
func FullVersion() string {
	res := []string{
		"docker-inspect2compose",
		fmt.Sprintf(" Version:     %s", Version),
		fmt.Sprintf(" Git commit:  %s", GitCommit),
		fmt.Sprintf(" Built:       %s", BuildTime),
		fmt.Sprintf(" Go version:  %s", runtime.Version()),
		fmt.Sprintf(" OS/Arch:     %s/%s", runtime.GOOS, runtime.GOARCH),
	}
	return strings.Join(res, "\n")
}
