package cli

import (
	"fmt"
	"runtime"
)

// Set at build time with -ldflags "-X".
var (
	Version = "dev"
	Commit  = "none"
)

func VersionInfo() string {
	return fmt.Sprintf("version %s (commit %s, %s %s/%s)", Version, Commit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
