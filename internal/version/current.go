// Package version provides the build version of the tool.
package version

import "fmt"

// Build information, overridden at link time.
var (
	version = "0.1.0"
	commit  = ""
)

// Info describes the build.
type Info struct {
	Version string
	Commit  string
}

// Current returns the current build info.
func Current() Info {
	return Info{Version: version, Commit: commit}
}

func (v Info) String() string {
	if v.Commit == "" {
		return v.Version
	}
	return fmt.Sprintf("%s-%s", v.Version, v.Commit)
}
