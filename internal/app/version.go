package app

import "fmt"

// Build metadata, overridden with
// -ldflags "-X github.com/heartmarshall/studybuddy/internal/app.Version=1.0.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion reports the version shown by `studybuddy --version` and the
// server startup log.
func BuildVersion() string {
	if Commit == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (%s, %s)", Version, Commit, BuildTime)
}
