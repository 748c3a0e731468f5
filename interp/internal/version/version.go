package version

import "fmt"

// Overridden at release time via -ldflags.
var (
	Semver = "0.1.0-dev"
	Commit = ""
)

func String() string {
	if Commit == "" {
		return fmt.Sprintf("gama %s", Semver)
	}
	return fmt.Sprintf("gama %s (%s)", Semver, Commit)
}
