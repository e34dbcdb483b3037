// Package version holds the build metadata injected by the release build:
//
//	-X github.com/arthur-debert/unitool/internal/version.Version=v1.2.0
//	-X github.com/arthur-debert/unitool/internal/version.Commit=abc1234
//	-X github.com/arthur-debert/unitool/internal/version.Date=2025-01-01
package version

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short is the version shown by --version. Development builds carry the
// abbreviated commit when one was injected.
func Short() string {
	if Version != "dev" || Commit == "unknown" || Commit == "" {
		return Version
	}
	commit := Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return Version + "+" + commit
}
