// Package version holds build metadata injected at link time:
//
//	go build -ldflags "-X git.home.luguber.info/inful/syclconfigure/internal/version.Version=v0.3.0 \
//	  -X git.home.luguber.info/inful/syclconfigure/internal/version.GitCommit=$(git rev-parse --short HEAD) \
//	  -X git.home.luguber.info/inful/syclconfigure/internal/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package version

import "fmt"

const unknown = "unknown"

var (
	Version   = unknown
	GitCommit = unknown
	BuildTime = unknown
)

// String renders the line printed by --version. Metadata that was not
// injected is left out.
func String() string {
	s := Version
	if GitCommit != unknown && GitCommit != "" {
		s = fmt.Sprintf("%s (commit %s)", s, GitCommit)
	}
	if BuildTime != unknown && BuildTime != "" {
		s = fmt.Sprintf("%s built %s", s, BuildTime)
	}
	return s
}
