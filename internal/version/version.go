// Where: internal/version/version.go
// What: Version information retrieval.
// Why: Report the release tag and VCS revision baked into the binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version is set at link time with -ldflags "-X .../internal/version.Version=v1.2.3".
var Version = ""

var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the release version followed by the short VCS revision.
// It returns "dev" when neither is known.
func GetVersion() string {
	release := Version
	revision, modified := vcsRevision()
	if release == "" {
		if info, ok := readBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			release = info.Main.Version
		}
	}

	switch {
	case release == "" && revision == "":
		return "dev"
	case release == "":
		release = revision
	case revision != "":
		release = fmt.Sprintf("%s (%s)", release, revision)
	}
	if modified {
		release += " (dirty)"
	}
	return release
}

func vcsRevision() (string, bool) {
	info, ok := readBuildInfo()
	if !ok {
		return "", false
	}
	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	return revision, modified
}
