// Package version provides build-time version information.
// The variables are set via ldflags during build.
package version

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func Info() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}
}

// String is the one-line form printed by sitegen --version.
func (v VersionInfo) String() string {
	return v.Version + " (" + v.GitCommit + ", built " + v.BuildTime + ")"
}

type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
}
