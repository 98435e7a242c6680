// Package version exposes the build version stamped in by the linker:
//
//	go build -ldflags "-X github.com/rshade/greencart/pkg/version.version=v1.2.3"
package version

//nolint:gochecknoglobals // Set via -ldflags at build time.
var (
	version   = "dev"
	gitCommit = ""
	buildDate = ""
)

// GetVersion returns the build version, "dev" for unstamped builds.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from, if stamped.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp, if stamped.
func GetBuildDate() string {
	return buildDate
}
