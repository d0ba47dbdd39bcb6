// Package version exposes the build version stamped via ldflags.
package version

// Version is set via ldflags at build time:
// -ldflags "-X github.com/duopad/duopad/internal/version.Version=x.y.z"
var Version = ""

// Get returns the version string that was set at build time via ldflags.
// Returns "0.0.1-dev" for development builds where Version is empty.
func Get() string {
	if Version == "" {
		return "0.0.1-dev"
	}
	return Version
}
