// Package version exposes the build identity of the gocontract binary.
// It deliberately imports nothing so any package can report a version
// without creating a cycle.
package version

// Populated at release time through -ldflags; source builds keep the
// placeholders below.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// IsDevBuild reports whether this binary was built from source rather
// than cut as a release.
func IsDevBuild() bool {
	return Version == "dev"
}
