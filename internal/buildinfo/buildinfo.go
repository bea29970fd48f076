// Package buildinfo carries the version stamped in by the linker:
//
//	-ldflags "-X vnaplot/internal/buildinfo.Version=v0.3.0 -X vnaplot/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the version, or the commit for untagged builds.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Line is the banner shown at power on.
func Line() string {
	s := "vnaplot " + Short()
	if Date != "" && Date != "unknown" {
		s += " " + Date
	}
	return s
}
