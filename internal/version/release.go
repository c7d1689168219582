package version

var (
	// PackageName is the name of the package.
	PackageName = "rocmclean"

	// Version is the version of the package, set at build time with ldflags.
	Version = "undefined"

	// CommitHash is the git commit the build is based on.
	CommitHash = "undefined"

	// BuildDate is the date the build was made.
	BuildDate = "undefined"
)
