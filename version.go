package registro

var (
	// Version is the library semantic version.
	Version = "v0.1.0"
	// GitCommit is the git SHA (inject via -ldflags at build time).
	GitCommit = "unknown"
	// BuildDate is the build timestamp (inject via -ldflags).
	BuildDate = "unknown"
)

// userAgent identifies the library on outgoing requests.
func userAgent() string {
	return "registro/" + Version
}
