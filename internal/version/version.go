package version

// Version is the toolkit version reported by --version.
// Release builds overwrite it via -ldflags "-X gtfq/internal/version.Version=...".
var Version = "0.2.0-dev"
