package tui

// BuildInfo holds build-time metadata for display in the TUI.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// String returns the version, or "dev" for local builds.
func (b BuildInfo) String() string {
	if b.Version == "" {
		return "dev"
	}
	if b.Commit == "" {
		return b.Version
	}
	return b.Version + " (" + b.Commit + ")"
}
