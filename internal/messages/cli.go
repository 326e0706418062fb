package messages

// CLI messages for the root command and version output.
const (
	// RootUse is the CLI command name.
	RootUse = "gpstrail"
	// RootShort is the short description for the root command.
	RootShort = "Record and visualize GPS tracks from a BU-353N USB receiver"
	RootLong  = "gpstrail records NMEA fixes from a BU-353N USB GPS (Prolific PL2303 chipset)\n" +
		"into a YAML track file and renders the track as an interactive map or a plot.\n" +
		"Run `gpstrail driver` first if the receiver's USB-serial driver is not installed."

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"
)
