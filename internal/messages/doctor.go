package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check the GPS setup: driver, ports, config, and track file"

	DoctorHeader = "Checking GPS setup health..."

	DoctorCheckNameDriver   = "Driver"
	DoctorCheckNameHomebrew = "Homebrew"
	DoctorCheckNamePorts    = "Ports"
	DoctorCheckNameConfig   = "Config"
	DoctorCheckNameTrack    = "Track"

	DoctorDriverDetectedFmt  = "PL2303 device node present: %s"
	DoctorDriverMissing      = "No PL2303 device nodes found under /dev"
	DoctorDriverRecommend    = "Plug in the GPS and run `gpstrail driver` to install the driver."
	DoctorDriverProbeErrFmt  = "Failed to probe for device nodes: %v"

	DoctorBrewFoundFmt  = "Homebrew found at %s"
	DoctorBrewMissing   = "Homebrew is not installed"
	DoctorBrewRecommend = "Install Homebrew (https://brew.sh) so `gpstrail driver` can install the driver cask."

	DoctorPortsFoundFmt   = "%d serial port(s) detected"
	DoctorPortsNone       = "No serial ports detected"
	DoctorPortsRecommend  = "Check the USB connection; a working driver exposes /dev/cu.usbserial* nodes."
	DoctorPortsListErrFmt = "Failed to list serial ports: %v"

	DoctorConfigLoadedFmt  = "Config loaded from %s"
	DoctorConfigDefault    = "No config file; using built-in defaults"
	DoctorConfigBadFmt     = "Failed to load config: %v"
	DoctorConfigRecommend  = "Fix or remove ~/.config/gpstrail/config.toml."

	DoctorTrackLoadedFmt = "Track file %s has %d point(s)"
	DoctorTrackMissing   = "No track file yet"
	DoctorTrackMissingRecommend = "Run `gpstrail record` to start recording fixes."
	DoctorTrackBadFmt    = "Failed to read track file %s: %v"
	DoctorTrackRecommend = "The track file is corrupt; move it aside and record again."

	DoctorStatusOKLabel   = "[OK]  "
	DoctorStatusWarnLabel = "[WARN]"
	DoctorStatusFailLabel = "[FAIL]"
	DoctorResultLineFmt   = "%s %-9s %s\n"
	DoctorRecommendationPrefix = "       💡 "
	DoctorRecommendationIndent = "         "

	DoctorFailureSummary = "❌ Some checks failed. Please address the items above."
	DoctorFailureError   = "doctor checks failed"
	DoctorSuccessSummary = "✅ All systems go. Ready to record."
)
