package messages

// Driver messages for the driver install/detect command.
const (
	// DriverUse is the driver command name.
	DriverUse   = "driver"
	DriverShort = "Detect the PL2303 USB-serial driver and install it if missing"
	DriverLong  = "Check whether the Prolific PL2303 driver for the BU-353N GPS is installed\n" +
		"by probing /dev for its device nodes. If none are found, install the driver\n" +
		"via Homebrew, or print manual install options when Homebrew is unavailable."

	DriverFlagYes = "Install via Homebrew without prompting for confirmation"

	DriverProbingFmt  = "Looking for PL2303 device nodes under %s..."
	DriverDetectedFmt = "Driver is installed and the GPS is connected: %s"
	DriverNotDetected = "No PL2303 device nodes found. The driver is missing, or the GPS is unplugged."

	DriverVersionProbeFailedFmt = "Could not read the macOS version (%v); assuming a current release."
	DriverVersionParseFailedFmt = "Could not parse macOS version %q; assuming a current release."

	DriverBrewDetected   = "Homebrew found; the driver can be installed automatically."
	DriverInstallPrompt  = "Install the prolific-pl2303 cask with Homebrew now?"
	DriverInstallYes     = "Install"
	DriverInstallNo      = "Not now"
	DriverInstallSkipped = "Install skipped. Re-run `gpstrail driver` when you are ready."
	DriverInstallingFmt  = "Running `%s`..."
	DriverInstalled      = "Driver cask installed."
	DriverInstallErrFmt  = "brew install %s: %w"

	DriverApprovalHeader = "macOS blocks third-party drivers until you approve them:"
	DriverApprovalModern = "  1. Open System Settings > Privacy & Security.\n" +
		"  2. Scroll to the Security section and click Allow for the Prolific system extension.\n" +
		"  3. Restart if macOS asks for it."
	DriverApprovalLegacy = "  1. Open System Preferences > Security & Privacy > General.\n" +
		"  2. Click Allow next to the blocked Prolific kernel extension.\n" +
		"  3. Restart if macOS asks for it."
	DriverReplugNote = "Afterwards unplug and replug the GPS, then run `gpstrail driver` to verify."

	DriverBrewMissing  = "Homebrew is not installed, so the driver can't be installed automatically."
	DriverManualHeader = "Two ways to install it manually:"
	DriverManualBrew   = "  Option 1: install Homebrew (https://brew.sh), then re-run `gpstrail driver`."
	DriverManualStore  = "  Option 2: install the \"PL2303 Serial\" app from the Mac App Store."
	DriverOpeningStore = "Opening the App Store listing..."
	DriverOpenErrFmt   = "Could not open the App Store listing (%v). Open it yourself: %s"
)
