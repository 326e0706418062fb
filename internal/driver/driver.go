// Package driver detects the Prolific PL2303 USB-serial driver the BU-353N
// GPS needs on macOS, and installs it via Homebrew or points at the App
// Store fallback when Homebrew is unavailable.
package driver

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/gpstrail/gpstrail/internal/messages"
	"github.com/gpstrail/gpstrail/internal/status"
)

const (
	// DeviceDir is where macOS exposes serial device nodes.
	DeviceDir = "/dev"
	// BrewCask is the Homebrew cask carrying the Prolific driver.
	BrewCask = "prolific-pl2303"

	// modernSettingsMajor is the first macOS release whose driver approval
	// moved from System Preferences to System Settings.
	modernSettingsMajor = 13

	appStoreDeepLink = "macappstore://apps.apple.com/app/id1624835354"
	appStoreWebURL   = "https://apps.apple.com/app/id1624835354"
)

// DevicePatterns are the node names the PL2303 driver creates under DeviceDir.
var DevicePatterns = []string{"cu.usbserial*", "cu.PL*"}

// Options controls the install flow's interactive behavior.
type Options struct {
	// AssumeYes installs without asking, as every non-interactive run does.
	AssumeYes bool
	// Confirm asks before running the Homebrew install. A nil Confirm
	// behaves like AssumeYes.
	Confirm func(prompt string) (bool, error)
}

// Run executes the detect-or-install flow, writing progress to out.
//
// The flow short-circuits with success when a PL2303 device node already
// exists. Otherwise it installs the driver cask when Homebrew is present
// (a failed install is fatal), or prints the two manual install options and
// opens the App Store listing when it is not (open failures are tolerated).
func Run(sys System, out io.Writer, opts Options) error {
	status.Info(out, messages.DriverProbingFmt, DeviceDir)
	devices, err := DetectDevices(sys)
	if err != nil {
		return err
	}
	if len(devices) > 0 {
		status.OK(out, messages.DriverDetectedFmt, devices[0])
		return nil
	}
	status.Warn(out, messages.DriverNotDetected)

	modern := useModernSettingsWording(sys, out)

	if _, err := sys.LookPath("brew"); err == nil {
		return installWithBrew(sys, out, opts, modern)
	}
	printManualFallback(sys, out)
	return nil
}

// DetectDevices returns the PL2303 device nodes currently present, sorted.
func DetectDevices(sys System) ([]string, error) {
	var devices []string
	for _, pattern := range DevicePatterns {
		matches, err := sys.Glob(DeviceDir + "/" + pattern)
		if err != nil {
			return nil, fmt.Errorf("probe %s: %w", pattern, err)
		}
		devices = append(devices, matches...)
	}
	sort.Strings(devices)
	return devices, nil
}

// ParseMajorVersion extracts the leading numeric component of a version
// string such as "14.2.1".
func ParseMajorVersion(version string) (int, error) {
	head, _, _ := strings.Cut(strings.TrimSpace(version), ".")
	major, err := strconv.Atoi(head)
	if err != nil {
		return 0, fmt.Errorf("parse major version from %q: %w", version, err)
	}
	return major, nil
}

// useModernSettingsWording decides between System Settings (macOS 13+) and
// System Preferences wording. An unreadable or unparsable version is treated
// as a current release, so the printed steps stay correct on anything new
// enough to break the probe.
func useModernSettingsWording(sys System, out io.Writer) bool {
	version, err := sys.ProductVersion()
	if err != nil {
		status.Warn(out, messages.DriverVersionProbeFailedFmt, err)
		return true
	}
	major, err := ParseMajorVersion(version)
	if err != nil {
		status.Warn(out, messages.DriverVersionParseFailedFmt, version)
		return true
	}
	return major >= modernSettingsMajor
}

func installWithBrew(sys System, out io.Writer, opts Options, modern bool) error {
	status.Info(out, messages.DriverBrewDetected)

	if !opts.AssumeYes && opts.Confirm != nil {
		ok, err := opts.Confirm(messages.DriverInstallPrompt)
		if err != nil {
			return err
		}
		if !ok {
			status.Info(out, messages.DriverInstallSkipped)
			return nil
		}
	}

	status.Info(out, messages.DriverInstallingFmt, "brew install --cask "+BrewCask)
	if err := sys.RunInstall("brew", "install", "--cask", BrewCask); err != nil {
		return fmt.Errorf(messages.DriverInstallErrFmt, BrewCask, err)
	}
	status.OK(out, messages.DriverInstalled)

	status.Info(out, messages.DriverApprovalHeader)
	if modern {
		status.Plain(out, messages.DriverApprovalModern)
	} else {
		status.Plain(out, messages.DriverApprovalLegacy)
	}
	status.Info(out, messages.DriverReplugNote)
	return nil
}

// printManualFallback covers the no-Homebrew path. The App Store open is
// best effort: the printed instructions are complete without it.
func printManualFallback(sys System, out io.Writer) {
	status.Warn(out, messages.DriverBrewMissing)
	status.Info(out, messages.DriverManualHeader)
	status.Plain(out, messages.DriverManualBrew)
	status.Plain(out, messages.DriverManualStore)

	status.Info(out, messages.DriverOpeningStore)
	if err := sys.OpenURL(appStoreDeepLink); err != nil {
		if err := sys.OpenURL(appStoreWebURL); err != nil {
			status.Warn(out, messages.DriverOpenErrFmt, err, appStoreWebURL)
		}
	}
}
