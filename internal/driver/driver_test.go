package driver

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gpstrail/gpstrail/internal/messages"
)

type fakeSystem struct {
	globs      map[string][]string
	globErr    error
	brewPath   string
	brewErr    error
	version    string
	versionErr error
	installErr error
	installs   [][]string
	openErrs   map[string]error
	opened     []string
}

func (f *fakeSystem) Glob(pattern string) ([]string, error) {
	if f.globErr != nil {
		return nil, f.globErr
	}
	return f.globs[pattern], nil
}

func (f *fakeSystem) LookPath(file string) (string, error) {
	if f.brewErr != nil {
		return "", f.brewErr
	}
	return f.brewPath, nil
}

func (f *fakeSystem) ProductVersion() (string, error) {
	if f.versionErr != nil {
		return "", f.versionErr
	}
	return f.version, nil
}

func (f *fakeSystem) RunInstall(name string, args ...string) error {
	f.installs = append(f.installs, append([]string{name}, args...))
	return f.installErr
}

func (f *fakeSystem) OpenURL(url string) error {
	f.opened = append(f.opened, url)
	return f.openErrs[url]
}

func withBrew(sys *fakeSystem) *fakeSystem {
	sys.brewPath = "/opt/homebrew/bin/brew"
	return sys
}

func withoutBrew(sys *fakeSystem) *fakeSystem {
	sys.brewErr = errors.New("executable file not found in $PATH")
	return sys
}

func TestRunDetectsExistingDevice(t *testing.T) {
	sys := withBrew(&fakeSystem{
		globs: map[string][]string{
			"/dev/cu.usbserial*": {"/dev/cu.usbserial-1410"},
		},
	})
	var out bytes.Buffer

	err := Run(sys, &out, Options{})

	require.NoError(t, err)
	require.Contains(t, out.String(), "/dev/cu.usbserial-1410")
	require.Empty(t, sys.installs, "detection should short-circuit before any install")
	require.Empty(t, sys.opened)
}

func TestRunInstallsWithBrew(t *testing.T) {
	tests := []struct {
		name        string
		version     string
		wantWording string
	}{
		{name: "modern settings wording", version: "14.2.1", wantWording: "System Settings"},
		{name: "boundary release is modern", version: "13.0", wantWording: "System Settings"},
		{name: "legacy preferences wording", version: "12.7.4", wantWording: "System Preferences"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := withBrew(&fakeSystem{version: tt.version})
			var out bytes.Buffer

			err := Run(sys, &out, Options{AssumeYes: true})

			require.NoError(t, err)
			require.Equal(t, [][]string{{"brew", "install", "--cask", BrewCask}}, sys.installs)
			require.Contains(t, out.String(), tt.wantWording)
			require.Contains(t, out.String(), messages.DriverReplugNote)
		})
	}
}

func TestRunBrewInstallFailureIsFatal(t *testing.T) {
	sys := withBrew(&fakeSystem{version: "14.0"})
	sys.installErr = errors.New("exit status 1")
	var out bytes.Buffer

	err := Run(sys, &out, Options{AssumeYes: true})

	require.Error(t, err)
	require.Contains(t, err.Error(), "brew install "+BrewCask)
	require.NotContains(t, out.String(), messages.DriverInstalled)
}

func TestRunVersionProbeFailureAssumesModern(t *testing.T) {
	sys := withBrew(&fakeSystem{versionErr: errors.New("sw_vers: not found")})
	var out bytes.Buffer

	err := Run(sys, &out, Options{AssumeYes: true})

	require.NoError(t, err)
	require.Contains(t, out.String(), "System Settings")
}

func TestRunVersionParseFailureAssumesModern(t *testing.T) {
	sys := withBrew(&fakeSystem{version: "Ventura"})
	var out bytes.Buffer

	err := Run(sys, &out, Options{AssumeYes: true})

	require.NoError(t, err)
	require.Contains(t, out.String(), "System Settings")
}

func TestRunConfirmDeclinedSkipsInstall(t *testing.T) {
	sys := withBrew(&fakeSystem{version: "14.0"})
	var out bytes.Buffer

	err := Run(sys, &out, Options{
		Confirm: func(string) (bool, error) { return false, nil },
	})

	require.NoError(t, err)
	require.Empty(t, sys.installs)
	require.Contains(t, out.String(), messages.DriverInstallSkipped)
}

func TestRunConfirmErrorAborts(t *testing.T) {
	sys := withBrew(&fakeSystem{version: "14.0"})
	confirmErr := errors.New("terminal gone")

	err := Run(sys, &bytes.Buffer{}, Options{
		Confirm: func(string) (bool, error) { return false, confirmErr },
	})

	require.ErrorIs(t, err, confirmErr)
	require.Empty(t, sys.installs)
}

func TestRunAssumeYesBypassesConfirm(t *testing.T) {
	sys := withBrew(&fakeSystem{version: "14.0"})
	called := false

	err := Run(sys, &bytes.Buffer{}, Options{
		AssumeYes: true,
		Confirm:   func(string) (bool, error) { called = true; return false, nil },
	})

	require.NoError(t, err)
	require.False(t, called)
	require.Len(t, sys.installs, 1)
}

func TestRunManualFallbackOpensStore(t *testing.T) {
	sys := withoutBrew(&fakeSystem{version: "14.0"})
	var out bytes.Buffer

	err := Run(sys, &out, Options{})

	require.NoError(t, err)
	require.Equal(t, []string{appStoreDeepLink}, sys.opened)
	require.Contains(t, out.String(), messages.DriverManualBrew)
	require.Contains(t, out.String(), messages.DriverManualStore)
}

func TestRunManualFallbackRetriesWebURL(t *testing.T) {
	sys := withoutBrew(&fakeSystem{version: "14.0"})
	sys.openErrs = map[string]error{appStoreDeepLink: errors.New("no handler")}

	err := Run(sys, &bytes.Buffer{}, Options{})

	require.NoError(t, err)
	require.Equal(t, []string{appStoreDeepLink, appStoreWebURL}, sys.opened)
}

func TestRunManualFallbackToleratesOpenFailure(t *testing.T) {
	sys := withoutBrew(&fakeSystem{version: "14.0"})
	sys.openErrs = map[string]error{
		appStoreDeepLink: errors.New("no handler"),
		appStoreWebURL:   errors.New("no browser"),
	}
	var out bytes.Buffer

	err := Run(sys, &out, Options{})

	require.NoError(t, err, "a failed App Store open must not fail the command")
	require.Contains(t, out.String(), appStoreWebURL)
}

func TestDetectDevices(t *testing.T) {
	sys := &fakeSystem{
		globs: map[string][]string{
			"/dev/cu.usbserial*": {"/dev/cu.usbserial-1410"},
			"/dev/cu.PL*":        {"/dev/cu.PL2303-0001"},
		},
	}

	devices, err := DetectDevices(sys)

	require.NoError(t, err)
	require.Equal(t, []string{"/dev/cu.PL2303-0001", "/dev/cu.usbserial-1410"}, devices)
}

func TestDetectDevicesGlobError(t *testing.T) {
	sys := &fakeSystem{globErr: errors.New("permission denied")}

	_, err := DetectDevices(sys)

	require.Error(t, err)
}

func TestParseMajorVersion(t *testing.T) {
	tests := []struct {
		version string
		want    int
		wantErr bool
	}{
		{version: "14.2.1", want: 14},
		{version: "13", want: 13},
		{version: "12.7.4", want: 12},
		{version: " 13.1\n", want: 13},
		{version: "10.15.7", want: 10},
		{version: "Ventura", wantErr: true},
		{version: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			got, err := ParseMajorVersion(tt.version)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
