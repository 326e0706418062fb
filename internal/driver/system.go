package driver

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// System abstracts the host probes and side effects used by the install flow.
// Package-local so the flow can be unit tested without touching /dev, brew,
// or the App Store.
type System interface {
	Glob(pattern string) ([]string, error)
	LookPath(file string) (string, error)
	ProductVersion() (string, error)
	RunInstall(name string, args ...string) error
	OpenURL(url string) error
}

// RealSystem implements System against the host.
type RealSystem struct{}

// Glob returns the names of all files matching pattern.
func (RealSystem) Glob(pattern string) ([]string, error) {
	return filepath.Glob(pattern)
}

// LookPath searches for an executable in the directories named by PATH.
func (RealSystem) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// ProductVersion returns the macOS version string from sw_vers.
func (RealSystem) ProductVersion() (string, error) {
	out, err := exec.Command("sw_vers", "-productVersion").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// RunInstall runs an installer command with its output attached to the
// terminal, so Homebrew progress and sudo prompts reach the user directly.
func (RealSystem) RunInstall(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// OpenURL opens a URL (including custom schemes) with the platform opener.
func (RealSystem) OpenURL(url string) error {
	return exec.Command("open", url).Run()
}
