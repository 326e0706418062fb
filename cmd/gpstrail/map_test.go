package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gpstrail/gpstrail/internal/track"
)

func writeTrack(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "track.yaml")
	require.NoError(t, track.Save(path, []track.Fix{
		{Timestamp: "2026-01-15T10:30:00Z", Lat: 48.1173, Lon: 11.5167},
		{Timestamp: "2026-01-15T10:30:10Z", Lat: 48.1180, Lon: 11.5170},
	}))
	return path
}

func TestMapCmdRendersAndOpens(t *testing.T) {
	input := writeTrack(t)
	output := filepath.Join(t.TempDir(), "map.html")

	var opened string
	stub(t, &openInBrowser, func(path string) error {
		opened = path
		return nil
	})

	out, err := runCommand(t, "map", "-i", input, "-o", output)

	require.NoError(t, err)
	require.Contains(t, out, "Saved 2 points")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Contains(t, string(data), "leaflet")

	abs, err := filepath.Abs(output)
	require.NoError(t, err)
	require.Equal(t, abs, opened)
}

func TestMapCmdNoOpen(t *testing.T) {
	input := writeTrack(t)
	output := filepath.Join(t.TempDir(), "map.html")

	stub(t, &openInBrowser, func(string) error {
		t.Fatal("browser must not open with --no-open")
		return nil
	})

	_, err := runCommand(t, "map", "-i", input, "-o", output, "--no-open")

	require.NoError(t, err)
	_, err = os.Stat(output)
	require.NoError(t, err)
}

func TestMapCmdBrowserFailureIsTolerated(t *testing.T) {
	input := writeTrack(t)
	output := filepath.Join(t.TempDir(), "map.html")
	stub(t, &openInBrowser, func(string) error { return errors.New("no browser") })

	out, err := runCommand(t, "map", "-i", input, "-o", output)

	require.NoError(t, err, "an unopenable browser must not fail the command")
	require.Contains(t, out, "Could not open the browser")
}

func TestMapCmdMissingTrack(t *testing.T) {
	_, err := runCommand(t, "map",
		"-i", filepath.Join(t.TempDir(), "missing.yaml"),
		"-o", filepath.Join(t.TempDir(), "map.html"), "--no-open")

	require.Error(t, err)
	require.Contains(t, err.Error(), "no GPS points")
}
