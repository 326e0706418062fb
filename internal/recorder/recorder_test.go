package recorder

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gpstrail/gpstrail/internal/track"
)

// Sentences as the BU-353N emits them: GGA with altitude and satellite
// count, then the RMC carrying the fix itself.
const (
	rmcValid      = "$GPRMC,103000,A,4807.038,N,01131.000,E,5.5,72.3,150126,,*2A"
	rmcStationary = "$GPRMC,103001,A,4807.040,N,01131.002,E,0.0,0.0,150126,,*10"
	rmcVoid       = "$GPRMC,103002,V,4807.038,N,01131.000,E,5.5,72.3,150126,,*3F"
	rmcNoLock     = "$GPRMC,103003,A,0000.000,N,00000.000,E,0.0,0.0,150126,,*1D"
	ggaValid      = "$GPGGA,103000,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*48"
	ggaNoLock     = "$GPGGA,103001,0000.000,N,00000.000,E,0,00,,,M,,M,,*5E"
	ggaNoExtras   = "$GPGGA,103002,4807.038,N,01131.000,E,1,00,0.9,0.0,M,46.9,M,,*42"
)

func stream(lines ...string) io.Reader {
	return strings.NewReader(strings.Join(lines, "\r\n") + "\r\n")
}

type capture struct {
	saved [][]track.Fix
}

func (c *capture) save(fixes []track.Fix) error {
	c.saved = append(c.saved, append([]track.Fix(nil), fixes...))
	return nil
}

func TestRunRecordsFixes(t *testing.T) {
	var saved capture
	var out strings.Builder

	recorded, err := Run(context.Background(), stream(ggaValid, rmcValid, rmcStationary), Options{
		Save: saved.save,
		Out:  &out,
	})

	require.NoError(t, err)
	require.Equal(t, 2, recorded)
	require.Len(t, saved.saved, 2)

	fixes := saved.saved[1]
	require.Len(t, fixes, 2)

	first := fixes[0]
	require.Equal(t, "2026-01-15T10:30:00Z", first.Timestamp)
	require.InDelta(t, 48.1173, first.Lat, 1e-8)
	require.InDelta(t, 11.51666667, first.Lon, 1e-8)
	require.NotNil(t, first.SpeedKnots)
	require.InDelta(t, 5.5, *first.SpeedKnots, 1e-9)
	require.NotNil(t, first.CourseDeg)
	require.InDelta(t, 72.3, *first.CourseDeg, 1e-9)
	require.NotNil(t, first.AltitudeM, "GGA extras should attach to the next fix")
	require.InDelta(t, 545.4, *first.AltitudeM, 1e-9)
	require.NotNil(t, first.NumSats)
	require.Equal(t, 8, *first.NumSats)

	second := fixes[1]
	require.Equal(t, "2026-01-15T10:30:01Z", second.Timestamp)
	require.Nil(t, second.SpeedKnots, "zero speed is absent, not 0.0")
	require.Nil(t, second.CourseDeg)
	require.Nil(t, second.AltitudeM, "staged GGA extras apply to one fix only")
	require.Nil(t, second.NumSats)

	require.Contains(t, out.String(), "[   1]")
	require.Contains(t, out.String(), "[   2]")
	require.Contains(t, out.String(), "5.5 kn")
}

func TestRunRejectsUnusableSentences(t *testing.T) {
	var saved capture

	recorded, err := Run(context.Background(), stream(
		"garbage before the stream settles",
		"$GPRMC,bad checksum*00",
		rmcVoid,
		rmcNoLock,
		ggaNoLock,
	), Options{Save: saved.save, Out: io.Discard})

	require.NoError(t, err)
	require.Zero(t, recorded)
	require.Empty(t, saved.saved)
}

func TestRunZeroPositionGGADoesNotStage(t *testing.T) {
	var saved capture

	recorded, err := Run(context.Background(), stream(ggaNoLock, rmcValid), Options{
		Save: saved.save,
		Out:  io.Discard,
	})

	require.NoError(t, err)
	require.Equal(t, 1, recorded)
	require.Nil(t, saved.saved[0][0].AltitudeM)
	require.Nil(t, saved.saved[0][0].NumSats)
}

func TestRunZeroGGAExtrasAreAbsent(t *testing.T) {
	var saved capture

	recorded, err := Run(context.Background(), stream(ggaNoExtras, rmcValid), Options{
		Save: saved.save,
		Out:  io.Discard,
	})

	require.NoError(t, err)
	require.Equal(t, 1, recorded)
	require.Nil(t, saved.saved[0][0].AltitudeM, "zero altitude means no altitude")
	require.Nil(t, saved.saved[0][0].NumSats)
}

func TestRunStopsAtCount(t *testing.T) {
	var saved capture
	var out strings.Builder

	recorded, err := Run(context.Background(), stream(rmcValid, rmcStationary, rmcValid), Options{
		Count: 2,
		Save:  saved.save,
		Out:   &out,
	})

	require.NoError(t, err)
	require.Equal(t, 2, recorded)
	require.Len(t, saved.saved, 2)
	require.Contains(t, out.String(), "Reached 2 fixes")
}

func TestRunAppendsToExistingTrack(t *testing.T) {
	existing := []track.Fix{{Timestamp: "2026-01-15T09:00:00Z", Lat: 48, Lon: 11}}
	var saved capture

	recorded, err := Run(context.Background(), stream(rmcValid), Options{
		Existing: existing,
		Save:     saved.save,
		Out:      io.Discard,
	})

	require.NoError(t, err)
	require.Equal(t, 1, recorded)
	require.Len(t, saved.saved[0], 2)
	require.Equal(t, existing[0], saved.saved[0][0])
}

func TestRunSaveErrorStops(t *testing.T) {
	saveErr := errors.New("disk full")

	recorded, err := Run(context.Background(), stream(rmcValid, rmcStationary), Options{
		Save: func([]track.Fix) error { return saveErr },
		Out:  io.Discard,
	})

	require.ErrorIs(t, err, saveErr)
	require.Zero(t, recorded)
}

func TestRunCanceledContextStopsCleanly(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	recorded, err := Run(ctx, stream(rmcValid, rmcStationary), Options{
		Save: (&capture{}).save,
		Out:  io.Discard,
	})

	require.NoError(t, err)
	require.Zero(t, recorded)
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestRunReadErrorAfterCancelIsCleanStop(t *testing.T) {
	readErr := errors.New("port closed")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, failingReader{err: readErr}, Options{
		Save: (&capture{}).save,
		Out:  io.Discard,
	})

	require.NoError(t, err, "a read error after cancellation is how recording stops")
}

func TestRunReadErrorWithoutCancelPropagates(t *testing.T) {
	readErr := errors.New("device unplugged")

	_, err := Run(context.Background(), failingReader{err: readErr}, Options{
		Save: (&capture{}).save,
		Out:  io.Discard,
	})

	require.ErrorIs(t, err, readErr)
}

func TestRunFallsBackToWallClock(t *testing.T) {
	// Sentence with a fix but no date or time fields.
	const rmcNoDate = "$GPRMC,,A,4807.038,N,01131.000,E,5.5,72.3,,,*29"

	fixed := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	var saved capture

	recorded, err := Run(context.Background(), stream(rmcNoDate), Options{
		Save: saved.save,
		Out:  io.Discard,
		Now:  func() time.Time { return fixed },
	})

	require.NoError(t, err)
	require.Equal(t, 1, recorded)
	require.Equal(t, fixed.Format(track.TimestampLayout), saved.saved[0][0].Timestamp)
}
