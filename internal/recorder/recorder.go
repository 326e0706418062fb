// Package recorder turns a stream of NMEA 0183 sentences into recorded fixes.
//
// The BU-353N interleaves several sentence types. RMC carries the primary
// fix (date, time, position, speed, course); GGA carries altitude and
// satellite count. A GGA with a position stages its extras for the next RMC
// fix, mirroring how the receiver emits the pair.
package recorder

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	nmea "github.com/adrianmo/go-nmea"

	"github.com/gpstrail/gpstrail/internal/messages"
	"github.com/gpstrail/gpstrail/internal/track"
)

// SaveFunc persists the full fix list. It runs after every recorded fix so
// an interrupt never loses points.
type SaveFunc func(fixes []track.Fix) error

// Options configures a recording run.
type Options struct {
	// Count stops recording after N new fixes; 0 records until r ends.
	Count int
	// Existing is the previously recorded track being appended to.
	Existing []track.Fix
	// Save persists the track after each fix.
	Save SaveFunc
	// Out receives per-fix progress lines.
	Out io.Writer
	// Now is the fallback clock for sentences without a usable date.
	// Defaults to time.Now.
	Now func() time.Time
}

// Run reads NMEA sentences from r until the reader ends, ctx is canceled,
// or Count fixes have been recorded. It returns the number of new fixes.
//
// Cancellation works by the caller closing the underlying port, which fails
// the pending read; a read error after cancellation is a clean stop.
func Run(ctx context.Context, r io.Reader, opts Options) (int, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	fixes := append([]track.Fix(nil), opts.Existing...)
	recorded := 0
	var staged *ggaExtras

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return recorded, nil
		}
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "$") {
			continue
		}
		sentence, err := nmea.Parse(line)
		if err != nil {
			continue
		}

		switch m := sentence.(type) {
		case nmea.GGA:
			if s := stageGGA(m); s != nil {
				staged = s
			}
		case nmea.RMC:
			fix, ok := fixFromRMC(m, now)
			if !ok {
				continue
			}
			if staged != nil {
				fix.AltitudeM = staged.altitudeM
				fix.NumSats = staged.numSats
				staged = nil
			}

			fixes = append(fixes, fix)
			if err := opts.Save(fixes); err != nil {
				return recorded, err
			}
			recorded++
			printFix(opts.Out, recorded, fix)

			if opts.Count > 0 && recorded >= opts.Count {
				_, _ = fmt.Fprintf(opts.Out, messages.RecordCountReachedFmt+"\n", opts.Count)
				return recorded, nil
			}
		}
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		return recorded, err
	}
	return recorded, nil
}

type ggaExtras struct {
	altitudeM *float64
	numSats   *int
}

// stageGGA extracts altitude and satellite count from a GGA sentence that
// carries a position. Zero values are treated as absent.
func stageGGA(m nmea.GGA) *ggaExtras {
	if m.Latitude == 0 && m.Longitude == 0 {
		return nil
	}
	s := &ggaExtras{}
	if m.Altitude != 0 {
		alt := m.Altitude
		s.altitudeM = &alt
	}
	if m.NumSatellites != 0 {
		sats := int(m.NumSatellites)
		s.numSats = &sats
	}
	return s
}

// fixFromRMC builds a fix from an RMC sentence, rejecting void fixes and
// the 0,0 position the receiver reports before its first lock.
func fixFromRMC(m nmea.RMC, now func() time.Time) (track.Fix, bool) {
	if m.Validity != nmea.ValidRMC {
		return track.Fix{}, false
	}
	if m.Latitude == 0 && m.Longitude == 0 {
		return track.Fix{}, false
	}

	fix := track.Fix{
		Timestamp: rmcTime(m, now).Format(track.TimestampLayout),
		Lat:       round(m.Latitude, 8),
		Lon:       round(m.Longitude, 8),
	}
	if m.Speed != 0 {
		v := round(m.Speed, 3)
		fix.SpeedKnots = &v
	}
	if m.Course != 0 {
		v := round(m.Course, 2)
		fix.CourseDeg = &v
	}
	return fix, true
}

// rmcTime combines the RMC date and time fields into a UTC timestamp,
// falling back to the wall clock when either is unusable.
func rmcTime(m nmea.RMC, now func() time.Time) time.Time {
	if m.Date.Valid && m.Time.Valid {
		return time.Date(2000+m.Date.YY, time.Month(m.Date.MM), m.Date.DD,
			m.Time.Hour, m.Time.Minute, m.Time.Second,
			m.Time.Millisecond*int(time.Millisecond), time.UTC)
	}
	return now().UTC()
}

func printFix(out io.Writer, n int, fix track.Fix) {
	line := fmt.Sprintf(messages.RecordFixLineFmt, n, fix.Timestamp, fix.Lat, fix.Lon)
	if fix.SpeedKnots != nil {
		line += fmt.Sprintf(messages.RecordFixSpeedFmt, *fix.SpeedKnots)
	}
	_, _ = fmt.Fprintln(out, line)
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
