// Package track stores recorded GPS fixes in a YAML track file.
package track

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// TimestampLayout is the wire format for fix timestamps (UTC, RFC 3339).
const TimestampLayout = time.RFC3339

// Fix is a single recorded GPS position. Optional fields are pointers so a
// fix without speed or altitude round-trips without inventing zeros.
type Fix struct {
	Timestamp  string   `yaml:"timestamp"`
	Lat        float64  `yaml:"lat"`
	Lon        float64  `yaml:"lon"`
	SpeedKnots *float64 `yaml:"speed_knots,omitempty"`
	CourseDeg  *float64 `yaml:"course_deg,omitempty"`
	AltitudeM  *float64 `yaml:"altitude_m,omitempty"`
	NumSats    *int     `yaml:"num_sats,omitempty"`
}

// Time parses the fix timestamp. A zero time is returned when it is malformed.
func (f Fix) Time() time.Time {
	t, err := time.Parse(TimestampLayout, f.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Load reads fixes from path. A missing file is an empty track, not an error.
// Entries that are not a fix list fail with a parse error.
func Load(path string) ([]Fix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read track %s: %w", path, err)
	}

	var fixes []Fix
	if err := yaml.Unmarshal(data, &fixes); err != nil {
		return nil, fmt.Errorf("parse track %s: %w", path, err)
	}
	return fixes, nil
}

// Save writes the full fix list to path, replacing any previous content.
// The recorder rewrites the file after every fix so an interrupt never loses
// recorded points.
func Save(path string, fixes []Fix) error {
	data, err := yaml.Marshal(fixes)
	if err != nil {
		return fmt.Errorf("encode track: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write track %s: %w", path, err)
	}
	return nil
}
