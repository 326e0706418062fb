package doctor

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gpstrail/gpstrail/internal/config"
	"github.com/gpstrail/gpstrail/internal/driver"
	"github.com/gpstrail/gpstrail/internal/messages"
	"github.com/gpstrail/gpstrail/internal/serialport"
	"github.com/gpstrail/gpstrail/internal/track"
)

// CheckDriver reports whether PL2303 device nodes are present.
func CheckDriver(sys driver.System) []Result {
	devices, err := driver.DetectDevices(sys)
	if err != nil {
		return []Result{{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameDriver,
			Message:   fmt.Sprintf(messages.DoctorDriverProbeErrFmt, err),
		}}
	}
	if len(devices) == 0 {
		return []Result{{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameDriver,
			Message:        messages.DoctorDriverMissing,
			Recommendation: messages.DoctorDriverRecommend,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameDriver,
		Message:   fmt.Sprintf(messages.DoctorDriverDetectedFmt, strings.Join(devices, ", ")),
	}}
}

// CheckHomebrew reports whether brew is on PATH.
func CheckHomebrew(sys driver.System) []Result {
	path, err := sys.LookPath("brew")
	if err != nil {
		return []Result{{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameHomebrew,
			Message:        messages.DoctorBrewMissing,
			Recommendation: messages.DoctorBrewRecommend,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameHomebrew,
		Message:   fmt.Sprintf(messages.DoctorBrewFoundFmt, path),
	}}
}

// CheckPorts reports whether any serial ports are visible at all.
func CheckPorts(list func() ([]serialport.Info, error)) []Result {
	ports, err := list()
	if err != nil {
		return []Result{{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNamePorts,
			Message:   fmt.Sprintf(messages.DoctorPortsListErrFmt, err),
		}}
	}
	if len(ports) == 0 {
		return []Result{{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNamePorts,
			Message:        messages.DoctorPortsNone,
			Recommendation: messages.DoctorPortsRecommend,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNamePorts,
		Message:   fmt.Sprintf(messages.DoctorPortsFoundFmt, len(ports)),
	}}
}

// CheckConfig validates the optional config file. It always returns a usable
// config (the defaults when loading fails) so downstream checks can run.
func CheckConfig(path string) ([]Result, *config.Config) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameConfig,
			Message:   messages.DoctorConfigDefault,
		}}, config.Default()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigBadFmt, err),
			Recommendation: messages.DoctorConfigRecommend,
		}}, config.Default()
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConfig,
		Message:   fmt.Sprintf(messages.DoctorConfigLoadedFmt, path),
	}}, cfg
}

// CheckTrack reports on the configured track file.
func CheckTrack(path string) []Result {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return []Result{{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameTrack,
			Message:        messages.DoctorTrackMissing,
			Recommendation: messages.DoctorTrackMissingRecommend,
		}}
	}

	fixes, err := track.Load(path)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameTrack,
			Message:        fmt.Sprintf(messages.DoctorTrackBadFmt, path, err),
			Recommendation: messages.DoctorTrackRecommend,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameTrack,
		Message:   fmt.Sprintf(messages.DoctorTrackLoadedFmt, path, len(fixes)),
	}}
}
