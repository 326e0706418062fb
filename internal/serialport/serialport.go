// Package serialport finds, lists, and opens the GPS serial port.
package serialport

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"

	"github.com/gpstrail/gpstrail/internal/messages"
)

// ErrNoPort is returned when auto-detection finds no plausible GPS port.
var ErrNoPort = errors.New(messages.RecordNoPortFound)

// autoDetectPatterns in preference order: callout (cu.) devices first,
// PL2303-named nodes before generic usbserial/usbmodem ones.
var autoDetectPatterns = []string{
	"/dev/cu.PL2303*",
	"/dev/cu.usbserial*",
	"/dev/cu.usbmodem*",
	"/dev/tty.PL2303*",
	"/dev/tty.usbserial*",
	"/dev/tty.usbmodem*",
}

var globFunc = filepath.Glob

// Detect returns the most likely GPS serial port device path.
func Detect() (string, error) {
	for _, pattern := range autoDetectPatterns {
		matches, err := globFunc(pattern)
		if err != nil || len(matches) == 0 {
			continue
		}
		sort.Strings(matches)
		return matches[0], nil
	}
	return "", ErrNoPort
}

// Open opens the named port for reading NMEA sentences. Reads block until
// data arrives; Close from another goroutine unblocks a pending read, which
// is how recording is canceled.
func Open(name string, baud int) (io.ReadCloser, error) {
	port, err := serial.Open(name, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf(messages.RecordOpenPortErrFmt, name, err)
	}
	return port, nil
}

// Info describes a detected serial port.
type Info struct {
	Name         string
	IsUSB        bool
	VID          string
	PID          string
	SerialNumber string
}

// LikelyGPS reports whether the port name looks like a USB GPS device node.
func (i Info) LikelyGPS() bool {
	for _, marker := range []string{"PL2303", "usbserial", "usbmodem"} {
		if strings.Contains(i.Name, marker) {
			return true
		}
	}
	return false
}

// List enumerates serial ports with USB metadata where available.
func List() ([]Info, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf(messages.PortsListErrFmt, err)
	}

	infos := make([]Info, 0, len(ports))
	for _, p := range ports {
		infos = append(infos, Info{
			Name:         p.Name,
			IsUSB:        p.IsUSB,
			VID:          p.VID,
			PID:          p.PID,
			SerialNumber: p.SerialNumber,
		})
	}
	return infos, nil
}
