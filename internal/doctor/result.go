// Package doctor runs environment health checks for the GPS setup.
package doctor

// Status classifies a check outcome.
type Status int

const (
	// StatusOK means the check passed.
	StatusOK Status = iota
	// StatusWarn means the setup is incomplete but usable.
	StatusWarn
	// StatusFail means something is broken and needs fixing.
	StatusFail
)

// Result is a single check outcome.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}
