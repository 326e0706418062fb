package messages

// Ports messages for the ports command.
const (
	// PortsUse is the ports command name.
	PortsUse   = "ports"
	PortsShort = "List detected serial ports"

	PortsNoneFound  = "No serial ports found."
	PortsHeaderFmt  = "Found %d serial port(s):"
	PortsLineFmt    = "  %s"
	PortsUSBFmt     = "  %s  [USB %s:%s serial %s]"
	PortsGPSFmt     = "  %s  [USB %s:%s serial %s]  <- likely GPS"
	PortsListErrFmt = "list serial ports: %w"
)
