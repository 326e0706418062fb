package messages

// Record messages for the record command.
const (
	// RecordUse is the record command name.
	RecordUse   = "record"
	RecordShort = "Record GPS fixes from the serial port into a YAML track file"
	RecordLong  = "Read NMEA 0183 sentences from the BU-353N and append position fixes to a\n" +
		"YAML track file. The port is auto-detected when --port is omitted. Recording\n" +
		"runs until interrupted (Ctrl-C) or until --count fixes have been recorded."

	RecordFlagPort   = "Serial port device (auto-detected if omitted)"
	RecordFlagBaud   = "Serial baud rate"
	RecordFlagOutput = "Output YAML track file"
	RecordFlagCount  = "Stop after N fixes (0 = run until interrupted)"

	RecordOpeningFmt      = "Opening %s at %d baud..."
	RecordLoadedFmt       = "Loaded %d existing points from %s"
	RecordWaitingForFix   = "Waiting for GPS fix... (Ctrl-C to stop)"
	RecordFixLineFmt      = "[%4d] %s  lat=%11.6f  lon=%12.6f"
	RecordFixSpeedFmt     = "  %.1f kn"
	RecordCountReachedFmt = "Reached %d fixes, stopping."
	RecordStoppedFmt      = "Stopped. %d new fixes recorded to %s"

	RecordOpenPortErrFmt = "cannot open %s: %w"
	RecordSaveErrFmt     = "save track %s: %w"

	RecordNoPortFound = "no USB serial port found; is the BU-353N plugged in and its driver installed? Run `gpstrail driver` to check"
)
