package messages

// Config messages for configuration loading.
const (
	ConfigReadErrFmt    = "read config %s: %w"
	ConfigInvalidFmt    = "invalid config %s: %w"
	ConfigResolveErrFmt = "resolve config path: %w"
)
