package messages

// Map messages for the map command.
const (
	// MapUse is the map command name.
	MapUse   = "map"
	MapShort = "Render the track on an interactive browser map"
	MapLong  = "Generate a self-contained HTML map (OpenStreetMap tiles with satellite and\n" +
		"topo layers) from a YAML track file and open it in the default browser."

	MapFlagInput  = "YAML track file to render"
	MapFlagOutput = "HTML output file"
	MapFlagNoOpen = "Save the HTML but don't open the browser"

	MapSavedFmt      = "Saved %d points to %s"
	MapOpened        = "Opened in browser."
	MapOpenErrFmt    = "Could not open the browser (%v). Open the file yourself: %s"
	MapRenderErrFmt  = "render map: %w"
	MapWriteErrFmt   = "write %s: %w"
	MapNoPointsFmt   = "no GPS points found in %s; run `gpstrail record` first"
	MapLoadTrackFmt  = "load track %s: %w"
	MapTooltipStart  = "Start"
	MapTooltipEnd    = "End"
	MapLayerStreet   = "Street"
	MapLayerSat      = "Satellite (Esri)"
	MapLayerTopo     = "Topo"
)
