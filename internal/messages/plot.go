package messages

// Plot messages for the plot command.
const (
	// PlotUse is the plot command name.
	PlotUse   = "plot"
	PlotShort = "Plot the track as a scatter image"
	PlotLong  = "Render a YAML track file as a scatter plot with points colored by time,\n" +
		"saved as PNG, SVG, or PDF depending on the output extension."

	PlotFlagInput  = "YAML track file to plot"
	PlotFlagSave   = "Image output file (.png, .svg, or .pdf)"
	PlotFlagNoLine = "Show only scatter dots, no connecting line"

	PlotSavedFmt    = "Saved plot of %d points to %s"
	PlotRenderFmt   = "render plot: %w"
	PlotNoPointsFmt = "no GPS points found in %s; run `gpstrail record` first"

	PlotTitleFmt      = "GPS Track - %d points"
	PlotTitleSpeedFmt = "GPS Track - %d points (avg %.1f kn, max %.1f kn)"
	PlotXLabel        = "Longitude"
	PlotYLabel        = "Latitude"
	PlotLegendStart   = "Start"
	PlotLegendEnd     = "End"
)
