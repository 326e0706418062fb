// Package trackplot renders a track as a scatter image with points colored
// by time and an optional connecting line.
package trackplot

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/gpstrail/gpstrail/internal/messages"
	"github.com/gpstrail/gpstrail/internal/ramp"
	"github.com/gpstrail/gpstrail/internal/track"
)

// ErrNoPoints is returned when the track has nothing to plot.
var ErrNoPoints = errors.New("track has no points")

// Options configures the rendered plot.
type Options struct {
	// NoLine suppresses the connecting track line.
	NoLine bool
}

// Save renders the fixes to path. The image format follows the file
// extension (.png, .svg, .pdf).
func Save(fixes []track.Fix, path string, opts Options) error {
	n := len(fixes)
	if n == 0 {
		return ErrNoPoints
	}

	p := plot.New()
	p.Title.Text = title(fixes)
	p.X.Label.Text = messages.PlotXLabel
	p.Y.Label.Text = messages.PlotYLabel

	xys := make(plotter.XYs, n)
	for i, fix := range fixes {
		xys[i] = plotter.XY{X: fix.Lon, Y: fix.Lat}
	}

	if !opts.NoLine && n > 1 {
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf(messages.PlotRenderFmt, err)
		}
		line.Color = color.RGBA{R: 0x4a, G: 0x4a, B: 0x8a, A: 0x99}
		line.Width = vg.Points(1.2)
		p.Add(line)
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf(messages.PlotRenderFmt, err)
	}
	scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		r, g, b := ramp.RGB(float64(i) / float64(max(n-1, 1)))
		return draw.GlyphStyle{
			Color:  color.RGBA{R: r, G: g, B: b, A: 0xff},
			Radius: vg.Points(2.5),
			Shape:  draw.CircleGlyph{},
		}
	}
	p.Add(scatter)

	if err := addEndpointMarkers(p, xys); err != nil {
		return err
	}
	equalizeAspect(p, xys)

	if err := p.Save(10*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf(messages.PlotRenderFmt, err)
	}
	return nil
}

// addEndpointMarkers draws distinct start and end glyphs with legend entries.
func addEndpointMarkers(p *plot.Plot, xys plotter.XYs) error {
	start, err := plotter.NewScatter(plotter.XYs{xys[0]})
	if err != nil {
		return fmt.Errorf(messages.PlotRenderFmt, err)
	}
	start.GlyphStyle = draw.GlyphStyle{
		Color:  color.RGBA{G: 0xc8, B: 0x50, A: 0xff},
		Radius: vg.Points(5),
		Shape:  draw.TriangleGlyph{},
	}
	p.Add(start)
	p.Legend.Add(messages.PlotLegendStart, start)

	if len(xys) > 1 {
		end, err := plotter.NewScatter(plotter.XYs{xys[len(xys)-1]})
		if err != nil {
			return fmt.Errorf(messages.PlotRenderFmt, err)
		}
		end.GlyphStyle = draw.GlyphStyle{
			Color:  color.RGBA{R: 0xd9, G: 0x2b, B: 0x2b, A: 0xff},
			Radius: vg.Points(5),
			Shape:  draw.BoxGlyph{},
		}
		p.Add(end)
		p.Legend.Add(messages.PlotLegendEnd, end)
	}
	p.Legend.Top = true
	return nil
}

// equalizeAspect widens the narrower axis so one degree of longitude and
// one degree of latitude cover comparable distance at the track's latitude.
func equalizeAspect(p *plot.Plot, xys plotter.XYs) {
	minX, maxX := xys[0].X, xys[0].X
	minY, maxY := xys[0].Y, xys[0].Y
	for _, xy := range xys {
		minX = math.Min(minX, xy.X)
		maxX = math.Max(maxX, xy.X)
		minY = math.Min(minY, xy.Y)
		maxY = math.Max(maxY, xy.Y)
	}

	midLat := (minY + maxY) / 2
	lonScale := math.Cos(midLat * math.Pi / 180)
	if lonScale <= 0 {
		lonScale = 1
	}

	xSpan := (maxX - minX) * lonScale
	ySpan := maxY - minY
	if xSpan < ySpan {
		pad := (ySpan/lonScale - (maxX - minX)) / 2
		minX -= pad
		maxX += pad
	} else if ySpan < xSpan {
		pad := (xSpan - ySpan) / 2
		minY -= pad
		maxY += pad
	}

	// A point-sized margin so single-fix tracks still have a visible range.
	const margin = 0.0005
	p.X.Min, p.X.Max = minX-margin, maxX+margin
	p.Y.Min, p.Y.Max = minY-margin, maxY+margin
}

func title(fixes []track.Fix) string {
	var sum, peak float64
	count := 0
	for _, fix := range fixes {
		if fix.SpeedKnots == nil {
			continue
		}
		sum += *fix.SpeedKnots
		peak = math.Max(peak, *fix.SpeedKnots)
		count++
	}
	if count == 0 {
		return fmt.Sprintf(messages.PlotTitleFmt, len(fixes))
	}
	return fmt.Sprintf(messages.PlotTitleSpeedFmt, len(fixes), sum/float64(count), peak)
}
