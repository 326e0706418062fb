// Package geomap renders a track as a self-contained Leaflet HTML map with
// OpenStreetMap, satellite, and topo tile layers.
package geomap

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"

	"github.com/gpstrail/gpstrail/internal/messages"
	"github.com/gpstrail/gpstrail/internal/ramp"
	"github.com/gpstrail/gpstrail/internal/track"
)

//go:embed map.tmpl.html
var mapTemplateText string

// ErrNoPoints is returned when the track has nothing to render.
var ErrNoPoints = errors.New("track has no points")

var mapTemplate = template.Must(template.New("map").Funcs(template.FuncMap{
	"js": marshalJS,
}).Parse(mapTemplateText))

type point struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Color   string  `json:"color"`
	Tooltip string  `json:"tooltip"`
}

type document struct {
	CenterLat, CenterLon             float64
	Zoom                             int
	MinLat, MinLon, MaxLat, MaxLon   float64
	Points                           []point
	Line                             [][2]float64
	StartTooltip, EndTooltip         string
	LayerStreet, LayerSat, LayerTopo string
}

// Render writes the HTML map for the given fixes to w.
func Render(w io.Writer, fixes []track.Fix) error {
	doc, err := buildDocument(fixes)
	if err != nil {
		return err
	}
	return mapTemplate.Execute(w, doc)
}

func buildDocument(fixes []track.Fix) (*document, error) {
	n := len(fixes)
	if n == 0 {
		return nil, ErrNoPoints
	}

	doc := &document{
		MinLat: fixes[0].Lat, MaxLat: fixes[0].Lat,
		MinLon: fixes[0].Lon, MaxLon: fixes[0].Lon,
		LayerStreet: messages.MapLayerStreet,
		LayerSat:    messages.MapLayerSat,
		LayerTopo:   messages.MapLayerTopo,
	}

	var sumLat, sumLon float64
	for i, fix := range fixes {
		sumLat += fix.Lat
		sumLon += fix.Lon
		doc.MinLat = min(doc.MinLat, fix.Lat)
		doc.MaxLat = max(doc.MaxLat, fix.Lat)
		doc.MinLon = min(doc.MinLon, fix.Lon)
		doc.MaxLon = max(doc.MaxLon, fix.Lon)

		t := float64(i) / float64(max(n-1, 1))
		doc.Points = append(doc.Points, point{
			Lat:     fix.Lat,
			Lon:     fix.Lon,
			Color:   ramp.Hex(t),
			Tooltip: tooltip(i, fix),
		})
		doc.Line = append(doc.Line, [2]float64{fix.Lat, fix.Lon})
	}

	doc.CenterLat = sumLat / float64(n)
	doc.CenterLon = sumLon / float64(n)
	doc.Zoom = zoomFor(max(doc.MaxLat-doc.MinLat, doc.MaxLon-doc.MinLon))
	doc.StartTooltip = fmt.Sprintf("<b>%s</b><br>%s", messages.MapTooltipStart, fixes[0].Timestamp)
	doc.EndTooltip = fmt.Sprintf("<b>%s</b><br>%s", messages.MapTooltipEnd, fixes[n-1].Timestamp)
	return doc, nil
}

// zoomFor picks a starting zoom that fits the bounding-box span in degrees.
func zoomFor(span float64) int {
	switch {
	case span < 0.001:
		return 17
	case span < 0.01:
		return 15
	case span < 0.1:
		return 13
	case span < 1.0:
		return 11
	default:
		return 9
	}
}

func tooltip(i int, fix track.Fix) string {
	parts := []string{
		fmt.Sprintf("<b>#%d</b>&nbsp; %s", i+1, fix.Timestamp),
		fmt.Sprintf("lat %.6f &nbsp; lon %.6f", fix.Lat, fix.Lon),
	}
	if fix.SpeedKnots != nil {
		parts = append(parts, fmt.Sprintf("speed: %.1f kn", *fix.SpeedKnots))
	}
	if fix.AltitudeM != nil {
		parts = append(parts, fmt.Sprintf("alt: %.1f m", *fix.AltitudeM))
	}
	if fix.NumSats != nil {
		parts = append(parts, fmt.Sprintf("sats: %d", *fix.NumSats))
	}

	joined := parts[0]
	for _, p := range parts[1:] {
		joined += "<br>" + p
	}
	return joined
}

// marshalJS embeds a Go value as a JSON literal inside the map script.
func marshalJS(v any) (template.JS, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(data), nil
}
