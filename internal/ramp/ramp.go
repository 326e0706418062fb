// Package ramp maps track progress to colors: blue at the start of the
// track through green and yellow to red at the end.
package ramp

import "fmt"

// RGB maps t in [0,1] to a color on the ramp (HSV hue 0.66→0, sat 0.9,
// value 0.95). Out-of-range t is clamped.
func RGB(t float64) (r, g, b uint8) {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return hsvToRGB(0.66*(1-t), 0.9, 0.95)
}

// Hex maps t in [0,1] to a #rrggbb color string.
func Hex(t float64) string {
	r, g, b := RGB(t)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func hsvToRGB(h, s, v float64) (uint8, uint8, uint8) {
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return uint8(r * 255), uint8(g * 255), uint8(b * 255)
}
