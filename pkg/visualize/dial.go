// Package visualize renders orientation results as SVG for the web
// surface.
package visualize

import (
	"fmt"
	"io"
	"math"

	"github.com/orbitalkit/labpoint/pkg/pointing"
)

const (
	size   = 400
	center = size / 2
	radius = 170
)

// needle styles, innermost drawn last so it stays visible.
var needles = []struct {
	class  string
	color  string
	length float64
}{
	{"era", "#e76f51", 1.0},
	{"projection", "#2a9d8f", 0.75},
	{"total", "#264653", 0.9},
}

// Dial draws a compass-style dial with one needle per angle in a
// Result. Angles run counterclockwise from the positive x axis, the
// usual mathematical convention.
type Dial struct {
	res pointing.Result
}

func NewDial(res pointing.Result) *Dial {
	return &Dial{res: res}
}

// Encode writes the dial as SVG. It reports the number of bytes
// written and the first error encountered, in the io.Writer style.
func (d *Dial) Encode(w io.Writer) (int, error) {
	var n int
	var err error
	io := func(nextn int, nexterr error) {
		n += nextn
		if nexterr != nil {
			err = nexterr
		}
	}

	io(fmt.Fprintf(w, `<svg viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`, size, size))

	// Face and rim.
	io(fmt.Fprintf(w, `<circle class="face" cx="%d" cy="%d" r="%d" fill="white" stroke="#264653" stroke-width="2"/>`,
		center, center, radius))

	// A tick every 30 degrees, with the zero mark stretched.
	for deg := 0; deg < 360; deg += 30 {
		inner := float64(radius) - 10
		if deg == 0 {
			inner = float64(radius) - 20
		}
		x1, y1 := rim(float64(deg)*math.Pi/180, inner)
		x2, y2 := rim(float64(deg)*math.Pi/180, radius)
		io(fmt.Fprintf(w, `<line class="tick" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#999" stroke-width="1"/>`,
			x1, y1, x2, y2))
	}

	for i, needle := range needles {
		angle := [3]float64{d.res.ERA, d.res.Projection, d.res.Total}[i]
		x, y := rim(angle, needle.length*radius)
		io(fmt.Fprintf(w, `<line class="needle %s" x1="%d" y1="%d" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="3"/>`,
			needle.class, center, center, x, y, needle.color))
	}

	// Legend with the numbers themselves.
	io(fmt.Fprintf(w, `<text class="legend" x="10" y="%d" font-size="12">ERA %.6f rad</text>`,
		size-42, d.res.ERA))
	io(fmt.Fprintf(w, `<text class="legend" x="10" y="%d" font-size="12">projection %.6f rad</text>`,
		size-28, d.res.Projection))
	io(fmt.Fprintf(w, `<text class="legend" x="10" y="%d" font-size="12">total %.6f rad (%.4f deg)</text>`,
		size-14, d.res.Total, d.res.TotalDeg))

	io(fmt.Fprintf(w, `</svg>`))

	return n, err
}

// rim maps a math-convention angle to SVG coordinates at distance r
// from the dial center. SVG's y axis points down, hence the minus.
func rim(angle, r float64) (x, y float64) {
	return float64(center) + r*math.Cos(angle), float64(center) - r*math.Sin(angle)
}
