// Package icons draws the calendar, clock and location-pin glyphs that label
// the event detail rows. Every icon is parametrized by its top-left corner,
// a square size and a color; nothing else.
package icons

import (
    "image/color"
    "math"

    "github.com/fogleman/gg"
)

// StrokeWidth derives the line weight for an icon of the given size.
func StrokeWidth(size float64) float64 {
    return math.Max(2, math.Floor(size/12))
}

// Calendar draws a hanging calendar: body rectangle, header divider, two
// hanger ticks and a 2x3 grid of day dots.
func Calendar(dc *gg.Context, x, y, size float64, c color.Color) {
    sw := StrokeWidth(size)
    dc.SetColor(c)
    dc.SetLineWidth(sw)

    // Body fills the lower 85% of the square.
    dc.DrawRectangle(x, y+size*0.15, size, size*0.85)
    dc.Stroke()

    // Header divider.
    dc.DrawLine(x, y+size*0.35, x+size, y+size*0.35)
    dc.Stroke()

    // Hanger ticks.
    for _, fx := range [...]float64{0.25, 0.75} {
        dc.DrawLine(x+size*fx, y, x+size*fx, y+size*0.25)
        dc.Stroke()
    }

    r := dotRadius(size)
    for _, p := range CalendarDots(x, y, size) {
        dc.DrawCircle(p[0], p[1], r)
        dc.Fill()
    }
}

// CalendarDots returns the centers of the 2x3 day-dot grid.
func CalendarDots(x, y, size float64) [][2]float64 {
    cols := [...]float64{0.25, 0.5, 0.75}
    rows := [...]float64{0.55, 0.8}
    dots := make([][2]float64, 0, len(cols)*len(rows))
    for _, fy := range rows {
        for _, fx := range cols {
            dots = append(dots, [2]float64{x + size*fx, y + size*fy})
        }
    }
    return dots
}

func dotRadius(size float64) float64 {
    return math.Max(1.5, size*0.045)
}

// Clock draws a clock face frozen at the 12-and-3 pose.
func Clock(dc *gg.Context, x, y, size float64, c color.Color) {
    sw := StrokeWidth(size)
    cx, cy := x+size/2, y+size/2
    r := size/2 - sw

    dc.SetColor(c)
    dc.SetLineWidth(sw)
    dc.DrawCircle(cx, cy, r)
    dc.Stroke()

    dc.DrawCircle(cx, cy, sw)
    dc.Fill()

    dc.DrawLine(cx, cy, cx, cy-r*0.5) // hour hand, straight up
    dc.Stroke()
    dc.DrawLine(cx, cy, cx+r*0.65, cy) // minute hand, to the right
    dc.Stroke()
}

// Pin draws the teardrop location marker: a 270-degree arc (the bottom wedge
// of the circle is left open) joined to the tip by two quadratic curves,
// with a stroked hole at the optical center.
func Pin(dc *gg.Context, x, y, size float64, c color.Color) {
    sw := StrokeWidth(size)
    cx := x + size/2
    cy := y + size*0.35
    r := size * 0.3

    dc.SetColor(c)
    dc.SetLineWidth(sw)

    // Arc from 135deg around the top to 45deg; screen angles grow clockwise,
    // so the skipped segment is the downward-facing wedge.
    dc.NewSubPath()
    dc.DrawArc(cx, cy, r, gg.Radians(135), gg.Radians(405))
    // Current point is now at 45deg; curve down to the tip and back up to
    // the arc's start at 135deg.
    k := math.Sqrt2 / 2
    dc.QuadraticTo(cx+r*0.55, cy+r*1.35, cx, y+size)
    dc.QuadraticTo(cx-r*0.55, cy+r*1.35, cx-r*k, cy+r*k)
    dc.Stroke()

    dc.DrawCircle(cx, cy, r*0.45)
    dc.Stroke()
}
