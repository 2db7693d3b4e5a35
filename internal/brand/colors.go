package brand

import (
    "fmt"
    "image/color"
    "math"
)

// RGB is an 8-bit-per-channel brand color.
type RGB struct {
    R, G, B uint8
}

// Casa palette, ported from the Canva design.
var (
    Amber = RGB{184, 146, 61}  // #B8923D, lines and icons
    Black = RGB{26, 26, 26}    // #1A1A1A, titles
    Cream = RGB{250, 248, 245} // background
    White = RGB{255, 255, 255}
)

// Color returns the fully opaque color.
func (c RGB) Color() color.NRGBA {
    return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// WithAlpha returns the color with opacity in [0,1] applied.
func (c RGB) WithAlpha(opacity float64) color.NRGBA {
    a := math.Round(opacity * 255)
    if a < 0 {
        a = 0
    } else if a > 255 {
        a = 255
    }
    return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a)}
}

// Hex returns the #RRGGBB form.
func (c RGB) Hex() string {
    return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Scale converts a design-time coordinate to a device coordinate.
func Scale(designPx, scale float64) float64 {
    return math.Round(designPx * scale)
}
