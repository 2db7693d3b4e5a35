// Package matte strips near-white backgrounds from illustration bitmaps so
// they composite over the cream canvas.
package matte

import (
    "image"

    "github.com/disintegration/imaging"
)

// Threshold pair tuned against the generated line-art illustrations: catches
// white, cream and light gray while keeping saturated subject strokes.
const (
    brightnessFloor = 220 // min(r,g,b) must exceed this
    spreadCeiling   = 25  // max(r,g,b)-min(r,g,b) must stay below this
)

// Cutout returns a copy of img where background pixels are fully transparent.
// The pass is purely per-pixel: isolated bright neutral pixels inside the
// subject are stripped too, there is no connectivity check.
func Cutout(img image.Image) *image.NRGBA {
    out := imaging.Clone(img)
    for i := 0; i < len(out.Pix); i += 4 {
        r, g, b := out.Pix[i], out.Pix[i+1], out.Pix[i+2]
        if isBackground(r, g, b) {
            out.Pix[i+3] = 0
        }
    }
    return out
}

// Fade multiplies the alpha channel by opacity in place and returns img.
func Fade(img *image.NRGBA, opacity float64) *image.NRGBA {
    if opacity < 0 {
        opacity = 0
    }
    for i := 3; i < len(img.Pix); i += 4 {
        v := float64(img.Pix[i]) * opacity
        if v > 255 {
            v = 255
        }
        img.Pix[i] = uint8(v)
    }
    return img
}

func isBackground(r, g, b uint8) bool {
    lo, hi := r, r
    for _, c := range [...]uint8{g, b} {
        if c < lo {
            lo = c
        }
        if c > hi {
            hi = c
        }
    }
    return lo > brightnessFloor && int(hi)-int(lo) < spreadCeiling
}
