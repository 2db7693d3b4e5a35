package matte

import (
    "image"
    "image/color"
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestCutoutStripsBrightNeutralPixels(t *testing.T) {
    img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
    img.SetNRGBA(0, 0, color.NRGBA{250, 248, 252, 255}) // near-white background
    img.SetNRGBA(1, 0, color.NRGBA{20, 120, 30, 255})   // saturated subject green
    img.SetNRGBA(0, 1, color.NRGBA{230, 230, 230, 255}) // light gray background
    img.SetNRGBA(1, 1, color.NRGBA{250, 210, 250, 255}) // bright but saturated

    out := Cutout(img)

    assert.EqualValues(t, 0, out.NRGBAAt(0, 0).A)
    assert.EqualValues(t, 255, out.NRGBAAt(1, 0).A)
    assert.EqualValues(t, 0, out.NRGBAAt(0, 1).A)
    assert.EqualValues(t, 255, out.NRGBAAt(1, 1).A)
}

func TestCutoutBoundaryThresholds(t *testing.T) {
    img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
    // min == 220 is not strictly brighter than the floor: kept.
    img.SetNRGBA(0, 0, color.NRGBA{220, 230, 240, 255})
    // spread == 25 is not strictly below the ceiling: kept.
    img.SetNRGBA(1, 0, color.NRGBA{225, 230, 250, 255})

    out := Cutout(img)

    assert.EqualValues(t, 255, out.NRGBAAt(0, 0).A)
    assert.EqualValues(t, 255, out.NRGBAAt(1, 0).A)
}

func TestCutoutLeavesSourceUntouched(t *testing.T) {
    img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
    img.SetNRGBA(0, 0, color.NRGBA{250, 250, 250, 255})

    Cutout(img)

    assert.EqualValues(t, 255, img.NRGBAAt(0, 0).A)
}

func TestFadeScalesAlpha(t *testing.T) {
    img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
    img.SetNRGBA(0, 0, color.NRGBA{10, 10, 10, 200})
    img.SetNRGBA(1, 0, color.NRGBA{10, 10, 10, 0})

    Fade(img, 0.15)

    assert.EqualValues(t, 30, img.NRGBAAt(0, 0).A)
    assert.EqualValues(t, 0, img.NRGBAAt(1, 0).A)
}
