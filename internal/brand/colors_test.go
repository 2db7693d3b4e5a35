package brand

import (
    "image/color"
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestHex(t *testing.T) {
    assert.Equal(t, "#B8923D", Amber.Hex())
    assert.Equal(t, "#1A1A1A", Black.Hex())
}

func TestWithAlpha(t *testing.T) {
    assert.Equal(t, color.NRGBA{184, 146, 61, 255}, Amber.WithAlpha(1))
    assert.Equal(t, color.NRGBA{184, 146, 61, 38}, Amber.WithAlpha(0.15))
    assert.Equal(t, color.NRGBA{184, 146, 61, 0}, Amber.WithAlpha(-1))
    assert.Equal(t, color.NRGBA{184, 146, 61, 255}, Amber.WithAlpha(2))
}

func TestScale(t *testing.T) {
    assert.Equal(t, 166.0, Scale(83, 2))
    assert.Equal(t, 125.0, Scale(62.5, 2))
    assert.Equal(t, 83.0, Scale(83, 1))
}
