package icons

import (
    "testing"

    "github.com/fogleman/gg"
    "github.com/stretchr/testify/assert"

    "github.com/casaiglesia/graphics/internal/brand"
)

func TestCalendarDotsAlwaysSix(t *testing.T) {
    for _, size := range []float64{20, 200} {
        dots := CalendarDots(0, 0, size)
        assert.Len(t, dots, 6, "size %v", size)
    }
}

func TestCalendarDotsInsideBody(t *testing.T) {
    for _, p := range CalendarDots(10, 20, 100) {
        assert.GreaterOrEqual(t, p[0], 10.0)
        assert.LessOrEqual(t, p[0], 110.0)
        // All dots sit below the header divider at 35%.
        assert.Greater(t, p[1], 20.0+100*0.35)
        assert.LessOrEqual(t, p[1], 120.0)
    }
}

func TestStrokeWidth(t *testing.T) {
    assert.Equal(t, 2.0, StrokeWidth(20))
    assert.Equal(t, 2.0, StrokeWidth(35))
    assert.Equal(t, 3.0, StrokeWidth(36))
    assert.Equal(t, 16.0, StrokeWidth(200))
}

func TestIconsLeaveInk(t *testing.T) {
    draws := map[string]func(*gg.Context){
        "calendar": func(dc *gg.Context) { Calendar(dc, 4, 4, 56, brand.Amber.Color()) },
        "clock":    func(dc *gg.Context) { Clock(dc, 4, 4, 56, brand.Amber.Color()) },
        "pin":      func(dc *gg.Context) { Pin(dc, 4, 4, 56, brand.Amber.Color()) },
    }
    for name, draw := range draws {
        dc := gg.NewContext(64, 64)
        draw(dc)
        assert.True(t, hasInk(dc), "%s drew nothing", name)
    }
}

func hasInk(dc *gg.Context) bool {
    img := dc.Image()
    b := img.Bounds()
    for y := b.Min.Y; y < b.Max.Y; y++ {
        for x := b.Min.X; x < b.Max.X; x++ {
            if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
                return true
            }
        }
    }
    return false
}
