package text

import (
    "strings"
    "testing"

    "github.com/golang/freetype/truetype"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "golang.org/x/image/font"
    "golang.org/x/image/font/gofont/goregular"
)

var testFont = mustParse()

func mustParse() *truetype.Font {
    f, err := truetype.Parse(goregular.TTF)
    if err != nil {
        panic(err)
    }
    return f
}

func face(size float64) font.Face {
    return truetype.NewFace(testFont, &truetype.Options{Size: size, DPI: 72})
}

func TestWrapLinesLossless(t *testing.T) {
    input := "El amor de Dios es para toda la comunidad reunida en la mesa"
    lines := WrapLines(face(24), input, 180)
    require.Greater(t, len(lines), 1)
    assert.Equal(t, input, strings.Join(lines, " "))
    for _, line := range lines {
        assert.NotEmpty(t, line)
        assert.LessOrEqual(t, Width(face(24), line), 180.0)
    }
}

func TestWrapLinesSingleLongWord(t *testing.T) {
    lines := WrapLines(face(24), "inconmensurablemente corto", 40)
    require.Len(t, lines, 2)
    // A word wider than the box is emitted alone and may overflow.
    assert.Equal(t, "inconmensurablemente", lines[0])
    assert.Equal(t, "corto", lines[1])
}

func TestWrapLinesEmpty(t *testing.T) {
    assert.Empty(t, WrapLines(face(24), "", 100))
}

func TestFitToBoxSizeBounds(t *testing.T) {
    fit := FitToBox("Celebración de la comunidad entera", 300, 120, 100, 40, 1.0, face)
    assert.GreaterOrEqual(t, fit.Size, 40.0)
    assert.LessOrEqual(t, fit.Size, 100.0)
    assert.Zero(t, int(100-fit.Size)%4, "size must step down from base in 4px increments")
}

func TestFitToBoxAcceptsLargestFit(t *testing.T) {
    fit := FitToBox("Hola", 1000, 1000, 80, 40, 1.0, face)
    assert.Equal(t, 80.0, fit.Size)
    assert.Equal(t, []string{"Hola"}, fit.Lines)
}

func TestFitToBoxManualBreaks(t *testing.T) {
    fit := FitToBox("La Mesa\nAbierta", 2000, 2000, 80, 40, 1.0, face)
    assert.Equal(t, []string{"La Mesa", "Abierta"}, fit.Lines)
}

func TestFitToBoxManualBreaksNeverRewrapped(t *testing.T) {
    // Even when a manual line overflows the box the break stays verbatim.
    fit := FitToBox("Una línea manual bastante larga\ncorta", 60, 40, 48, 40, 1.0, face)
    require.Len(t, fit.Lines, 2)
    assert.Equal(t, "Una línea manual bastante larga", fit.Lines[0])
}

func TestFitToBoxFallsBackToMinimum(t *testing.T) {
    // Nothing fits a 10px-tall box; the minimum size wins anyway.
    fit := FitToBox("Texto que no cabe de ninguna manera en la caja", 120, 10, 100, 40, 1.0, face)
    assert.Equal(t, 40.0, fit.Size)
    assert.NotEmpty(t, fit.Lines)
}
