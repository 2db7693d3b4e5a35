package layout

import (
    "image"
    "image/color"
    "math"

    "github.com/disintegration/imaging"
    "github.com/fogleman/gg"
    "golang.org/x/image/font"

    "github.com/casaiglesia/graphics/internal/assets"
    "github.com/casaiglesia/graphics/internal/brand"
    "github.com/casaiglesia/graphics/internal/icons"
    "github.com/casaiglesia/graphics/internal/matte"
    "github.com/casaiglesia/graphics/internal/text"
)

// Input is everything one composition consumes. Illustration and Logo are
// already decoded; nil means the element is simply not drawn.
type Input struct {
    Event        Event
    Illustration image.Image
    Logo         image.Image
    Illust       IllustrationAdjustment
    Fields       FieldAdjustments
    Fonts        *assets.FontSet
}

// Compose runs the fixed draw sequence for spec against dc. The surface must
// already be sized per spec.OutputSize; the design-to-device scale is derived
// from it. Each step snapshots and restores the surface state, so no step
// depends on the one before it for fonts, colors or line settings.
func Compose(dc *gg.Context, spec FormatSpec, in Input) {
    c := composer{dc: dc, spec: spec, in: in,
        scale: float64(dc.Width()) / float64(spec.BaseWidth)}

    c.step(c.background)
    c.step(c.illustration)
    c.step(c.lines)
    c.step(c.logo)
    titleBottom := 0.0
    c.step(func() { titleBottom = c.title() })
    c.step(func() { c.subtitle(titleBottom) })
    c.step(c.details)
}

type composer struct {
    dc    *gg.Context
    spec  FormatSpec
    in    Input
    scale float64
}

type iconFunc func(dc *gg.Context, x, y, size float64, c color.Color)

type rowDef struct {
    value string
    off   FieldOffset
    draw  iconFunc
}

func (c *composer) step(draw func()) {
    c.dc.Push()
    draw()
    c.dc.Pop()
}

// at converts a design coordinate to a device coordinate.
func (c *composer) at(designPx float64) float64 {
    return brand.Scale(designPx, c.scale)
}

func (c *composer) background() {
    c.dc.SetColor(brand.Cream.Color())
    c.dc.Clear()
}

func (c *composer) illustration() {
    if c.in.Illustration == nil {
        return
    }
    adj := c.in.Illust
    if adj.Scale == 0 {
        adj.Scale = 1
    }
    opacity := adj.Opacity
    if opacity == 0 {
        opacity = c.spec.Illustration.Opacity
    }

    ref := c.spec.Illustration
    rx, ry := ref.X*c.scale, ref.Y*c.scale
    rw, rh := ref.W*c.scale, ref.H*c.scale

    // Aspect-fit the illustration inside the reference rectangle, centered.
    b := c.in.Illustration.Bounds()
    ratio := float64(b.Dx()) / float64(b.Dy())
    w, h := rw, rw/ratio
    if h > rh {
        h = rh
        w = rh * ratio
    }
    x := rx + (rw-w)/2
    y := ry + (rh-h)/2

    // Adjustment scale grows the box about its center; offsets move it by a
    // percentage of the reference spans.
    cx, cy := x+w/2, y+h/2
    w *= adj.Scale
    h *= adj.Scale
    x = cx - w/2 + adj.OffsetX/100*rw
    y = cy - h/2 + adj.OffsetY/100*rh

    cut := matte.Cutout(c.in.Illustration)
    resized := imaging.Resize(cut, int(math.Round(w)), int(math.Round(h)), imaging.Lanczos)
    matte.Fade(resized, opacity)
    c.dc.DrawImage(resized, int(math.Round(x)), int(math.Round(y)))
}

func (c *composer) lines() {
    if len(c.spec.Lines) == 0 {
        return
    }
    c.dc.SetColor(brand.Amber.Color())
    c.dc.SetLineWidth(brand.Scale(4, c.scale))
    c.dc.SetLineCap(gg.LineCapRound)
    for _, l := range c.spec.Lines {
        c.dc.DrawLine(c.at(l.X1), c.at(l.Y1), c.at(l.X2), c.at(l.Y2))
        c.dc.Stroke()
    }
}

func (c *composer) logo() {
    if c.in.Logo == nil || c.spec.Logo == nil {
        return
    }
    size := int(c.at(c.spec.Logo.Size))
    resized := imaging.Resize(c.in.Logo, size, size, imaging.Lanczos)
    c.dc.DrawImage(resized, int(c.at(c.spec.Logo.X)), int(c.at(c.spec.Logo.Y)))
}

// title draws the auto-fit title block and returns the device Y just below
// its last line, which the subtitle hangs from.
func (c *composer) title() float64 {
    t := c.spec.Title
    fit := text.FitToBox(c.in.Event.Title,
        t.MaxWidth*c.scale, t.MaxHeight*c.scale,
        t.BaseSize*c.scale, t.MinSize*c.scale, 1.0,
        func(size float64) font.Face { return c.in.Fonts.Face(t.Role, size) })

    blockHeight := float64(len(fit.Lines)) * fit.Size
    top := c.at(t.Y)
    if t.CenterV {
        bandTop, bandBottom := c.at(t.BandTop), c.at(t.BandBottom)
        top = math.Round(bandTop + (bandBottom-bandTop-blockHeight)/2)
    }
    top += c.in.Fields.Title.Y
    x := c.at(t.X) + c.in.Fields.Title.X

    face := c.in.Fonts.Face(t.Role, fit.Size)
    c.dc.SetFontFace(face)
    c.dc.SetColor(brand.Black.Color())
    y := top + ascent(face)
    for _, line := range fit.Lines {
        c.dc.DrawString(line, x, y)
        y += fit.Size
    }
    return top + blockHeight
}

func (c *composer) subtitle(titleBottom float64) {
    sub := c.in.Event.Subtitle
    if sub == "" {
        return
    }
    face := c.in.Fonts.Face(assets.DetailItalic, c.spec.Subtitle.Size*c.scale)
    c.dc.SetFontFace(face)
    c.dc.SetColor(brand.Black.Color())
    x := c.at(c.spec.Title.X) + c.in.Fields.Subtitle.X
    y := titleBottom + c.at(c.spec.Subtitle.Gap) + c.in.Fields.Subtitle.Y
    c.dc.DrawString(sub, x, y+ascent(face))
}

func (c *composer) details() {
    // A subtitle pushes all three rows down together; a missing field only
    // removes its own row and never re-flows the others.
    shift := 0.0
    if c.in.Event.Subtitle != "" {
        shift = c.at(c.spec.Subtitle.RowShift)
    }

    face := c.in.Fonts.Face(c.spec.DetailRole, c.spec.DetailSize*c.scale)
    defs := [3]rowDef{
        {c.in.Event.Date, c.in.Fields.Date, icons.Calendar},
        {c.in.Event.Time, c.in.Fields.Time, icons.Clock},
        {c.in.Event.Location, c.in.Fields.Location, icons.Pin},
    }
    for i, def := range defs {
        if def.value == "" {
            continue
        }
        c.drawRow(c.spec.Rows[i], def, face, shift, i == 2)
    }
}

func (c *composer) drawRow(row DetailRow, def rowDef, face font.Face, shift float64, wrap bool) {
    iconX := c.at(row.IconX) + def.off.X
    iconY := c.at(row.IconY) + def.off.Y + shift
    def.draw(c.dc, iconX, iconY, c.at(row.IconSize), brand.Amber.Color())

    c.dc.SetFontFace(face)
    c.dc.SetColor(brand.Amber.Color())
    x := c.at(row.TextX) + def.off.X
    y := c.at(row.TextY) + def.off.Y + shift + ascent(face)
    if !wrap {
        c.dc.DrawString(def.value, x, y)
        return
    }
    lines := text.WrapLines(face, def.value, c.spec.LocationMaxWidth*c.scale)
    lineHeight := c.at(c.spec.LocationLineHeight)
    for _, line := range lines {
        c.dc.DrawString(line, x, y)
        y += lineHeight
    }
}

func ascent(face font.Face) float64 {
    return float64(face.Metrics().Ascent.Ceil())
}
