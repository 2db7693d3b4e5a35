// Package render is the public orchestration surface: it owns the raster
// surface lifecycle, dispatches to the per-format layout tables, and encodes
// the result to PNG.
package render

import (
    "bytes"
    "context"
    "fmt"
    "image"
    "image/png"

    "github.com/fogleman/gg"
    "github.com/sirupsen/logrus"

    "github.com/casaiglesia/graphics/internal/assets"
    "github.com/casaiglesia/graphics/internal/layout"
)

// Graphic is one finished render: PNG bytes plus the device dimensions.
type Graphic struct {
    Format layout.Format
    PNG    []byte
    Width  int
    Height int
}

// Options carries the optional inputs of a single render. Illustration and
// Logo are asset references (URL, data URI or base64); empty means absent.
type Options struct {
    Illustration string
    Logo         string
    Illust       *layout.IllustrationAdjustment
    Fields       *layout.FieldAdjustments
}

// Engine renders event graphics. One engine is safe for concurrent use:
// every render allocates its own surface.
type Engine struct {
    fonts  *assets.FontSet
    loader *assets.Loader
    log    *logrus.Logger
}

// NewEngine wires an engine. A nil logger gets a default logrus logger.
func NewEngine(fonts *assets.FontSet, loader *assets.Loader, log *logrus.Logger) *Engine {
    if log == nil {
        log = logrus.New()
    }
    return &Engine{fonts: fonts, loader: loader, log: log}
}

// RenderFormat renders one event into one format. Asset decode failures are
// logged and the element is skipped; the caller cannot tell a skipped asset
// from an absent one by looking at the result. Only an unknown format or a
// failed surface/encode is an error.
func (e *Engine) RenderFormat(ctx context.Context, format layout.Format, ev layout.Event, opts Options) (*Graphic, error) {
    spec, ok := layout.Spec(format)
    if !ok {
        return nil, fmt.Errorf("unknown format %q", format)
    }
    w, h := spec.OutputSize()
    if w <= 0 || h <= 0 {
        return nil, fmt.Errorf("format %q has invalid surface size %dx%d", format, w, h)
    }

    in := layout.Input{
        Event:  ev,
        Illust: layout.DefaultIllustrationAdjustment(),
        Fonts:  e.fonts,
    }
    if opts.Illust != nil {
        in.Illust = *opts.Illust
    }
    if opts.Fields != nil {
        in.Fields = *opts.Fields
    }
    in.Illustration = e.loadAsset(ctx, "illustration", opts.Illustration)
    in.Logo = e.loadAsset(ctx, "logo", opts.Logo)

    dc := gg.NewContext(w, h)
    layout.Compose(dc, spec, in)

    var buf bytes.Buffer
    if err := png.Encode(&buf, dc.Image()); err != nil {
        return nil, fmt.Errorf("encoding %s: %w", format, err)
    }
    return &Graphic{Format: format, PNG: buf.Bytes(), Width: w, Height: h}, nil
}

// RenderAllFormats renders the four formats one after another with default
// adjustments. Sequential on purpose: the surfaces are multi-megapixel and
// this keeps at most one alive at a time.
func (e *Engine) RenderAllFormats(ctx context.Context, ev layout.Event, illustration, logo string) ([]*Graphic, error) {
    out := make([]*Graphic, 0, 4)
    for _, format := range layout.Formats() {
        g, err := e.RenderFormat(ctx, format, ev, Options{Illustration: illustration, Logo: logo})
        if err != nil {
            return nil, err
        }
        out = append(out, g)
    }
    return out, nil
}

func (e *Engine) loadAsset(ctx context.Context, kind, ref string) image.Image {
    if ref == "" {
        return nil
    }
    img, err := e.loader.Load(ctx, ref)
    if err != nil {
        e.log.WithError(err).Warnf("skipping %s", kind)
        return nil
    }
    return img
}
