package api

import (
    "encoding/base64"
    "net/http"
    "strconv"

    "github.com/gin-gonic/gin"
    "github.com/sirupsen/logrus"

    "github.com/casaiglesia/graphics/internal/layout"
    "github.com/casaiglesia/graphics/internal/presets"
    "github.com/casaiglesia/graphics/internal/render"
)

// Handlers bundles what the endpoints need.
type Handlers struct {
    Engine   *render.Engine
    Exporter *render.Exporter
    Presets  []presets.Preset
    Log      *logrus.Logger
    // DefaultLogo is used for renders that do not supply their own logo.
    DefaultLogo string
}

func (h *Handlers) health(c *gin.Context) {
    c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handlers) listPresets(c *gin.Context) {
    out := presets.Filter(h.Presets, c.Query("q"))
    c.JSON(http.StatusOK, gin.H{"count": len(out), "presets": out})
}

type renderRequest struct {
    Format       layout.Format                  `json:"format"`
    Event        layout.Event                   `json:"event"`
    Illustration string                         `json:"illustration"`
    Logo         string                         `json:"logo"`
    Illust       *layout.IllustrationAdjustment `json:"illustration_adjustment"`
    Fields       *layout.FieldAdjustments       `json:"field_adjustments"`
}

func (r *renderRequest) options(defaultLogo string) render.Options {
    logo := r.Logo
    if logo == "" {
        logo = defaultLogo
    }
    return render.Options{
        Illustration: r.Illustration,
        Logo:         logo,
        Illust:       r.Illust,
        Fields:       r.Fields,
    }
}

// eventImage renders a single format and returns the PNG directly.
func (h *Handlers) eventImage(c *gin.Context) {
    var req renderRequest
    if err := c.BindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    if req.Event.Title == "" {
        c.JSON(http.StatusBadRequest, gin.H{"error": "event title is required"})
        return
    }
    g, err := h.Engine.RenderFormat(c.Request.Context(), req.Format, req.Event, req.options(h.DefaultLogo))
    if err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    c.Data(http.StatusOK, "image/png", g.PNG)
}

type graphicJSON struct {
    Format layout.Format `json:"format"`
    Width  int           `json:"width"`
    Height int           `json:"height"`
    Image  string        `json:"image_base64"`
}

// eventBatch renders all four formats and returns them base64-encoded.
func (h *Handlers) eventBatch(c *gin.Context) {
    var req renderRequest
    if err := c.BindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    opts := req.options(h.DefaultLogo)
    graphics, err := h.Engine.RenderAllFormats(c.Request.Context(), req.Event, opts.Illustration, opts.Logo)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    out := make([]graphicJSON, 0, len(graphics))
    for _, g := range graphics {
        out = append(out, graphicJSON{
            Format: g.Format,
            Width:  g.Width,
            Height: g.Height,
            Image:  base64.StdEncoding.EncodeToString(g.PNG),
        })
    }
    c.JSON(http.StatusOK, gin.H{"graphics": out})
}

// eventExport renders all formats and saves them under the output dir.
func (h *Handlers) eventExport(c *gin.Context) {
    var req renderRequest
    if err := c.BindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    opts := req.options(h.DefaultLogo)
    graphics, err := h.Engine.RenderAllFormats(c.Request.Context(), req.Event, opts.Illustration, opts.Logo)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    files, err := h.Exporter.ExportAll(graphics, req.Event.Title)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    c.JSON(http.StatusOK, gin.H{"files": files})
}

// qr returns a PNG QR code, used for event page share links.
func (h *Handlers) qr(c *gin.Context) {
    text := c.Query("text")
    if text == "" {
        c.JSON(http.StatusBadRequest, gin.H{"error": "text query param is required"})
        return
    }
    size := 400
    if s := c.Query("size"); s != "" {
        if v, err := strconv.Atoi(s); err == nil {
            size = v
        }
    }
    b, err := sharePNG(text, size)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    c.Data(http.StatusOK, "image/png", b)
}
