package main

import (
    "encoding/base64"
    "flag"
    "net/http"
    "os"

    "github.com/gin-gonic/gin"
    "github.com/sirupsen/logrus"

    "github.com/casaiglesia/graphics/internal/api"
    "github.com/casaiglesia/graphics/internal/assets"
    "github.com/casaiglesia/graphics/internal/config"
    "github.com/casaiglesia/graphics/internal/presets"
    "github.com/casaiglesia/graphics/internal/render"
)

func main() {
    configPath := flag.String("config", "casa.yaml", "path to the server config file")
    flag.Parse()

    log := logrus.New()

    cfg, err := config.Load(*configPath)
    if err != nil {
        log.WithError(err).Fatal("loading config")
    }
    if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
        log.SetLevel(level)
    }

    fonts, err := assets.LoadFonts(cfg.Fonts)
    if err != nil {
        log.WithError(err).Warn("brand fonts incomplete, using bundled fallbacks")
    }

    // Catalog load is best-effort: the render endpoints work without it.
    catalog, err := presets.LoadFromDataDir(cfg.DataDir)
    if err != nil {
        log.WithError(err).Warn("preset catalog unavailable")
    }

    engine := render.NewEngine(fonts, assets.NewLoader(), log)
    handlers := &api.Handlers{
        Engine:      engine,
        Exporter:    render.NewExporter(cfg.OutDir, log),
        Presets:     catalog,
        Log:         log,
        DefaultLogo: loadDefaultLogo(cfg.Logo, log),
    }

    r := gin.Default()
    api.RegisterRoutes(r, handlers)

    log.WithField("port", cfg.Port).Info("starting server")
    if err := r.Run(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
        log.WithError(err).Fatal("server stopped")
    }
}

// loadDefaultLogo inlines the configured logo file as a base64 reference the
// asset loader understands. No logo configured means renders go out without
// one unless the request supplies its own.
func loadDefaultLogo(path string, log *logrus.Logger) string {
    if path == "" {
        return ""
    }
    raw, err := os.ReadFile(path)
    if err != nil {
        log.WithError(err).Warn("default logo unavailable")
        return ""
    }
    return base64.StdEncoding.EncodeToString(raw)
}
