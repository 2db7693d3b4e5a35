package render

import (
    "fmt"
    "os"
    "path/filepath"
    "strings"
    "time"

    "github.com/sirupsen/logrus"
)

// savePause spaces out successive file saves so a batch does not hammer the
// host; 300ms matched what downstream download managers tolerate.
const savePause = 300 * time.Millisecond

// Exporter writes rendered graphics to disk as casa_{slug}_{format}.png.
type Exporter struct {
    OutDir string
    Pause  time.Duration
    Log    *logrus.Logger

    sleep func(time.Duration)
}

// NewExporter returns an exporter writing into outDir.
func NewExporter(outDir string, log *logrus.Logger) *Exporter {
    if log == nil {
        log = logrus.New()
    }
    return &Exporter{OutDir: outDir, Pause: savePause, Log: log, sleep: time.Sleep}
}

// ExportAll saves every graphic, pausing between successive saves, and
// returns the written paths. The first write error aborts the batch.
func (x *Exporter) ExportAll(graphics []*Graphic, eventTitle string) ([]string, error) {
    if err := os.MkdirAll(x.OutDir, 0o755); err != nil {
        return nil, fmt.Errorf("creating %s: %w", x.OutDir, err)
    }
    slug := Slug(eventTitle)
    paths := make([]string, 0, len(graphics))
    for i, g := range graphics {
        if i > 0 {
            x.sleep(x.Pause)
        }
        name := fmt.Sprintf("casa_%s_%s.png", slug, g.Format)
        path := filepath.Join(x.OutDir, name)
        if err := os.WriteFile(path, g.PNG, 0o644); err != nil {
            return paths, fmt.Errorf("writing %s: %w", path, err)
        }
        x.Log.WithFields(logrus.Fields{"path": path, "bytes": len(g.PNG)}).Info("saved graphic")
        paths = append(paths, path)
    }
    return paths, nil
}

// Slug lowercases the title and replaces every non-alphanumeric rune with
// an underscore.
func Slug(title string) string {
    var b strings.Builder
    for _, r := range strings.ToLower(title) {
        if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
            b.WriteRune(r)
        } else {
            b.WriteRune('_')
        }
    }
    return b.String()
}
