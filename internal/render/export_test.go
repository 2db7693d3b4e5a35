package render

import (
    "io"
    "os"
    "path/filepath"
    "testing"
    "time"

    "github.com/sirupsen/logrus"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/casaiglesia/graphics/internal/layout"
)

func quietLog() *logrus.Logger {
    log := logrus.New()
    log.SetOutput(io.Discard)
    return log
}

func TestExportAllWritesEveryGraphic(t *testing.T) {
    dir := t.TempDir()
    var pauses []time.Duration
    x := &Exporter{
        OutDir: dir,
        Pause:  savePause,
        Log:    quietLog(),
        sleep:  func(d time.Duration) { pauses = append(pauses, d) },
    }
    graphics := []*Graphic{
        {Format: layout.PPT43, PNG: []byte("a")},
        {Format: layout.InstagramPost, PNG: []byte("b")},
        {Format: layout.FacebookPost, PNG: []byte("c")},
    }

    paths, err := x.ExportAll(graphics, "Servicio Dominical")
    require.NoError(t, err)
    require.Len(t, paths, 3)

    assert.Equal(t, filepath.Join(dir, "casa_servicio_dominical_ppt_4_3.png"), paths[0])
    assert.Equal(t, filepath.Join(dir, "casa_servicio_dominical_instagram_post.png"), paths[1])
    assert.Equal(t, filepath.Join(dir, "casa_servicio_dominical_facebook_post.png"), paths[2])
    for i, p := range paths {
        raw, err := os.ReadFile(p)
        require.NoError(t, err)
        assert.Equal(t, graphics[i].PNG, raw)
    }

    // Exactly one pause between each pair of saves, none before the first.
    require.Len(t, pauses, 2)
    for _, d := range pauses {
        assert.GreaterOrEqual(t, d, 300*time.Millisecond)
    }
}

func TestExportAllCreatesOutDir(t *testing.T) {
    dir := filepath.Join(t.TempDir(), "nested", "out")
    x := &Exporter{OutDir: dir, Pause: 0, Log: quietLog(), sleep: func(time.Duration) {}}
    _, err := x.ExportAll([]*Graphic{{Format: layout.PPT43, PNG: []byte("x")}}, "Retiro")
    require.NoError(t, err)
    _, err = os.Stat(filepath.Join(dir, "casa_retiro_ppt_4_3.png"))
    assert.NoError(t, err)
}

func TestSlug(t *testing.T) {
    assert.Equal(t, "la_mesa_abierta", Slug("La Mesa Abierta"))
    assert.Equal(t, "a_o_nuevo_2026_", Slug("Año Nuevo 2026!"))
    assert.Equal(t, "", Slug(""))
}
