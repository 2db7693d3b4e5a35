package config

import (
    "os"
    "path/filepath"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
    cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
    require.NoError(t, err)
    assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
    path := filepath.Join(t.TempDir(), "casa.yaml")
    require.NoError(t, os.WriteFile(path, []byte(`
port: "9000"
log_level: debug
out_dir: renders
fonts:
  title_light: fonts/Montserrat-Light.ttf
`), 0o644))

    cfg, err := Load(path)
    require.NoError(t, err)
    assert.Equal(t, "9000", cfg.Port)
    assert.Equal(t, "debug", cfg.LogLevel)
    assert.Equal(t, "renders", cfg.OutDir)
    assert.Equal(t, "fonts/Montserrat-Light.ttf", cfg.Fonts.TitleLight)
    // Unset keys keep their defaults.
    assert.Equal(t, "data", cfg.DataDir)
}

func TestLoadEnvPortOverride(t *testing.T) {
    t.Setenv("PORT", "7777")
    path := filepath.Join(t.TempDir(), "casa.yaml")
    require.NoError(t, os.WriteFile(path, []byte(`port: "9000"`), 0o644))

    cfg, err := Load(path)
    require.NoError(t, err)
    assert.Equal(t, "7777", cfg.Port)
}

func TestLoadMalformed(t *testing.T) {
    path := filepath.Join(t.TempDir(), "casa.yaml")
    require.NoError(t, os.WriteFile(path, []byte("port: [oops"), 0o644))
    _, err := Load(path)
    assert.Error(t, err)
}
