// Package config loads the server configuration from a YAML file, with the
// PORT environment variable taking precedence over the file like the rest of
// our deployments expect.
package config

import (
    "fmt"
    "os"

    "gopkg.in/yaml.v3"

    "github.com/casaiglesia/graphics/internal/assets"
)

// Config is the full server configuration.
type Config struct {
    Port     string           `yaml:"port"`
    LogLevel string           `yaml:"log_level"`
    DataDir  string           `yaml:"data_dir"`
    OutDir   string           `yaml:"out_dir"`
    Logo     string           `yaml:"logo"` // default logo reference (path is read and inlined by the caller)
    Fonts    assets.FontPaths `yaml:"fonts"`
}

// Default is the configuration used when no file is present.
func Default() Config {
    return Config{
        Port:     "8080",
        LogLevel: "info",
        DataDir:  "data",
        OutDir:   "output",
    }
}

// Load reads path if it exists, otherwise returns defaults. A missing file
// is not an error; a malformed one is.
func Load(path string) (Config, error) {
    cfg := Default()
    raw, err := os.ReadFile(path)
    if os.IsNotExist(err) {
        return cfg, nil
    }
    if err != nil {
        return cfg, fmt.Errorf("reading %s: %w", path, err)
    }
    if err := yaml.Unmarshal(raw, &cfg); err != nil {
        return cfg, fmt.Errorf("parsing %s: %w", path, err)
    }
    if port := os.Getenv("PORT"); port != "" {
        cfg.Port = port
    }
    return cfg, nil
}
