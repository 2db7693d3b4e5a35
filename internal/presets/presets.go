// Package presets is the catalog of known event types: each one pairs a
// display title with the illustration prompt and cached illustration file
// the operator UI offers for it.
package presets

import (
    "fmt"
    "os"
    "path/filepath"
    "strings"

    "gopkg.in/yaml.v3"
)

// Preset describes one event type.
type Preset struct {
    ID           string   `yaml:"id" json:"id"`
    Title        string   `yaml:"title" json:"title"`
    Keywords     []string `yaml:"keywords" json:"keywords"`
    Illustration string   `yaml:"illustration" json:"illustration"`
    Prompt       string   `yaml:"prompt" json:"prompt"`
}

type catalogFile struct {
    Presets []Preset `yaml:"presets"`
}

// LoadFromDataDir loads every *.yaml/*.yml catalog file in dataDir.
// Missing optional files are skipped; an empty directory is an error.
func LoadFromDataDir(dataDir string) ([]Preset, error) {
    entries, err := os.ReadDir(dataDir)
    if err != nil {
        return nil, fmt.Errorf("reading %s: %w", dataDir, err)
    }
    var all []Preset
    for _, entry := range entries {
        ext := filepath.Ext(entry.Name())
        if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
            continue
        }
        path := filepath.Join(dataDir, entry.Name())
        raw, err := os.ReadFile(path)
        if err != nil {
            return nil, fmt.Errorf("reading %s: %w", path, err)
        }
        var file catalogFile
        if err := yaml.Unmarshal(raw, &file); err != nil {
            return nil, fmt.Errorf("parsing %s: %w", path, err)
        }
        all = append(all, file.Presets...)
    }
    if len(all) == 0 {
        return nil, fmt.Errorf("no preset catalogs found in %s", dataDir)
    }
    return all, nil
}

// ByID finds a preset by its identifier.
func ByID(presets []Preset, id string) (Preset, bool) {
    for _, p := range presets {
        if p.ID == id {
            return p, true
        }
    }
    return Preset{}, false
}

// Filter keeps presets matching every word of the free-text query against
// id, title and keywords. An empty query keeps everything.
func Filter(presets []Preset, query string) []Preset {
    words := strings.Fields(strings.ToLower(query))
    if len(words) == 0 {
        return presets
    }
    var out []Preset
    for _, p := range presets {
        haystack := strings.ToLower(p.ID + " " + p.Title + " " + strings.Join(p.Keywords, " "))
        ok := true
        for _, w := range words {
            if !strings.Contains(haystack, w) {
                ok = false
                break
            }
        }
        if ok {
            out = append(out, p)
        }
    }
    return out
}
