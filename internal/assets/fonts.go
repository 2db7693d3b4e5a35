package assets

import (
    "os"

    "github.com/golang/freetype/truetype"
    "golang.org/x/image/font"
    "golang.org/x/image/font/gofont/goitalic"
    "golang.org/x/image/font/gofont/goregular"
)

// Role names one of the four typeface slots the layouts use.
type Role int

const (
    TitleRegular Role = iota // Montserrat Regular
    TitleLight               // Montserrat Light
    Detail                   // Merriweather Regular
    DetailItalic             // Merriweather Italic
)

// FontPaths points at the brand TTF files. Any missing or unreadable file
// falls back to the bundled Go fonts, mirroring the system-font fallback of
// the design scripts, so a FontSet is always usable.
type FontPaths struct {
    TitleRegular string `yaml:"title_regular"`
    TitleLight   string `yaml:"title_light"`
    Detail       string `yaml:"detail"`
    DetailItalic string `yaml:"detail_italic"`
}

// FontSet holds the parsed typefaces and mints faces at arbitrary sizes.
type FontSet struct {
    fonts [4]*truetype.Font
}

// LoadFonts parses the configured TTFs. It never fails: each slot that
// cannot be loaded uses a Go font instead, and the first error encountered
// is returned so the caller can log it.
func LoadFonts(paths FontPaths) (*FontSet, error) {
    regular, _ := truetype.Parse(goregular.TTF)
    italic, _ := truetype.Parse(goitalic.TTF)

    set := &FontSet{fonts: [4]*truetype.Font{regular, regular, regular, italic}}
    var firstErr error
    for role, path := range map[Role]string{
        TitleRegular: paths.TitleRegular,
        TitleLight:   paths.TitleLight,
        Detail:       paths.Detail,
        DetailItalic: paths.DetailItalic,
    } {
        if path == "" {
            continue
        }
        f, err := parseFile(path)
        if err != nil {
            if firstErr == nil {
                firstErr = err
            }
            continue
        }
        set.fonts[role] = f
    }
    return set, firstErr
}

// Face returns a face for the role at the given pixel size. DPI is fixed at
// 72 so point size equals pixel size.
func (s *FontSet) Face(role Role, sizePx float64) font.Face {
    return truetype.NewFace(s.fonts[role], &truetype.Options{
        Size:    sizePx,
        DPI:     72,
        Hinting: font.HintingFull,
    })
}

func parseFile(path string) (*truetype.Font, error) {
    raw, err := os.ReadFile(path)
    if err != nil {
        return nil, err
    }
    return truetype.Parse(raw)
}
