// Package layout holds the per-format design tables and the composer that
// turns an event record into a finished graphic. The four output formats
// share one draw program; everything that differs between them lives in
// their FormatSpec.
package layout

import "github.com/casaiglesia/graphics/internal/assets"

// Format identifies one of the four output formats.
type Format string

const (
    PPT43          Format = "ppt_4_3"
    InstagramPost  Format = "instagram_post"
    InstagramStory Format = "instagram_story"
    FacebookPost   Format = "facebook_post"
)

// Formats returns all formats in the fixed batch-render order.
func Formats() []Format {
    return []Format{PPT43, InstagramPost, InstagramStory, FacebookPost}
}

// Event is the record a graphic is rendered from. Title, Date, Time and
// Location are expected; Subtitle is optional. An empty Date, Time or
// Location suppresses that detail row entirely.
type Event struct {
    Title    string `json:"title"`
    Subtitle string `json:"subtitle"`
    Date     string `json:"date"`
    Time     string `json:"time"`
    Location string `json:"location"`
}

// IllustrationAdjustment tunes how the illustration sits in its reference
// rectangle. Values are taken as-is; callers are trusted to stay in range
// (scale 0.5-2.0, offsets -100..100 percent, opacity 0.05-1.0).
type IllustrationAdjustment struct {
    Scale   float64 `json:"scale"`    // multiplies the draw size
    OffsetX float64 `json:"offset_x"` // percent of the reference rect width
    OffsetY float64 `json:"offset_y"` // percent of the reference rect height
    Opacity float64 `json:"opacity"`  // 0 selects the format default
}

// DefaultIllustrationAdjustment is the neutral adjustment.
func DefaultIllustrationAdjustment() IllustrationAdjustment {
    return IllustrationAdjustment{Scale: 1}
}

// FieldOffset nudges one text field by whole device pixels, applied after
// the design-to-device scaling.
type FieldOffset struct {
    X float64 `json:"offset_x"`
    Y float64 `json:"offset_y"`
}

// FieldAdjustments groups the per-field offsets for one format. The zero
// value leaves the base layout untouched.
type FieldAdjustments struct {
    Title    FieldOffset `json:"title"`
    Subtitle FieldOffset `json:"subtitle"`
    Date     FieldOffset `json:"date"`
    Time     FieldOffset `json:"time"`
    Location FieldOffset `json:"location"`
}

// Line is a decorative stroke, endpoints in design pixels.
type Line struct {
    X1, Y1, X2, Y2 float64
}

// LogoBox is the fixed square the logo is drawn into.
type LogoBox struct {
    X, Y, Size float64
}

// IllustrationBox is the reference rectangle the illustration is aspect-fit
// into, with the format's default opacity.
type IllustrationBox struct {
    X, Y, W, H float64
    Opacity    float64
}

// TitleSpec is the auto-fit box for the title.
type TitleSpec struct {
    X, Y      float64
    MaxWidth  float64
    MaxHeight float64
    BaseSize  float64
    MinSize   float64
    Role      assets.Role
    // CenterV centers the title block vertically between BandTop and
    // BandBottom instead of anchoring to Y (the wide format does this).
    CenterV    bool
    BandTop    float64
    BandBottom float64
}

// SubtitleSpec sizes the optional subtitle and the room it needs.
type SubtitleSpec struct {
    Size float64 // italic, fixed size
    Gap  float64 // below the last title line
    // RowShift is added to every detail row when a subtitle is present, so
    // the taller title block does not collide with the rows.
    RowShift float64
}

// DetailRow places one icon/text pair, design pixels.
type DetailRow struct {
    IconX, IconY, IconSize float64
    TextX, TextY           float64
}

// FormatSpec is the full design table for one format. All coordinates are
// design-time pixels at (BaseWidth, BaseHeight); the composer converts them
// with the derived scale factor.
type FormatSpec struct {
    Kind       Format
    BaseWidth  int
    BaseHeight int
    Multiplier int

    Illustration IllustrationBox
    Lines        []Line
    Logo         *LogoBox

    Title    TitleSpec
    Subtitle SubtitleSpec

    DetailSize float64
    DetailRole assets.Role
    // Rows are date, time, location in order.
    Rows               [3]DetailRow
    LocationMaxWidth   float64
    LocationLineHeight float64
}

// OutputSize returns the device pixel dimensions of the rendered surface.
func (s FormatSpec) OutputSize() (int, int) {
    return s.BaseWidth * s.Multiplier, s.BaseHeight * s.Multiplier
}

// Spec looks up the design table for a format.
func Spec(f Format) (FormatSpec, bool) {
    s, ok := specs[f]
    return s, ok
}
