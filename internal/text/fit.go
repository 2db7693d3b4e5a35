// Package text implements the greedy line wrap and the iterative
// fit-to-box sizing used for event titles.
package text

import (
    "strings"

    "golang.org/x/image/font"
)

// shrinkStep is how much the candidate font size drops per fit iteration.
const shrinkStep = 4

// Width measures the advance of s in pixels, rounded up.
func Width(face font.Face, s string) float64 {
    return float64(font.MeasureString(face, s).Ceil())
}

// WrapLines splits text into lines no wider than maxWidth using a greedy
// word wrap. A single word wider than maxWidth is emitted on its own line
// and may overflow; words are never split. Joining the result with single
// spaces reproduces the input token sequence.
func WrapLines(face font.Face, text string, maxWidth float64) []string {
    words := strings.Split(text, " ")
    var lines []string
    current := ""
    for _, word := range words {
        candidate := word
        if current != "" {
            candidate = current + " " + word
        }
        if Width(face, candidate) <= maxWidth {
            current = candidate
            continue
        }
        if current != "" {
            lines = append(lines, current)
        }
        current = word
    }
    if current != "" {
        lines = append(lines, current)
    }
    return lines
}

// Fit is the result of FitToBox: the chosen font size and its line split.
type Fit struct {
    Size  float64
    Lines []string
}

// FitToBox finds the largest font size in [minSize, baseSize], stepping down
// 4px at a time, whose wrapped lines fit maxWidth and whose total height
// (lines * size * lineHeight) fits maxHeight. Text containing explicit "\n"
// breaks is split on them verbatim and never re-wrapped. If no size fits,
// the minimum size is returned with whatever lines it produces; vertical
// overflow at that point is accepted rather than reported as an error.
func FitToBox(text string, maxWidth, maxHeight, baseSize, minSize, lineHeight float64, faceFor func(size float64) font.Face) Fit {
    for size := baseSize; size >= minSize; size -= shrinkStep {
        face := faceFor(size)
        lines := split(face, text, maxWidth)
        if fits(face, lines, size, maxWidth, maxHeight, lineHeight) {
            return Fit{Size: size, Lines: lines}
        }
    }
    face := faceFor(minSize)
    return Fit{Size: minSize, Lines: split(face, text, maxWidth)}
}

func split(face font.Face, text string, maxWidth float64) []string {
    if strings.Contains(text, "\n") {
        return strings.Split(text, "\n")
    }
    return WrapLines(face, text, maxWidth)
}

func fits(face font.Face, lines []string, size, maxWidth, maxHeight, lineHeight float64) bool {
    if float64(len(lines))*size*lineHeight > maxHeight {
        return false
    }
    for _, line := range lines {
        if Width(face, line) > maxWidth {
            return false
        }
    }
    return true
}
