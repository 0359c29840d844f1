package models

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// FontFamily is one of the typefaces the card can preview
type FontFamily string

const (
	FontInter      FontFamily = "Inter"
	FontRobotoMono FontFamily = "Roboto Mono"
	FontMontserrat FontFamily = "Montserrat"
)

// FontFamilies lists the families in display order
var FontFamilies = []FontFamily{FontInter, FontRobotoMono, FontMontserrat}

// ParseFontFamily maps user input to a known family.
// Unknown input falls back to Inter.
func ParseFontFamily(s string) FontFamily {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(normalized)

	switch normalized {
	case "robotomono", "roboto", "mono":
		return FontRobotoMono
	case "montserrat":
		return FontMontserrat
	default:
		return FontInter
	}
}

// Valid reports whether f is one of the known families
func (f FontFamily) Valid() bool {
	for _, known := range FontFamilies {
		if f == known {
			return true
		}
	}
	return false
}

// Bound describes the allowed range and step of a numeric style field
type Bound struct {
	Min  float64
	Max  float64
	Step float64
}

// Style field bounds
var (
	FontSizeBound      = Bound{Min: 12, Max: 48, Step: 1}
	FontWeightBound    = Bound{Min: 100, Max: 900, Step: 100}
	LetterSpacingBound = Bound{Min: -2, Max: 50, Step: 0.5}
	LineHeightBound    = Bound{Min: 1.0, Max: 3.0, Step: 0.1}
)

// Clamp forces v into [Min, Max]. NaN becomes Min.
func (b Bound) Clamp(v float64) float64 {
	if math.IsNaN(v) || v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// Snap clamps v and rounds it to the nearest step counted from Min
func (b Bound) Snap(v float64) float64 {
	v = b.Clamp(v)
	if b.Step <= 0 {
		return v
	}
	steps := math.Round((v - b.Min) / b.Step)
	snapped := b.Min + steps*b.Step
	// Steps like 0.1 are not exact in binary; keep one decimal more than the step needs.
	snapped = math.Round(snapped*1000) / 1000
	return b.Clamp(snapped)
}

// Nudge moves v by delta whole steps, snapping the result
func (b Bound) Nudge(v float64, delta int) float64 {
	return b.Snap(b.Snap(v) + float64(delta)*b.Step)
}

// Parse reads free-form numeric input. Empty or non-numeric input
// yields Min; anything else, out-of-range numbers included, is clamped
// but not snapped.
func (b Bound) Parse(raw string) float64 {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimSuffix(raw, "px")
	if raw == "" {
		return b.Min
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return b.Min
	}
	return b.Clamp(v)
}

// Fraction returns where v sits between Min and Max, from 0 to 1
func (b Bound) Fraction(v float64) float64 {
	if b.Max == b.Min {
		return 0
	}
	return (b.Clamp(v) - b.Min) / (b.Max - b.Min)
}

// StyleParameters holds the typographic settings of the card
type StyleParameters struct {
	FontFamily      FontFamily `yaml:"font_family" json:"fontFamily"`
	FontSizePx      float64    `yaml:"font_size_px" json:"fontSizePx"`
	FontWeight      float64    `yaml:"font_weight" json:"fontWeight"`
	LetterSpacingPx float64    `yaml:"letter_spacing_px" json:"letterSpacingPx"`
	LineHeight      float64    `yaml:"line_height" json:"lineHeight"`
}

// DefaultStyle returns the style a fresh or reset card starts with
func DefaultStyle() StyleParameters {
	return StyleParameters{
		FontFamily:      FontInter,
		FontSizePx:      24,
		FontWeight:      400,
		LetterSpacingPx: 0,
		LineHeight:      1.5,
	}
}

// Sanitize returns a copy with every field inside its bound
func (s StyleParameters) Sanitize() StyleParameters {
	if !s.FontFamily.Valid() {
		s.FontFamily = ParseFontFamily(string(s.FontFamily))
	}
	s.FontSizePx = FontSizeBound.Clamp(s.FontSizePx)
	s.FontWeight = FontWeightBound.Clamp(s.FontWeight)
	s.LetterSpacingPx = LetterSpacingBound.Clamp(s.LetterSpacingPx)
	s.LineHeight = LineHeightBound.Clamp(s.LineHeight)
	return s
}
