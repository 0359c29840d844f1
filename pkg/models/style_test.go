package models

import (
	"math"
	"testing"
)

func TestBoundClamp(t *testing.T) {
	tests := []struct {
		name     string
		bound    Bound
		input    float64
		expected float64
	}{
		{"font size below min", FontSizeBound, 5, 12},
		{"font size above max", FontSizeBound, 100, 48},
		{"font size in range", FontSizeBound, 30, 30},
		{"weight below min", FontWeightBound, 0, 100},
		{"spacing negative in range", LetterSpacingBound, -1.5, -1.5},
		{"spacing below min", LetterSpacingBound, -10, -2},
		{"line height above max", LineHeightBound, 7, 3},
		{"NaN becomes min", LineHeightBound, math.NaN(), 1},
		{"positive infinity becomes max", FontSizeBound, math.Inf(1), 48},
		{"negative infinity becomes min", FontSizeBound, math.Inf(-1), 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.bound.Clamp(tt.input)
			if result != tt.expected {
				t.Errorf("Clamp(%v) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestBoundSnap(t *testing.T) {
	tests := []struct {
		name     string
		bound    Bound
		input    float64
		expected float64
	}{
		{"weight rounds down", FontWeightBound, 440, 400},
		{"weight rounds up", FontWeightBound, 460, 500},
		{"weight clamps then snaps", FontWeightBound, 2000, 900},
		{"spacing half step", LetterSpacingBound, 1.3, 1.5},
		{"spacing from negative min", LetterSpacingBound, -1.8, -2},
		{"line height tenth", LineHeightBound, 1.54, 1.5},
		{"line height rounds up", LineHeightBound, 2.26, 2.3},
		{"size integer", FontSizeBound, 20.6, 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.bound.Snap(tt.input)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("Snap(%v) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestBoundSnapStaysInRangeForAllInputs(t *testing.T) {
	bounds := []Bound{FontSizeBound, FontWeightBound, LetterSpacingBound, LineHeightBound}
	for _, b := range bounds {
		for v := b.Min - 20; v <= b.Max+20; v += 0.37 {
			got := b.Snap(v)
			if got < b.Min || got > b.Max {
				t.Fatalf("Snap(%v) = %v escapes [%v, %v]", v, got, b.Min, b.Max)
			}
			steps := (got - b.Min) / b.Step
			if math.Abs(steps-math.Round(steps)) > 1e-6 {
				t.Fatalf("Snap(%v) = %v is not on a %v step", v, got, b.Step)
			}
		}
	}
}

func TestBoundNudge(t *testing.T) {
	if got := FontWeightBound.Nudge(400, 1); got != 500 {
		t.Errorf("Nudge(400, 1) = %v, want 500", got)
	}
	if got := FontWeightBound.Nudge(900, 3); got != 900 {
		t.Errorf("Nudge(900, 3) = %v, want 900", got)
	}
	if got := LineHeightBound.Nudge(1.5, -2); math.Abs(got-1.3) > 1e-9 {
		t.Errorf("Nudge(1.5, -2) = %v, want 1.3", got)
	}
	if got := LetterSpacingBound.Nudge(-2, -1); got != -2 {
		t.Errorf("Nudge(-2, -1) = %v, want -2", got)
	}
}

func TestBoundParse(t *testing.T) {
	tests := []struct {
		name     string
		bound    Bound
		input    string
		expected float64
	}{
		{"empty defaults to min", FontSizeBound, "", 12},
		{"whitespace defaults to min", FontSizeBound, "   ", 12},
		{"garbage defaults to min", FontWeightBound, "bold", 100},
		{"free-form keeps off-step value", FontWeightBound, "450", 450},
		{"px suffix accepted", FontSizeBound, "30px", 30},
		{"above max clamps", FontSizeBound, "99", 48},
		{"negative spacing", LetterSpacingBound, "-1.25", -1.25},
		{"below min clamps", LineHeightBound, "0.2", 1},
		{"overflow clamps to max", FontSizeBound, "1e400", 48},
		{"negative overflow clamps to min", LetterSpacingBound, "-1e400", -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.bound.Parse(tt.input)
			if result != tt.expected {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseFontFamily(t *testing.T) {
	tests := []struct {
		input    string
		expected FontFamily
	}{
		{"Inter", FontInter},
		{"roboto-mono", FontRobotoMono},
		{"Roboto Mono", FontRobotoMono},
		{"ROBOTOMONO", FontRobotoMono},
		{"montserrat", FontMontserrat},
		{"Comic Sans", FontInter},
		{"", FontInter},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseFontFamily(tt.input); got != tt.expected {
				t.Errorf("ParseFontFamily(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestStyleSanitize(t *testing.T) {
	s := StyleParameters{
		FontFamily:      "montserrat",
		FontSizePx:      2,
		FontWeight:      1200,
		LetterSpacingPx: 80,
		LineHeight:      0,
	}.Sanitize()

	expected := StyleParameters{
		FontFamily:      FontMontserrat,
		FontSizePx:      12,
		FontWeight:      900,
		LetterSpacingPx: 50,
		LineHeight:      1,
	}
	if s != expected {
		t.Errorf("Sanitize() = %+v, want %+v", s, expected)
	}

	if DefaultStyle().Sanitize() != DefaultStyle() {
		t.Error("default style should already be sanitized")
	}
}

func TestQuoteFormat(t *testing.T) {
	q := Quote{Text: "Less is more.", Author: "Ludwig Mies van der Rohe"}
	expected := "「Less is more.」 - Ludwig Mies van der Rohe"
	if got := q.Format(); got != expected {
		t.Errorf("Format() = %q, want %q", got, expected)
	}
}

func TestSettingsNormalize(t *testing.T) {
	s := &Settings{UI: UISettings{Theme: "purple"}}
	s.Normalize()

	if s.UI.Theme != "dark" {
		t.Errorf("expected theme to fall back to dark, got %q", s.UI.Theme)
	}
	if s.Notifications.CopyFeedbackMs != 2000 {
		t.Errorf("expected copy feedback 2000ms, got %d", s.Notifications.CopyFeedbackMs)
	}
	if s.Notifications.ToastMs != 3000 {
		t.Errorf("expected toast 3000ms, got %d", s.Notifications.ToastMs)
	}
}
