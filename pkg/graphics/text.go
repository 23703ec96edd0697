package graphics

import "fmt"

// FontWeight represents a numeric font weight.
type FontWeight int

const (
	FontWeightThin       FontWeight = 100
	FontWeightExtraLight FontWeight = 200
	FontWeightLight      FontWeight = 300
	FontWeightNormal     FontWeight = 400
	FontWeightMedium     FontWeight = 500
	FontWeightSemibold   FontWeight = 600
	FontWeightBold       FontWeight = 700
	FontWeightExtraBold  FontWeight = 800
	FontWeightBlack      FontWeight = 900
)

// String returns a human-readable representation of the font weight.
func (w FontWeight) String() string {
	switch w {
	case FontWeightThin:
		return "thin"
	case FontWeightExtraLight:
		return "extra_light"
	case FontWeightLight:
		return "light"
	case FontWeightNormal:
		return "normal"
	case FontWeightMedium:
		return "medium"
	case FontWeightSemibold:
		return "semibold"
	case FontWeightBold:
		return "bold"
	case FontWeightExtraBold:
		return "extra_bold"
	case FontWeightBlack:
		return "black"
	default:
		return fmt.Sprintf("FontWeight(%d)", int(w))
	}
}

// FontStyle selects upright or italic glyphs.
type FontStyle int

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
)

// TextStyle describes how a run of text is drawn. Only the visual
// attributes live here; layout and shaping belong to the host toolkit.
type TextStyle struct {
	Color         Color
	FontFamily    string
	FontSize      float64
	FontWeight    FontWeight
	FontStyle     FontStyle
	LetterSpacing float64
}

// WithColor returns a copy of the TextStyle with the specified color.
func (s TextStyle) WithColor(c Color) TextStyle {
	s.Color = c
	return s
}
