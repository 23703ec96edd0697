package graphics

// Shadow defines a drop shadow cast by an elevated surface.
//
// BlurRadius controls softness. Sigma for the rasterizer is BlurRadius * 0.5.
type Shadow struct {
	Color      Color
	Offset     Offset
	BlurRadius float64
}

// Sigma returns the blur sigma for the rasterizer's mask filter.
// Returns 0 if BlurRadius is zero or negative.
func (s Shadow) Sigma() float64 {
	if s.BlurRadius <= 0 {
		return 0
	}
	return s.BlurRadius * 0.5
}

// ShadowForElevation derives a drop shadow from a logical elevation.
// Elevation 0 casts no shadow. Offset and blur grow with elevation so that
// higher surfaces read as farther from the backdrop.
func ShadowForElevation(elevation float64, color Color) Shadow {
	if elevation <= 0 {
		return Shadow{}
	}
	return Shadow{
		Color:      color,
		Offset:     Offset{X: 0, Y: elevation * 0.5},
		BlurRadius: elevation,
	}
}
