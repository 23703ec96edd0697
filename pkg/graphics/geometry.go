package graphics

import "fmt"

// Offset is a 2D translation in logical pixels.
type Offset struct {
	X float64
	Y float64
}

// Radius describes the elliptical radii of a rounded corner.
type Radius struct {
	X float64
	Y float64
}

// CircularRadius returns a Radius with equal x and y radii.
func CircularRadius(r float64) Radius {
	return Radius{X: r, Y: r}
}

// BorderSide describes one stroked edge of a shape outline.
// A zero BorderSide draws nothing.
type BorderSide struct {
	// Color is the stroke color.
	Color Color
	// Width is the stroke width in logical pixels.
	Width float64
}

// ShapeKind identifies the topology of a shape outline. Kinds are discrete:
// two shapes of different kinds cannot be continuously interpolated.
type ShapeKind int

const (
	// ShapeRectangle is a sharp-cornered rectangle.
	ShapeRectangle ShapeKind = iota
	// ShapeRoundedRectangle is a rectangle with rounded corners.
	ShapeRoundedRectangle
	// ShapeStadium is a rectangle with fully circular ends.
	ShapeStadium
	// ShapeCircle is a circle inscribed in the bounding box.
	ShapeCircle
)

// String returns a human-readable representation of the shape kind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeRectangle:
		return "rectangle"
	case ShapeRoundedRectangle:
		return "rounded_rectangle"
	case ShapeStadium:
		return "stadium"
	case ShapeCircle:
		return "circle"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// Shape describes a control outline: a discrete topology plus the corner
// radius used when the kind is ShapeRoundedRectangle.
type Shape struct {
	Kind   ShapeKind
	Radius Radius
}

// RoundedShape returns a rounded rectangle shape with circular corners.
func RoundedShape(radius float64) Shape {
	return Shape{Kind: ShapeRoundedRectangle, Radius: CircularRadius(radius)}
}
