package escore

import "math"

// Vec2 is a 2D vector used for sizes, origins, and screen offsets.
type Vec2 struct {
	X, Y float32
}

// Vec3 is a 3D vector. Component positions carry a Z lane even though
// rendering is 2D; Z participates only in translation.
type Vec3 struct {
	X, Y, Z float32
}

// Vec2 returns the XY lanes of a Vec3.
func (v Vec3) Vec2() Vec2 {
	return Vec2{v.X, v.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, W, H float32
}

// IsZero reports whether the rectangle is the zero value (unset clip rect).
func (r Rect) IsZero() bool {
	return r.X == 0 && r.Y == 0 && r.W == 0 && r.H == 0
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.W &&
		y >= r.Y && y <= r.Y+r.H
}

// Intersect returns the intersection of r and other.
// Returns an empty rectangle (W=0, H=0) when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x1 := maxf(r.X, other.X)
	y1 := maxf(r.Y, other.Y)
	x2 := minf(r.X+r.W, other.X+other.W)
	y2 := minf(r.Y+r.H, other.Y+other.H)
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{x1, y1, x2 - x1, y2 - y1}
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float32
}

// ColorWhite is the default color (no tint).
var ColorWhite = Color{1, 1, 1, 1}

// ExtraType classifies where a component came from: built into a view,
// declared as a theme extra, a static (never animated) extra, or a child of
// a themed extra.
type ExtraType uint8

const (
	ExtraBuiltin ExtraType = iota
	Extra
	ExtraStatic
	ExtraChildren
)

// AnimateFlags selects which attribute families AnimateTo drives.
type AnimateFlags uint32

const (
	AnimatePosition AnimateFlags = 1 << iota
	AnimateScale
	AnimateOpacity

	AnimateAll AnimateFlags = 0xFFFFFFFF
)

// ThemeFlags selects which theme-declared attribute families ApplyTheme
// honors. Callers can apply only a subset (e.g. position but not size).
type ThemeFlags uint32

const (
	ThemePosition ThemeFlags = 1 << iota
	ThemeSize
	ThemeOrigin
	ThemeRotation
	ThemeZIndex
	ThemeVisible
	ThemeOpacity

	ThemeAll ThemeFlags = 0xFFFFFFFF
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// componentIDCounter is a plain counter; the tree is single-threaded.
var componentIDCounter uint32

func nextComponentID() uint32 {
	componentIDCounter++
	return componentIDCounter
}

// DegToRad converts degrees to radians. Theme rotation values are declared in
// degrees; component rotation is stored in radians.
func DegToRad(deg float32) float32 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 {
	return rad * 180 / math.Pi
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
