package escore

import (
	"math"
	"testing"
)

const epsilon = 1e-4

func approx(t *testing.T, got, want float32, what string) {
	t.Helper()
	if math.Abs(float64(got-want)) > epsilon {
		t.Errorf("%s = %v, want %v", what, got, want)
	}
}

// --- Matrix primitives ---

func TestIdentityTransformPoint(t *testing.T) {
	id := IdentityTransform()
	x, y := id.TransformPoint(3, 7)
	approx(t, x, 3, "x")
	approx(t, y, 7, "y")
}

func TestTranslateThenRotate(t *testing.T) {
	// Rotate (1, 0) by 90 degrees, then translate by (10, 0).
	m := IdentityTransform().Translate(10, 0, 0).RotateZ(math.Pi / 2)
	x, y := m.TransformPoint(1, 0)
	approx(t, x, 10, "x")
	approx(t, y, 1, "y")
}

func TestMultComposesRightToLeft(t *testing.T) {
	a := IdentityTransform().Translate(5, 0, 0)
	b := IdentityTransform().ScaleXY(2, 2)
	// a*b scales first, then translates.
	x, y := a.Mult(b).TransformPoint(1, 1)
	approx(t, x, 7, "x")
	approx(t, y, 2, "y")
}

// --- Cache behavior ---

func TestTransformCacheMemoizes(t *testing.T) {
	c := NewComponent(nil)
	c.SetPosition(10, 20, 0)
	c.SetSize(100, 50)
	c.SetOrigin(0.5, 0.5)

	first := c.GetTransform()
	if c.transformDirty {
		t.Fatal("transformDirty should clear after GetTransform")
	}
	for i := 0; i < 5; i++ {
		if got := c.GetTransform(); got != first {
			t.Fatalf("access %d returned a different matrix", i)
		}
	}
}

func TestEveryGeometricSetterDirtiesCache(t *testing.T) {
	c := NewComponent(nil)
	setters := map[string]func(){
		"SetPosition":       func() { c.SetPosition(1, 2, 0) },
		"SetOrigin":         func() { c.SetOrigin(0.5, 0.5) },
		"SetRotationOrigin": func() { c.SetRotationOrigin(0.5, 0.5) },
		"SetSize":           func() { c.SetSize(10, 10) },
		"SetRotation":       func() { c.SetRotation(1) },
		"SetScale":          func() { c.SetScale(2) },
		"SetScaleOrigin":    func() { c.SetScaleOrigin(1, 1) },
		"SetScreenOffset":   func() { c.SetScreenOffset(3, 3) },
	}
	for name, set := range setters {
		c.GetTransform()
		set()
		if !c.transformDirty {
			t.Errorf("%s should mark the transform cache dirty", name)
		}
	}
}

func TestChangeHooksFire(t *testing.T) {
	c := NewComponent(nil)
	fired := ""
	c.PositionChangedFunc = func(*Component) { fired = "position" }
	c.SizeChangedFunc = func(*Component) { fired = "size" }

	c.SetPosition(1, 1, 0)
	if fired != "position" {
		t.Error("PositionChangedFunc should fire on SetPosition")
	}
	c.SetSize(5, 5)
	if fired != "size" {
		t.Error("SizeChangedFunc should fire on SetSize")
	}
}

// --- Composition semantics ---

func TestTransformAppliesAnchor(t *testing.T) {
	c := NewComponent(nil)
	c.SetPosition(100, 100, 0)
	c.SetSize(40, 20)
	c.SetOrigin(0.5, 0.5)

	// Local origin (0,0) lands at position minus half the size.
	x, y := c.GetTransform().TransformPoint(0, 0)
	approx(t, x, 80, "x")
	approx(t, y, 90, "y")
}

func TestTransformScreenOffsetNudges(t *testing.T) {
	c := NewComponent(nil)
	c.SetPosition(10, 10, 0)
	c.SetScreenOffset(3, -2)
	x, y := c.GetTransform().TransformPoint(0, 0)
	approx(t, x, 13, "x")
	approx(t, y, 8, "y")
}

func TestTransformRotationAboutOrigin(t *testing.T) {
	c := NewComponent(nil)
	c.SetSize(10, 10)
	c.SetRotationOrigin(0.5, 0.5)
	c.SetRotation(math.Pi)

	// 180 degrees about the center maps (0,0) to (10,10).
	x, y := c.GetTransform().TransformPoint(0, 0)
	approx(t, x, 10, "x")
	approx(t, y, 10, "y")
}

func TestTransformScaleAboutOrigin(t *testing.T) {
	c := NewComponent(nil)
	c.SetSize(10, 10)
	c.SetScaleOrigin(0.5, 0.5)
	c.SetScale(2)

	// Doubling about the center maps (0,0) to (-5,-5) and (10,10) to (15,15).
	x, y := c.GetTransform().TransformPoint(0, 0)
	approx(t, x, -5, "x0")
	approx(t, y, -5, "y0")
	x, y = c.GetTransform().TransformPoint(10, 10)
	approx(t, x, 15, "x1")
	approx(t, y, 15, "y1")
}

// --- GetCenter ---

func TestGetCenterWithCenterAnchor(t *testing.T) {
	c := NewComponent(nil)
	c.SetSize(100, 100)
	c.SetOrigin(0.5, 0.5)
	c.SetPosition(50, 50, 0)
	// Rotation and scale origins must not shift the center.
	c.SetRotationOrigin(1, 0)
	c.SetScaleOrigin(0, 1)

	center := c.GetCenter()
	approx(t, center.X, 50, "center.X")
	approx(t, center.Y, 50, "center.Y")
}

func TestGetCenterTopLeftAnchor(t *testing.T) {
	c := NewComponent(nil)
	c.SetSize(100, 40)
	c.SetPosition(10, 10, 0)
	center := c.GetCenter()
	approx(t, center.X, 60, "center.X")
	approx(t, center.Y, 30, "center.Y")
}

func TestSetRotationDegrees(t *testing.T) {
	c := NewComponent(nil)
	c.SetRotationDegrees(180)
	approx(t, c.Rotation(), math.Pi, "rotation")
}
