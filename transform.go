package escore

import "math"

// Transform is a 4x4 matrix in column-major order: element (row, col) lives
// at index col*4+row. It maps a component's local space into its parent's
// space. Only the 2D-affine lanes plus Z translation are ever non-trivial,
// but the full 4x4 layout keeps composition with the rendering backend direct.
type Transform [16]float32

// IdentityTransform returns the identity matrix.
func IdentityTransform() Transform {
	return Transform{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mult returns t * o (o applied first, then t).
func (t Transform) Mult(o Transform) Transform {
	var r Transform
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += t[k*4+row] * o[col*4+k]
			}
			r[col*4+row] = sum
		}
	}
	return r
}

// Translate post-multiplies a translation by (x, y, z).
func (t Transform) Translate(x, y, z float32) Transform {
	m := IdentityTransform()
	m[12] = x
	m[13] = y
	m[14] = z
	return t.Mult(m)
}

// RotateZ post-multiplies a rotation of rad radians about the Z axis.
func (t Transform) RotateZ(rad float32) Transform {
	sin, cos := math.Sincos(float64(rad))
	m := IdentityTransform()
	m[0] = float32(cos)
	m[1] = float32(sin)
	m[4] = float32(-sin)
	m[5] = float32(cos)
	return t.Mult(m)
}

// ScaleXY post-multiplies a scale by (sx, sy).
func (t Transform) ScaleXY(sx, sy float32) Transform {
	m := IdentityTransform()
	m[0] = sx
	m[5] = sy
	return t.Mult(m)
}

// Translation returns the matrix's translation column.
func (t Transform) Translation() Vec3 {
	return Vec3{t[12], t[13], t[14]}
}

// TransformPoint applies the matrix to the 2D point (x, y).
func (t Transform) TransformPoint(x, y float32) (float32, float32) {
	return t[0]*x + t[4]*y + t[12], t[1]*x + t[5]*y + t[13]
}

// affine reports the 2D-affine lanes [a, b, c, d, tx, ty] used by the
// rendering backend.
func (t Transform) affine() (a, b, c, d, tx, ty float32) {
	return t[0], t[1], t[4], t[5], t[12], t[13]
}

// --- Component geometry ---

// Position returns the component's local position.
func (c *Component) Position() Vec3 {
	return c.position
}

// SetPosition sets the component's local position.
func (c *Component) SetPosition(x, y, z float32) {
	c.position = Vec3{x, y, z}
	c.transformDirty = true
	if c.PositionChangedFunc != nil {
		c.PositionChangedFunc(c)
	}
}

// Origin returns the normalized anchor point (fraction of size); (0, 0) is
// the top-left corner, (0.5, 0.5) the center.
func (c *Component) Origin() Vec2 {
	return c.origin
}

// SetOrigin sets the normalized anchor point.
func (c *Component) SetOrigin(x, y float32) {
	c.origin = Vec2{x, y}
	c.transformDirty = true
	if c.OriginChangedFunc != nil {
		c.OriginChangedFunc(c)
	}
}

// RotationOrigin returns the normalized point rotation pivots around.
func (c *Component) RotationOrigin() Vec2 {
	return c.rotationOrigin
}

// SetRotationOrigin sets the normalized point rotation pivots around.
func (c *Component) SetRotationOrigin(x, y float32) {
	c.rotationOrigin = Vec2{x, y}
	c.transformDirty = true
	if c.RotationOriginChangedFunc != nil {
		c.RotationOriginChangedFunc(c)
	}
}

// Size returns the component's size in pixels.
func (c *Component) Size() Vec2 {
	return c.size
}

// SetSize sets the component's size in pixels.
func (c *Component) SetSize(w, h float32) {
	c.size = Vec2{w, h}
	c.transformDirty = true
	if c.SizeChangedFunc != nil {
		c.SizeChangedFunc(c)
	}
}

// Rotation returns the component's rotation in radians.
func (c *Component) Rotation() float32 {
	return c.rotation
}

// SetRotation sets the component's rotation in radians.
func (c *Component) SetRotation(rad float32) {
	c.rotation = rad
	c.transformDirty = true
	if c.RotationChangedFunc != nil {
		c.RotationChangedFunc(c)
	}
}

// SetRotationDegrees sets the component's rotation from degrees.
func (c *Component) SetRotationDegrees(deg float32) {
	c.SetRotation(DegToRad(deg))
}

// RotationSize returns the size used for rotation math. Widgets whose visual
// extent differs from their layout size (e.g. reflected images) swap this out.
func (c *Component) RotationSize() Vec2 {
	return c.size
}

// Scale returns the component's uniform scale factor.
func (c *Component) Scale() float32 {
	return c.scale
}

// SetScale sets the component's uniform scale factor.
func (c *Component) SetScale(scale float32) {
	c.scale = scale
	c.transformDirty = true
	if c.ScaleChangedFunc != nil {
		c.ScaleChangedFunc(c)
	}
}

// ScaleOrigin returns the normalized point scaling grows from.
func (c *Component) ScaleOrigin() Vec2 {
	return c.scaleOrigin
}

// SetScaleOrigin sets the normalized point scaling grows from.
func (c *Component) SetScaleOrigin(x, y float32) {
	c.scaleOrigin = Vec2{x, y}
	c.transformDirty = true
	if c.ScaleOriginChangedFunc != nil {
		c.ScaleOriginChangedFunc(c)
	}
}

// ScreenOffset returns the pixel nudge applied after the anchor.
func (c *Component) ScreenOffset() Vec2 {
	return c.screenOffset
}

// SetScreenOffset sets the pixel nudge applied after the anchor.
func (c *Component) SetScreenOffset(x, y float32) {
	c.screenOffset = Vec2{x, y}
	c.transformDirty = true
	if c.ScreenOffsetChangedFunc != nil {
		c.ScreenOffsetChangedFunc(c)
	}
}

// GetTransform returns the matrix mapping local space to parent space,
// combining translate(position) -> translate(-origin*size) -> rotate about
// the rotation origin -> scale about the scale origin. The matrix is cached;
// it is recomputed only on the first access after a geometric setter ran.
func (c *Component) GetTransform() Transform {
	if !c.transformDirty {
		return c.transform
	}

	t := IdentityTransform()
	t = t.Translate(
		c.position.X-c.origin.X*c.size.X+c.screenOffset.X,
		c.position.Y-c.origin.Y*c.size.Y+c.screenOffset.Y,
		c.position.Z,
	)
	if c.rotation != 0 {
		rs := c.RotationSize()
		px := c.rotationOrigin.X * rs.X
		py := c.rotationOrigin.Y * rs.Y
		t = t.Translate(px, py, 0)
		t = t.RotateZ(c.rotation)
		t = t.Translate(-px, -py, 0)
	}
	if c.scale != 1 {
		qx := c.scaleOrigin.X * c.size.X
		qy := c.scaleOrigin.Y * c.size.Y
		t = t.Translate(qx, qy, 0)
		t = t.ScaleXY(c.scale, c.scale)
		t = t.Translate(-qx, -qy, 0)
	}

	c.transform = t
	c.transformDirty = false
	return c.transform
}

// GetCenter returns the center point of the component in parent space,
// taking the anchor into account. Rotation and scale origins do not shift it.
func (c *Component) GetCenter() Vec2 {
	return Vec2{
		c.position.X - c.size.X*c.origin.X + c.size.X/2,
		c.position.Y - c.size.Y*c.origin.Y + c.size.Y/2,
	}
}
