package escore

// Renderer is the drawing backend consumed by the render walk. Implementations
// receive composed transforms as model matrices and screen-space clip
// rectangles for scissoring. An ebiten-backed implementation is provided by
// NewEbitenRenderer; tests use a recording fake.
type Renderer interface {
	// SetMatrix sets the model matrix for subsequent draws.
	SetMatrix(trans Transform)
	// DrawSolidRect fills a rectangle in the current model space.
	DrawSolidRect(x, y, w, h float32, color Color)
	// PushClipRect intersects subsequent draws with a screen-space rectangle.
	PushClipRect(r Rect)
	// PopClipRect restores the previous scissor state. Popping an empty
	// stack is a programming error and panics.
	PopClipRect()
}

// clipStack tracks nested screen-space scissor rectangles. Each pushed
// rectangle is intersected with the one below it, so the top entry is always
// the effective scissor region.
type clipStack struct {
	rects []Rect
}

// push intersects r with the current top and returns the effective region.
func (s *clipStack) push(r Rect) Rect {
	if len(s.rects) > 0 {
		r = s.rects[len(s.rects)-1].Intersect(r)
	}
	s.rects = append(s.rects, r)
	return r
}

func (s *clipStack) pop() {
	if len(s.rects) == 0 {
		panic("escore: PopClipRect without matching PushClipRect")
	}
	s.rects = s.rects[:len(s.rects)-1]
}

// top returns the effective scissor region, or false when no clip is active.
func (s *clipStack) top() (Rect, bool) {
	if len(s.rects) == 0 {
		return Rect{}, false
	}
	return s.rects[len(s.rects)-1], true
}

func (s *clipStack) depth() int {
	return len(s.rects)
}

// ScreenRect returns the screen-space axis-aligned bounding box of a size
// rectangle under the given composed transform.
func ScreenRect(trans Transform, size Vec2) Rect {
	return transformRect(trans, Rect{0, 0, size.X, size.Y})
}

// transformRect maps a local-space rectangle through a transform and returns
// the enclosing screen-space AABB (exact for unrotated transforms).
func transformRect(trans Transform, r Rect) Rect {
	x0, y0 := trans.TransformPoint(r.X, r.Y)
	x1, y1 := trans.TransformPoint(r.X+r.W, r.Y)
	x2, y2 := trans.TransformPoint(r.X, r.Y+r.H)
	x3, y3 := trans.TransformPoint(r.X+r.W, r.Y+r.H)
	minX := minf(minf(x0, x1), minf(x2, x3))
	minY := minf(minf(y0, y1), minf(y2, y3))
	maxX := maxf(maxf(x0, x1), maxf(x2, x3))
	maxY := maxf(maxf(y0, y1), maxf(y2, y3))
	return Rect{minX, minY, maxX - minX, maxY - minY}
}

// --- Component clip surface ---

// ClipRect returns the component's custom clip rectangle in local space.
// A zero rectangle means no clipping.
func (c *Component) ClipRect() Rect {
	return c.clipRect
}

// SetClipRect sets the component's custom clip rectangle in local space.
func (c *Component) SetClipRect(r Rect) {
	c.clipRect = r
}

// BeginCustomClipRect pushes the component's clip rectangle, transformed to
// screen space by trans, onto the renderer's scissor stack. No-op when no
// clip rectangle is set. Must be paired with EndCustomClipRect around the
// clipped render sub-section.
func (c *Component) BeginCustomClipRect(r Renderer, trans Transform) {
	if c.clipRect.IsZero() {
		return
	}
	r.PushClipRect(transformRect(trans, c.clipRect))
	c.clipPushed = true
}

// EndCustomClipRect pops the scissor pushed by the matching
// BeginCustomClipRect, restoring the previous state.
func (c *Component) EndCustomClipRect(r Renderer) {
	if !c.clipPushed {
		return
	}
	r.PopClipRect()
	c.clipPushed = false
}
