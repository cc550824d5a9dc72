package escore

// InputType distinguishes the physical kind of a discrete input.
type InputType uint8

const (
	TypeButton InputType = iota
	TypeKey
	TypeAxis
	TypeHat
)

// DeviceID identifies an input device. Non-negative values are joystick
// indices; the synthetic devices are negative.
type DeviceID int

const (
	DeviceKeyboard DeviceID = -1
	DeviceMouse    DeviceID = -2
	DeviceCEC      DeviceID = -3
)

// Input is a single discrete input event from a device.
type Input struct {
	Device DeviceID
	Type   InputType
	ID     int
	Value  int
}

// Pressed reports whether the event represents activation (non-zero value).
func (in Input) Pressed() bool {
	return in.Value != 0
}

// InputConfig maps semantic input names ("a", "b", "up", "select", ...) to
// device inputs. Produced by the input-device abstraction, consumed here only
// through IsMappedTo.
type InputConfig struct {
	Device     DeviceID
	DeviceName string

	mapping map[string]Input
}

// NewInputConfig creates an empty mapping for a device.
func NewInputConfig(device DeviceID, deviceName string) *InputConfig {
	return &InputConfig{
		Device:     device,
		DeviceName: deviceName,
		mapping:    make(map[string]Input),
	}
}

// Map binds a semantic name to a device input.
func (cfg *InputConfig) Map(name string, in Input) {
	cfg.mapping[name] = in
}

// IsMappedTo reports whether the event matches the binding for name.
func (cfg *InputConfig) IsMappedTo(name string, in Input) bool {
	bound, ok := cfg.mapping[name]
	if !ok {
		return false
	}
	return bound.Type == in.Type && bound.ID == in.ID
}

// --- Component input dispatch ---

// Input offers an input event to the component. Returns true when the event
// was consumed (stopping propagation), false when it should continue to be
// offered elsewhere. The default behavior offers the event to children in
// insertion order until one consumes it.
func (c *Component) Input(config *InputConfig, in Input) bool {
	if c.InputFunc != nil {
		return c.InputFunc(c, config, in)
	}
	for _, child := range c.children {
		if child.Input(config, in) {
			return true
		}
	}
	return false
}

// TextInput delivers raw text entry (typing/IME), independent of discrete
// button input. The default behavior forwards to all children.
func (c *Component) TextInput(text string) {
	if c.TextInputFunc != nil {
		c.TextInputFunc(c, text)
		return
	}
	for _, child := range c.children {
		child.TextInput(text)
	}
}

// --- Mouse events ---

// IsMouseOver reports whether the pointer is currently over the component.
func (c *Component) IsMouseOver() bool {
	return c.isMouseOver
}

// OnMouseEnter notifies the component that the pointer entered its bounds.
func (c *Component) OnMouseEnter() {
	c.isMouseOver = true
	if c.MouseEnterFunc != nil {
		c.MouseEnterFunc(c)
	}
}

// OnMouseLeave notifies the component that the pointer left its bounds.
// An in-flight press is abandoned so a later release elsewhere does not
// trigger the click action.
func (c *Component) OnMouseLeave() {
	c.isMouseOver = false
	c.mousePressed = false
	if c.MouseLeaveFunc != nil {
		c.MouseLeaveFunc(c)
	}
}

// OnMouseMove notifies the component of pointer motion in screen coordinates.
func (c *Component) OnMouseMove(x, y int) {
	if c.MouseMoveFunc != nil {
		c.MouseMoveFunc(c, x, y)
	}
}

// OnMouseWheel notifies the component of wheel motion (positive is up).
func (c *Component) OnMouseWheel(delta int) {
	if c.MouseWheelFunc != nil {
		c.MouseWheelFunc(c, delta)
	}
}

// OnMouseClick delivers a button transition in screen coordinates and
// returns whether it was consumed. The default behavior arms on left press
// and dispatches the click action on left release.
func (c *Component) OnMouseClick(button MouseButton, pressed bool, x, y int) bool {
	if c.MouseClickFunc != nil {
		return c.MouseClickFunc(c, button, pressed, x, y)
	}
	if button != MouseButtonLeft || c.clickAction == "" {
		return false
	}
	if pressed {
		c.mousePressed = true
		return true
	}
	if !c.mousePressed {
		return false
	}
	c.mousePressed = false
	return c.OnAction(c.clickAction)
}

// --- Hit testing ---

// HitTest tests whether the screen-space point (x, y) falls within the
// component under the composed transform, recursing into children. When
// results is non-nil every hit component along the path is appended,
// outermost first, instead of stopping at the first hit. A zero-size
// component never reports a hit for itself but still recurses.
func (c *Component) HitTest(x, y int, parentTransform Transform, results *[]*Component) bool {
	if !c.visible {
		return false
	}
	trans := parentTransform.Mult(c.GetTransform())
	fx, fy := float32(x), float32(y)

	hit := false
	if c.size.X > 0 && c.size.Y > 0 {
		rect := ScreenRect(trans, c.size)
		if !c.clipRect.IsZero() {
			rect = rect.Intersect(transformRect(trans, c.clipRect))
		}
		if rect.Contains(fx, fy) {
			hit = true
			if results != nil {
				*results = append(*results, c)
			}
		}
	}

	for _, child := range c.children {
		if child.HitTest(x, y, trans, results) {
			hit = true
			if results == nil {
				break
			}
		}
	}
	return hit
}
