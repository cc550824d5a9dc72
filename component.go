package escore

// MaxAnimations is the number of independently addressable animation slots
// per component.
const MaxAnimations = 4

// Component is the base visual node of the scene graph. A single flat struct
// is used for all widget kinds to avoid interface dispatch on the hot path;
// widget-specific behavior hangs off the *Func hook fields, which are nil by
// default and cost nothing when unused.
type Component struct {
	// Identity
	ID  uint32
	tag string

	window *Window

	// Hierarchy
	parent   *Component
	children []*Component

	// Geometry (local)
	position       Vec3
	origin         Vec2 // normalized anchor, fraction of size
	rotationOrigin Vec2 // normalized
	size           Vec2
	scaleOrigin    Vec2 // normalized
	screenOffset   Vec2 // pixel nudge, applied after the anchor
	rotation       float32
	scale          float32

	// Presentation
	opacity       uint8
	zIndex        float32
	defaultZIndex float32
	visible       bool
	showing       bool
	extraType     ExtraType
	clipRect      Rect
	clipPushed    bool

	// Theme-driven state
	value       string
	clickAction string
	bindings    map[string]string
	properties  map[string]Property

	// Storyboards
	storyboards     map[string]*Storyboard
	storyboardSound string
	animator        storyboardAnimator

	// Animation slots
	animations [MaxAnimations]*animationController

	// Computed
	transform        Transform
	transformDirty   bool
	childZIndexDirty bool
	sortedChildren   []*Component // reused buffer for z-sorted render order

	// Mouse state
	isMouseOver  bool
	mousePressed bool

	// Behavior hooks (nil by default). A hook replaces the corresponding
	// default behavior entirely; full-override hooks such as RenderFunc must
	// call the children step themselves to preserve composition.
	UpdateFunc    func(c *Component, deltaTime int)
	RenderFunc    func(c *Component, trans Transform, r Renderer)
	InputFunc     func(c *Component, config *InputConfig, input Input) bool
	TextInputFunc func(c *Component, text string)
	ActionFunc    func(c *Component, action string) bool

	ValueFunc    func(c *Component) string
	SetValueFunc func(c *Component, value string)

	MouseEnterFunc func(c *Component)
	MouseLeaveFunc func(c *Component)
	MouseMoveFunc  func(c *Component, x, y int)
	MouseWheelFunc func(c *Component, delta int)
	MouseClickFunc func(c *Component, button MouseButton, pressed bool, x, y int) bool

	ShowFunc                  func(c *Component)
	HideFunc                  func(c *Component)
	ScreenSaverActivateFunc   func(c *Component)
	ScreenSaverDeactivateFunc func(c *Component)
	TopWindowFunc             func(c *Component, isTop bool)
	FocusGainedFunc           func(c *Component)
	FocusLostFunc             func(c *Component)

	HelpPromptsFunc func(c *Component) []HelpPrompt

	// Geometry change hooks, invoked after the transform cache is marked
	// dirty. Used by container widgets to re-lay-out children.
	PositionChangedFunc       func(c *Component)
	OriginChangedFunc         func(c *Component)
	RotationOriginChangedFunc func(c *Component)
	SizeChangedFunc           func(c *Component)
	RotationChangedFunc       func(c *Component)
	ScaleChangedFunc          func(c *Component)
	ScaleOriginChangedFunc    func(c *Component)
	ScreenOffsetChangedFunc   func(c *Component)
}

// NewComponent creates a component attached to the given window context.
func NewComponent(window *Window) *Component {
	return &Component{
		ID:             nextComponentID(),
		window:         window,
		scale:          1,
		opacity:        255,
		visible:        true,
		transformDirty: true,
	}
}

// Window returns the owning window context.
func (c *Component) Window() *Window {
	return c.window
}

// --- Tree manipulation ---

// Parent returns the component's parent, or nil for a detached or root
// component.
func (c *Component) Parent() *Component {
	return c.parent
}

// SetParent re-parents the component. A nil parent detaches it.
func (c *Component) SetParent(parent *Component) {
	if parent == nil {
		if c.parent != nil {
			c.parent.RemoveChild(c)
		}
		return
	}
	parent.AddChild(c)
}

// AddChild appends cmp to this component's children. If cmp already has a
// parent, it is removed from that parent first.
// Panics if cmp is nil or cmp is an ancestor of this component (cycle).
func (c *Component) AddChild(cmp *Component) {
	if cmp == nil {
		panic("escore: cannot add nil child")
	}
	if isAncestor(cmp, c) {
		panic("escore: adding child would create a cycle")
	}
	if cmp.parent != nil {
		cmp.parent.removeChildByPtr(cmp)
	}
	cmp.parent = c
	c.children = append(c.children, cmp)
	c.childZIndexDirty = true
	if c.window != nil {
		debugCheckTreeDepth(c.window, cmp)
	}
}

// RemoveChild detaches cmp from this component.
// No-op if cmp is not an immediate child.
func (c *Component) RemoveChild(cmp *Component) {
	if cmp == nil || cmp.parent != c {
		return
	}
	c.removeChildByPtr(cmp)
	cmp.parent = nil
	c.childZIndexDirty = true
}

// ClearChildren detaches and releases every child subtree.
func (c *Component) ClearChildren() {
	for _, child := range c.children {
		child.parent = nil
		child.release()
	}
	c.children = c.children[:0]
	c.sortedChildren = c.sortedChildren[:0]
	c.childZIndexDirty = false
}

// release drops references held by a detached subtree so the collector can
// reclaim it even if a caller keeps a stale handle to one node.
func (c *Component) release() {
	c.StopAllAnimations()
	for _, child := range c.children {
		child.parent = nil
		child.release()
	}
	c.children = nil
	c.sortedChildren = nil
}

// ChildCount returns the number of immediate children.
func (c *Component) ChildCount() int {
	return len(c.children)
}

// Child returns the child at the given insertion index.
func (c *Component) Child(i int) *Component {
	return c.children[i]
}

// IsChild reports whether cmp is an immediate child of this component.
func (c *Component) IsChild(cmp *Component) bool {
	for _, child := range c.children {
		if child == cmp {
			return true
		}
	}
	return false
}

// isAncestor reports whether candidate is node or an ancestor of node.
func isAncestor(candidate, node *Component) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes cmp from c.children without clearing cmp.parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (c *Component) removeChildByPtr(cmp *Component) {
	for i, child := range c.children {
		if child == cmp {
			copy(c.children[i:], c.children[i+1:])
			c.children[len(c.children)-1] = nil
			c.children = c.children[:len(c.children)-1]
			return
		}
	}
}

// --- Z ordering ---

// ZIndex returns the component's z-index as set. The default fallback is
// applied by theme application when the element declares no z-index, never
// at query time, so an explicit SetZIndex(0) stays 0.
func (c *Component) ZIndex() float32 {
	return c.zIndex
}

// SetZIndex sets the component's z-index and marks the parent's render order
// stale.
func (c *Component) SetZIndex(z float32) {
	if c.zIndex == z {
		return
	}
	c.zIndex = z
	if c.parent != nil {
		c.parent.childZIndexDirty = true
	}
}

// DefaultZIndex returns the fallback z-index used when no explicit z-index
// has been set (typically assigned per widget kind).
func (c *Component) DefaultZIndex() float32 {
	return c.defaultZIndex
}

// SetDefaultZIndex sets the fallback z-index.
func (c *Component) SetDefaultZIndex(z float32) {
	if c.defaultZIndex == z {
		return
	}
	c.defaultZIndex = z
	if c.parent != nil {
		c.parent.childZIndexDirty = true
	}
}

// SortChildren rebuilds the z-sorted render order. Equal z-indexes keep their
// relative insertion order. Update order is never affected.
func (c *Component) SortChildren() {
	nc := len(c.children)
	if cap(c.sortedChildren) < nc {
		c.sortedChildren = make([]*Component, nc)
	}
	c.sortedChildren = c.sortedChildren[:nc]
	copy(c.sortedChildren, c.children)
	// Stable insertion sort by z-index.
	for i := 1; i < nc; i++ {
		key := c.sortedChildren[i]
		j := i - 1
		for j >= 0 && c.sortedChildren[j].ZIndex() > key.ZIndex() {
			c.sortedChildren[j+1] = c.sortedChildren[j]
			j--
		}
		c.sortedChildren[j+1] = key
	}
	c.childZIndexDirty = false
}

// renderOrder returns the children in z-sorted order, re-sorting only when a
// child's z-index changed since the last render.
func (c *Component) renderOrder() []*Component {
	if c.childZIndexDirty || len(c.sortedChildren) != len(c.children) {
		c.SortChildren()
	}
	return c.sortedChildren
}

// --- Visibility, opacity ---

// IsVisible reports whether the component (and therefore its subtree) renders.
func (c *Component) IsVisible() bool {
	return c.visible
}

// SetVisible shows or hides the component and its subtree.
func (c *Component) SetVisible(visible bool) {
	c.visible = visible
}

// Opacity returns the component's opacity in [0, 255].
func (c *Component) Opacity() uint8 {
	return c.opacity
}

// SetOpacity sets the component's opacity in [0, 255].
func (c *Component) SetOpacity(opacity uint8) {
	c.opacity = opacity
}

// --- Update / render dispatch ---

// Update advances this component by deltaTime milliseconds: its own animation
// slots and storyboard first, then its children in insertion order. A non-nil
// UpdateFunc replaces this behavior entirely and should call UpdateSelf and
// UpdateChildren itself so animations keep working.
func (c *Component) Update(deltaTime int) {
	if c.UpdateFunc != nil {
		c.UpdateFunc(c, deltaTime)
		return
	}
	c.UpdateSelf(deltaTime)
	c.UpdateChildren(deltaTime)
}

// UpdateSelf advances this component's animation slots and storyboard.
func (c *Component) UpdateSelf(deltaTime int) {
	for slot := 0; slot < MaxAnimations; slot++ {
		c.AdvanceAnimation(slot, deltaTime)
	}
	c.animator.update(c, deltaTime)
}

// UpdateChildren advances all children in insertion order.
func (c *Component) UpdateChildren(deltaTime int) {
	for _, child := range c.children {
		child.Update(deltaTime)
	}
}

// Render draws this component and its subtree. The default behavior composes
// parentTrans with the local transform and renders children in z order. A
// non-nil RenderFunc replaces this behavior and receives the composed
// transform; it must call RenderChildren itself.
func (c *Component) Render(parentTrans Transform, r Renderer) {
	if !c.visible {
		return
	}
	trans := parentTrans.Mult(c.GetTransform())
	if c.RenderFunc != nil {
		c.RenderFunc(c, trans, r)
		return
	}
	c.RenderChildren(trans, r)
}

// RenderChildren renders all children in z-sorted order against the given
// composed transform.
func (c *Component) RenderChildren(trans Transform, r Renderer) {
	for _, child := range c.renderOrder() {
		child.Render(trans, r)
	}
}

// --- Value, tag, extra type, click action ---

// Value returns the component's default textual value. Base behavior is an
// empty string unless a ValueFunc is installed or SetValue stored a value.
func (c *Component) Value() string {
	if c.ValueFunc != nil {
		return c.ValueFunc(c)
	}
	return c.value
}

// SetValue stores the component's default textual value.
func (c *Component) SetValue(value string) {
	if c.SetValueFunc != nil {
		c.SetValueFunc(c, value)
		return
	}
	c.value = value
}

// Tag returns the component's free-form identifier.
func (c *Component) Tag() string {
	return c.tag
}

// SetTag sets the component's free-form identifier.
func (c *Component) SetTag(tag string) {
	c.tag = tag
}

// ExtraType returns the component's theme-extra classification.
func (c *Component) ExtraType() ExtraType {
	return c.extraType
}

// SetExtraType sets the component's theme-extra classification.
func (c *Component) SetExtraType(t ExtraType) {
	c.extraType = t
}

// IsStaticExtra reports whether the component is a static theme extra
// (rendered behind everything, never animated).
func (c *Component) IsStaticExtra() bool {
	return c.extraType == ExtraStatic
}

// ClickAction returns the named action dispatched on mouse click.
func (c *Component) ClickAction() string {
	return c.clickAction
}

// SetClickAction sets the named action dispatched on mouse click.
func (c *Component) SetClickAction(action string) {
	c.clickAction = action
}

// OnAction dispatches a named action. Returns whether it was handled.
func (c *Component) OnAction(action string) bool {
	if c.ActionFunc != nil {
		return c.ActionFunc(c, action)
	}
	return false
}

// --- Lifecycle notifications ---

// IsShowing reports whether the component is part of a shown screen.
func (c *Component) IsShowing() bool {
	return c.showing
}

// OnShow notifies the subtree that its screen became visible.
func (c *Component) OnShow() {
	c.showing = true
	if c.ShowFunc != nil {
		c.ShowFunc(c)
	}
	for _, child := range c.children {
		child.OnShow()
	}
}

// OnHide notifies the subtree that its screen was hidden.
func (c *Component) OnHide() {
	c.showing = false
	if c.HideFunc != nil {
		c.HideFunc(c)
	}
	for _, child := range c.children {
		child.OnHide()
	}
}

// OnScreenSaverActivate notifies the subtree that the screen saver started.
func (c *Component) OnScreenSaverActivate() {
	if c.ScreenSaverActivateFunc != nil {
		c.ScreenSaverActivateFunc(c)
	}
	for _, child := range c.children {
		child.OnScreenSaverActivate()
	}
}

// OnScreenSaverDeactivate notifies the subtree that the screen saver stopped.
func (c *Component) OnScreenSaverDeactivate() {
	if c.ScreenSaverDeactivateFunc != nil {
		c.ScreenSaverDeactivateFunc(c)
	}
	for _, child := range c.children {
		child.OnScreenSaverDeactivate()
	}
}

// TopWindow notifies the subtree that its screen became (or stopped being)
// the top of the window's gui stack.
func (c *Component) TopWindow(isTop bool) {
	if c.TopWindowFunc != nil {
		c.TopWindowFunc(c, isTop)
	}
	for _, child := range c.children {
		child.TopWindow(isTop)
	}
}

// OnFocusGained notifies the component that it received input focus.
func (c *Component) OnFocusGained() {
	if c.FocusGainedFunc != nil {
		c.FocusGainedFunc(c)
	}
}

// OnFocusLost notifies the component that it lost input focus.
func (c *Component) OnFocusLost() {
	if c.FocusLostFunc != nil {
		c.FocusLostFunc(c)
	}
}

// UpdateHelpPrompts tells the window that this component's help prompts
// changed so the help bar can be rebuilt.
func (c *Component) UpdateHelpPrompts() {
	if c.window != nil {
		c.window.rebuildHelpPrompts()
	}
}
