package escore

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animation is a time-parameterized attribute mutation. Duration is in
// milliseconds; Apply receives normalized progress in [0, 1] and writes the
// interpolated value into its target component.
type Animation interface {
	Duration() int
	Apply(t float32)
}

// animationController occupies one animation slot: the installed animation
// plus its scheduling state. The completion callback fires at most once per
// installation; replacing or cancelling the animation drops it silently.
type animationController struct {
	anim       Animation
	delay      int
	elapsed    int
	reverse    bool
	onFinished func()
}

// advance moves the controller forward by time milliseconds, applies the
// animation at its new progress, and reports whether it reached the end.
// The delay window clamps progress at 0 and blocks completion, so a delayed
// animation holds its initial value without skipping ahead even when its
// duration is zero.
func (ac *animationController) advance(time int) bool {
	ac.elapsed += time
	dur := ac.anim.Duration()
	var t float32 = 1
	if ac.elapsed < ac.delay {
		t = 0
	} else if dur > 0 {
		t = float32(ac.elapsed-ac.delay) / float32(dur)
		if t > 1 {
			t = 1
		}
	}
	if ac.reverse {
		ac.anim.Apply(1 - t)
	} else {
		ac.anim.Apply(t)
	}
	return t >= 1
}

// --- Component slot operations ---

func validSlot(slot int) bool {
	return slot >= 0 && slot < MaxAnimations
}

// SetAnimation installs an animation into a slot, silently replacing any
// animation already there (the old one's callback never fires). delay
// milliseconds elapse with no visible change before the animation starts.
// With reverse=true the timeline plays backward. An out-of-range slot is
// ignored.
func (c *Component) SetAnimation(anim Animation, delay int, onFinished func(), reverse bool, slot int) {
	if anim == nil || !validSlot(slot) {
		return
	}
	c.animations[slot] = &animationController{
		anim:       anim,
		delay:      delay,
		reverse:    reverse,
		onFinished: onFinished,
	}
}

// AdvanceAnimation advances the slot's animation by time milliseconds. When
// the animation reaches its duration it is evaluated at its terminal value,
// the completion callback fires exactly once, and the slot is cleared.
// Returns whether a slot was occupied.
func (c *Component) AdvanceAnimation(slot int, time int) bool {
	if !validSlot(slot) || c.animations[slot] == nil {
		return false
	}
	ac := c.animations[slot]
	if ac.advance(time) {
		// Clear the slot before the callback so it may install a new
		// animation into the same slot.
		cb := ac.onFinished
		c.animations[slot] = nil
		if cb != nil {
			cb()
		}
	}
	return true
}

// StopAnimation clears the slot immediately without invoking the completion
// callback, leaving attributes at their current mid-animation values.
// Returns whether a slot was occupied.
func (c *Component) StopAnimation(slot int) bool {
	if !validSlot(slot) || c.animations[slot] == nil {
		return false
	}
	c.animations[slot] = nil
	return true
}

// CancelAnimation abandons the slot's animation without invoking the
// completion callback. Identical to StopAnimation; the separate name makes
// caller intent explicit.
func (c *Component) CancelAnimation(slot int) bool {
	return c.StopAnimation(slot)
}

// FinishAnimation forces the slot's animation to its terminal state in one
// step, invokes the completion callback, and clears the slot.
// Returns whether a slot was occupied.
func (c *Component) FinishAnimation(slot int) bool {
	if !validSlot(slot) || c.animations[slot] == nil {
		return false
	}
	ac := c.animations[slot]
	remaining := ac.delay + ac.anim.Duration() - ac.elapsed
	if remaining < 0 {
		remaining = 0
	}
	return c.AdvanceAnimation(slot, remaining)
}

// StopAllAnimations stops every occupied slot without callbacks.
func (c *Component) StopAllAnimations() {
	for slot := 0; slot < MaxAnimations; slot++ {
		c.StopAnimation(slot)
	}
}

// CancelAllAnimations cancels every occupied slot without callbacks.
func (c *Component) CancelAllAnimations() {
	for slot := 0; slot < MaxAnimations; slot++ {
		c.CancelAnimation(slot)
	}
}

// IsAnimationPlaying reports whether the slot is occupied.
func (c *Component) IsAnimationPlaying(slot int) bool {
	return validSlot(slot) && c.animations[slot] != nil
}

// IsAnimationReversed reports whether the slot's animation plays backward.
// An empty slot reports false.
func (c *Component) IsAnimationReversed(slot int) bool {
	if !validSlot(slot) || c.animations[slot] == nil {
		return false
	}
	return c.animations[slot].reverse
}

// GetAnimationTime returns the slot's elapsed time in milliseconds,
// including any pending delay. An empty slot reports 0.
func (c *Component) GetAnimationTime(slot int) int {
	if !validSlot(slot) || c.animations[slot] == nil {
		return 0
	}
	return c.animations[slot].elapsed
}

// --- Concrete animations ---

// LambdaAnimation adapts a plain function into an Animation.
type LambdaAnimation struct {
	duration int
	fn       func(t float32)
}

// NewLambdaAnimation creates an animation that invokes fn with normalized
// progress each tick.
func NewLambdaAnimation(duration int, fn func(t float32)) *LambdaAnimation {
	return &LambdaAnimation{duration: duration, fn: fn}
}

func (a *LambdaAnimation) Duration() int   { return a.duration }
func (a *LambdaAnimation) Apply(t float32) { a.fn(t) }

// MoveAnimation moves a component from its position at construction time to
// a target position with the given easing.
type MoveAnimation struct {
	target   *Component
	from, to Vec3
	duration int
	easing   ease.TweenFunc
}

// NewMoveAnimation creates a position animation toward to over duration
// milliseconds. A nil easing defaults to linear.
func NewMoveAnimation(target *Component, to Vec3, duration int, easing ease.TweenFunc) *MoveAnimation {
	if easing == nil {
		easing = ease.Linear
	}
	return &MoveAnimation{
		target:   target,
		from:     target.Position(),
		to:       to,
		duration: duration,
		easing:   easing,
	}
}

func (a *MoveAnimation) Duration() int { return a.duration }

func (a *MoveAnimation) Apply(t float32) {
	pct := a.easing(t, 0, 1, 1)
	a.target.SetPosition(
		a.from.X+(a.to.X-a.from.X)*pct,
		a.from.Y+(a.to.Y-a.from.Y)*pct,
		a.from.Z+(a.to.Z-a.from.Z)*pct,
	)
}

// FadeAnimation interpolates a component's opacity between two values.
type FadeAnimation struct {
	target   *Component
	from, to float32
	duration int
	easing   ease.TweenFunc
}

// NewFadeAnimation creates an opacity animation from from to to (both in
// [0, 255]) over duration milliseconds. A nil easing defaults to linear.
func NewFadeAnimation(target *Component, from, to uint8, duration int, easing ease.TweenFunc) *FadeAnimation {
	if easing == nil {
		easing = ease.Linear
	}
	return &FadeAnimation{
		target:   target,
		from:     float32(from),
		to:       float32(to),
		duration: duration,
		easing:   easing,
	}
}

func (a *FadeAnimation) Duration() int { return a.duration }

func (a *FadeAnimation) Apply(t float32) {
	pct := a.easing(t, 0, 1, 1)
	// Overshooting easings (back, elastic) push past the endpoints.
	a.target.SetOpacity(uint8(clampf(a.from+(a.to-a.from)*pct, 0, 255)))
}

// TweenAnimation drives an arbitrary value setter from a gween tween,
// seeking the tween to the controller's progress each tick.
type TweenAnimation struct {
	tween    *gween.Tween
	duration int
	apply    func(value float32)
}

// NewTweenAnimation wraps a gween tween of the given duration (milliseconds)
// and a setter receiving the tween's value.
func NewTweenAnimation(tween *gween.Tween, duration int, apply func(value float32)) *TweenAnimation {
	return &TweenAnimation{tween: tween, duration: duration, apply: apply}
}

func (a *TweenAnimation) Duration() int { return a.duration }

func (a *TweenAnimation) Apply(t float32) {
	value, _ := a.tween.Set(t * float32(a.duration))
	a.apply(value)
}

// --- Entrance/exit convenience ---

const (
	animateToDuration = 500
	// DefaultAnimateToDelay is the stock stagger used by view transitions.
	DefaultAnimateToDelay = 350

	animateToScaleFrom = 0.85
)

// AnimateTo installs a slot-0 entrance animation driving the attribute
// families selected by flags: position from from to to, opacity from 0 to
// 255, scale from a slight shrink to 1. While a launch transition is running
// the end state is applied immediately with no animation.
func (c *Component) AnimateTo(from, to Vec2, flags AnimateFlags, delay int) {
	if c.window != nil && c.window.IsLaunchTransitionRunning() {
		if flags&AnimatePosition != 0 {
			c.SetPosition(to.X, to.Y, c.position.Z)
		}
		if flags&AnimateOpacity != 0 {
			c.SetOpacity(255)
		}
		if flags&AnimateScale != 0 {
			c.SetScale(1)
		}
		return
	}

	z := c.position.Z
	anim := NewLambdaAnimation(animateToDuration, func(t float32) {
		// Cubic ease-out; exact at both endpoints.
		u := t - 1
		pct := u*u*u + 1
		if flags&AnimatePosition != 0 {
			c.SetPosition(from.X+(to.X-from.X)*pct, from.Y+(to.Y-from.Y)*pct, z)
		}
		if flags&AnimateOpacity != 0 {
			c.SetOpacity(uint8(pct * 255))
		}
		if flags&AnimateScale != 0 {
			c.SetScale(animateToScaleFrom + (1-animateToScaleFrom)*pct)
		}
	})
	c.SetAnimation(anim, delay, nil, false, 0)
}
