package escore

import "github.com/tanema/gween/ease"

// Keyframe is one point on a storyboard track: the value the track's property
// must hold At milliseconds into the storyboard, and the easing shaping the
// segment that ends at this keyframe.
type Keyframe struct {
	At     int      `yaml:"at"`
	Value  Property `yaml:"value"`
	Easing string   `yaml:"easing"`
}

// Track is one per-property timeline of a storyboard. Tracks are individually
// enable/disable-able while the storyboard runs; a disabled track freezes its
// property at the current value.
type Track struct {
	Property  string     `yaml:"property"`
	Keyframes []Keyframe `yaml:"keyframes"`

	enabled bool
}

// duration returns the time of the track's last keyframe.
func (t *Track) duration() int {
	if len(t.Keyframes) == 0 {
		return 0
	}
	return t.Keyframes[len(t.Keyframes)-1].At
}

// valueAt evaluates the track at elapsed milliseconds. Before the first
// keyframe the first value holds; after the last the last value holds.
// Non-numeric lanes (strings, booleans) step instead of interpolating.
func (t *Track) valueAt(elapsed int) Property {
	kfs := t.Keyframes
	if len(kfs) == 0 {
		return Property{}
	}
	if elapsed <= kfs[0].At {
		return kfs[0].Value
	}
	last := kfs[len(kfs)-1]
	if elapsed >= last.At {
		return last.Value
	}
	for i := 1; i < len(kfs); i++ {
		if elapsed < kfs[i].At {
			k0, k1 := kfs[i-1], kfs[i]
			span := k1.At - k0.At
			if span <= 0 {
				return k1.Value
			}
			fn := easingByName(k1.Easing)
			pct := fn(float32(elapsed-k0.At), 0, 1, float32(span))
			return lerpProperty(k0.Value, k1.Value, pct)
		}
	}
	return last.Value
}

// lerpProperty interpolates between two property values lane-wise. Mismatched
// or non-numeric types step: a stays in effect until b's keyframe is reached.
func lerpProperty(a, b Property, pct float32) Property {
	if a.Type != b.Type {
		return a
	}
	switch a.Type {
	case PropertyFloat:
		return FloatProperty(a.Float + (b.Float-a.Float)*pct)
	case PropertyVec2:
		return Vec2Property(Vec2{
			a.Vec2.X + (b.Vec2.X-a.Vec2.X)*pct,
			a.Vec2.Y + (b.Vec2.Y-a.Vec2.Y)*pct,
		})
	case PropertyRect:
		return RectProperty(Rect{
			a.Rect.X + (b.Rect.X-a.Rect.X)*pct,
			a.Rect.Y + (b.Rect.Y-a.Rect.Y)*pct,
			a.Rect.W + (b.Rect.W-a.Rect.W)*pct,
			a.Rect.H + (b.Rect.H-a.Rect.H)*pct,
		})
	case PropertyColor:
		return ColorProperty(Color{
			a.Color.R + (b.Color.R-a.Color.R)*pct,
			a.Color.G + (b.Color.G-a.Color.G)*pct,
			a.Color.B + (b.Color.B-a.Color.B)*pct,
			a.Color.A + (b.Color.A-a.Color.A)*pct,
		})
	}
	return a
}

// easingByName resolves a theme-declared easing name to its curve.
// Unknown or empty names fall back to linear.
func easingByName(name string) ease.TweenFunc {
	switch name {
	case "", "linear":
		return ease.Linear
	case "inquad":
		return ease.InQuad
	case "outquad":
		return ease.OutQuad
	case "inoutquad":
		return ease.InOutQuad
	case "incubic":
		return ease.InCubic
	case "outcubic":
		return ease.OutCubic
	case "inoutcubic":
		return ease.InOutCubic
	case "inquart":
		return ease.InQuart
	case "outquart":
		return ease.OutQuart
	case "inoutquart":
		return ease.InOutQuart
	case "inquint":
		return ease.InQuint
	case "outquint":
		return ease.OutQuint
	case "inoutquint":
		return ease.InOutQuint
	case "insine":
		return ease.InSine
	case "outsine":
		return ease.OutSine
	case "inoutsine":
		return ease.InOutSine
	case "inexpo":
		return ease.InExpo
	case "outexpo":
		return ease.OutExpo
	case "inoutexpo":
		return ease.InOutExpo
	case "incirc":
		return ease.InCirc
	case "outcirc":
		return ease.OutCirc
	case "inoutcirc":
		return ease.InOutCirc
	case "inback":
		return ease.InBack
	case "outback":
		return ease.OutBack
	case "inoutback":
		return ease.InOutBack
	case "inbounce":
		return ease.InBounce
	case "outbounce":
		return ease.OutBounce
	case "inoutbounce":
		return ease.InOutBounce
	case "inelastic":
		return ease.InElastic
	case "outelastic":
		return ease.OutElastic
	case "inoutelastic":
		return ease.InOutElastic
	}
	return ease.Linear
}

// Storyboard is a named set of per-property tracks plus an optional sound
// cue, instantiated per component from theme data.
type Storyboard struct {
	Name   string
	Sound  string
	Tracks []*Track
}

// Duration returns the time of the storyboard's last keyframe across tracks.
func (s *Storyboard) Duration() int {
	max := 0
	for _, t := range s.Tracks {
		if d := t.duration(); d > max {
			max = d
		}
	}
	return max
}

// HasProperty reports whether a track targets the given property.
func (s *Storyboard) HasProperty(name string) bool {
	for _, t := range s.Tracks {
		if t.Property == name {
			return true
		}
	}
	return false
}

func (s *Storyboard) track(name string) *Track {
	for _, t := range s.Tracks {
		if t.Property == name {
			return t
		}
	}
	return nil
}

// --- Animator state machine ---

type storyboardState uint8

const (
	storyboardUnselected storyboardState = iota
	storyboardSelected
	storyboardRunning
	storyboardPaused
)

// storyboardAnimator drives at most one selected storyboard per component:
// Unselected -> Selected(paused) -> Running <-> Paused -> Unselected.
type storyboardAnimator struct {
	current  *Storyboard
	state    storyboardState
	elapsed  int
	snapshot map[string]Property
}

// update advances the running storyboard by deltaTime milliseconds and writes
// every enabled track's value into the component. Reaching the last keyframe
// evaluates terminal values and drops back to Selected.
func (a *storyboardAnimator) update(c *Component, deltaTime int) {
	if a.state != storyboardRunning {
		return
	}
	a.elapsed += deltaTime
	dur := a.current.Duration()
	at := a.elapsed
	if at > dur {
		at = dur
	}
	for _, t := range a.current.Tracks {
		if !t.enabled {
			continue
		}
		if v := t.valueAt(at); v.IsDefined() {
			c.SetProperty(t.Property, v)
		}
	}
	if a.elapsed >= dur {
		a.elapsed = dur
		a.state = storyboardSelected
	}
}

// --- Component storyboard surface ---

// registerStoryboard stores a parsed storyboard under its name, replacing any
// previous registration.
func (c *Component) registerStoryboard(sb *Storyboard) {
	if c.storyboards == nil {
		c.storyboards = make(map[string]*Storyboard)
	}
	c.storyboards[sb.Name] = sb
	if sb.Sound != "" {
		c.storyboardSound = sb.Sound
	}
}

// HasStoryboard reports whether a storyboard of the given name is registered;
// an empty name matches any registration.
func (c *Component) HasStoryboard(name string) bool {
	if name == "" {
		return len(c.storyboards) > 0
	}
	_, ok := c.storyboards[name]
	return ok
}

// StoryboardExists reports whether a storyboard of the given name is
// registered and, when propertyName is non-empty, carries a track for that
// property. Unknown names report false, never an error.
func (c *Component) StoryboardExists(name, propertyName string) bool {
	sb, ok := c.storyboards[name]
	if !ok {
		return false
	}
	return propertyName == "" || sb.HasProperty(propertyName)
}

// IsStoryboardRunning reports whether the selected storyboard is advancing;
// an empty name matches whichever storyboard is selected.
func (c *Component) IsStoryboardRunning(name string) bool {
	a := &c.animator
	if a.state != storyboardRunning {
		return false
	}
	return name == "" || a.current.Name == name
}

// CurrentStoryboardHasProperty reports whether the selected storyboard
// carries a track for the given property.
func (c *Component) CurrentStoryboardHasProperty(propertyName string) bool {
	if c.animator.current == nil {
		return false
	}
	return c.animator.current.HasProperty(propertyName)
}

// SelectStoryboard makes the named storyboard current (empty name selects
// the unnamed default), snapshots the current value of every property its
// tracks can drive, and enters the Selected (paused, elapsed 0) state.
// Returns false when no storyboard of that name exists.
func (c *Component) SelectStoryboard(name string) bool {
	sb, ok := c.storyboards[name]
	if !ok {
		return false
	}
	if c.animator.current != nil {
		c.DeselectStoryboard(false)
	}
	snapshot := make(map[string]Property, len(sb.Tracks))
	for _, t := range sb.Tracks {
		t.enabled = true
		if _, seen := snapshot[t.Property]; !seen {
			snapshot[t.Property] = c.GetProperty(t.Property)
		}
	}
	c.animator = storyboardAnimator{
		current:  sb,
		state:    storyboardSelected,
		snapshot: snapshot,
	}
	return true
}

// DeselectStoryboard returns to the Unselected state. When
// restoreInitialProperties is true every snapshotted property is written back
// to its pre-selection value; otherwise last-animated values stay in place.
func (c *Component) DeselectStoryboard(restoreInitialProperties bool) {
	a := &c.animator
	if a.current == nil {
		return
	}
	if restoreInitialProperties {
		for _, t := range a.current.Tracks {
			if v, ok := a.snapshot[t.Property]; ok && v.IsDefined() {
				c.SetProperty(t.Property, v)
			}
		}
	}
	c.animator = storyboardAnimator{}
}

// StartStoryboard begins (or resumes) advancing the selected storyboard.
// Starting from Selected always plays from the top, so a completed storyboard
// restarts instead of instantly re-completing. The selected storyboard's own
// sound cue plays only when starting from the beginning; resuming from a
// pause stays silent.
func (c *Component) StartStoryboard() {
	a := &c.animator
	switch a.state {
	case storyboardSelected:
		a.elapsed = 0
		if a.current.Sound != "" && c.window != nil {
			c.window.playSound(a.current.Sound)
		}
		a.state = storyboardRunning
	case storyboardPaused:
		a.state = storyboardRunning
	}
}

// PauseStoryboard freezes the running storyboard, leaving current
// interpolated values in place.
func (c *Component) PauseStoryboard() {
	if c.animator.state == storyboardRunning {
		c.animator.state = storyboardPaused
	}
}

// StopStoryboard rewinds the selected storyboard to elapsed 0 and pauses it.
// Snapshot values are not restored.
func (c *Component) StopStoryboard() {
	a := &c.animator
	if a.current == nil {
		return
	}
	a.state = storyboardSelected
	a.elapsed = 0
}

// EnableStoryboardProperty toggles whether the named property's track
// participates while the storyboard runs. Disabling mid-run freezes that
// property at its current value. Unknown property names do nothing.
func (c *Component) EnableStoryboardProperty(name string, enable bool) {
	if c.animator.current == nil {
		return
	}
	if t := c.animator.current.track(name); t != nil {
		t.enabled = enable
	}
}

// StoryboardSound returns the sound cue name associated with the component's
// storyboards, if any.
func (c *Component) StoryboardSound() string {
	return c.storyboardSound
}
