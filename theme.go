package escore

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Theme is a parsed theme document: named views, each a set of named
// elements carrying geometry, free-form properties, storyboards, and child
// element declarations.
type Theme struct {
	Name  string                `yaml:"name"`
	Views map[string]*ThemeView `yaml:"views"`
}

// ThemeView is one screen's worth of element declarations.
type ThemeView struct {
	Elements map[string]*ThemeElement `yaml:"elements"`
}

// ThemeElement is a single element declaration. Geometry is expressed in
// normalized fractions of the window's reference resolution unless Absolute
// is set. Pointer fields distinguish "declared" from "omitted": an omitted
// attribute leaves the component's current value untouched.
type ThemeElement struct {
	Type           string              `yaml:"type"`
	Pos            *[2]float32         `yaml:"pos"`
	Size           *[2]float32         `yaml:"size"`
	Absolute       bool                `yaml:"absolute"`
	Origin         *[2]float32         `yaml:"origin"`
	RotationOrigin *[2]float32         `yaml:"rotationOrigin"`
	Rotation       *float32            `yaml:"rotation"` // degrees
	Scale          *float32            `yaml:"scale"`
	ScaleOrigin    *[2]float32         `yaml:"scaleOrigin"`
	Offset         *[2]float32         `yaml:"offset"` // pixels, never scaled
	ZIndex         *float32            `yaml:"zIndex"`
	Visible        *bool               `yaml:"visible"`
	Opacity        *float32            `yaml:"opacity"` // fraction in [0, 1]
	ClipRect       *[4]float32         `yaml:"clipRect"`
	Properties     map[string]Property `yaml:"properties"`
	Bindings       map[string]string   `yaml:"bindings"`
	Storyboards    []*StoryboardDef    `yaml:"storyboards"`
	Children       []*ThemeChild       `yaml:"children"`
}

// ThemeChild is an ordered child element declaration.
type ThemeChild struct {
	Name    string       `yaml:"name"`
	Element ThemeElement `yaml:",inline"`
}

// StoryboardDef is a storyboard declaration inside a theme element.
type StoryboardDef struct {
	Name   string   `yaml:"name"`
	Sound  string   `yaml:"sound"`
	Tracks []*Track `yaml:"tracks"`
}

// ParseTheme decodes a YAML theme document.
func ParseTheme(data []byte) (*Theme, error) {
	var theme Theme
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("escore: parse theme: %w", err)
	}
	return &theme, nil
}

// LoadThemeFile reads and decodes a YAML theme document from disk.
func LoadThemeFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("escore: load theme %s: %w", path, err)
	}
	theme, err := ParseTheme(data)
	if err != nil {
		return nil, fmt.Errorf("escore: load theme %s: %w", path, err)
	}
	return theme, nil
}

// Element returns the named element of the named view, or nil when either is
// absent. Safe to call on a nil theme.
func (t *Theme) Element(view, element string) *ThemeElement {
	if t == nil {
		return nil
	}
	v, ok := t.Views[view]
	if !ok || v == nil {
		return nil
	}
	return v.Elements[element]
}

// storyboard returns the storyboard declaration with the given name, or nil.
// An empty name matches the unnamed default declaration.
func (e *ThemeElement) storyboard(name string) *StoryboardDef {
	for _, def := range e.Storyboards {
		if def.Name == name {
			return def
		}
	}
	return nil
}

// --- Component theme application ---

// ApplyTheme applies a named element of a theme view to the component. The
// properties bitmask selects which attribute families are honored. A missing
// view or element silently leaves the component at its pre-theming defaults.
func (c *Component) ApplyTheme(theme *Theme, view, element string, properties ThemeFlags) {
	elem := theme.Element(view, element)
	if elem == nil {
		return
	}
	c.applyThemeElement(elem, properties)
}

// applyThemeElement applies one element declaration. Declared geometry is
// scaled by the window's reference resolution unless the element is flagged
// absolute.
func (c *Component) applyThemeElement(elem *ThemeElement, properties ThemeFlags) {
	sw, sh := float32(1), float32(1)
	if !elem.Absolute && c.window != nil {
		sw, sh = c.window.ScreenSize()
	}

	if properties&ThemePosition != 0 && elem.Pos != nil {
		c.SetPosition(elem.Pos[0]*sw, elem.Pos[1]*sh, c.position.Z)
	}
	if properties&ThemeSize != 0 && elem.Size != nil {
		c.SetSize(elem.Size[0]*sw, elem.Size[1]*sh)
	}
	if properties&ThemeOrigin != 0 && elem.Origin != nil {
		c.SetOrigin(elem.Origin[0], elem.Origin[1])
	}
	if properties&ThemeRotation != 0 {
		if elem.Rotation != nil {
			c.SetRotationDegrees(*elem.Rotation)
		}
		if elem.RotationOrigin != nil {
			c.SetRotationOrigin(elem.RotationOrigin[0], elem.RotationOrigin[1])
		}
	}
	if properties&ThemeZIndex != 0 {
		if elem.ZIndex != nil {
			c.SetZIndex(*elem.ZIndex)
		} else {
			c.SetZIndex(c.defaultZIndex)
		}
	}
	if properties&ThemeVisible != 0 && elem.Visible != nil {
		c.SetVisible(*elem.Visible)
	}
	if properties&ThemeOpacity != 0 && elem.Opacity != nil {
		c.SetOpacity(uint8(clampf(*elem.Opacity, 0, 1) * 255))
	}

	if elem.Scale != nil {
		c.SetScale(*elem.Scale)
	}
	if elem.ScaleOrigin != nil {
		c.SetScaleOrigin(elem.ScaleOrigin[0], elem.ScaleOrigin[1])
	}
	if elem.Offset != nil {
		c.SetScreenOffset(elem.Offset[0], elem.Offset[1])
	}
	if elem.ClipRect != nil {
		c.SetClipRect(Rect{
			elem.ClipRect[0] * sw, elem.ClipRect[1] * sh,
			elem.ClipRect[2] * sw, elem.ClipRect[3] * sh,
		})
	}

	for name, value := range elem.Properties {
		c.setThemeProperty(name, value)
	}
	for name, expr := range elem.Bindings {
		c.SetBindingExpression(name, expr)
	}
	for _, def := range elem.Storyboards {
		c.ApplyStoryboard(elem, def.Name)
	}
}

// ApplyStoryboard parses the element's storyboard declaration of the given
// name into a per-component Storyboard and registers it (without selecting
// it). Returns false when the element declares no such storyboard.
func (c *Component) ApplyStoryboard(elem *ThemeElement, name string) bool {
	if elem == nil {
		return false
	}
	def := elem.storyboard(name)
	if def == nil {
		return false
	}
	sb := &Storyboard{
		Name:   def.Name,
		Sound:  def.Sound,
		Tracks: make([]*Track, 0, len(def.Tracks)),
	}
	// Tracks carry per-component enable state, so each component gets its
	// own copies; keyframes are immutable and shared.
	for _, t := range def.Tracks {
		sb.Tracks = append(sb.Tracks, &Track{
			Property:  t.Property,
			Keyframes: t.Keyframes,
			enabled:   true,
		})
	}
	c.registerStoryboard(sb)
	return true
}

// LoadThemedChildren instantiates the element's declared children as child
// components, applying each child declaration in order. Children are tagged
// with their declared name so callers can find them.
func (c *Component) LoadThemedChildren(elem *ThemeElement) {
	if elem == nil {
		return
	}
	for _, decl := range elem.Children {
		child := NewComponent(c.window)
		child.SetTag(decl.Name)
		child.SetExtraType(ExtraChildren)
		child.applyThemeElement(&decl.Element, ThemeAll)
		child.LoadThemedChildren(&decl.Element)
		c.AddChild(child)
	}
}

// FindChildByTag returns the first immediate child carrying the tag, or nil.
func (c *Component) FindChildByTag(tag string) *Component {
	for _, child := range c.children {
		if child.tag == tag {
			return child
		}
	}
	return nil
}
