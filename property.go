package escore

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// PropertyType tags the active lane of a Property.
type PropertyType uint8

const (
	PropertyNil PropertyType = iota
	PropertyFloat
	PropertyBool
	PropertyString
	PropertyVec2
	PropertyRect
	PropertyColor
)

// Property is a dynamically-typed value container used by the theme layer,
// storyboards, and generic property access. Exactly one lane is meaningful,
// selected by Type; the zero value is "undefined".
type Property struct {
	Type   PropertyType
	Float  float32
	Bool   bool
	String string
	Vec2   Vec2
	Rect   Rect
	Color  Color
}

// FloatProperty wraps a float value.
func FloatProperty(v float32) Property { return Property{Type: PropertyFloat, Float: v} }

// BoolProperty wraps a boolean value.
func BoolProperty(v bool) Property { return Property{Type: PropertyBool, Bool: v} }

// StringProperty wraps a string value.
func StringProperty(v string) Property { return Property{Type: PropertyString, String: v} }

// Vec2Property wraps a 2D vector value.
func Vec2Property(v Vec2) Property { return Property{Type: PropertyVec2, Vec2: v} }

// RectProperty wraps a rectangle value.
func RectProperty(v Rect) Property { return Property{Type: PropertyRect, Rect: v} }

// ColorProperty wraps a color value.
func ColorProperty(v Color) Property { return Property{Type: PropertyColor, Color: v} }

// IsDefined reports whether the property carries a value.
func (p Property) IsDefined() bool {
	return p.Type != PropertyNil
}

// AsFloat coerces the property to a float; booleans map to 0/1.
func (p Property) AsFloat() float32 {
	switch p.Type {
	case PropertyFloat:
		return p.Float
	case PropertyBool:
		if p.Bool {
			return 1
		}
	}
	return 0
}

// AsVec2 coerces the property to a 2D vector; a float fills both lanes.
func (p Property) AsVec2() Vec2 {
	switch p.Type {
	case PropertyVec2:
		return p.Vec2
	case PropertyFloat:
		return Vec2{p.Float, p.Float}
	}
	return Vec2{}
}

// UnmarshalYAML decodes a theme value into the matching lane:
// scalars become floats, booleans, colors ("#RRGGBB[AA]"), or strings;
// 2-element sequences become vectors, 4-element sequences rectangles.
func (p *Property) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err != nil {
				return err
			}
			*p = BoolProperty(b)
			return nil
		case "!!int", "!!float":
			var f float32
			if err := node.Decode(&f); err != nil {
				return err
			}
			*p = FloatProperty(f)
			return nil
		}
		if strings.HasPrefix(node.Value, "#") {
			color, err := parseHexColor(node.Value)
			if err != nil {
				return fmt.Errorf("escore: theme value %q: %w", node.Value, err)
			}
			*p = ColorProperty(color)
			return nil
		}
		*p = StringProperty(node.Value)
		return nil
	case yaml.SequenceNode:
		var lanes []float32
		if err := node.Decode(&lanes); err != nil {
			return err
		}
		switch len(lanes) {
		case 2:
			*p = Vec2Property(Vec2{lanes[0], lanes[1]})
			return nil
		case 4:
			*p = RectProperty(Rect{lanes[0], lanes[1], lanes[2], lanes[3]})
			return nil
		}
		return fmt.Errorf("escore: theme value: sequence must have 2 or 4 elements, got %d", len(lanes))
	}
	return fmt.Errorf("escore: theme value: unsupported YAML node kind %d", node.Kind)
}

// parseHexColor parses "#RRGGBB" or "#RRGGBBAA" into a Color.
func parseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid hex color length %d", len(hex))
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color: %w", err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return Color{
		R: float32(v>>24&0xFF) / 255,
		G: float32(v>>16&0xFF) / 255,
		B: float32(v>>8&0xFF) / 255,
		A: float32(v&0xFF) / 255,
	}, nil
}

// --- Generic component property access ---

// GetProperty exposes a subset of attributes through a dynamically-typed
// value. Unknown names fall back to the theme-declared property bag and
// finally to an undefined value; the call never fails.
func (c *Component) GetProperty(name string) Property {
	switch name {
	case "pos":
		return Vec2Property(c.position.Vec2())
	case "x":
		return FloatProperty(c.position.X)
	case "y":
		return FloatProperty(c.position.Y)
	case "size":
		return Vec2Property(c.size)
	case "origin":
		return Vec2Property(c.origin)
	case "rotationOrigin":
		return Vec2Property(c.rotationOrigin)
	case "scaleOrigin":
		return Vec2Property(c.scaleOrigin)
	case "offset":
		return Vec2Property(c.screenOffset)
	case "rotation":
		return FloatProperty(RadToDeg(c.rotation))
	case "scale":
		return FloatProperty(c.scale)
	case "opacity":
		return FloatProperty(float32(c.opacity))
	case "zIndex":
		return FloatProperty(c.zIndex)
	case "visible":
		return BoolProperty(c.visible)
	case "clipRect":
		return RectProperty(c.clipRect)
	case "value":
		return StringProperty(c.Value())
	}
	if p, ok := c.properties[name]; ok {
		return p
	}
	return Property{}
}

// SetProperty mutates an attribute through a dynamically-typed value, routed
// through the regular setters so change hooks and the transform cache behave
// exactly as for direct mutation. Unknown names are ignored, as are names
// not declared by the applied theme.
func (c *Component) SetProperty(name string, value Property) {
	switch name {
	case "pos":
		v := value.AsVec2()
		c.SetPosition(v.X, v.Y, c.position.Z)
	case "x":
		c.SetPosition(value.AsFloat(), c.position.Y, c.position.Z)
	case "y":
		c.SetPosition(c.position.X, value.AsFloat(), c.position.Z)
	case "size":
		v := value.AsVec2()
		c.SetSize(v.X, v.Y)
	case "origin":
		v := value.AsVec2()
		c.SetOrigin(v.X, v.Y)
	case "rotationOrigin":
		v := value.AsVec2()
		c.SetRotationOrigin(v.X, v.Y)
	case "scaleOrigin":
		v := value.AsVec2()
		c.SetScaleOrigin(v.X, v.Y)
	case "offset":
		v := value.AsVec2()
		c.SetScreenOffset(v.X, v.Y)
	case "rotation":
		c.SetRotationDegrees(value.AsFloat())
	case "scale":
		c.SetScale(value.AsFloat())
	case "opacity":
		c.SetOpacity(uint8(clampf(value.AsFloat(), 0, 255)))
	case "zIndex":
		c.SetZIndex(value.AsFloat())
	case "visible":
		c.SetVisible(value.Type == PropertyBool && value.Bool)
	case "clipRect":
		if value.Type == PropertyRect {
			c.SetClipRect(value.Rect)
		}
	case "value":
		if value.Type == PropertyString {
			c.SetValue(value.String)
		}
	default:
		// Theme-declared free-form properties may be updated, never created.
		if _, ok := c.properties[name]; ok {
			c.properties[name] = value
		}
	}
}

// setThemeProperty declares a free-form property from the theme layer.
func (c *Component) setThemeProperty(name string, value Property) {
	if c.properties == nil {
		c.properties = make(map[string]Property)
	}
	c.properties[name] = value
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
