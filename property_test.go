package escore

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestPropertyConstructors(t *testing.T) {
	if (Property{}).IsDefined() {
		t.Error("zero property should be undefined")
	}
	if !FloatProperty(0).IsDefined() {
		t.Error("a wrapped zero float is still defined")
	}
	if p := BoolProperty(true); p.Type != PropertyBool || !p.Bool {
		t.Errorf("BoolProperty = %+v", p)
	}
	if p := StringProperty("x"); p.String != "x" {
		t.Errorf("StringProperty = %+v", p)
	}
}

func TestPropertyCoercions(t *testing.T) {
	approx(t, FloatProperty(2.5).AsFloat(), 2.5, "float as float")
	approx(t, BoolProperty(true).AsFloat(), 1, "bool as float")
	approx(t, BoolProperty(false).AsFloat(), 0, "false as float")
	approx(t, StringProperty("x").AsFloat(), 0, "string as float")

	if v := Vec2Property(Vec2{3, 4}).AsVec2(); v.X != 3 || v.Y != 4 {
		t.Errorf("vec2 as vec2 = %v", v)
	}
	if v := FloatProperty(5).AsVec2(); v.X != 5 || v.Y != 5 {
		t.Errorf("float as vec2 = %v", v)
	}
	if v := BoolProperty(true).AsVec2(); v.X != 0 || v.Y != 0 {
		t.Errorf("bool as vec2 = %v", v)
	}
}

func TestPropertyYAMLLanes(t *testing.T) {
	cases := []struct {
		in   string
		want Property
	}{
		{"3", FloatProperty(3)},
		{"1.5", FloatProperty(1.5)},
		{"true", BoolProperty(true)},
		{"hello", StringProperty("hello")},
		{"[2, 4]", Vec2Property(Vec2{2, 4})},
		{"[1, 2, 3, 4]", RectProperty(Rect{1, 2, 3, 4})},
	}
	for _, tc := range cases {
		var p Property
		if err := yaml.Unmarshal([]byte(tc.in), &p); err != nil {
			t.Errorf("unmarshal %q: %v", tc.in, err)
			continue
		}
		if p != tc.want {
			t.Errorf("unmarshal %q = %+v, want %+v", tc.in, p, tc.want)
		}
	}

	var p Property
	if err := yaml.Unmarshal([]byte("[1, 2, 3]"), &p); err == nil {
		t.Error("3-element sequence should fail")
	}
	if err := yaml.Unmarshal([]byte("{a: 1}"), &p); err == nil {
		t.Error("mapping should fail")
	}
}

func TestPropertyYAMLHexColor(t *testing.T) {
	var p Property
	if err := yaml.Unmarshal([]byte(`"#FF8000"`), &p); err != nil {
		t.Fatalf("unmarshal color: %v", err)
	}
	if p.Type != PropertyColor {
		t.Fatalf("type = %v, want PropertyColor", p.Type)
	}
	approx(t, p.Color.R, 1, "R")
	approx(t, p.Color.G, float32(0x80)/255, "G")
	approx(t, p.Color.B, 0, "B")
	approx(t, p.Color.A, 1, "A")

	if err := yaml.Unmarshal([]byte(`"#FF800080"`), &p); err != nil {
		t.Fatalf("unmarshal rgba color: %v", err)
	}
	approx(t, p.Color.A, float32(0x80)/255, "A")

	if err := yaml.Unmarshal([]byte(`"#FFF"`), &p); err == nil {
		t.Error("short hex color should fail")
	}
	if err := yaml.Unmarshal([]byte(`"#GGGGGG"`), &p); err == nil {
		t.Error("non-hex digits should fail")
	}
}

func TestGetPropertySurface(t *testing.T) {
	c := NewComponent(nil)
	c.SetPosition(10, 20, 0)
	c.SetSize(100, 50)
	c.SetOrigin(0.5, 0.5)
	c.SetRotationDegrees(45)
	c.SetScale(2)
	c.SetOpacity(128)
	c.SetZIndex(7)
	c.SetValue("hello")

	if v := c.GetProperty("pos").AsVec2(); v.X != 10 || v.Y != 20 {
		t.Errorf("pos = %v", v)
	}
	approx(t, c.GetProperty("x").AsFloat(), 10, "x")
	approx(t, c.GetProperty("y").AsFloat(), 20, "y")
	if v := c.GetProperty("size").AsVec2(); v.X != 100 || v.Y != 50 {
		t.Errorf("size = %v", v)
	}
	approx(t, c.GetProperty("rotation").AsFloat(), 45, "rotation in degrees")
	approx(t, c.GetProperty("scale").AsFloat(), 2, "scale")
	approx(t, c.GetProperty("opacity").AsFloat(), 128, "opacity")
	approx(t, c.GetProperty("zIndex").AsFloat(), 7, "zIndex")
	if !c.GetProperty("visible").Bool {
		t.Error("visible should be true")
	}
	if c.GetProperty("value").String != "hello" {
		t.Error("value should round through")
	}
	if c.GetProperty("noSuchThing").IsDefined() {
		t.Error("unknown name should be undefined")
	}
}

func TestSetPropertyRoutesThroughSetters(t *testing.T) {
	c := NewComponent(nil)
	moved := false
	c.PositionChangedFunc = func(*Component) { moved = true }

	c.SetProperty("pos", Vec2Property(Vec2{30, 40}))
	if !moved {
		t.Error("SetProperty(pos) should fire the position hook")
	}
	if pos := c.Position(); pos.X != 30 || pos.Y != 40 {
		t.Errorf("pos = %v", pos)
	}
	if !c.transformDirty {
		t.Error("SetProperty(pos) should dirty the transform")
	}

	c.SetProperty("rotation", FloatProperty(90))
	approx(t, c.Rotation(), DegToRad(90), "rotation stored in radians")

	c.SetProperty("opacity", FloatProperty(300))
	if c.Opacity() != 255 {
		t.Errorf("opacity should clamp to 255, got %d", c.Opacity())
	}

	c.SetProperty("visible", BoolProperty(false))
	if c.IsVisible() {
		t.Error("visible should be false")
	}
	c.SetProperty("visible", FloatProperty(1))
	if c.IsVisible() {
		t.Error("non-bool visible value should read as false")
	}
}

func TestSetPropertyUnknownNameIgnored(t *testing.T) {
	c := NewComponent(nil)
	c.SetProperty("bogus", FloatProperty(1))
	if c.GetProperty("bogus").IsDefined() {
		t.Error("unknown names must not create bag entries")
	}

	// Theme-declared bag entries may be updated.
	c.setThemeProperty("path", StringProperty("a.png"))
	c.SetProperty("path", StringProperty("b.png"))
	if got := c.GetProperty("path").String; got != "b.png" {
		t.Errorf("path = %q, want b.png", got)
	}
}
