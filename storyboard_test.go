package escore

import "testing"

func slideStoryboard() *Storyboard {
	return &Storyboard{
		Name: "activate",
		Tracks: []*Track{
			{
				Property: "pos",
				Keyframes: []Keyframe{
					{At: 0, Value: Vec2Property(Vec2{0, 0})},
					{At: 1000, Value: Vec2Property(Vec2{100, 0})},
				},
			},
			{
				Property: "opacity",
				Keyframes: []Keyframe{
					{At: 0, Value: FloatProperty(0)},
					{At: 500, Value: FloatProperty(255)},
				},
			},
		},
	}
}

func TestSelectStoryboard(t *testing.T) {
	c := NewComponent(nil)
	c.registerStoryboard(slideStoryboard())

	if c.SelectStoryboard("missing") {
		t.Error("selecting an unknown storyboard should return false")
	}
	if !c.SelectStoryboard("activate") {
		t.Fatal("selecting a registered storyboard should return true")
	}
	if c.IsStoryboardRunning("") {
		t.Error("selection alone should not start the storyboard")
	}
	if !c.CurrentStoryboardHasProperty("pos") {
		t.Error("selected storyboard should report its pos track")
	}
	if c.CurrentStoryboardHasProperty("rotation") {
		t.Error("selected storyboard should not report an absent track")
	}
}

func TestStoryboardRunAndComplete(t *testing.T) {
	c := NewComponent(nil)
	c.registerStoryboard(slideStoryboard())
	c.SelectStoryboard("activate")
	c.StartStoryboard()

	if !c.IsStoryboardRunning("activate") {
		t.Fatal("storyboard should be running after StartStoryboard")
	}
	c.Update(500)
	approx(t, c.Position().X, 50, "pos.X at 500ms")
	if c.Opacity() != 255 {
		t.Errorf("opacity at 500ms = %d, want 255", c.Opacity())
	}

	c.Update(500)
	approx(t, c.Position().X, 100, "pos.X at completion")
	if c.IsStoryboardRunning("") {
		t.Error("storyboard should stop at its last keyframe")
	}
	// Completion keeps the selection; restarting replays from the top.
	if !c.CurrentStoryboardHasProperty("pos") {
		t.Error("completion should keep the storyboard selected")
	}
}

func TestStoryboardRestartAfterCompletion(t *testing.T) {
	w := NewWindow(1920, 1080)
	player := &recordingSoundPlayer{}
	w.SetSoundPlayer(player)

	c := NewComponent(w)
	sb := slideStoryboard()
	sb.Sound = "slide.wav"
	c.registerStoryboard(sb)
	c.SelectStoryboard("activate")
	c.StartStoryboard()
	c.Update(1000)
	approx(t, c.Position().X, 100, "pos.X at completion")

	// Starting again from the completed (Selected) state replays from the
	// top, cue included.
	c.StartStoryboard()
	if !c.IsStoryboardRunning("activate") {
		t.Fatal("restart should report running")
	}
	c.Update(100)
	approx(t, c.Position().X, 10, "pos.X after restart")
	if len(player.played) != 2 {
		t.Errorf("cue played %d times, want 2", len(player.played))
	}

	c.Update(900)
	approx(t, c.Position().X, 100, "pos.X at second completion")
	if c.IsStoryboardRunning("") {
		t.Error("second run should complete too")
	}
}

func TestStoryboardSoundIsPerStoryboard(t *testing.T) {
	w := NewWindow(1920, 1080)
	player := &recordingSoundPlayer{}
	w.SetSoundPlayer(player)

	c := NewComponent(w)
	loud := slideStoryboard()
	loud.Sound = "slide.wav"
	c.registerStoryboard(loud)
	quiet := slideStoryboard()
	quiet.Name = "quiet"
	c.registerStoryboard(quiet)

	c.SelectStoryboard("quiet")
	c.StartStoryboard()
	if len(player.played) != 0 {
		t.Errorf("soundless storyboard played %v", player.played)
	}

	c.DeselectStoryboard(false)
	c.SelectStoryboard("activate")
	c.StartStoryboard()
	if len(player.played) != 1 || player.played[0] != "slide.wav" {
		t.Errorf("played = %v, want one slide.wav", player.played)
	}
}

func TestStoryboardPauseFreezes(t *testing.T) {
	c := NewComponent(nil)
	c.registerStoryboard(slideStoryboard())
	c.SelectStoryboard("activate")
	c.StartStoryboard()
	c.Update(250)

	c.PauseStoryboard()
	if c.IsStoryboardRunning("") {
		t.Error("paused storyboard should not report running")
	}
	frozen := c.Position().X
	c.Update(500)
	approx(t, c.Position().X, frozen, "pos.X while paused")

	c.StartStoryboard()
	c.Update(750)
	approx(t, c.Position().X, 100, "pos.X after resume to completion")
}

func TestStoryboardStopRewinds(t *testing.T) {
	c := NewComponent(nil)
	c.registerStoryboard(slideStoryboard())
	c.SelectStoryboard("activate")
	c.StartStoryboard()
	c.Update(600)

	c.StopStoryboard()
	if c.IsStoryboardRunning("") {
		t.Error("stopped storyboard should not report running")
	}
	// Stop leaves the last animated values in place but rewinds the clock.
	approx(t, c.Position().X, 60, "pos.X after stop")

	c.StartStoryboard()
	c.Update(100)
	approx(t, c.Position().X, 10, "pos.X after restart")
}

func TestDeselectRestoresSnapshot(t *testing.T) {
	c := NewComponent(nil)
	c.SetPosition(7, 3, 0)
	c.SetOpacity(42)
	c.registerStoryboard(slideStoryboard())
	c.SelectStoryboard("activate")
	c.StartStoryboard()
	c.Update(400)

	c.DeselectStoryboard(true)
	pos := c.Position()
	approx(t, pos.X, 7, "pos.X restored")
	approx(t, pos.Y, 3, "pos.Y restored")
	if c.Opacity() != 42 {
		t.Errorf("opacity restored = %d, want 42", c.Opacity())
	}
	if c.CurrentStoryboardHasProperty("pos") {
		t.Error("deselect should clear the current storyboard")
	}
}

func TestDeselectWithoutRestoreKeepsValues(t *testing.T) {
	c := NewComponent(nil)
	c.SetPosition(7, 3, 0)
	c.registerStoryboard(slideStoryboard())
	c.SelectStoryboard("activate")
	c.StartStoryboard()
	c.Update(400)
	mid := c.Position().X

	c.DeselectStoryboard(false)
	approx(t, c.Position().X, mid, "pos.X kept")
}

func TestEnableStoryboardPropertyFreezesTrack(t *testing.T) {
	c := NewComponent(nil)
	c.registerStoryboard(slideStoryboard())
	c.SelectStoryboard("activate")
	c.StartStoryboard()
	c.Update(250)

	c.EnableStoryboardProperty("pos", false)
	frozen := c.Position().X
	c.Update(250)
	approx(t, c.Position().X, frozen, "pos.X with disabled track")
	if c.Opacity() != 255 {
		t.Errorf("opacity should keep animating, got %d", c.Opacity())
	}

	c.EnableStoryboardProperty("pos", true)
	c.Update(250)
	approx(t, c.Position().X, 75, "pos.X after re-enable")
}

func TestStoryboardQueries(t *testing.T) {
	c := NewComponent(nil)
	if c.HasStoryboard("") {
		t.Error("fresh component should report no storyboards")
	}
	c.registerStoryboard(slideStoryboard())

	if !c.HasStoryboard("") {
		t.Error("empty name should match any registration")
	}
	if !c.HasStoryboard("activate") {
		t.Error("registered name should match")
	}
	if c.HasStoryboard("other") {
		t.Error("unknown name should not match")
	}
	if !c.StoryboardExists("activate", "pos") {
		t.Error("StoryboardExists should find the pos track")
	}
	if c.StoryboardExists("activate", "rotation") {
		t.Error("StoryboardExists should not find an absent track")
	}
	if c.StoryboardExists("other", "") {
		t.Error("StoryboardExists should not find an unknown storyboard")
	}
	if c.IsStoryboardRunning("activate") {
		t.Error("unstarted storyboard should not report running")
	}
}

func TestStoryboardKeyframeHold(t *testing.T) {
	track := &Track{
		Property: "x",
		Keyframes: []Keyframe{
			{At: 100, Value: FloatProperty(10)},
			{At: 200, Value: FloatProperty(20)},
		},
	}
	if v := track.valueAt(0); v.Float != 10 {
		t.Errorf("value before first keyframe = %v, want 10", v.Float)
	}
	if v := track.valueAt(150); v.Float != 15 {
		t.Errorf("value mid-segment = %v, want 15", v.Float)
	}
	if v := track.valueAt(500); v.Float != 20 {
		t.Errorf("value after last keyframe = %v, want 20", v.Float)
	}
}

func TestStoryboardStringTrackSteps(t *testing.T) {
	track := &Track{
		Property: "value",
		Keyframes: []Keyframe{
			{At: 0, Value: StringProperty("a")},
			{At: 100, Value: StringProperty("b")},
		},
	}
	if v := track.valueAt(50); v.String != "a" {
		t.Errorf("mid-segment string = %q, want %q", v.String, "a")
	}
	if v := track.valueAt(100); v.String != "b" {
		t.Errorf("terminal string = %q, want %q", v.String, "b")
	}
}

type recordingSoundPlayer struct {
	played []string
}

func (p *recordingSoundPlayer) Play(name string) { p.played = append(p.played, name) }

func TestStoryboardSoundCue(t *testing.T) {
	w := NewWindow(1920, 1080)
	player := &recordingSoundPlayer{}
	w.SetSoundPlayer(player)

	c := NewComponent(w)
	sb := slideStoryboard()
	sb.Sound = "slide.wav"
	c.registerStoryboard(sb)
	if c.StoryboardSound() != "slide.wav" {
		t.Fatalf("StoryboardSound = %q, want %q", c.StoryboardSound(), "slide.wav")
	}

	c.SelectStoryboard("activate")
	c.StartStoryboard()
	c.Update(300)
	c.PauseStoryboard()
	c.StartStoryboard()

	// The cue plays when starting from the top, not when resuming.
	if len(player.played) != 1 || player.played[0] != "slide.wav" {
		t.Fatalf("played = %v, want one slide.wav", player.played)
	}

	c.StopStoryboard()
	c.StartStoryboard()
	if len(player.played) != 2 {
		t.Errorf("restart from the top should replay the cue, played = %v", player.played)
	}
}
