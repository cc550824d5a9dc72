package escore

// SoundPlayer plays named sound cues (storyboard sounds, navigation clicks).
// The audio backend is an external collaborator.
type SoundPlayer interface {
	Play(name string)
}

// Window is the owning context of a component tree: the reference screen
// size themes scale against, the gui stack, the help bar state, and the
// launch-transition flag components consult to skip entrance animation.
// All mutation happens on the single frame-loop goroutine.
type Window struct {
	width  float32
	height float32

	guiStack []*Component

	helpPrompts []HelpPrompt
	helpStyle   HelpStyle

	launchTransitionRunning bool
	soundPlayer             SoundPlayer
	debug                   bool

	// Mouse pump state
	mouseX, mouseY int
	mouseButtons   [3]bool
	mouseOver      *Component
	hitBuf         []*Component // reused hit-path buffer
}

// NewWindow creates a window context with the given reference resolution.
func NewWindow(width, height float32) *Window {
	return &Window{
		width:     width,
		height:    height,
		helpStyle: DefaultHelpStyle(width, height),
	}
}

// ScreenSize returns the reference resolution themes scale against.
func (w *Window) ScreenSize() (width, height float32) {
	return w.width, w.height
}

// --- Gui stack ---

// PushGui puts a screen on top of the stack. The previous top is told it is
// no longer the top window; the new screen is shown.
func (w *Window) PushGui(gui *Component) {
	if top := w.PeekGui(); top != nil {
		top.TopWindow(false)
	}
	w.guiStack = append(w.guiStack, gui)
	gui.TopWindow(true)
	gui.OnShow()
	w.rebuildHelpPrompts()
}

// RemoveGui removes a screen from the stack (wherever it sits). The screen
// is hidden; if a new top emerges it is notified.
func (w *Window) RemoveGui(gui *Component) {
	for i, g := range w.guiStack {
		if g == gui {
			copy(w.guiStack[i:], w.guiStack[i+1:])
			w.guiStack[len(w.guiStack)-1] = nil
			w.guiStack = w.guiStack[:len(w.guiStack)-1]
			gui.OnHide()
			if w.mouseOver != nil && isAncestor(gui, w.mouseOver) {
				w.mouseOver = nil
			}
			if top := w.PeekGui(); top != nil {
				top.TopWindow(true)
			}
			w.rebuildHelpPrompts()
			return
		}
	}
}

// PeekGui returns the top of the gui stack, or nil when empty.
func (w *Window) PeekGui() *Component {
	if len(w.guiStack) == 0 {
		return nil
	}
	return w.guiStack[len(w.guiStack)-1]
}

// GuiStackSize returns the number of screens on the stack.
func (w *Window) GuiStackSize() int {
	return len(w.guiStack)
}

// --- Frame dispatch ---

// Update advances the top screen by deltaTime milliseconds. Screens below
// the top are frozen, matching the modal stack model.
func (w *Window) Update(deltaTime int) {
	if top := w.PeekGui(); top != nil {
		top.Update(deltaTime)
	}
}

// Render draws the whole stack bottom-up so lower screens show through
// translucent overlays.
func (w *Window) Render(r Renderer) {
	trans := IdentityTransform()
	for _, gui := range w.guiStack {
		gui.Render(trans, r)
	}
}

// --- Input dispatch ---

// Input offers a discrete input event to the top screen.
func (w *Window) Input(config *InputConfig, in Input) bool {
	if top := w.PeekGui(); top != nil {
		return top.Input(config, in)
	}
	return false
}

// TextInput delivers raw text entry to the top screen.
func (w *Window) TextInput(text string) {
	if top := w.PeekGui(); top != nil {
		top.TextInput(text)
	}
}

// ProcessMouse folds an absolute pointer state into enter/leave/move/wheel/
// click events against the top screen. Click transitions are offered along
// the hit path innermost-first until one component consumes them.
func (w *Window) ProcessMouse(x, y int, buttons [3]bool, wheel int) {
	top := w.PeekGui()
	if top == nil {
		return
	}

	w.hitBuf = w.hitBuf[:0]
	top.HitTest(x, y, IdentityTransform(), &w.hitBuf)

	var target *Component
	if len(w.hitBuf) > 0 {
		target = w.hitBuf[len(w.hitBuf)-1]
	}

	if target != w.mouseOver {
		if w.mouseOver != nil {
			w.mouseOver.OnMouseLeave()
		}
		if target != nil {
			target.OnMouseEnter()
		}
		w.mouseOver = target
	}

	if target != nil {
		if x != w.mouseX || y != w.mouseY {
			target.OnMouseMove(x, y)
		}
		if wheel != 0 {
			target.OnMouseWheel(wheel)
		}
	}
	for b := range buttons {
		if buttons[b] == w.mouseButtons[b] {
			continue
		}
		for i := len(w.hitBuf) - 1; i >= 0; i-- {
			if w.hitBuf[i].OnMouseClick(MouseButton(b), buttons[b], x, y) {
				break
			}
		}
	}

	w.mouseX, w.mouseY = x, y
	w.mouseButtons = buttons
}

// --- Help prompts ---

// HelpPrompts returns the current help bar content.
func (w *Window) HelpPrompts() []HelpPrompt {
	return w.helpPrompts
}

// HelpStyle returns the current help bar styling.
func (w *Window) HelpStyle() HelpStyle {
	return w.helpStyle
}

// SetHelpStyle overrides the help bar styling (typically from the theme).
func (w *Window) SetHelpStyle(style HelpStyle) {
	w.helpStyle = style
}

// rebuildHelpPrompts refreshes the help bar from the top screen.
func (w *Window) rebuildHelpPrompts() {
	if top := w.PeekGui(); top != nil {
		w.helpPrompts = top.HelpPrompts()
		return
	}
	w.helpPrompts = nil
}

// --- Launch transition ---

// IsLaunchTransitionRunning reports whether a launch transition is in
// flight; components consult this to skip entrance animation.
func (w *Window) IsLaunchTransitionRunning() bool {
	return w.launchTransitionRunning
}

// SetLaunchTransitionRunning marks the start or end of a launch transition.
func (w *Window) SetLaunchTransitionRunning(running bool) {
	w.launchTransitionRunning = running
}

// --- Sound ---

// SetSoundPlayer installs the audio collaborator used for storyboard cues.
func (w *Window) SetSoundPlayer(p SoundPlayer) {
	w.soundPlayer = p
}

func (w *Window) playSound(name string) {
	if w.soundPlayer != nil {
		w.soundPlayer.Play(name)
	}
}

// --- Debug ---

// SetDebugMode enables tree-shape warnings on stderr.
func (w *Window) SetDebugMode(enabled bool) {
	w.debug = enabled
}
