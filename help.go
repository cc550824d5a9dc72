package escore

// HelpPrompt describes one input hint for the help bar: the semantic button
// name and the user-facing label.
type HelpPrompt struct {
	Button string
	Label  string
}

// HelpStyle describes how the help bar renders its prompts.
type HelpStyle struct {
	Position  Vec2
	Origin    Vec2
	TextColor Color
	IconColor Color
}

// DefaultHelpStyle returns the stock bottom-left help bar styling for the
// given reference resolution.
func DefaultHelpStyle(screenW, screenH float32) HelpStyle {
	return HelpStyle{
		Position:  Vec2{screenW * 0.012, screenH * 0.9515},
		TextColor: Color{0.47, 0.47, 0.47, 1},
		IconColor: Color{0.47, 0.47, 0.47, 1},
	}
}

// HelpPrompts returns the component's input hints for its current state,
// consumed by the external help-bar renderer. The default is none.
func (c *Component) HelpPrompts() []HelpPrompt {
	if c.HelpPromptsFunc != nil {
		return c.HelpPromptsFunc(c)
	}
	return nil
}

// GetHelpStyle returns the display styling for the help bar.
func (c *Component) GetHelpStyle() HelpStyle {
	if c.window != nil {
		return c.window.HelpStyle()
	}
	return DefaultHelpStyle(1, 1)
}
