package escore

import (
	"image"
	stdcolor "image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenRenderer implements Renderer on top of an ebiten screen image.
// Scissoring uses SubImage retargeting: while a clip rect is active all
// draws land on a sub-image window of the screen.
type EbitenRenderer struct {
	screen *ebiten.Image
	target *ebiten.Image
	matrix Transform
	clips  clipStack
	white  *ebiten.Image
}

// NewEbitenRenderer creates a renderer. Begin must be called with the frame's
// screen image before any draws.
func NewEbitenRenderer() *EbitenRenderer {
	return &EbitenRenderer{matrix: IdentityTransform()}
}

// Begin points the renderer at this frame's screen image and resets state.
// Call once per frame before Window.Render.
func (r *EbitenRenderer) Begin(screen *ebiten.Image) {
	r.screen = screen
	r.target = screen
	r.matrix = IdentityTransform()
	r.clips = clipStack{}
}

// SetMatrix sets the model matrix for subsequent draws.
func (r *EbitenRenderer) SetMatrix(trans Transform) {
	r.matrix = trans
}

// DrawSolidRect fills a rectangle in the current model space by scaling a
// cached 1x1 white pixel.
func (r *EbitenRenderer) DrawSolidRect(x, y, w, h float32, color Color) {
	if r.target == nil {
		return
	}
	if r.white == nil {
		r.white = ebiten.NewImage(1, 1)
		r.white.Fill(stdcolor.White)
	}

	var geo ebiten.GeoM
	geo.Scale(float64(w), float64(h))
	geo.Translate(float64(x), float64(y))

	a, b, c, d, tx, ty := r.matrix.affine()
	var model ebiten.GeoM
	model.SetElement(0, 0, float64(a))
	model.SetElement(0, 1, float64(c))
	model.SetElement(0, 2, float64(tx))
	model.SetElement(1, 0, float64(b))
	model.SetElement(1, 1, float64(d))
	model.SetElement(1, 2, float64(ty))
	geo.Concat(model)

	op := &ebiten.DrawImageOptions{GeoM: geo}
	op.ColorScale.Scale(color.R, color.G, color.B, color.A)
	r.target.DrawImage(r.white, op)
}

// PushClipRect intersects subsequent draws with a screen-space rectangle.
func (r *EbitenRenderer) PushClipRect(rect Rect) {
	eff := r.clips.push(rect)
	r.retarget(eff, true)
}

// PopClipRect restores the previous scissor state.
func (r *EbitenRenderer) PopClipRect() {
	r.clips.pop()
	if top, ok := r.clips.top(); ok {
		r.retarget(top, true)
	} else {
		r.retarget(Rect{}, false)
	}
}

func (r *EbitenRenderer) retarget(eff Rect, clipped bool) {
	if r.screen == nil {
		return
	}
	if !clipped {
		r.target = r.screen
		return
	}
	r.target = r.screen.SubImage(image.Rect(
		int(eff.X), int(eff.Y),
		int(eff.X+eff.W), int(eff.Y+eff.H),
	)).(*ebiten.Image)
}

// --- Game loop adapter ---

// Game adapts a Window to the ebiten game loop: it pumps mouse and text
// input, advances the tree by the frame's milliseconds, and renders.
type Game struct {
	window   *Window
	renderer *EbitenRenderer
	width    int
	height   int
	runes    []rune
}

// NewGame wraps a window in an ebiten game with the given logical resolution.
func NewGame(window *Window, width, height int) *Game {
	return &Game{
		window:   window,
		renderer: NewEbitenRenderer(),
		width:    width,
		height:   height,
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	x, y := ebiten.CursorPosition()
	buttons := [3]bool{
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
	}
	_, wheelY := ebiten.Wheel()
	g.window.ProcessMouse(x, y, buttons, int(wheelY))

	g.runes = ebiten.AppendInputChars(g.runes[:0])
	if len(g.runes) > 0 {
		g.window.TextInput(string(g.runes))
	}

	g.window.Update(1000 / ebiten.TPS())
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Begin(screen)
	g.window.Render(g.renderer)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens a window and drives the game loop until the window closes.
func Run(window *Window, title string, width, height int) error {
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(NewGame(window, width, height))
}
