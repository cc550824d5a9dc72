// Package escore is the retained-mode GUI scene-graph core of a themed
// on-screen frontend.
//
// Every visible element (menu, image, text, list) is a [Component]. Components
// form a tree rooted at a [Window]: children inherit their parent's transform,
// update in insertion order, and render in stable z-index order.
//
// # Quick start
//
//	window := escore.NewWindow(1920, 1080)
//	root := escore.NewComponent(window)
//	window.PushGui(root)
//
//	logo := escore.NewComponent(window)
//	logo.SetPosition(100, 100, 0)
//	logo.SetSize(320, 180)
//	root.AddChild(logo)
//
// Each frame the host loop calls [Window.Update] with the elapsed milliseconds
// and [Window.Render] with a [Renderer]. An ebiten-backed renderer is provided
// by [NewEbitenRenderer]; tests use a recording fake.
//
// # Animation
//
// Components carry a fixed set of four animation slots. [Component.SetAnimation]
// installs a time-driven [Animation] into a slot with an optional start delay,
// reverse playback, and a completion callback:
//
//	anim := escore.NewMoveAnimation(logo, escore.Vec3{X: 500, Y: 100}, 500, ease.OutQuad)
//	logo.SetAnimation(anim, 0, func() { fmt.Println("done") }, false, 0)
//
// Storyboards are named, declarative multi-property timelines supplied by
// theme data and transport-controlled independently of slots:
//
//	logo.SelectStoryboard("activate")
//	logo.StartStoryboard()
//
// # Themes
//
// Themes are YAML documents ([LoadThemeFile]) describing per-view element
// geometry, free-form properties, storyboards, and child elements.
// [Component.ApplyTheme] applies a named element to a component, with a
// [ThemeFlags] bitmask selecting which attribute families are honored.
// [NewThemeWatcher] provides debounced hot-reload notification.
package escore
