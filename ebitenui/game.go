package ebitenui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/macroui"
	"github.com/tanema/gween/ease"
)

// recentreDuration is how long the Home key takes to scroll the camera back.
const recentreDuration = 0.4

// Game runs a [macroui.Tree] as an ebiten.Game. Each tick it polls input
// into an event stack, drains the stack into the tree, and snapshots the
// tree for the next Draw.
type Game struct {
	// OnTick, if set, runs once per Update after events are dispatched.
	// A non-nil error stops the game.
	OnTick func() error

	tree     *macroui.Tree
	events   macroui.EventStack
	input    *Input
	renderer *Renderer
	camera   *Camera

	width, height int
	items         []macroui.DrawItem
}

// NewGame wires tree to Ebitengine input and a renderer with the given font
// size in pixels.
func NewGame(tree *macroui.Tree, fontSize float64) (*Game, error) {
	r, err := NewRenderer(fontSize)
	if err != nil {
		return nil, err
	}
	cam := NewCamera()
	return &Game{
		tree:     tree,
		input:    NewInput(cam),
		renderer: r,
		camera:   cam,
	}, nil
}

// Tree returns the tree being run.
func (g *Game) Tree() *macroui.Tree { return g.tree }

// Camera returns the view camera.
func (g *Game) Camera() *Camera { return g.camera }

// Renderer returns the renderer.
func (g *Game) Renderer() *Renderer { return g.renderer }

// Events returns the pending event stack. Events pushed here are handled on
// the next Update.
func (g *Game) Events() *macroui.EventStack { return &g.events }

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.input.Poll(&g.events)
	if err := g.process(g.events.Drain()); err != nil {
		return err
	}

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = 60
	}
	g.advance(1 / float32(tps))

	if g.OnTick != nil {
		if err := g.OnTick(); err != nil {
			return err
		}
	}
	g.items = g.tree.Snapshot()
	return nil
}

// process routes drained events in push order. Render events go to the
// renderer, input events to the tree. Escape ends the game.
func (g *Game) process(events []macroui.Event) error {
	for _, ev := range events {
		if ev.Category == macroui.CategoryRender {
			if ev.Type == macroui.EventResize {
				g.renderer.Resize(ev.Width, ev.Height)
			}
			continue
		}

		switch ev.Type {
		case macroui.EventKey:
			if ev.Action == macroui.ActionPress {
				switch ev.Key {
				case macroui.KeyEscape:
					return ebiten.Termination
				case macroui.KeyHome:
					g.camera.ScrollTo(0, 0, recentreDuration, ease.OutCubic)
				}
			}
			g.renderer.Caret().Reset()
		case macroui.EventCharInput:
			g.renderer.Caret().Reset()
		}
		g.tree.Dispatch(ev)
	}
	return nil
}

func (g *Game) advance(dt float32) {
	g.camera.Update(dt)
	g.renderer.Update(dt)
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.items, g.camera.View())
}

// Layout implements ebiten.Game. A size change is queued as a resize event.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.input.SetScreenSize(outsideWidth, outsideHeight)
		g.events.Push(macroui.ResizeEvent(outsideWidth, outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Options configures the window opened by Run.
type Options struct {
	Width, Height int
	Title         string
	// TPS is the update rate. Zero keeps Ebitengine's default.
	TPS int
}

// Run opens a resizable window and runs g until it ends.
func Run(g *Game, opts Options) error {
	if opts.Width > 0 && opts.Height > 0 {
		ebiten.SetWindowSize(opts.Width, opts.Height)
	}
	if opts.Title != "" {
		ebiten.SetWindowTitle(opts.Title)
	}
	if opts.TPS > 0 {
		ebiten.SetTPS(opts.TPS)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
