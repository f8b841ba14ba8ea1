package grove

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the Run game loop.
type RunConfig struct {
	Title         string
	Width, Height int
	Resizable     bool
	ShowHUD       bool
	// StatusFunc feeds the HUD's collaborator status line.
	StatusFunc func() string
	// OnUpdate, when set, runs at the start of every tick before the scene
	// advances. Returning an error stops the game loop.
	OnUpdate func(*Scene) error
}

// seasonKeys maps number keys to seasons for the default key bindings.
var seasonKeys = map[ebiten.Key]SeasonKey{
	ebiten.KeyDigit1: SeasonSpring,
	ebiten.KeyDigit2: SeasonSummer,
	ebiten.KeyDigit3: SeasonAutumn,
	ebiten.KeyDigit4: SeasonWinter,
}

// game adapts a Scene plus a ProgressSource to ebiten.Game. Input edges are
// tracked against the previous frame's state; no external input package.
type game struct {
	scene    *Scene
	source   ProgressSource
	renderer *Renderer
	hud      *HUD
	onUpdate func(*Scene) error

	width, height int
	prevMouseDown bool
	prevKeys      map[ebiten.Key]bool
}

func (g *game) Update() error {
	if g.onUpdate != nil {
		if err := g.onUpdate(g.scene); err != nil {
			return err
		}
	}

	// Season selection on key press edges.
	for key, season := range seasonKeys {
		down := ebiten.IsKeyPressed(key)
		if down && !g.prevKeys[key] {
			g.scene.SelectSeason(season)
		}
		g.prevKeys[key] = down
	}

	// Pointer selection on mouse press edges.
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if down && !g.prevMouseDown {
		x, y := ebiten.CursorPosition()
		g.scene.PointerSelect(float64(x), float64(y))
	}
	g.prevMouseDown = down

	g.scene.Advance(g.source.Progress())
	g.renderer.Update(g.scene, 1.0/float64(ebiten.TPS()))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.scene)
	if g.hud != nil {
		g.hud.Draw(screen, g.scene, 1.0/float64(ebiten.TPS()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.scene.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return g.width, g.height
}

// Run opens a window and drives the scene at the display tick rate, reading
// progress from source once per tick. Blocks until the window closes or
// OnUpdate returns an error.
func Run(scene *Scene, source ProgressSource, cfg RunConfig) error {
	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = 960
	}
	if height <= 0 {
		height = 640
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(width, height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := &game{
		scene:    scene,
		source:   source,
		renderer: NewRenderer(),
		onUpdate: cfg.OnUpdate,
		width:    width,
		height:   height,
		prevKeys: make(map[ebiten.Key]bool),
	}
	if cfg.ShowHUD {
		g.hud = NewHUD()
		g.hud.StatusFunc = cfg.StatusFunc
	}
	return ebiten.RunGame(g)
}
