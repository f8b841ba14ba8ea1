package grove

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// HUD overlays the season name, growth progress, entity counts, and the
// collaborator status line. It renders text into a small reused image via
// ebitenutil.DebugPrint and refreshes the text every ~0.25 seconds.
type HUD struct {
	img        *ebiten.Image
	lastUpdate float64
	// StatusFunc, when set, supplies the collaborator status line (e.g. a
	// gesture model that failed to load). Empty string means healthy.
	StatusFunc func() string
}

// NewHUD creates a HUD widget.
func NewHUD() *HUD {
	// 240x64 fits four lines of debug text.
	return &HUD{img: ebiten.NewImage(240, 64)}
}

// Draw refreshes the HUD text if due and composites it onto the screen's
// top-left corner.
func (h *HUD) Draw(screen *ebiten.Image, s *Scene, dt float64) {
	h.lastUpdate += dt
	if h.lastUpdate >= 0.25 {
		h.lastUpdate = 0

		h.img.Clear()
		// Semi-transparent background for readability.
		h.img.Fill(color.RGBA{0, 0, 0, 128})

		text := fmt.Sprintf("season: %s\nprogress: %3.0f%%\nleaves: %d  segments: %d\nFPS: %.1f",
			s.Profile().Season,
			s.Progress()*100,
			s.Leaves().Len(),
			len(s.Scheduler().Committed()),
			ebiten.ActualFPS())
		if h.StatusFunc != nil {
			if status := h.StatusFunc(); status != "" {
				text += "\n" + status
			}
		}
		ebitenutil.DebugPrint(h.img, text)
	}

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(8, 8)
	screen.DrawImage(h.img, &op)
}
