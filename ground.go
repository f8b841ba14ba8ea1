package grove

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// GroundConfig parameterizes the height field. Part of SeasonProfile; each
// season carries its own seed so terrains differ between seasons but stay
// identical within one.
type GroundConfig struct {
	// BaseOffset is the minimum ground elevation above the canvas bottom.
	BaseOffset float64
	// Amplitude scales the noise contribution on top of BaseOffset.
	Amplitude float64
	// NoiseScale stretches the noise domain; smaller values give gentler hills.
	NoiseScale float64
	// Step quantizes the elevation, producing the terraced silhouette.
	Step float64
	// Seed seeds the noise generator and shifts its domain.
	Seed int64
}

// Ground is the 1-D procedural height field. It serves two call sites that
// must agree exactly: the rendered silhouette and leaf-ground collision.
type Ground struct {
	cfg     GroundConfig
	noise   opensimplex.Noise
	canvasH float64
}

// NewGround builds a height field for a canvas of the given height.
func NewGround(cfg GroundConfig, canvasHeight float64) *Ground {
	if cfg.Step <= 0 {
		cfg.Step = 1
	}
	return &Ground{
		cfg:     cfg,
		noise:   opensimplex.NewNormalized(cfg.Seed),
		canvasH: canvasHeight,
	}
}

// HeightAt returns the ground surface Y at horizontal position x. Pure:
// identical arguments always return identical results for one Ground.
//
// The elevation offset is floor-quantized to cfg.Step before subtraction,
// which is what gives the silhouette its stepped terraces.
func (g *Ground) HeightAt(x float64) float64 {
	n := g.noise.Eval2((x+float64(g.cfg.Seed))*g.cfg.NoiseScale, 0)
	offset := g.cfg.BaseOffset + n*g.cfg.Amplitude
	quantized := math.Floor(offset/g.cfg.Step) * g.cfg.Step
	return g.canvasH - quantized
}

// CanvasHeight returns the canvas height the field was built against.
func (g *Ground) CanvasHeight() float64 {
	return g.canvasH
}

// Silhouette samples the surface every sampleStep pixels across [0, width]
// and returns the resulting polyline, endpoint included. The renderer fills
// below this curve; collision uses HeightAt directly, so both see the same
// surface.
func (g *Ground) Silhouette(width, sampleStep float64) []Vec2 {
	if sampleStep <= 0 {
		sampleStep = 8
	}
	points := make([]Vec2, 0, int(width/sampleStep)+2)
	for x := 0.0; x < width; x += sampleStep {
		points = append(points, Vec2{X: x, Y: g.HeightAt(x)})
	}
	points = append(points, Vec2{X: width, Y: g.HeightAt(width)})
	return points
}
