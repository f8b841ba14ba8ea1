package grove

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// leafStampSize is the side of the cached white-circle image each leaf
	// is stamped from.
	leafStampSize = 64

	// leafAspect squashes the stamp into an ellipse before rotation.
	leafAspect = 0.62

	// groundSampleStep is the silhouette sampling interval in pixels.
	groundSampleStep = 8.0

	// seasonFadeSeconds is the background crossfade duration on season change.
	seasonFadeSeconds = 1.2
)

// Renderer draws a Scene onto an ebiten image every frame. The render surface
// does not persist between frames, so committed segments, leaves, and the
// ground silhouette are all redrawn from simulation state each call.
//
// The only animated render-side state is the background crossfade between
// season palettes, tweened so a season change does not hard-cut.
type Renderer struct {
	stamp *ebiten.Image // white circle, tinted and squashed per leaf
	white *ebiten.Image // 1x1 source for the ground mesh

	background Color
	fade       [3]*gween.Tween
	fading     bool
	lastSeason SeasonKey
	started    bool
}

// NewRenderer creates a renderer with its stamp images pre-rasterized.
func NewRenderer() *Renderer {
	stamp := ebiten.NewImage(leafStampSize, leafStampSize)
	vector.DrawFilledCircle(stamp, leafStampSize/2, leafStampSize/2, leafStampSize/2, Color{1, 1, 1, 1}.rgba(), true)

	white := ebiten.NewImage(1, 1)
	white.Fill(Color{1, 1, 1, 1}.rgba())

	return &Renderer{stamp: stamp, white: white}
}

// Update advances the background crossfade by dt seconds and retargets it
// when the scene's season changed since the last frame.
func (r *Renderer) Update(s *Scene, dt float64) {
	target := s.Profile().Background
	if !r.started {
		r.background = target
		r.lastSeason = s.Profile().Season
		r.started = true
		return
	}
	if s.Profile().Season != r.lastSeason {
		r.lastSeason = s.Profile().Season
		r.fade[0] = gween.New(float32(r.background.R), float32(target.R), seasonFadeSeconds, ease.OutQuad)
		r.fade[1] = gween.New(float32(r.background.G), float32(target.G), seasonFadeSeconds, ease.OutQuad)
		r.fade[2] = gween.New(float32(r.background.B), float32(target.B), seasonFadeSeconds, ease.OutQuad)
		r.fading = true
	}
	if r.fading {
		fields := [3]*float64{&r.background.R, &r.background.G, &r.background.B}
		allDone := true
		for i, tw := range r.fade {
			v, finished := tw.Update(float32(dt))
			*fields[i] = float64(v)
			if !finished {
				allDone = false
			}
		}
		r.fading = !allDone
	}
}

// Draw renders the whole scene: background, ground silhouette, committed
// branch segments, then leaves.
func (r *Renderer) Draw(screen *ebiten.Image, s *Scene) {
	screen.Fill(r.background.rgba())
	r.drawGround(screen, s)
	r.drawSegments(screen, s)
	r.drawLeaves(screen, s)
}

// drawGround fills the region below the height field with a triangle strip.
// The strip samples the exact HeightAt function leaf collision uses, so
// settled leaves sit on the visible surface.
func (r *Renderer) drawGround(screen *ebiten.Image, s *Scene) {
	width, height := s.Size()
	points := s.Ground().Silhouette(width, groundSampleStep)
	if len(points) < 2 {
		return
	}

	c := s.Profile().GroundColor
	cr := float32(c.R * c.A)
	cg := float32(c.G * c.A)
	cb := float32(c.B * c.A)
	ca := float32(c.A)

	verts := make([]ebiten.Vertex, 0, len(points)*2)
	for _, p := range points {
		verts = append(verts,
			ebiten.Vertex{DstX: float32(p.X), DstY: float32(p.Y), SrcX: 0.5, SrcY: 0.5, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
			ebiten.Vertex{DstX: float32(p.X), DstY: float32(height), SrcX: 0.5, SrcY: 0.5, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		)
	}
	inds := make([]uint16, 0, (len(points)-1)*6)
	for i := 0; i < len(points)-1; i++ {
		base := uint16(i * 2)
		inds = append(inds, base, base+1, base+2, base+2, base+1, base+3)
	}
	screen.DrawTriangles(verts, inds, r.white, &ebiten.DrawTrianglesOptions{})
}

// drawSegments strokes every committed segment with round caps: the line body
// via StrokeLine plus a filled cap circle at each endpoint.
func (r *Renderer) drawSegments(screen *ebiten.Image, s *Scene) {
	branch := s.Profile().BranchColor.rgba()
	for _, seg := range s.Scheduler().Committed() {
		w := float32(seg.Thickness)
		vector.StrokeLine(screen,
			float32(seg.A.X), float32(seg.A.Y),
			float32(seg.B.X), float32(seg.B.Y),
			w, branch, true)
		vector.DrawFilledCircle(screen, float32(seg.A.X), float32(seg.A.Y), w/2, branch, true)
		vector.DrawFilledCircle(screen, float32(seg.B.X), float32(seg.B.Y), w/2, branch, true)
	}
}

// drawLeaves stamps each leaf as a rotated, tinted ellipse.
func (r *Renderer) drawLeaves(screen *ebiten.Image, s *Scene) {
	leaves := s.Leaves().Leaves()
	for i := range leaves {
		l := &leaves[i]

		var op ebiten.DrawImageOptions
		op.Filter = ebiten.FilterLinear
		op.GeoM.Translate(-leafStampSize/2, -leafStampSize/2)
		op.GeoM.Scale(l.Radius*2/leafStampSize, l.Radius*2*leafAspect/leafStampSize)
		op.GeoM.Rotate(l.Rotation)
		op.GeoM.Translate(l.Pos.X, l.Pos.Y)
		op.ColorScale.Scale(
			float32(l.Color.R*l.Color.A),
			float32(l.Color.G*l.Color.A),
			float32(l.Color.B*l.Color.A),
			float32(l.Color.A))
		screen.DrawImage(r.stamp, &op)
	}
}
