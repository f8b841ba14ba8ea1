package grove

import (
	"math"
	"math/rand/v2"
)

// Placement and physics constants. Placement values are shared by scatter and
// backfill; physics values are stylized, not physical.
const (
	placeTries       = 12   // candidate attempts before forced placement
	placeJitter      = 7.0  // per-try candidate jitter in pixels
	leafPerLength    = 18.0 // one leaf per this many pixels of segment
	maxLeavesPerSeg  = 5    // scatter bound regardless of segment length
	backfillSpread   = 2.0  // backfill jitter, in multiples of ScatterRadius
	canvasMargin     = 40.0 // keeps random backfill off the canvas edges
	detachHitScale   = 3.0  // direct-hit radius, in multiples of leaf radius
	rippleRadius     = 120.0
	rippleChance     = 0.3
	windStrength     = 0.18
	windFrequency    = 0.045
	horizontalDamp   = 0.92
	verticalDamp     = 0.96
	fallAcceleration = 0.35
	spinRange        = 0.09 // per-tick rotation advance drawn in [-spin, +spin]
)

// Leaf is one placed leaf. Position is immutable while resting and integrated
// every tick while falling. Leaves are destroyed only by a scene reset.
type Leaf struct {
	Pos      Vec2
	Radius   float64
	Color    Color
	Falling  bool
	Vel      Vec2
	Rotation float64
	Spin     float64

	// phase varies the wind force per leaf so a detached cluster does not
	// sway in lockstep.
	phase float64
	// forced marks leaves placed via the exhaustion fallback; they are
	// exempt from the minimum-spacing invariant.
	forced bool
}

// LeafField owns every placed leaf and the placement, backfill, and falling
// rules. Spacing checks are O(n) per attempt against all existing leaves --
// fine at the profile scale (a few thousand leaves), but a known bound if
// densities ever grow past that.
type LeafField struct {
	leaves  []Leaf
	profile SeasonProfile
	bounds  Rect
	rng     *rand.Rand
	frame   int

	// minSpacing is derived once from the profile's leaf radius range.
	minSpacing float64
}

// NewLeafField creates an empty field for a canvas of the given size.
func NewLeafField(profile SeasonProfile, width, height float64, rng *rand.Rand) *LeafField {
	return &LeafField{
		profile:    profile,
		bounds:     Rect{Width: width, Height: height},
		rng:        rng,
		minSpacing: profile.LeafRadius.Min + profile.LeafRadius.Max,
	}
}

// Len returns the number of placed leaves.
func (f *LeafField) Len() int {
	return len(f.leaves)
}

// Leaves returns the live leaf slice for rendering. The returned slice MUST
// NOT be mutated.
func (f *LeafField) Leaves() []Leaf {
	return f.leaves
}

// tryPlace attempts up to placeTries jittered candidates around (x, y) and
// places a leaf at the first one clear of every existing leaf by minSpacing.
// If every try collides, the last candidate is clamped to the canvas and
// placed anyway: density targets take priority over strict spacing, and the
// forced fallback is load-bearing at crowded canvas edges.
func (f *LeafField) tryPlace(x, y float64) {
	var cx, cy float64
	for try := 0; try < placeTries; try++ {
		cx = x + (f.rng.Float64()*2-1)*placeJitter
		cy = y + (f.rng.Float64()*2-1)*placeJitter
		if f.clearAt(cx, cy) {
			f.spawn(cx, cy, false)
			return
		}
	}
	cx = clamp(cx, 0, f.bounds.Width)
	cy = clamp(cy, 0, f.bounds.Height)
	f.spawn(cx, cy, true)
}

// clearAt reports whether (x, y) keeps minSpacing from every existing leaf.
func (f *LeafField) clearAt(x, y float64) bool {
	minSq := f.minSpacing * f.minSpacing
	for i := range f.leaves {
		dx := f.leaves[i].Pos.X - x
		dy := f.leaves[i].Pos.Y - y
		if dx*dx+dy*dy < minSq {
			return false
		}
	}
	return true
}

// spawn appends a leaf at (x, y) with randomized radius, color, spin, and
// wind phase.
func (f *LeafField) spawn(x, y float64, forced bool) {
	c := lerpColor(f.profile.LeafColorMin, f.profile.LeafColorMax, f.rng.Float64())
	c.A = f.profile.LeafAlpha
	f.leaves = append(f.leaves, Leaf{
		Pos:      Vec2{X: x, Y: y},
		Radius:   f.profile.LeafRadius.Sample(f.rng),
		Color:    c,
		Rotation: f.rng.Float64() * 2 * math.Pi,
		Spin:     (f.rng.Float64()*2 - 1) * spinRange,
		phase:    f.rng.Float64() * 2 * math.Pi,
		forced:   forced,
	})
}

// ScatterAlong places leaves along a newly committed segment: a count
// proportional to segment length, each at a random point on the segment
// offset laterally within the profile's scatter radius. Skipped entirely once
// the profile's leaf cap is reached.
func (f *LeafField) ScatterAlong(seg Segment) {
	if len(f.leaves) >= f.profile.MaxLeaves {
		return
	}
	count := int(seg.Length/leafPerLength) + 1
	if count > maxLeavesPerSeg {
		count = maxLeavesPerSeg
	}
	for i := 0; i < count && len(f.leaves) < f.profile.MaxLeaves; i++ {
		t := f.rng.Float64()
		x := lerp(seg.A.X, seg.B.X, t) + (f.rng.Float64()*2-1)*f.profile.ScatterRadius
		y := lerp(seg.A.Y, seg.B.Y, t) + (f.rng.Float64()*2-1)*f.profile.ScatterRadius
		f.tryPlace(x, y)
	}
}

// Backfill tops the canopy up toward the profile minimum, placing up to
// BackfillPerTick leaves near randomly chosen existing leaves (or anywhere
// within the canvas margins when the field is empty). Called only once growth
// is complete and the pending queue has drained.
func (f *LeafField) Backfill() {
	for i := 0; i < f.profile.BackfillPerTick && len(f.leaves) < f.profile.MinLeaves; i++ {
		var x, y float64
		if len(f.leaves) > 0 {
			anchor := f.leaves[f.rng.IntN(len(f.leaves))].Pos
			spread := f.profile.ScatterRadius * backfillSpread
			x = anchor.X + (f.rng.Float64()*2-1)*spread
			y = anchor.Y + (f.rng.Float64()*2-1)*spread
		} else {
			x = canvasMargin + f.rng.Float64()*(f.bounds.Width-2*canvasMargin)
			y = canvasMargin + f.rng.Float64()*(f.bounds.Height-2*canvasMargin)
		}
		f.tryPlace(x, y)
	}
}

// Update advances falling leaves by one tick and settles any that reach the
// ground. Resting leaves are untouched. Collision is tested every tick
// against ground.HeightAt, the same function the silhouette renders from.
func (f *LeafField) Update(ground *Ground) {
	f.frame++
	for i := range f.leaves {
		l := &f.leaves[i]
		if !l.Falling {
			continue
		}

		wind := math.Sin(float64(f.frame)*windFrequency+l.phase) * windStrength
		l.Vel.X += wind
		l.Vel.X *= horizontalDamp
		l.Vel.Y += fallAcceleration
		l.Vel.Y *= verticalDamp
		l.Pos.X += l.Vel.X
		l.Pos.Y += l.Vel.Y
		l.Rotation += l.Spin

		if surface := ground.HeightAt(l.Pos.X); l.Pos.Y >= surface {
			l.Pos.Y = surface
			l.Vel = Vec2{}
			l.Falling = false
		}
	}
}

// DetachAt reacts to a pointer hit: leaves within detachHitScale times their
// own radius of (x, y) start falling. If nothing is hit, nearby leaves within
// rippleRadius each detach independently with rippleChance instead.
func (f *LeafField) DetachAt(x, y float64) {
	hit := false
	for i := range f.leaves {
		l := &f.leaves[i]
		if l.Falling {
			continue
		}
		dx := l.Pos.X - x
		dy := l.Pos.Y - y
		reach := l.Radius * detachHitScale
		if dx*dx+dy*dy <= reach*reach {
			l.Falling = true
			hit = true
		}
	}
	if hit {
		return
	}
	for i := range f.leaves {
		l := &f.leaves[i]
		if l.Falling {
			continue
		}
		dx := l.Pos.X - x
		dy := l.Pos.Y - y
		if dx*dx+dy*dy <= rippleRadius*rippleRadius && f.rng.Float64() < rippleChance {
			l.Falling = true
		}
	}
}

// DetachAll forces every leaf into the falling state.
func (f *LeafField) DetachAll() {
	for i := range f.leaves {
		f.leaves[i].Falling = true
	}
}
