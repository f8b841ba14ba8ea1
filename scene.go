package grove

import "math/rand/v2"

const (
	// RootCount is the number of independently parameterized grammar roots
	// built per scene.
	RootCount = 5

	// bulkClearEvery forces a full-canvas leaf detach after this many
	// accumulated pointer events.
	bulkClearEvery = 5

	// topMargin is the Y coordinate branch growth may not cross.
	topMargin = 24.0

	// rootAnchorJitter offsets each root from its even spacing slot, as a
	// fraction of the slot width.
	rootAnchorJitter = 0.3
)

// RootState is one root's randomized parameters plus its fully interpreted
// segment layers. Lifetime is one scene; season changes and resizes rebuild
// every root.
type RootState struct {
	Anchor        Vec2
	LengthMult    float64
	ThicknessMult float64
	Iterations    int
	Segments      LayeredSegments
}

// Scene is the process-wide simulation context: the active season profile and
// all state derived from it. Everything here is rebuilt wholesale by
// SelectSeason and Resize; no tick ever observes a partially reset scene
// because the rebuild happens synchronously between ticks.
//
// All methods are single-goroutine: one tick runs at a time, and the only
// cross-goroutine input is the progress scalar passed into Advance.
type Scene struct {
	profile SeasonProfile
	width   float64
	height  float64

	ground    *Ground
	roots     []RootState
	scheduler *GrowthScheduler
	leaves    *LeafField

	rng          *rand.Rand
	lastProgress float64
	pointerCount int
}

// NewScene builds a complete scene for the given season and canvas size. The
// rng drives every random decision in the scene (root parameters, leaf
// placement, ripple detach), so a seeded rng reproduces a scene exactly.
func NewScene(key SeasonKey, width, height float64, rng *rand.Rand) *Scene {
	s := &Scene{
		profile: Profile(key),
		width:   width,
		height:  height,
		rng:     rng,
	}
	s.rebuild()
	return s
}

// rebuild discards and reconstructs all derived state from the current
// profile and canvas size: ground, roots, scheduler, and leaf field.
func (s *Scene) rebuild() {
	p := s.profile
	s.ground = NewGround(p.Ground, s.height)
	s.leaves = NewLeafField(p, s.width, s.height, s.rng)
	s.lastProgress = 0
	s.pointerCount = 0

	s.roots = make([]RootState, RootCount)
	slot := s.width / RootCount
	for i := range s.roots {
		root := &s.roots[i]
		root.LengthMult = p.RootLengthMult.Sample(s.rng)
		root.ThicknessMult = p.RootThicknessMult.Sample(s.rng)
		root.Iterations = p.RootIterations.Sample(s.rng)

		x := slot*(float64(i)+0.5) + (s.rng.Float64()*2-1)*slot*rootAnchorJitter
		root.Anchor = Vec2{X: x, Y: s.ground.HeightAt(x)}

		sentence := Expand(Axiom, root.Iterations)
		step := p.BaseLength * root.LengthMult * pow(p.LengthFactor, root.Iterations)
		root.Segments = Interpret(sentence, TurtleConfig{
			Start:               root.Anchor,
			StepLength:          step,
			AngleDeg:            p.AngleDeg,
			StartThickness:      p.StartThickness * root.ThicknessMult,
			ThicknessDecay:      p.ThicknessDecay,
			ThicknessFloor:      p.ThicknessFloor,
			TrunkLengthBoost:    p.TrunkLengthBoost,
			TrunkThicknessBoost: p.TrunkThicknessBoost,
			Iterations:          root.Iterations,
			TopMargin:           topMargin,
		})
	}

	layered := make([]LayeredSegments, len(s.roots))
	for i := range s.roots {
		layered[i] = s.roots[i].Segments
	}
	s.scheduler = NewGrowthScheduler(layered, defaultDrainPerTick)
}

// Advance runs one simulation tick against the externally supplied progress
// value: release and drain growth (scattering leaves along each committed
// segment), backfill the canopy once growth is complete, and integrate
// falling leaves against the ground.
func (s *Scene) Advance(progress float64) {
	s.lastProgress = clamp(progress, 0, 1)
	s.scheduler.Advance(s.lastProgress, s.leaves.ScatterAlong)
	if s.scheduler.Complete() {
		s.leaves.Backfill()
	}
	s.leaves.Update(s.ground)
}

// SelectSeason swaps the active profile and rebuilds the scene from scratch.
func (s *Scene) SelectSeason(key SeasonKey) {
	s.profile = Profile(key)
	s.rebuild()
}

// Resize rebuilds the scene against new canvas dimensions.
func (s *Scene) Resize(width, height float64) {
	s.width = width
	s.height = height
	s.rebuild()
}

// PointerSelect reacts to a pointer event at (x, y): detach leaves under the
// pointer (or ripple nearby ones), and every bulkClearEvery-th event forces
// every leaf on canvas to fall instead.
func (s *Scene) PointerSelect(x, y float64) {
	s.pointerCount++
	if s.pointerCount >= bulkClearEvery {
		s.leaves.DetachAll()
		s.pointerCount = 0
		return
	}
	s.leaves.DetachAt(x, y)
}

// Profile returns the active season profile.
func (s *Scene) Profile() SeasonProfile {
	return s.profile
}

// Size returns the canvas dimensions the scene was built against.
func (s *Scene) Size() (width, height float64) {
	return s.width, s.height
}

// Ground returns the active height field.
func (s *Scene) Ground() *Ground {
	return s.ground
}

// Roots returns the scene's root states. The returned slice MUST NOT be
// mutated.
func (s *Scene) Roots() []RootState {
	return s.roots
}

// Scheduler returns the growth scheduler.
func (s *Scene) Scheduler() *GrowthScheduler {
	return s.scheduler
}

// Leaves returns the leaf field.
func (s *Scene) Leaves() *LeafField {
	return s.leaves
}

// Progress returns the progress value read at the last tick.
func (s *Scene) Progress() float64 {
	return s.lastProgress
}

// pow is an integer-exponent power helper for the length decay factor.
func pow(base float64, exp int) float64 {
	v := 1.0
	for i := 0; i < exp; i++ {
		v *= base
	}
	return v
}
