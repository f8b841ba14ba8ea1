package grove

// defaultDrainPerTick bounds how many pending segments become permanent per
// tick. The bound is what makes the reveal gradual even when progress jumps
// several layers at once.
const defaultDrainPerTick = 6

// GrowthScheduler maps the external progress value onto staged segment
// emission. Layers are merged across roots: emitting layer L releases layer L
// of every root that has one, so the whole grove deepens together.
//
// Emission is monotonic. Progress may oscillate or fall back; layers already
// emitted stay emitted, and only future increases matter. Resetting growth
// means rebuilding the Scene, never rolling the scheduler back.
type GrowthScheduler struct {
	layers       [][]Segment
	emitted      int
	pending      []Segment
	committed    []Segment
	drainPerTick int
}

// NewGrowthScheduler merges the roots' layered segments and returns a
// scheduler in the idle state. drainPerTick values below 1 fall back to the
// default.
func NewGrowthScheduler(roots []LayeredSegments, drainPerTick int) *GrowthScheduler {
	if drainPerTick < 1 {
		drainPerTick = defaultDrainPerTick
	}
	total := 0
	for _, root := range roots {
		if len(root) > total {
			total = len(root)
		}
	}
	layers := make([][]Segment, total)
	for l := range layers {
		for _, root := range roots {
			if l < len(root) {
				layers[l] = append(layers[l], root[l]...)
			}
		}
	}
	return &GrowthScheduler{layers: layers, drainPerTick: drainPerTick}
}

// TotalLayers returns the number of reveal stages.
func (s *GrowthScheduler) TotalLayers() int {
	return len(s.layers)
}

// EmittedLayers returns how many layers have been released into the queue so
// far. Non-decreasing over the scheduler's lifetime.
func (s *GrowthScheduler) EmittedLayers() int {
	return s.emitted
}

// PendingCount returns the number of segments queued but not yet committed.
func (s *GrowthScheduler) PendingCount() int {
	return len(s.pending)
}

// Committed returns the permanently emitted segments in commit order. The
// returned slice MUST NOT be mutated; it is re-rendered every frame.
func (s *GrowthScheduler) Committed() []Segment {
	return s.committed
}

// Complete reports whether every layer has been emitted and the queue has
// drained.
func (s *GrowthScheduler) Complete() bool {
	return s.emitted == len(s.layers) && len(s.pending) == 0
}

// Advance runs one tick: release layers newly eligible under progress, then
// drain up to drainPerTick segments from the queue in FIFO order. onCommit is
// called once per drained segment, after it has been appended to the
// committed set.
func (s *GrowthScheduler) Advance(progress float64, onCommit func(Segment)) {
	target := int(clamp(progress, 0, 1) * float64(len(s.layers)))
	for s.emitted < target {
		s.pending = append(s.pending, s.layers[s.emitted]...)
		s.emitted++
	}

	n := s.drainPerTick
	if n > len(s.pending) {
		n = len(s.pending)
	}
	for i := 0; i < n; i++ {
		seg := s.pending[i]
		s.committed = append(s.committed, seg)
		if onCommit != nil {
			onCommit(seg)
		}
	}
	s.pending = s.pending[n:]
}
