package grove

import "testing"

// twoRoots builds two roots with known layer shapes: root A has 2 layers of
// 3 and 2 segments, root B has 3 layers of 1 segment each.
func twoRoots() []LayeredSegments {
	seg := func(layer int, n float64) Segment {
		return Segment{A: Vec2{X: n}, B: Vec2{X: n + 1}, Length: 1, Layer: layer}
	}
	a := LayeredSegments{
		{seg(0, 0), seg(0, 1), seg(0, 2)},
		{seg(1, 3), seg(1, 4)},
	}
	b := LayeredSegments{
		{seg(0, 10)},
		{seg(1, 11)},
		{seg(2, 12)},
	}
	return []LayeredSegments{a, b}
}

func TestSchedulerMergesLayersAcrossRoots(t *testing.T) {
	s := NewGrowthScheduler(twoRoots(), 100)
	if got := s.TotalLayers(); got != 3 {
		t.Errorf("TotalLayers = %d, want 3 (max across roots)", got)
	}
	s.Advance(1, nil)
	if got := len(s.Committed()); got != 8 {
		t.Errorf("committed = %d, want all 8 segments", got)
	}
}

func TestSchedulerMonotonicEmission(t *testing.T) {
	s := NewGrowthScheduler(twoRoots(), 1)
	prev := 0
	for _, p := range []float64{0, 0.5, 0.2, 0.9, 0.1, 1.0, 0, 0.4} {
		s.Advance(p, nil)
		if s.EmittedLayers() < prev {
			t.Fatalf("emitted layers decreased from %d to %d at progress %v",
				prev, s.EmittedLayers(), p)
		}
		prev = s.EmittedLayers()
	}
	if prev != 3 {
		t.Errorf("emitted layers = %d after reaching progress 1, want 3", prev)
	}
}

func TestSchedulerProgressFloor(t *testing.T) {
	s := NewGrowthScheduler(twoRoots(), 100)
	s.Advance(0.34, nil) // floor(0.34*3) = 1 layer
	if got := s.EmittedLayers(); got != 1 {
		t.Errorf("emitted = %d at progress 0.34, want 1", got)
	}
	s.Advance(0.67, nil) // floor(0.67*3) = 2
	if got := s.EmittedLayers(); got != 2 {
		t.Errorf("emitted = %d at progress 0.67, want 2", got)
	}
}

func TestSchedulerDrainBound(t *testing.T) {
	const perTick = 2
	s := NewGrowthScheduler(twoRoots(), perTick)
	committedBefore := 0
	for i := 0; i < 10; i++ {
		s.Advance(1, nil)
		grew := len(s.Committed()) - committedBefore
		if grew > perTick {
			t.Fatalf("tick %d committed %d segments, drain bound is %d", i, grew, perTick)
		}
		committedBefore = len(s.Committed())
	}
	if !s.Complete() {
		t.Error("scheduler should be complete after 10 ticks of 2 at 8 segments")
	}
}

func TestSchedulerFIFOByLayer(t *testing.T) {
	s := NewGrowthScheduler(twoRoots(), 3)
	for i := 0; i < 5; i++ {
		s.Advance(1, nil)
	}
	prev := -1
	for i, seg := range s.Committed() {
		if seg.Layer < prev {
			t.Fatalf("commit %d has layer %d after layer %d; queue is not FIFO", i, seg.Layer, prev)
		}
		prev = seg.Layer
	}
}

func TestSchedulerOnCommitPerSegment(t *testing.T) {
	s := NewGrowthScheduler(twoRoots(), 3)
	calls := 0
	for i := 0; i < 5; i++ {
		s.Advance(1, func(Segment) { calls++ })
	}
	if calls != 8 {
		t.Errorf("onCommit called %d times, want 8", calls)
	}
}

func TestSchedulerClampsProgress(t *testing.T) {
	s := NewGrowthScheduler(twoRoots(), 100)
	s.Advance(4.2, nil)
	if got := s.EmittedLayers(); got != 3 {
		t.Errorf("emitted = %d at progress 4.2, want clamped to 3", got)
	}
	s2 := NewGrowthScheduler(twoRoots(), 100)
	s2.Advance(-1, nil)
	if got := s2.EmittedLayers(); got != 0 {
		t.Errorf("emitted = %d at progress -1, want 0", got)
	}
}

func TestSchedulerCompleteLifecycle(t *testing.T) {
	s := NewGrowthScheduler(twoRoots(), 1)
	if s.Complete() {
		t.Error("idle scheduler with layers should not be complete")
	}
	s.Advance(1, nil)
	if s.Complete() {
		t.Error("scheduler with a pending queue should not be complete")
	}
	for i := 0; i < 20; i++ {
		s.Advance(1, nil)
	}
	if !s.Complete() {
		t.Error("scheduler should be complete once the queue drains")
	}
	if got := s.PendingCount(); got != 0 {
		t.Errorf("pending = %d, want 0", got)
	}
}
