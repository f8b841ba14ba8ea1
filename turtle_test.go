package grove

import (
	"math"
	"strings"
	"testing"
)

// openConfig returns a config on a canvas tall enough that no walk aborts.
func openConfig(iterations int) TurtleConfig {
	return TurtleConfig{
		Start:          Vec2{X: 0, Y: 1e6},
		StepLength:     10,
		AngleDeg:       25,
		StartThickness: 8,
		ThicknessDecay: 0.98,
		ThicknessFloor: 1,
		Iterations:     iterations,
		TopMargin:      0,
	}
}

func TestInterpretSegmentPerForward(t *testing.T) {
	out := Interpret("FFF", openConfig(1))
	if got := out.SegmentCount(); got != 3 {
		t.Errorf("segment count = %d, want 3", got)
	}
	if got := len(out[0]); got != 3 {
		t.Errorf("layer 0 count = %d, want 3", got)
	}
}

func TestInterpretExpandedSentence(t *testing.T) {
	sentence := Expand(Axiom, 2)
	out := Interpret(sentence, openConfig(2))
	want := strings.Count(sentence, "F")
	if got := out.SegmentCount(); got != want {
		t.Errorf("segment count = %d, want %d (one per F)", got, want)
	}
}

func TestInterpretLayerAssignment(t *testing.T) {
	out := Interpret("F[F]F", openConfig(2))
	if got := len(out); got != 2 {
		t.Fatalf("layer count = %d, want 2", got)
	}
	if got := len(out[0]); got != 2 {
		t.Errorf("layer 0 count = %d, want 2", got)
	}
	if got := len(out[1]); got != 1 {
		t.Errorf("layer 1 count = %d, want 1", got)
	}
}

func TestInterpretLayerClamped(t *testing.T) {
	out := Interpret("[[[F]]]", openConfig(2))
	for _, layer := range out {
		for _, seg := range layer {
			if seg.Layer < 0 || seg.Layer > 1 {
				t.Errorf("segment layer = %d, want within [0, 1]", seg.Layer)
			}
		}
	}
	if got := out.SegmentCount(); got != 1 {
		t.Errorf("segment count = %d, want 1", got)
	}
	if got := len(out[1]); got != 1 {
		t.Errorf("clamped segment should land in layer 1, got layer 1 count = %d", got)
	}
}

func TestInterpretPopEmptyStackNoOp(t *testing.T) {
	out := Interpret("]]F", openConfig(1))
	if got := out.SegmentCount(); got != 1 {
		t.Errorf("segment count = %d, want 1", got)
	}
}

func TestInterpretUnknownSymbolsIgnored(t *testing.T) {
	plain := Interpret("FF", openConfig(1))
	noisy := Interpret("FXF?z", openConfig(1))
	if plain.SegmentCount() != noisy.SegmentCount() {
		t.Errorf("noisy count = %d, want %d", noisy.SegmentCount(), plain.SegmentCount())
	}
	for i := range plain[0] {
		if plain[0][i] != noisy[0][i] {
			t.Errorf("segment %d differs: %+v vs %+v", i, plain[0][i], noisy[0][i])
		}
	}
}

func TestInterpretThicknessDecaysToFloor(t *testing.T) {
	cfg := openConfig(1)
	cfg.ThicknessDecay = 0.5
	cfg.ThicknessFloor = 1
	out := Interpret("FFFFFF", cfg)
	prev := math.Inf(1)
	for _, seg := range out[0] {
		if seg.Thickness > prev {
			t.Errorf("thickness increased: %v after %v", seg.Thickness, prev)
		}
		prev = seg.Thickness
	}
	last := out[0][len(out[0])-1]
	if last.Thickness < cfg.ThicknessFloor {
		t.Errorf("thickness = %v, want >= floor %v", last.Thickness, cfg.ThicknessFloor)
	}
}

func TestInterpretTrunkBoost(t *testing.T) {
	cfg := openConfig(2)
	cfg.TrunkLengthBoost = 2
	cfg.TrunkThicknessBoost = 3
	out := Interpret("F[F]", cfg)

	trunk := out[0][0]
	branch := out[1][0]
	if got, want := trunk.Length, cfg.StepLength*2; got != want {
		t.Errorf("trunk length = %v, want %v", got, want)
	}
	if got, want := branch.Length, cfg.StepLength; got != want {
		t.Errorf("branch length = %v, want %v", got, want)
	}
	if trunk.Thickness <= branch.Thickness {
		t.Errorf("trunk thickness %v should exceed branch thickness %v",
			trunk.Thickness, branch.Thickness)
	}
}

func TestInterpretHeadingStartsUp(t *testing.T) {
	out := Interpret("F", openConfig(1))
	seg := out[0][0]
	if seg.B.Y >= seg.A.Y {
		t.Errorf("first step should move up: A.Y=%v B.Y=%v", seg.A.Y, seg.B.Y)
	}
	if math.Abs(seg.B.X-seg.A.X) > 1e-9 {
		t.Errorf("first step should be vertical, dX = %v", seg.B.X-seg.A.X)
	}
}

func TestInterpretTopMarginAbortsWholeWalk(t *testing.T) {
	cfg := openConfig(1)
	cfg.Start = Vec2{X: 0, Y: 100}
	cfg.StepLength = 30
	cfg.TopMargin = 50
	// Steps land at y=70, then y=40 which crosses the margin; the remaining
	// walk is abandoned entirely, including the turn-away afterwards.
	out := Interpret("FF-F-F", cfg)
	if got := out.SegmentCount(); got != 1 {
		t.Errorf("segment count = %d, want 1 (walk aborts on margin cross)", got)
	}
}

func TestInterpretSegmentChainsConnect(t *testing.T) {
	out := Interpret("FFFF", openConfig(1))
	for i := 1; i < len(out[0]); i++ {
		if out[0][i].A != out[0][i-1].B {
			t.Errorf("segment %d start %+v does not meet previous end %+v",
				i, out[0][i].A, out[0][i-1].B)
		}
	}
}
