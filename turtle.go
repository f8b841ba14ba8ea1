package grove

import "math"

// Segment is one branch piece produced by the turtle walk. Immutable once
// created; the scheduler moves it from pending to committed without copying
// anything mutable.
type Segment struct {
	A, B      Vec2
	Thickness float64
	Length    float64
	Layer     int
}

// LayeredSegments groups segments by the bracket-nesting depth they were
// produced at. The slice index is the layer; layer 0 holds trunk-level
// segments. Used by the growth scheduler to stage the progressive reveal.
type LayeredSegments [][]Segment

// SegmentCount returns the total number of segments across all layers.
func (ls LayeredSegments) SegmentCount() int {
	n := 0
	for _, layer := range ls {
		n += len(layer)
	}
	return n
}

// TurtleConfig parameterizes one walk. Values come from the active
// SeasonProfile combined with per-root randomization; nothing is read from
// ambient state.
type TurtleConfig struct {
	// Start is the cursor's initial position. The heading always starts
	// straight up.
	Start Vec2
	// StepLength is the distance covered per forward symbol, already scaled
	// by the root's length multiplier and length decay.
	StepLength float64
	// AngleDeg is the turn increment for '+' and '-', in degrees.
	AngleDeg float64
	// StartThickness is the stroke thickness of the first segment.
	StartThickness float64
	// ThicknessDecay multiplies thickness after every forward step.
	ThicknessDecay float64
	// ThicknessFloor is the minimum thickness; decay never goes below it.
	ThicknessFloor float64
	// TrunkLengthBoost and TrunkThicknessBoost scale forward steps taken
	// while the branch stack is empty, making the trunk read heavier than
	// the crown. Zero values default to 1 (no boost).
	TrunkLengthBoost    float64
	TrunkThicknessBoost float64
	// Iterations bounds the layer index: layers run 0..Iterations-1.
	Iterations int
	// TopMargin aborts the whole walk once a step would land above this Y.
	TopMargin float64
}

// turtleState is one cursor snapshot. Pushed verbatim on '[' and restored
// verbatim on ']'.
type turtleState struct {
	pos       Vec2
	heading   float64
	thickness float64
	layer     int
}

// Interpret walks sentence with a stack-based cursor and returns the segments
// partitioned by layer. Unknown symbols are no-ops; a pop on an empty stack
// is a no-op; a forward step that would cross above cfg.TopMargin ends the
// entire walk, leaving a partial root.
func Interpret(sentence string, cfg TurtleConfig) LayeredSegments {
	layers := cfg.Iterations
	if layers < 1 {
		layers = 1
	}
	lenBoost := cfg.TrunkLengthBoost
	if lenBoost == 0 {
		lenBoost = 1
	}
	thickBoost := cfg.TrunkThicknessBoost
	if thickBoost == 0 {
		thickBoost = 1
	}

	out := make(LayeredSegments, layers)
	angle := cfg.AngleDeg * math.Pi / 180
	cur := turtleState{
		pos:       cfg.Start,
		heading:   -math.Pi / 2,
		thickness: cfg.StartThickness,
	}
	var stack []turtleState

walk:
	for _, sym := range sentence {
		switch sym {
		case 'F':
			step := cfg.StepLength
			thickness := cur.thickness
			if len(stack) == 0 {
				step *= lenBoost
				thickness *= thickBoost
			}
			next := Vec2{
				X: cur.pos.X + math.Cos(cur.heading)*step,
				Y: cur.pos.Y + math.Sin(cur.heading)*step,
			}
			if next.Y < cfg.TopMargin {
				break walk
			}
			out[cur.layer] = append(out[cur.layer], Segment{
				A:         cur.pos,
				B:         next,
				Thickness: thickness,
				Length:    step,
				Layer:     cur.layer,
			})
			cur.pos = next
			cur.thickness = math.Max(cfg.ThicknessFloor, cur.thickness*cfg.ThicknessDecay)
		case '+':
			cur.heading += angle
		case '-':
			cur.heading -= angle
		case '[':
			stack = append(stack, cur)
			if cur.layer < layers-1 {
				cur.layer++
			}
		case ']':
			if n := len(stack); n > 0 {
				cur = stack[n-1]
				stack = stack[:n-1]
			}
		default:
			// Lenient parsing: unknown symbols are skipped.
		}
	}
	return out
}
