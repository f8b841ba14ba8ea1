package grove

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a scene script.
type scriptStep struct {
	Action string  `json:"action"`
	Value  float64 `json:"value,omitempty"`
	Season string  `json:"season,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// sceneScript is the top-level JSON structure for a scene script.
type sceneScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a scripted sequence of progress updates, pointer
// events, and season changes against a Scene, one step per frame. Used by the
// end-to-end tests and handy for demo recordings.
//
// Supported actions:
//
//	{"action": "progress", "value": 0.5}       set the driven progress value
//	{"action": "pointer", "x": 100, "y": 200}  inject a pointer event
//	{"action": "season", "season": "autumn"}   switch season
//	{"action": "wait", "frames": 30}           tick without changes
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	progress  float64
}

// LoadScript parses a JSON scene script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script sceneScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse scene script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse scene script: no steps")
	}
	for _, st := range script.Steps {
		switch st.Action {
		case "progress", "pointer", "season", "wait":
		default:
			return nil, fmt.Errorf("parse scene script: unknown action %q", st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Progress returns the script's current driven progress value, making the
// runner usable as a ProgressSource.
func (r *ScriptRunner) Progress() float64 {
	return r.progress
}

// Step applies at most one script step to the scene and advances it one tick.
// Once the script is exhausted, Step keeps ticking the scene with the final
// progress value so falling leaves and backfill can play out.
func (r *ScriptRunner) Step(s *Scene) {
	if !r.done {
		if r.waitCount > 0 {
			r.waitCount--
		} else if r.cursor >= len(r.steps) {
			r.done = true
		} else {
			st := r.steps[r.cursor]
			r.cursor++
			switch st.Action {
			case "progress":
				r.progress = st.Value
			case "pointer":
				s.PointerSelect(st.X, st.Y)
			case "season":
				key, err := ParseSeason(st.Season)
				if err == nil {
					s.SelectSeason(key)
					r.progress = 0
				}
			case "wait":
				if st.Frames > 1 {
					r.waitCount = st.Frames - 1
				}
			}
		}
	}
	s.Advance(r.progress)
}
