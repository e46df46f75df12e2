package loopback

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Ticks  int     `json:"ticks,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// TestRunner replays a JSON input script through a Sampler, one step at a
// time, for deterministic interaction testing and demo replays. Attach via
// RunConfig.Runner or call Step yourself each tick.
//
// Supported actions: "click" (x, y), "drag" (fromX/fromY/toX/toY, ticks),
// "wait" (ticks).
type TestRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON input script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether every step has been executed and drained.
func (r *TestRunner) Done() bool {
	return r.done
}

// Step advances the script by one tick, queueing synthetic samples on s.
// It waits for previously queued samples to drain before advancing, so each
// step's input lands on its own ticks.
func (r *TestRunner) Step(s *Sampler) {
	if r.done {
		return
	}
	if s.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "click":
		s.InjectClick(st.X, st.Y)
	case "drag":
		ticks := st.Ticks
		if ticks < 2 {
			ticks = 2
		}
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, ticks)
	case "wait":
		if st.Ticks > 0 {
			r.waitCount = st.Ticks - 1 // this tick counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && s.Pending() == 0 {
		r.done = true
	}
}
