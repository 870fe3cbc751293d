package badgemon

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a timeline script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Ms     float64 `json:"ms,omitempty"`
	State  string  `json:"state,omitempty"` // for "expect": idle, running, ended
	Clock  float64 `json:"clock,omitempty"` // for "expectClock"
}

// timelineScript is the top-level JSON structure for a timeline script.
type timelineScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a scripted sequence of scheduler calls against a set
// of labeled nodes. Scripts keep timeline scenarios as data:
//
//	{"steps": [
//		{"action": "trigger", "label": "fade"},
//		{"action": "update", "ms": 250},
//		{"action": "expect", "label": "fade", "state": "ended"}
//	]}
//
// Actions: trigger, update, kill, reset, detach, expect, expectClock.
type ScriptRunner struct {
	steps  []scriptStep
	nodes  map[string]*Node
	cursor int
}

// LoadTimelineScript parses a JSON timeline script. Bind the labels it uses
// before running it.
func LoadTimelineScript(jsonData []byte) (*ScriptRunner, error) {
	var script timelineScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse timeline script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse timeline script: no steps")
	}
	return &ScriptRunner{steps: script.Steps, nodes: make(map[string]*Node)}, nil
}

// Bind associates label with node for use in trigger, reset, detach and
// expect steps.
func (r *ScriptRunner) Bind(label string, node *Node) *ScriptRunner {
	r.nodes[label] = node
	return r
}

// Done reports whether every step has been executed.
func (r *ScriptRunner) Done() bool {
	return r.cursor >= len(r.steps)
}

// Run executes the remaining steps against s, stopping at the first failing
// step.
func (r *ScriptRunner) Run(s *Scheduler) error {
	for !r.Done() {
		if err := r.Step(s); err != nil {
			return err
		}
	}
	return nil
}

// Step executes the next step. It is a no-op once the script is done.
func (r *ScriptRunner) Step(s *Scheduler) error {
	if r.Done() {
		return nil
	}
	i := r.cursor
	st := r.steps[i]
	r.cursor++

	switch st.Action {
	case "update":
		s.Update(st.Ms)
	case "kill":
		s.KillAnimation()
	case "expectClock":
		if s.Clock() != st.Clock {
			return fmt.Errorf("step %d: clock = %v, want %v", i, s.Clock(), st.Clock)
		}
	case "trigger", "reset", "detach", "expect":
		n, ok := r.nodes[st.Label]
		if !ok {
			return fmt.Errorf("step %d: unknown label %q", i, st.Label)
		}
		switch st.Action {
		case "trigger":
			s.Trigger(n)
		case "reset":
			n.Reset()
		case "detach":
			n.Detach()
		case "expect":
			if got := nodeState(n); got != st.State {
				return fmt.Errorf("step %d: node %q is %s, want %s", i, st.Label, got, st.State)
			}
		}
	default:
		return fmt.Errorf("step %d: unknown action %q", i, st.Action)
	}
	return nil
}

func nodeState(n *Node) string {
	switch {
	case n.ended:
		return "ended"
	case n.started:
		return "running"
	default:
		return "idle"
	}
}
