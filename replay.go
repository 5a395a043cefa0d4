package seedpaint

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
)

// ErrReplayMismatch reports a replay whose render differs from the digest the
// script expects.
var ErrReplayMismatch = errors.New("seedpaint: replay digest mismatch")

// replayStep is a single action in a replay script.
type replayStep struct {
	Action   string          `json:"action"`
	Label    string          `json:"label,omitempty"`
	Param    string          `json:"param,omitempty"`
	Value    float64         `json:"value,omitempty"`
	Settings json.RawMessage `json:"settings,omitempty"`
	Digest   string          `json:"digest,omitempty"`
}

// replayScript is the top-level JSON structure of a replay script.
type replayScript struct {
	Sketch string       `json:"sketch"`
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Steps  []replayStep `json:"steps"`
}

// Replay is a recorded sequence of settings edits and generations that can be
// re-run anywhere to check that renders reproduce. Actions:
//
//	{"action": "set", "param": "lines", "value": 12}
//	{"action": "settings", "settings": {"seed": 3, "lines": 7}}
//	{"action": "reset"}
//	{"action": "generate", "label": "first"}
//	{"action": "expect", "digest": "1f0e..."}   // checks the last generate
type Replay struct {
	Sketch        string
	Width, Height int
	steps         []replayStep
}

// ReplayRender is the outcome of one generate step.
type ReplayRender struct {
	Label  string
	Result Result
}

// LoadReplay parses a replay script.
func LoadReplay(jsonData []byte) (*Replay, error) {
	var script replayScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse replay: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse replay: no steps")
	}
	if script.Width <= 0 || script.Height <= 0 {
		return nil, fmt.Errorf("parse replay: size %dx%d", script.Width, script.Height)
	}
	return &Replay{
		Sketch: script.Sketch,
		Width:  script.Width,
		Height: script.Height,
		steps:  script.Steps,
	}, nil
}

// Len returns the number of steps.
func (r *Replay) Len() int {
	return len(r.steps)
}

// Run executes the script against g, which must be Ready. It stops at the
// first failing step. Unknown actions are logged and skipped.
func (r *Replay) Run(g *Generator) ([]ReplayRender, error) {
	var (
		renders []ReplayRender
		last    *Result
	)
	for i, st := range r.steps {
		var err error
		switch st.Action {
		case "set":
			err = g.Settings().Set(st.Param, st.Value)
		case "settings":
			err = g.Settings().ApplyJSON(st.Settings)
		case "reset":
			g.Settings().Reset()
		case "generate":
			var res Result
			res, err = g.Generate()
			if err == nil {
				renders = append(renders, ReplayRender{Label: st.Label, Result: res})
				last = &renders[len(renders)-1].Result
			}
		case "expect":
			err = expectDigest(last, st.Digest)
		default:
			log.Printf("seedpaint: replay step %d: unknown action %q, skipped", i, st.Action)
		}
		if err != nil {
			return renders, fmt.Errorf("replay step %d (%s): %w", i, st.Action, err)
		}
	}
	return renders, nil
}

func expectDigest(last *Result, want string) error {
	if last == nil {
		return fmt.Errorf("expect before any generate")
	}
	w, err := strconv.ParseUint(want, 16, 64)
	if err != nil {
		return fmt.Errorf("digest %q: %w", want, err)
	}
	if last.Digest != w {
		return fmt.Errorf("%w: got %016x, want %016x", ErrReplayMismatch, last.Digest, w)
	}
	return nil
}

// FormatDigest renders a digest the way replay scripts spell it.
func FormatDigest(d uint64) string {
	return fmt.Sprintf("%016x", d)
}
