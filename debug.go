package seedpaint

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-generation timing and output metrics.
// Only populated when the generator is in debug mode.
type debugStats struct {
	clearTime time.Duration
	drawTime  time.Duration
	seed      uint64
	draws     int
	strokes   int
	fills     int
}

// debugLog prints timing and output stats to stderr.
func (g *Generator) debugLog(stats debugStats) {
	if !g.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[seedpaint] %s: clear: %v | draw: %v | total: %v\n",
		g.sketch.Name(), stats.clearTime, stats.drawTime, stats.clearTime+stats.drawTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[seedpaint] %s: seed: %d | draws: %d | strokes: %d | fills: %d\n",
		g.sketch.Name(), int64(stats.seed), stats.draws, stats.strokes, stats.fills)
}

// debugCheckSettings panics with a descriptive message when a setting changed
// while a generation was running. Only called in debug mode.
func debugCheckSettings(name string, before, after []Param) {
	for i := range before {
		if before[i].Value != after[i].Value {
			panic(fmt.Sprintf("seedpaint debug: %s: setting %q changed from %g to %g during generate",
				name, before[i].Name, before[i].Value, after[i].Value))
		}
	}
}
