package loopback

import (
	"fmt"
	"os"
	"time"
)

// frameStats holds per-tick work counters. Populated by World.Draw; the run
// layer supplies pass durations (the World itself never reads the clock).
type frameStats struct {
	objects   int
	fedPixels int // previous-frame pixels that entered the feedback pass
	blendOps  int // SetTransformed calls issued by the feedback pass
}

// Stats returns the counters from the most recent Draw: live object count,
// previous-frame pixels fed through the transforms, and blend operations.
func (w *World) Stats() (objects, fedPixels, blendOps int) {
	return w.stats.objects, w.stats.fedPixels, w.stats.blendOps
}

// debugLog prints one frame's counters and caller-measured durations to
// stderr. No-op unless debug mode is on.
func (w *World) debugLog(update, draw time.Duration) {
	if !w.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[loopback] objects: %d | fed: %d px | blends: %d | update: %v | draw: %v\n",
		w.stats.objects, w.stats.fedPixels, w.stats.blendOps, update, draw)
}
