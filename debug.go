package badgemon

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-update timing and queue metrics.
// Only populated when Scheduler.debug is true.
type debugStats struct {
	drainTime time.Duration
	drained   int
	active    int
	pending   int
}

// debugLog prints update stats to stderr. Quiet updates (nothing drained,
// nothing active) are skipped.
func (s *Scheduler) debugLog() {
	if !s.debug {
		return
	}
	st := s.stats
	if st.drained == 0 && st.active == 0 {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[badgemon] clock: %.1fms | drained: %d | active: %d | pending: %d | update: %v\n",
		s.clock, st.drained, st.active, st.pending, st.drainTime)
}

// debugCheckTrigger warns when a node is triggered by hand while it still
// waits on predecessors; the predecessors will not start it again later.
func debugCheckTrigger(n *Node) {
	if n.start.needed > 0 {
		_, _ = fmt.Fprintf(os.Stderr,
			"[badgemon] warning: node %q (ID %d) triggered with %d unmet predecessors\n",
			n.Name, n.ID, n.start.needed)
	}
}

// debugCheckActive warns on stderr if the active set grows past the threshold.
// Usually a leaked infinite node that nothing ends.
const debugMaxActive = 256

func debugCheckActive(s *Scheduler) {
	if len(s.active) > debugMaxActive {
		_, _ = fmt.Fprintf(os.Stderr, "[badgemon] warning: %d active nodes exceeds %d\n",
			len(s.active), debugMaxActive)
	}
}
