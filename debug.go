package escore

import (
	"fmt"
	"os"
)

// debugMaxTreeDepth triggers a warning: a deeper tree almost always means a
// re-parenting loop slipped past the cycle check via a stale handle.
const debugMaxTreeDepth = 32

// debugCheckTreeDepth warns on stderr if the component's depth exceeds the
// threshold. Only active when the window is in debug mode.
func debugCheckTreeDepth(w *Window, c *Component) {
	if w == nil || !w.debug {
		return
	}
	depth := 0
	for p := c; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[escore] warning: tree depth %d exceeds %d (component %q, id %d)\n",
			depth, debugMaxTreeDepth, c.tag, c.ID)
	}
}
