package macroui

import (
	"fmt"
	"io"
	"os"
)

// debugOut receives debug warnings. Tests swap it.
var debugOut io.Writer = os.Stderr

// debugWarnf prints a warning line to debugOut.
func (t *Tree) debugWarnf(format string, args ...any) {
	_, _ = fmt.Fprintf(debugOut, "[macroui] warning: "+format+"\n", args...)
}

// debugCheckDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func (t *Tree) debugCheckDepth(h Handle) {
	depth := 0
	for p := h; !p.IsZero(); p = t.node(p).parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		t.debugWarnf("tree depth %d exceeds %d (node id %d)", depth, debugMaxTreeDepth, t.node(h).id)
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func (t *Tree) debugCheckChildCount(h Handle) {
	n := t.node(h)
	if len(n.children) > debugMaxChildCount {
		t.debugWarnf("node id %d has %d children (threshold %d)", n.id, len(n.children), debugMaxChildCount)
	}
}
