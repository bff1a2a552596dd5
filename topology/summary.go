package topology

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// WriteSummary prints the topology as one line per component, wire, process
// and downgrade.
func (t *Topology) WriteSummary(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "topology %s (%s)\n", t.name, t.id)

	for _, c := range t.Components() {
		fmt.Fprintf(&b, "%-9s %-28s %s\n",
			"component", c.Name(), c.Kind()+formatParams(ComponentParams(c)))
	}

	for _, wire := range t.wires {
		p1, p2 := wire.Ports()
		fmt.Fprintf(&b, "%-9s %s <-> %s\n", "wire", p1.Name(), p2.Name())
	}

	if t.workload.SEWorkload != "" {
		fmt.Fprintf(&b, "%-9s %s\n", "workload", t.workload.SEWorkload)
	}

	for _, p := range t.workload.Processes {
		fmt.Fprintf(&b, "%-9s pid=%d context=%d cmd=%s\n",
			"process", p.PID, p.ThreadContext, strings.Join(p.Cmd, " "))
	}

	for _, d := range t.downgrades {
		fmt.Fprintf(&b, "%-9s %s\n", "downgrade", d)
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func formatParams(params map[string]any) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, params[k])
	}

	return b.String()
}
