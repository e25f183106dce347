package intent

import "github.com/kr/pretty"

// Dump renders the graph's files for interactive debugging. Nothing in this
// repository calls it (neither the core pipeline nor the CLI driver), and
// it is deliberately not exhaustive: pretty's
// generic struct formatting is enough to inspect a graph by hand without
// hand-rolling a printer for every intention kind.
func (g *Graph) Dump() string {
	return pretty.Sprint(g.Files)
}
