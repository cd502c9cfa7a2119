// Package graph builds the per function order of VRAM transfers and vertical
// blank waits as a graph that can be rendered in DOT format.
package graph

import (
	"github.com/retroenv/vramcheck/internal/model"
	"github.com/zboralski/lattice"
	"github.com/zboralski/lattice/render"
)

// BuildTimeline creates a graph with one node per event that is attributed
// to a function. Consecutive events of the same function in the same file
// are connected in timeline order.
func BuildTimeline(timeline []model.Event) *lattice.Graph {
	type scope struct {
		file     string
		function string
	}
	last := make(map[scope]string)

	g := &lattice.Graph{}
	for _, e := range timeline {
		function := e.Function()
		if function == "" {
			continue
		}

		node := e.Label()
		g.Nodes = append(g.Nodes, node)

		key := scope{file: e.Location().File, function: function}
		if previous, ok := last[key]; ok {
			g.Edges = append(g.Edges, lattice.Edge{
				Caller: previous,
				Callee: node,
			})
		}
		last[key] = node
	}
	g.Dedup()
	return g
}

// DOT renders the timeline graph in DOT format.
func DOT(g *lattice.Graph, title string) string {
	return render.DOT(g, title)
}
