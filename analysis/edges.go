package analysis

import (
	"github.com/timtadh/data-structures/set"
	ds_types "github.com/timtadh/data-structures/types"
)

import (
	"github.com/jpenilla/vineflower/stmt"
)

// LeavingEdges collects the ids of the edges that start at curr or below
// it and end outside check. Edges into the method's dummy exit are only
// collected when allowExit is set.
func LeavingEdges(g *stmt.Graph, curr, check stmt.ID, allowExit bool) *set.SortedSet {
	edges := set.NewSortedSet(10)
	findLeaving(g, curr, check, allowExit, edges)
	return edges
}

func findLeaving(g *stmt.Graph, curr, check stmt.ID, allowExit bool, edges *set.SortedSet) {
	for _, e := range g.Successors(curr, stmt.AllEdges) {
		if g.Contains(check, e.Dst) {
			continue
		}
		if !allowExit && e.Dst == g.Exit {
			continue
		}
		edges.Add(ds_types.Int(e.Id))
	}
	for _, kid := range g.Stmt(curr).Stats {
		findLeaving(g, kid, check, allowExit, edges)
	}
}

// Edges resolves a set built by LeavingEdges, in id order.
func Edges(g *stmt.Graph, ids *set.SortedSet) []*stmt.Edge {
	edges := make([]*stmt.Edge, 0, ids.Size())
	for x, next := ids.Items()(); next != nil; x, next = next() {
		if e := g.Edge(stmt.EdgeID(x.(ds_types.Int))); e != nil {
			edges = append(edges, e)
		}
	}
	return edges
}

// HasType reports whether any edge in ids has a type in mask.
func HasType(g *stmt.Graph, ids *set.SortedSet, mask stmt.EdgeType) bool {
	for _, e := range Edges(g, ids) {
		if e.Type&mask != 0 {
			return true
		}
	}
	return false
}

// LeavesByContinue reports whether the sub-tree at id has a continue edge that
// restarts a loop outside of it.
func LeavesByContinue(g *stmt.Graph, id stmt.ID) bool {
	return HasType(g, LeavingEdges(g, id, id, false), stmt.Continue)
}
