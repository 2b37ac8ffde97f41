package stmt

// CondenseSequences flattens sequences nested directly in sequences and
// replaces single-statement sequences by their only statement. It reports
// whether the tree changed.
func (g *Graph) CondenseSequences() bool {
	return g.condense(g.Root)
}

func (g *Graph) condense(id ID) bool {
	s := g.Stmt(id)
	changed := false
	for _, kid := range append([]ID(nil), s.Stats...) {
		if g.condense(kid) {
			changed = true
		}
	}
	if s.Kind != Sequence {
		return changed
	}

	stats := make([]ID, 0, len(s.Stats))
	for _, kid := range s.Stats {
		k := g.Stmt(kid)
		if k.Kind != Sequence || len(k.Stats) == 0 {
			stats = append(stats, kid)
			continue
		}
		inner := k.Stats
		g.dissolve(kid, inner[0], inner[len(inner)-1], id)
		for _, x := range inner {
			g.Stmt(x).Parent = id
		}
		stats = append(stats, inner...)
		changed = true
	}
	s.Stats = stats
	if len(stats) > 0 {
		s.First = stats[0]
	}

	if len(s.Stats) == 1 && s.Parent != NoID {
		only := s.Stats[0]
		parent := s.Parent
		g.replaceChild(parent, id, only)
		g.Stmt(only).Parent = parent
		g.dissolve(id, only, only, only)
		changed = true
	}
	return changed
}

// dissolve removes seq from the graph: edges into it go to first, edges
// out of it leave from last (dropped when last already has the same edge)
// and closures naming it name scope instead.
func (g *Graph) dissolve(seq, first, last, scope ID) {
	for _, e := range g.Predecessors(seq, AllEdges) {
		g.Redirect(e.Id, first)
	}
	for _, e := range g.Successors(seq, AllEdges) {
		if g.HasEdge(last, e.Type, e.Dst) {
			g.RemoveEdge(e.Id)
		} else {
			g.SetSource(e.Id, last)
		}
	}
	for _, e := range g.edges {
		if e != nil && e.Closure == seq {
			e.Closure = scope
		}
	}
	s := g.Stmt(seq)
	s.Stats = nil
	s.First = NoID
	s.Parent = NoID
}
