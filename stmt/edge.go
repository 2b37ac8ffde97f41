package stmt

import (
	"fmt"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

type EdgeID int

const NoEdge EdgeID = -1

// EdgeType is a bit so sets of types can be asked for at once.
type EdgeType uint8

const (
	Regular EdgeType = 1 << iota
	Exception
	Break
	Continue
	Finally
)

const AllEdges = Regular | Exception | Break | Continue | Finally

// DirectEdges are the edges that transfer control without an exception.
const DirectEdges = Regular | Break | Continue | Finally

var edgeTypeNames = []struct {
	t    EdgeType
	name string
}{
	{Regular, "regular"},
	{Exception, "exception"},
	{Break, "break"},
	{Continue, "continue"},
	{Finally, "finally"},
}

func (t EdgeType) String() string {
	names := make([]string, 0, 1)
	for _, n := range edgeTypeNames {
		if t&n.t != 0 {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return fmt.Sprintf("EdgeType(%d)", uint8(t))
	}
	return strings.Join(names, "|")
}

func ParseEdgeType(s string) (EdgeType, error) {
	for _, n := range edgeTypeNames {
		if n.name == s {
			return n.t, nil
		}
	}
	return 0, errors.Errorf("unknown edge type %q", s)
}

// Edge is a control-flow edge between two statements. Closure is the
// statement whose scope a break or continue leaves; NoID for edges that
// need none.
type Edge struct {
	Id      EdgeID
	Type    EdgeType
	Src     ID
	Dst     ID
	Closure ID
}

func (e *Edge) String() string {
	if e.Closure == NoID {
		return fmt.Sprintf("s%d -%v-> s%d", e.Src, e.Type, e.Dst)
	}
	return fmt.Sprintf("s%d -%v-> s%d (closure s%d)", e.Src, e.Type, e.Dst, e.Closure)
}

func (g *Graph) AddEdge(t EdgeType, src, dst, closure ID) *Edge {
	e := &Edge{
		Id:      EdgeID(len(g.edges)),
		Type:    t,
		Src:     src,
		Dst:     dst,
		Closure: closure,
	}
	g.edges = append(g.edges, e)
	s, d := g.Stmt(src), g.Stmt(dst)
	s.succs = append(s.succs, e.Id)
	d.preds = append(d.preds, e.Id)
	return e
}

// Edge returns nil for removed or unknown ids.
func (g *Graph) Edge(id EdgeID) *Edge {
	if id < 0 || int(id) >= len(g.edges) {
		return nil
	}
	return g.edges[id]
}

func (g *Graph) RemoveEdge(id EdgeID) {
	e := g.Edge(id)
	if e == nil {
		return
	}
	g.Stmt(e.Src).succs = dropEdge(g.Stmt(e.Src).succs, id)
	g.Stmt(e.Dst).preds = dropEdge(g.Stmt(e.Dst).preds, id)
	g.edges[id] = nil
}

// Redirect changes only the destination of an edge; its id, type, source
// and closure stay as they were.
func (g *Graph) Redirect(id EdgeID, dst ID) {
	e := g.Edge(id)
	if e == nil || e.Dst == dst {
		return
	}
	g.Stmt(e.Dst).preds = dropEdge(g.Stmt(e.Dst).preds, id)
	e.Dst = dst
	d := g.Stmt(dst)
	d.preds = append(d.preds, id)
}

func (g *Graph) SetSource(id EdgeID, src ID) {
	e := g.Edge(id)
	if e == nil || e.Src == src {
		return
	}
	g.Stmt(e.Src).succs = dropEdge(g.Stmt(e.Src).succs, id)
	e.Src = src
	s := g.Stmt(src)
	s.succs = append(s.succs, id)
}

// Successors lists the edges leaving id whose type is in mask, in the
// order they were added.
func (g *Graph) Successors(id ID, mask EdgeType) []*Edge {
	return g.filter(g.Stmt(id).succs, mask)
}

func (g *Graph) Predecessors(id ID, mask EdgeType) []*Edge {
	return g.filter(g.Stmt(id).preds, mask)
}

// HasEdge reports whether src already has an edge of type t to dst.
func (g *Graph) HasEdge(src ID, t EdgeType, dst ID) bool {
	for _, e := range g.Successors(src, t) {
		if e.Dst == dst {
			return true
		}
	}
	return false
}

// Edges lists every live edge in id order.
func (g *Graph) Edges() []*Edge {
	edges := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		if e != nil {
			edges = append(edges, e)
		}
	}
	return edges
}

func (g *Graph) filter(ids []EdgeID, mask EdgeType) []*Edge {
	edges := make([]*Edge, 0, len(ids))
	for _, id := range ids {
		if e := g.Edge(id); e != nil && e.Type&mask != 0 {
			edges = append(edges, e)
		}
	}
	return edges
}

func dropEdge(ids []EdgeID, id EdgeID) []EdgeID {
	for i, x := range ids {
		if x == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
