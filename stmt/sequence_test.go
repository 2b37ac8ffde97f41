package stmt

import (
	"testing"

	"github.com/timtadh/data-structures/test"
)

func TestCondenseNestedSequence(x *testing.T) {
	t := (*test.T)(x)
	g := NewGraph("f")
	b1, b2, b3, b4 := g.NewBasic(), g.NewBasic(), g.NewBasic(), g.NewBasic()
	inner := g.NewSequence(b2.Id, b3.Id)
	outer := g.NewSequence(b1.Id, inner.Id, b4.Id)
	g.AddChild(g.Root, outer.Id)
	into := g.AddEdge(Regular, b1.Id, inner.Id, NoID)
	g.AddEdge(Regular, b2.Id, b3.Id, NoID)
	brk := g.AddEdge(Break, b3.Id, b4.Id, inner.Id)
	out := g.AddEdge(Regular, inner.Id, b4.Id, outer.Id)

	t.Assert(g.CondenseSequences(), "expected a change")
	t.Assert(len(outer.Stats) == 4, "outer: %v", outer.Stats)
	for i, id := range []ID{b1.Id, b2.Id, b3.Id, b4.Id} {
		t.Assert(outer.Stats[i] == id, "position %d holds s%d", i, outer.Stats[i])
		t.Assert(g.Stmt(id).Parent == outer.Id, "s%d has parent s%d", id, g.Stmt(id).Parent)
	}
	t.Assert(into.Dst == b2.Id, "edge into the sequence should enter its first statement: %v", into)
	t.Assert(out.Src == b3.Id, "edge out of the sequence should leave its last statement: %v", out)
	t.Assert(brk.Closure == outer.Id, "closure should move to the enclosing sequence: %v", brk)
	t.Assert(inner.Parent == NoID && len(inner.Stats) == 0, "inner sequence should be detached")
	t.Assert(g.Validate() == nil, "invalid: %v", g.Validate())

	t.Assert(!g.CondenseSequences(), "a second condense should find nothing")
}

func TestCondenseDropsDuplicateEdges(x *testing.T) {
	t := (*test.T)(x)
	g := NewGraph("f")
	a, b, c := g.NewBasic(), g.NewBasic(), g.NewBasic()
	inner := g.NewSequence(a.Id, b.Id)
	outer := g.NewSequence(inner.Id, c.Id)
	g.AddChild(g.Root, outer.Id)
	kept := g.AddEdge(Regular, b.Id, c.Id, inner.Id)
	dup := g.AddEdge(Regular, inner.Id, c.Id, outer.Id)

	g.CondenseSequences()
	t.Assert(g.Edge(dup.Id) == nil, "the duplicate edge should be gone")
	t.Assert(g.Edge(kept.Id) == kept && kept.Closure == outer.Id, "kept: %v", kept)
	t.Assert(len(g.Predecessors(c.Id, AllEdges)) == 1, "c: %v", g.Predecessors(c.Id, AllEdges))
	t.Assert(outer.First == a.Id, "head should be the first spliced statement")
}

func TestCondenseSingleStatement(x *testing.T) {
	t := (*test.T)(x)
	g := NewGraph("f")
	ifs := g.NewStatement(If)
	cond := g.NewBasic()
	then := g.NewBasic()
	wrap := g.NewSequence(then.Id)
	g.AddChild(ifs.Id, cond.Id)
	g.AddChild(ifs.Id, wrap.Id)
	g.AddChild(g.Root, ifs.Id)
	e := g.AddEdge(Regular, cond.Id, wrap.Id, NoID)
	j := g.AddEdge(Break, then.Id, g.Exit, wrap.Id)

	t.Assert(g.CondenseSequences(), "expected a change")
	t.Assert(len(ifs.Stats) == 2 && ifs.Stats[1] == then.Id, "if: %v", ifs.Stats)
	t.Assert(then.Parent == ifs.Id, "then should hang from the if")
	t.Assert(e.Dst == then.Id, "edge should enter the statement: %v", e)
	t.Assert(j.Closure == then.Id, "closure should name the statement: %v", j)
	t.Assert(g.Validate() == nil, "invalid: %v", g.Validate())
}
