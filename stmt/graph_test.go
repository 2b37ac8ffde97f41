package stmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/timtadh/data-structures/test"
)

func TestNewGraph(x *testing.T) {
	t := (*test.T)(x)
	g := NewGraph("f")
	t.Assert(g.Stmt(g.Root).Kind == Root, "root is %v", g.Stmt(g.Root))
	t.Assert(g.Stmt(g.Exit).Kind == DummyExit, "exit is %v", g.Stmt(g.Exit))
	t.Assert(g.Stmt(NoID) == nil, "NoID should not resolve")
	t.Assert(g.Stmt(ID(g.Len())) == nil, "out of range ids should not resolve")
	t.Assert(g.Validate() == nil, "an empty method is valid: %v", g.Validate())

	b := g.NewBasic()
	t.Assert(b.Exprents != nil && len(b.Exprents) == 0, "basic blocks always carry an exprent list")
	t.Assert(g.NewStatement(Sequence).Exprents == nil, "sequences carry no exprents")
}

func TestChildren(t *testing.T) {
	g := NewGraph("f")
	sw := g.NewStatement(Switch)
	a := g.NewBasic()
	b := g.NewBasic()
	head := g.NewBasic()
	g.AddChild(g.Root, sw.Id)
	g.AddCase(sw.Id, a.Id)
	g.AddCase(sw.Id, b.Id)
	g.AddHead(sw.Id, head.Id)

	assert.Equal(t, []ID{head.Id, a.Id, b.Id}, sw.Stats)
	assert.Equal(t, []ID{a.Id, b.Id}, sw.Cases)
	assert.Equal(t, head.Id, sw.First)
	assert.Equal(t, sw.Id, head.Parent)
	assert.NoError(t, g.Validate())

	assert.True(t, g.Contains(g.Root, b.Id))
	assert.True(t, g.Contains(sw.Id, sw.Id))
	assert.False(t, g.Contains(a.Id, b.Id))
	assert.False(t, g.Contains(sw.Id, g.Exit))

	var seen []ID
	g.Walk(g.Root, func(s *Statement) { seen = append(seen, s.Id) })
	assert.Equal(t, []ID{g.Root, sw.Id, head.Id, a.Id, b.Id}, seen)
}

func TestReplaceWith(t *testing.T) {
	g := NewGraph("f")
	pre := g.NewBasic()
	sw := g.NewStatement(Switch)
	arm := g.NewBasic()
	g.AddChild(sw.Id, g.NewBasic().Id)
	g.AddCase(sw.Id, arm.Id)
	post := g.NewBasic()
	body := g.NewSequence(pre.Id, sw.Id, post.Id)
	g.AddChild(g.Root, body.Id)
	in := g.AddEdge(Regular, pre.Id, sw.Id, NoID)
	out := g.AddEdge(Regular, sw.Id, post.Id, NoID)
	brk := g.AddEdge(Break, arm.Id, post.Id, sw.Id)

	repl := g.NewStatement(Sequence)
	g.ReplaceWith(sw.Id, repl.Id)

	assert.Equal(t, []ID{pre.Id, repl.Id, post.Id}, body.Stats)
	assert.Equal(t, body.Id, repl.Parent)
	assert.Equal(t, NoID, sw.Parent)
	assert.Equal(t, repl.Id, in.Dst)
	assert.Equal(t, repl.Id, out.Src)
	assert.Equal(t, arm.Id, brk.Src, "edges of the children stay put")
	assert.Empty(t, g.Successors(sw.Id, AllEdges))
	assert.Empty(t, g.Predecessors(sw.Id, AllEdges))
	assert.Len(t, g.Predecessors(repl.Id, AllEdges), 1)

	// the arm itself being replaced keeps the case list right
	other := g.NewBasic()
	g.ReplaceWith(arm.Id, other.Id)
	assert.Equal(t, []ID{other.Id}, sw.Cases)
	assert.Equal(t, other.Id, brk.Src)
}

func TestEdges(t *testing.T) {
	g := NewGraph("f")
	a := g.NewBasic()
	b := g.NewBasic()
	c := g.NewBasic()
	g.AddChild(g.Root, g.NewSequence(a.Id, b.Id, c.Id).Id)
	ab := g.AddEdge(Regular, a.Id, b.Id, NoID)
	ac := g.AddEdge(Break, a.Id, c.Id, g.Root)
	ax := g.AddEdge(Exception, a.Id, g.Exit, NoID)

	assert.Equal(t, []*Edge{ab, ac, ax}, g.Successors(a.Id, AllEdges))
	assert.Equal(t, []*Edge{ab, ac}, g.Successors(a.Id, DirectEdges))
	assert.Equal(t, []*Edge{ac}, g.Successors(a.Id, Break|Continue))
	assert.True(t, g.HasEdge(a.Id, Break, c.Id))
	assert.False(t, g.HasEdge(a.Id, Regular, c.Id))

	g.Redirect(ab.Id, c.Id)
	assert.Equal(t, c.Id, ab.Dst)
	assert.Equal(t, Regular, ab.Type)
	assert.Empty(t, g.Predecessors(b.Id, AllEdges))
	assert.Equal(t, []*Edge{ac, ab}, g.Predecessors(c.Id, AllEdges))

	g.RemoveEdge(ac.Id)
	assert.Nil(t, g.Edge(ac.Id))
	assert.Equal(t, []*Edge{ab, ax}, g.Edges())
	g.RemoveEdge(ac.Id)
	assert.Len(t, g.Edges(), 2)

	g.SetSource(ab.Id, b.Id)
	assert.Equal(t, []*Edge{ab}, g.Successors(b.Id, AllEdges))
	assert.Equal(t, []*Edge{ax}, g.Successors(a.Id, AllEdges))
	assert.Equal(t, "s3 -regular-> s4", ab.String())
}

func TestEdgeTypeNames(t *testing.T) {
	for _, et := range []EdgeType{Regular, Exception, Break, Continue, Finally} {
		parsed, err := ParseEdgeType(et.String())
		assert.NoError(t, err)
		assert.Equal(t, et, parsed)
	}
	_, err := ParseEdgeType("goto")
	assert.Error(t, err)
	_, err = ParseKind("loop")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		build func(g *Graph)
		msg   string
	}{
		{
			name: "child without parent link",
			build: func(g *Graph) {
				s := g.NewSequence(g.NewBasic().Id)
				g.AddChild(g.Root, s.Id)
				g.Stmt(s.Stats[0]).Parent = g.Root
			},
			msg: "does not name it as parent",
		},
		{
			name: "head outside the children",
			build: func(g *Graph) {
				s := g.NewSequence(g.NewBasic().Id)
				g.AddChild(g.Root, s.Id)
				s.First = g.Exit
			},
			msg: "is not one of its children",
		},
		{
			name: "switch without arms",
			build: func(g *Graph) {
				sw := g.NewStatement(Switch)
				g.AddChild(sw.Id, g.NewBasic().Id)
				g.AddChild(g.Root, sw.Id)
			},
			msg: "has no case arms",
		},
		{
			name: "closure outside the source",
			build: func(g *Graph) {
				a := g.NewBasic()
				b := g.NewBasic()
				g.AddChild(g.Root, g.NewSequence(a.Id, b.Id).Id)
				g.AddEdge(Break, a.Id, g.Exit, b.Id)
			},
			msg: "is not an ancestor",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := NewGraph("bad")
			c.build(g)
			err := g.Validate()
			if assert.Error(t, err) {
				assert.True(t, strings.Contains(err.Error(), c.msg), "%v", err)
			}
		})
	}
}

func TestReplaceExprent(t *testing.T) {
	g := NewGraph("f")
	old := &Opaque{Text: "a()"}
	keep := &Opaque{Text: "b()"}
	b := g.NewBasic(old, keep)
	repl := &Yield{Value: &Const{Value: "1", VarType: TypeInt}, VarType: TypeInt}
	assert.True(t, g.ReplaceExprent(b.Id, old, repl))
	assert.False(t, g.ReplaceExprent(b.Id, old, repl))
	assert.Equal(t, []Exprent{repl, keep}, b.Exprents)
}

func TestString(t *testing.T) {
	g := NewGraph("f")
	sw := g.NewStatement(Switch)
	g.AddChild(sw.Id, g.NewBasic(&Opaque{Text: "sel"}).Id)
	arm := g.NewBasic(&Yield{Value: &Const{Value: "1", VarType: TypeInt}, VarType: TypeInt})
	g.AddCase(sw.Id, arm.Id)
	post := g.NewBasic(&Exit{Kind: ExitReturn})
	g.AddChild(g.Root, g.NewSequence(sw.Id, post.Id).Id)
	g.AddEdge(Break, arm.Id, post.Id, sw.Id)
	g.AddEdge(Break, post.Id, g.Exit, g.Root)
	sw.Phantom = true

	expected := strings.Join([]string{
		"method f {",
		"  sequence s6 {",
		"    switch s2 (expression) {",
		"      // s3",
		"      sel;",
		"    case 0:",
		"      // s4",
		"      yield #1:int;",
		"      break s5; // closure s2",
		"    }",
		"    // s5",
		"    return;",
		"  }",
		"}",
	}, "\n")
	assert.Equal(t, expected, g.String())
}
